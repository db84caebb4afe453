package doctor_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/jump/internal/doctor"
	"github.com/hbjs97/jump/internal/shell"
	"github.com/hbjs97/jump/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConfig(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		r := doctor.CheckConfig(filepath.Join(t.TempDir(), "config.toml"))
		assert.Equal(t, doctor.StatusOK, r.Status)
	})

	t.Run("valid", func(t *testing.T) {
		r := doctor.CheckConfig(testutil.TempConfigFile(t, `function_name = "j"`))
		assert.Equal(t, doctor.StatusOK, r.Status)
	})

	t.Run("invalid", func(t *testing.T) {
		r := doctor.CheckConfig(testutil.TempConfigFile(t, `version = [`))
		assert.Equal(t, doctor.StatusFail, r.Status)
		assert.NotEmpty(t, r.Fix)
	})

	t.Run("world writable", func(t *testing.T) {
		path := testutil.TempConfigFile(t, `version = 1`)
		require.NoError(t, os.Chmod(path, 0666))
		r := doctor.CheckConfig(path)
		assert.Equal(t, doctor.StatusWarn, r.Status)
		assert.Contains(t, r.Fix, "chmod 600")
	})
}

func TestCheckStore(t *testing.T) {
	t.Run("missing is warned and not created", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "aliases.json")
		r := doctor.CheckStore(path)
		assert.Equal(t, doctor.StatusWarn, r.Status)
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("valid", func(t *testing.T) {
		r := doctor.CheckStore(testutil.TempStoreFile(t, `{"a": "/a", "b": "/b"}`))
		assert.Equal(t, doctor.StatusOK, r.Status)
		assert.Contains(t, r.Message, "2 aliases")
	})

	t.Run("corrupt", func(t *testing.T) {
		r := doctor.CheckStore(testutil.TempStoreFile(t, `{`))
		assert.Equal(t, doctor.StatusFail, r.Status)
		assert.Contains(t, r.Message, "corrupted")
	})
}

func TestCheckSnippet(t *testing.T) {
	t.Run("passes", func(t *testing.T) {
		fc := testutil.NewFakeCommander()
		fc.Register("sh -n -c", "", nil)

		r := doctor.CheckSnippet(context.Background(), fc, "j() { :; }")
		assert.Equal(t, doctor.StatusOK, r.Status)
		assert.True(t, fc.Called("sh -n -c j() { :; }"))
	})

	t.Run("syntax error", func(t *testing.T) {
		fc := testutil.NewFakeCommander()
		fc.Register("sh -n -c", "sh: 1: Syntax error: end of file unexpected\n", errors.New("exit status 2"))

		r := doctor.CheckSnippet(context.Background(), fc, "j() {")
		assert.Equal(t, doctor.StatusFail, r.Status)
		assert.Contains(t, r.Message, "end of file unexpected")
	})

	t.Run("no output", func(t *testing.T) {
		fc := testutil.NewFakeCommander()
		fc.Register("sh -n -c", "", errors.New("exec: \"sh\": executable file not found"))

		r := doctor.CheckSnippet(context.Background(), fc, "j() {")
		assert.Equal(t, doctor.StatusFail, r.Status)
		assert.Contains(t, r.Message, "executable file not found")
	})
}

func TestCheckRCFile(t *testing.T) {
	dir := t.TempDir()
	installed := filepath.Join(dir, ".bashrc")
	require.NoError(t, os.WriteFile(installed, []byte(shell.Marker+"\n"), 0644))

	assert.Equal(t, doctor.StatusOK, doctor.CheckRCFile(installed).Status)

	r := doctor.CheckRCFile(filepath.Join(dir, ".zshrc"))
	assert.Equal(t, doctor.StatusWarn, r.Status)
	assert.Contains(t, r.Fix, "jump setup --install --rc")
}

func TestRunAll(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("sh -n", "", nil)

	in := doctor.Inputs{
		ConfigPath: filepath.Join(t.TempDir(), "config.toml"),
		StorePath:  testutil.TempStoreFile(t, `{}`),
		Snippet:    shell.Snippet(shell.Options{Executable: "/bin/jump"}),
	}
	results := doctor.RunAll(context.Background(), fc, in)
	assert.Len(t, results, 3)

	in.RCPath = filepath.Join(t.TempDir(), ".bashrc")
	results = doctor.RunAll(context.Background(), fc, in)
	require.Len(t, results, 4)
	assert.Equal(t, "shell_hook", results[3].Name)
}

package atomicfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/jump/internal/atomicfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_NewFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "aliases.json")

	require.NoError(t, atomicfile.Write(path, []byte("{}\n"), 0644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWrite_OverwritesExisting(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "aliases.json")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0600))

	require.NoError(t, atomicfile.Write(path, []byte("new"), 0600))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestWrite_NoTempFilesLeft(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "aliases.json")

	for range 3 {
		require.NoError(t, atomicfile.Write(path, []byte("x"), 0644))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "aliases.json", entries[0].Name())
}

func TestWrite_MissingDirectory(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing", "aliases.json")

	err := atomicfile.Write(path, []byte("x"), 0644)
	assert.Error(t, err)
}

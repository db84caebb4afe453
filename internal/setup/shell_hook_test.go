package setup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hbjs97/jump/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnippet() string {
	return shell.Snippet(shell.Options{Executable: "/usr/local/bin/jump"})
}

func TestInstallShellHook_NewFile(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".bashrc")

	wrote, err := InstallShellHook(testSnippet(), rcPath)
	require.NoError(t, err)
	assert.True(t, wrote)

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), shell.Marker)
	assert.Contains(t, string(content), "'/usr/local/bin/jump' get")
}

func TestInstallShellHook_CreatesParentDir(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), "conf.d", "jump.sh")

	wrote, err := InstallShellHook(testSnippet(), rcPath)
	require.NoError(t, err)
	assert.True(t, wrote)
	assert.True(t, IsHookInstalled(rcPath))
}

func TestInstallShellHook_AlreadyInstalled(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".zshrc")
	existing := shell.Marker + "\nexisting content"
	require.NoError(t, os.WriteFile(rcPath, []byte(existing), 0644))

	wrote, err := InstallShellHook(testSnippet(), rcPath)
	require.NoError(t, err)
	assert.False(t, wrote)

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Equal(t, existing, string(content))
}

func TestInstallShellHook_Idempotent(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".bashrc")

	_, err := InstallShellHook(testSnippet(), rcPath)
	require.NoError(t, err)
	_, err = InstallShellHook(testSnippet(), rcPath)
	require.NoError(t, err)

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(content), shell.Marker))
}

func TestInstallShellHook_AppendsToExisting(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".bashrc")
	require.NoError(t, os.WriteFile(rcPath, []byte("# existing content\n"), 0644))

	_, err := InstallShellHook(testSnippet(), rcPath)
	require.NoError(t, err)

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# existing content\n"))
	assert.Contains(t, string(content), shell.Marker)
}

func TestInstallShellHook_RejectsForeignSnippet(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".bashrc")

	_, err := InstallShellHook("alias ll='ls -l'\n", rcPath)
	assert.Error(t, err)
	_, statErr := os.Stat(rcPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestIsHookInstalled_MissingFile(t *testing.T) {
	assert.False(t, IsHookInstalled(filepath.Join(t.TempDir(), "none")))
}

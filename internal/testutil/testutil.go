// Package testutil provides common test helpers for the jump project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}
	return path
}

// TempStoreFile creates a temporary aliases.json with the given content
// and returns its path.
func TempStoreFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "aliases.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("TempStoreFile: write failed: %v", err)
	}
	return path
}

// StorePath returns a not-yet-created aliases.json path inside a fresh
// temporary directory, nested one level so directory creation is exercised.
func StorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "jump", "aliases.json")
}

// ReadStore reads the raw store document.
func ReadStore(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadStore: read failed: %v", err)
	}
	return string(data)
}

// MkdirTarget creates a directory under a fresh temp dir and returns its path.
func MkdirTarget(t *testing.T, name string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirTarget: mkdir failed: %v", err)
	}
	return dir
}

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateFile writes content to dir/name on disk, creating parent
// directories, and returns the full path
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "mkdir for %s", path)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "write %s", path)
	return path
}

// CreateDir creates parent/name on disk and returns the full path
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)
	require.NoError(t, os.MkdirAll(path, 0755), "mkdir %s", path)
	return path
}

// CreateSymlink links link to target, creating the parent of link
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0755), "mkdir for %s", link)
	require.NoError(t, os.Symlink(target, link), "symlink %s -> %s", link, target)
}

// DirExists reports whether path is a directory on disk, following symlinks
func DirExists(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Chmod sets mode on path and restores 0755 on cleanup so t.TempDir can
// remove it
func Chmod(t *testing.T, path string, mode os.FileMode) {
	t.Helper()

	require.NoError(t, os.Chmod(path, mode), "chmod %s", path)
	t.Cleanup(func() { _ = os.Chmod(path, 0755) })
}

// SkipIfRoot skips tests that depend on permission checks
func SkipIfRoot(t *testing.T) {
	t.Helper()

	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
}

// SkipOnWindows skips tests that need symlinks or POSIX modes
func SkipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("not supported on windows")
	}
}

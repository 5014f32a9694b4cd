package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewMemoryFS returns an empty in-memory filesystem
func NewMemoryFS() afero.Fs {
	return afero.NewMemMapFs()
}

// WriteFile writes content to path on fs, creating parent directories.
// It fails the test on error.
func WriteFile(t *testing.T, fs afero.Fs, path, content string) string {
	t.Helper()

	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755), "mkdir for %s", path)
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644), "write %s", path)
	return path
}

// MkdirAll creates a directory tree on fs. It fails the test on error.
func MkdirAll(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	require.NoError(t, fs.MkdirAll(path, 0755), "mkdir %s", path)
	return path
}

// ErrorFS wraps a filesystem and fails Open and MkdirAll for selected paths.
// Stat is passed through, so an injected directory still looks present but
// cannot be read.
type ErrorFS struct {
	afero.Fs

	mu         sync.RWMutex
	errorPaths map[string]error
}

// NewErrorFS wraps base
func NewErrorFS(base afero.Fs) *ErrorFS {
	return &ErrorFS{
		Fs:         base,
		errorPaths: make(map[string]error),
	}
}

// InjectError makes operations on path fail with err
func (e *ErrorFS) InjectError(path string, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errorPaths[filepath.Clean(path)] = err
}

func (e *ErrorFS) injected(path string) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.errorPaths[filepath.Clean(path)]
}

// Open fails for injected paths
func (e *ErrorFS) Open(name string) (afero.File, error) {
	if err := e.injected(name); err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return e.Fs.Open(name)
}

// MkdirAll fails for injected paths
func (e *ErrorFS) MkdirAll(path string, perm os.FileMode) error {
	if err := e.injected(path); err != nil {
		return &os.PathError{Op: "mkdir", Path: path, Err: err}
	}
	return e.Fs.MkdirAll(path, perm)
}

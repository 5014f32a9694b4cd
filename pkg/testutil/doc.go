// Package testutil provides fixture helpers for pandocpath tests.
//
// Key components:
//   - CreateFile/CreateDir: real filesystem fixtures under t.TempDir()
//   - WriteFile/MkdirAll: fixtures on an afero filesystem
//   - ErrorFS: afero wrapper with per-path error injection
//
// Usage guidelines:
//   - Resolver tests should prefer the in-memory filesystem
//   - Use the real filesystem only for symlink and permission behaviour
//   - All test data should be defined inline, not in external files
package testutil

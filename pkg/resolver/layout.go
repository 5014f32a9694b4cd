package resolver

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/pandocpath/pkg/errors"
)

// userLayoutDirs are created below the user root by EnsureUserLayout
var userLayoutDirs = []string{
	"",
	TemplatesDir,
	filepath.Join(TemplatesDir, "ieee"),
	filepath.Join(TemplatesDir, "acm"),
	filepath.Join(TemplatesDir, "lncs"),
	filepath.Join(TemplatesDir, "custom"),
	CSLDir,
	PresetsDir,
	filepath.Join(PresetsDir, OrganizationsDir),
	AssetsDir,
}

// UserLayoutDirs returns the absolute directories EnsureUserLayout creates
func (r *Resolver) UserLayoutDirs() []string {
	dirs := make([]string, 0, len(userLayoutDirs))
	for _, rel := range userLayoutDirs {
		dirs = append(dirs, filepath.Join(r.layout.UserDir, rel))
	}
	return dirs
}

// EnsureUserLayout creates the user root and its known subdirectories.
// Existing directories are left untouched, so repeated calls are harmless.
func (r *Resolver) EnsureUserLayout(ctx context.Context) error {
	for _, dir := range r.UserLayoutDirs() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir).
				WithDetail("path", dir)
		}
		r.logger.Trace().Str("dir", dir).Msg("Ensured directory")
	}

	r.logger.Info().Str("userDir", r.layout.UserDir).Msg("User layout ready")
	return nil
}

// Package paths derives the two search roots used to resolve pandoc resources.
// It follows the XDG Base Directory specification for the user root.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pandocpath/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigHome selects the base config directory. It is read once at
	// process start by the xdg package; set Options.ConfigHome to override.
	EnvConfigHome = "XDG_CONFIG_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Directory names making up both search roots. These are fixed so that
// project and user trees share the same layout.
const (
	// ProjectConfigDir is the hidden directory at the project root
	ProjectConfigDir = ".opencode"

	// AppDirName is the application directory under the config base
	AppDirName = "opencode"

	// PandocDirName is the pandoc directory under both roots
	PandocDirName = "pandoc"
)

// Layout holds the resolved search roots. ProjectRoot and ProjectDir are
// empty when no project root could be determined.
type Layout struct {
	ProjectRoot string
	ProjectDir  string
	UserDir     string

	// UsedFallback is set when the working directory stood in for an
	// unspecified project root
	UsedFallback bool
}

// HasProject reports whether a project search root is configured
func (l Layout) HasProject() bool {
	return l.ProjectDir != ""
}

// New resolves the search roots. An empty projectRoot falls back to the
// current working directory; an empty configHome falls back to the XDG
// config home.
func New(projectRoot, configHome string) (Layout, error) {
	var l Layout

	if projectRoot == "" {
		cwd, err := os.Getwd()
		if err == nil {
			projectRoot = cwd
			l.UsedFallback = true
		}
	}

	if projectRoot != "" {
		absRoot, err := filepath.Abs(expandHome(projectRoot))
		if err != nil {
			return Layout{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for project root %q", projectRoot)
		}
		l.ProjectRoot = absRoot
		l.ProjectDir = ProjectPandocDir(absRoot)
	}

	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	absConfig, err := filepath.Abs(expandHome(configHome))
	if err != nil {
		return Layout{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for config home %q", configHome)
	}
	l.UserDir = UserPandocDir(absConfig)

	return l, nil
}

// ProjectPandocDir returns <projectRoot>/.opencode/pandoc
func ProjectPandocDir(projectRoot string) string {
	return filepath.Join(projectRoot, ProjectConfigDir, PandocDirName)
}

// UserPandocDir returns <configHome>/opencode/pandoc
func UserPandocDir(configHome string) string {
	return filepath.Join(configHome, AppDirName, PandocDirName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

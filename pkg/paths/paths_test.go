package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name        string
		projectRoot string
		configHome  string
		envSetup    map[string]string
		validate    func(t *testing.T, l Layout)
	}{
		{
			name:        "explicit roots",
			projectRoot: "/work/paper",
			configHome:  "/custom/config",
			validate: func(t *testing.T, l Layout) {
				assert.Equal(t, "/work/paper", l.ProjectRoot)
				assert.Equal(t, "/work/paper/.opencode/pandoc", l.ProjectDir)
				assert.Equal(t, "/custom/config/opencode/pandoc", l.UserDir)
				assert.False(t, l.UsedFallback)
				assert.True(t, l.HasProject())
			},
		},
		{
			name:       "working directory fallback",
			configHome: "/custom/config",
			validate: func(t *testing.T, l Layout) {
				cwd, err := os.Getwd()
				require.NoError(t, err)
				assert.Equal(t, cwd, l.ProjectRoot)
				assert.Equal(t, filepath.Join(cwd, ".opencode", "pandoc"), l.ProjectDir)
				assert.True(t, l.UsedFallback)
			},
		},
		{
			name:        "config home from XDG_CONFIG_HOME",
			projectRoot: "/work/paper",
			envSetup: map[string]string{
				EnvConfigHome: "/xdg/config",
			},
			validate: func(t *testing.T, l Layout) {
				assert.Equal(t, "/xdg/config/opencode/pandoc", l.UserDir)
			},
		},
		{
			name:        "tilde expansion",
			projectRoot: "~/paper",
			configHome:  "~/.cfg",
			validate: func(t *testing.T, l Layout) {
				assert.Equal(t, filepath.Join(homeDir, "paper"), l.ProjectRoot)
				assert.Equal(t, filepath.Join(homeDir, ".cfg", "opencode", "pandoc"), l.UserDir)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(xdg.Reload)
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}
			xdg.Reload()

			l, err := New(tt.projectRoot, tt.configHome)
			require.NoError(t, err)
			tt.validate(t, l)
		})
	}
}

func TestLayoutWithoutProject(t *testing.T) {
	l := Layout{UserDir: "/u/opencode/pandoc"}
	assert.False(t, l.HasProject())
}

func TestExpandHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"just tilde", "~", homeDir},
		{"tilde with path", "~/paper", filepath.Join(homeDir, "paper")},
		{"tilde other user", "~other/path", "~other/path"},
		{"no tilde", "/absolute/path", "/absolute/path"},
		{"relative path", "relative/path", "relative/path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandHome(tt.input))
		})
	}
}

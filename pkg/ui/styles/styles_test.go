package styles_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/pandocpath/pkg/ui/styles"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	expected := []string{
		"Header", "TableHeader", "Name", "Path", "Key", "Muted",
		"Italic", "Project", "User", "Error", "Warning", "Success",
	}

	m := styles.For(styles.NewRenderer(&bytes.Buffer{}, styles.ColorNever))
	for _, name := range expected {
		_, ok := m[name]
		assert.True(t, ok, "style %s should exist", name)
	}
	assert.ElementsMatch(t, expected, styles.Names())
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		mode string
		want termenv.Profile
	}{
		{styles.ColorNever, termenv.Ascii},
		{styles.ColorAlways, termenv.TrueColor},
		{styles.ColorAuto, termenv.Ascii},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			r := styles.NewRenderer(&bytes.Buffer{}, tt.mode)
			assert.Equal(t, tt.want, r.ColorProfile())
		})
	}
}

func TestStylesFollowRendererProfile(t *testing.T) {
	plain := styles.For(styles.NewRenderer(&bytes.Buffer{}, styles.ColorNever))
	assert.Equal(t, "project", plain["Project"].Render("project"))

	colored := styles.For(styles.NewRenderer(&bytes.Buffer{}, styles.ColorAlways))
	assert.Contains(t, colored["Project"].Render("project"), "\x1b[")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, styles.IsTerminal(&bytes.Buffer{}))
}

func TestLoadStylesFromDataRejectsBadYAML(t *testing.T) {
	err := styles.LoadStylesFromData([]byte("styles: [unclosed"))
	require.Error(t, err)
}

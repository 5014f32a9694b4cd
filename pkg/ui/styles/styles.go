// Package styles defines the visual styling for pandocpath's terminal output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. Style names are used as tags in output templates:
//
//	<Project>project</Project> <Path>/work/paper/.opencode/pandoc</Path>
package styles

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/pandocpath/pkg/ui/lipbalm"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Color modes understood by NewRenderer
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	Width      int    `yaml:"width,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var defs Config

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		defs = Config{}
	}
}

// LoadStylesFromData replaces the style definitions with the YAML in data
func LoadStylesFromData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}
	defs = config
	return nil
}

// Names returns the defined style names
func Names() []string {
	names := make([]string, 0, len(defs.Styles))
	for name := range defs.Styles {
		names = append(names, name)
	}
	return names
}

// For builds the style map bound to r
func For(r *lipgloss.Renderer) lipbalm.StyleMap {
	m := make(lipbalm.StyleMap, len(defs.Styles))
	for name, def := range defs.Styles {
		m[name] = buildStyle(r, def)
	}
	return m
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(r *lipgloss.Renderer, def StyleDef) lipgloss.Style {
	style := r.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if c, ok := defs.Colors[def.Foreground]; ok {
		style = style.Foreground(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
	}
	if c, ok := defs.Colors[def.Background]; ok {
		style = style.Background(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}

	return style
}

// NewRenderer returns a lipgloss renderer for w honouring mode. In auto
// mode color is used only when w is a terminal and NO_COLOR is unset.
func NewRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)

	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		if os.Getenv("NO_COLOR") != "" || !IsTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	}
	return r
}

// IsTerminal reports whether w is a terminal file
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

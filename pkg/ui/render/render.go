package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/arthur-debert/pandocpath/pkg/config"
	"github.com/arthur-debert/pandocpath/pkg/cslmeta"
	"github.com/arthur-debert/pandocpath/pkg/errors"
	"github.com/arthur-debert/pandocpath/pkg/logging"
	"github.com/arthur-debert/pandocpath/pkg/resolver"
	"github.com/arthur-debert/pandocpath/pkg/ui/lipbalm"
	"github.com/arthur-debert/pandocpath/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Resolution is the result of a single lookup
type Resolution struct {
	Kind   string          `json:"kind" yaml:"kind" toml:"kind"`
	Name   string          `json:"name" yaml:"name" toml:"name"`
	Path   string          `json:"path" yaml:"path" toml:"path"`
	Source resolver.Source `json:"source" yaml:"source" toml:"source"`
}

// Listing is the merged listing of one kind
type Listing struct {
	Kind    string           `json:"kind" yaml:"kind" toml:"kind"`
	Entries []resolver.Entry `json:"entries" yaml:"entries" toml:"entries"`
}

// Paths describes the active search roots
type Paths struct {
	ProjectRoot string `json:"projectRoot" yaml:"projectRoot" toml:"projectRoot"`
	ProjectDir  string `json:"projectDir" yaml:"projectDir" toml:"projectDir"`
	UserDir     string `json:"userDir" yaml:"userDir" toml:"userDir"`
	Fallback    bool   `json:"workingDirFallback" yaml:"workingDirFallback" toml:"workingDirFallback"`
}

// Init reports the directories ensured by init
type Init struct {
	UserDir     string   `json:"userDir" yaml:"userDir" toml:"userDir"`
	Directories []string `json:"directories" yaml:"directories" toml:"directories"`
}

// Renderer writes results to w in one output format
type Renderer struct {
	w         io.Writer
	format    string
	styles    lipbalm.StyleMap
	templates *template.Template
}

// New creates a renderer. color is one of auto, always or never.
func New(w io.Writer, format, color string) (*Renderer, error) {
	log := logging.GetLogger("render")

	format = strings.ToLower(format)
	if format == "" {
		format = config.FormatText
	}
	if !isFormat(format) {
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported output format %q (want one of %s)",
			format, strings.Join(config.Formats(), ", ")).
			WithDetail("format", format)
	}

	lr := styles.NewRenderer(w, color)
	lipbalm.SetDefaultRenderer(lr)

	funcs := template.FuncMap{"join": strings.Join}
	for k, v := range lipbalm.FuncMap {
		funcs[k] = v
	}
	tmpl, err := template.New("render").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to parse templates")
	}

	log.Debug().
		Str("format", format).
		Str("color", color).
		Str("colorProfile", fmt.Sprintf("%v", lr.ColorProfile())).
		Msg("Renderer created")

	return &Renderer{
		w:         w,
		format:    format,
		styles:    styles.For(lr),
		templates: tmpl,
	}, nil
}

// Format returns the output format in use
func (r *Renderer) Format() string {
	return r.format
}

// Resolution prints a resolved path
func (r *Renderer) Resolution(res Resolution) error {
	if r.format != config.FormatText {
		return r.encode(res)
	}
	return r.execute("resolution.tmpl", res)
}

// Listing prints entries as a table
func (r *Renderer) Listing(l Listing) error {
	if l.Entries == nil {
		l.Entries = []resolver.Entry{}
	}
	if r.format != config.FormatText {
		return r.encode(l)
	}
	if len(l.Entries) == 0 {
		return r.execute("empty.tmpl", l)
	}

	data := pterm.TableData{{
		r.styles["TableHeader"].Render("NAME"),
		r.styles["TableHeader"].Render("SOURCE"),
		r.styles["TableHeader"].Render("PATH"),
	}}
	for _, e := range l.Entries {
		data = append(data, []string{
			r.styles["Name"].Render(e.Name),
			r.sourceStyle(e.Source).Render(string(e.Source)),
			r.styles["Path"].Render(e.Path),
		})
	}

	plain := pterm.NewStyle()
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithStyle(plain).
		WithHeaderStyle(plain).
		WithSeparator("  ").
		WithSeparatorStyle(plain).
		WithData(data).
		Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}

	_, err = fmt.Fprintln(r.w, strings.TrimRight(table, "\n"))
	return err
}

// Paths prints the active search roots
func (r *Renderer) Paths(p Paths) error {
	if r.format != config.FormatText {
		return r.encode(p)
	}
	return r.execute("paths.tmpl", p)
}

// Init prints the ensured user layout
func (r *Renderer) Init(i Init) error {
	if r.format != config.FormatText {
		return r.encode(i)
	}
	return r.execute("init.tmpl", i)
}

// Style prints CSL style metadata
func (r *Renderer) Style(s cslmeta.Style) error {
	if r.format != config.FormatText {
		return r.encode(s)
	}
	return r.execute("style.tmpl", s)
}

// Error prints err as a styled message regardless of format
func (r *Renderer) Error(err error) error {
	return r.execute("error.tmpl", map[string]string{"Message": err.Error()})
}

func (r *Renderer) sourceStyle(s resolver.Source) lipgloss.Style {
	if s == resolver.SourceProject {
		return r.styles["Project"]
	}
	return r.styles["User"]
}

func (r *Renderer) execute(name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to execute template %s", name)
	}

	out, err := lipbalm.ExpandTags(strings.TrimRight(buf.String(), "\n"), r.styles)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to expand style tags")
	}

	_, err = fmt.Fprintln(r.w, out)
	return err
}

func (r *Renderer) encode(v interface{}) error {
	switch r.format {
	case config.FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatTOML:
		return toml.NewEncoder(r.w).Encode(v)
	}
	return errors.Newf(errors.ErrInternal, "no encoder for format %q", r.format)
}

func isFormat(format string) bool {
	for _, f := range config.Formats() {
		if f == format {
			return true
		}
	}
	return false
}

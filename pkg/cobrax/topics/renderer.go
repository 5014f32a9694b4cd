package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer turns the raw content of a topic file into terminal text.
// ext is the file extension including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics unchanged
type PlainRenderer struct{}

func (PlainRenderer) Render(content string, ext string) string {
	return content
}

// MarkdownRenderer renders .md topics with glamour. Other files, and
// markdown glamour fails on, are printed unchanged.
type MarkdownRenderer struct {
	// Style is a glamour style name such as "dark" or "notty", or a
	// path to a style file. Empty means detect from the terminal.
	Style string

	// WordWrap wraps at this many columns when positive
	WordWrap int
}

// NewMarkdownRenderer returns a renderer that picks its style from the terminal
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

func (r *MarkdownRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Style != "" {
		opts = []glamour.TermRendererOption{glamour.WithStylePath(r.Style)}
	}
	if r.WordWrap > 0 {
		opts = append(opts, glamour.WithWordWrap(r.WordWrap))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}

package lipbalm

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// NoFormatTag content is only emitted when styling is off
const NoFormatTag = "no-format"

const rootTag = "lipbalm-root"

// StyleMap maps tag names to styles
type StyleMap map[string]lipgloss.Style

var (
	mu       sync.RWMutex
	renderer = lipgloss.DefaultRenderer()
)

// SetDefaultRenderer sets the renderer whose color profile decides whether
// tags are expanded into styles or stripped
func SetDefaultRenderer(r *lipgloss.Renderer) {
	mu.Lock()
	defer mu.Unlock()
	renderer = r
}

func plainOutput() bool {
	mu.RLock()
	defer mu.RUnlock()
	return renderer.ColorProfile() == termenv.Ascii
}

// FuncMap is available to templates passed to Render
var FuncMap = template.FuncMap{
	"esc": Escape,
}

// Escape makes s safe to embed between tags
func Escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Render executes tmpl with data and expands the style tags in the result
func Render(tmpl string, data interface{}, styles StyleMap) (string, error) {
	t, err := template.New("lipbalm").Funcs(FuncMap).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return ExpandTags(buf.String(), styles)
}

// ExpandTags replaces style tags with styled text. Unknown tags keep their
// content unstyled. Input that is not well-formed is returned unchanged.
func ExpandTags(input string, styles StyleMap) (string, error) {
	if input == "" {
		return "", nil
	}

	plain := plainOutput()
	out, err := walk(input, func(name, inner string) string {
		if name == NoFormatTag {
			if plain {
				return inner
			}
			return ""
		}
		if plain {
			return inner
		}
		if style, ok := styles[name]; ok {
			return style.Render(inner)
		}
		return inner
	})
	if err != nil {
		return input, nil
	}
	return out, nil
}

// StripTags removes all tags, keeping their content
func StripTags(input string) string {
	out, err := walk(input, func(_, inner string) string { return inner })
	if err != nil {
		return input
	}
	return out
}

// walk parses input as XML content and rebuilds it bottom-up, letting apply
// decide what each element becomes
func walk(input string, apply func(name, inner string) string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader("<" + rootTag + ">" + input + "</" + rootTag + ">"))
	dec.Strict = true

	type frame struct {
		name string
		buf  strings.Builder
	}
	var stack []*frame

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, &frame{name: t.Name.Local})
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].buf.Write(t)
			}
		case xml.EndElement:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.name == rootTag {
				return top.buf.String(), nil
			}
			stack[len(stack)-1].buf.WriteString(apply(top.name, top.buf.String()))
		}
	}

	return "", io.ErrUnexpectedEOF
}

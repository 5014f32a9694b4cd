// Package cslmeta reads descriptive metadata from CSL citation style files.
// It only extracts the <info> block; styles are not validated.
package cslmeta

import (
	"strings"

	"github.com/arthur-debert/pandocpath/pkg/errors"
	"github.com/beevik/etree"
	"github.com/spf13/afero"
)

// Style is the metadata of one citation style
type Style struct {
	Path           string   `json:"path" yaml:"path" toml:"path"`
	Title          string   `json:"title" yaml:"title" toml:"title"`
	TitleShort     string   `json:"titleShort,omitempty" yaml:"titleShort,omitempty" toml:"titleShort,omitempty"`
	ID             string   `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Class          string   `json:"class,omitempty" yaml:"class,omitempty" toml:"class,omitempty"`
	Version        string   `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	DefaultLocale  string   `json:"defaultLocale,omitempty" yaml:"defaultLocale,omitempty" toml:"defaultLocale,omitempty"`
	CitationFormat string   `json:"citationFormat,omitempty" yaml:"citationFormat,omitempty" toml:"citationFormat,omitempty"`
	Fields         []string `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields,omitempty"`
	Updated        string   `json:"updated,omitempty" yaml:"updated,omitempty" toml:"updated,omitempty"`
}

// Read parses the style at path on fs
func Read(fs afero.Fs, path string) (Style, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Style{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}

	style, err := Parse(data)
	if err != nil {
		if pe, ok := err.(*errors.PandocError); ok {
			pe.WithDetail("path", path)
		}
		return Style{}, err
	}
	style.Path = path
	return style, nil
}

// Parse extracts metadata from CSL XML. The document must have a root
// <style> element; everything else is optional.
func Parse(data []byte) (Style, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return Style{}, errors.Wrap(err, errors.ErrCSLParse, "malformed CSL document")
	}

	root := doc.Root()
	if root == nil || root.Tag != "style" {
		return Style{}, errors.New(errors.ErrCSLParse, "missing <style> root element")
	}

	s := Style{
		Class:         root.SelectAttrValue("class", ""),
		Version:       root.SelectAttrValue("version", ""),
		DefaultLocale: root.SelectAttrValue("default-locale", ""),
	}

	info := root.SelectElement("info")
	if info == nil {
		return s, nil
	}

	s.Title = childText(info, "title")
	s.TitleShort = childText(info, "title-short")
	s.ID = childText(info, "id")
	s.Updated = childText(info, "updated")

	for _, cat := range info.SelectElements("category") {
		if format := cat.SelectAttrValue("citation-format", ""); format != "" && s.CitationFormat == "" {
			s.CitationFormat = format
		}
		if field := cat.SelectAttrValue("field", ""); field != "" {
			s.Fields = append(s.Fields, field)
		}
	}

	return s, nil
}

func childText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

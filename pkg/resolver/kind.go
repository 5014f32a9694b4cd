package resolver

import (
	"strings"

	"github.com/arthur-debert/pandocpath/pkg/errors"
)

// Kind identifies a family of pandoc resources sharing a subdirectory and a
// filename convention.
type Kind int

const (
	KindTemplate Kind = iota
	KindPreset
	KindCSL
	KindAsset
)

// Canonical file and subdirectory names of the on-disk layout
const (
	TemplatesDir     = "templates"
	PresetsDir       = "presets"
	CSLDir           = "csl"
	AssetsDir        = "assets"
	OrganizationsDir = "organizations"

	TemplateExt       = ".latex"
	PresetExt         = ".yaml"
	CSLExt            = ".csl"
	CanonicalTemplate = "template" + TemplateExt
)

// convention describes how a logical name maps to candidate files below a
// search root.
type convention struct {
	subdir string
	ext    string

	// forceExt appends ext unless the name already ends with it
	forceExt bool

	// implicitExt appends ext as a second candidate when the name has no dot
	implicitExt bool

	// canonicalFile allows <name>/<canonicalFile> in place of a file
	canonicalFile string

	// nested groupings probed after the flat candidates
	nested []string

	// projectFallback probes <project root>/<name> after both roots
	projectFallback bool
}

var conventions = map[Kind]convention{
	KindTemplate: {
		subdir:        TemplatesDir,
		ext:           TemplateExt,
		implicitExt:   true,
		canonicalFile: CanonicalTemplate,
	},
	KindPreset: {
		subdir:   PresetsDir,
		ext:      PresetExt,
		forceExt: true,
		nested:   []string{OrganizationsDir},
	},
	KindCSL: {
		subdir:   CSLDir,
		ext:      CSLExt,
		forceExt: true,
	},
	KindAsset: {
		projectFallback: true,
	},
}

var kindNames = map[Kind]string{
	KindTemplate: "template",
	KindPreset:   "preset",
	KindCSL:      "csl",
	KindAsset:    "asset",
}

// String returns the singular name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Plural returns the name used when talking about several resources
func (k Kind) Plural() string {
	switch k {
	case KindCSL:
		return "CSL styles"
	case KindTemplate, KindPreset, KindAsset:
		return k.String() + "s"
	}
	return "unknown"
}

// Listable reports whether List supports the kind
func (k Kind) Listable() bool {
	return k == KindTemplate || k == KindPreset || k == KindCSL
}

// Kinds returns every known kind in resolution-table order
func Kinds() []Kind {
	return []Kind{KindTemplate, KindPreset, KindCSL, KindAsset}
}

// ParseKind maps a user-facing name to a Kind. Plural forms and "style" are
// accepted.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "template", "templates":
		return KindTemplate, nil
	case "preset", "presets":
		return KindPreset, nil
	case "csl", "style", "styles", "csl-style", "csl-styles":
		return KindCSL, nil
	case "asset", "assets":
		return KindAsset, nil
	}
	return 0, errors.Newf(errors.ErrUnknownKind, "unknown resource kind %q", s).
		WithDetail("kind", s)
}

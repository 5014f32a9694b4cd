package resolver

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pandocpath/pkg/logging"
	"github.com/arthur-debert/pandocpath/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Source records which search root satisfied a lookup
type Source string

const (
	SourceProject Source = "project"
	SourceUser    Source = "user"
)

// Resolved is the result of a successful lookup
type Resolved struct {
	Path   string `json:"path" yaml:"path" toml:"path"`
	Source Source `json:"source" yaml:"source" toml:"source"`
}

// Resolver maps resource names to files below the project and user roots.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	layout paths.Layout
	fs     afero.Fs
	logger zerolog.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithFS sets the filesystem the resolver probes. Defaults to the OS filesystem.
func WithFS(fs afero.Fs) Option {
	return func(r *Resolver) {
		r.fs = fs
	}
}

// WithLogger replaces the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a Resolver over the given search roots
func New(layout paths.Layout, opts ...Option) *Resolver {
	r := &Resolver{
		layout: layout,
		fs:     afero.NewOsFs(),
		logger: logging.GetLogger("resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ProjectRoot returns the project root, or "" when there is none
func (r *Resolver) ProjectRoot() string {
	return r.layout.ProjectRoot
}

// ProjectDir returns the project pandoc directory, or "" when there is no project root
func (r *Resolver) ProjectDir() string {
	return r.layout.ProjectDir
}

// UserDir returns the user pandoc directory
func (r *Resolver) UserDir() string {
	return r.layout.UserDir
}

// FS returns the filesystem the resolver probes
func (r *Resolver) FS() afero.Fs {
	return r.fs
}

type searchRoot struct {
	dir    string
	source Source
}

// roots returns the search roots in precedence order
func (r *Resolver) roots() []searchRoot {
	roots := make([]searchRoot, 0, 2)
	if r.layout.HasProject() {
		roots = append(roots, searchRoot{dir: r.layout.ProjectDir, source: SourceProject})
	}
	return append(roots, searchRoot{dir: r.layout.UserDir, source: SourceUser})
}

// Resolve locates the file for name. Absolute names bypass the search roots
// and resolve iff they exist. The boolean is false when nothing matched;
// that is the expected outcome for a missing resource, not a fault.
//
// A directory never satisfies the exact template candidate: templates/<name>
// must be a file, and a directory only matches through its template.latex.
// An empty name gets no special treatment.
func (r *Resolver) Resolve(kind Kind, name string) (Resolved, bool) {
	conv, ok := conventions[kind]
	if !ok {
		r.logger.Debug().Int("kind", int(kind)).Msg("Unknown resource kind")
		return Resolved{}, false
	}

	if filepath.IsAbs(name) {
		if r.exists(name, false) {
			return Resolved{Path: name, Source: SourceUser}, true
		}
		return Resolved{}, false
	}

	for _, root := range r.roots() {
		for _, c := range conv.candidates(root.dir, name) {
			if r.exists(c.path, c.fileOnly) {
				r.logger.Debug().
					Str("kind", kind.String()).
					Str("name", name).
					Str("path", c.path).
					Str("source", string(root.source)).
					Msg("Resolved resource")
				return Resolved{Path: c.path, Source: root.source}, true
			}
		}
	}

	if conv.projectFallback && r.layout.ProjectRoot != "" {
		path := filepath.Join(r.layout.ProjectRoot, name)
		if r.exists(path, false) {
			return Resolved{Path: path, Source: SourceProject}, true
		}
	}

	r.logger.Debug().Str("kind", kind.String()).Str("name", name).Msg("Resource not found")
	return Resolved{}, false
}

// ResolveTemplate resolves a LaTeX template by name
func (r *Resolver) ResolveTemplate(name string) (Resolved, bool) {
	return r.Resolve(KindTemplate, name)
}

// ResolvePreset resolves a YAML preset by name
func (r *Resolver) ResolvePreset(name string) (Resolved, bool) {
	return r.Resolve(KindPreset, name)
}

// ResolveCSL resolves a citation style by name
func (r *Resolver) ResolveCSL(name string) (Resolved, bool) {
	return r.Resolve(KindCSL, name)
}

// ResolveAsset resolves an asset path such as a logo or image
func (r *Resolver) ResolveAsset(path string) (Resolved, bool) {
	return r.Resolve(KindAsset, path)
}

type candidate struct {
	path     string
	fileOnly bool
}

// candidates lists the paths probed below one root, in precedence order
func (c convention) candidates(rootDir, name string) []candidate {
	base := filepath.Join(rootDir, c.subdir)

	fileName := name
	if c.forceExt && !strings.HasSuffix(name, c.ext) {
		fileName = name + c.ext
	}

	// A template directory must resolve to its canonical file, not itself
	out := []candidate{{path: filepath.Join(base, fileName), fileOnly: c.canonicalFile != ""}}

	if c.implicitExt && !strings.Contains(name, ".") {
		out = append(out, candidate{path: filepath.Join(base, name) + c.ext})
	}
	if c.canonicalFile != "" {
		out = append(out, candidate{path: filepath.Join(base, name, c.canonicalFile)})
	}
	for _, group := range c.nested {
		out = append(out, candidate{path: filepath.Join(base, group, fileName)})
	}
	return out
}

func (r *Resolver) exists(path string, fileOnly bool) bool {
	info, err := r.fs.Stat(path)
	if err != nil {
		r.logger.Trace().Str("path", path).Msg("Candidate missing")
		return false
	}
	if fileOnly && info.IsDir() {
		r.logger.Trace().Str("path", path).Msg("Candidate is a directory")
		return false
	}
	return true
}

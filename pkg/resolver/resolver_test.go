package resolver_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pandocpath/pkg/errors"
	"github.com/arthur-debert/pandocpath/pkg/paths"
	"github.com/arthur-debert/pandocpath/pkg/resolver"
	"github.com/arthur-debert/pandocpath/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	projectRoot = "/work/paper"
	projectDir  = "/work/paper/.opencode/pandoc"
	userDir     = "/home/ada/.config/opencode/pandoc"
)

func testLayout() paths.Layout {
	return paths.Layout{
		ProjectRoot: projectRoot,
		ProjectDir:  projectDir,
		UserDir:     userDir,
	}
}

func newMemResolver(t *testing.T, files ...string) (*resolver.Resolver, afero.Fs) {
	t.Helper()

	fs := testutil.NewMemoryFS()
	for _, f := range files {
		testutil.WriteFile(t, fs, f, "content of "+filepath.Base(f))
	}
	return resolver.New(testLayout(), resolver.WithFS(fs)), fs
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		files      []string
		dirs       []string
		kind       resolver.Kind
		resource   string
		wantPath   string
		wantSource resolver.Source
		wantFound  bool
	}{
		{
			name:       "template implicit extension in user root",
			files:      []string{userDir + "/templates/ieee.latex"},
			kind:       resolver.KindTemplate,
			resource:   "ieee",
			wantPath:   userDir + "/templates/ieee.latex",
			wantSource: resolver.SourceUser,
			wantFound:  true,
		},
		{
			name: "project template preferred over user template",
			files: []string{
				projectDir + "/templates/ieee.latex",
				userDir + "/templates/ieee.latex",
			},
			kind:       resolver.KindTemplate,
			resource:   "ieee",
			wantPath:   projectDir + "/templates/ieee.latex",
			wantSource: resolver.SourceProject,
			wantFound:  true,
		},
		{
			name:       "template exact name with extension",
			files:      []string{userDir + "/templates/ieee.latex"},
			kind:       resolver.KindTemplate,
			resource:   "ieee.latex",
			wantPath:   userDir + "/templates/ieee.latex",
			wantSource: resolver.SourceUser,
			wantFound:  true,
		},
		{
			name:      "dotted template name skips implicit extension",
			files:     []string{userDir + "/templates/ieee.tex.latex"},
			kind:      resolver.KindTemplate,
			resource:  "ieee.tex",
			wantFound: false,
		},
		{
			name:       "template directory convention",
			files:      []string{userDir + "/templates/acm/template.latex"},
			kind:       resolver.KindTemplate,
			resource:   "acm",
			wantPath:   userDir + "/templates/acm/template.latex",
			wantSource: resolver.SourceUser,
			wantFound:  true,
		},
		{
			name:      "template directory without canonical file",
			dirs:      []string{userDir + "/templates/lncs"},
			kind:      resolver.KindTemplate,
			resource:  "lncs",
			wantFound: false,
		},
		{
			name:       "project directory without canonical file falls through",
			files:      []string{userDir + "/templates/ieee.latex"},
			dirs:       []string{projectDir + "/templates/ieee"},
			kind:       resolver.KindTemplate,
			resource:   "ieee",
			wantPath:   userDir + "/templates/ieee.latex",
			wantSource: resolver.SourceUser,
			wantFound:  true,
		},
		{
			name: "project template directory beats user file",
			files: []string{
				projectDir + "/templates/acm/template.latex",
				userDir + "/templates/acm.latex",
			},
			kind:       resolver.KindTemplate,
			resource:   "acm",
			wantPath:   projectDir + "/templates/acm/template.latex",
			wantSource: resolver.SourceProject,
			wantFound:  true,
		},
		{
			name: "implicit extension tried before directory convention",
			files: []string{
				userDir + "/templates/acm.latex",
				userDir + "/templates/acm/template.latex",
			},
			kind:       resolver.KindTemplate,
			resource:   "acm",
			wantPath:   userDir + "/templates/acm.latex",
			wantSource: resolver.SourceUser,
			wantFound:  true,
		},
		{
			name:       "preset gets yaml suffix",
			files:      []string{userDir + "/presets/thesis.yaml"},
			kind:       resolver.KindPreset,
			resource:   "thesis",
			wantPath:   userDir + "/presets/thesis.yaml",
			wantSource: resolver.SourceUser,
			wantFound:  true,
		},
		{
			name:       "preset with suffix is not double suffixed",
			files:      []string{userDir + "/presets/thesis.yaml"},
			kind:       resolver.KindPreset,
			resource:   "thesis.yaml",
			wantPath:   userDir + "/presets/thesis.yaml",
			wantSource: resolver.SourceUser,
			wantFound:  true,
		},
		{
			name:       "preset in organizations grouping",
			files:      []string{projectDir + "/presets/organizations/acme.yaml"},
			kind:       resolver.KindPreset,
			resource:   "acme",
			wantPath:   projectDir + "/presets/organizations/acme.yaml",
			wantSource: resolver.SourceProject,
			wantFound:  true,
		},
		{
			name: "flat preset beats organizations grouping in same root",
			files: []string{
				userDir + "/presets/acme.yaml",
				userDir + "/presets/organizations/acme.yaml",
			},
			kind:       resolver.KindPreset,
			resource:   "acme",
			wantPath:   userDir + "/presets/acme.yaml",
			wantSource: resolver.SourceUser,
			wantFound:  true,
		},
		{
			name: "project organizations grouping beats user flat preset",
			files: []string{
				projectDir + "/presets/organizations/acme.yaml",
				userDir + "/presets/acme.yaml",
			},
			kind:       resolver.KindPreset,
			resource:   "acme",
			wantPath:   projectDir + "/presets/organizations/acme.yaml",
			wantSource: resolver.SourceProject,
			wantFound:  true,
		},
		{
			name:       "csl gets csl suffix",
			files:      []string{userDir + "/csl/apa.csl"},
			kind:       resolver.KindCSL,
			resource:   "apa",
			wantPath:   userDir + "/csl/apa.csl",
			wantSource: resolver.SourceUser,
			wantFound:  true,
		},
		{
			name: "project csl preferred",
			files: []string{
				projectDir + "/csl/apa.csl",
				userDir + "/csl/apa.csl",
			},
			kind:       resolver.KindCSL,
			resource:   "apa.csl",
			wantPath:   projectDir + "/csl/apa.csl",
			wantSource: resolver.SourceProject,
			wantFound:  true,
		},
		{
			name:       "asset below pandoc directory",
			files:      []string{userDir + "/assets/logo.png"},
			kind:       resolver.KindAsset,
			resource:   "assets/logo.png",
			wantPath:   userDir + "/assets/logo.png",
			wantSource: resolver.SourceUser,
			wantFound:  true,
		},
		{
			name:       "asset falls back to project root",
			files:      []string{projectRoot + "/logo.png"},
			kind:       resolver.KindAsset,
			resource:   "logo.png",
			wantPath:   projectRoot + "/logo.png",
			wantSource: resolver.SourceProject,
			wantFound:  true,
		},
		{
			name: "user asset beats project root fallback",
			files: []string{
				userDir + "/logo.png",
				projectRoot + "/logo.png",
			},
			kind:       resolver.KindAsset,
			resource:   "logo.png",
			wantPath:   userDir + "/logo.png",
			wantSource: resolver.SourceUser,
			wantFound:  true,
		},
		{
			name:      "project root fallback is asset only",
			files:     []string{projectRoot + "/apa.csl"},
			kind:      resolver.KindCSL,
			resource:  "apa",
			wantFound: false,
		},
		{
			name:      "missing everywhere",
			kind:      resolver.KindTemplate,
			resource:  "nope",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, fs := newMemResolver(t, tt.files...)
			for _, d := range tt.dirs {
				testutil.MkdirAll(t, fs, d)
			}

			got, found := r.Resolve(tt.kind, tt.resource)

			require.Equal(t, tt.wantFound, found)
			if !tt.wantFound {
				assert.Equal(t, resolver.Resolved{}, got)
				return
			}
			assert.Equal(t, tt.wantPath, got.Path)
			assert.Equal(t, tt.wantSource, got.Source)
		})
	}
}

func TestResolveAbsolutePath(t *testing.T) {
	r, _ := newMemResolver(t,
		"/tmp/foo.csl",
		projectDir+"/csl/tmp/foo.csl",
	)

	for _, kind := range resolver.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			got, found := r.Resolve(kind, "/tmp/foo.csl")
			require.True(t, found)
			assert.Equal(t, resolver.Resolved{Path: "/tmp/foo.csl", Source: resolver.SourceUser}, got)

			_, found = r.Resolve(kind, "/tmp/missing.csl")
			assert.False(t, found)
		})
	}
}

func TestResolveWithoutProjectRoot(t *testing.T) {
	fs := testutil.NewMemoryFS()
	testutil.WriteFile(t, fs, userDir+"/templates/ieee.latex", "")
	testutil.WriteFile(t, fs, projectDir+"/templates/ieee.latex", "")
	testutil.WriteFile(t, fs, projectRoot+"/logo.png", "")

	r := resolver.New(paths.Layout{UserDir: userDir}, resolver.WithFS(fs))

	got, found := r.ResolveTemplate("ieee")
	require.True(t, found)
	assert.Equal(t, resolver.SourceUser, got.Source)

	_, found = r.ResolveAsset("logo.png")
	assert.False(t, found)

	assert.Empty(t, r.ProjectDir())
	assert.Empty(t, r.ProjectRoot())
	assert.Equal(t, userDir, r.UserDir())
}

func TestResolveEmptyName(t *testing.T) {
	r, _ := newMemResolver(t,
		userDir+"/templates/ieee.latex",
		userDir+"/presets/thesis.yaml",
		userDir+"/csl/apa.csl",
		userDir+"/assets/logo.png",
	)

	tests := []struct {
		kind      resolver.Kind
		wantFound bool
		want      resolver.Resolved
	}{
		{kind: resolver.KindTemplate},
		{kind: resolver.KindPreset},
		{kind: resolver.KindCSL},
		// the pandoc directory itself
		{kind: resolver.KindAsset, wantFound: true, want: resolver.Resolved{Path: userDir, Source: resolver.SourceUser}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, found := r.Resolve(tt.kind, "")
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveWrappers(t *testing.T) {
	r, _ := newMemResolver(t,
		userDir+"/templates/ieee.latex",
		userDir+"/presets/thesis.yaml",
		userDir+"/csl/apa.csl",
		userDir+"/assets/logo.png",
	)

	tests := []struct {
		name string
		fn   func(string) (resolver.Resolved, bool)
		arg  string
		want string
	}{
		{"template", r.ResolveTemplate, "ieee", userDir + "/templates/ieee.latex"},
		{"preset", r.ResolvePreset, "thesis", userDir + "/presets/thesis.yaml"},
		{"csl", r.ResolveCSL, "apa", userDir + "/csl/apa.csl"},
		{"asset", r.ResolveAsset, "assets/logo.png", userDir + "/assets/logo.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := tt.fn(tt.arg)
			require.True(t, found)
			assert.Equal(t, tt.want, got.Path)
		})
	}
}

func TestResolveUnknownKind(t *testing.T) {
	r, _ := newMemResolver(t, userDir+"/templates/ieee.latex")

	_, found := r.Resolve(resolver.Kind(42), "ieee")
	assert.False(t, found)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  resolver.Kind
	}{
		{"template", resolver.KindTemplate},
		{"Templates", resolver.KindTemplate},
		{"preset", resolver.KindPreset},
		{"presets", resolver.KindPreset},
		{"csl", resolver.KindCSL},
		{"styles", resolver.KindCSL},
		{"asset", resolver.KindAsset},
		{" assets ", resolver.KindAsset},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := resolver.ParseKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := resolver.ParseKind("font")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownKind))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "template", resolver.KindTemplate.String())
	assert.Equal(t, "preset", resolver.KindPreset.String())
	assert.Equal(t, "csl", resolver.KindCSL.String())
	assert.Equal(t, "asset", resolver.KindAsset.String())
	assert.Equal(t, "unknown", resolver.Kind(42).String())

	assert.Equal(t, "templates", resolver.KindTemplate.Plural())
	assert.Equal(t, "CSL styles", resolver.KindCSL.Plural())
	assert.Equal(t, "assets", resolver.KindAsset.Plural())
}

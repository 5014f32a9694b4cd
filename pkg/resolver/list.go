package resolver

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pandocpath/pkg/logging"
	"github.com/spf13/afero"
)

// Entry is one listed resource
type Entry struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	Source Source `json:"source" yaml:"source" toml:"source"`
	Path   string `json:"path" yaml:"path" toml:"path"`
}

// List enumerates the resources of kind across both roots. Names are unique
// within the result: project entries are scanned first, so a project
// override hides the user entry of the same name. Missing or unreadable
// directories contribute nothing. Assets are not listable and yield nil.
func (r *Resolver) List(kind Kind) []Entry {
	if !kind.Listable() {
		return nil
	}
	conv := conventions[kind]

	done := logging.LogOperationStart(r.logger, "list-"+kind.String())
	defer done()

	var entries []Entry
	seen := make(map[string]struct{})

	for _, root := range r.roots() {
		dir := filepath.Join(root.dir, conv.subdir)

		var found []Entry
		if kind == KindPreset {
			found = r.scanTree(dir, conv.ext)
		} else {
			found = r.scanFlat(dir, conv.ext, conv.canonicalFile)
		}

		for _, e := range found {
			if _, dup := seen[e.Name]; dup {
				continue
			}
			seen[e.Name] = struct{}{}
			e.Source = root.source
			entries = append(entries, e)
		}
	}

	return entries
}

// ListTemplates lists *.latex templates and template directories
func (r *Resolver) ListTemplates() []Entry {
	return r.List(KindTemplate)
}

// ListPresets lists presets, including nested groupings
func (r *Resolver) ListPresets() []Entry {
	return r.List(KindPreset)
}

// ListCSLStyles lists citation styles
func (r *Resolver) ListCSLStyles() []Entry {
	return r.List(KindCSL)
}

// scanFlat reads one directory level. Files ending in ext are listed with
// the suffix stripped; when canonical is set, subdirectories holding that
// file are listed under their own name.
func (r *Resolver) scanFlat(dir, ext, canonical string) []Entry {
	infos, err := afero.ReadDir(r.fs, dir)
	if err != nil {
		r.logScanError(dir, err)
		return nil
	}

	var out []Entry
	for _, info := range infos {
		name := info.Name()
		path := filepath.Join(dir, name)

		isDir := info.IsDir()
		if info.Mode()&os.ModeSymlink != 0 {
			if target, err := r.fs.Stat(path); err == nil {
				isDir = target.IsDir()
			}
		}

		if isDir {
			if canonical == "" {
				continue
			}
			file := filepath.Join(path, canonical)
			if r.exists(file, true) {
				out = append(out, Entry{Name: name, Path: file})
			}
			continue
		}

		if strings.HasSuffix(name, ext) {
			out = append(out, Entry{Name: strings.TrimSuffix(name, ext), Path: path})
		}
	}
	return out
}

// scanTree lists every file ending in ext below dir. Files of a directory
// come before its subdirectories, so a flat preset precedes a nested one of
// the same name, matching resolution order.
func (r *Resolver) scanTree(dir, ext string) []Entry {
	infos, err := afero.ReadDir(r.fs, dir)
	if err != nil {
		r.logScanError(dir, err)
		return nil
	}

	var out []Entry
	var subdirs []string
	for _, info := range infos {
		path := filepath.Join(dir, info.Name())
		if info.IsDir() {
			subdirs = append(subdirs, path)
			continue
		}
		if strings.HasSuffix(info.Name(), ext) {
			out = append(out, Entry{Name: strings.TrimSuffix(info.Name(), ext), Path: path})
		}
	}
	for _, sub := range subdirs {
		out = append(out, r.scanTree(sub, ext)...)
	}
	return out
}

func (r *Resolver) logScanError(dir string, err error) {
	if os.IsNotExist(err) {
		r.logger.Trace().Str("dir", dir).Msg("Directory missing, skipping")
		return
	}
	r.logger.Debug().Err(err).Str("dir", dir).Msg("Cannot read directory, skipping")
}

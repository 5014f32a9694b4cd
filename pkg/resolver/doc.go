// Package resolver locates pandoc templates, presets, citation styles and
// assets across a project-local and a user-global directory.
//
// # Search order
//
// Every relative name is looked up below the project root first and the
// user root second. Within a root the kind's conventions are tried in order:
//
//   - templates: templates/<name>, templates/<name>.latex (only when the
//     name has no dot), templates/<name>/template.latex
//   - presets: presets/<name>.yaml, presets/organizations/<name>.yaml
//   - citation styles: csl/<name>.csl
//   - assets: <name> below the pandoc directory, then <project root>/<name>
//
// The ".yaml" and ".csl" suffixes are appended only when missing. Absolute
// names skip the roots and resolve iff the file exists.
//
// # Listing
//
// List scans the same directories and returns each name once. Project
// entries come first, so a project override hides the user entry with the
// same name. A missing or unreadable directory lists as empty.
//
// # Usage
//
//	layout, err := paths.New("", "")
//	if err != nil {
//	    return err
//	}
//	r := resolver.New(layout)
//	if tpl, ok := r.ResolveTemplate("ieee"); ok {
//	    fmt.Println(tpl.Path, tpl.Source)
//	}
package resolver

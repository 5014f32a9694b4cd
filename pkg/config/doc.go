// Package config loads pandocpath settings.
//
// Sources are layered with koanf, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. an optional TOML file given with --config
//  3. PANDOCPATH_* environment variables
//  4. command-line flag overrides
//
// PANDOCPATH_OUTPUT_FORMAT maps to output.format, PANDOCPATH_PATHS_PROJECT
// to paths.project and so on.
package config

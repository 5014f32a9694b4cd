// Package render prints command results.
//
// Text output goes through embedded templates whose style tags are
// expanded by lipbalm, or stripped when color is off. Listings are laid out
// as pterm tables. The json, yaml and toml formats encode the same result
// values for scripts.
package render

package config

import (
	_ "embed"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultContent returns the built-in settings as TOML, usable as a
// starting point for a settings file
func DefaultContent() string {
	return string(defaultConfig)
}

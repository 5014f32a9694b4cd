package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/pandocpath/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "PANDOCPATH_"

// Keys accepted in override maps
const (
	KeyProject = "paths.project"
	KeyConfig  = "paths.config"
	KeyFormat  = "output.format"
	KeyColor   = "output.color"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the resolved pandocpath configuration
type Config struct {
	Paths  Paths  `koanf:"paths"`
	Output Output `koanf:"output"`
}

// Paths overrides where the two search roots live
type Paths struct {
	Project string `koanf:"project"`
	Config  string `koanf:"config"`
}

// Output controls how commands print results
type Output struct {
	Format string `koanf:"format"`
	Color  string `koanf:"color"`
}

// Formats returns the supported output formats
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatTOML}
}

// Default returns the configuration built from the embedded defaults only
func Default() (*Config, error) {
	return Load("", nil)
}

// Load layers defaults, the optional file at path, the environment and
// overrides, then validates the result. A path that does not exist is an
// error; an empty path skips the file layer.
func Load(path string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
				WithDetail("path", path)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
				WithDetail("path", path)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps PANDOCPATH_OUTPUT_FORMAT to output.format. Empty variables
// are skipped.
func envKey(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "_", "."), value
}

func (c *Config) normalize() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	if !contains(Formats(), c.Output.Format) {
		return errors.Newf(errors.ErrConfigValid, "unsupported output format %q (want one of %s)",
			c.Output.Format, strings.Join(Formats(), ", ")).
			WithDetail("format", c.Output.Format)
	}

	colors := []string{ColorAuto, ColorAlways, ColorNever}
	if !contains(colors, c.Output.Color) {
		return errors.Newf(errors.ErrConfigValid, "unsupported color mode %q (want one of %s)",
			c.Output.Color, strings.Join(colors, ", ")).
			WithDetail("color", c.Output.Color)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

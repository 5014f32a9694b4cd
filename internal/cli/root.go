// Package cli wires the pandocpath commands.
package cli

import (
	"embed"
	"os"

	"github.com/arthur-debert/pandocpath/internal/version"
	"github.com/arthur-debert/pandocpath/pkg/cobrax/topics"
	"github.com/arthur-debert/pandocpath/pkg/config"
	"github.com/arthur-debert/pandocpath/pkg/errors"
	"github.com/arthur-debert/pandocpath/pkg/logging"
	"github.com/arthur-debert/pandocpath/pkg/paths"
	"github.com/arthur-debert/pandocpath/pkg/resolver"
	"github.com/arthur-debert/pandocpath/pkg/ui/render"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// Option configures the root command
type Option func(*options)

type options struct {
	fs afero.Fs
}

// WithFS makes commands read and create resources on fs
func WithFS(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// flags holds the global flag values
type flags struct {
	verbosity  int
	project    string
	configHome string
	configFile string
	format     string
	color      string
}

// env is what a command needs once settings are loaded
type env struct {
	cfg      *config.Config
	layout   paths.Layout
	resolver *resolver.Resolver
	out      *render.Renderer
}

type app struct {
	opts  options
	flags flags
}

// NewRootCmd creates and returns the root command
func NewRootCmd(opts ...Option) *cobra.Command {
	initTemplateFormatting()

	a := &app{opts: options{fs: afero.NewOsFs()}}
	for _, opt := range opts {
		opt(&a.opts)
	}

	rootCmd := &cobra.Command{
		Use:     "pandocpath",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&a.flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&a.flags.project, "project", "p", "", MsgFlagProject)
	pf.StringVar(&a.flags.configHome, "config-home", "", MsgFlagConfigHome)
	pf.StringVarP(&a.flags.configFile, "config", "c", "", MsgFlagConfig)
	pf.StringVarP(&a.flags.format, "format", "f", "", MsgFlagFormat)
	pf.StringVar(&a.flags.color, "color", "", MsgFlagColor)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{config.ColorAuto, config.ColorAlways, config.ColorNever}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newResolveCmd())
	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newDescribeCmd())
	rootCmd.AddCommand(a.newInitCmd())
	rootCmd.AddCommand(a.newPathsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	var renderer topics.Renderer = topics.PlainRenderer{}
	if stdoutIsTerminal() {
		md := topics.NewMarkdownRenderer()
		if os.Getenv("NO_COLOR") != "" {
			md.Style = "notty"
		}
		renderer = md
	}
	if _, err := topics.InitializeWithOptions(rootCmd, topicsFS, "topics", topics.Options{
		Extensions: []string{".md"},
		Renderer:   renderer,
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// overrides turns explicitly set flags into settings keys
func (a *app) overrides(cmd *cobra.Command) map[string]interface{} {
	o := map[string]interface{}{}
	set := map[string]struct {
		key   string
		value string
	}{
		"project":     {config.KeyProject, a.flags.project},
		"config-home": {config.KeyConfig, a.flags.configHome},
		"format":      {config.KeyFormat, a.flags.format},
		"color":       {config.KeyColor, a.flags.color},
	}
	for name, s := range set {
		if cmd.Flags().Changed(name) {
			o[s.key] = s.value
		}
	}
	return o
}

// load reads settings and builds the resolver and renderer for cmd
func (a *app) load(cmd *cobra.Command) (*env, error) {
	logger := logging.GetLogger("cli")

	cfg, err := config.Load(a.flags.configFile, a.overrides(cmd))
	if err != nil {
		return nil, err
	}

	layout, err := paths.New(cfg.Paths.Project, cfg.Paths.Config)
	if err != nil {
		return nil, err
	}

	out, err := render.New(cmd.OutOrStdout(), cfg.Output.Format, cfg.Output.Color)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("projectRoot", layout.ProjectRoot).
		Bool("workingDirFallback", layout.UsedFallback).
		Str("userDir", layout.UserDir).
		Str("format", cfg.Output.Format).
		Msg("Settings loaded")

	return &env{
		cfg:      cfg,
		layout:   layout,
		resolver: resolver.New(layout, resolver.WithFS(a.opts.fs)),
		out:      out,
	}, nil
}

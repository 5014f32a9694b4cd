package cli

import (
	"fmt"

	"github.com/arthur-debert/pandocpath/internal/version"
	"github.com/arthur-debert/pandocpath/pkg/cslmeta"
	"github.com/arthur-debert/pandocpath/pkg/errors"
	"github.com/arthur-debert/pandocpath/pkg/logging"
	"github.com/arthur-debert/pandocpath/pkg/resolver"
	"github.com/arthur-debert/pandocpath/pkg/ui/render"
	"github.com/spf13/cobra"
)

func (a *app) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "resolve <kind> <name>",
		Short:             MsgResolveShort,
		Long:              MsgResolveLong,
		Example:           MsgResolveExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: a.completeResource,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := resolver.ParseKind(args[0])
			if err != nil {
				return err
			}

			e, err := a.load(cmd)
			if err != nil {
				return err
			}

			res, err := resolve(e.resolver, kind, args[1])
			if err != nil {
				return err
			}

			return e.out.Resolution(render.Resolution{
				Kind:   kind.String(),
				Name:   args[1],
				Path:   res.Path,
				Source: res.Source,
			})
		},
	}
}

// resolve turns a miss into a NOT_FOUND error for the exit status
func resolve(r *resolver.Resolver, kind resolver.Kind, name string) (resolver.Resolved, error) {
	logger := logging.GetLogger("cli.resolve")

	res, ok := r.Resolve(kind, name)
	if !ok {
		return res, errors.Newf(errors.ErrNotFound, MsgErrNotFound, kind, name).
			WithDetail("kind", kind.String()).
			WithDetail("name", name)
	}

	logger.Info().
		Str("kind", kind.String()).
		Str("name", name).
		Str("path", res.Path).
		Str("source", string(res.Source)).
		Msg("Resolved")
	return res, nil
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "list <templates|presets|csl>",
		Short:     MsgListShort,
		Long:      MsgListLong,
		Example:   MsgListExample,
		GroupID:   "core",
		Aliases:   []string{"ls"},
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"templates", "presets", "csl"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := resolver.ParseKind(args[0])
			if err != nil {
				return err
			}
			if !kind.Listable() {
				return errors.Newf(errors.ErrInvalidInput, MsgErrNotListable, kind.Plural()).
					WithDetail("kind", kind.String())
			}

			e, err := a.load(cmd)
			if err != nil {
				return err
			}

			return e.out.Listing(render.Listing{
				Kind:    kind.Plural(),
				Entries: e.resolver.List(kind),
			})
		},
	}
}

func (a *app) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "describe <csl-style>",
		Short:             MsgDescribeShort,
		Long:              MsgDescribeLong,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.completeNames(resolver.KindCSL),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.load(cmd)
			if err != nil {
				return err
			}

			res, err := resolve(e.resolver, resolver.KindCSL, args[0])
			if err != nil {
				return err
			}

			style, err := cslmeta.Read(e.resolver.FS(), res.Path)
			if err != nil {
				return err
			}
			return e.out.Style(style)
		},
	}
}

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.load(cmd)
			if err != nil {
				return err
			}

			if err := e.resolver.EnsureUserLayout(cmd.Context()); err != nil {
				return err
			}

			return e.out.Init(render.Init{
				UserDir:     e.resolver.UserDir(),
				Directories: e.resolver.UserLayoutDirs(),
			})
		},
	}
}

func (a *app) newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "paths",
		Short:   MsgPathsShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.load(cmd)
			if err != nil {
				return err
			}

			return e.out.Paths(render.Paths{
				ProjectRoot: e.layout.ProjectRoot,
				ProjectDir:  e.layout.ProjectDir,
				UserDir:     e.layout.UserDir,
				Fallback:    e.layout.UsedFallback,
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

// completeResource completes the kind, then names of that kind
func (a *app) completeResource(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		var kinds []string
		for _, k := range resolver.Kinds() {
			kinds = append(kinds, k.String())
		}
		return kinds, cobra.ShellCompDirectiveNoFileComp
	case 1:
		kind, err := resolver.ParseKind(args[0])
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		if !kind.Listable() {
			return nil, cobra.ShellCompDirectiveDefault
		}
		return a.completeNames(kind)(cmd, nil, toComplete)
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// completeNames completes the listed names of one kind
func (a *app) completeNames(kind resolver.Kind) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		e, err := a.load(cmd)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var names []string
		for _, entry := range e.resolver.List(kind) {
			names = append(names, entry.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

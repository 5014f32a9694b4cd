package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/pandocpath/pkg/errors"
	"github.com/arthur-debert/pandocpath/pkg/ui/render"
	"github.com/spf13/cobra"
)

// Exit statuses
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Execute runs pandocpath with the process arguments and returns the exit status
func Execute() int {
	return run(NewRootCmd(), os.Stderr)
}

func run(rootCmd *cobra.Command, stderr io.Writer) int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}
	ReportError(stderr, err)
	return ExitCode(err)
}

// ReportError prints err to w, styled when w is a terminal
func ReportError(w io.Writer, err error) {
	r, rerr := render.New(w, "text", "auto")
	if rerr == nil && r.Error(err) == nil {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// ExitCode maps an error to the process exit status. A resource that
// cannot be found exits with 1, bad usage or settings with 2.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch errors.GetErrorCode(err) {
	case errors.ErrInvalidInput, errors.ErrUnknownKind,
		errors.ErrConfigLoad, errors.ErrConfigParse, errors.ErrConfigValid:
		return ExitUsage
	}
	return ExitError
}

// GenCompletion writes the completion script for shell
func GenCompletion(rootCmd *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	}
	return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownShell, shell).WithDetail("shell", shell)
}

package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Locate pandoc templates, presets, CSL styles and assets"
	MsgResolveShort    = "Print the path a resource name resolves to"
	MsgListShort       = "List available templates, presets or CSL styles"
	MsgInitShort       = "Create the user resource directories"
	MsgPathsShort      = "Show the directories searched for resources"
	MsgDescribeShort   = "Show metadata of a CSL citation style"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagProject    = "Project root holding .opencode/pandoc (default: working directory)"
	MsgFlagConfigHome = "Base configuration directory (default: $XDG_CONFIG_HOME)"
	MsgFlagConfig     = "TOML settings file"
	MsgFlagFormat     = "Output format: text, json, yaml or toml"
	MsgFlagColor      = "Color output: auto, always or never"

	// Errors
	MsgErrNotFound     = "%s %q not found"
	MsgErrNotListable  = "%s cannot be listed"
	MsgErrNoCommand    = "no command specified"
	MsgErrUnknownShell = "unknown shell %q"

	MsgVersionFormat = "pandocpath version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/describe-long.txt
	msgDescribeLongRaw string
	MsgDescribeLong    = strings.TrimSpace(msgDescribeLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort           = "Manage persistent per-user environment variables"
	MsgSetShort            = "Set a variable in the user environment"
	MsgGetShort            = "Print the raw value of a variable"
	MsgRemoveShort         = "Remove a variable from the user environment"
	MsgExistsShort         = "Check if a value is an entry of a list variable"
	MsgAppendShort         = "Append a value at the end of a list variable"
	MsgPrependShort        = "Prepend a value at the beginning of a list variable"
	MsgRemoveFromListShort = "Remove a value from a list variable"
	MsgVersionShort        = "Print version information"
	MsgCompletionShort     = "Generate shell completion script"

	// Group titles
	MsgGroupVariables = "VARIABLES:"
	MsgGroupLists     = "LISTS:"
	MsgGroupMisc      = "MISC:"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/userenv/config.toml)"
	MsgFlagBackend  = "Store backend: auto, registry, file or memory"
	MsgFlagNoNotify = "Do not broadcast changes to running programs"
	MsgFlagOutput   = "Output format: auto, term, text or json"

	// Version output
	MsgVersionFormat = "userenv version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNotFound   = "%s not found"
	MsgErrOpenStore  = "failed to open the environment store"
	MsgErrNoCommand  = "no command specified"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/variables-example.txt
	msgVariablesExampleRaw string
	MsgVariablesExample    = strings.TrimRight(msgVariablesExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

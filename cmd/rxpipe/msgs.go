package rxpipe

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Apply ordered regex rulesets to text"
	MsgApplyShort      = "Apply a ruleset to a file, stdin or the clipboard"
	MsgQuickShort      = "Apply the ruleset bound to a quick command slot"
	MsgListShort       = "List the rulesets in the index"
	MsgShowShort       = "Print the rules of a ruleset"
	MsgEnableShort     = "Enable a ruleset"
	MsgDisableShort    = "Disable a ruleset"
	MsgToggleShort     = "Toggle a ruleset on or off"
	MsgMoveShort       = "Move a ruleset to another position in the index"
	MsgAddShort        = "Add an existing ruleset file to the index"
	MsgRemoveShort     = "Remove a ruleset from the index"
	MsgCreateShort     = "Create a ruleset file and add it to the index"
	MsgConfigShort     = "Manage the configuration file"
	MsgConfigInitShort = "Write a commented configuration file"
	MsgConfigShowShort = "Print the effective configuration"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgEnabled        = "Enabled %s"
	MsgDisabled       = "Disabled %s"
	MsgMoved          = "Moved %s to position %d"
	MsgAdded          = "Added %s to the index"
	MsgAlreadyListed  = "%s is already in the index"
	MsgRemoved        = "Removed %s from the index"
	MsgRemovedFile    = "Removed %s and its file"
	MsgCreated        = "Created %s"
	MsgConfigWritten  = "Wrote configuration to %s"
	MsgNoRules        = "%s has no rules; applying it leaves text unchanged"
	MsgMalformedIndex = "The index could not be read, continuing with an empty list: %v"
	MsgDryRunSkipped  = "Dry run: %s not saved"
	MsgVersionFormat  = "rxpipe version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoInput         = "no text to work on: pass a file, use --clipboard or pipe text on stdin"
	MsgErrClipboardFile   = "--clipboard cannot be combined with a file argument"
	MsgErrLinesNeedFile   = "--lines needs a file argument"
	MsgErrInvalidPosition = "invalid position %q: expected a number from 1"
	MsgErrInvalidSlot     = "invalid quick command slot %q: expected a number from 1"
	MsgErrConfigExists    = "%s already exists, use --force to overwrite it"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Preview changes without writing anything"
	MsgFlagConfig     = "Configuration file (default is $XDG_CONFIG_HOME/rxpipe/config.toml)"
	MsgFlagFormat     = "Output format: auto, term, text, json or yaml"
	MsgFlagNoColor    = "Disable colored output"
	MsgFlagWorkspace  = "Workspace root (default is the enclosing git repository)"
	MsgFlagLines      = "Only transform these lines, e.g. 3:10, 5: or :20"
	MsgFlagClipboard  = "Transform the system clipboard"
	MsgFlagDiff       = "Print a unified diff of the change"
	MsgFlagDeleteFile = "Also delete the ruleset file"
	MsgFlagFrom       = "Read the ruleset content from this file instead of stdin"
	MsgFlagForce      = "Overwrite an existing configuration file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimSpace(msgApplyExampleRaw)

	//go:embed msgs/quick-long.txt
	msgQuickLongRaw string
	MsgQuickLong    = strings.TrimSpace(msgQuickLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/move-example.txt
	msgMoveExampleRaw string
	MsgMoveExample    = strings.TrimSpace(msgMoveExampleRaw)

	//go:embed msgs/create-long.txt
	msgCreateLongRaw string
	MsgCreateLong    = strings.TrimSpace(msgCreateLongRaw)

	//go:embed msgs/create-example.txt
	msgCreateExampleRaw string
	MsgCreateExample    = strings.TrimSpace(msgCreateExampleRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

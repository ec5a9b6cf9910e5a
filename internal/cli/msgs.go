package cli

import (
	_ "embed"
	"strings"
)

const (
	MsgRootShort    = "Mirror a categorised tree as a tree of shortcuts"
	MsgVersionShort = "Print version information"
	MsgConfigShort  = "Print the effective configuration"

	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview changes without executing them"
	MsgFlagConfig    = "Read configuration from this file instead of the user config"
	MsgFlagLinkType  = "Shortcut kind: symlink, toml or webloc"
	MsgFlagSuffix    = "Name suffix of shortcuts (defaults per link type)"
	MsgFlagRecognize = "How shortcuts are recognised when cleaning: suffix or object"
	MsgFlagNoPrune   = "Keep folders left empty by the clean pass"
	MsgFlagOutput    = "Output format: auto, term, text or json"

	MsgVersionFormat = "%s version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
)

var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)

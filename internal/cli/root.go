// Package cli holds the cobra command tree of shortcut-maker.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arthur-debert/shortcut-maker/internal/version"
	"github.com/arthur-debert/shortcut-maker/pkg/config"
	"github.com/arthur-debert/shortcut-maker/pkg/logging"
)

// rootOptions hold the flag values shared by all commands.
type rootOptions struct {
	verbosity  int
	dryRun     bool
	configFile string
	linkType   string
	suffix     string
	recognize  string
	noPrune    bool
	output     string
}

// configFlags maps flag names to the config keys they override.
var configFlags = map[string]string{
	"link-type": "links.type",
	"suffix":    "links.suffix",
	"recognize": "links.recognize",
	"no-prune":  "clean.prune",
	"output":    "output.format",
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "shortcut-maker <target_path> <target_format> <shortcut_path> <shortcut_format>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMirror(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&opts.linkType, "link-type", "", MsgFlagLinkType)
	flags.StringVar(&opts.suffix, "suffix", "", MsgFlagSuffix)
	flags.StringVar(&opts.recognize, "recognize", "", MsgFlagRecognize)
	flags.BoolVar(&opts.noPrune, "no-prune", false, MsgFlagNoPrune)
	flags.StringVarP(&opts.output, "output", "o", "", MsgFlagOutput)

	_ = rootCmd.RegisterFlagCompletionFunc("link-type", fixedCompletion("symlink", "toml", "webloc"))
	_ = rootCmd.RegisterFlagCompletionFunc("recognize", fixedCompletion("object", "suffix"))
	_ = rootCmd.RegisterFlagCompletionFunc("output", fixedCompletion("auto", "term", "text", "json"))

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(opts))

	initTopics(rootCmd)

	return rootCmd
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// loadConfig merges the configuration layers with the flags the user set.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	return config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		Flags:      changedFlags(cmd.Flags()),
	})
}

// changedFlags returns the config overrides of the flags explicitly set.
func changedFlags(flags *pflag.FlagSet) map[string]interface{} {
	values := make(map[string]interface{})
	for name, key := range configFlags {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if name == "no-prune" {
			noPrune, _ := flags.GetBool(name)
			values[key] = !noPrune
			continue
		}
		values[key] = f.Value.String()
	}
	return values
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, cmd.Root().Name(), version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return reportFailure(cmd, nil, err)
			}
			dump, err := cfg.TOML()
			if err != nil {
				return reportFailure(cmd, nil, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), dump)
			return err
		},
	}
}

package rxpipe

import (
	"embed"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/rxpipe/internal/version"
	"github.com/arthur-debert/rxpipe/pkg/cobrax/topics"
	"github.com/arthur-debert/rxpipe/pkg/logging"
)

//go:embed topics
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "rxpipe",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	flags.BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	flags.StringVar(&opts.workspace, "workspace", "", MsgFlagWorkspace)

	rootCmd.AddGroup(
		&cobra.Group{ID: "apply", Title: "APPLY:"},
		&cobra.Group{ID: "index", Title: "INDEX:"},
		&cobra.Group{ID: "misc", Title: "MISC:"},
	)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newApplyCmd(opts))
	rootCmd.AddCommand(newQuickCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newEnableCmd(opts, true))
	rootCmd.AddCommand(newEnableCmd(opts, false))
	rootCmd.AddCommand(newToggleCmd(opts))
	rootCmd.AddCommand(newMoveCmd(opts))
	rootCmd.AddCommand(newAddCmd(opts))
	rootCmd.AddCommand(newRemoveCmd(opts))
	rootCmd.AddCommand(newCreateCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	renderer := topics.Renderer(topics.NewGlamourRenderer())
	if !stdoutIsTerminal() {
		renderer = topics.NewPlainMarkdownRenderer()
	}
	if _, err := topics.Initialize(rootCmd, topicFiles, "topics", topics.Options{Renderer: renderer}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// Execute runs the command line and exits with status 1 on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

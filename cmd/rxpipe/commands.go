package rxpipe

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/rxpipe/pkg/errors"
	"github.com/arthur-debert/rxpipe/pkg/logging"
	"github.com/arthur-debert/rxpipe/pkg/target"
	"github.com/arthur-debert/rxpipe/pkg/ui/view"
)

// rulesetNamesCompletion completes index entries and unlisted ruleset files
func rulesetNamesCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		a, err := newApp(cmd, opts)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var names []string
		for _, e := range a.pipe.Entries() {
			names = append(names, e.Name)
		}
		names = append(names, a.pipe.Unlisted()...)
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func newApplyCmd(opts *globalOptions) *cobra.Command {
	tOpts := &targetOptions{}
	cmd := &cobra.Command{
		Use:               "apply <ruleset> [file]",
		Short:             MsgApplyShort,
		Long:              MsgApplyLong,
		Example:           MsgApplyExample,
		GroupID:           "apply",
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: rulesetNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			return a.apply(cmd, args[0], optionalArg(args, 1), tOpts)
		},
	}
	tOpts.register(cmd)
	return cmd
}

func newQuickCmd(opts *globalOptions) *cobra.Command {
	tOpts := &targetOptions{}
	cmd := &cobra.Command{
		Use:     "quick <slot> [file]",
		Short:   MsgQuickShort,
		Long:    MsgQuickLong,
		GroupID: "apply",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := strconv.Atoi(args[0])
			if err != nil || slot < 1 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrInvalidSlot, args[0])
			}

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			name, err := a.pipe.QuickCommand(slot)
			if err != nil {
				return err
			}
			return a.apply(cmd, name, optionalArg(args, 1), tOpts)
		},
	}
	tOpts.register(cmd)
	return cmd
}

func optionalArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}

// apply runs a ruleset over the chosen target and reports the result.
// Stream output carries the text, so the report goes to stderr.
func (a *app) apply(cmd *cobra.Command, name, file string, o *targetOptions) error {
	logger := logging.GetLogger("cmd.apply")

	t, err := a.target(cmd, file, o)
	if err != nil {
		return err
	}

	run := a.pipe.Apply
	if a.opts.dryRun {
		run = a.pipe.Preview
	}
	res, err := run(cmd.Context(), name, t)
	if err != nil {
		return err
	}

	v := view.NewApply(res, a.opts.dryRun)
	if o.diff {
		if v.Diff, err = res.UnifiedDiff(); err != nil {
			return err
		}
	}

	logger.Info().
		Str("ruleset", name).
		Str("target", res.Target).
		Int("rules", res.Applied).
		Bool("changed", res.Changed()).
		Msg("Apply finished")

	if _, stream := t.(*target.Stdio); stream && !a.opts.dryRun {
		return a.renderTo(cmd.ErrOrStderr(), v)
	}
	return a.render(cmd, v)
}

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "index",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			return a.render(cmd, &view.List{
				RulesetsDir: a.pipe.Store().Dir(),
				Entries:     a.pipe.Entries(),
				Unlisted:    a.pipe.Unlisted(),
				QuickRules:  a.pipe.QuickRules(),
			})
		},
	}
}

func newShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "show <ruleset>",
		Short:             MsgShowShort,
		GroupID:           "index",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: rulesetNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			rules, err := a.pipe.Rules(args[0])
			if err != nil {
				return err
			}
			if len(rules) == 0 {
				a.notice(cmd, view.LevelWarning, fmt.Sprintf(MsgNoRules, args[0]))
			}
			return a.render(cmd, view.NewRules(args[0], rules))
		},
	}
}

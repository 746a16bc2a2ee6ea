package rxpipe

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/rxpipe/pkg/errors"
	"github.com/arthur-debert/rxpipe/pkg/paths"
	"github.com/arthur-debert/rxpipe/pkg/ui/view"
)

// dryRunNotice reports the change a dry run would have made
func (a *app) dryRunNotice(cmd *cobra.Command, change string) {
	a.notice(cmd, view.LevelInfo, fmt.Sprintf(MsgDryRunSkipped, change))
}

// requireEntry fails for names that are not in the index
func (a *app) requireEntry(name string) error {
	if _, ok := a.pipe.Document().Lookup(name); !ok {
		return errors.Newf(errors.ErrNotFound, "%q is not in the index", name).
			WithDetail("ruleset", name)
	}
	return nil
}

func newEnableCmd(opts *globalOptions, enable bool) *cobra.Command {
	use, short, done := "enable <ruleset>", MsgEnableShort, MsgEnabled
	if !enable {
		use, short, done = "disable <ruleset>", MsgDisableShort, MsgDisabled
	}

	return &cobra.Command{
		Use:               use,
		Short:             short,
		GroupID:           "index",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: rulesetNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newEditingApp(cmd, opts)
			if err != nil {
				return err
			}
			name := args[0]

			if a.opts.dryRun {
				if err := a.requireEntry(name); err != nil {
					return err
				}
				a.dryRunNotice(cmd, fmt.Sprintf(done, name))
				return nil
			}
			if err := a.pipe.SetEnabled(cmd.Context(), name, enable); err != nil {
				return err
			}
			a.notice(cmd, view.LevelSuccess, fmt.Sprintf(done, name))
			return nil
		},
	}
}

func newToggleCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "toggle <ruleset>",
		Short:             MsgToggleShort,
		GroupID:           "index",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: rulesetNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newEditingApp(cmd, opts)
			if err != nil {
				return err
			}
			name := args[0]

			if a.opts.dryRun {
				if err := a.requireEntry(name); err != nil {
					return err
				}
				ref, _ := a.pipe.Document().Lookup(name)
				done := MsgDisabled
				if !ref.Enabled {
					done = MsgEnabled
				}
				a.dryRunNotice(cmd, fmt.Sprintf(done, name))
				return nil
			}

			enabled, err := a.pipe.Toggle(cmd.Context(), name)
			if err != nil {
				return err
			}
			done := MsgDisabled
			if enabled {
				done = MsgEnabled
			}
			a.notice(cmd, view.LevelSuccess, fmt.Sprintf(done, name))
			return nil
		},
	}
}

func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, errors.Newf(errors.ErrInvalidInput, MsgErrInvalidPosition, s)
	}
	return n, nil
}

func newMoveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "move <from> <to>",
		Short:   MsgMoveShort,
		Example: MsgMoveExample,
		GroupID: "index",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			to, err := parsePosition(args[1])
			if err != nil {
				return err
			}

			a, err := newEditingApp(cmd, opts)
			if err != nil {
				return err
			}
			entries := a.pipe.Document().Entries
			if from > len(entries) || to > len(entries) {
				return errors.Newf(errors.ErrInvalidInput,
					"positions must be between 1 and %d", len(entries))
			}
			name := entries[from-1].Name

			if a.opts.dryRun {
				a.dryRunNotice(cmd, fmt.Sprintf(MsgMoved, name, to))
				return nil
			}
			if err := a.pipe.Move(cmd.Context(), from-1, to-1); err != nil {
				return err
			}
			a.notice(cmd, view.LevelSuccess, fmt.Sprintf(MsgMoved, name, to))
			return nil
		},
	}
}

func newAddCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "add <ruleset>",
		Short:             MsgAddShort,
		GroupID:           "index",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: rulesetNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newEditingApp(cmd, opts)
			if err != nil {
				return err
			}
			name := args[0]

			if a.opts.dryRun {
				if !a.pipe.Store().RulesetExists(name) {
					return errors.Newf(errors.ErrMissingRuleset, "ruleset %q not found", name)
				}
				a.dryRunNotice(cmd, fmt.Sprintf(MsgAdded, name))
				return nil
			}

			added, err := a.pipe.AddToIndex(cmd.Context(), name)
			if err != nil {
				return err
			}
			if !added {
				a.notice(cmd, view.LevelInfo, fmt.Sprintf(MsgAlreadyListed, name))
				return nil
			}
			a.notice(cmd, view.LevelSuccess, fmt.Sprintf(MsgAdded, name))
			return nil
		},
	}
}

func newRemoveCmd(opts *globalOptions) *cobra.Command {
	var deleteFile bool

	cmd := &cobra.Command{
		Use:               "remove <ruleset>",
		Aliases:           []string{"rm"},
		Short:             MsgRemoveShort,
		GroupID:           "index",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: rulesetNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newEditingApp(cmd, opts)
			if err != nil {
				return err
			}
			name := args[0]

			done := fmt.Sprintf(MsgRemoved, name)
			if deleteFile {
				done = fmt.Sprintf(MsgRemovedFile, name)
			}
			if a.opts.dryRun {
				if err := a.requireEntry(name); err != nil {
					return err
				}
				a.dryRunNotice(cmd, done)
				return nil
			}

			if err := a.pipe.RemoveFromIndex(cmd.Context(), name, deleteFile); err != nil {
				return err
			}
			a.notice(cmd, view.LevelSuccess, done)
			return nil
		},
	}
	cmd.Flags().BoolVar(&deleteFile, "delete-file", false, MsgFlagDeleteFile)
	return cmd
}

func newCreateCmd(opts *globalOptions) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:     "create <name>",
		Short:   MsgCreateShort,
		Long:    MsgCreateLong,
		Example: MsgCreateExample,
		GroupID: "index",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readRulesetSource(cmd, from)
			if err != nil {
				return err
			}

			a, err := newEditingApp(cmd, opts)
			if err != nil {
				return err
			}
			name := args[0]

			if a.opts.dryRun {
				if err := a.pipe.Store().ValidateName(name); err != nil {
					return err
				}
				a.dryRunNotice(cmd, fmt.Sprintf(MsgCreated, name))
				return nil
			}
			if err := a.pipe.CreateRuleset(cmd.Context(), name, content); err != nil {
				return err
			}
			a.notice(cmd, view.LevelSuccess, fmt.Sprintf(MsgCreated, name))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", MsgFlagFrom)
	return cmd
}

// readRulesetSource reads --from, or stdin unless it is a terminal
func readRulesetSource(cmd *cobra.Command, from string) (string, error) {
	if from != "" {
		data, err := os.ReadFile(paths.ExpandHome(from))
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", from)
		}
		return string(data), nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		return "", nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to read stdin")
	}
	return string(data), nil
}

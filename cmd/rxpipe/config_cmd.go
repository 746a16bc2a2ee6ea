package rxpipe

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/rxpipe/pkg/config"
	"github.com/arthur-debert/rxpipe/pkg/errors"
	"github.com/arthur-debert/rxpipe/pkg/filesystem"
	"github.com/arthur-debert/rxpipe/pkg/logging"
	"github.com/arthur-debert/rxpipe/pkg/paths"
	"github.com/arthur-debert/rxpipe/pkg/ui/text"
	"github.com/arthur-debert/rxpipe/pkg/ui/view"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
	}
	cmd.AddCommand(newConfigInitCmd(opts))
	cmd.AddCommand(newConfigShowCmd(opts))
	return cmd
}

func newConfigInitCmd(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := opts.configFile
			if target == "" {
				p, err := paths.New(opts.workspace)
				if err != nil {
					return err
				}
				target = p.ConfigFile()
			}
			target = paths.ExpandHome(target)

			notices := text.New(cmd.ErrOrStderr())
			if opts.dryRun {
				return notices.RenderMessage(view.LevelInfo,
					fmt.Sprintf(MsgDryRunSkipped, fmt.Sprintf(MsgConfigWritten, target)))
			}

			if err := writeConfigFile(filesystem.NewOS(), target, force); err != nil {
				return err
			}
			logger := logging.GetLogger("cmd.config")
			logger.Info().Str("path", target).Msg("Configuration file written")
			return notices.RenderMessage(view.LevelSuccess, fmt.Sprintf(MsgConfigWritten, target))
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func writeConfigFile(fsys filesystem.FS, path string, force bool) error {
	if _, err := fsys.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrAlreadyExists, MsgErrConfigExists, path)
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}
	if err := fsys.WriteFile(path, []byte(config.GenerateConfigContent()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}

func newConfigShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			out, err := cfg.TOML()
			if err != nil {
				return err
			}
			return writeConfigShow(cmd.OutOrStdout(), cfg, out)
		},
	}
}

func writeConfigShow(w io.Writer, cfg *config.Config, body string) error {
	var b strings.Builder
	if len(cfg.Sources) == 0 {
		b.WriteString("# sources: defaults\n")
	} else {
		fmt.Fprintf(&b, "# sources: defaults, %s\n", strings.Join(cfg.Sources, ", "))
	}
	b.WriteString(body)
	_, err := io.WriteString(w, b.String())
	return err
}

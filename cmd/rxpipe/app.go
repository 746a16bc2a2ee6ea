package rxpipe

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/rxpipe/pkg/config"
	"github.com/arthur-debert/rxpipe/pkg/errors"
	"github.com/arthur-debert/rxpipe/pkg/filesystem"
	"github.com/arthur-debert/rxpipe/pkg/logging"
	"github.com/arthur-debert/rxpipe/pkg/paths"
	"github.com/arthur-debert/rxpipe/pkg/pipeline"
	"github.com/arthur-debert/rxpipe/pkg/store"
	"github.com/arthur-debert/rxpipe/pkg/target"
	"github.com/arthur-debert/rxpipe/pkg/ui"
	"github.com/arthur-debert/rxpipe/pkg/ui/view"
)

// globalOptions are the persistent root flags
type globalOptions struct {
	verbosity  int
	dryRun     bool
	configFile string
	format     string
	noColor    bool
	workspace  string
}

// overrides turns explicitly set flags into configuration keys
func (o *globalOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	out := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("format") {
		out["output.format"] = o.format
	}
	if flags.Changed("no-color") {
		out["output.no_color"] = o.noColor
	}
	return out
}

// app is what a command needs once configuration is loaded
type app struct {
	opts  *globalOptions
	paths paths.Paths
	cfg   *config.Config
	fs    filesystem.FS
	pipe  *pipeline.Pipeline
}

// loadConfig resolves paths and loads the layered configuration
func loadConfig(cmd *cobra.Command, opts *globalOptions) (paths.Paths, *config.Config, error) {
	p, err := paths.New(opts.workspace)
	if err != nil {
		return nil, nil, err
	}

	explicit := ""
	if opts.configFile != "" {
		explicit = paths.ExpandHome(opts.configFile)
	}

	cfg, err := config.Load(config.Options{
		UserFile:      p.ConfigFile(),
		ExplicitFile:  explicit,
		WorkspaceFile: p.WorkspaceConfigFile(),
		Overrides:     opts.overrides(cmd),
	})
	if err != nil {
		return nil, nil, err
	}
	return p, cfg, nil
}

// newApp loads configuration and reads the index. The index is read
// leniently: an unreadable index is reported and an empty one is used.
func newApp(cmd *cobra.Command, opts *globalOptions) (*app, error) {
	return buildApp(cmd, opts, false)
}

// newEditingApp is newApp for commands that save the index. They refuse
// to run on an unreadable index so its content is not overwritten.
func newEditingApp(cmd *cobra.Command, opts *globalOptions) (*app, error) {
	return buildApp(cmd, opts, true)
}

func buildApp(cmd *cobra.Command, opts *globalOptions, strict bool) (*app, error) {
	p, cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	fsys := filesystem.NewOS()
	dir := p.RulesetsDir(cfg.RulesInWorkspace, cfg.RulesetsDir)
	a := &app{
		opts:  opts,
		paths: p,
		cfg:   cfg,
		fs:    fsys,
		pipe:  pipeline.New(store.New(fsys, dir, cfg.IndexFile), cfg),
	}

	logger := logging.GetLogger("cmd")
	logger.Debug().
		Str("workspace", p.Workspace()).
		Str("rulesets_dir", dir).
		Bool("dry_run", opts.dryRun).
		Msg("Application loaded")

	if err := a.pipe.Reload(); err != nil {
		if strict || !errors.IsErrorCode(err, errors.ErrMalformedIndex) {
			return nil, err
		}
		a.notice(cmd, view.LevelWarning, fmt.Sprintf(MsgMalformedIndex, err))
	}
	return a, nil
}

func (a *app) format(w io.Writer) (ui.Format, error) {
	if f, ok := w.(*os.File); ok {
		return ui.Resolve(a.cfg.Output.Format, f, a.cfg.Output.NoColor)
	}
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return ui.FormatAuto, err
	}
	if format == ui.FormatTerminal && a.cfg.Output.NoColor {
		format = ui.FormatText
	}
	return format, nil
}

// render writes a result to stdout in the configured format
func (a *app) render(cmd *cobra.Command, result interface{}) error {
	return a.renderTo(cmd.OutOrStdout(), result)
}

func (a *app) renderTo(w io.Writer, result interface{}) error {
	format, err := a.format(w)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid output format")
	}
	r, err := ui.NewRenderer(format, w)
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

// notice writes a one-line message to stderr. Machine formats are kept for
// stdout, notices use text or terminal output.
func (a *app) notice(cmd *cobra.Command, level view.Level, msg string) {
	w := cmd.ErrOrStderr()
	format, err := a.format(w)
	if err != nil || format == ui.FormatJSON || format == ui.FormatYAML {
		format = ui.FormatText
	}
	r, err := ui.NewRenderer(format, w)
	if err != nil {
		return
	}
	_ = r.RenderMessage(level, msg)
}

// targetOptions are the flags shared by apply and quick
type targetOptions struct {
	lines     string
	clipboard bool
	diff      bool
}

func (o *targetOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.lines, "lines", "", MsgFlagLines)
	cmd.Flags().BoolVar(&o.clipboard, "clipboard", false, MsgFlagClipboard)
	cmd.Flags().BoolVar(&o.diff, "diff", false, MsgFlagDiff)
}

// target picks the text to work on: a file, the clipboard or stdin
func (a *app) target(cmd *cobra.Command, file string, o *targetOptions) (target.Target, error) {
	var lines *target.LineRange
	if o.lines != "" {
		r, err := target.ParseLineRange(o.lines)
		if err != nil {
			return nil, err
		}
		lines = &r
	}

	switch {
	case o.clipboard && file != "":
		return nil, errors.New(errors.ErrInvalidInput, MsgErrClipboardFile)
	case file == "" && lines != nil:
		return nil, errors.New(errors.ErrInvalidInput, MsgErrLinesNeedFile)
	case o.clipboard:
		return target.NewClipboard(), nil
	case file != "":
		path, err := filepath.Abs(paths.ExpandHome(file))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", file)
		}
		return target.NewFile(a.fs, path, lines), nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		return nil, errors.New(errors.ErrNoActiveTarget, MsgErrNoInput)
	}
	return target.NewStdio(in, cmd.OutOrStdout()), nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

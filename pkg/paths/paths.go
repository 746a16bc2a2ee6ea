package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/rxpipe/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for rxpipe
	EnvConfigDir = "RXPIPE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for rxpipe
	EnvStateDir = "RXPIPE_STATE_DIR"

	// EnvWorkspace sets the workspace root
	EnvWorkspace = "RXPIPE_WORKSPACE"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names
const (
	// AppDirName is the directory name used under the XDG homes
	AppDirName = "rxpipe"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"

	// WorkspaceConfigFile is the per-workspace configuration file
	WorkspaceConfigFile = ".rxpipe.toml"

	// RulesetsDirName holds the ruleset files and the index
	RulesetsDirName = "regex-rulesets"

	// LogFileName is the name of the log file
	LogFileName = "rxpipe.log"
)

// Paths resolves rxpipe's directories
type Paths interface {
	Workspace() string
	UsedFallback() bool
	ConfigDir() string
	StateDir() string
	ConfigFile() string
	WorkspaceConfigFile() string
	LogFilePath() string
	RulesetsDir(inWorkspace bool, override string) string
}

type paths struct {
	workspace    string
	usedFallback bool
	configDir    string
	stateDir     string
}

// New creates a Paths for the given workspace. An empty workspace is taken
// from RXPIPE_WORKSPACE, then the enclosing git repository, then the current
// directory.
func New(workspace string) (Paths, error) {
	p := &paths{}

	if workspace == "" {
		root, usedFallback, err := findWorkspace()
		if err != nil {
			return nil, err
		}
		p.workspace = root
		p.usedFallback = usedFallback
	} else {
		p.workspace = expandHome(workspace)
	}

	abs, err := filepath.Abs(p.workspace)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for workspace")
	}
	p.workspace = abs

	p.configDir = ConfigDir()
	p.stateDir = StateDir()
	return p, nil
}

// ConfigDir returns the rxpipe configuration directory
func ConfigDir() string {
	return appDir(EnvConfigDir, "XDG_CONFIG_HOME", xdg.ConfigHome)
}

// StateDir returns the rxpipe state directory
func StateDir() string {
	return appDir(EnvStateDir, "XDG_STATE_HOME", xdg.StateHome)
}

// appDir prefers the rxpipe override, then the XDG variable as currently
// set, then the value adrg/xdg resolved for the platform.
func appDir(override, xdgVar, platformDefault string) string {
	if dir := os.Getenv(override); dir != "" {
		return expandHome(dir)
	}
	if dir := os.Getenv(xdgVar); dir != "" {
		return filepath.Join(expandHome(dir), AppDirName)
	}
	return filepath.Join(platformDefault, AppDirName)
}

func findWorkspace() (string, bool, error) {
	if root := os.Getenv(EnvWorkspace); root != "" {
		return expandHome(root), false, nil
	}

	if gitRoot, err := findGitRoot(); err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}
	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}

// ExpandHome expands a leading ~ in user supplied paths
func ExpandHome(path string) string {
	return expandHome(path)
}

// Workspace returns the workspace root
func (p *paths) Workspace() string {
	return p.workspace
}

// UsedFallback reports whether the current directory was used as workspace
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

func (p *paths) StateDir() string {
	return p.stateDir
}

// ConfigFile returns the user configuration file path
func (p *paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// WorkspaceConfigFile returns the workspace configuration file path
func (p *paths) WorkspaceConfigFile() string {
	return filepath.Join(p.workspace, WorkspaceConfigFile)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// RulesetsDir returns where ruleset files and the index live. A non-empty
// override wins; relative overrides are taken from the workspace.
func (p *paths) RulesetsDir(inWorkspace bool, override string) string {
	if override != "" {
		dir := expandHome(override)
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(p.workspace, dir)
		}
		return filepath.Clean(dir)
	}
	if inWorkspace {
		return filepath.Join(p.workspace, RulesetsDirName)
	}
	return filepath.Join(p.configDir, RulesetsDirName)
}

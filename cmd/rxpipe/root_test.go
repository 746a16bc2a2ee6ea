package rxpipe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rxpipe/internal/version"
	"github.com/arthur-debert/rxpipe/pkg/errors"
)

func TestRoot_NoCommand(t *testing.T) {
	newTestEnv(t)

	res := run(t, "")
	require.Error(t, res.err)
	assert.Contains(t, res.stdout, "APPLY:")
	assert.Contains(t, res.stdout, "INDEX:")
}

func TestRoot_CommandGroups(t *testing.T) {
	cmd := NewRootCmd()

	groups := map[string][]string{}
	for _, c := range cmd.Commands() {
		groups[c.GroupID] = append(groups[c.GroupID], c.Name())
	}

	assert.ElementsMatch(t, []string{"apply", "quick"}, groups["apply"])
	assert.ElementsMatch(t, []string{"list", "show", "enable", "disable", "toggle", "move", "add", "remove", "create"}, groups["index"])
	assert.Subset(t, groups["misc"], []string{"config", "completion", "version"})
}

func TestVersion(t *testing.T) {
	newTestEnv(t)

	res := run(t, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "rxpipe version "+version.Version)
	assert.Contains(t, res.stdout, "commit: "+version.Commit)
}

func TestHelpTopics(t *testing.T) {
	newTestEnv(t)

	res := run(t, "", "help", "topics")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "rules")
	assert.Contains(t, res.stdout, "index")
	assert.Contains(t, res.stdout, "--dry-run")

	res = run(t, "", "help", "dry-run")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "unified")

	res = run(t, "", "help", "rules")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Pattern flags")
}

func TestCompletion(t *testing.T) {
	newTestEnv(t)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			res := run(t, "", "completion", shell)
			require.NoError(t, res.err)
			assert.Contains(t, res.stdout, "rxpipe")
		})
	}

	assert.Error(t, run(t, "", "completion", "tcsh").err)
}

func TestConfigInit(t *testing.T) {
	e := newTestEnv(t)
	path := filepath.Join(e.configDir, "config.toml")

	res := run(t, "", "config", "init")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Wrote configuration to "+path)
	content := e.read(t, path)
	assert.Contains(t, content, "# quick_rules = 3")

	res = run(t, "", "config", "init")
	assert.True(t, errors.HasErrorCode(res.err, errors.ErrAlreadyExists))

	require.NoError(t, os.WriteFile(path, []byte("quick_rules = 1\n"), 0644))
	require.NoError(t, run(t, "", "config", "init", "--force").err)
	assert.Equal(t, content, e.read(t, path))
}

func TestConfigInit_ExplicitPathAndDryRun(t *testing.T) {
	e := newTestEnv(t)
	path := filepath.Join(e.root, "custom", "rx.toml")

	res := run(t, "", "--dry-run", "--config", path, "config", "init")
	require.NoError(t, res.err)
	assert.NoFileExists(t, path)

	require.NoError(t, run(t, "", "--config", path, "config", "init").err)
	assert.FileExists(t, path)
}

func TestConfigShow(t *testing.T) {
	e := newTestEnv(t)

	res := run(t, "", "config", "show")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "# sources: defaults\n")
	assert.Contains(t, res.stdout, "quick_rules = 3")

	ws := filepath.Join(e.workspace, ".rxpipe.toml")
	require.NoError(t, os.WriteFile(ws, []byte("quick_rules = 5\n"), 0644))
	t.Setenv("RXPIPE_QUICK_COMMANDS", "7")

	res = run(t, "", "config", "show", "--format", "json")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "# sources: defaults, "+ws)
	assert.Contains(t, res.stdout, "quick_rules = 5")
	assert.Contains(t, res.stdout, "quick_commands = 7")
	assert.Regexp(t, `format = ['"]json['"]`, res.stdout)
}

func TestConfig_Invalid(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(e.workspace, ".rxpipe.toml"), []byte("quick_rules = 42\n"), 0644))

	res := run(t, "", "list")
	assert.True(t, errors.HasErrorCode(res.err, errors.ErrConfigValid))

	require.NoError(t, os.Remove(filepath.Join(e.workspace, ".rxpipe.toml")))
	res = run(t, "", "list", "--format", "xml")
	assert.True(t, errors.HasErrorCode(res.err, errors.ErrConfigValid))
}

func TestConfig_RulesInWorkspace(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(e.workspace, ".rxpipe.toml"), []byte("rules_in_workspace = true\n"), 0644))

	res := run(t, "", "create", "local")
	require.NoError(t, res.err)
	assert.FileExists(t, filepath.Join(e.workspace, "regex-rulesets", "local"))
	assert.FileExists(t, filepath.Join(e.workspace, "regex-rulesets", "index.txt"))
}

package rxpipe

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testEnv is an isolated rxpipe home with its own config, state and workspace
type testEnv struct {
	root      string
	configDir string
	rulesDir  string
	workspace string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	root := t.TempDir()
	e := &testEnv{
		root:      root,
		configDir: filepath.Join(root, "config"),
		rulesDir:  filepath.Join(root, "config", "regex-rulesets"),
		workspace: filepath.Join(root, "ws"),
	}
	require.NoError(t, os.MkdirAll(e.workspace, 0755))

	t.Setenv("RXPIPE_CONFIG_DIR", e.configDir)
	t.Setenv("RXPIPE_STATE_DIR", filepath.Join(root, "state"))
	t.Setenv("RXPIPE_WORKSPACE", e.workspace)
	t.Setenv("NO_COLOR", "1")
	return e
}

// rulesets writes the index and ruleset files
func (e *testEnv) rulesets(t *testing.T, index string, files map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(e.rulesDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(e.rulesDir, "index.txt"), []byte(index), 0644))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(e.rulesDir, name), []byte(content), 0644))
	}
}

func (e *testEnv) file(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.workspace, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func (e *testEnv) read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func (e *testEnv) index(t *testing.T) string {
	t.Helper()
	return e.read(t, filepath.Join(e.rulesDir, "index.txt"))
}

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the root command with stdin as input
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

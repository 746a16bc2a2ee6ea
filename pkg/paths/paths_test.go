package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		workspace string
		envSetup  map[string]string
		validate  func(t *testing.T, p Paths)
	}{
		{
			name:      "explicit workspace",
			workspace: "/tmp/notes",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/tmp/notes", p.Workspace())
				assert.False(t, p.UsedFallback())
			},
		},
		{
			name:     "workspace from env",
			envSetup: map[string]string{EnvWorkspace: "/env/notes"},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/env/notes", p.Workspace())
			},
		},
		{
			name: "git repository or fallback",
			validate: func(t *testing.T, p Paths) {
				assert.NotEmpty(t, p.Workspace())
				assert.True(t, filepath.IsAbs(p.Workspace()))
			},
		},
		{
			name:      "tilde is expanded",
			workspace: "~/notes",
			validate: func(t *testing.T, p Paths) {
				home, _ := os.UserHomeDir()
				assert.Equal(t, filepath.Join(home, "notes"), p.Workspace())
			},
		},
		{
			name:      "rxpipe overrides",
			workspace: "/ws",
			envSetup: map[string]string{
				EnvConfigDir: "/custom/config",
				EnvStateDir:  "/custom/state",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/custom/config", p.ConfigDir())
				assert.Equal(t, "/custom/state", p.StateDir())
				assert.Equal(t, "/custom/config/config.toml", p.ConfigFile())
				assert.Equal(t, "/custom/state/rxpipe.log", p.LogFilePath())
				assert.Equal(t, "/ws/.rxpipe.toml", p.WorkspaceConfigFile())
			},
		},
		{
			name:      "XDG variables",
			workspace: "/ws",
			envSetup: map[string]string{
				"XDG_CONFIG_HOME": "/xdg/config",
				"XDG_STATE_HOME":  "/xdg/state",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/xdg/config/rxpipe", p.ConfigDir())
				assert.Equal(t, "/xdg/state/rxpipe", p.StateDir())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvWorkspace, "")
			t.Setenv(EnvConfigDir, "")
			t.Setenv(EnvStateDir, "")
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}

			p, err := New(tt.workspace)
			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestRulesetsDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "/cfg")

	p, err := New("/ws")
	require.NoError(t, err)

	tests := []struct {
		name        string
		inWorkspace bool
		override    string
		want        string
	}{
		{"config directory", false, "", "/cfg/regex-rulesets"},
		{"workspace", true, "", "/ws/regex-rulesets"},
		{"absolute override", true, "/elsewhere/rules", "/elsewhere/rules"},
		{"relative override", false, "rules/../my-rules", "/ws/my-rules"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.RulesetsDir(tt.inWorkspace, tt.override))
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/x", filepath.Join(home, "x")},
		{"~other/x", "~other/x"},
		{"/abs", "/abs"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandHome(tt.in), "ExpandHome(%q)", tt.in)
	}
}

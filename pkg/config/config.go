package config

import (
	"fmt"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/rxpipe/pkg/errors"
)

// MaxQuickSlots bounds quick_rules and quick_commands
const MaxQuickSlots = 10

// Output formats accepted in output.format
var outputFormats = []string{"auto", "term", "text", "json", "yaml"}

// Config is the effective configuration
type Config struct {
	QuickRules       int           `koanf:"quick_rules"`
	QuickCommands    int           `koanf:"quick_commands"`
	RulesInWorkspace bool          `koanf:"rules_in_workspace"`
	RulesetsDir      string        `koanf:"rulesets_dir"`
	IndexFile        string        `koanf:"index_file"`
	MatchTimeout     time.Duration `koanf:"match_timeout"`
	Output           Output        `koanf:"output"`

	// Sources lists the files that were loaded, lowest layer first
	Sources []string `koanf:"-"`
}

// Output holds the display settings
type Output struct {
	Format  string `koanf:"format"`
	NoColor bool   `koanf:"no_color"`
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.QuickRules < 0 || c.QuickRules > MaxQuickSlots {
		return errors.Newf(errors.ErrConfigValid, "quick_rules must be between 0 and %d, got %d", MaxQuickSlots, c.QuickRules)
	}
	if c.QuickCommands < 0 || c.QuickCommands > MaxQuickSlots {
		return errors.Newf(errors.ErrConfigValid, "quick_commands must be between 0 and %d, got %d", MaxQuickSlots, c.QuickCommands)
	}
	if c.MatchTimeout < 0 {
		return errors.Newf(errors.ErrConfigValid, "match_timeout must not be negative, got %s", c.MatchTimeout)
	}
	if c.IndexFile == "" {
		return errors.New(errors.ErrConfigValid, "index_file must not be empty")
	}
	for _, f := range outputFormats {
		if c.Output.Format == f {
			return nil
		}
	}
	return errors.Newf(errors.ErrConfigValid, "output.format must be one of %v, got %q", outputFormats, c.Output.Format)
}

// tomlView mirrors Config with TOML friendly field types
type tomlView struct {
	QuickRules       int    `toml:"quick_rules"`
	QuickCommands    int    `toml:"quick_commands"`
	RulesInWorkspace bool   `toml:"rules_in_workspace"`
	RulesetsDir      string `toml:"rulesets_dir"`
	IndexFile        string `toml:"index_file"`
	MatchTimeout     string `toml:"match_timeout"`
	Output           struct {
		Format  string `toml:"format"`
		NoColor bool   `toml:"no_color"`
	} `toml:"output"`
}

// TOML renders the effective configuration
func (c *Config) TOML() (string, error) {
	v := tomlView{
		QuickRules:       c.QuickRules,
		QuickCommands:    c.QuickCommands,
		RulesInWorkspace: c.RulesInWorkspace,
		RulesetsDir:      c.RulesetsDir,
		IndexFile:        c.IndexFile,
		MatchTimeout:     c.MatchTimeout.String(),
	}
	v.Output.Format = c.Output.Format
	v.Output.NoColor = c.Output.NoColor

	data, err := toml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return string(data), nil
}

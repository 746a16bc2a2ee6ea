// Package view holds the data handed to renderers
package view

import (
	"github.com/arthur-debert/rxpipe/pkg/pipeline"
	"github.com/arthur-debert/rxpipe/pkg/ruleset"
)

// Level of a message
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// List is the output of `rxpipe list`
type List struct {
	RulesetsDir string           `json:"rulesets_dir" yaml:"rulesets_dir"`
	Entries     []pipeline.Entry `json:"entries" yaml:"entries"`
	Unlisted    []string         `json:"unlisted" yaml:"unlisted"`
	QuickRules  []string         `json:"quick_rules" yaml:"quick_rules"`
}

// Rule is one parsed rule as displayed by `rxpipe show`
type Rule struct {
	Line        int    `json:"line" yaml:"line"`
	Pattern     string `json:"pattern" yaml:"pattern"`
	Flags       string `json:"flags" yaml:"flags"`
	Replacement string `json:"replacement,omitempty" yaml:"replacement,omitempty"`
	Delete      bool   `json:"delete" yaml:"delete"`
}

// Rules is the output of `rxpipe show`
type Rules struct {
	Ruleset string `json:"ruleset" yaml:"ruleset"`
	Rules   []Rule `json:"rules" yaml:"rules"`
}

// NewRules converts parsed rules for display
func NewRules(name string, rules []ruleset.Rule) *Rules {
	out := &Rules{Ruleset: name, Rules: make([]Rule, 0, len(rules))}
	for _, r := range rules {
		out.Rules = append(out.Rules, Rule{
			Line:        r.Line,
			Pattern:     r.Pattern,
			Flags:       r.Flags.String(),
			Replacement: r.Replacement,
			Delete:      r.Delete,
		})
	}
	return out
}

// Apply is the output of `rxpipe apply` and `rxpipe quick`
type Apply struct {
	Ruleset   string `json:"ruleset" yaml:"ruleset"`
	Target    string `json:"target" yaml:"target"`
	Applied   int    `json:"applied" yaml:"applied"`
	Changed   bool   `json:"changed" yaml:"changed"`
	Selection bool   `json:"selection" yaml:"selection"`
	DryRun    bool   `json:"dry_run" yaml:"dry_run"`
	Diff      string `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// NewApply converts a pipeline result for display
func NewApply(res *pipeline.Result, dryRun bool) *Apply {
	return &Apply{
		Ruleset:   res.Ruleset,
		Target:    res.Target,
		Applied:   res.Applied,
		Changed:   res.Changed(),
		Selection: res.Selection,
		DryRun:    dryRun,
		Diff:      res.Diff,
	}
}

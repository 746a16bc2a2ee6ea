package pipeline

import (
	"context"
	"strings"

	"github.com/arthur-debert/rxpipe/pkg/diff"
	"github.com/arthur-debert/rxpipe/pkg/errors"
	"github.com/arthur-debert/rxpipe/pkg/logging"
	"github.com/arthur-debert/rxpipe/pkg/ruleset"
	"github.com/arthur-debert/rxpipe/pkg/target"
)

// Result describes one ruleset application
type Result struct {
	Ruleset string
	Target  string

	// Applied is the number of rules run
	Applied int

	// Selection is set when only the target's selection was transformed
	Selection bool

	Before string
	After  string

	// Diff is filled by Preview and UnifiedDiff
	Diff string
}

// Changed reports whether the text differs after the run
func (r *Result) Changed() bool {
	return r.Before != r.After
}

// Apply runs a ruleset over the target's selection, or its whole text when
// nothing is selected, and writes the result back. Nothing is written
// unless every rule succeeded.
func (p *Pipeline) Apply(ctx context.Context, name string, t target.Target) (*Result, error) {
	res, err := p.run(ctx, name, t)
	if err != nil {
		return nil, err
	}

	if res.Selection {
		err = t.ReplaceSelection(res.After)
	} else {
		err = t.SetText(res.After)
	}
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("pipeline")
	logger.Info().
		Str("ruleset", name).
		Str("target", res.Target).
		Int("rules", res.Applied).
		Bool("changed", res.Changed()).
		Msg("Ruleset applied")
	return res, nil
}

// Preview runs a ruleset like Apply but writes nothing. The result
// carries a unified diff of the change.
func (p *Pipeline) Preview(ctx context.Context, name string, t target.Target) (*Result, error) {
	res, err := p.run(ctx, name, t)
	if err != nil {
		return nil, err
	}

	if err := res.fillDiff(); err != nil {
		return nil, err
	}
	return res, nil
}

// UnifiedDiff returns the change as a unified patch, empty when nothing
// changed. The patch is computed once.
func (r *Result) UnifiedDiff() (string, error) {
	if err := r.fillDiff(); err != nil {
		return "", err
	}
	return r.Diff, nil
}

func (r *Result) fillDiff() error {
	if r.Diff != "" || !r.Changed() {
		return nil
	}
	name := strings.TrimPrefix(r.Target, "/")
	patch, _, err := diff.Unified("a/"+name, "b/"+name, r.Before, r.After, diff.Options{})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to build diff")
	}
	r.Diff = patch
	return nil
}

// Rules parses a ruleset without applying it
func (p *Pipeline) Rules(name string) ([]ruleset.Rule, error) {
	content, err := p.store.ReadRuleset(name)
	if err != nil {
		return nil, err
	}
	return ruleset.Parse(content)
}

func (p *Pipeline) run(ctx context.Context, name string, t target.Target) (*Result, error) {
	logger := logging.GetLogger("pipeline")
	done := logging.LogOperationStart(logger, "apply "+name)
	defer done()

	if t == nil {
		return nil, errors.New(errors.ErrNoActiveTarget, "no target to apply the ruleset to")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rules, err := p.Rules(name)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		logger.Warn().Str("ruleset", name).Msg("Ruleset has no rules, text is left unchanged")
	}

	text, selected, err := t.Selection()
	if err != nil {
		return nil, err
	}
	if !selected {
		if text, err = t.Text(); err != nil {
			return nil, err
		}
	}

	out, applied, err := p.engine.Apply(rules, text)
	if err != nil {
		return nil, err
	}

	return &Result{
		Ruleset:   name,
		Target:    t.Name(),
		Applied:   applied,
		Selection: selected,
		Before:    text,
		After:     out,
	}, nil
}

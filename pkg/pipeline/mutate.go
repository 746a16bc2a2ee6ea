package pipeline

import (
	"context"

	"github.com/arthur-debert/rxpipe/pkg/errors"
	"github.com/arthur-debert/rxpipe/pkg/index"
	"github.com/arthur-debert/rxpipe/pkg/logging"
)

// mutate applies fn to a copy of the document, saves the copy and swaps
// it in
func (p *Pipeline) mutate(ctx context.Context, op string, fn func(doc *index.Document) error) error {
	next := p.doc.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := p.store.SaveIndex(ctx, next); err != nil {
		return err
	}
	p.doc = next

	logger := logging.GetLogger("pipeline")
	logger.Debug().Str("operation", op).Msg("Index saved")
	return nil
}

func notInIndex(name string) error {
	return errors.Newf(errors.ErrNotFound, "ruleset %q is not in the index", name).
		WithDetail("ruleset", name)
}

// SetEnabled enables or disables an index entry
func (p *Pipeline) SetEnabled(ctx context.Context, name string, enabled bool) error {
	return p.mutate(ctx, "set-enabled", func(doc *index.Document) error {
		if !doc.SetEnabled(name, enabled) {
			return notInIndex(name)
		}
		return nil
	})
}

// Toggle flips an index entry and returns its new state
func (p *Pipeline) Toggle(ctx context.Context, name string) (bool, error) {
	var enabled bool
	err := p.mutate(ctx, "toggle", func(doc *index.Document) error {
		var ok bool
		enabled, ok = doc.Toggle(name)
		if !ok {
			return notInIndex(name)
		}
		return nil
	})
	return enabled, err
}

// Move moves the entry at from to position to, both 0-based
func (p *Pipeline) Move(ctx context.Context, from, to int) error {
	n := len(p.doc.Entries)
	if from < 0 || from >= n || to < 0 || to >= n {
		return errors.Newf(errors.ErrInvalidInput,
			"positions must be between 1 and %d", n)
	}
	return p.mutate(ctx, "move", func(doc *index.Document) error {
		doc.MoveEntry(from, to)
		return nil
	})
}

// AddToIndex appends an existing ruleset file to the index as enabled.
// It reports false when the ruleset was already listed.
func (p *Pipeline) AddToIndex(ctx context.Context, name string) (bool, error) {
	if err := p.store.ValidateName(name); err != nil {
		return false, err
	}
	if !p.store.RulesetExists(name) {
		return false, errors.Newf(errors.ErrMissingRuleset, "ruleset %q not found in %s", name, p.store.Dir()).
			WithDetail("ruleset", name)
	}
	if p.doc.EntryExists(name) {
		return false, nil
	}

	err := p.mutate(ctx, "add", func(doc *index.Document) error {
		doc.AddEntry(name, true)
		return nil
	})
	return err == nil, err
}

// RemoveFromIndex drops an entry from the index, and the ruleset file too
// when deleteFile is set
func (p *Pipeline) RemoveFromIndex(ctx context.Context, name string, deleteFile bool) error {
	err := p.mutate(ctx, "remove", func(doc *index.Document) error {
		if !doc.RemoveEntry(name) {
			return notInIndex(name)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if deleteFile {
		if err := p.store.RemoveRuleset(name); err != nil {
			return err
		}
		p.dropFile(name)
	}
	return nil
}

// CreateRuleset writes a new ruleset file and appends it to the index. It
// fails when a file with that name exists.
func (p *Pipeline) CreateRuleset(ctx context.Context, name, content string) error {
	if err := p.store.CreateRuleset(name, content); err != nil {
		return err
	}
	p.addFile(name)

	if p.doc.EntryExists(name) {
		return nil
	}
	return p.mutate(ctx, "create", func(doc *index.Document) error {
		doc.AddEntry(name, true)
		return nil
	})
}

func (p *Pipeline) addFile(name string) {
	for _, f := range p.files {
		if f == name {
			return
		}
	}
	p.files = append(p.files, name)
}

func (p *Pipeline) dropFile(name string) {
	out := p.files[:0]
	for _, f := range p.files {
		if f != name {
			out = append(out, f)
		}
	}
	p.files = out
}

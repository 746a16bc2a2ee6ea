package pipeline

import (
	"sort"

	"github.com/arthur-debert/rxpipe/pkg/config"
	"github.com/arthur-debert/rxpipe/pkg/errors"
	"github.com/arthur-debert/rxpipe/pkg/index"
	"github.com/arthur-debert/rxpipe/pkg/logging"
	"github.com/arthur-debert/rxpipe/pkg/ruleset"
	"github.com/arthur-debert/rxpipe/pkg/store"
)

// Pipeline is the orchestrator over one rulesets directory
type Pipeline struct {
	store  *store.Store
	cfg    *config.Config
	engine ruleset.Engine

	doc   *index.Document
	files []string
}

// New returns a Pipeline. Call Reload before use.
func New(st *store.Store, cfg *config.Config) *Pipeline {
	return &Pipeline{
		store:  st,
		cfg:    cfg,
		engine: ruleset.Engine{MatchTimeout: cfg.MatchTimeout},
		doc:    index.New(),
	}
}

// Store returns the underlying store
func (p *Pipeline) Store() *store.Store {
	return p.store
}

// Reload creates missing directories, rescans ruleset files and re-reads
// the index. An unreadable index leaves an empty document in place and
// returns a MALFORMED_INDEX error, which callers may report as a warning.
func (p *Pipeline) Reload() error {
	logger := logging.GetLogger("pipeline")

	if err := p.store.EnsureLayout(); err != nil {
		return err
	}

	files, err := p.store.ListRulesets()
	if err != nil {
		return err
	}
	p.files = files

	doc, err := p.store.LoadIndex()
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrMalformedIndex) {
			logger.Warn().Err(err).Msg("Index unreadable, using an empty index")
			p.doc = index.New()
		}
		return err
	}
	p.doc = doc

	logger.Debug().
		Int("entries", len(doc.Entries)).
		Int("files", len(files)).
		Msg("Index loaded")
	return nil
}

// Document returns a copy of the loaded index
func (p *Pipeline) Document() *index.Document {
	return p.doc.Clone()
}

// EnabledNames returns the enabled ruleset names in index order
func (p *Pipeline) EnabledNames() []string {
	return p.doc.EnabledNames()
}

// QuickRules returns the rulesets offered as quick rules
func (p *Pipeline) QuickRules() []string {
	return p.doc.QuickNames(p.cfg.QuickRules)
}

// QuickCommands returns the rulesets bound to quick command slots
func (p *Pipeline) QuickCommands() []string {
	return p.doc.QuickNames(p.cfg.QuickCommands)
}

// QuickCommand returns the ruleset in the 1-based quick command slot
func (p *Pipeline) QuickCommand(slot int) (string, error) {
	names := p.QuickCommands()
	if slot < 1 || slot > len(names) {
		return "", errors.Newf(errors.ErrNotFound,
			"no ruleset in quick slot %d (%d slots in use)", slot, len(names))
	}
	return names[slot-1], nil
}

// Entry is an index entry annotated for display
type Entry struct {
	Position int    `json:"position" yaml:"position"`
	Name     string `json:"name" yaml:"name"`
	Enabled  bool   `json:"enabled" yaml:"enabled"`

	// Quick is set for entries reachable through a quick command slot
	Quick bool `json:"quick" yaml:"quick"`
	Slot  int  `json:"slot,omitempty" yaml:"slot,omitempty"`

	// Missing is set when no ruleset file has this name
	Missing bool `json:"missing" yaml:"missing"`
}

// Entries returns every index entry in order
func (p *Pipeline) Entries() []Entry {
	present := make(map[string]bool, len(p.files))
	for _, f := range p.files {
		present[f] = true
	}

	entries := make([]Entry, 0, len(p.doc.Entries))
	slot := 0
	for i, ref := range p.doc.Entries {
		e := Entry{
			Position: i + 1,
			Name:     ref.Name,
			Enabled:  ref.Enabled,
			Quick:    p.doc.IsQuick(i, p.cfg.QuickCommands),
			Missing:  !present[ref.Name],
		}
		if e.Quick {
			slot++
			e.Slot = slot
		}
		entries = append(entries, e)
	}
	return entries
}

// Unlisted returns ruleset files that have no index entry
func (p *Pipeline) Unlisted() []string {
	var out []string
	for _, f := range p.files {
		if !p.doc.EntryExists(f) {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

// Package store keeps ruleset files and the index file in one directory.
package store

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/rxpipe/pkg/errors"
	"github.com/arthur-debert/rxpipe/pkg/filesystem"
	"github.com/arthur-debert/rxpipe/pkg/index"
	"github.com/arthur-debert/rxpipe/pkg/logging"
)

// DefaultIndexFile is the index file name inside the rulesets directory
const DefaultIndexFile = "index.txt"

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Store reads and writes one rulesets directory
type Store struct {
	fs        filesystem.FS
	dir       string
	indexFile string
}

// New returns a Store for dir. An empty indexFile means DefaultIndexFile.
func New(fsys filesystem.FS, dir, indexFile string) *Store {
	if indexFile == "" {
		indexFile = DefaultIndexFile
	}
	return &Store{fs: fsys, dir: dir, indexFile: indexFile}
}

// Dir returns the rulesets directory
func (s *Store) Dir() string {
	return s.dir
}

// IndexPath returns the path of the index file
func (s *Store) IndexPath() string {
	return filepath.Join(s.dir, s.indexFile)
}

// RulesetPath returns the path of a ruleset file
func (s *Store) RulesetPath(name string) string {
	return filepath.Join(s.dir, name)
}

// EnsureLayout creates the rulesets directory and an empty index if they
// are missing
func (s *Store) EnsureLayout() error {
	logger := logging.GetLogger("store")

	if err := s.fs.MkdirAll(s.dir, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create rulesets directory %s", s.dir)
	}

	if _, err := s.fs.Stat(s.IndexPath()); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to check index file %s", s.IndexPath())
	}

	logger.Info().Str("path", s.IndexPath()).Msg("Creating empty index")
	if err := s.fs.WriteFile(s.IndexPath(), nil, filePerm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create index file %s", s.IndexPath())
	}
	return nil
}

// LoadIndex reads and parses the index. A missing index is an empty
// document; an unreadable one is MALFORMED_INDEX.
func (s *Store) LoadIndex() (*index.Document, error) {
	data, err := s.fs.ReadFile(s.IndexPath())
	if err != nil {
		if os.IsNotExist(err) {
			return index.New(), nil
		}
		return nil, errors.Wrapf(err, errors.ErrMalformedIndex, "failed to read index %s", s.IndexPath())
	}
	return index.Parse(string(data)), nil
}

// SaveIndex serializes doc to the index file while holding its lock
func (s *Store) SaveIndex(ctx context.Context, doc *index.Document) error {
	unlock, err := s.fs.Lock(ctx, s.IndexPath())
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to lock index %s", s.IndexPath())
	}
	defer unlock()

	if err := s.fs.WriteFile(s.IndexPath(), []byte(doc.String()), filePerm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write index %s", s.IndexPath())
	}
	return nil
}

// ListRulesets returns the ruleset file names in the directory, sorted.
// The index, hidden files and lock files are skipped.
func (s *Store) ListRulesets() ([]string, error) {
	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", s.dir)
	}

	var names []string
	for _, entry := range entries {
		if !isRulesetEntry(entry, s.indexFile) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func isRulesetEntry(entry fs.DirEntry, indexFile string) bool {
	name := entry.Name()
	switch {
	case entry.IsDir():
		return false
	case name == indexFile:
		return false
	case strings.HasPrefix(name, "."):
		return false
	case strings.HasSuffix(name, ".lock"):
		return false
	}
	return true
}

// ValidateName checks that name can be used as a ruleset file name
func (s *Store) ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.New(errors.ErrInvalidInput, "ruleset name is empty")
	case name != strings.TrimSpace(name):
		return errors.Newf(errors.ErrInvalidInput, "ruleset name %q has surrounding whitespace", name)
	case name == "." || name == "..":
		return errors.Newf(errors.ErrInvalidInput, "invalid ruleset name %q", name)
	case strings.ContainsAny(name, `/\`):
		return errors.Newf(errors.ErrInvalidInput, "ruleset name %q contains a path separator", name)
	case strings.ContainsAny(name, "\r\n"):
		return errors.Newf(errors.ErrInvalidInput, "ruleset name %q contains a line break", name)
	case strings.HasPrefix(name, "#"):
		return errors.Newf(errors.ErrInvalidInput, "ruleset name %q starts with #", name)
	case name == s.indexFile:
		return errors.Newf(errors.ErrInvalidInput, "%q is the index file", name)
	}
	return nil
}

// RulesetExists reports whether a ruleset file is present
func (s *Store) RulesetExists(name string) bool {
	if s.ValidateName(name) != nil {
		return false
	}
	info, err := s.fs.Stat(s.RulesetPath(name))
	return err == nil && !info.IsDir()
}

// ReadRuleset returns the content of a ruleset file
func (s *Store) ReadRuleset(name string) (string, error) {
	if err := s.ValidateName(name); err != nil {
		return "", err
	}

	data, err := s.fs.ReadFile(s.RulesetPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrMissingRuleset, "ruleset %q not found in %s", name, s.dir).
				WithDetail("ruleset", name)
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read ruleset %q", name)
	}
	return string(data), nil
}

// CreateRuleset writes a new ruleset file. It fails if the file exists.
func (s *Store) CreateRuleset(name, content string) error {
	if err := s.ValidateName(name); err != nil {
		return err
	}
	if s.RulesetExists(name) {
		return errors.Newf(errors.ErrAlreadyExists, "ruleset %q already exists", name).
			WithDetail("ruleset", name)
	}
	if err := s.fs.MkdirAll(s.dir, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create rulesets directory %s", s.dir)
	}
	if err := s.fs.WriteFile(s.RulesetPath(name), []byte(content), filePerm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write ruleset %q", name)
	}

	logger := logging.GetLogger("store")
	logger.Info().Str("ruleset", name).Msg("Created ruleset")
	return nil
}

// RemoveRuleset deletes a ruleset file
func (s *Store) RemoveRuleset(name string) error {
	if err := s.ValidateName(name); err != nil {
		return err
	}
	if err := s.fs.Remove(s.RulesetPath(name)); err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrMissingRuleset, "ruleset %q not found in %s", name, s.dir).
				WithDetail("ruleset", name)
		}
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to remove ruleset %q", name)
	}
	return nil
}

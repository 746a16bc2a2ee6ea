package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rxpipe/pkg/errors"
	"github.com/arthur-debert/rxpipe/pkg/filesystem"
	"github.com/arthur-debert/rxpipe/pkg/index"
)

const dir = "/cfg/regex-rulesets"

func newStore(t *testing.T) (*Store, filesystem.FS) {
	t.Helper()
	fs := filesystem.NewMemory()
	return New(fs, dir, ""), fs
}

func TestEnsureLayout(t *testing.T) {
	s, fs := newStore(t)

	require.NoError(t, s.EnsureLayout())

	data, err := fs.ReadFile(dir + "/index.txt")
	require.NoError(t, err)
	assert.Empty(t, data)

	// an existing index is left alone
	require.NoError(t, fs.WriteFile(dir+"/index.txt", []byte("ruleA\n"), 0644))
	require.NoError(t, s.EnsureLayout())
	data, err = fs.ReadFile(dir + "/index.txt")
	require.NoError(t, err)
	assert.Equal(t, "ruleA\n", string(data))
}

func TestLoadIndex(t *testing.T) {
	t.Run("missing index is empty", func(t *testing.T) {
		s, _ := newStore(t)
		doc, err := s.LoadIndex()
		require.NoError(t, err)
		assert.Empty(t, doc.Entries)
	})

	t.Run("parses content", func(t *testing.T) {
		s, fs := newStore(t)
		require.NoError(t, fs.MkdirAll(dir, 0755))
		require.NoError(t, fs.WriteFile(s.IndexPath(), []byte("ruleA\n# ruleB\n"), 0644))

		doc, err := s.LoadIndex()
		require.NoError(t, err)
		assert.Equal(t, []string{"ruleA"}, doc.EnabledNames())
	})

	t.Run("unreadable index", func(t *testing.T) {
		s, fs := newStore(t)
		require.NoError(t, fs.MkdirAll(s.IndexPath(), 0755))

		_, err := s.LoadIndex()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedIndex))
	})
}

func TestSaveIndex(t *testing.T) {
	s, fs := newStore(t)
	require.NoError(t, s.EnsureLayout())

	doc := index.Parse("\n# ruleB\nruleA\n")
	doc.MoveEntry(1, 0)
	require.NoError(t, s.SaveIndex(context.Background(), doc))

	data, err := fs.ReadFile(s.IndexPath())
	require.NoError(t, err)
	assert.Equal(t, "\nruleA\n# ruleB\n", string(data))
}

func TestListRulesets(t *testing.T) {
	s, fs := newStore(t)
	require.NoError(t, s.EnsureLayout())
	for _, name := range []string{"zeta", "alpha", ".hidden", "index.txt.lock"} {
		require.NoError(t, fs.WriteFile(dir+"/"+name, []byte(""), 0644))
	}
	require.NoError(t, fs.MkdirAll(dir+"/subdir", 0755))

	names, err := s.ListRulesets()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestListRulesets_MissingDir(t *testing.T) {
	s, _ := newStore(t)
	names, err := s.ListRulesets()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestReadRuleset(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.CreateRuleset("cleanup", "\"a\"\n-> \"b\"\n"))

	content, err := s.ReadRuleset("cleanup")
	require.NoError(t, err)
	assert.Equal(t, "\"a\"\n-> \"b\"\n", content)

	_, err = s.ReadRuleset("absent")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingRuleset))
}

func TestCreateRuleset(t *testing.T) {
	s, _ := newStore(t)

	require.NoError(t, s.CreateRuleset("cleanup", "x"))
	assert.True(t, s.RulesetExists("cleanup"))

	err := s.CreateRuleset("cleanup", "y")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	content, err := s.ReadRuleset("cleanup")
	require.NoError(t, err)
	assert.Equal(t, "x", content, "existing ruleset must not be overwritten")
}

func TestRemoveRuleset(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.CreateRuleset("cleanup", "x"))

	require.NoError(t, s.RemoveRuleset("cleanup"))
	assert.False(t, s.RulesetExists("cleanup"))

	err := s.RemoveRuleset("cleanup")
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingRuleset))
}

func TestValidateName(t *testing.T) {
	s, _ := newStore(t)

	tests := []struct {
		name    string
		wantErr bool
	}{
		{"cleanup", false},
		{"smart quotes.txt", false},
		{"", true},
		{"   ", true},
		{" padded", true},
		{".", true},
		{"..", true},
		{"a/b", true},
		{`a\b`, true},
		{"two\nlines", true},
		{"#hash", true},
		{"index.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ValidateName(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(d *Document) []string {
	out := make([]string, 0, len(d.Entries))
	for _, ref := range d.Entries {
		out = append(out, ref.Name)
	}
	return out
}

func TestAddEntryAndExists(t *testing.T) {
	doc := Parse("ruleA\n")

	assert.True(t, doc.EntryExists("ruleA"))
	assert.False(t, doc.EntryExists("rulea"))
	assert.False(t, doc.EntryExists("ruleB"))

	doc.AddEntry("ruleB", true)
	doc.AddEntry("ruleC", false)

	assert.True(t, doc.EntryExists("ruleB"))
	assert.Equal(t, "ruleA\nruleB\n# ruleC\n", doc.String())
}

func TestMoveEntry(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"forward", 0, 2, []string{"b", "c", "a", "d"}},
		{"backward", 3, 1, []string{"a", "d", "b", "c"}},
		{"to the end", 1, 3, []string{"a", "c", "d", "b"}},
		{"same position", 2, 2, []string{"a", "b", "c", "d"}},
		{"negative from", -1, 2, []string{"a", "b", "c", "d"}},
		{"from past end", 4, 0, []string{"a", "b", "c", "d"}},
		{"to past end", 0, 4, []string{"a", "b", "c", "d"}},
		{"negative to", 1, -1, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse("a\nb\nc\nd\n")
			doc.MoveEntry(tt.from, tt.to)
			assert.Equal(t, tt.want, names(doc))
		})
	}
}

func TestMoveEntry_KeepsComments(t *testing.T) {
	doc := Parse("a\n\n#\nb\n")
	doc.MoveEntry(1, 0)

	assert.Equal(t, "\n#\nb\na\n", doc.String())
}

func TestMoveEntry_ReflectedInEnabledNames(t *testing.T) {
	doc := Parse("a\n# b\nc\n")
	doc.MoveEntry(2, 0)

	assert.Equal(t, []string{"c", "a"}, doc.EnabledNames())
}

func TestEnabledNames(t *testing.T) {
	doc := Parse("ruleA\n# ruleB\n")
	assert.Equal(t, []string{"ruleA"}, doc.EnabledNames())

	assert.Empty(t, New().EnabledNames())
}

func TestRemoveEntry(t *testing.T) {
	t.Run("comments move to the next entry", func(t *testing.T) {
		doc := Parse("a\n\nb\n#\nc\n")
		require.True(t, doc.RemoveEntry("b"))

		assert.Equal(t, []string{"a", "c"}, names(doc))
		assert.Equal(t, []string{"", "#"}, doc.Entries[1].Comments)
		assert.Equal(t, "a\n\n#\nc\n", doc.String())
	})

	t.Run("comments of the last entry move to the footer", func(t *testing.T) {
		doc := Parse("a\n#\nb\n\n")
		require.True(t, doc.RemoveEntry("b"))

		assert.Equal(t, "#\n\n", doc.Footer)
		assert.Equal(t, "a\n#\n\n", doc.String())
	})

	t.Run("unknown name", func(t *testing.T) {
		doc := Parse("a\n")
		assert.False(t, doc.RemoveEntry("z"))
		assert.Equal(t, "a\n", doc.String())
	})
}

func TestToggle(t *testing.T) {
	original := "ruleA\n\n#\n# ruleB\n"
	doc := Parse(original)

	enabled, ok := doc.Toggle("ruleB")
	require.True(t, ok)
	assert.True(t, enabled)
	assert.Equal(t, "ruleA\n\n#\nruleB\n", doc.String())

	enabled, ok = doc.Toggle("ruleB")
	require.True(t, ok)
	assert.False(t, enabled)
	assert.Equal(t, original, doc.String())

	_, ok = doc.Toggle("missing")
	assert.False(t, ok)
}

func TestSetEnabled(t *testing.T) {
	doc := Parse("ruleA\n")

	assert.True(t, doc.SetEnabled("ruleA", false))
	assert.Equal(t, "# ruleA\n", doc.String())
	assert.False(t, doc.SetEnabled("ruleZ", true))
}

func TestLookup(t *testing.T) {
	doc := Parse("ruleA\n# ruleB\n")

	ref, ok := doc.Lookup("ruleB")
	require.True(t, ok)
	assert.False(t, ref.Enabled)
	assert.Equal(t, 1, doc.Position("ruleB"))

	_, ok = doc.Lookup("nope")
	assert.False(t, ok)
	assert.Equal(t, -1, doc.Position("nope"))
}

func TestQuickNames(t *testing.T) {
	doc := Parse("a\n# b\nc\nd\ne\n")

	assert.Equal(t, []string{"a", "c", "d"}, doc.QuickNames(3))
	assert.Equal(t, []string{"a", "c", "d", "e"}, doc.QuickNames(10))
	assert.Empty(t, doc.QuickNames(0))
	assert.Empty(t, doc.QuickNames(-2))
}

func TestIsQuick(t *testing.T) {
	doc := Parse("a\n# b\nc\nd\n")

	tests := []struct {
		i, n int
		want bool
	}{
		{0, 2, true},
		{1, 2, false},
		{2, 2, true},
		{3, 2, false},
		{3, 3, true},
		{0, 0, false},
		{-1, 3, false},
		{4, 3, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, doc.IsQuick(tt.i, tt.n), "IsQuick(%d, %d)", tt.i, tt.n)
	}
}

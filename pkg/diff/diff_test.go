package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnified(t *testing.T) {
	patch, oversize, err := Unified("a/notes.md", "b/notes.md",
		"I have a cat\nand a hat\n", "I have a dog\nand a hat\n", Options{})
	require.NoError(t, err)
	assert.False(t, oversize)

	assert.Contains(t, patch, "--- a/notes.md\n")
	assert.Contains(t, patch, "+++ b/notes.md\n")
	assert.Contains(t, patch, "-I have a cat\n")
	assert.Contains(t, patch, "+I have a dog\n")
	assert.Contains(t, patch, " and a hat\n")

	added, removed := Stat(patch)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)
}

func TestUnified_Equal(t *testing.T) {
	patch, _, err := Unified("a", "b", "same\n", "same\n", Options{})
	require.NoError(t, err)
	assert.Empty(t, patch)
}

func TestUnified_MissingFinalNewline(t *testing.T) {
	patch, _, err := Unified("a", "b", "abc123", "abc", Options{})
	require.NoError(t, err)
	assert.Contains(t, patch, "-abc123\n\\ No newline at end of file\n")
	assert.Contains(t, patch, "+abc\n\\ No newline at end of file\n")
}

func TestUnified_Oversize(t *testing.T) {
	patch, oversize, err := Unified("a", "b", "12345", "67890", Options{MaxBytes: 6})
	require.NoError(t, err)
	assert.True(t, oversize)
	assert.Contains(t, patch, "diff omitted")
}

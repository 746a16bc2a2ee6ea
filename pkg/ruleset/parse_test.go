package ruleset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rxpipe/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Rule
	}{
		{
			name:    "empty file",
			content: "",
		},
		{
			name:    "no rules",
			content: "just some notes\nabout nothing\n",
		},
		{
			name:    "arrow on the next line",
			content: "\"cat\"\n-> \"dog\"\n",
			want: []Rule{
				{Pattern: "cat", Flags: DefaultFlags, Replacement: "dog", Line: 1},
			},
		},
		{
			name:    "single line",
			content: `"cat"->"dog"`,
			want: []Rule{
				{Pattern: "cat", Flags: DefaultFlags, Replacement: "dog", Line: 1},
			},
		},
		{
			name:    "arrow on its own line",
			content: "\"cat\"\n->\n\"dog\"\n",
			want: []Rule{
				{Pattern: "cat", Flags: DefaultFlags, Replacement: "dog", Line: 1},
			},
		},
		{
			name:    "delete mode",
			content: "\"\\d+\"\n-> \"\"x\n",
			want: []Rule{
				{Pattern: `\d+`, Flags: DefaultFlags, Replacement: "", Delete: true, Line: 1},
			},
		},
		{
			name:    "pattern flags",
			content: "\"colou?r\"gi\n-> \"hue\"\n",
			want: []Rule{
				{Pattern: "colou?r", Flags: FlagGlobal | FlagIgnoreCase, Replacement: "hue", Line: 1},
			},
		},
		{
			name:    "several rules with notes between them",
			content: "first rule\n\"a\"\n-> \"b\"\n\nsecond rule\r\n\"b\"s\r\n-> \"c\"\r\n",
			want: []Rule{
				{Pattern: "a", Flags: DefaultFlags, Replacement: "b", Line: 2},
				{Pattern: "b", Flags: FlagDotAll, Replacement: "c", Line: 6},
			},
		},
		{
			name:    "quoted parts span lines",
			content: "\"one\ntwo\"\n-> \"three\nfour\"\n",
			want: []Rule{
				{Pattern: "one\ntwo", Flags: DefaultFlags, Replacement: "three\nfour", Line: 1},
			},
		},
		{
			name:    "rule must start a line",
			content: "note \"a\" -> \"b\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_RejectsUnknownFlags(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown pattern flag", "\"a\"gy\n-> \"b\"\n"},
		{"unknown replacement flag", "\"a\"\n-> \"b\"q\n"},
		{"delete flag doubled", "\"a\"\n-> \"b\"xx\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := Parse(tt.content)
			require.Error(t, err)
			assert.Nil(t, rules)
			assert.True(t, errors.HasErrorCode(err, errors.ErrInvalidFlag))
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestRuleString(t *testing.T) {
	r := Rule{Pattern: `\d+`, Flags: DefaultFlags, Delete: true}
	assert.Equal(t, `"\\d+"gm -> ""x`, r.String())
}

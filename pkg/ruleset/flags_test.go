package ruleset

import (
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rxpipe/pkg/errors"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		letters string
		want    Flags
		wantErr bool
	}{
		{"", FlagGlobal | FlagMultiline, false},
		{"g", FlagGlobal, false},
		{"gi", FlagGlobal | FlagIgnoreCase, false},
		{"msu", FlagMultiline | FlagDotAll | FlagUnicode, false},
		{"igmsu", FlagGlobal | FlagIgnoreCase | FlagMultiline | FlagDotAll | FlagUnicode, false},
		{"y", 0, true},
		{"gx", 0, true},
		{"gg", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.letters, func(t *testing.T) {
			got, err := ParseFlags(tt.letters)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidFlag))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "gm", DefaultFlags.String())
	assert.Equal(t, "gimsu", (FlagUnicode | FlagDotAll | FlagMultiline | FlagIgnoreCase | FlagGlobal).String())
	assert.Equal(t, "", Flags(0).String())
}

func TestFlagsOptions(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  regexp2.RegexOptions
	}{
		{"none", 0, regexp2.ECMAScript},
		{"ignore case", FlagIgnoreCase, regexp2.ECMAScript | regexp2.IgnoreCase},
		{"multiline", FlagGlobal | FlagMultiline, regexp2.ECMAScript | regexp2.Multiline},
		{"dot all", FlagDotAll, regexp2.ECMAScript | regexp2.Singleline},
		{"unicode", FlagUnicode, regexp2.ECMAScript | regexp2.Unicode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flags.options())
		})
	}
}

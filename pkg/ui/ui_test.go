package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rxpipe/pkg/ui/json"
	"github.com/arthur-debert/rxpipe/pkg/ui/terminal"
	"github.com/arthur-debert/rxpipe/pkg/ui/text"
	"github.com/arthur-debert/rxpipe/pkg/ui/yaml"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"term", FormatTerminal, false},
		{"Terminal", FormatTerminal, false},
		{"text", FormatText, false},
		{"plain", FormatText, false},
		{"json", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"xml", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_String(t *testing.T) {
	for _, f := range []Format{FormatAuto, FormatTerminal, FormatText, FormatJSON, FormatYAML} {
		parsed, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	assert.Equal(t, "unknown", Format(42).String())
}

func tempFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestDetectFormat_NotATerminal(t *testing.T) {
	assert.Equal(t, FormatText, DetectFormat(tempFile(t)))
}

func TestResolve(t *testing.T) {
	f := tempFile(t)

	tests := []struct {
		name    string
		format  string
		noColor bool
		want    Format
	}{
		{"auto on a file", "auto", false, FormatText},
		{"explicit terminal", "term", false, FormatTerminal},
		{"no color downgrades terminal", "term", true, FormatText},
		{"no color keeps json", "json", true, FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.format, f, tt.noColor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Resolve("bogus", f, false)
	assert.Error(t, err)
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		format Format
		want   interface{}
	}{
		{FormatAuto, &text.Renderer{}},
		{FormatTerminal, &terminal.Renderer{}},
		{FormatText, &text.Renderer{}},
		{FormatJSON, &json.Renderer{}},
		{FormatYAML, &yaml.Renderer{}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			r, err := NewRenderer(tt.format, &buf)
			require.NoError(t, err)
			assert.IsType(t, tt.want, r)
		})
	}

	_, err := NewRenderer(Format(99), &buf)
	assert.Error(t, err)
}

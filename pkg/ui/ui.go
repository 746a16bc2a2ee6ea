// Package ui renders command output as styled terminal text, plain text,
// JSON or YAML.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/rxpipe/pkg/ui/json"
	"github.com/arthur-debert/rxpipe/pkg/ui/terminal"
	"github.com/arthur-debert/rxpipe/pkg/ui/text"
	"github.com/arthur-debert/rxpipe/pkg/ui/view"
	"github.com/arthur-debert/rxpipe/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders one of the view types
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a one-line notice
	RenderMessage(level view.Level, msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto looks at the
// output to choose between terminal and text.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Other formats
// pass through unchanged.
type GlamourRenderer struct {
	// Style is a glamour standard style name or a style file path.
	// Empty or "auto" picks one from the terminal background.
	Style string
	// Width wraps output at this column, 0 leaves glamour's default
	Width int
}

// NewGlamourRenderer creates a renderer that auto-detects its style
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// NewPlainMarkdownRenderer renders markdown without colors
func NewPlainMarkdownRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "notty"}
}

func (r *GlamourRenderer) options() []glamour.TermRendererOption {
	var opts []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		opts = append(opts, glamour.WithStandardStyle(r.Style))
	default:
		opts = append(opts, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}
	return opts
}

// Render converts markdown for terminal display, falling back to the raw
// content when glamour fails.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	renderer, err := glamour.NewTermRenderer(r.options()...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

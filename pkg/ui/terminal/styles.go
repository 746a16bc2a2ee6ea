package terminal

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive palette, switching on the terminal background
var (
	primaryColor = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}
	successColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	warningColor = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD54F"}
	infoColor    = lipgloss.AdaptiveColor{Light: "#17A2B8", Dark: "#4DD0E1"}
	headingColor = lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}
)

// styles are bound to a lipgloss renderer so color detection follows the
// actual output rather than stdout.
type styles struct {
	heading  lipgloss.Style
	muted    lipgloss.Style
	name     lipgloss.Style
	disabled lipgloss.Style
	enabled  lipgloss.Style
	quick    lipgloss.Style
	missing  lipgloss.Style
	pattern  lipgloss.Style
	added    lipgloss.Style
	removed  lipgloss.Style
	hunk     lipgloss.Style
	changed  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading:  r.NewStyle().Bold(true).Foreground(headingColor),
		muted:    r.NewStyle().Foreground(mutedColor),
		name:     r.NewStyle().Foreground(primaryColor),
		disabled: r.NewStyle().Foreground(mutedColor).Strikethrough(true),
		enabled:  r.NewStyle().Foreground(successColor).Bold(true),
		quick:    r.NewStyle().Foreground(infoColor),
		missing:  r.NewStyle().Foreground(errorColor),
		pattern:  r.NewStyle().Foreground(warningColor),
		added:    r.NewStyle().Foreground(successColor),
		removed:  r.NewStyle().Foreground(errorColor),
		hunk:     r.NewStyle().Foreground(infoColor),
		changed:  r.NewStyle().Foreground(successColor).Bold(true),
	}
}

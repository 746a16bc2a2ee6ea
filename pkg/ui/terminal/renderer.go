// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/rxpipe/pkg/ui/view"
)

// Renderer provides styled terminal output
type Renderer struct {
	output io.Writer
	styles styles
}

// New creates a new terminal renderer writing to w
func New(w io.Writer) *Renderer {
	return &Renderer{
		output: w,
		styles: newStyles(lipgloss.NewRenderer(w)),
	}
}

// RenderResult renders any result type with terminal styling
func (r *Renderer) RenderResult(result interface{}) error {
	var b strings.Builder

	switch v := result.(type) {
	case *view.List:
		r.renderList(&b, v)
	case *view.Rules:
		r.renderRules(&b, v)
	case *view.Apply:
		r.renderApply(&b, v)
	case string:
		b.WriteString(v)
		if !strings.HasSuffix(v, "\n") {
			b.WriteByte('\n')
		}
	default:
		fmt.Fprintf(&b, "%v\n", v)
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error with the error prefix
func (r *Renderer) RenderError(err error) error {
	_, werr := io.WriteString(r.output, pterm.Error.Sprintln(err.Error()))
	return werr
}

// RenderMessage renders a message with a level prefix
func (r *Renderer) RenderMessage(level view.Level, msg string) error {
	var p pterm.PrefixPrinter
	switch level {
	case view.LevelSuccess:
		p = pterm.Success
	case view.LevelWarning:
		p = pterm.Warning
	case view.LevelError:
		p = pterm.Error
	default:
		p = pterm.Info
	}
	_, err := io.WriteString(r.output, p.Sprintln(msg))
	return err
}

func (r *Renderer) renderList(b *strings.Builder, v *view.List) {
	s := r.styles
	b.WriteString(s.heading.Render("Rulesets"))
	b.WriteString(" ")
	b.WriteString(s.muted.Render(v.RulesetsDir))
	b.WriteString("\n\n")

	if len(v.Entries) == 0 {
		b.WriteString(s.muted.Render("  index is empty"))
		b.WriteByte('\n')
	}
	for _, e := range v.Entries {
		mark := s.muted.Render("○")
		name := s.disabled.Render(e.Name)
		if e.Enabled {
			mark = s.enabled.Render("●")
			name = s.name.Render(e.Name)
		}
		fmt.Fprintf(b, "  %s %s %s", s.muted.Render(fmt.Sprintf("%2d", e.Position)), mark, name)
		if e.Quick {
			b.WriteString(" ")
			b.WriteString(s.quick.Render(fmt.Sprintf("[%d]", e.Slot)))
		}
		if e.Missing {
			b.WriteString(" ")
			b.WriteString(s.missing.Render("missing"))
		}
		b.WriteByte('\n')
	}

	if len(v.Unlisted) > 0 {
		b.WriteByte('\n')
		b.WriteString(s.heading.Render("Not in index"))
		b.WriteByte('\n')
		for _, name := range v.Unlisted {
			fmt.Fprintf(b, "  %s\n", s.muted.Render(name))
		}
	}
}

func (r *Renderer) renderRules(b *strings.Builder, v *view.Rules) {
	s := r.styles
	b.WriteString(s.heading.Render(v.Ruleset))
	if len(v.Rules) == 0 {
		b.WriteString(s.muted.Render(": no rules found"))
		b.WriteByte('\n')
		return
	}
	b.WriteString(s.muted.Render(fmt.Sprintf(" (%d rules)", len(v.Rules))))
	b.WriteByte('\n')

	for _, rule := range v.Rules {
		replacement := s.name.Render(fmt.Sprintf("%q", rule.Replacement))
		if rule.Delete {
			replacement = s.missing.Render("delete")
		}
		fmt.Fprintf(b, "  %s %s%s %s %s\n",
			s.muted.Render(fmt.Sprintf("%4d", rule.Line)),
			s.pattern.Render(fmt.Sprintf("%q", rule.Pattern)),
			s.muted.Render(rule.Flags),
			s.muted.Render("->"),
			replacement)
	}
}

func (r *Renderer) renderApply(b *strings.Builder, v *view.Apply) {
	s := r.styles
	if v.DryRun {
		b.WriteString(s.quick.Render("dry run "))
	}
	b.WriteString(s.name.Render(v.Ruleset))
	b.WriteString(s.muted.Render(" on "))
	b.WriteString(v.Target)
	if v.Selection {
		b.WriteString(s.muted.Render(" (selection)"))
	}
	b.WriteString(s.muted.Render(fmt.Sprintf(": %d rules, ", v.Applied)))
	if v.Changed {
		b.WriteString(s.changed.Render("changed"))
	} else {
		b.WriteString(s.muted.Render("unchanged"))
	}
	b.WriteByte('\n')

	if v.Diff == "" {
		return
	}
	b.WriteByte('\n')
	for _, line := range strings.SplitAfter(v.Diff, "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			body = s.heading.Render(body)
		case strings.HasPrefix(body, "@@"):
			body = s.hunk.Render(body)
		case strings.HasPrefix(body, "+"):
			body = s.added.Render(body)
		case strings.HasPrefix(body, "-"):
			body = s.removed.Render(body)
		}
		b.WriteString(body)
		b.WriteByte('\n')
	}
}

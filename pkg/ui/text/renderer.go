// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/rxpipe/pkg/ui/view"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	var b strings.Builder

	switch v := result.(type) {
	case *view.List:
		renderList(&b, v)
	case *view.Rules:
		renderRules(&b, v)
	case *view.Apply:
		renderApply(&b, v)
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

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a message with its level as prefix
func (r *Renderer) RenderMessage(level view.Level, msg string) error {
	var err error
	if level == view.LevelInfo || level == view.LevelSuccess {
		_, err = fmt.Fprintln(r.output, msg)
	} else {
		_, err = fmt.Fprintf(r.output, "%s%s: %s\n", strings.ToUpper(string(level[:1])), level[1:], msg)
	}
	return err
}

func renderList(b *strings.Builder, v *view.List) {
	fmt.Fprintf(b, "Rulesets in %s\n\n", v.RulesetsDir)

	if len(v.Entries) == 0 {
		b.WriteString("  (index is empty)\n")
	}
	for _, e := range v.Entries {
		mark := " "
		if e.Enabled {
			mark = "x"
		}
		fmt.Fprintf(b, "  %2d. [%s] %s", e.Position, mark, e.Name)

		var notes []string
		if e.Quick {
			notes = append(notes, fmt.Sprintf("quick %d", e.Slot))
		}
		if e.Missing {
			notes = append(notes, "missing")
		}
		if len(notes) > 0 {
			fmt.Fprintf(b, "  (%s)", strings.Join(notes, ", "))
		}
		b.WriteByte('\n')
	}

	if len(v.Unlisted) > 0 {
		b.WriteString("\nNot in index:\n")
		for _, name := range v.Unlisted {
			fmt.Fprintf(b, "  %s\n", name)
		}
	}
}

func renderRules(b *strings.Builder, v *view.Rules) {
	if len(v.Rules) == 0 {
		fmt.Fprintf(b, "%s: no rules found\n", v.Ruleset)
		return
	}

	fmt.Fprintf(b, "%s: %d rules\n", v.Ruleset, len(v.Rules))
	for _, r := range v.Rules {
		replacement := fmt.Sprintf("%q", r.Replacement)
		if r.Delete {
			replacement = "delete"
		}
		fmt.Fprintf(b, "  line %d: %q %s -> %s\n", r.Line, r.Pattern, r.Flags, replacement)
	}
}

func renderApply(b *strings.Builder, v *view.Apply) {
	if v.DryRun {
		b.WriteString("Dry run: ")
	}

	state := "unchanged"
	if v.Changed {
		state = "changed"
	}
	scope := ""
	if v.Selection {
		scope = " (selection)"
	}
	fmt.Fprintf(b, "%s on %s%s: %d rules applied, text %s\n", v.Ruleset, v.Target, scope, v.Applied, state)

	if v.Diff != "" {
		b.WriteByte('\n')
		b.WriteString(v.Diff)
	}
}

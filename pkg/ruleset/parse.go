package ruleset

import (
	"fmt"

	"github.com/dlclark/regexp2"

	"github.com/arthur-debert/rxpipe/pkg/errors"
)

// Rule is one pattern and replacement pair read from a ruleset file
type Rule struct {
	Pattern     string
	Flags       Flags
	Replacement string

	// Delete removes every match; Replacement is ignored
	Delete bool

	// Line is the 1-based line the rule starts on
	Line int
}

func (r Rule) String() string {
	suffix := ""
	if r.Delete {
		suffix = "x"
	}
	return fmt.Sprintf("%q%s -> %q%s", r.Pattern, r.Flags, r.Replacement, suffix)
}

// A rule starts at the beginning of a line and ends at the end of one.
// Dots cross line breaks so quoted parts may span lines.
var rulePattern = regexp2.MustCompile(
	`(?<=\A|[\r\n])"(.+?)"([a-z]*?)[ \t]*(?:\r\n|\r|\n)?[ \t]*->[ \t]*(?:\r\n|\r|\n)?[ \t]*"(.*?)"([a-z]*?)[ \t]*(?=\r\n|\r|\n|\z)`,
	regexp2.Singleline,
)

// Parse reads every rule in a ruleset file, in file order. Content without
// any rule yields an empty list and no error.
func Parse(content string) ([]Rule, error) {
	var rules []Rule

	m, err := rulePattern.FindStringMatch(content)
	for ; m != nil && err == nil; m, err = rulePattern.FindNextMatch(m) {
		line := lineAt(content, m.Index)

		flags, ferr := ParseFlags(m.GroupByNumber(2).String())
		if ferr != nil {
			return nil, errors.Wrapf(ferr, errors.ErrInvalidFlag, "rule %d on line %d", len(rules)+1, line)
		}

		var del bool
		switch rf := m.GroupByNumber(4).String(); rf {
		case "":
		case "x":
			del = true
		default:
			return nil, errors.Newf(errors.ErrInvalidFlag,
				"rule %d on line %d: unknown replacement flags %q", len(rules)+1, line, rf)
		}

		rules = append(rules, Rule{
			Pattern:     m.GroupByNumber(1).String(),
			Flags:       flags,
			Replacement: m.GroupByNumber(3).String(),
			Delete:      del,
			Line:        line,
		})
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "scanning ruleset")
	}

	return rules, nil
}

// lineAt returns the 1-based line of a rune offset
func lineAt(content string, runeOffset int) int {
	line := 1
	i := 0
	var prev rune
	for _, r := range content {
		if i >= runeOffset {
			break
		}
		switch {
		case r == '\n' && prev == '\r':
		case r == '\n', r == '\r':
			line++
		}
		prev = r
		i++
	}
	return line
}

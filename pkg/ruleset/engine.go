package ruleset

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/arthur-debert/rxpipe/pkg/errors"
	"github.com/arthur-debert/rxpipe/pkg/logging"
)

// Engine compiles and applies rules. The zero value has no match timeout.
type Engine struct {
	// MatchTimeout bounds a single match attempt; zero means no limit
	MatchTimeout time.Duration
}

// Compiled is a rule with its compiled pattern
type Compiled struct {
	Rule
	re          *regexp2.Regexp
	replacement string
}

// Compile compiles every rule. The first pattern that does not compile
// fails the whole list.
func (e Engine) Compile(rules []Rule) ([]Compiled, error) {
	compiled := make([]Compiled, 0, len(rules))
	for i, rule := range rules {
		re, err := regexp2.Compile(rule.Pattern, rule.Flags.options())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidPattern,
				"rule %d on line %d: invalid pattern %q", i+1, rule.Line, rule.Pattern).
				WithDetail("pattern", rule.Pattern)
		}
		if e.MatchTimeout > 0 {
			re.MatchTimeout = e.MatchTimeout
		}

		replacement := namedGroupRefs(rule.Replacement)

		// count 0 only parses the replacement
		if !rule.Delete {
			if _, err := re.Replace("", replacement, -1, 0); err != nil {
				return nil, errors.Wrapf(err, errors.ErrInvalidPattern,
					"rule %d on line %d: invalid replacement %q", i+1, rule.Line, rule.Replacement).
					WithDetail("pattern", rule.Pattern)
			}
		}

		compiled = append(compiled, Compiled{Rule: rule, re: re, replacement: replacement})
	}
	return compiled, nil
}

// Apply runs the rules over text in order and returns the result together
// with the number of rules applied. Rules that match nothing still count.
// On error the returned text is the unchanged input.
func (e Engine) Apply(rules []Rule, text string) (string, int, error) {
	logger := logging.GetLogger("ruleset.engine")

	if len(rules) == 0 {
		logger.Debug().Msg("No rules to apply")
		return text, 0, nil
	}

	compiled, err := e.Compile(rules)
	if err != nil {
		return text, 0, err
	}

	out := text
	for i, c := range compiled {
		next, err := c.apply(out)
		if err != nil {
			return text, 0, errors.Wrapf(err, errors.ErrApply,
				"rule %d on line %d failed", i+1, c.Line).
				WithDetail("pattern", c.Pattern)
		}
		logger.Trace().
			Int("rule", i+1).
			Str("pattern", c.Pattern).
			Bool("changed", next != out).
			Msg("Rule applied")
		out = next
	}

	return out, len(compiled), nil
}

func (c Compiled) apply(text string) (string, error) {
	count := 1
	if c.Flags.Has(FlagGlobal) {
		count = -1
	}

	replacement := c.replacement
	if c.Delete {
		replacement = ""
	}

	return c.re.Replace(text, replacement, -1, count)
}

// Apply runs rules with a default Engine
func Apply(rules []Rule, text string) (string, int, error) {
	return Engine{}.Apply(rules, text)
}

// Run parses content as a ruleset file and applies it to text
func (e Engine) Run(content, text string) (string, int, error) {
	rules, err := Parse(content)
	if err != nil {
		return text, 0, err
	}
	return e.Apply(rules, text)
}

// namedGroupRefs rewrites $<name> group references to ${name}, the form
// regexp2 expands. Escaped dollars ($$) are left alone.
func namedGroupRefs(s string) string {
	if !strings.Contains(s, "$<") {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '$' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case '$':
			b.WriteString("$$")
			i++
		case '<':
			end := strings.IndexByte(s[i+2:], '>')
			if end <= 0 {
				b.WriteByte('$')
				continue
			}
			b.WriteString("${" + s[i+2:i+2+end] + "}")
			i += 2 + end
		default:
			b.WriteByte('$')
		}
	}
	return b.String()
}

package index

import (
	"regexp"
	"strings"
)

var (
	lineBreak       = regexp.MustCompile(`\r\n|\r|\n`)
	disabledPattern = regexp.MustCompile(`^\s*#\s*(\S.*)$`)
)

// Reference is one ruleset listed in the index
type Reference struct {
	// Name is the ruleset file name, matched exactly
	Name string

	// Enabled is false for entries written as "# name"
	Enabled bool

	// Comments are the raw lines (blank or bare "#") found right above the entry
	Comments []string
}

// Document is the parsed index file
type Document struct {
	// Header holds the blank lines preceding the first entry, each ending in "\n"
	Header string

	Entries []Reference

	// Footer holds the lines after the last entry, each ending in "\n"
	Footer string
}

// New returns an empty document
func New() *Document {
	return &Document{}
}

// splitLines splits on any line break style. A trailing break does not
// produce an extra empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := lineBreak.Split(content, -1)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Parse reads index content. It never fails: every line is either part of
// the header, a comment, an entry or the footer.
func Parse(content string) *Document {
	var (
		header   []string
		pending  []string
		inHeader = true
		doc      = New()
	)

	emit := func(name string, enabled bool) {
		inHeader = false
		ref := Reference{Name: name, Enabled: enabled}
		if len(pending) > 0 {
			ref.Comments = append([]string(nil), pending...)
		}
		doc.Entries = append(doc.Entries, ref)
		pending = pending[:0]
	}

	for _, line := range splitLines(content) {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			if inHeader {
				header = append(header, line)
			} else {
				pending = append(pending, line)
			}
			continue
		}

		if m := disabledPattern.FindStringSubmatch(line); m != nil {
			emit(m[1], false)
			continue
		}

		// Only "#" with optional surrounding space gets here
		if strings.HasPrefix(trimmed, "#") {
			pending = append(pending, line)
			continue
		}

		emit(trimmed, true)
	}

	doc.Header = joinLines(header)
	doc.Footer = joinLines(pending)
	return doc
}

// String serializes the document back into index file content
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString(d.Header)

	ensureBreak := func() {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteByte('\n')
		}
	}

	for _, ref := range d.Entries {
		ensureBreak()
		if len(ref.Comments) > 0 {
			b.WriteString(strings.Join(ref.Comments, "\n"))
			b.WriteByte('\n')
		}
		if !ref.Enabled {
			b.WriteString("# ")
		}
		b.WriteString(ref.Name)
		b.WriteByte('\n')
	}

	if d.Footer != "" {
		ensureBreak()
		b.WriteString(d.Footer)
		ensureBreak()
	}

	return b.String()
}

// Clone returns a deep copy
func (d *Document) Clone() *Document {
	c := &Document{
		Header: d.Header,
		Footer: d.Footer,
	}
	if d.Entries != nil {
		c.Entries = make([]Reference, len(d.Entries))
		for i, ref := range d.Entries {
			c.Entries[i] = ref
			if ref.Comments != nil {
				c.Entries[i].Comments = append([]string(nil), ref.Comments...)
			}
		}
	}
	return c
}

// Package target provides the text surfaces a ruleset is applied to.
//
// A Target hands out its current text, and optionally a selection, and
// takes the transformed text back. Nothing is written until SetText or
// ReplaceSelection is called.
package target

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/rxpipe/pkg/errors"
)

// Target is a source of text that can take a transformed version back
type Target interface {
	// Name describes the target in messages
	Name() string

	// Text returns the whole text
	Text() (string, error)

	// SetText replaces the whole text
	SetText(text string) error

	// Selection returns the selected part of the text, if any
	Selection() (string, bool, error)

	// ReplaceSelection replaces only the selected part
	ReplaceSelection(text string) error
}

// LineRange is an inclusive, 1-based range of lines. End 0 means the last line.
type LineRange struct {
	Start int
	End   int
}

// ParseLineRange reads "a:b", "a:", ":b" or "a"
func ParseLineRange(s string) (LineRange, error) {
	invalid := func() error {
		return errors.Newf(errors.ErrInvalidInput, "invalid line range %q, expected start:end", s)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return LineRange{}, invalid()
	}

	startStr, endStr, hasColon := strings.Cut(s, ":")
	if !hasColon {
		endStr = startStr
	}

	r := LineRange{Start: 1}
	if startStr != "" {
		n, err := strconv.Atoi(startStr)
		if err != nil || n < 1 {
			return LineRange{}, invalid()
		}
		r.Start = n
	}
	if endStr != "" {
		n, err := strconv.Atoi(endStr)
		if err != nil || n < 1 {
			return LineRange{}, invalid()
		}
		r.End = n
	}
	if r.End != 0 && r.End < r.Start {
		return LineRange{}, invalid()
	}
	return r, nil
}

func (r LineRange) String() string {
	if r.End == 0 {
		return strconv.Itoa(r.Start) + ":"
	}
	return strconv.Itoa(r.Start) + ":" + strconv.Itoa(r.End)
}

// bounds returns the byte offsets of the range within text. Lines keep
// their terminators.
func (r LineRange) bounds(text string) (int, int, error) {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if r.Start > len(lines) {
		return 0, 0, errors.Newf(errors.ErrInvalidInput,
			"line range %s starts past the last line (%d)", r, len(lines))
	}

	end := r.End
	if end == 0 || end > len(lines) {
		end = len(lines)
	}

	from := 0
	for _, l := range lines[:r.Start-1] {
		from += len(l)
	}
	to := from
	for _, l := range lines[r.Start-1 : end] {
		to += len(l)
	}
	return from, to, nil
}

package ruleset

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/arthur-debert/rxpipe/pkg/errors"
)

// Flags is the set of pattern flags of a rule
type Flags uint8

const (
	FlagGlobal Flags = 1 << iota
	FlagIgnoreCase
	FlagMultiline
	FlagDotAll
	FlagUnicode
)

// DefaultFlags apply when a rule lists no pattern flags
const DefaultFlags = FlagGlobal | FlagMultiline

var flagLetters = []struct {
	letter byte
	flag   Flags
}{
	{'g', FlagGlobal},
	{'i', FlagIgnoreCase},
	{'m', FlagMultiline},
	{'s', FlagDotAll},
	{'u', FlagUnicode},
}

// ParseFlags converts flag letters into a Flags set. An empty string yields
// DefaultFlags. Unknown or repeated letters are rejected.
func ParseFlags(letters string) (Flags, error) {
	if letters == "" {
		return DefaultFlags, nil
	}

	var flags Flags
	for i := 0; i < len(letters); i++ {
		f, ok := lookupFlag(letters[i])
		if !ok {
			return 0, errors.Newf(errors.ErrInvalidFlag, "unknown pattern flag %q", letters[i]).
				WithDetail("flags", letters)
		}
		if flags&f != 0 {
			return 0, errors.Newf(errors.ErrInvalidFlag, "pattern flag %q given twice", letters[i]).
				WithDetail("flags", letters)
		}
		flags |= f
	}
	return flags, nil
}

func lookupFlag(letter byte) (Flags, bool) {
	for _, fl := range flagLetters {
		if fl.letter == letter {
			return fl.flag, true
		}
	}
	return 0, false
}

// Has reports whether every flag in f2 is set
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// String returns the flag letters in canonical order
func (f Flags) String() string {
	var b strings.Builder
	for _, fl := range flagLetters {
		if f&fl.flag != 0 {
			b.WriteByte(fl.letter)
		}
	}
	return b.String()
}

func (f Flags) options() regexp2.RegexOptions {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if f.Has(FlagIgnoreCase) {
		opts |= regexp2.IgnoreCase
	}
	if f.Has(FlagMultiline) {
		opts |= regexp2.Multiline
	}
	if f.Has(FlagDotAll) {
		opts |= regexp2.Singleline
	}
	if f.Has(FlagUnicode) {
		opts |= regexp2.Unicode
	}
	return opts
}

// Package ruleset parses ruleset files and applies their rules to text.
//
// A ruleset file holds any number of rules:
//
//	"colou?r"i
//	-> "hue"
//
//	"\s+$"
//	-> ""x
//
// The quoted pattern is followed by optional flag letters, then "->" on the
// same or the next line, then the quoted replacement with its own optional
// flags. Either quoted part may span lines. Text between rules is ignored.
//
// # Flags
//
// Pattern flags are g (every match), i (ignore case), m (^ and $ match at
// line breaks), s (dot matches line breaks) and u (unicode escapes). A rule
// without flags runs as "gm". Without g only the first match is replaced.
// The only replacement flag is x, which deletes every match instead of
// substituting the replacement.
//
// Patterns use ECMAScript syntax. Replacements may refer to groups with
// $1, ${name}, $<name>, $& and $$.
//
// Rules run in file order, each one on the output of the previous one.
// Every pattern is compiled before the first substitution, so a bad pattern
// fails the whole ruleset and leaves the input untouched.
package ruleset

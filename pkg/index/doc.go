// Package index reads and writes the rulesets index file.
//
// The index is a plain text file listing ruleset file names, one per line.
// Order matters: it is the display order and decides which rulesets fill
// the quick slots.
//
//	# Rulesets applied from the command line
//
//	# cleanup rules
//	trim-whitespace
//	# smart-quotes
//	markdown-links
//
// A bare name is an enabled entry. A name behind `#` is a disabled entry.
// Blank lines and bare `#` lines directly above an entry are kept as that
// entry's comments, blank lines above the first entry form the header and
// whatever follows the last entry forms the footer. All of it is written
// back verbatim.
//
// # Comments and disabled entries
//
// Any line of the form `# text` is read as a disabled entry named "text",
// including lines meant as prose. In the example above "Rulesets applied
// from the command line" and "cleanup rules" both become disabled entries.
// Their text survives a round trip unchanged, but they show up in listings.
package index

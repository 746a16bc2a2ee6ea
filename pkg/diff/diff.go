// Package diff renders the change a ruleset makes as a unified diff.
package diff

import (
	"fmt"
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// DefaultContext is the number of context lines around each hunk
const DefaultContext = 3

// Options controls patch generation
type Options struct {
	// Context lines in unified hunks; 0 means DefaultContext
	Context int

	// MaxBytes caps the combined input size; 0 means no limit
	MaxBytes int
}

// Unified produces a unified patch for a↦b. Equal inputs give an empty
// patch. oversize is true when MaxBytes was exceeded and only a
// placeholder was produced.
func Unified(aName, bName, a, b string, opt Options) (patch string, oversize bool, err error) {
	if a == b {
		return "", false, nil
	}
	if opt.MaxBytes > 0 && len(a)+len(b) > opt.MaxBytes {
		return omitted(aName, bName), true, nil
	}

	ctx := opt.Context
	if ctx <= 0 {
		ctx = DefaultContext
	}

	patch, err = difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(a),
		B:        splitLines(b),
		FromFile: aName,
		ToFile:   bName,
		Context:  ctx,
	})
	if err != nil {
		return "", false, fmt.Errorf("building diff: %w", err)
	}
	return patch, false, nil
}

// splitLines keeps line terminators. A last line without one gets a
// marker so the hunk stays well formed.
func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		return lines[:len(lines)-1]
	}
	lines[len(lines)-1] += "\n\\ No newline at end of file\n"
	return lines
}

func omitted(aName, bName string) string {
	return fmt.Sprintf("--- %s\n+++ %s\n@@\n# diff omitted (oversize)\n", aName, bName)
}

// Stat counts added and removed lines in a unified patch
func Stat(patch string) (added, removed int) {
	for _, line := range strings.Split(patch, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			added++
		case strings.HasPrefix(line, "-"):
			removed++
		}
	}
	return added, removed
}

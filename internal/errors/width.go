package errors

import (
	"unicode"

	"golang.org/x/text/width"
)

// DisplayWidth returns the terminal column width of r: 0 for zero-width
// combining marks, 2 for East-Asian wide/fullwidth characters, 1
// otherwise. Caret rendering sums this over a source line's runes so
// carets land under the right column even in mixed ASCII/CJK source.
func DisplayWidth(r rune) int {
	if unicode.Is(unicode.Mn, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// DisplayWidthUpTo sums DisplayWidth over the first n runes of line,
// giving the caret-rendering's starting column offset for a 0-based
// rune index n.
func DisplayWidthUpTo(line []rune, n int) int {
	w := 0
	for i := 0; i < n && i < len(line); i++ {
		w += DisplayWidth(line[i])
	}
	return w
}

// Package str provides the string predicate and orderings used by the
// comparator package.
package str

import (
	"strings"

	"golang.org/x/text/cases"
)

// Is reports whether v is a string.
func Is(v any) bool {
	_, ok := v.(string)
	return ok
}

// Compare orders a and b byte-wise, returning -1, 0 or 1.
// Upper-case ASCII letters sort before lower-case ones.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

// CompareFold orders a and b after Unicode case folding, returning -1, 0
// or 1.
//
//	CompareFold("STRING", "string") // 0
func CompareFold(a, b string) int {
	// a Caser is stateful, so each call gets its own
	return strings.Compare(cases.Fold().String(a), cases.Fold().String(b))
}

package comparator

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/hasbyte1/go-primitives/arr"
)

// Sign compares a and b and reduces the result to -1, 0 or 1.
func (c *Comparator) Sign(a, b any) (int, error) {
	d, err := c.Compare(a, b)
	if err != nil {
		return 0, err
	}
	return d.Sign(), nil
}

// Sort sorts items in place with c, keeping equal elements in their original
// order. It returns the first comparison error; when it does, the order of
// items is unspecified.
//
//	words := []string{"b", "C", "a"}
//	err := comparator.Sort(words, comparator.NewStr(true)) // [a b C]
func Sort[T any](items []T, c *Comparator) error {
	var first error
	slices.SortStableFunc(items, func(a, b T) int {
		if first != nil {
			return 0
		}
		sign, err := c.Sign(a, b)
		if err != nil {
			first = err
			return 0
		}
		return sign
	})
	return first
}

// IsSorted reports whether items are in c's order. It returns the first
// comparison error, if any.
func IsSorted[T any](items []T, c *Comparator) (bool, error) {
	for i := 1; i < len(items); i++ {
		sign, err := c.Sign(items[i-1], items[i])
		if err != nil {
			return false, err
		}
		if sign > 0 {
			return false, nil
		}
	}
	return true, nil
}

// Reverse returns a locked comparator that negates the results of c.
// Errors from c, including [ErrNotReady], are passed through.
func Reverse(c *Comparator) *Comparator {
	return newLocked(func(_ *arr.PathMap, a, b any) (decimal.Decimal, error) {
		d, err := c.Compare(a, b)
		if err != nil {
			return decimal.Zero, err
		}
		return d.Neg(), nil
	})
}

package comparator

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-primitives/arr"
	"github.com/hasbyte1/go-primitives/num"
)

// NewBool returns a comparator for two bools: false sorts before true.
// The result is int(a) - int(b), one of -1, 0 or 1.
func NewBool() *Comparator { return newLocked(compareBool) }

func compareBool(_ *arr.PathMap, a, b any) (decimal.Decimal, error) {
	ba, okA := a.(bool)
	bb, okB := b.(bool)
	if !okA || !okB {
		return decimal.Zero, argumentType("bool")
	}
	return decimal.NewFromInt(int64(num.Diff(boolInt(ba), boolInt(bb)))), nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

// NewInt returns a comparator for two native integers of any width. The
// result is the exact difference a - b; it does not overflow.
func NewInt() *Comparator { return newLocked(compareInt) }

func compareInt(_ *arr.PathMap, a, b any) (decimal.Decimal, error) {
	if !num.IsInt(a) || !num.IsInt(b) {
		return decimal.Zero, argumentType("int")
	}
	return num.Sub(a, b)
}

// NewFloat returns a comparator for two finite native floats. The result is
// the float64 difference a - b. NaN and infinities are rejected.
func NewFloat() *Comparator { return newLocked(compareFloat) }

func compareFloat(_ *arr.PathMap, a, b any) (decimal.Decimal, error) {
	fa, okA := finite(a)
	fb, okB := finite(b)
	if !okA || !okB {
		return decimal.Zero, argumentType("float")
	}
	d := num.Diff(fa, fb)
	if math.IsInf(d, 0) {
		// the float difference overflowed; fall back to the exact one
		return num.Sub(fa, fb)
	}
	return decimal.NewFromFloat(d), nil
}

func finite(v any) (float64, bool) {
	if !num.IsFloat(v) {
		return 0, false
	}
	return num.Float64(v)
}

// NewOrdered returns a comparator for two values of the ordered type T,
// returning -1, 0 or 1. Operands must have exactly type T.
//
//	c := comparator.NewOrdered[time.Duration]()
//	c.Compare(time.Second, time.Minute) // -1
func NewOrdered[T constraints.Ordered]() *Comparator {
	var zero T
	expected := fmt.Sprintf("%T", zero)
	return newLocked(func(_ *arr.PathMap, a, b any) (decimal.Decimal, error) {
		ta, okA := a.(T)
		tb, okB := b.(T)
		if !okA || !okB {
			return decimal.Zero, argumentType(expected)
		}
		return decimal.NewFromInt(int64(ordered(ta, tb))), nil
	})
}

func ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

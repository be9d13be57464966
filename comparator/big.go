package comparator

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/hasbyte1/go-primitives/arr"
	"github.com/hasbyte1/go-primitives/num"
)

// NewBigInt returns a comparator for integers of arbitrary size: native
// integers, *big.Int values and integer strings such as
// "123456789012345678901234567890". The result is the exact difference
// a - b.
//
// scale[0] sets the initial [OptionScale]; without it the option is nil.
func NewBigInt(scale ...int) *Comparator {
	return withScale(newLocked(compareBigInt), scale)
}

func compareBigInt(opts *arr.PathMap, a, b any) (decimal.Decimal, error) {
	if !num.IsBigInt(a) || !num.IsBigInt(b) {
		return decimal.Zero, argumentType("int or integer string")
	}
	return subScaled(opts, a, b)
}

// NewBigFloat returns a comparator for floats, decimal.Decimal values and
// numeric strings containing a '.'. The result is a - b computed exactly and
// truncated to [OptionScale] digits after the decimal point; a nil scale
// keeps every digit.
//
//	c := comparator.NewBigFloat(2)
//	c.Compare(8.75, 5.5)     // 3.25
//	c.Compare("8.75", "5.5") // 3.25
func NewBigFloat(scale ...int) *Comparator {
	return withScale(newLocked(compareBigFloat), scale)
}

func compareBigFloat(opts *arr.PathMap, a, b any) (decimal.Decimal, error) {
	if !num.IsBigFloat(a) || !num.IsBigFloat(b) {
		return decimal.Zero, argumentType("float or float string")
	}
	return subScaled(opts, a, b)
}

// NewBigNum returns a comparator for any pair of numbers. Two native integers
// are compared like [NewInt], two native floats like [NewFloat], two integers
// of any representation like [NewBigInt]; every other pair is subtracted as
// decimals at [OptionScale], like [NewBigFloat].
func NewBigNum(scale ...int) *Comparator {
	return withScale(newLocked(compareBigNum), scale)
}

func compareBigNum(opts *arr.PathMap, a, b any) (decimal.Decimal, error) {
	if !num.IsNumeric(a) || !num.IsNumeric(b) {
		return decimal.Zero, argumentType("int, float or numeric string")
	}
	ka, kb := num.KindOf(a), num.KindOf(b)
	switch {
	case ka == num.KindInt && kb == num.KindInt:
		return compareInt(opts, a, b)
	case ka == num.KindFloat && kb == num.KindFloat:
		return compareFloat(opts, a, b)
	case num.IsBigInt(a) && num.IsBigInt(b):
		return compareBigInt(opts, a, b)
	default:
		return subScaled(opts, a, b)
	}
}

func withScale(c *Comparator, scale []int) *Comparator {
	if len(scale) > 0 {
		return c.SetOption(OptionScale, scale[0])
	}
	return c.SetOption(OptionScale, nil)
}

// subScaled subtracts b from a at the scale found in opts.
func subScaled(opts *arr.PathMap, a, b any) (decimal.Decimal, error) {
	return num.Sub(a, b, scaleOption(opts)...)
}

// scaleOption reads OptionScale as any integer kind: native integers,
// *big.Int or an integer string such as "2". Other values, negative scales
// and scales beyond int32 keep every digit.
func scaleOption(opts *arr.PathMap) []int {
	v := opts.Get(OptionScale)
	if !num.IsBigInt(v) {
		return nil
	}
	d, err := num.Decimal(v)
	if err != nil || d.Sign() < 0 || d.GreaterThan(maxScale) {
		return nil
	}
	return []int{int(d.IntPart())}
}

var maxScale = decimal.NewFromInt(math.MaxInt32)

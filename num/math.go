package num

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Real is the set of native types supporting exact-width arithmetic.
type Real interface {
	constraints.Integer | constraints.Float
}

// Diff returns a - b in T's own arithmetic (integers wrap, floats round).
func Diff[T Real](a, b T) T { return a - b }

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign[T Real](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Float64 returns a native float operand widened to float64.
func Float64(v any) (float64, bool) {
	switch t := v.(type) {
	case float32:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

// Decimal converts any numeric kind into a decimal.Decimal.
func Decimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case int8:
		return decimal.NewFromInt(int64(t)), nil
	case int16:
		return decimal.NewFromInt(int64(t)), nil
	case int32:
		return decimal.NewFromInt32(t), nil
	case int64:
		return decimal.NewFromInt(t), nil
	case uint:
		return fromUint(uint64(t)), nil
	case uint8:
		return fromUint(uint64(t)), nil
	case uint16:
		return fromUint(uint64(t)), nil
	case uint32:
		return fromUint(uint64(t)), nil
	case uint64:
		return fromUint(t), nil
	case float32:
		if KindOf(t) == KindFloat {
			return decimal.NewFromFloat32(t), nil
		}
	case float64:
		if KindOf(t) == KindFloat {
			return decimal.NewFromFloat(t), nil
		}
	case string:
		if IsNumericString(t) {
			d, err := decimal.NewFromString(t)
			if err != nil {
				return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrNotNumeric, t, err)
			}
			return d, nil
		}
	case *big.Int:
		if t != nil {
			return decimal.NewFromBigInt(t, 0), nil
		}
	case decimal.Decimal:
		return t, nil
	}
	return decimal.Zero, fmt.Errorf("%w: %T(%v)", ErrNotNumeric, v, v)
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

// Sub returns a - b, truncated to scale[0] digits after the decimal point
// when a non-negative scale is given.
func Sub(a, b any, scale ...int) (decimal.Decimal, error) {
	da, db, err := operands(a, b)
	if err != nil {
		return decimal.Zero, err
	}
	return truncate(da.Sub(db), scale), nil
}

// Add returns a + b, truncated like [Sub].
func Add(a, b any, scale ...int) (decimal.Decimal, error) {
	da, db, err := operands(a, b)
	if err != nil {
		return decimal.Zero, err
	}
	return truncate(da.Add(db), scale), nil
}

// Mul returns a * b, truncated like [Sub].
func Mul(a, b any, scale ...int) (decimal.Decimal, error) {
	da, db, err := operands(a, b)
	if err != nil {
		return decimal.Zero, err
	}
	return truncate(da.Mul(db), scale), nil
}

// Div returns a / b. Without a scale the quotient carries
// decimal.DivisionPrecision digits. Fails with [ErrDivisionByZero] when b is
// zero.
func Div(a, b any, scale ...int) (decimal.Decimal, error) {
	da, db, err := operands(a, b)
	if err != nil {
		return decimal.Zero, err
	}
	if db.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	if s, ok := scaleOf(scale); ok {
		// one guard digit, then truncate: DivRound alone would round up
		return da.DivRound(db, s+1).Truncate(s), nil
	}
	return da.Div(db), nil
}

// Cmp returns -1, 0 or 1 comparing a and b exactly.
func Cmp(a, b any) (int, error) {
	da, db, err := operands(a, b)
	if err != nil {
		return 0, err
	}
	return da.Cmp(db), nil
}

func operands(a, b any) (decimal.Decimal, decimal.Decimal, error) {
	da, err := Decimal(a)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	db, err := Decimal(b)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return da, db, nil
}

func scaleOf(scale []int) (int32, bool) {
	if len(scale) == 0 || scale[0] < 0 {
		return 0, false
	}
	return int32(scale[0]), true
}

func truncate(d decimal.Decimal, scale []int) decimal.Decimal {
	if s, ok := scaleOf(scale); ok {
		return d.Truncate(s)
	}
	return d
}

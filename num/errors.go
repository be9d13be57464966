package num

import "errors"

// Sentinel errors returned by numeric operations.
var (
	// ErrNotNumeric is returned when an operand cannot be read as a number:
	// it is not an integer, a finite float, a numeric string, a *big.Int or a
	// decimal.Decimal.
	ErrNotNumeric = errors.New("num: value is not numeric")

	// ErrDivisionByZero is returned by [Div] when the divisor is zero.
	ErrDivisionByZero = errors.New("num: division by zero")
)

package num

import (
	"math"
	"math/big"
	"regexp"

	"github.com/shopspring/decimal"
)

// Kind classifies a value by the numeric representation it carries.
type Kind int

const (
	// KindInvalid is any value that is not one of the kinds below, including
	// non-finite floats and non-numeric strings.
	KindInvalid Kind = iota
	// KindBool is a bool.
	KindBool
	// KindInt is any native signed or unsigned integer type.
	KindInt
	// KindFloat is a finite float32 or float64.
	KindFloat
	// KindIntString is a string of decimal digits with an optional sign.
	KindIntString
	// KindFloatString is a numeric string containing a '.', in plain
	// positional notation: exponents are not accepted.
	KindFloatString
	// KindBigInt is a non-nil *big.Int.
	KindBigInt
	// KindDecimal is a decimal.Decimal.
	KindDecimal
)

var kindNames = [...]string{
	KindInvalid:     "invalid",
	KindBool:        "bool",
	KindInt:         "int",
	KindFloat:       "float",
	KindIntString:   "int-string",
	KindFloatString: "float-string",
	KindBigInt:      "big-int",
	KindDecimal:     "decimal",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

var (
	intString   = regexp.MustCompile(`^[+-]?[0-9]+$`)
	floatString = regexp.MustCompile(`^[+-]?([0-9]+\.[0-9]*|\.[0-9]+)$`)
)

// KindOf returns the [Kind] of v.
func KindOf(v any) Kind {
	switch t := v.(type) {
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32:
		return floatKind(float64(t))
	case float64:
		return floatKind(t)
	case string:
		switch {
		case intString.MatchString(t):
			return KindIntString
		case floatString.MatchString(t):
			return KindFloatString
		}
	case *big.Int:
		if t != nil {
			return KindBigInt
		}
	case decimal.Decimal:
		return KindDecimal
	}
	return KindInvalid
}

func floatKind(f float64) Kind {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return KindInvalid
	}
	return KindFloat
}

// IsBool reports whether v is a bool.
func IsBool(v any) bool { return KindOf(v) == KindBool }

// IsInt reports whether v is a native integer.
func IsInt(v any) bool { return KindOf(v) == KindInt }

// IsFloat reports whether v is a finite native float.
func IsFloat(v any) bool { return KindOf(v) == KindFloat }

// IsIntString reports whether v is a string holding an integer.
func IsIntString(v any) bool { return KindOf(v) == KindIntString }

// IsFloatString reports whether v is a numeric string containing a '.'.
func IsFloatString(v any) bool { return KindOf(v) == KindFloatString }

// IsNumericString reports whether v is an integer or float string.
func IsNumericString(v any) bool {
	k := KindOf(v)
	return k == KindIntString || k == KindFloatString
}

// IsBigInt reports whether v represents an integer exactly: a native
// integer, an integer string or a *big.Int.
func IsBigInt(v any) bool {
	switch KindOf(v) {
	case KindInt, KindIntString, KindBigInt:
		return true
	}
	return false
}

// IsBigFloat reports whether v is a float, a float string or a
// decimal.Decimal.
func IsBigFloat(v any) bool {
	switch KindOf(v) {
	case KindFloat, KindFloatString, KindDecimal:
		return true
	}
	return false
}

// IsNumeric reports whether v is any numeric kind. Bools are not numeric.
func IsNumeric(v any) bool {
	k := KindOf(v)
	return k != KindInvalid && k != KindBool
}

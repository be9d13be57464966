// Package num provides the numeric building blocks used by the comparator
// package: kind detection, type predicates and exact decimal arithmetic.
//
// # Kinds
//
// PHP-style code passes numbers around as ints, floats or numeric strings.
// [KindOf] classifies such a value once, so callers can switch on a closed set
// of kinds instead of repeating type assertions:
//
//	num.KindOf(42)       // KindInt
//	num.KindOf(8.75)     // KindFloat
//	num.KindOf("42")     // KindIntString
//	num.KindOf("8.75")   // KindFloatString
//	num.KindOf("8e3")    // KindInvalid: float strings must contain a '.'
//	num.KindOf("8.0e3")  // KindInvalid: no exponent notation
//
// # Arbitrary precision
//
// [Sub], [Add], [Mul], [Div] and [Cmp] accept any numeric kind and compute
// with github.com/shopspring/decimal. The optional scale truncates the
// result to that many digits after the decimal point, like PHP's bcmath:
//
//	d, _ := num.Sub("8.75", "5.5", 2) // 3.25
//	d, _ := num.Div(1, 3, 4)          // 0.3333
package num

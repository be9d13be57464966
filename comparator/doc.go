// Package comparator provides a pluggable two-argument ordering abstraction
// and a catalog of typed comparators built on it.
//
// # Architecture
//
// A [Comparator] holds a comparison callback ([Func]) and an options map
// (an [arr.PathMap]) that the callback reads on every call. The callback is
// the strategy; the options tune it at runtime without replacing it.
//
// The callback can be set once. [New] returns an open comparator that
// accepts a single [Comparator.SetCallback]; the typed constructors return
// comparators whose callback is fixed at construction and reject every
// SetCallback with [ErrCallbackLocked]:
//
//   - [NewBool]     false < true
//   - [NewInt]      native integers, exact difference
//   - [NewFloat]    finite native floats, float difference
//   - [NewStr]      strings, optionally case-folded
//   - [NewBigInt]   integers of any size, including integer strings
//   - [NewBigFloat] floats and float strings at a decimal scale
//   - [NewBigNum]   any numbers, dispatching on their kinds
//   - [NewOrdered]  any single constraints.Ordered type
//
// # Ordering values
//
// Comparisons return a decimal.Decimal (github.com/shopspring/decimal):
// negative when the first operand sorts first, zero when equal, positive
// otherwise. Typed comparators return the actual difference, so
//
//	comparator.NewBigFloat(2).Compare("8.75", "5.5") // 3.25
//
// Use [Comparator.Sign] or [Sort] when only the direction matters.
//
// # Errors
//
// Operands of the wrong type fail with an [*ArgumentTypeError], which
// matches [ErrInvalidArgumentType]. Errors raised by a callback are returned
// by [Comparator.Compare] unchanged.
//
// # Registry
//
// [Registry] is a named set of comparators with a default entry, safe for
// concurrent use. [NewDefaultRegistry] registers the whole catalog and
// [Registry.CompareDetect] picks an entry from the operand kinds.
package comparator

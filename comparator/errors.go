package comparator

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by comparator operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := c.Compare(1, "one")
//	if errors.Is(err, comparator.ErrInvalidArgumentType) {
//	    // operands of the wrong type
//	}
var (
	// ErrNotReady is returned by [Comparator.Compare] when no callback has
	// been set.
	ErrNotReady = errors.New("comparator: no comparison callback has been set")

	// ErrCallbackLocked is returned by [Comparator.SetCallback] when a
	// callback is already set, and always for the typed comparators, whose
	// callback is fixed at construction.
	ErrCallbackLocked = errors.New("comparator: cannot redeclare this comparator callback")

	// ErrNilCallback is returned by [Comparator.SetCallback] for a nil
	// callback.
	ErrNilCallback = errors.New("comparator: callback must not be nil")

	// ErrInvalidArgumentType is matched by every [*ArgumentTypeError].
	ErrInvalidArgumentType = errors.New("comparator: invalid argument type")

	// ErrComparatorNotFound is returned by [Registry] lookups for a name that
	// has not been registered, and by [Registry.CompareDetect] when no
	// comparator fits the operands.
	ErrComparatorNotFound = errors.New("comparator: comparator not found")

	// ErrEmptyName is returned by [Registry.Register] for an empty name.
	ErrEmptyName = errors.New("comparator: name must not be empty")

	// ErrNilComparator is returned by [Registry.Register] for a nil
	// comparator.
	ErrNilComparator = errors.New("comparator: comparator must not be nil")
)

// ArgumentTypeError reports that an operand of a typed comparator is not of
// the type the comparator orders.
type ArgumentTypeError struct {
	// Expected names the accepted type, e.g. "int" or "string".
	Expected string
}

func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf("comparator: the $item1 and $item2 parameters must be of type %s", e.Expected)
}

// Unwrap makes every ArgumentTypeError match [ErrInvalidArgumentType].
func (e *ArgumentTypeError) Unwrap() error { return ErrInvalidArgumentType }

func argumentType(expected string) error {
	return &ArgumentTypeError{Expected: expected}
}

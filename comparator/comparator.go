package comparator

import (
	"github.com/shopspring/decimal"

	"github.com/hasbyte1/go-primitives/arr"
)

// Option keys read by the typed comparators.
const (
	// OptionCaseInsensitive (bool) makes [NewStr] comparators fold case.
	OptionCaseInsensitive = "caseInsensitive"
	// OptionScale (any integer kind or integer string, nil for exact
	// results) is the number of digits after the decimal point kept by the
	// big-number comparators.
	OptionScale = "scale"
)

// Func is a comparison callback. It receives the comparator's options and the
// two operands, and returns a signed ordering value: negative when a sorts
// before b, zero when they are equal, positive otherwise. The magnitude is
// the callback's business; the typed comparators return the difference.
type Func func(opts *arr.PathMap, a, b any) (decimal.Decimal, error)

// Comparator holds a comparison callback together with an options map the
// callback may consult on every call.
//
// A Comparator starts without a callback and becomes ready once one is set;
// it never goes back. The callback can be set at most once:
//
//	c := comparator.New()
//	_ = c.SetCallback(byLength)       // ok
//	err := c.SetCallback(byLength)    // ErrCallbackLocked
//
// The typed comparators ([NewBool], [NewInt], [NewStr] ...) fix their callback
// at construction, so SetCallback always fails on them.
//
// A Comparator is not safe for concurrent use while its options are being
// changed.
type Comparator struct {
	callback Func
	options  *arr.PathMap
	locked   bool
}

// New creates a Comparator. When fn is given and non-nil, fn[0] becomes the
// callback and the comparator is ready immediately.
func New(fn ...Func) *Comparator {
	c := &Comparator{options: arr.NewPathMap()}
	if len(fn) > 0 && fn[0] != nil {
		c.callback = fn[0]
	}
	return c
}

// newLocked creates a ready comparator whose callback can never be replaced.
func newLocked(fn Func) *Comparator {
	return &Comparator{
		callback: fn,
		options:  arr.NewPathMap(),
		locked:   true,
	}
}

// SetCallback sets the comparison callback. It succeeds only on a comparator
// that has no callback yet and was not created by one of the typed
// constructors.
func (c *Comparator) SetCallback(fn Func) error {
	if c.locked || c.callback != nil {
		return ErrCallbackLocked
	}
	if fn == nil {
		return ErrNilCallback
	}
	c.callback = fn
	return nil
}

// Callback returns the comparison callback, or nil when none is set.
func (c *Comparator) Callback() Func { return c.callback }

// IsReady reports whether a callback is set.
func (c *Comparator) IsReady() bool { return c.callback != nil }

// IsLocked reports whether the callback was fixed at construction.
func (c *Comparator) IsLocked() bool { return c.locked }

// Compare runs the callback on a and b. The callback's result and error are
// returned unchanged.
func (c *Comparator) Compare(a, b any) (decimal.Decimal, error) {
	if !c.IsReady() {
		return decimal.Zero, ErrNotReady
	}
	return c.callback(c.options, a, b)
}

// Options returns the options map. Changes to it are seen by the callback.
func (c *Comparator) Options() *arr.PathMap { return c.options }

// SetOption writes an option at a dot-notation path.
func (c *Comparator) SetOption(path string, value any) *Comparator {
	c.options.Set(path, value)
	return c
}

// Option reads an option at a dot-notation path, returning def[0] (or nil)
// when it is not set.
func (c *Comparator) Option(path string, def ...any) any {
	return c.options.Get(path, def...)
}

// DeleteOption removes an option and reports whether it was set.
func (c *Comparator) DeleteOption(path string) bool {
	return c.options.Delete(path)
}

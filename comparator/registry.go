package comparator

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/hasbyte1/go-primitives/num"
	"github.com/hasbyte1/go-primitives/str"
)

// Names under which [NewDefaultRegistry] registers the typed comparators.
const (
	NameBool     = "bool"
	NameInt      = "int"
	NameFloat    = "float"
	NameStr      = "str"
	NameBigInt   = "bigint"
	NameBigFloat = "bigfloat"
	NameBigNum   = "bignum"
)

// Registry is a thread-safe set of named comparators with a default entry.
//
// Register comparators under names, nominate a default, and compare through
// the Registry:
//
//	r := comparator.NewDefaultRegistry()
//	r.Compare(3, "2.5")                    // bignum: 0.5
//	r.CompareWith(comparator.NameStr, "a", "B")
//	r.CompareDetect("a", "B")              // picks "str" from the operands
//
// # Portability note
//
// In Python this maps to a dict[str, Comparator] plus a default key held by a
// registry class; in Node.js to a Map<string, Comparator> wrapped the same
// way. [Detect] becomes a plain function over the operand types.
//
// # Thread safety
//
// Registry methods are safe for concurrent use. The registered comparators
// are shared: do not change their options while other goroutines compare
// through them.
type Registry struct {
	mu          sync.RWMutex
	comparators map[string]*Comparator
	def         string
	logger      *slog.Logger
}

// NewRegistry creates an empty Registry whose default is defaultName.
// The default must be registered before [Registry.Compare] is used.
func NewRegistry(defaultName string) *Registry {
	return &Registry{
		comparators: make(map[string]*Comparator),
		def:         defaultName,
		logger:      slog.Default().With("component", "comparator-registry"),
	}
}

// NewDefaultRegistry creates a Registry holding every typed comparator under
// the Name* constants, with [NameBigNum] as the default. The big-number
// comparators keep every digit and the string comparator is case-sensitive.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NameBigNum)
	_ = r.Register(NameBool, NewBool())
	_ = r.Register(NameInt, NewInt())
	_ = r.Register(NameFloat, NewFloat())
	_ = r.Register(NameStr, NewStr())
	_ = r.Register(NameBigInt, NewBigInt())
	_ = r.Register(NameBigFloat, NewBigFloat())
	_ = r.Register(NameBigNum, NewBigNum())
	return r
}

// SetLogger replaces the logger used for registration events. A nil logger
// restores the default.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if logger == nil {
		logger = slog.Default().With("component", "comparator-registry")
	}
	r.logger = logger
}

// Register adds or replaces a named comparator.
func (r *Registry) Register(name string, c *Comparator) error {
	if name == "" {
		return ErrEmptyName
	}
	if c == nil {
		return ErrNilComparator
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, replaced := r.comparators[name]
	r.comparators[name] = c
	r.logger.Debug("comparator registered",
		slog.String("name", name),
		slog.Bool("replaced", replaced),
		slog.Bool("locked", c.IsLocked()),
	)
	return nil
}

// Comparator returns the comparator registered under name, or
// [ErrComparatorNotFound].
func (r *Registry) Comparator(name string) (*Comparator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.comparators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrComparatorNotFound, name)
	}
	return c, nil
}

// SetDefault changes the comparator used by [Registry.Compare]. The named
// comparator must already be registered.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comparators[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call Register first",
			ErrComparatorNotFound, name)
	}
	r.logger.Debug("default comparator changed",
		slog.String("from", r.def),
		slog.String("to", name),
	)
	r.def = name
	return nil
}

// Default returns the name of the default comparator.
func (r *Registry) Default() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.def
}

// Has reports whether a comparator is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.comparators[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.comparators))
	for name := range r.comparators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compare compares a and b with the default comparator.
func (r *Registry) Compare(a, b any) (decimal.Decimal, error) {
	return r.CompareWith(r.Default(), a, b)
}

// CompareWith compares a and b with the comparator registered under name.
func (r *Registry) CompareWith(name string, a, b any) (decimal.Decimal, error) {
	c, err := r.Comparator(name)
	if err != nil {
		return decimal.Zero, err
	}
	return c.Compare(a, b)
}

// CompareDetect compares a and b with the comparator [Detect] picks for them.
// It fails with [ErrComparatorNotFound] when no name can be detected or the
// detected name is not registered.
func (r *Registry) CompareDetect(a, b any) (decimal.Decimal, error) {
	name, ok := Detect(a, b)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no comparator orders %T and %T",
			ErrComparatorNotFound, a, b)
	}
	return r.CompareWith(name, a, b)
}

// Detect returns the Name* constant of the typed comparator suited to a and
// b. It is a heuristic on the operand kinds:
//
//   - two bools: [NameBool]
//   - two native integers: [NameInt]
//   - two native floats: [NameFloat]
//   - two strings that are not both numeric: [NameStr]
//   - any other pair of numbers: [NameBigNum]
//
// The second result is false when the operands fit none of these.
func Detect(a, b any) (string, bool) {
	ka, kb := num.KindOf(a), num.KindOf(b)
	switch {
	case ka == num.KindBool && kb == num.KindBool:
		return NameBool, true
	case ka == num.KindInt && kb == num.KindInt:
		return NameInt, true
	case ka == num.KindFloat && kb == num.KindFloat:
		return NameFloat, true
	case str.Is(a) && str.Is(b) && !(num.IsNumericString(a) && num.IsNumericString(b)):
		return NameStr, true
	case num.IsNumeric(a) && num.IsNumeric(b):
		return NameBigNum, true
	default:
		return "", false
	}
}

package comparator

import (
	"github.com/shopspring/decimal"

	"github.com/hasbyte1/go-primitives/arr"
	"github.com/hasbyte1/go-primitives/str"
)

// NewStr returns a comparator for two strings, returning -1, 0 or 1.
//
// Strings are compared byte-wise unless the [OptionCaseInsensitive] option is
// true, in which case both are case-folded first. caseInsensitive[0] sets the
// initial value of that option (false when omitted); it can be changed later:
//
//	c := comparator.NewStr()
//	c.Compare("String", "string")             // -1
//	c.SetOption(comparator.OptionCaseInsensitive, true)
//	c.Compare("STRING", "string")             // 0
func NewStr(caseInsensitive ...bool) *Comparator {
	c := newLocked(compareStr)
	c.SetOption(OptionCaseInsensitive, len(caseInsensitive) > 0 && caseInsensitive[0])
	return c
}

func compareStr(opts *arr.PathMap, a, b any) (decimal.Decimal, error) {
	if !str.Is(a) || !str.Is(b) {
		return decimal.Zero, argumentType("string")
	}
	sa, sb := a.(string), b.(string)
	if fold, _ := opts.Get(OptionCaseInsensitive).(bool); fold {
		return decimal.NewFromInt(int64(str.CompareFold(sa, sb))), nil
	}
	return decimal.NewFromInt(int64(str.Compare(sa, sb))), nil
}

package arr

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Separator joins the segments of a path.
const Separator = "."

// IsPlainKey reports whether key can be stored without ambiguity, i.e. it
// does not itself contain [Separator].
//
// PathMap does not enforce this. A dotted key that reaches the backing store
// without going through a path method (for example via [NewPathMap]) is only
// reachable through the direct top-level lookup performed by Get and Has.
func IsPlainKey(key string) bool {
	return !strings.Contains(key, Separator)
}

// splitPath returns the segments of path. It always returns at least one
// segment; the empty path addresses the empty key.
func splitPath(path string) []string {
	return strings.Split(path, Separator)
}

// keyString normalises a single dynamic key. Integer keys of any width are
// rendered in base 10 so that 3 and "3" address the same entry.
func keyString(key any) (string, error) {
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), nil
	default:
		return "", fmt.Errorf("%w: got %T", ErrInvalidKeyType, key)
	}
}

// keyStrings normalises a key that may be a single key or a slice of keys.
// The bool result reports whether key was a slice.
func keyStrings(key any) ([]string, bool, error) {
	v := reflect.ValueOf(key)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		k, err := keyString(key)
		if err != nil {
			return nil, false, err
		}
		return []string{k}, false, nil
	}
	out := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		k, err := keyString(v.Index(i).Interface())
		if err != nil {
			return nil, true, err
		}
		out = append(out, k)
	}
	return out, true, nil
}

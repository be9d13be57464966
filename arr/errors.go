package arr

import "errors"

// ErrInvalidKeyType is returned when a key argument is neither a string, an
// integer, nor a slice of those.
//
//	_, err := m.CountKey(true)
//	if errors.Is(err, arr.ErrInvalidKeyType) {
//	    // bool is not an addressable key
//	}
var ErrInvalidKeyType = errors.New("arr: key must be a string, an integer or a slice of those")

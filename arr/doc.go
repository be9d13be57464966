// Package arr provides PathMap, a nested key/value structure addressed with
// dot notation, inspired by Laravel's Arr facade and PHP's dot-notated arrays.
//
// # Paths
//
// A path is a list of keys joined by [Separator]. Each segment is one key at
// one nesting level; a path without a dot addresses a top-level key:
//
//	m := arr.NewPathMap(map[string]any{
//	    "user": map[string]any{
//	        "name":    "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	})
//	m.Get("user.address.city")         // → "London"
//	m.Set("user.address.postcode", "EC1")
//	m.Has("user.name")                 // → true
//	m.Delete("user.address")           // → true
//	flat := m.Dot()                    // → {"user.name": "Alice"}
//
// Every operation has a multi-path variant (GetMany, HasMany, DeleteMany,
// CountMany, SetMany) that resolves each path independently.
//
// # Missing values
//
// Lookups never fail on a missing path. Get returns the supplied default,
// Has and Delete return false, and Count returns -1. Errors are reserved for
// dynamically typed keys that are neither strings nor integers
// ([ErrInvalidKeyType]).
//
// # Ordering
//
// Entries keep their insertion order at every level; [PathMap.All] and
// [PathMap.MarshalJSON] observe it. Maps handed to [NewPathMap] have no order
// of their own and are inserted with sorted keys.
//
// # Keys containing the separator
//
// Set always splits its path, so it can never create a key containing a dot.
// A dotted key can still arrive through [NewPathMap]; Get, Has and Delete try
// the literal top-level key first, so such a key stays reachable. Use
// [IsPlainKey] to reject these keys up front.
package arr

package arr

import (
	"iter"
	"reflect"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// node is one level of a PathMap. Nested levels are stored as *node values.
type node = orderedmap.OrderedMap[string, any]

func newNode() *node { return orderedmap.New[string, any]() }

// PathMap is a nested, insertion-ordered key/value structure addressed by
// dot-separated paths.
//
//	m := arr.NewPathMap()
//	m.Set("db.host", "localhost")
//	m.Get("db.host")          // "localhost"
//	m.Has("db")               // true
//	m.Count("db")             // 1
//	m.Count("db.missing")     // -1
//
// Nested levels are created on write and never pruned: deleting the last
// child of a level leaves an empty level behind.
//
// # Portability note
//
// In Python this maps to a class wrapping nested dicts (which keep insertion
// order); in Node.js to a class wrapping nested Map objects. Plain JS objects
// reorder integer-like keys, so they are not a drop-in backing store.
//
// A PathMap is not safe for concurrent use; guard it externally when it is
// shared between goroutines.
type PathMap struct {
	root *node
}

// Entry is a single path/value pair for [PathMap.SetPairs].
type Entry struct {
	Path  string
	Value any
}

// NewPathMap creates a PathMap from zero or more initial nested maps.
// Nested map[string]any values become ordered levels. Go maps carry no
// order, so the keys of every initial map are inserted in sorted order.
// Keys are stored as given; no path splitting happens here.
func NewPathMap(initial ...map[string]any) *PathMap {
	p := &PathMap{root: newNode()}
	for _, m := range initial {
		for _, k := range sortedKeys(m) {
			p.root.Set(k, toStored(m[k]))
		}
	}
	return p
}

// ─────────────────────────────────────────────────────────────────────────────
// Reading
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored at path, or def[0] (nil when omitted) if any
// segment of the path is missing or crosses a non-map value.
// Nested levels are returned as map[string]any copies.
func (p *PathMap) Get(path string, def ...any) any {
	if v, ok := p.lookup(path); ok {
		return toPlain(v)
	}
	return fallback(def)
}

// GetMany resolves every path independently and returns the results keyed by
// path. The same default applies to every missing path.
func (p *PathMap) GetMany(paths []string, def ...any) map[string]any {
	out := make(map[string]any, len(paths))
	for _, path := range paths {
		out[path] = p.Get(path, def...)
	}
	return out
}

// Has reports whether path resolves to a stored value. A top-level key that
// literally equals path is found before the path is split.
func (p *PathMap) Has(path string) bool {
	_, ok := p.lookup(path)
	return ok
}

// HasMany reports, per path, whether it resolves to a stored value.
func (p *PathMap) HasMany(paths ...string) map[string]bool {
	out := make(map[string]bool, len(paths))
	for _, path := range paths {
		out[path] = p.Has(path)
	}
	return out
}

// HasAll reports whether every path resolves to a stored value.
func (p *PathMap) HasAll(paths ...string) bool {
	for _, path := range paths {
		if !p.Has(path) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one path resolves to a stored value.
func (p *PathMap) HasAny(paths ...string) bool {
	for _, path := range paths {
		if p.Has(path) {
			return true
		}
	}
	return false
}

// Count returns the number of elements stored at path.
//
//   - -1 when the path does not resolve
//   - the length of a nested level, slice, array or map
//   - 0 for a stored nil
//   - 1 for any other scalar
func (p *PathMap) Count(path string) int {
	v, ok := p.lookup(path)
	if !ok {
		return -1
	}
	return countOf(v)
}

// CountMany returns the sum of [PathMap.Count] over paths. Missing paths
// contribute their -1 sentinel to the sum.
func (p *PathMap) CountMany(paths ...string) int {
	total := 0
	for _, path := range paths {
		total += p.Count(path)
	}
	return total
}

// CountKey is the dynamically typed form of Count and CountMany. key may be a
// string, any integer kind, or a slice of those; anything else fails with
// [ErrInvalidKeyType].
func (p *PathMap) CountKey(key any) (int, error) {
	paths, _, err := keyStrings(key)
	if err != nil {
		return 0, err
	}
	return p.CountMany(paths...), nil
}

// Len returns the number of top-level keys.
func (p *PathMap) Len() int { return p.root.Len() }

// Keys returns the top-level keys in insertion order.
func (p *PathMap) Keys() []string {
	keys := make([]string, 0, p.root.Len())
	for pair := p.root.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// All returns an iterator over the top-level entries in insertion order.
// The iterator can be ranged over any number of times; each pass reflects the
// map's state when it starts.
//
//	for key, value := range m.All() { ... }
func (p *PathMap) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for pair := p.root.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, toPlain(pair.Value)) {
				return
			}
		}
	}
}

// ToMap returns a deep copy of the backing structure as plain nested maps.
func (p *PathMap) ToMap() map[string]any {
	return toPlain(p.root).(map[string]any)
}

// MarshalJSON encodes the map as a JSON object, preserving insertion order at
// every level.
func (p *PathMap) MarshalJSON() ([]byte, error) {
	return p.root.MarshalJSON()
}

// ─────────────────────────────────────────────────────────────────────────────
// Writing
// ─────────────────────────────────────────────────────────────────────────────

// Set writes value at path, creating intermediate levels as needed. A
// non-map value sitting on an intermediate segment is replaced by an empty
// level.
func (p *PathMap) Set(path string, value any) {
	segments := splitPath(path)
	parent := p.ensurePath(segments[:len(segments)-1])
	parent.Set(segments[len(segments)-1], toStored(value))
}

// SetMany writes every path/value pair of values. Pairs are applied in sorted
// path order so that overlapping paths resolve deterministically.
func (p *PathMap) SetMany(values map[string]any) {
	for _, path := range sortedKeys(values) {
		p.Set(path, values[path])
	}
}

// SetPairs writes the entries in argument order.
func (p *PathMap) SetPairs(entries ...Entry) {
	for _, e := range entries {
		p.Set(e.Path, e.Value)
	}
}

// Delete removes the value at path and reports whether it existed.
// Intermediate levels are left in place.
func (p *PathMap) Delete(path string) bool {
	if _, ok := p.root.Get(path); ok {
		p.root.Delete(path)
		return true
	}
	segments := splitPath(path)
	parent, ok := p.walk(segments[:len(segments)-1])
	if !ok {
		return false
	}
	_, present := parent.Delete(segments[len(segments)-1])
	return present
}

// DeleteMany deletes every path independently and reports, per path,
// whether something was removed.
func (p *PathMap) DeleteMany(paths ...string) map[string]bool {
	out := make(map[string]bool, len(paths))
	for _, path := range paths {
		out[path] = p.Delete(path)
	}
	return out
}

// Pull returns the value at path and removes it. def[0] (or nil) is returned
// when the path does not resolve.
func (p *PathMap) Pull(path string, def ...any) any {
	v, ok := p.lookup(path)
	if !ok {
		return fallback(def)
	}
	p.Delete(path)
	return toPlain(v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Index access
// ─────────────────────────────────────────────────────────────────────────────

// OffsetGet is Get for a dynamically typed key (string or integer).
func (p *PathMap) OffsetGet(key any) (any, error) {
	k, err := keyString(key)
	if err != nil {
		return nil, err
	}
	return p.Get(k), nil
}

// OffsetSet is Set for a dynamically typed key (string or integer).
func (p *PathMap) OffsetSet(key any, value any) error {
	k, err := keyString(key)
	if err != nil {
		return err
	}
	p.Set(k, value)
	return nil
}

// OffsetExists is Has for a dynamically typed key (string or integer).
func (p *PathMap) OffsetExists(key any) (bool, error) {
	k, err := keyString(key)
	if err != nil {
		return false, err
	}
	return p.Has(k), nil
}

// OffsetUnset is Delete for a dynamically typed key (string or integer).
func (p *PathMap) OffsetUnset(key any) error {
	k, err := keyString(key)
	if err != nil {
		return err
	}
	p.Delete(k)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// lookup resolves path to its stored value.
func (p *PathMap) lookup(path string) (any, bool) {
	if v, ok := p.root.Get(path); ok {
		return v, true
	}
	segments := splitPath(path)
	if len(segments) == 1 {
		return nil, false
	}
	parent, ok := p.walk(segments[:len(segments)-1])
	if !ok {
		return nil, false
	}
	return parent.Get(segments[len(segments)-1])
}

// walk follows segments from the root without creating anything. It fails
// when a segment is missing or holds a non-map value.
func (p *PathMap) walk(segments []string) (*node, bool) {
	current := p.root
	for _, seg := range segments {
		v, ok := current.Get(seg)
		if !ok {
			return nil, false
		}
		nested, ok := v.(*node)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return current, true
}

// ensurePath follows segments from the root, creating or replacing levels so
// that the returned node is the level addressed by segments.
func (p *PathMap) ensurePath(segments []string) *node {
	current := p.root
	for _, seg := range segments {
		v, _ := current.Get(seg)
		nested, ok := v.(*node)
		if !ok {
			nested = newNode()
			current.Set(seg, nested)
		}
		current = nested
	}
	return current
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// toStored converts caller values into their stored form: plain maps and
// PathMaps become (copied) ordered levels.
func toStored(v any) any {
	switch t := v.(type) {
	case map[string]any:
		n := newNode()
		for _, k := range sortedKeys(t) {
			n.Set(k, toStored(t[k]))
		}
		return n
	case *PathMap:
		if t == nil {
			return nil
		}
		return cloneNode(t.root)
	default:
		return v
	}
}

// toPlain converts stored levels back into plain map[string]any copies.
func toPlain(v any) any {
	n, ok := v.(*node)
	if !ok {
		return v
	}
	out := make(map[string]any, n.Len())
	for pair := n.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = toPlain(pair.Value)
	}
	return out
}

func cloneNode(n *node) *node {
	out := newNode()
	for pair := n.Oldest(); pair != nil; pair = pair.Next() {
		if nested, ok := pair.Value.(*node); ok {
			out.Set(pair.Key, cloneNode(nested))
			continue
		}
		out.Set(pair.Key, pair.Value)
	}
	return out
}

func countOf(v any) int {
	if n, ok := v.(*node); ok {
		return n.Len()
	}
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	default:
		return 1
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func fallback(def []any) any {
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

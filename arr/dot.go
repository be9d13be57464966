package arr

// ─────────────────────────────────────────────────────────────────────────────
// Flattening and merging
//
// These mirror Laravel's Arr::dot, Arr::undot and a recursive array merge:
//
//	m := arr.NewPathMap(map[string]any{
//	    "user": map[string]any{
//	        "name":    "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	})
//
//	m.Dot()  → {"user.name": "Alice", "user.address.city": "London"}
//	arr.Undot(map[string]any{"a.b": 1}).Get("a.b") → 1
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens the map into a single level keyed by full paths. Empty nested
// levels are kept as empty maps so that Undot(m.Dot()) restores them.
//
//	NewPathMap(map[string]any{"a": map[string]any{"b": 1}}).Dot()
//	// → map[string]any{"a.b": 1}
func (p *PathMap) Dot() map[string]any {
	out := make(map[string]any)
	dotFlatten("", p.root, out)
	return out
}

func dotFlatten(prefix string, n *node, out map[string]any) {
	for pair := n.Oldest(); pair != nil; pair = pair.Next() {
		key := pair.Key
		if prefix != "" {
			key = prefix + Separator + pair.Key
		}
		nested, ok := pair.Value.(*node)
		switch {
		case ok && nested.Len() > 0:
			dotFlatten(key, nested, out)
		case ok:
			out[key] = map[string]any{}
		default:
			out[key] = pair.Value
		}
	}
}

// Undot expands a flat dot-notation map into a PathMap. Paths are applied in
// sorted order.
//
//	Undot(map[string]any{"a.b": 1, "a.c": 2}).ToMap()
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
func Undot(flat map[string]any) *PathMap {
	p := NewPathMap()
	p.SetMany(flat)
	return p
}

// Merge merges src into p. Values in src overwrite values in p for matching
// keys, except that two nested maps are merged recursively.
func (p *PathMap) Merge(src map[string]any) *PathMap {
	mergeInto(p.root, src)
	return p
}

func mergeInto(dst *node, src map[string]any) {
	for _, k := range sortedKeys(src) {
		srcVal := src[k]
		if srcMap, ok := srcVal.(map[string]any); ok {
			if existing, _ := dst.Get(k); existing != nil {
				if dstNode, ok := existing.(*node); ok {
					mergeInto(dstNode, srcMap)
					continue
				}
			}
		}
		dst.Set(k, toStored(srcVal))
	}
}

package arr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-primitives/arr"
)

func makeNested() *arr.PathMap {
	return arr.NewPathMap(map[string]any{
		"user": map[string]any{
			"name": "Alice",
			"address": map[string]any{
				"city":    "London",
				"country": "UK",
			},
		},
		"score": 42,
	})
}

func TestDot(t *testing.T) {
	flat := makeNested().Dot()
	assert.Equal(t, map[string]any{
		"user.name":            "Alice",
		"user.address.city":    "London",
		"user.address.country": "UK",
		"score":                42,
	}, flat)
}

func TestDotKeepsEmptyLevels(t *testing.T) {
	m := arr.NewPathMap()
	m.Set("a.b", 1)
	m.Delete("a.b")
	assert.Equal(t, map[string]any{"a": map[string]any{}}, m.Dot())
}

func TestUndot(t *testing.T) {
	m := arr.Undot(map[string]any{
		"a.b":   1,
		"a.c":   2,
		"d":     3,
		"e.f.g": 4,
	})
	assert.Equal(t, map[string]any{
		"a": map[string]any{"b": 1, "c": 2},
		"d": 3,
		"e": map[string]any{"f": map[string]any{"g": 4}},
	}, m.ToMap())
}

func TestDotUndotRoundTrip(t *testing.T) {
	m := makeNested()
	assert.Equal(t, m.ToMap(), arr.Undot(m.Dot()).ToMap())
}

func TestMerge(t *testing.T) {
	m := arr.NewPathMap(map[string]any{
		"a":      1,
		"nested": map[string]any{"x": 10},
	})
	m.Merge(map[string]any{
		"b":      2,
		"nested": map[string]any{"y": 20},
	})
	require.Equal(t, 2, m.Get("b"))
	assert.Equal(t, 10, m.Get("nested.x"))
	assert.Equal(t, 20, m.Get("nested.y"))
}

func TestMergeOverwrite(t *testing.T) {
	m := arr.NewPathMap(map[string]any{"a": 1, "b": map[string]any{"c": 1}})
	m.Merge(map[string]any{"a": 99, "b": "scalar"})
	assert.Equal(t, 99, m.Get("a"), "scalars are overwritten")
	assert.Equal(t, "scalar", m.Get("b"), "a level can be replaced by a scalar")
}

func TestMergeScalarBecomesLevel(t *testing.T) {
	m := arr.NewPathMap(map[string]any{"a": 1})
	m.Merge(map[string]any{"a": map[string]any{"b": 2}})
	assert.Equal(t, 2, m.Get("a.b"))
}

package comparator_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-primitives/comparator"
)

// ──────────────────────────────────────────────────────────────────────────────
// NewDefaultRegistry
// ──────────────────────────────────────────────────────────────────────────────

func TestNewDefaultRegistry(t *testing.T) {
	r := comparator.NewDefaultRegistry()
	require.Equal(t, comparator.NameBigNum, r.Default())
	require.Equal(t, []string{
		comparator.NameBigFloat,
		comparator.NameBigInt,
		comparator.NameBigNum,
		comparator.NameBool,
		comparator.NameFloat,
		comparator.NameInt,
		comparator.NameStr,
	}, r.Names())

	got, err := r.Compare(3, "2.5")
	require.NoError(t, err)
	requireDecimal(t, "0.5", got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register / lookup
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistry_Register(t *testing.T) {
	r := comparator.NewRegistry("len")
	require.ErrorIs(t, r.Register("", comparator.NewInt()), comparator.ErrEmptyName)
	require.ErrorIs(t, r.Register("len", nil), comparator.ErrNilComparator)

	_, err := r.Compare("a", "b")
	require.ErrorIs(t, err, comparator.ErrComparatorNotFound)

	require.NoError(t, r.Register("len", comparator.New(byLength)))
	require.True(t, r.Has("len"))

	got, err := r.Compare("abcd", "ab")
	require.NoError(t, err)
	requireDecimal(t, "2", got)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := comparator.NewRegistry(comparator.NameInt)
	first := comparator.NewInt()
	second := comparator.Reverse(comparator.NewInt())
	require.NoError(t, r.Register(comparator.NameInt, first))
	require.NoError(t, r.Register(comparator.NameInt, second))

	c, err := r.Comparator(comparator.NameInt)
	require.NoError(t, err)
	require.Same(t, second, c)
}

func TestRegistry_ComparatorNotFound(t *testing.T) {
	r := comparator.NewDefaultRegistry()
	_, err := r.Comparator("nope")
	require.ErrorIs(t, err, comparator.ErrComparatorNotFound)
	require.Contains(t, err.Error(), `"nope"`)

	_, err = r.CompareWith("nope", 1, 2)
	require.ErrorIs(t, err, comparator.ErrComparatorNotFound)
}

func TestRegistry_SetDefault(t *testing.T) {
	r := comparator.NewDefaultRegistry()
	require.ErrorIs(t, r.SetDefault("nope"), comparator.ErrComparatorNotFound)
	require.Equal(t, comparator.NameBigNum, r.Default())

	require.NoError(t, r.SetDefault(comparator.NameStr))
	got, err := r.Compare("a", "b")
	require.NoError(t, err)
	requireDecimal(t, "-1", got)

	_, err = r.Compare(1, 2)
	require.ErrorIs(t, err, comparator.ErrInvalidArgumentType)
}

// ──────────────────────────────────────────────────────────────────────────────
// Detect
// ──────────────────────────────────────────────────────────────────────────────

func TestDetect(t *testing.T) {
	cases := []struct {
		a, b any
		want string
		ok   bool
	}{
		{true, false, comparator.NameBool, true},
		{1, int64(2), comparator.NameInt, true},
		{1.5, float32(2), comparator.NameFloat, true},
		{"a", "b", comparator.NameStr, true},
		{"a", "10", comparator.NameStr, true},
		{"10", "9.5", comparator.NameBigNum, true},
		{1, 2.5, comparator.NameBigNum, true},
		{true, 1, "", false},
		{"a", 1, "", false},
		{nil, nil, "", false},
	}
	for _, tc := range cases {
		got, ok := comparator.Detect(tc.a, tc.b)
		require.Equal(t, tc.ok, ok, "Detect(%#v, %#v)", tc.a, tc.b)
		require.Equal(t, tc.want, got, "Detect(%#v, %#v)", tc.a, tc.b)
	}
}

func TestRegistry_CompareDetect(t *testing.T) {
	r := comparator.NewDefaultRegistry()

	got, err := r.CompareDetect("10", "9.5")
	require.NoError(t, err)
	requireDecimal(t, "0.5", got)

	got, err = r.CompareDetect("10", "9")
	require.NoError(t, err)
	requireDecimal(t, "1", got)

	got, err = r.CompareDetect("apple", "10")
	require.NoError(t, err)
	require.Equal(t, 1, got.Sign())

	_, err = r.CompareDetect(true, "x")
	require.ErrorIs(t, err, comparator.ErrComparatorNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logging / concurrency
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistry_LogsRegistrations(t *testing.T) {
	var buf bytes.Buffer
	r := comparator.NewRegistry(comparator.NameInt)
	r.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	require.NoError(t, r.Register(comparator.NameInt, comparator.NewInt()))
	require.NoError(t, r.Register(comparator.NameInt, comparator.NewInt()))
	require.NoError(t, r.SetDefault(comparator.NameInt))

	out := buf.String()
	require.Contains(t, out, "comparator registered")
	require.Contains(t, out, "replaced=true")
	require.Contains(t, out, "default comparator changed")

	r.SetLogger(nil)
	require.NoError(t, r.Register(comparator.NameBool, comparator.NewBool()))
	require.NotContains(t, buf.String(), "name=bool")
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	r := comparator.NewDefaultRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := r.CompareWith(comparator.NameInt, i, 10)
			assert.NoError(t, err)
		}(i)
		go func() {
			defer wg.Done()
			_ = r.Register("extra", comparator.NewFloat())
			_ = r.Names()
		}()
	}
	wg.Wait()
	require.True(t, r.Has("extra"))
}

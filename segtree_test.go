package segtree

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segtree/monoid"
	"github.com/stretchr/testify/require"
)

func sumTree(t *testing.T, values ...int) *Tree[int] {
	t.Helper()
	tree, err := New(Config[int]{Monoid: monoid.Sum[int]{}}, values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tree
}

func intEq(a, b int) bool { return a == b }

func TestNewRequiresMonoid(t *testing.T) {
	_, err := New(Config[int]{}, []int{1, 2})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	_, err = NewLazy(LazyConfig[int, int]{Monoid: monoid.Sum[int]{}}, nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing action, got %v", err)
	}
}

func TestBuildAndFold(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := sumTree(t, 3, 1, 4, 1, 5)
	if tree.Size() != 5 {
		t.Fatalf("size: got %d, want 5", tree.Size())
	}
	if err := tree.CheckValues(intEq); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	type tc struct {
		span Span
		sum  int
	}
	cases := []tc{
		{span: All(), sum: 14},
		{span: Between(1, 3), sum: 5},
		{span: Through(1, 3), sum: 6},
		{span: From(3), sum: 6},
		{span: To(2), sum: 4},
		{span: ToInclusive(2), sum: 8},
		{span: Index(4), sum: 5},
		{span: Between(3, 3), sum: 0},
		{span: Between(4, 2), sum: 0},
		{span: Between(-5, 100), sum: 14},
		{span: Span{}, sum: 0},
	}
	for _, c := range cases {
		if got := tree.Fold(c.span); got != c.sum {
			t.Fatalf("fold(%v): got %d, want %d", c.span, got, c.sum)
		}
	}
}

func TestPointUpdates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	tree := sumTree(t, 3, 1, 4, 1, 5)
	tree.Set(2, 10)
	require.Equal(t, 20, tree.Fold(All()))
	tree.Update(0, func(x int) int { return x * 2 })
	require.Equal(t, 6, tree.Get(0))
	require.Equal(t, 23, tree.Fold(All()))
	require.Equal(t, []int{6, 1, 10, 1, 5}, tree.Values())
	require.NoError(t, tree.CheckValues(intEq))

	_, err := tree.At(5)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	v, err := tree.At(4)
	require.NoError(t, err)
	require.Equal(t, 5, v)
}

func TestOutOfBoundsPanics(t *testing.T) {
	tree := sumTree(t, 1, 2, 3)
	for name, f := range map[string]func(){
		"Get":       func() { tree.Get(3) },
		"Get(-1)":   func() { tree.Get(-1) },
		"Set":       func() { tree.Set(3, 0) },
		"FindStart": func() { tree.FindStart(4, func(int, int) bool { return true }) },
		"FindEnd":   func() { tree.FindEnd(4, func(int, int) bool { return true }) },
	} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("%s: expected panic", name)
				}
				if err, ok := r.(error); !ok || !errors.Is(err, ErrIndexOutOfBounds) {
					t.Fatalf("%s: expected ErrIndexOutOfBounds, got %v", name, r)
				}
			}()
			f()
		}()
	}
	require.Equal(t, []int{1, 2, 3}, tree.Values())
}

func TestEmptyTree(t *testing.T) {
	tree := sumTree(t)
	require.Equal(t, 0, tree.Size())
	require.Equal(t, 0, tree.Fold(All()))
	require.NoError(t, tree.Check())
	require.Equal(t, 0, tree.FindStart(0, func(int, int) bool { return false }))
	require.Equal(t, 0, tree.FindEnd(0, func(int, int) bool { return false }))
}

func TestNonCommutativeFold(t *testing.T) {
	concat := monoid.New(func(l, r string) string { return l + r }, func() string { return "" })
	letters := strings.Split("segmenttree", "")
	tree, err := New(Config[string]{Monoid: concat}, letters)
	require.NoError(t, err)
	for l := 0; l <= len(letters); l++ {
		for r := l; r <= len(letters); r++ {
			require.Equal(t, strings.Join(letters[l:r], ""), tree.Fold(Between(l, r)))
		}
	}
	tree.Set(0, "S")
	require.Equal(t, "Segment", tree.Fold(To(7)))
}

// --- Boundary search -------------------------------------------------------

func bruteFindStart(values []int, r int, pred func(int, int) bool) int {
	sum := 0
	l := r
	for l > 0 {
		if !pred(sum+values[l-1], l-1) {
			break
		}
		sum += values[l-1]
		l--
	}
	return l
}

func bruteFindEnd(values []int, l int, pred func(int, int) bool) int {
	sum := 0
	r := l
	for r < len(values) {
		if !pred(sum+values[r], r+1) {
			break
		}
		sum += values[r]
		r++
	}
	return r
}

func TestFindBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for _, n := range []int{1, 2, 3, 5, 8, 13, 16, 31} {
		values := make([]int, n)
		for i := range values {
			values[i] = rnd.Intn(10)
		}
		tree := sumTree(t, values...)
		for limit := 0; limit < 40; limit += 3 {
			pred := func(s, _ int) bool { return s <= limit }
			for i := 0; i <= n; i++ {
				if got, want := tree.FindStart(i, pred), bruteFindStart(values, i, pred); got != want {
					t.Fatalf("n=%d findStart(%d) with sum <= %d: got %d, want %d", n, i, limit, got, want)
				}
				if got, want := tree.FindEnd(i, pred), bruteFindEnd(values, i, pred); got != want {
					t.Fatalf("n=%d findEnd(%d) with sum <= %d: got %d, want %d", n, i, limit, got, want)
				}
			}
		}
	}
}

func TestFindPassesBoundary(t *testing.T) {
	tree := sumTree(t, 1, 1, 1, 1, 1, 1, 1)
	var seen []int
	got := tree.FindEnd(2, func(s, r int) bool {
		seen = append(seen, r)
		require.Equal(t, r-2, s)
		return r <= 5
	})
	require.Equal(t, 5, got)
	for _, r := range seen {
		require.True(t, r > 2 && r <= 7, "FindEnd called pred with r=%d", r)
	}
	seen = seen[:0]
	got = tree.FindStart(6, func(s, l int) bool {
		seen = append(seen, l)
		require.Equal(t, 6-l, s)
		return l >= 3
	})
	require.Equal(t, 3, got)
	for _, l := range seen {
		require.True(t, l >= 0 && l < 6, "FindStart called pred with l=%d", l)
	}
	// r == 0 and l == n do not call pred
	require.Equal(t, 0, tree.FindStart(0, func(int, int) bool { panic("called") }))
	require.Equal(t, 7, tree.FindEnd(7, func(int, int) bool { panic("called") }))
	require.Equal(t, 7, tree.FindEnd(0, func(int, int) bool { return true }))
}

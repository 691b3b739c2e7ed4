package segtree

import (
	"github.com/npillmayer/segtree/monoid"
)

// Tree is a segment tree without lazy propagation. It supports point
// updates and range folds.
//
// A Tree created by New with an empty value slice is valid: folds return
// the identity and there is nothing to update.
type Tree[T any] struct {
	n, p int
	val  []T
	m    monoid.Monoid[T]
}

// New creates a tree holding a copy of values. It returns an error wrapping
// ErrInvalidConfig if cfg has no monoid. Construction is O(n).
func New[T any](cfg Config[T], values []T) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[T]{n: len(values), p: padded(len(values)), m: cfg.Monoid}
	t.val = buildSlots(t.m, values, t.p)
	tracer().Debugf("segtree: new tree of length %d, %d slots", t.n, len(t.val))
	return t, nil
}

// buildSlots lays out values on 2p slots and fills internal nodes bottom-up.
func buildSlots[T any](m monoid.Monoid[T], values []T, p int) []T {
	assert(len(values) <= p, "segtree: padded size smaller than number of values")
	val := make([]T, 2*p)
	for i := range p {
		if i < len(values) {
			val[p+i] = values[i]
		} else {
			val[p+i] = m.Identity()
		}
	}
	for k := p - 1; k > 0; k-- {
		val[k] = m.Combine(val[2*k], val[2*k+1])
	}
	return val
}

// Size returns the number of values.
func (t *Tree[T]) Size() int {
	return t.n
}

// Get returns the value at index i. It panics with ErrIndexOutOfBounds if
// i is not in [0, Size()).
func (t *Tree[T]) Get(i int) T {
	checkIndex(i, t.n, "Get")
	return t.val[t.p+i]
}

// At returns the value at index i, or an error wrapping ErrIndexOutOfBounds.
func (t *Tree[T]) At(i int) (T, error) {
	if i < 0 || i >= t.n {
		var zero T
		return zero, indexError(i, t.n, "At")
	}
	return t.val[t.p+i], nil
}

// Set replaces the value at index i.
func (t *Tree[T]) Set(i int, v T) {
	t.Update(i, func(T) T { return v })
}

// Update replaces the value x at index i by f(x) and recomputes all
// ancestors.
func (t *Tree[T]) Update(i int, f func(T) T) {
	checkIndex(i, t.n, "Update")
	k := t.p + i
	t.val[k] = f(t.val[k])
	for k >>= 1; k > 0; k >>= 1 {
		t.val[k] = t.m.Combine(t.val[2*k], t.val[2*k+1])
	}
}

// Fold combines all values of range r, in order. Ranges are clamped to
// the tree; an empty range yields the identity.
func (t *Tree[T]) Fold(r Span) T {
	l, h := r.Clamp(t.n)
	return t.slots().fold(l, h)
}

func (t *Tree[T]) slots() slots[T] {
	return slots[T]{m: t.m, n: t.n, p: t.p, val: t.val}
}

// FindStart returns the smallest l <= r such that pred(Fold(Between(l, r)), l)
// holds. pred must be monotone: if it holds for some l, it holds for every
// larger l up to r. pred is never called with l = r and is assumed to
// hold for the empty range. FindStart panics with ErrIndexOutOfBounds if r
// is not in [0, Size()].
func (t *Tree[T]) FindStart(r int, pred func(T, int) bool) int {
	if r < 0 || r > t.n {
		panic(indexError(r, t.n, "FindStart"))
	}
	return t.slots().findStart(r, pred)
}

// FindEnd returns the largest r >= l such that pred(Fold(Between(l, r)), r)
// holds. pred must be monotone: if it holds for some r, it holds for every
// smaller r down to l. pred is never called with r = l and is assumed to
// hold for the empty range. FindEnd panics with ErrIndexOutOfBounds if l
// is not in [0, Size()].
func (t *Tree[T]) FindEnd(l int, pred func(T, int) bool) int {
	if l < 0 || l > t.n {
		panic(indexError(l, t.n, "FindEnd"))
	}
	return t.slots().findEnd(l, pred)
}

// Values returns a copy of all values, in order.
func (t *Tree[T]) Values() []T {
	vals := make([]T, t.n)
	copy(vals, t.val[t.p:t.p+t.n])
	return vals
}

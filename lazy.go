package segtree

import (
	"github.com/npillmayer/segtree/monoid"
)

// LazyTree is a segment tree with lazy propagation. In addition to the
// operations of Tree it applies actions to whole ranges.
//
// Every slot k carries a pending action. The value slot k stands for is
// Apply(pending[k], val[k]), where val[k] already accounts for all pending
// actions below k.
type LazyTree[T, A any] struct {
	n, p int
	val  []T
	pend []A
	m    monoid.Monoid[T]
	act  monoid.Action[A, T]
}

// NewLazy creates a lazy tree holding a copy of values. It returns an error
// wrapping ErrInvalidConfig if cfg lacks the monoid or the action.
func NewLazy[T, A any](cfg LazyConfig[T, A], values []T) (*LazyTree[T, A], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &LazyTree[T, A]{
		n:   len(values),
		p:   padded(len(values)),
		m:   cfg.Monoid,
		act: cfg.Action,
	}
	t.val = buildSlots(t.m, values, t.p)
	t.pend = make([]A, len(t.val))
	for k := range t.pend {
		t.pend[k] = t.act.ActionIdentity()
	}
	tracer().Debugf("segtree: new lazy tree of length %d, %d slots", t.n, len(t.val))
	return t, nil
}

// Size returns the number of values.
func (t *LazyTree[T, A]) Size() int {
	return t.n
}

// --- Evaluation ------------------------------------------------------------

// evaluate pushes the pending action of slot k down to its children and
// applies it to the value of k.
func (t *LazyTree[T, A]) evaluate(k int) {
	if k < t.p {
		t.pend[2*k] = t.act.Compose(t.pend[k], t.pend[2*k])
		t.pend[2*k+1] = t.act.Compose(t.pend[k], t.pend[2*k+1])
	}
	t.val[k] = t.act.Apply(t.pend[k], t.val[k])
	t.pend[k] = t.act.ActionIdentity()
}

// evalDown evaluates all slots on the path from the root to leaf i.
func (t *LazyTree[T, A]) evalDown(i int) {
	k := 1
	t.evaluate(k)
	for width := t.p; width > 1; {
		width >>= 1
		k = 2 * k
		if i&width != 0 {
			k++
		}
		t.evaluate(k)
	}
}

// propUp recomputes all ancestors of leaf i from their (evaluated)
// children.
func (t *LazyTree[T, A]) propUp(i int) {
	for k := (t.p + i) >> 1; k > 0; k >>= 1 {
		t.evaluate(2 * k)
		t.evaluate(2*k + 1)
		t.val[k] = t.m.Combine(t.val[2*k], t.val[2*k+1])
	}
}

func (t *LazyTree[T, A]) slots() slots[T] {
	return slots[T]{m: t.m, n: t.n, p: t.p, val: t.val, eval: t.evaluate}
}

// --- Point access ----------------------------------------------------------

// Get returns the value at index i. It panics with ErrIndexOutOfBounds if
// i is not in [0, Size()).
func (t *LazyTree[T, A]) Get(i int) T {
	checkIndex(i, t.n, "Get")
	t.evalDown(i)
	return t.val[t.p+i]
}

// At returns the value at index i, or an error wrapping ErrIndexOutOfBounds.
func (t *LazyTree[T, A]) At(i int) (T, error) {
	if i < 0 || i >= t.n {
		var zero T
		return zero, indexError(i, t.n, "At")
	}
	return t.Get(i), nil
}

// Set replaces the value at index i.
func (t *LazyTree[T, A]) Set(i int, v T) {
	t.Update(i, func(T) T { return v })
}

// Update replaces the value x at index i by f(x). All actions applied to
// i before are reflected in x.
func (t *LazyTree[T, A]) Update(i int, f func(T) T) {
	checkIndex(i, t.n, "Update")
	t.evalDown(i)
	k := t.p + i
	t.val[k] = f(t.val[k])
	t.propUp(i)
}

// --- Ranges ----------------------------------------------------------------

// Act applies action a to every value of range r. Ranges are clamped to
// the tree; acting on an empty range does nothing.
func (t *LazyTree[T, A]) Act(r Span, a A) {
	l, h := r.Clamp(t.n)
	if l >= h {
		tracer().Debugf("segtree: act on empty range %v", r)
		return
	}
	t.evalDown(l)
	t.evalDown(h - 1)
	for lo, hi := l+t.p, h+t.p; lo < hi; lo, hi = lo>>1, hi>>1 {
		if lo&1 == 1 {
			t.actOn(lo, a)
			lo++
		}
		if hi&1 == 1 {
			hi--
			t.actOn(hi, a)
		}
	}
	t.propUp(l)
	t.propUp(h - 1)
}

func (t *LazyTree[T, A]) actOn(k int, a A) {
	t.evaluate(k)
	t.pend[k] = t.act.Compose(a, t.pend[k])
	t.evaluate(k)
}

// Fold combines all values of range r, in order. Ranges are clamped to
// the tree; an empty range yields the identity.
func (t *LazyTree[T, A]) Fold(r Span) T {
	l, h := r.Clamp(t.n)
	if l >= h {
		return t.m.Identity()
	}
	t.evalDown(l)
	t.evalDown(h - 1)
	return t.slots().fold(l, h)
}

// FindStart returns the smallest l <= r such that pred(Fold(Between(l, r)), l)
// holds, see Tree.FindStart.
func (t *LazyTree[T, A]) FindStart(r int, pred func(T, int) bool) int {
	if r < 0 || r > t.n {
		panic(indexError(r, t.n, "FindStart"))
	}
	if r == 0 {
		return 0
	}
	t.evalDown(r - 1)
	return t.slots().findStart(r, pred)
}

// FindEnd returns the largest r >= l such that pred(Fold(Between(l, r)), r)
// holds, see Tree.FindEnd.
func (t *LazyTree[T, A]) FindEnd(l int, pred func(T, int) bool) int {
	if l < 0 || l > t.n {
		panic(indexError(l, t.n, "FindEnd"))
	}
	if l == t.n {
		return t.n
	}
	t.evalDown(l)
	return t.slots().findEnd(l, pred)
}

// Values returns all values, in order, with all pending actions applied.
func (t *LazyTree[T, A]) Values() []T {
	vals := make([]T, t.n)
	for k := 1; k < t.p+t.n; k++ {
		t.evaluate(k)
	}
	copy(vals, t.val[t.p:t.p+t.n])
	return vals
}

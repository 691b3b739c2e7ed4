package segtree

import (
	"fmt"

	"github.com/npillmayer/segtree/monoid"
)

// Check validates the structural invariants of the tree.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	return checkLayout(t.n, t.p, len(t.val))
}

// CheckValues validates that every internal slot holds the combination of
// its children and that padding leaves hold the identity. eq compares
// two values.
func (t *Tree[T]) CheckValues(eq func(a, b T) bool) error {
	if err := t.Check(); err != nil {
		return err
	}
	v := func(k int) T { return t.val[k] }
	return checkValues(t.m, t.n, t.p, v, v, eq)
}

// Check validates the structural invariants of the tree.
func (t *LazyTree[T, A]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if err := checkLayout(t.n, t.p, len(t.val)); err != nil {
		return err
	}
	if len(t.pend) != len(t.val) {
		return fmt.Errorf("%w: %d pending actions for %d slots", ErrInvalidTree, len(t.pend), len(t.val))
	}
	return nil
}

// CheckValues validates the lazy invariant: every internal slot holds the
// combination of its children with their pending actions applied. Padding
// leaves must hold the identity. CheckValues does not evaluate anything.
func (t *LazyTree[T, A]) CheckValues(eq func(a, b T) bool) error {
	if err := t.Check(); err != nil {
		return err
	}
	stored := func(k int) T { return t.val[k] }
	return checkValues(t.m, t.n, t.p, stored, func(k int) T {
		return t.act.Apply(t.pend[k], t.val[k])
	}, eq)
}

func checkLayout(n, p, slots int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidTree, n)
	}
	if p&(p-1) != 0 {
		return fmt.Errorf("%w: padded length %d is not a power of two", ErrInvalidTree, p)
	}
	if p < n || (n > 0 && p >= 2*n) || (n == 0 && p != 0) {
		return fmt.Errorf("%w: padded length %d does not fit length %d", ErrInvalidTree, p, n)
	}
	if slots != 2*p {
		return fmt.Errorf("%w: %d slots for padded length %d", ErrInvalidTree, slots, p)
	}
	return nil
}

// checkValues compares the stored value of every internal slot with the
// combination of the effective values of its children.
func checkValues[T any](m monoid.Monoid[T], n, p int, stored, effective func(int) T, eq func(a, b T) bool) error {
	for i := n; i < p; i++ {
		if !eq(effective(p+i), m.Identity()) {
			return fmt.Errorf("%w: padding leaf %d is not the identity", ErrInvalidTree, i)
		}
	}
	for k := p - 1; k > 0; k-- {
		if !eq(stored(k), m.Combine(effective(2*k), effective(2*k+1))) {
			return fmt.Errorf("%w: slot %d does not match its children", ErrInvalidTree, k)
		}
	}
	return nil
}

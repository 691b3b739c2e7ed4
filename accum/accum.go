package accum

import (
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/monoid"
)

// Accumulated holds the prefix folds of a sequence.
type Accumulated[T any] struct {
	prefix []T // prefix[i] folds [0, i+1)
	group  monoid.Group[T]
}

// New computes the prefix folds of values in group g.
func New[T any](g monoid.Group[T], values []T) *Accumulated[T] {
	acc := &Accumulated[T]{prefix: make([]T, len(values)), group: g}
	for i, v := range values {
		if i == 0 {
			acc.prefix[i] = v
		} else {
			acc.prefix[i] = g.Combine(acc.prefix[i-1], v)
		}
	}
	return acc
}

// Sums computes prefix sums of numbers.
func Sums[N monoid.Number](values []N) *Accumulated[N] {
	return New[N](monoid.Sum[N]{}, values)
}

// Len returns the length of the sequence.
func (acc *Accumulated[T]) Len() int {
	return len(acc.prefix)
}

// Fold combines the elements of range r. Ranges are clamped; an empty range
// yields the identity.
func (acc *Accumulated[T]) Fold(r segtree.Span) T {
	l, h := r.Clamp(len(acc.prefix))
	switch {
	case l >= h:
		return acc.group.Identity()
	case l == 0:
		return acc.prefix[h-1]
	}
	return acc.group.Combine(acc.group.Inverse(acc.prefix[l-1]), acc.prefix[h-1])
}

package shrink

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/monoid"
)

// ErrNotShrinkable signals a key or boundary which is not one of the
// compressed keys.
var ErrNotShrinkable = errors.New("shrink: key is not shrinkable")

// Shrink maps a set of ordered keys to the indices 0 … Len()-1,
// preserving order.
type Shrink[K cmp.Ordered] struct {
	keys []K
}

// New creates a compression of keys. keys is not modified.
func New[K cmp.Ordered](keys []K) *Shrink[K] {
	ks := slices.Clone(keys)
	slices.Sort(ks)
	ks = slices.Compact(ks)
	tracer().Debugf("shrink: %d keys compressed to %d", len(keys), len(ks))
	return &Shrink[K]{keys: ks}
}

// Len returns the number of distinct keys.
func (s *Shrink[K]) Len() int {
	return len(s.keys)
}

// Index returns the index of key k, or an error wrapping ErrNotShrinkable
// if k is not a key.
func (s *Shrink[K]) Index(k K) (int, error) {
	i, found := slices.BinarySearch(s.keys, k)
	if !found {
		return i, fmt.Errorf("%w: %v", ErrNotShrinkable, k)
	}
	return i, nil
}

// LowerBound returns the index of the smallest key >= k, or Len() if all
// keys are smaller.
func (s *Shrink[K]) LowerBound(k K) int {
	i, _ := slices.BinarySearch(s.keys, k)
	return i
}

// Key returns the key at index i.
func (s *Shrink[K]) Key(i int) K {
	return s.keys[i]
}

// Keys returns the distinct keys in ascending order.
func (s *Shrink[K]) Keys() []K {
	return slices.Clone(s.keys)
}

// Span translates the key range [lo, hi) to a span of indices. Both
// boundaries must be keys; lo > hi yields an empty span.
func (s *Shrink[K]) Span(lo, hi K) (segtree.Span, error) {
	l, err := s.Index(lo)
	if err != nil {
		return segtree.Span{}, err
	}
	h, err := s.Index(hi)
	if err != nil {
		return segtree.Span{}, err
	}
	return segtree.Between(l, h), nil
}

// Widths returns the lengths of the elementary intervals between
// consecutive keys: Widths(s)[i] = s.Key(i+1) - s.Key(i).
func Widths[N interface {
	cmp.Ordered
	monoid.Number
}](s *Shrink[N]) []N {
	if len(s.keys) < 2 {
		return nil
	}
	w := make([]N, len(s.keys)-1)
	for i := range w {
		w[i] = s.keys[i+1] - s.keys[i]
	}
	return w
}

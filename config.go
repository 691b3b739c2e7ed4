package segtree

import (
	"fmt"

	"github.com/npillmayer/segtree/monoid"
)

// Config configures a segment tree without lazy propagation.
type Config[T any] struct {
	// Monoid combines values up the tree.
	Monoid monoid.Monoid[T]
}

func (cfg Config[T]) validate() error {
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	return nil
}

// LazyConfig configures a segment tree with lazy propagation.
//
// Action must distribute over the combine operation of Monoid, and must
// leave the monoid's identity unchanged for every action reaching a leaf
// beyond the logical length. Neither is checked.
type LazyConfig[T, A any] struct {
	// Monoid combines values up the tree.
	Monoid monoid.Monoid[T]
	// Action transforms values of ranges.
	Action monoid.Action[A, T]
}

func (cfg LazyConfig[T, A]) validate() error {
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if cfg.Action == nil {
		return fmt.Errorf("%w: action is required", ErrInvalidConfig)
	}
	return nil
}

// padded returns the smallest power of two >= n, or 0 for n = 0.
func padded(n int) int {
	if n == 0 {
		return 0
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func indexError(i, n int, op string) error {
	return fmt.Errorf("%w: %s(%d) on tree of length %d", ErrIndexOutOfBounds, op, i, n)
}

func checkIndex(i, n int, op string) {
	if i < 0 || i >= n {
		panic(indexError(i, n, op))
	}
}

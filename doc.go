/*
Package segtree implements segment trees with and without lazy propagation.

Segment Trees

A segment tree holds a fixed-length sequence of values of a monoid and
answers range queries: folding an arbitrary contiguous range of values into
one summary, and (with lazy propagation) applying a transformation to every
value of a range. Both take O(log n) calls of the algebra.

	Operation          |  Tree     |  LazyTree
	-------------------+-----------+----------
	Build              |  O(n)     |  O(n)
	Get / Set / Update |  O(log n) |  O(log n)
	Fold(range)        |  O(log n) |  O(log n)
	Act(range)         |     –     |  O(log n)
	FindStart/FindEnd  |  O(log n) |  O(log n)

Values live in an implicit binary tree on an array: with P the smallest power
of two not less than the number of values, slot 1 is the root, slot k has
children 2k and 2k+1, and leaves occupy slots P to 2P-1. Leaves beyond the
logical length hold the identity of the monoid.

A lazy tree stores a pending action with every slot. The value a slot
stands for is the pending action applied to its stored value; pending
actions are pushed down to children only when a query or update passes
through.

The algebra is supplied by package monoid. Ready-made trees for the usual
combinations (range add with range sum, range assignment with range
minimum, …) are found in package presets.

Trees are not safe for concurrent use.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package segtree

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("segtree: index out of bounds")
	// ErrInvalidTree signals a violated structural invariant.
	ErrInvalidTree = errors.New("segtree: invalid tree")
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

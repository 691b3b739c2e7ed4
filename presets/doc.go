/*
Package presets offers ready-made segment trees for the usual combinations
of range updates and range queries.

Lazy presets are named after their action and their fold: AddSum adds a
constant to every element of a range and folds sums, AssignMin assigns a
value to every element of a range and folds minima, and so on. They are
returned as a Facade, which hides the internal node type of the tree
behind plain element values.

	seg := presets.AddMaxCount([]int{1, -1, 5, 3, 2})
	seg.Act(segtree.From(3), 5)
	seg.Fold(segtree.All())   // {Max: 8, Count: 1}

Counting presets accept an option Weights, which lets an element count as
more than one, for example the width of an interval after coordinate
compression.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package presets

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

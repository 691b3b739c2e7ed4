/*
Package shrink compresses sparse ordered keys to the dense indices
0 … n-1, as needed for segment trees over coordinates.

Keys are sorted and de-duplicated on construction. For numeric keys,
Widths reports the lengths of the elementary intervals between
consecutive keys; they serve as element weights for counting trees.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package shrink

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

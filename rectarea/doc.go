/*
Package rectarea computes the area of the union of axis-aligned
rectangles.

A horizontal sweep line moves upwards over the rectangles. The
x-coordinates of all rectangles are compressed to elementary intervals,
and a lazy segment tree with range add and range minimum-with-count keeps
track of how often each interval is covered at the sweep line. Intervals
covered zero times are exactly those which attain the minimum 0, so the
covered width is the total width minus their count.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package rectarea

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

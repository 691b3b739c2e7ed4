/*
Package textwidth measures the display width of a line of text on a
fixed-width console and finds where the line has to be cut.

The line is segmented into grapheme clusters, each of which is assigned
its East Asian width (UAX #11): 1 for narrow, 2 for wide characters, 0 for
most combining sequences. A segment tree over these widths answers the
width of any range of graphemes, and its boundary search finds the longest
run of graphemes fitting a given width in logarithmic time.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textwidth

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

/*
Package accum folds ranges of a fixed sequence in constant time, using
prefix sums over a group.

A prefix table is a segment tree reduced to its leaves: it cannot be
updated, but as every element has an inverse, the fold of [l, r) is
Inverse(prefix(l)) combined with prefix(r).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package accum

/*
Package html renders segment trees as HTML tables, one table row per level
of the tree, for inspection in a browser. Each cell spans the leaves its
slot covers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

/*
Package observe wraps a lazy segment tree and broadcasts every modification
to subscribers. Subscribers receive Event values in the order in which the
modifications have been applied to the tree.

	obs := observe.New(tree)
	events, _ := obs.Subscribe(ctx, 16)
	obs.Act(segtree.Between(2, 5), 3)
	ev := (<-events).(observe.Event)   // {Seq: 1, Kind: Act, Span: [2..5), Action: "3"}

Queries are passed through to the tree and are not broadcast.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package observe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

package segtree

import (
	"fmt"
	"math/bits"
)

// NodeView is a read-only snapshot of one slot of a tree.
type NodeView[T any] struct {
	Slot  int // 1 is the root
	Depth int // 0 for the root
	Lo    int // first leaf index covered
	Hi    int // leaf index one past the covered range
	Value T   // stored value, not accounting for pending actions above
	// Pending is the formatted pending action, empty for trees without
	// lazy propagation.
	Pending string
	// HasPending is set if the pending action formats differently from the
	// identity action.
	HasPending bool
	// Padding is set for slots covering no index below Size().
	Padding bool
}

// IsLeaf is true for slots holding a single value.
func (nv NodeView[T]) IsLeaf() bool {
	return nv.Hi-nv.Lo == 1
}

// Walker is implemented by Tree and LazyTree.
type Walker[T any] interface {
	Size() int
	Walk(fn func(NodeView[T]) bool)
}

var _ Walker[int] = (*Tree[int])(nil)
var _ Walker[int] = (*LazyTree[int, int])(nil)

// Walk visits all slots in breadth-first order, root first, until fn
// returns false. Walk does not modify the tree.
func (t *Tree[T]) Walk(fn func(NodeView[T]) bool) {
	walkSlots(t.n, t.p, t.val, nil, "", fn)
}

// Walk visits all slots in breadth-first order, root first, until fn
// returns false. Pending actions are reported, not evaluated.
func (t *LazyTree[T, A]) Walk(fn func(NodeView[T]) bool) {
	id := fmt.Sprint(t.act.ActionIdentity())
	walkSlots(t.n, t.p, t.val, func(k int) string {
		return fmt.Sprint(t.pend[k])
	}, id, fn)
}

func walkSlots[T any](n, p int, val []T, pending func(int) string, identity string, fn func(NodeView[T]) bool) {
	for k := 1; k < 2*p; k++ {
		depth := bits.Len(uint(k)) - 1
		width := p >> depth
		lo := (k - 1<<depth) * width
		nv := NodeView[T]{
			Slot:    k,
			Depth:   depth,
			Lo:      lo,
			Hi:      lo + width,
			Value:   val[k],
			Padding: lo >= n,
		}
		if pending != nil {
			nv.Pending = pending(k)
			nv.HasPending = nv.Pending != identity
		}
		if !fn(nv) {
			return
		}
	}
}

// Levels groups the slots of a tree by depth, root level first.
func Levels[T any](tr Walker[T]) [][]NodeView[T] {
	var lv [][]NodeView[T]
	tr.Walk(func(nv NodeView[T]) bool {
		if nv.Depth == len(lv) {
			lv = append(lv, nil)
		}
		lv[nv.Depth] = append(lv[nv.Depth], nv)
		return true
	})
	return lv
}

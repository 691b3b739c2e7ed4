package segtree

import "github.com/npillmayer/segtree/monoid"

// slots gives read access to the implicit tree of Tree and LazyTree alike.
// If eval is set, it is called on a slot before the slot is read or
// descended into; it must make the slot hold its true value, given that
// all ancestors of the slot have been evaluated before.
type slots[T any] struct {
	m    monoid.Monoid[T]
	n, p int
	val  []T
	eval func(k int)
}

func (ns slots[T]) at(k int) T {
	ns.touch(k)
	return ns.val[k]
}

func (ns slots[T]) touch(k int) {
	if ns.eval != nil {
		ns.eval(k)
	}
}

// fold combines leaves [l, h) with two accumulators, left to right. For
// a lazy tree the paths to leaves l and h-1 must have been evaluated.
func (ns slots[T]) fold(l, h int) T {
	left, right := ns.m.Identity(), ns.m.Identity()
	for l, h = l+ns.p, h+ns.p; l < h; l, h = l>>1, h>>1 {
		if l&1 == 1 {
			left = ns.m.Combine(left, ns.at(l))
			l++
		}
		if h&1 == 1 {
			h--
			right = ns.m.Combine(ns.at(h), right)
		}
	}
	return ns.m.Combine(left, right)
}

// findStart climbs from leaf r-1 as long as the current slot is a right
// child, tests the fold of the slot together with everything absorbed so
// far, and descends towards the leaves on the first failure. For a lazy
// tree the path to leaf r-1 must have been evaluated.
func (ns slots[T]) findStart(r int, pred func(T, int) bool) int {
	if r == 0 {
		return 0
	}
	done, doneL := ns.m.Identity(), r
	k, width := ns.p+r-1, 1
	for {
		for k > 1 && k&1 == 1 {
			k, width = k>>1, width<<1
		}
		s := ns.m.Combine(ns.at(k), done)
		if !pred(s, doneL-width) {
			for k < ns.p {
				ns.touch(k)
				k, width = 2*k+1, width>>1
				if s := ns.m.Combine(ns.at(k), done); pred(s, doneL-width) {
					done, doneL = s, doneL-width
					k--
				}
			}
			return doneL
		}
		done, doneL = s, doneL-width
		if k&(k-1) == 0 { // leftmost slot of its level
			return 0
		}
		k--
	}
}

// findEnd mirrors findStart, starting at leaf l and climbing while the
// current slot is a left child. Slots reaching beyond n never satisfy the
// predicate. For a lazy tree the path to leaf l must have been evaluated.
func (ns slots[T]) findEnd(l int, pred func(T, int) bool) int {
	if l == ns.n {
		return ns.n
	}
	done, doneR := ns.m.Identity(), l
	k, width := ns.p+l, 1
	for {
		for k&1 == 0 {
			k, width = k>>1, width<<1
		}
		if s, ok := ns.extend(done, doneR, k, width, pred); ok {
			done, doneR = s, doneR+width
			k++
			if k&(k-1) == 0 { // rightmost slot of its level absorbed
				return ns.n
			}
			continue
		}
		for k < ns.p {
			ns.touch(k)
			k, width = 2*k, width>>1
			if s, ok := ns.extend(done, doneR, k, width, pred); ok {
				done, doneR = s, doneR+width
				k++
			}
		}
		return doneR
	}
}

func (ns slots[T]) extend(done T, doneR, k, width int, pred func(T, int) bool) (T, bool) {
	if doneR+width > ns.n {
		return done, false
	}
	s := ns.m.Combine(done, ns.at(k))
	return s, pred(s, doneR+width)
}

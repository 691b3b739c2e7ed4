package segtree

import (
	"fmt"
	"math"
)

// Span denotes a contiguous range of indices. Spans are resolved against
// the length of a tree only when used, so open-ended spans like From(3)
// adapt to any tree.
//
// The zero Span is empty.
type Span struct {
	lo, hi       int
	openL, openR bool
}

// Between is the half-open range [l, r).
func Between(l, r int) Span { return Span{lo: l, hi: r} }

// Through is the closed range [l, r].
func Through(l, r int) Span { return Span{lo: l, hi: next(r)} }

// From is the range [l, n).
func From(l int) Span { return Span{lo: l, openR: true} }

// To is the range [0, r).
func To(r int) Span { return Span{hi: r, openL: true} }

// ToInclusive is the range [0, r].
func ToInclusive(r int) Span { return Span{hi: next(r), openL: true} }

// All is the range [0, n).
func All() Span { return Span{openL: true, openR: true} }

// Index is the range containing i only.
func Index(i int) Span { return Span{lo: i, hi: next(i)} }

// next is i+1, saturating at math.MaxInt.
func next(i int) int {
	if i == math.MaxInt {
		return i
	}
	return i + 1
}

// Clamp resolves the span against length n. The result satisfies
// 0 <= lo <= hi <= n; lo == hi denotes an empty range.
func (s Span) Clamp(n int) (lo, hi int) {
	lo, hi = s.lo, s.hi
	if s.openL || lo < 0 {
		lo = 0
	}
	if s.openR || hi > n {
		hi = n
	}
	if lo > n {
		lo = n
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func (s Span) String() string {
	l, r := fmt.Sprint(s.lo), fmt.Sprint(s.hi)
	if s.openL {
		l = ""
	}
	if s.openR {
		r = ""
	}
	return fmt.Sprintf("[%s..%s)", l, r)
}

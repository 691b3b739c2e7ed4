package monoid

import "math"

// Number is the set of built-in numeric types the well-known instances
// operate on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Lowest returns the smallest value of N: -Inf for floating point types,
// the minimum for signed and 0 for unsigned integers.
func Lowest[N Number]() N {
	var one N = 1
	if half := one / 2; half != 0 {
		return N(math.Inf(-1))
	}
	x := one
	for {
		y := x * 2
		if y <= x { // wrapped around
			if y < 0 {
				return y
			}
			return 0
		}
		x = y
	}
}

// Highest returns the largest value of N: +Inf for floating point types,
// the maximum for integer types.
func Highest[N Number]() N {
	var one N = 1
	if half := one / 2; half != 0 {
		return N(math.Inf(1))
	}
	return -Lowest[N]() - 1
}

// --- Plain numeric monoids -------------------------------------------------

// Sum adds numbers. It is a group.
type Sum[N Number] struct{}

func (Sum[N]) Identity() N            { return 0 }
func (Sum[N]) Combine(left, right N) N { return left + right }
func (Sum[N]) Inverse(t N) N           { return -t }

// Product multiplies numbers.
type Product[N Number] struct{}

func (Product[N]) Identity() N            { return 1 }
func (Product[N]) Combine(left, right N) N { return left * right }

// Min keeps the smaller of two numbers. Its identity is Highest.
type Min[N Number] struct{}

func (Min[N]) Identity() N { return Highest[N]() }

func (Min[N]) Combine(left, right N) N {
	if right < left {
		return right
	}
	return left
}

// Max keeps the larger of two numbers. Its identity is Lowest.
type Max[N Number] struct{}

func (Max[N]) Identity() N { return Lowest[N]() }

func (Max[N]) Combine(left, right N) N {
	if right > left {
		return right
	}
	return left
}

// --- Compound values -------------------------------------------------------

// MinMax holds the smallest and the largest value of a range.
type MinMax[N Number] struct {
	Min, Max N
}

// MaxCount holds the largest value of a range and how often it occurs.
type MaxCount[N Number] struct {
	Max   N
	Count int
}

// MinCount holds the smallest value of a range and how often it occurs.
// Count is a weight: leaves may contribute more than 1.
type MinCount[N Number] struct {
	Min   N
	Count int
}

// MinMaxCount combines MinCount and MaxCount.
type MinMaxCount[N Number] struct {
	Min      N
	MinCount int
	Max      N
	MaxCount int
}

// MinMaxMonoid combines MinMax values.
type MinMaxMonoid[N Number] struct{}

func (MinMaxMonoid[N]) Identity() MinMax[N] {
	return MinMax[N]{Min: Highest[N](), Max: Lowest[N]()}
}

func (MinMaxMonoid[N]) Combine(left, right MinMax[N]) MinMax[N] {
	return MinMax[N]{
		Min: Min[N]{}.Combine(left.Min, right.Min),
		Max: Max[N]{}.Combine(left.Max, right.Max),
	}
}

// MaxCountMonoid combines MaxCount values. Equal maxima add their counts.
type MaxCountMonoid[N Number] struct{}

func (MaxCountMonoid[N]) Identity() MaxCount[N] {
	return MaxCount[N]{Max: Lowest[N]()}
}

func (MaxCountMonoid[N]) Combine(left, right MaxCount[N]) MaxCount[N] {
	switch {
	case left.Max > right.Max:
		return left
	case left.Max < right.Max:
		return right
	}
	return MaxCount[N]{Max: left.Max, Count: left.Count + right.Count}
}

// MinCountMonoid combines MinCount values. Equal minima add their counts.
type MinCountMonoid[N Number] struct{}

func (MinCountMonoid[N]) Identity() MinCount[N] {
	return MinCount[N]{Min: Highest[N]()}
}

func (MinCountMonoid[N]) Combine(left, right MinCount[N]) MinCount[N] {
	switch {
	case left.Min < right.Min:
		return left
	case left.Min > right.Min:
		return right
	}
	return MinCount[N]{Min: left.Min, Count: left.Count + right.Count}
}

// MinMaxCountMonoid combines MinMaxCount values.
type MinMaxCountMonoid[N Number] struct{}

func (MinMaxCountMonoid[N]) Identity() MinMaxCount[N] {
	return MinMaxCount[N]{Min: Highest[N](), Max: Lowest[N]()}
}

func (MinMaxCountMonoid[N]) Combine(left, right MinMaxCount[N]) MinMaxCount[N] {
	lo := MinCountMonoid[N]{}.Combine(
		MinCount[N]{Min: left.Min, Count: left.MinCount},
		MinCount[N]{Min: right.Min, Count: right.MinCount})
	hi := MaxCountMonoid[N]{}.Combine(
		MaxCount[N]{Max: left.Max, Count: left.MaxCount},
		MaxCount[N]{Max: right.Max, Count: right.MaxCount})
	return MinMaxCount[N]{Min: lo.Min, MinCount: lo.Count, Max: hi.Max, MaxCount: hi.Count}
}

// --- Sized values ----------------------------------------------------------

// Sized attaches the number of covered elements to a value. Actions whose
// effect depends on the range length (assigning to a sum, for example)
// operate on sized values.
type Sized[T any] struct {
	Value T
	Len   int
}

// SizedMonoid lifts a monoid over T to Sized[T]. The identity has length 0.
type SizedMonoid[T any] struct {
	M Monoid[T]
}

func (s SizedMonoid[T]) Identity() Sized[T] {
	return Sized[T]{Value: s.M.Identity()}
}

func (s SizedMonoid[T]) Combine(left, right Sized[T]) Sized[T] {
	return Sized[T]{Value: s.M.Combine(left.Value, right.Value), Len: left.Len + right.Len}
}

// SizedAction lifts an action to sized values. Apply receives the length
// of the range the value stands for. Values of length 0 are left alone.
type SizedAction[A, T any] struct {
	Inner Action[A, T]
	// ApplyN overrides Inner.Apply if set.
	ApplyN func(a A, t T, n int) T
}

func (s SizedAction[A, T]) ActionIdentity() A { return s.Inner.ActionIdentity() }
func (s SizedAction[A, T]) Compose(a, b A) A  { return s.Inner.Compose(a, b) }

func (s SizedAction[A, T]) Apply(a A, t Sized[T]) Sized[T] {
	if t.Len == 0 {
		return t
	}
	if s.ApplyN != nil {
		return Sized[T]{Value: s.ApplyN(a, t.Value, t.Len), Len: t.Len}
	}
	return Sized[T]{Value: s.Inner.Apply(a, t.Value), Len: t.Len}
}

// --- Ranged values ---------------------------------------------------------

// Ranged attaches the index range [Lo, Hi) it covers to a value. Actions
// whose effect depends on the positions of the elements (adding k·i to
// element i, for example) operate on ranged values.
type Ranged[T any] struct {
	Value  T
	Lo, Hi int
}

// Empty is true for the identity, which covers no index.
func (r Ranged[T]) Empty() bool {
	return r.Lo >= r.Hi
}

// RangedMonoid lifts a monoid over T to Ranged[T]. The ranges of combined
// values are merged; the identity covers no index.
type RangedMonoid[T any] struct {
	M Monoid[T]
}

func (r RangedMonoid[T]) Identity() Ranged[T] {
	return Ranged[T]{Value: r.M.Identity(), Lo: math.MaxInt, Hi: math.MinInt}
}

func (r RangedMonoid[T]) Combine(left, right Ranged[T]) Ranged[T] {
	return Ranged[T]{
		Value: r.M.Combine(left.Value, right.Value),
		Lo:    min(left.Lo, right.Lo),
		Hi:    max(left.Hi, right.Hi),
	}
}

// RangedAction lifts an action to ranged values. Apply receives the range
// the value stands for. Empty values are left alone.
type RangedAction[A, T any] struct {
	Inner Action[A, T]
	// ApplyRange overrides Inner.Apply if set.
	ApplyRange func(a A, t T, lo, hi int) T
}

func (r RangedAction[A, T]) ActionIdentity() A { return r.Inner.ActionIdentity() }
func (r RangedAction[A, T]) Compose(a, b A) A  { return r.Inner.Compose(a, b) }

func (r RangedAction[A, T]) Apply(a A, t Ranged[T]) Ranged[T] {
	if t.Empty() {
		return t
	}
	if r.ApplyRange != nil {
		return Ranged[T]{Value: r.ApplyRange(a, t.Value, t.Lo, t.Hi), Lo: t.Lo, Hi: t.Hi}
	}
	return Ranged[T]{Value: r.Inner.Apply(a, t.Value), Lo: t.Lo, Hi: t.Hi}
}

// --- Actions ---------------------------------------------------------------

// Add is the action "add a constant to every element" on plain numbers.
// It may be combined with Min and Max: trees never apply actions to their
// padding slots, which are the only slots holding the identity.
type Add[N Number] struct{}

func (Add[N]) ActionIdentity() N { return 0 }
func (Add[N]) Compose(a, b N) N  { return a + b }

func (Add[N]) Apply(a N, t N) N { return t + a }

// Assignment is the action "replace every element by Value". The zero
// Assignment is the identity and leaves elements unchanged.
type Assignment[V any] struct {
	Set   bool
	Value V
}

// Assign returns an assignment of v.
func Assign[V any](v V) Assignment[V] {
	return Assignment[V]{Set: true, Value: v}
}

// Assigning is the action of Assignment on plain values.
type Assigning[V any] struct{}

func (Assigning[V]) ActionIdentity() Assignment[V] { return Assignment[V]{} }

func (Assigning[V]) Compose(a, b Assignment[V]) Assignment[V] {
	if a.Set {
		return a
	}
	return b
}

func (Assigning[V]) Apply(a Assignment[V], t V) V {
	if a.Set {
		return a.Value
	}
	return t
}

// Affine is the map x ↦ Mul·x + Add.
type Affine[N Number] struct {
	Mul, Add N
}

// AffineAction is the action of affine maps on sums. It must be lifted to
// Sized values, since Add is contributed once per covered element.
// Composition is not commutative.
type AffineAction[N Number] struct{}

func (AffineAction[N]) ActionIdentity() Affine[N] { return Affine[N]{Mul: 1} }

// Compose returns the map "b first, then a":
// a(b(x)) = a.Mul·(b.Mul·x + b.Add) + a.Add.
func (AffineAction[N]) Compose(a, b Affine[N]) Affine[N] {
	return Affine[N]{Mul: a.Mul * b.Mul, Add: a.Mul*b.Add + a.Add}
}

func (AffineAction[N]) Apply(a Affine[N], t Sized[N]) Sized[N] {
	return Sized[N]{Value: a.Mul*t.Value + a.Add*N(t.Len), Len: t.Len}
}

package presets

import (
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/monoid"
)

type settings struct {
	weight func(i int) int
}

// Option configures a preset.
type Option func(*settings)

// Weights sets the count each element contributes to counting presets.
// Weights must be positive. The default weight is 1.
func Weights(w func(i int) int) Option {
	if w == nil {
		panic("presets.Weights: weight function is nil")
	}
	return func(s *settings) {
		s.weight = w
	}
}

func newSettings(opts []Option) settings {
	s := settings{weight: func(int) int { return 1 }}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func lazy[T, A any](m monoid.Monoid[T], act monoid.Action[A, T], nodes []T) *segtree.LazyTree[T, A] {
	tree, err := segtree.NewLazy(segtree.LazyConfig[T, A]{Monoid: m, Action: act}, nodes)
	assert(err == nil, "presets: cannot create lazy tree")
	tracer().Debugf("presets: lazy tree of length %d", len(nodes))
	return tree
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

func nodes[V, T any](values []V, node func(v V, i int) T) []T {
	ns := make([]T, len(values))
	for i, v := range values {
		ns[i] = node(v, i)
	}
	return ns
}

// addAction builds the action "add a constant" on node type T. shift is
// never called for padding slots.
func addAction[N monoid.Number, T any](shift func(a N, t T) T) monoid.QuickAction[N, T] {
	return monoid.NewAction(
		func(a, b N) N { return a + b },
		func() N { return 0 },
		shift)
}

// assignSized assigns a value to every element of a range. fill creates
// the node for a range of total weight n holding v only.
type assignSized[V, T any] struct {
	fill func(v V, n int) T
}

func (assignSized[V, T]) ActionIdentity() monoid.Assignment[V] {
	return monoid.Assignment[V]{}
}

func (assignSized[V, T]) Compose(a, b monoid.Assignment[V]) monoid.Assignment[V] {
	return monoid.Assigning[V]{}.Compose(a, b)
}

func (s assignSized[V, T]) Apply(a monoid.Assignment[V], t monoid.Sized[T]) monoid.Sized[T] {
	if !a.Set || t.Len == 0 {
		return t
	}
	return monoid.Sized[T]{Value: s.fill(a.Value, t.Len), Len: t.Len}
}

// --- Sums ------------------------------------------------------------------

// SumTree is a lazy tree folding sums of N with actions A.
type SumTree[N monoid.Number, A any] = Facade[monoid.Sized[N], A, N, N]

func sumFacade[N monoid.Number, A any](values []N, act monoid.Action[A, monoid.Sized[N]]) *SumTree[N, A] {
	one := func(v N, _ int) monoid.Sized[N] { return monoid.Sized[N]{Value: v, Len: 1} }
	tree := lazy[monoid.Sized[N], A](monoid.SizedMonoid[N]{M: monoid.Sum[N]{}}, act, nodes(values, one))
	value := func(s monoid.Sized[N]) N { return s.Value }
	return NewFacade(tree, value, one, value)
}

// AddSum creates a tree for range add and range sum.
func AddSum[N monoid.Number](values []N) *SumTree[N, N] {
	return sumFacade[N, N](values, monoid.SizedAction[N, N]{
		Inner:  monoid.Add[N]{},
		ApplyN: func(a, t N, n int) N { return t + a*N(n) },
	})
}

// AssignSum creates a tree for range assignment and range sum.
func AssignSum[N monoid.Number](values []N) *SumTree[N, monoid.Assignment[N]] {
	return sumFacade[N, monoid.Assignment[N]](values, assignSized[N, N]{
		fill: func(v N, n int) N { return v * N(n) },
	})
}

// AffineSum creates a tree for range affine maps x ↦ Mul·x + Add and
// range sum.
func AffineSum[N monoid.Number](values []N) *SumTree[N, monoid.Affine[N]] {
	return sumFacade[N, monoid.Affine[N]](values, monoid.AffineAction[N]{})
}

// --- Minima and maxima -----------------------------------------------------

// PlainTree is a lazy tree whose nodes are plain element values.
type PlainTree[N monoid.Number, A any] = Facade[N, A, N, N]

func plainFacade[N monoid.Number, A any](values []N, m monoid.Monoid[N], act monoid.Action[A, N]) *PlainTree[N, A] {
	leaf := func(v N, _ int) N { return v }
	tree := lazy[N, A](m, act, nodes(values, leaf))
	return NewFacade(tree, identity[N], leaf, identity[N])
}

// AddMin creates a tree for range add and range minimum.
func AddMin[N monoid.Number](values []N) *PlainTree[N, N] {
	return plainFacade[N, N](values, monoid.Min[N]{}, monoid.Add[N]{})
}

// AddMax creates a tree for range add and range maximum.
func AddMax[N monoid.Number](values []N) *PlainTree[N, N] {
	return plainFacade[N, N](values, monoid.Max[N]{}, monoid.Add[N]{})
}

// AssignMin creates a tree for range assignment and range minimum.
func AssignMin[N monoid.Number](values []N) *PlainTree[N, monoid.Assignment[N]] {
	return plainFacade[N, monoid.Assignment[N]](values, monoid.Min[N]{}, monoid.Assigning[N]{})
}

// AssignMax creates a tree for range assignment and range maximum.
func AssignMax[N monoid.Number](values []N) *PlainTree[N, monoid.Assignment[N]] {
	return plainFacade[N, monoid.Assignment[N]](values, monoid.Max[N]{}, monoid.Assigning[N]{})
}

// MinMaxTree is a lazy tree folding minimum and maximum at once.
type MinMaxTree[N monoid.Number, A any] = Facade[monoid.MinMax[N], A, N, monoid.MinMax[N]]

func minMaxFacade[N monoid.Number, A any](values []N, act monoid.Action[A, monoid.MinMax[N]]) *MinMaxTree[N, A] {
	leaf := func(v N, _ int) monoid.MinMax[N] { return monoid.MinMax[N]{Min: v, Max: v} }
	tree := lazy[monoid.MinMax[N], A](monoid.MinMaxMonoid[N]{}, act, nodes(values, leaf))
	get := func(mm monoid.MinMax[N]) N { return mm.Min }
	return NewFacade(tree, get, leaf, identity[monoid.MinMax[N]])
}

// AddMinMax creates a tree for range add and range minimum and maximum.
func AddMinMax[N monoid.Number](values []N) *MinMaxTree[N, N] {
	return minMaxFacade[N, N](values, addAction(func(a N, mm monoid.MinMax[N]) monoid.MinMax[N] {
		if mm.Min > mm.Max { // empty
			return mm
		}
		return monoid.MinMax[N]{Min: mm.Min + a, Max: mm.Max + a}
	}))
}

// AssignMinMax creates a tree for range assignment and range minimum and
// maximum.
func AssignMinMax[N monoid.Number](values []N) *MinMaxTree[N, monoid.Assignment[N]] {
	as := monoid.Assigning[N]{}
	return minMaxFacade[N, monoid.Assignment[N]](values, monoid.NewAction(as.Compose, as.ActionIdentity,
		func(a monoid.Assignment[N], mm monoid.MinMax[N]) monoid.MinMax[N] {
			if !a.Set || mm.Min > mm.Max {
				return mm
			}
			return monoid.MinMax[N]{Min: a.Value, Max: a.Value}
		}))
}

// --- Counting --------------------------------------------------------------

// MaxCountTree is a lazy tree folding the maximum and its count.
type MaxCountTree[T, A any, N monoid.Number] = Facade[T, A, N, monoid.MaxCount[N]]

// AddMaxCount creates a tree for range add and range maximum with count.
func AddMaxCount[N monoid.Number](values []N, opts ...Option) *MaxCountTree[monoid.MaxCount[N], N, N] {
	s := newSettings(opts)
	leaf := func(v N, i int) monoid.MaxCount[N] { return monoid.MaxCount[N]{Max: v, Count: s.weight(i)} }
	act := addAction(func(a N, mc monoid.MaxCount[N]) monoid.MaxCount[N] {
		return monoid.MaxCount[N]{Max: mc.Max + a, Count: mc.Count}
	})
	tree := lazy[monoid.MaxCount[N], N](monoid.MaxCountMonoid[N]{}, act, nodes(values, leaf))
	get := func(mc monoid.MaxCount[N]) N { return mc.Max }
	return NewFacade(tree, get, leaf, identity[monoid.MaxCount[N]])
}

// AssignMaxCount creates a tree for range assignment and range maximum with
// count.
func AssignMaxCount[N monoid.Number](values []N, opts ...Option) *MaxCountTree[monoid.Sized[monoid.MaxCount[N]], monoid.Assignment[N], N] {
	s := newSettings(opts)
	leaf := func(v N, i int) monoid.Sized[monoid.MaxCount[N]] {
		w := s.weight(i)
		return monoid.Sized[monoid.MaxCount[N]]{Value: monoid.MaxCount[N]{Max: v, Count: w}, Len: w}
	}
	act := assignSized[N, monoid.MaxCount[N]]{fill: func(v N, n int) monoid.MaxCount[N] {
		return monoid.MaxCount[N]{Max: v, Count: n}
	}}
	tree := lazy[monoid.Sized[monoid.MaxCount[N]], monoid.Assignment[N]](monoid.SizedMonoid[monoid.MaxCount[N]]{M: monoid.MaxCountMonoid[N]{}}, act, nodes(values, leaf))
	get := func(n monoid.Sized[monoid.MaxCount[N]]) N { return n.Value.Max }
	fold := func(n monoid.Sized[monoid.MaxCount[N]]) monoid.MaxCount[N] { return n.Value }
	return NewFacade(tree, get, leaf, fold)
}

// MinCountTree is a lazy tree folding the minimum and its count.
type MinCountTree[T, A any, N monoid.Number] = Facade[T, A, N, monoid.MinCount[N]]

// AddMinCount creates a tree for range add and range minimum with count.
func AddMinCount[N monoid.Number](values []N, opts ...Option) *MinCountTree[monoid.MinCount[N], N, N] {
	s := newSettings(opts)
	leaf := func(v N, i int) monoid.MinCount[N] { return monoid.MinCount[N]{Min: v, Count: s.weight(i)} }
	act := addAction(func(a N, mc monoid.MinCount[N]) monoid.MinCount[N] {
		return monoid.MinCount[N]{Min: mc.Min + a, Count: mc.Count}
	})
	tree := lazy[monoid.MinCount[N], N](monoid.MinCountMonoid[N]{}, act, nodes(values, leaf))
	get := func(mc monoid.MinCount[N]) N { return mc.Min }
	return NewFacade(tree, get, leaf, identity[monoid.MinCount[N]])
}

// AssignMinCount creates a tree for range assignment and range minimum with
// count.
func AssignMinCount[N monoid.Number](values []N, opts ...Option) *MinCountTree[monoid.Sized[monoid.MinCount[N]], monoid.Assignment[N], N] {
	s := newSettings(opts)
	leaf := func(v N, i int) monoid.Sized[monoid.MinCount[N]] {
		w := s.weight(i)
		return monoid.Sized[monoid.MinCount[N]]{Value: monoid.MinCount[N]{Min: v, Count: w}, Len: w}
	}
	act := assignSized[N, monoid.MinCount[N]]{fill: func(v N, n int) monoid.MinCount[N] {
		return monoid.MinCount[N]{Min: v, Count: n}
	}}
	tree := lazy[monoid.Sized[monoid.MinCount[N]], monoid.Assignment[N]](monoid.SizedMonoid[monoid.MinCount[N]]{M: monoid.MinCountMonoid[N]{}}, act, nodes(values, leaf))
	get := func(n monoid.Sized[monoid.MinCount[N]]) N { return n.Value.Min }
	fold := func(n monoid.Sized[monoid.MinCount[N]]) monoid.MinCount[N] { return n.Value }
	return NewFacade(tree, get, leaf, fold)
}

// MinMaxCountTree is a lazy tree folding minimum and maximum with their
// counts.
type MinMaxCountTree[T, A any, N monoid.Number] = Facade[T, A, N, monoid.MinMaxCount[N]]

// AddMinMaxCount creates a tree for range add and range minimum and maximum
// with counts.
func AddMinMaxCount[N monoid.Number](values []N, opts ...Option) *MinMaxCountTree[monoid.MinMaxCount[N], N, N] {
	s := newSettings(opts)
	leaf := func(v N, i int) monoid.MinMaxCount[N] {
		w := s.weight(i)
		return monoid.MinMaxCount[N]{Min: v, MinCount: w, Max: v, MaxCount: w}
	}
	act := addAction(func(a N, x monoid.MinMaxCount[N]) monoid.MinMaxCount[N] {
		if x.Min > x.Max { // empty
			return x
		}
		x.Min += a
		x.Max += a
		return x
	})
	tree := lazy[monoid.MinMaxCount[N], N](monoid.MinMaxCountMonoid[N]{}, act, nodes(values, leaf))
	get := func(x monoid.MinMaxCount[N]) N { return x.Min }
	return NewFacade(tree, get, leaf, identity[monoid.MinMaxCount[N]])
}

// AssignMinMaxCount creates a tree for range assignment and range minimum
// and maximum with counts.
func AssignMinMaxCount[N monoid.Number](values []N, opts ...Option) *MinMaxCountTree[monoid.Sized[monoid.MinMaxCount[N]], monoid.Assignment[N], N] {
	s := newSettings(opts)
	fill := func(v N, n int) monoid.MinMaxCount[N] {
		return monoid.MinMaxCount[N]{Min: v, MinCount: n, Max: v, MaxCount: n}
	}
	leaf := func(v N, i int) monoid.Sized[monoid.MinMaxCount[N]] {
		w := s.weight(i)
		return monoid.Sized[monoid.MinMaxCount[N]]{Value: fill(v, w), Len: w}
	}
	act := assignSized[N, monoid.MinMaxCount[N]]{fill: fill}
	tree := lazy[monoid.Sized[monoid.MinMaxCount[N]], monoid.Assignment[N]](monoid.SizedMonoid[monoid.MinMaxCount[N]]{M: monoid.MinMaxCountMonoid[N]{}}, act, nodes(values, leaf))
	get := func(n monoid.Sized[monoid.MinMaxCount[N]]) N { return n.Value.Min }
	fold := func(n monoid.Sized[monoid.MinMaxCount[N]]) monoid.MinMaxCount[N] { return n.Value }
	return NewFacade(tree, get, leaf, fold)
}

// --- Position-dependent actions -------------------------------------------

// RangedTree is a lazy tree whose action sees the index range of the values
// it is applied to.
type RangedTree[T, A any] = Facade[monoid.Ranged[T], A, T, T]

// WithRange creates a lazy tree for values folded by m, where act receives
// the range [lo, hi) of the elements a value stands for. compose and
// identity form the algebra of the actions.
//
//	// add k·i to element i, fold sums
//	seg := presets.WithRange([]int{1, 2, 3}, monoid.Sum[int]{},
//		func(a, b int) int { return a + b }, func() int { return 0 },
//		func(k, sum, lo, hi int) int { return sum + k*(lo+hi-1)*(hi-lo)/2 })
func WithRange[T, A any](values []T, m monoid.Monoid[T], compose func(a, b A) A,
	identity func() A, act func(a A, t T, lo, hi int) T) *RangedTree[T, A] {
	//
	leaf := func(v T, i int) monoid.Ranged[T] { return monoid.Ranged[T]{Value: v, Lo: i, Hi: i + 1} }
	ra := monoid.RangedAction[A, T]{
		Inner:      monoid.NewAction[A, T](compose, identity, nil),
		ApplyRange: act,
	}
	tree := lazy[monoid.Ranged[T], A](monoid.RangedMonoid[T]{M: m}, ra, nodes(values, leaf))
	value := func(r monoid.Ranged[T]) T { return r.Value }
	return NewFacade[monoid.Ranged[T], A, T, T](tree, value, leaf, value)
}

// --- Without lazy propagation ----------------------------------------------

func plain[T any](m monoid.Monoid[T], values []T) *segtree.Tree[T] {
	tree, err := segtree.New(segtree.Config[T]{Monoid: m}, values)
	assert(err == nil, "presets: cannot create tree")
	return tree
}

// Sum creates a tree folding sums.
func Sum[N monoid.Number](values []N) *segtree.Tree[N] {
	return plain[N](monoid.Sum[N]{}, values)
}

// Min creates a tree folding minima.
func Min[N monoid.Number](values []N) *segtree.Tree[N] {
	return plain[N](monoid.Min[N]{}, values)
}

// Max creates a tree folding maxima.
func Max[N monoid.Number](values []N) *segtree.Tree[N] {
	return plain[N](monoid.Max[N]{}, values)
}

// MinMax creates a tree folding minimum and maximum at once.
func MinMax[N monoid.Number](values []N) *segtree.Tree[monoid.MinMax[N]] {
	mm := make([]monoid.MinMax[N], len(values))
	for i, v := range values {
		mm[i] = monoid.MinMax[N]{Min: v, Max: v}
	}
	return plain[monoid.MinMax[N]](monoid.MinMaxMonoid[N]{}, mm)
}

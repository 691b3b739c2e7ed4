package presets

import (
	"github.com/npillmayer/segtree"
)

// Facade presents a lazy tree with internal node type T in terms of
// element values V and fold results F.
type Facade[T, A, V, F any] struct {
	tree *segtree.LazyTree[T, A]
	get  func(T) V
	set  func(v V, i int) T
	fold func(T) F
}

// NewFacade wraps tree. get extracts the element value from a leaf, set
// creates the leaf for element value v at index i, fold converts a fold
// result of the tree.
func NewFacade[T, A, V, F any](tree *segtree.LazyTree[T, A], get func(T) V,
	set func(v V, i int) T, fold func(T) F) *Facade[T, A, V, F] {
	//
	return &Facade[T, A, V, F]{tree: tree, get: get, set: set, fold: fold}
}

// Tree returns the underlying lazy tree.
func (f *Facade[T, A, V, F]) Tree() *segtree.LazyTree[T, A] {
	return f.tree
}

// Size returns the number of elements.
func (f *Facade[T, A, V, F]) Size() int {
	return f.tree.Size()
}

// Get returns the element at index i.
func (f *Facade[T, A, V, F]) Get(i int) V {
	return f.get(f.tree.Get(i))
}

// Set replaces the element at index i.
func (f *Facade[T, A, V, F]) Set(i int, v V) {
	f.tree.Set(i, f.set(v, i))
}

// Update replaces the element x at index i by fn(x).
func (f *Facade[T, A, V, F]) Update(i int, fn func(V) V) {
	f.tree.Update(i, func(t T) T {
		return f.set(fn(f.get(t)), i)
	})
}

// Act applies a to every element of range r.
func (f *Facade[T, A, V, F]) Act(r segtree.Span, a A) {
	f.tree.Act(r, a)
}

// Fold folds range r.
func (f *Facade[T, A, V, F]) Fold(r segtree.Span) F {
	return f.fold(f.tree.Fold(r))
}

// FindStart is LazyTree.FindStart in terms of fold results.
func (f *Facade[T, A, V, F]) FindStart(r int, pred func(F, int) bool) int {
	return f.tree.FindStart(r, func(t T, l int) bool { return pred(f.fold(t), l) })
}

// FindEnd is LazyTree.FindEnd in terms of fold results.
func (f *Facade[T, A, V, F]) FindEnd(l int, pred func(F, int) bool) int {
	return f.tree.FindEnd(l, func(t T, r int) bool { return pred(f.fold(t), r) })
}

// Values returns all elements.
func (f *Facade[T, A, V, F]) Values() []V {
	nodes := f.tree.Values()
	vals := make([]V, len(nodes))
	for i, t := range nodes {
		vals[i] = f.get(t)
	}
	return vals
}

// Walk visits the slots of the underlying tree.
func (f *Facade[T, A, V, F]) Walk(fn func(segtree.NodeView[T]) bool) {
	f.tree.Walk(fn)
}

func identity[T any](t T) T { return t }

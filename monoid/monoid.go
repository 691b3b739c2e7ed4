package monoid

// Monoid defines how values are aggregated up a tree.
type Monoid[T any] interface {
	Identity() T
	Combine(left, right T) T
}

// Action is a monoid of actions A operating on values T.
//
// Compose(a, b) yields the action "b first, then a". Apply must distribute
// over the value monoid's Combine, otherwise deferring an action to a whole
// range is not sound.
type Action[A, T any] interface {
	ActionIdentity() A
	Compose(a, b A) A
	Apply(a A, t T) T
}

// Group is a monoid where every element has an inverse:
//
//	Combine(Inverse(t), t) == Identity() == Combine(t, Inverse(t))
type Group[T any] interface {
	Monoid[T]
	Inverse(t T) T
}

// --- Function adapters -----------------------------------------------------

// Quick is a monoid assembled from plain functions.
type Quick[T any] struct {
	combine  func(T, T) T
	identity func() T
}

// New creates a monoid from a combine function and an identity constructor.
// Both functions must be non-nil.
func New[T any](combine func(left, right T) T, identity func() T) Quick[T] {
	if combine == nil || identity == nil {
		panic("monoid.New: combine and identity are required")
	}
	return Quick[T]{combine: combine, identity: identity}
}

// Identity returns the neutral element.
func (q Quick[T]) Identity() T { return q.identity() }

// Combine combines two values, left before right.
func (q Quick[T]) Combine(left, right T) T { return q.combine(left, right) }

// QuickAction is a monoid action assembled from plain functions.
type QuickAction[A, T any] struct {
	compose  func(A, A) A
	identity func() A
	apply    func(A, T) T
}

// NewAction creates a monoid action from plain functions. compose(a, b) must
// mean "b first, then a".
func NewAction[A, T any](compose func(a, b A) A, identity func() A, apply func(a A, t T) T) QuickAction[A, T] {
	if compose == nil || identity == nil || apply == nil {
		panic("monoid.NewAction: compose, identity and apply are required")
	}
	return QuickAction[A, T]{compose: compose, identity: identity, apply: apply}
}

// ActionIdentity returns the action that leaves every value unchanged.
func (q QuickAction[A, T]) ActionIdentity() A { return q.identity() }

// Compose composes two actions, b applied first.
func (q QuickAction[A, T]) Compose(a, b A) A { return q.compose(a, b) }

// Apply applies action a to value t.
func (q QuickAction[A, T]) Apply(a A, t T) T { return q.apply(a, t) }

// QuickGroup is a group assembled from plain functions.
type QuickGroup[T any] struct {
	Quick[T]
	inverse func(T) T
}

// NewGroup creates a group from plain functions.
func NewGroup[T any](combine func(left, right T) T, identity func() T, inverse func(T) T) QuickGroup[T] {
	if inverse == nil {
		panic("monoid.NewGroup: inverse is required")
	}
	return QuickGroup[T]{Quick: New(combine, identity), inverse: inverse}
}

// Inverse returns the inverse element of t.
func (q QuickGroup[T]) Inverse(t T) T { return q.inverse(t) }

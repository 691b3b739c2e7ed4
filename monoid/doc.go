/*
Package monoid provides the algebraic scaffolding for segment trees: value
monoids, monoid actions and groups, together with adapters for plain
functions and a set of well-known instances.

A monoid over T is an associative Combine with a neutral Identity:

	Combine(Combine(s, t), u) == Combine(s, Combine(t, u))
	Combine(Identity(), s) == s == Combine(s, Identity())

Combine need not be commutative. An action of A on T must additionally
satisfy

	Apply(ActionIdentity(), t) == t
	Apply(Compose(a, b), t) == Apply(a, Apply(b, t))
	Apply(a, Combine(s, t)) == Combine(Apply(a, s), Apply(a, t))

Compose(a, b) means "b first, then a". None of these laws is checked at
runtime.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package monoid

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

import (
	"github.com/google/go-cmp/cmp"
)

// And returns a predicate that is true when both p and other are. other is
// not evaluated when p is false or fails.
func (p ErrorablePredicate[T]) And(other ErrorablePredicate[T]) ErrorablePredicate[T] {
	if p == nil {
		panic(nilParameter("predicate"))
	}
	if other == nil {
		panic(nilParameter("other predicate"))
	}
	return func(t T) (bool, error) {
		ok, err := p(t)
		if err != nil || !ok {
			return false, err
		}
		return other(t)
	}
}

// Or returns a predicate that is true when either p or other is. other is not
// evaluated when p is true or fails.
func (p ErrorablePredicate[T]) Or(other ErrorablePredicate[T]) ErrorablePredicate[T] {
	if p == nil {
		panic(nilParameter("predicate"))
	}
	if other == nil {
		panic(nilParameter("other predicate"))
	}
	return func(t T) (bool, error) {
		ok, err := p(t)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		return other(t)
	}
}

func (p ErrorablePredicate[T]) Negate() ErrorablePredicate[T] {
	if p == nil {
		panic(nilParameter("predicate"))
	}
	return func(t T) (bool, error) {
		ok, err := p(t)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

// Not is p.Negate() in function form.
func Not[T any](p ErrorablePredicate[T]) ErrorablePredicate[T] {
	if p == nil {
		panic(nilParameter("predicate"))
	}
	return p.Negate()
}

// IsEqual returns a predicate reporting whether its argument == target. Two
// nil pointers compare equal. When T is an interface type, == panics at call
// time if both dynamic values share an uncomparable type such as a slice or
// map; use IsDeepEqual for those.
func IsEqual[T comparable](target T) ErrorablePredicate[T] {
	return func(t T) (bool, error) {
		return t == target, nil
	}
}

// IsDeepEqual is like IsEqual but compares structurally with cmp.Equal. As
// with cmp.Equal, types with unexported fields need an option such as
// cmpopts.IgnoreUnexported or the predicate panics.
func IsDeepEqual[T any](target T, opts ...cmp.Option) ErrorablePredicate[T] {
	return func(t T) (bool, error) {
		return cmp.Equal(target, t, opts...), nil
	}
}

func (p ErrorableBiPredicate[T, U]) And(other ErrorableBiPredicate[T, U]) ErrorableBiPredicate[T, U] {
	if p == nil {
		panic(nilParameter("predicate"))
	}
	if other == nil {
		panic(nilParameter("other predicate"))
	}
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		if err != nil || !ok {
			return false, err
		}
		return other(t, u)
	}
}

func (p ErrorableBiPredicate[T, U]) Or(other ErrorableBiPredicate[T, U]) ErrorableBiPredicate[T, U] {
	if p == nil {
		panic(nilParameter("predicate"))
	}
	if other == nil {
		panic(nilParameter("other predicate"))
	}
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		return other(t, u)
	}
}

func (p ErrorableBiPredicate[T, U]) Negate() ErrorableBiPredicate[T, U] {
	if p == nil {
		panic(nilParameter("predicate"))
	}
	return func(t T, u U) (bool, error) {
		ok, err := p(t, u)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

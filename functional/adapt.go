// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

import (
	"github.com/hashicorp/go-secure-stdlib/errorable/unchecked"
)

// Unchecked returns a Runnable that panics with an *unchecked.Error wrapping
// any error f returns. It panics immediately if f is nil.
func (f ErrorableRunnable) Unchecked() Runnable {
	if f == nil {
		panic(nilParameter("runnable"))
	}
	return func() {
		unchecked.Throw(f())
	}
}

// Checked returns an ErrorableRunnable that reports an *unchecked.Error
// panic raised by f as the error it carries. It panics immediately if f is
// nil.
func (f Runnable) Checked() ErrorableRunnable {
	if f == nil {
		panic(nilParameter("runnable"))
	}
	return func() (err error) {
		defer unchecked.Catch(&err)
		f()
		return nil
	}
}

func (f ErrorableProducer[V]) Unchecked() Producer[V] {
	if f == nil {
		panic(nilParameter("producer"))
	}
	return func() V {
		v, err := f()
		unchecked.Throw(err)
		return v
	}
}

func (f Producer[V]) Checked() ErrorableProducer[V] {
	if f == nil {
		panic(nilParameter("producer"))
	}
	return func() (v V, err error) {
		defer unchecked.Catch(&err)
		return f(), nil
	}
}

func (f ErrorableConsumer[T]) Unchecked() Consumer[T] {
	if f == nil {
		panic(nilParameter("consumer"))
	}
	return func(t T) {
		unchecked.Throw(f(t))
	}
}

func (f Consumer[T]) Checked() ErrorableConsumer[T] {
	if f == nil {
		panic(nilParameter("consumer"))
	}
	return func(t T) (err error) {
		defer unchecked.Catch(&err)
		f(t)
		return nil
	}
}

func (f ErrorableBiConsumer[T, U]) Unchecked() BiConsumer[T, U] {
	if f == nil {
		panic(nilParameter("consumer"))
	}
	return func(t T, u U) {
		unchecked.Throw(f(t, u))
	}
}

func (f BiConsumer[T, U]) Checked() ErrorableBiConsumer[T, U] {
	if f == nil {
		panic(nilParameter("consumer"))
	}
	return func(t T, u U) (err error) {
		defer unchecked.Catch(&err)
		f(t, u)
		return nil
	}
}

func (f ErrorableFunction[A, V]) Unchecked() Function[A, V] {
	if f == nil {
		panic(nilParameter("function"))
	}
	return func(a A) V {
		v, err := f(a)
		unchecked.Throw(err)
		return v
	}
}

func (f Function[A, V]) Checked() ErrorableFunction[A, V] {
	if f == nil {
		panic(nilParameter("function"))
	}
	return func(a A) (v V, err error) {
		defer unchecked.Catch(&err)
		return f(a), nil
	}
}

func (f ErrorableBiFunction[A, B, V]) Unchecked() BiFunction[A, B, V] {
	if f == nil {
		panic(nilParameter("function"))
	}
	return func(a A, b B) V {
		v, err := f(a, b)
		unchecked.Throw(err)
		return v
	}
}

func (f BiFunction[A, B, V]) Checked() ErrorableBiFunction[A, B, V] {
	if f == nil {
		panic(nilParameter("function"))
	}
	return func(a A, b B) (v V, err error) {
		defer unchecked.Catch(&err)
		return f(a, b), nil
	}
}

func (p ErrorablePredicate[T]) Unchecked() Predicate[T] {
	if p == nil {
		panic(nilParameter("predicate"))
	}
	return func(t T) bool {
		ok, err := p(t)
		unchecked.Throw(err)
		return ok
	}
}

func (p Predicate[T]) Checked() ErrorablePredicate[T] {
	if p == nil {
		panic(nilParameter("predicate"))
	}
	return func(t T) (ok bool, err error) {
		defer unchecked.Catch(&err)
		return p(t), nil
	}
}

func (p ErrorableBiPredicate[T, U]) Unchecked() BiPredicate[T, U] {
	if p == nil {
		panic(nilParameter("predicate"))
	}
	return func(t T, u U) bool {
		ok, err := p(t, u)
		unchecked.Throw(err)
		return ok
	}
}

func (p BiPredicate[T, U]) Checked() ErrorableBiPredicate[T, U] {
	if p == nil {
		panic(nilParameter("predicate"))
	}
	return func(t T, u U) (ok bool, err error) {
		defer unchecked.Catch(&err)
		return p(t, u), nil
	}
}

func (op ErrorableUnaryOperator[T]) Unchecked() UnaryOperator[T] {
	if op == nil {
		panic(nilParameter("operator"))
	}
	return func(t T) T {
		v, err := op(t)
		unchecked.Throw(err)
		return v
	}
}

func (op UnaryOperator[T]) Checked() ErrorableUnaryOperator[T] {
	if op == nil {
		panic(nilParameter("operator"))
	}
	return func(t T) (v T, err error) {
		defer unchecked.Catch(&err)
		return op(t), nil
	}
}

func (op ErrorableBinaryOperator[T]) Unchecked() BinaryOperator[T] {
	if op == nil {
		panic(nilParameter("operator"))
	}
	return func(a, b T) T {
		v, err := op(a, b)
		unchecked.Throw(err)
		return v
	}
}

func (op BinaryOperator[T]) Checked() ErrorableBinaryOperator[T] {
	if op == nil {
		panic(nilParameter("operator"))
	}
	return func(a, b T) (v T, err error) {
		defer unchecked.Catch(&err)
		return op(a, b), nil
	}
}

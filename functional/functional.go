// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package functional defines function shapes in two flavors. The plain
// shapes cannot return an error; the Errorable shapes can. Every Errorable
// shape converts to its plain counterpart with Unchecked, which raises a
// returned error as a panic carrying an *unchecked.Error, and every plain
// shape converts back with Checked, which recovers that panic into the
// original error. Other panics pass through both conversions untouched.
package functional

import (
	"fmt"

	"github.com/hashicorp/go-secure-stdlib/errorable/unchecked"
)

// ErrInvalidParameter is wrapped by the panic raised when a nil function is
// given to an adapter or combinator.
var ErrInvalidParameter = unchecked.ErrInvalidParameter

type Runnable func()
type ErrorableRunnable func() error
type Producer[V any] func() V
type ErrorableProducer[V any] func() (V, error)
type Consumer[T any] func(T)
type ErrorableConsumer[T any] func(T) error
type BiConsumer[T, U any] func(T, U)
type ErrorableBiConsumer[T, U any] func(T, U) error
type Function[A, V any] func(A) V
type ErrorableFunction[A any, V any] func(A) (V, error)
type BiFunction[A, B, V any] func(A, B) V
type ErrorableBiFunction[A, B, V any] func(A, B) (V, error)
type Predicate[T any] func(T) bool
type ErrorablePredicate[T any] func(T) (bool, error)
type BiPredicate[T, U any] func(T, U) bool
type ErrorableBiPredicate[T, U any] func(T, U) (bool, error)
type UnaryOperator[T any] func(T) T
type ErrorableUnaryOperator[T any] func(T) (T, error)
type BinaryOperator[T any] func(T, T) T
type ErrorableBinaryOperator[T any] func(T, T) (T, error)

func nilParameter(name string) error {
	return fmt.Errorf("%w: nil %s", ErrInvalidParameter, name)
}

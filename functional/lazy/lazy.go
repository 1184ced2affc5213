// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package lazy memoizes functional shapes. Producers are evaluated once;
// functions are evaluated once per distinct argument. Errors are memoized
// just like values, and concurrent callers wait on a single evaluation.
package lazy

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-secure-stdlib/errorable/functional"
)

func FromProducer[T any](f functional.Producer[T]) functional.Producer[T] {
	if f == nil {
		panic(fmt.Errorf("%w: nil producer", functional.ErrInvalidParameter))
	}
	return sync.OnceValue(f)
}

func FromErrorableProducer[T any](f functional.ErrorableProducer[T]) functional.ErrorableProducer[T] {
	if f == nil {
		panic(fmt.Errorf("%w: nil producer", functional.ErrInvalidParameter))
	}
	once := sync.OnceValues(f)
	return func() (T, error) {
		v, err := once()
		if err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	}
}

func FromFunction[A comparable, V any](f functional.Function[A, V]) functional.Function[A, V] {
	if f == nil {
		panic(fmt.Errorf("%w: nil function", functional.ErrInvalidParameter))
	}
	c := newCache[A, V]()
	return func(a A) V {
		v, _ := c.get(a, func() (V, error) {
			return f(a), nil
		})
		return v
	}
}

func FromErrorableFunction[A comparable, V any](f functional.ErrorableFunction[A, V]) functional.ErrorableFunction[A, V] {
	if f == nil {
		panic(fmt.Errorf("%w: nil function", functional.ErrInvalidParameter))
	}
	c := newCache[A, V]()
	return func(a A) (V, error) {
		return c.get(a, func() (V, error) {
			return f(a)
		})
	}
}

func FromBiFunction[A, B comparable, V any](f functional.BiFunction[A, B, V]) functional.BiFunction[A, B, V] {
	if f == nil {
		panic(fmt.Errorf("%w: nil function", functional.ErrInvalidParameter))
	}
	c := newCache[pair[A, B], V]()
	return func(a A, b B) V {
		v, _ := c.get(pair[A, B]{a, b}, func() (V, error) {
			return f(a, b), nil
		})
		return v
	}
}

func FromErrorableBiFunction[A, B comparable, V any](f functional.ErrorableBiFunction[A, B, V]) functional.ErrorableBiFunction[A, B, V] {
	if f == nil {
		panic(fmt.Errorf("%w: nil function", functional.ErrInvalidParameter))
	}
	c := newCache[pair[A, B], V]()
	return func(a A, b B) (V, error) {
		return c.get(pair[A, B]{a, b}, func() (V, error) {
			return f(a, b)
		})
	}
}

type pair[A, B comparable] struct {
	a A
	b B
}

type cache[K comparable, V any] struct {
	lock    sync.Mutex
	entries map[K]func() (V, error)
}

func newCache[K comparable, V any]() *cache[K, V] {
	return &cache[K, V]{
		entries: make(map[K]func() (V, error)),
	}
}

// get returns the memoized result for k, evaluating f on first use. The lock
// is released before f runs so slow keys do not block other keys.
func (c *cache[K, V]) get(k K, f func() (V, error)) (V, error) {
	c.lock.Lock()
	entry, ok := c.entries[k]
	if !ok {
		entry = sync.OnceValues(f)
		c.entries[k] = entry
	}
	c.lock.Unlock()

	v, err := entry()
	if err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

// AndThen returns a consumer that calls c and then after. after is skipped
// when c fails.
func (c ErrorableConsumer[T]) AndThen(after ErrorableConsumer[T]) ErrorableConsumer[T] {
	if c == nil {
		panic(nilParameter("consumer"))
	}
	if after == nil {
		panic(nilParameter("after consumer"))
	}
	return func(t T) error {
		if err := c(t); err != nil {
			return err
		}
		return after(t)
	}
}

func (c ErrorableBiConsumer[T, U]) AndThen(after ErrorableBiConsumer[T, U]) ErrorableBiConsumer[T, U] {
	if c == nil {
		panic(nilParameter("consumer"))
	}
	if after == nil {
		panic(nilParameter("after consumer"))
	}
	return func(t T, u U) error {
		if err := c(t, u); err != nil {
			return err
		}
		return after(t, u)
	}
}

// AndThen returns a function feeding the result of f into after. Methods
// cannot introduce the new result type, hence the free function.
func AndThen[A, B, V any](f ErrorableFunction[A, B], after ErrorableFunction[B, V]) ErrorableFunction[A, V] {
	if f == nil {
		panic(nilParameter("function"))
	}
	if after == nil {
		panic(nilParameter("after function"))
	}
	return func(a A) (V, error) {
		b, err := f(a)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(b)
	}
}

// Compose returns a function feeding the result of before into f.
func Compose[Z, A, V any](f ErrorableFunction[A, V], before ErrorableFunction[Z, A]) ErrorableFunction[Z, V] {
	if f == nil {
		panic(nilParameter("function"))
	}
	if before == nil {
		panic(nilParameter("before function"))
	}
	return AndThen(before, f)
}

// BiAndThen returns a function feeding the result of f into after.
func BiAndThen[A, B, C, V any](f ErrorableBiFunction[A, B, C], after ErrorableFunction[C, V]) ErrorableBiFunction[A, B, V] {
	if f == nil {
		panic(nilParameter("function"))
	}
	if after == nil {
		panic(nilParameter("after function"))
	}
	return func(a A, b B) (V, error) {
		c, err := f(a, b)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(c)
	}
}

// IdentityFunction returns a function that always returns its argument.
func IdentityFunction[T any]() ErrorableFunction[T, T] {
	return func(t T) (T, error) {
		return t, nil
	}
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

// Identity returns an operator that always returns its argument.
func Identity[T any]() ErrorableUnaryOperator[T] {
	return func(t T) (T, error) {
		return t, nil
	}
}

func (op ErrorableUnaryOperator[T]) AndThen(after ErrorableUnaryOperator[T]) ErrorableUnaryOperator[T] {
	if op == nil {
		panic(nilParameter("operator"))
	}
	if after == nil {
		panic(nilParameter("after operator"))
	}
	return func(t T) (T, error) {
		v, err := op(t)
		if err != nil {
			var zero T
			return zero, err
		}
		return after(v)
	}
}

func (op ErrorableUnaryOperator[T]) Compose(before ErrorableUnaryOperator[T]) ErrorableUnaryOperator[T] {
	if op == nil {
		panic(nilParameter("operator"))
	}
	if before == nil {
		panic(nilParameter("before operator"))
	}
	return before.AndThen(op)
}

// MinBy returns an operator yielding the lesser of its arguments according
// to compare, which follows the cmp.Compare convention. Ties yield the first
// argument.
func MinBy[T any](compare func(a, b T) int) ErrorableBinaryOperator[T] {
	if compare == nil {
		panic(nilParameter("comparator"))
	}
	return func(a, b T) (T, error) {
		if compare(a, b) <= 0 {
			return a, nil
		}
		return b, nil
	}
}

// MaxBy returns an operator yielding the greater of its arguments according
// to compare. Ties yield the first argument.
func MaxBy[T any](compare func(a, b T) int) ErrorableBinaryOperator[T] {
	if compare == nil {
		panic(nilParameter("comparator"))
	}
	return func(a, b T) (T, error) {
		if compare(a, b) >= 0 {
			return a, nil
		}
		return b, nil
	}
}

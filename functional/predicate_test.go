// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counting returns a predicate yielding result and a pointer to its call
// count.
func counting[T any](result bool, err error) (ErrorablePredicate[T], *int) {
	calls := new(int)
	return func(T) (bool, error) {
		*calls++
		return result, err
	}, calls
}

func TestPredicateAndOr(t *testing.T) {
	t.Parallel()

	failure := errors.New("failure")
	tests := []struct {
		name        string
		first       bool
		firstErr    error
		second      bool
		and         bool
		andCalls    int
		or          bool
		orCalls     int
		expectedErr error
	}{
		{name: "true-true", first: true, second: true, and: true, andCalls: 1, or: true, orCalls: 0},
		{name: "true-false", first: true, second: false, and: false, andCalls: 1, or: true, orCalls: 0},
		{name: "false-true", first: false, second: true, and: false, andCalls: 0, or: true, orCalls: 1},
		{name: "false-false", first: false, second: false, and: false, andCalls: 0, or: false, orCalls: 1},
		{name: "first-fails", first: true, firstErr: failure, second: true, expectedErr: failure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)
			first, _ := counting[int](tt.first, tt.firstErr)

			second, calls := counting[int](tt.second, nil)
			got, err := first.And(second)(1)
			if tt.expectedErr != nil {
				r.Same(tt.expectedErr, err)
				r.False(got)
				r.Zero(*calls)
			} else {
				r.NoError(err)
				r.Equal(tt.and, got)
				r.Equal(tt.andCalls, *calls)
			}

			second, calls = counting[int](tt.second, nil)
			got, err = first.Or(second)(1)
			if tt.expectedErr != nil {
				r.Same(tt.expectedErr, err)
				r.False(got)
				r.Zero(*calls)
			} else {
				r.NoError(err)
				r.Equal(tt.or, got)
				r.Equal(tt.orCalls, *calls)
			}
		})
	}
}

func TestPredicateSecondFails(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	failure := errors.New("second failed")
	yes, _ := counting[string](true, nil)
	no, _ := counting[string](false, nil)
	broken, _ := counting[string](true, failure)

	_, err := yes.And(broken)("x")
	r.Same(failure, err)
	_, err = no.Or(broken)("x")
	r.Same(failure, err)
}

func TestPredicateNegate(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	yes, _ := counting[int](true, nil)
	ok, err := yes.Negate()(0)
	r.NoError(err)
	r.False(ok)

	ok, err = Not(yes.Negate())(0)
	r.NoError(err)
	r.True(ok)

	failure := errors.New("failure")
	broken, _ := counting[int](true, failure)
	ok, err = broken.Negate()(0)
	r.Same(failure, err)
	r.False(ok)
}

func TestPredicateNilCollaborators(t *testing.T) {
	t.Parallel()

	p, calls := counting[int](true, nil)
	bp := ErrorableBiPredicate[int, int](func(int, int) (bool, error) { return true, nil })
	tests := []struct {
		name string
		call func()
	}{
		{"and-nil-other", func() { p.And(nil) }},
		{"and-nil-receiver", func() { ErrorablePredicate[int](nil).And(p) }},
		{"or-nil-other", func() { p.Or(nil) }},
		{"or-nil-receiver", func() { ErrorablePredicate[int](nil).Or(p) }},
		{"negate-nil", func() { ErrorablePredicate[int](nil).Negate() }},
		{"not-nil", func() { Not[int](nil) }},
		{"bi-and-nil-other", func() { bp.And(nil) }},
		{"bi-or-nil-other", func() { bp.Or(nil) }},
		{"bi-negate-nil", func() { ErrorableBiPredicate[int, int](nil).Negate() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err, ok := recovered(tt.call).(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
	assert.Zero(t, *calls)
}

func TestBiPredicate(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	startsWith := ErrorableBiPredicate[string, byte](func(s string, b byte) (bool, error) {
		return len(s) > 0 && s[0] == b, nil
	})
	calls := 0
	short := ErrorableBiPredicate[string, byte](func(s string, _ byte) (bool, error) {
		calls++
		return len(s) < 4, nil
	})

	ok, err := startsWith.And(short)("abc", 'a')
	r.NoError(err)
	r.True(ok)
	r.Equal(1, calls)

	ok, err = startsWith.And(short)("xyz", 'a')
	r.NoError(err)
	r.False(ok)
	r.Equal(1, calls)

	ok, err = startsWith.Or(short)("abcdef", 'a')
	r.NoError(err)
	r.True(ok)
	r.Equal(1, calls)

	ok, err = startsWith.Or(short)("xyzzy", 'a')
	r.NoError(err)
	r.False(ok)
	r.Equal(2, calls)

	ok, err = startsWith.Negate()("abc", 'a')
	r.NoError(err)
	r.False(ok)

	failure := errors.New("failure")
	broken := ErrorableBiPredicate[string, byte](func(string, byte) (bool, error) { return true, failure })
	_, err = broken.And(short)("a", 'a')
	r.Same(failure, err)
	_, err = broken.Or(short)("a", 'a')
	r.Same(failure, err)
	_, err = broken.Negate()("a", 'a')
	r.Same(failure, err)
	r.Equal(2, calls)
}

func TestIsEqual(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ok, err := IsEqual("foo")("foo")
	r.NoError(err)
	r.True(ok)
	ok, _ = IsEqual("foo")("bar")
	r.False(ok)

	var nilPtr *int
	ok, _ = IsEqual(nilPtr)(nil)
	r.True(ok)
	one := 1
	ok, _ = IsEqual(nilPtr)(&one)
	r.False(ok)

	var nilErr error
	ok, _ = IsEqual(nilErr)(nil)
	r.True(ok)

	slice := IsEqual[any]([]int{1})
	ok, _ = slice("x")
	r.False(ok)
	r.Panics(func() { _, _ = slice([]int{1}) })
	ok, _ = IsDeepEqual[any]([]int{1})([]int{1})
	r.True(ok)
}

func TestIsDeepEqual(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	type row struct {
		ID    int
		Tags  []string
		notes string
	}

	ok, err := IsDeepEqual([]string{"a", "b"})([]string{"a", "b"})
	r.NoError(err)
	r.True(ok)
	ok, _ = IsDeepEqual([]string{"a"})([]string{"a", "b"})
	r.False(ok)

	var nilSlice []string
	ok, _ = IsDeepEqual(nilSlice)(nil)
	r.True(ok)

	ok, _ = IsDeepEqual(&row{ID: 1, Tags: []string{"x"}, notes: "a"}, cmpopts.IgnoreUnexported(row{}))(&row{ID: 1, Tags: []string{"x"}, notes: "b"})
	r.True(ok)
	ok, _ = IsDeepEqual(&row{ID: 1}, cmpopts.IgnoreUnexported(row{}))(&row{ID: 2})
	r.False(ok)
}

func TestPrimitivePredicates(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	positive := ErrorableDoublePredicate(func(f float64) (bool, error) { return f > 0, nil })
	small := ErrorableDoublePredicate(func(f float64) (bool, error) { return f < 1, nil })
	var unit DoublePredicate = positive.And(small).Unchecked()
	r.True(unit(0.5))
	r.False(unit(1.5))

	even := IntPredicate(func(i int) bool { return i%2 == 0 })
	ok, err := even.Checked().Negate()(3)
	r.NoError(err)
	r.True(ok)
}

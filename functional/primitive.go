// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package functional

// Numeric and boolean specializations. These are aliases, so each carries
// the methods of the generic shape it names.

type IntProducer = Producer[int]
type LongProducer = Producer[int64]
type DoubleProducer = Producer[float64]
type BooleanProducer = Producer[bool]
type ErrorableIntProducer = ErrorableProducer[int]
type ErrorableLongProducer = ErrorableProducer[int64]
type ErrorableDoubleProducer = ErrorableProducer[float64]
type ErrorableBooleanProducer = ErrorableProducer[bool]

type IntConsumer = Consumer[int]
type LongConsumer = Consumer[int64]
type DoubleConsumer = Consumer[float64]
type ErrorableIntConsumer = ErrorableConsumer[int]
type ErrorableLongConsumer = ErrorableConsumer[int64]
type ErrorableDoubleConsumer = ErrorableConsumer[float64]

type ObjIntConsumer[T any] = BiConsumer[T, int]
type ObjLongConsumer[T any] = BiConsumer[T, int64]
type ObjDoubleConsumer[T any] = BiConsumer[T, float64]
type ErrorableObjIntConsumer[T any] = ErrorableBiConsumer[T, int]
type ErrorableObjLongConsumer[T any] = ErrorableBiConsumer[T, int64]
type ErrorableObjDoubleConsumer[T any] = ErrorableBiConsumer[T, float64]

type IntPredicate = Predicate[int]
type LongPredicate = Predicate[int64]
type DoublePredicate = Predicate[float64]
type ErrorableIntPredicate = ErrorablePredicate[int]
type ErrorableLongPredicate = ErrorablePredicate[int64]
type ErrorableDoublePredicate = ErrorablePredicate[float64]

type IntFunction[V any] = Function[int, V]
type LongFunction[V any] = Function[int64, V]
type DoubleFunction[V any] = Function[float64, V]
type ErrorableIntFunction[V any] = ErrorableFunction[int, V]
type ErrorableLongFunction[V any] = ErrorableFunction[int64, V]
type ErrorableDoubleFunction[V any] = ErrorableFunction[float64, V]

type ToIntFunction[A any] = Function[A, int]
type ToLongFunction[A any] = Function[A, int64]
type ToDoubleFunction[A any] = Function[A, float64]
type ErrorableToIntFunction[A any] = ErrorableFunction[A, int]
type ErrorableToLongFunction[A any] = ErrorableFunction[A, int64]
type ErrorableToDoubleFunction[A any] = ErrorableFunction[A, float64]

type ToIntBiFunction[A, B any] = BiFunction[A, B, int]
type ToLongBiFunction[A, B any] = BiFunction[A, B, int64]
type ToDoubleBiFunction[A, B any] = BiFunction[A, B, float64]
type ErrorableToIntBiFunction[A, B any] = ErrorableBiFunction[A, B, int]
type ErrorableToLongBiFunction[A, B any] = ErrorableBiFunction[A, B, int64]
type ErrorableToDoubleBiFunction[A, B any] = ErrorableBiFunction[A, B, float64]

type IntToLongFunction = Function[int, int64]
type IntToDoubleFunction = Function[int, float64]
type LongToIntFunction = Function[int64, int]
type LongToDoubleFunction = Function[int64, float64]
type DoubleToIntFunction = Function[float64, int]
type DoubleToLongFunction = Function[float64, int64]
type ErrorableIntToLongFunction = ErrorableFunction[int, int64]
type ErrorableIntToDoubleFunction = ErrorableFunction[int, float64]
type ErrorableLongToIntFunction = ErrorableFunction[int64, int]
type ErrorableLongToDoubleFunction = ErrorableFunction[int64, float64]
type ErrorableDoubleToIntFunction = ErrorableFunction[float64, int]
type ErrorableDoubleToLongFunction = ErrorableFunction[float64, int64]

type IntUnaryOperator = UnaryOperator[int]
type LongUnaryOperator = UnaryOperator[int64]
type DoubleUnaryOperator = UnaryOperator[float64]
type ErrorableIntUnaryOperator = ErrorableUnaryOperator[int]
type ErrorableLongUnaryOperator = ErrorableUnaryOperator[int64]
type ErrorableDoubleUnaryOperator = ErrorableUnaryOperator[float64]

type IntBinaryOperator = BinaryOperator[int]
type LongBinaryOperator = BinaryOperator[int64]
type DoubleBinaryOperator = BinaryOperator[float64]
type ErrorableIntBinaryOperator = ErrorableBinaryOperator[int]
type ErrorableLongBinaryOperator = ErrorableBinaryOperator[int64]
type ErrorableDoubleBinaryOperator = ErrorableBinaryOperator[float64]

package observables

import (
	"context"
	"reflect"
)

// EqualFunc returns true if current is considered equal to previous.
type EqualFunc[T any] func(previous T, current T) bool

// DistinctUntilChanged returns an operator that only produces elements that are not identical to
// the previously produced element.
// Elements are compared using ==, except that NaN is considered identical to NaN. Pointers are compared
// by address, so distinct objects with equal contents are all produced. Interface values holding slices,
// maps, or funcs are never considered identical.
func DistinctUntilChanged[T comparable]() Operator[T] {
	return Must(DistinctUntilChangedFunc[T](identical[T]))
}

// DistinctUntilChangedFunc returns an operator that only produces elements for which equal returns false
// when compared against the previously produced element. The first element is always produced.
// equal is called at most once per element, with the previously produced element as its first argument.
func DistinctUntilChangedFunc[T any](equal EqualFunc[T]) (Operator[T], error) {
	if equal == nil {
		return nil, notFunction("DistinctUntilChanged", "comparator")
	}

	return func(source Observable[T]) (Observable[T], error) {
		if err := CheckObservable("DistinctUntilChanged", "source", source); err != nil {
			return nil, err
		}

		return Create(func(ctx context.Context, sub Observer[T]) {
			var previous T

			hasPrevious := false

			source.Subscribe(ctx, ObserverFuncs[T]{
				OnNext: func(elem T) {
					if hasPrevious && equal(previous, elem) {
						return
					}

					previous, hasPrevious = elem, true

					sub.Next(elem)
				},
				OnComplete: sub.Complete,
				OnError:    sub.Error,
			})
		}), nil
	}, nil
}

// identical returns true if a == b, or if both a and b are NaN.
// Values holding a dynamic value that cannot be compared, such as a slice in an interface, are never identical.
func identical[T comparable](a T, b T) bool {
	if !comparableValue(a) || !comparableValue(b) {
		return false
	}

	// NaN is the only value not equal to itself
	return a == b || (a != a && b != b)
}

func comparableValue(v any) bool {
	// nil interface
	if v == nil {
		return true
	}

	return reflect.ValueOf(v).Comparable()
}

package observables

import (
	"context"
	"math"
)

// Take returns an operator that produces the first count elements produced by the source observable,
// and then completes, even if the source observable would produce more elements.
// The count is interpreted when the operator is applied: a count of 0 or less, or NaN, returns Empty,
// an infinite count returns the source observable itself, and a fractional count is rounded up.
func Take[T any, N Number](count N) Operator[T] {
	return func(source Observable[T]) (Observable[T], error) {
		if err := CheckObservable("Take", "source", source); err != nil {
			return nil, err
		}

		kind, n := classifyCount(count)

		switch kind {
		case countZero, countNone:
			return Empty[T](), nil

		case countInfinite:
			return source, nil
		}

		n = math.Ceil(n)

		return Create(func(ctx context.Context, sub Observer[T]) {
			seen := float64(0)

			source.Subscribe(ctx, ObserverFuncs[T]{
				OnNext: func(elem T) {
					seen++
					if seen > n {
						return
					}

					sub.Next(elem)

					// a reentrant delivery during Next may have advanced seen past n already
					if n <= seen {
						sub.Complete()
					}
				},
				OnComplete: sub.Complete,
				OnError:    sub.Error,
			})
		}), nil
	}
}

package observables

import "context"

// IgnoreElements returns an operator that ignores all elements produced by the source observable.
// Completion and failure of the source observable are passed through unchanged.
func IgnoreElements[T any]() Operator[T] {
	return func(source Observable[T]) (Observable[T], error) {
		if err := CheckObservable("IgnoreElements", "source", source); err != nil {
			return nil, err
		}

		return Create(func(ctx context.Context, sub Observer[T]) {
			source.Subscribe(ctx, ObserverFuncs[T]{
				OnComplete: sub.Complete,
				OnError:    sub.Error,
			})
		}), nil
	}
}

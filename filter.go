package observables

import "context"

// PredicateFunc returns true if elem matches a predicate.
// The index is the 0-based index of elem, in the order produced by the source observable.
type PredicateFunc[T any] func(elem T, index uint64) bool

// FuncPredicate returns a predicate that calls pred for each element, ignoring its index.
func FuncPredicate[T any](pred func(elem T) bool) PredicateFunc[T] {
	return func(elem T, _ uint64) bool {
		return pred(elem)
	}
}

// Filter returns an operator that calls pred for each element produced by the source observable,
// and only produces elements for which pred returns true.
// Completion and failure of the source observable are passed through unchanged.
func Filter[T any](pred PredicateFunc[T]) (Operator[T], error) {
	if pred == nil {
		return nil, notFunction("Filter", "predicate")
	}

	return func(source Observable[T]) (Observable[T], error) {
		if err := CheckObservable("Filter", "source", source); err != nil {
			return nil, err
		}

		return Create(func(ctx context.Context, sub Observer[T]) {
			index := uint64(0)

			source.Subscribe(ctx, ObserverFuncs[T]{
				OnNext: func(elem T) {
					// advance first, so that reentrant deliveries see the next index
					elemIndex := index
					index++

					if pred(elem, elemIndex) {
						sub.Next(elem)
					}
				},
				OnComplete: sub.Complete,
				OnError:    sub.Error,
			})
		}), nil
	}, nil
}

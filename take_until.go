package observables

import "context"

// TakeUntil returns an operator that produces the elements produced by the source observable until
// notifier produces its first element, at which point the new observable completes.
// If notifier completes without producing an element, it is ignored. If notifier fails, the new
// observable fails with the same error. Whichever terminal event arrives first wins.
//
// notifier is subscribed to before the source observable, using the same context, so canceling a
// subscription cancels both.
func TakeUntil[T any, N any](notifier Observable[N]) (Operator[T], error) {
	if err := CheckObservable("TakeUntil", "notifier", notifier); err != nil {
		return nil, err
	}

	return func(source Observable[T]) (Observable[T], error) {
		if err := CheckObservable("TakeUntil", "source", source); err != nil {
			return nil, err
		}

		return Create(func(ctx context.Context, sub Observer[T]) {
			notifier.Subscribe(ctx, ObserverFuncs[N]{
				OnNext: func(N) {
					sub.Complete()
				},
				OnError: sub.Error,
			})

			source.Subscribe(ctx, sub)
		}), nil
	}, nil
}

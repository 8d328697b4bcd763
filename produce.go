package observables

import (
	"context"

	"golang.org/x/exp/slices"
)

type emptyObservable[T any] struct{}

type neverObservable[T any] struct{}

// Of returns an observable that produces the given elements, in order, and then completes.
func Of[T any](elems ...T) Observable[T] {
	elems = slices.Clone(elems)

	return Create(func(ctx context.Context, sub Observer[T]) {
		for _, elem := range elems {
			sub.Next(elem)

			if contextDone(ctx) {
				return
			}
		}

		sub.Complete()
	})
}

// Empty returns an observable that completes immediately without producing any elements.
// All observables returned by Empty for the same type T are equal.
func Empty[T any]() Observable[T] {
	return emptyObservable[T]{}
}

// Never returns an observable that never produces any elements, and never completes.
// All observables returned by Never for the same type T are equal.
func Never[T any]() Observable[T] {
	return neverObservable[T]{}
}

// Throw returns an observable that fails with err immediately.
func Throw[T any](err error) Observable[T] {
	return Create(func(_ context.Context, sub Observer[T]) {
		sub.Error(err)
	})
}

// FromChannel returns an observable that produces the elements received through ch, in order,
// completing when ch is closed.
// Elements are delivered from a separate goroutine. Concurrent subscriptions share ch, so each
// element is only delivered to one of them.
func FromChannel[T any](ch <-chan T) Observable[T] {
	return Create(func(ctx context.Context, sub Observer[T]) {
		go func() {
			for {
				select {
				case elem, ok := <-ch:
					if !ok {
						sub.Complete()
						return
					}

					sub.Next(elem)

				case <-ctx.Done():
					return
				}
			}
		}()
	})
}

// Concat returns an observable that produces the elements produced by the given observables, in order.
// Each observable is subscribed to once the previous one completed. If any of them fails,
// the new observable fails with the same error.
func Concat[T any](sources ...Observable[T]) Observable[T] {
	sources = slices.Clone(sources)

	return Create(func(ctx context.Context, sub Observer[T]) {
		var subscribe func(index int)

		subscribe = func(index int) {
			if index == len(sources) {
				sub.Complete()
				return
			}

			sources[index].Subscribe(ctx, ObserverFuncs[T]{
				OnNext: sub.Next,
				OnComplete: func() {
					subscribe(index + 1)
				},
				OnError: sub.Error,
			})
		}

		subscribe(0)
	})
}

// Subscribe implements Observable.
func (emptyObservable[T]) Subscribe(ctx context.Context, observer Observer[T]) {
	if contextDone(ctx) || observer == nil {
		return
	}

	observer.Complete()
}

// Subscribe implements Observable.
func (neverObservable[T]) Subscribe(_ context.Context, _ Observer[T]) {}

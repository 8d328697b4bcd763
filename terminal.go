package observables

import (
	"context"
	"errors"
	"sync"
)

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem, in the order produced by the observable.
// Calling cancel ends the subscription; no further elements are consumed.
type ConsumerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// The index is the 0-based index of elem, in the order produced by the observable.
type AccumulatorFunc[T any, A any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc A) A

// Each subscribes to source and calls each for each element it produces, blocking until source
// completes or fails, or ctx is done.
// If source fails, it returns the error. If ctx or each cancel the subscription, it returns the
// cause of the cancelation, or nil if the cause is ErrShortCircuit.
func Each[T any](ctx context.Context, source Observable[T], each ConsumerFunc[T]) error {
	if err := CheckObservable("Each", "source", source); err != nil {
		return err
	}

	if each == nil {
		return notFunction("Each", "each")
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	done := make(chan struct{})

	var err error

	// inflight counts running calls to each, so that Each can wait for an asynchronous source to
	// leave each before returning; each may reenter the source, so no lock is held while it runs
	mu := sync.Mutex{}
	idle := sync.NewCond(&mu)
	inflight := 0
	returned := false

	index := uint64(0)

	source.Subscribe(ctx, ObserverFuncs[T]{
		OnNext: func(elem T) {
			mu.Lock()

			if returned || contextDone(ctx) {
				mu.Unlock()
				return
			}

			inflight++
			elemIndex := index
			index++

			mu.Unlock()

			defer func() {
				mu.Lock()
				inflight--
				idle.Broadcast()
				mu.Unlock()
			}()

			each(ctx, cancel, elem, elemIndex)
		},
		OnComplete: func() {
			close(done)
		},
		OnError: func(e error) {
			err = e
			close(done)
		},
	})

	// source may have terminated and been canceled during Subscribe, termination takes precedence
	select {
	case <-done:
		return err
	default:
	}

	select {
	case <-done:
		return err

	case <-ctx.Done():
	}

	mu.Lock()

	for inflight > 0 {
		idle.Wait()
	}

	returned = true

	mu.Unlock()

	cause := context.Cause(ctx)
	if errors.Is(cause, ErrShortCircuit) {
		cause = nil
	}

	return cause
}

// Reduce calls reduce for each element produced by source, folding it into accumulator acc, returning the final accumulator.
// If source fails, or ctx or reduce cancel the subscription, it returns the accumulator so far, and the error as returned by Each.
func Reduce[T any, A any](ctx context.Context, source Observable[T], acc A, reduce AccumulatorFunc[T, A]) (A, error) {
	err := Each(ctx, source, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		acc = reduce(ctx, cancel, elem, index, acc)
	})

	return acc, err
}

// CollectSlice returns an accumulator that collects elements into a slice.
func CollectSlice[T any]() AccumulatorFunc[T, []T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64, acc []T) []T {
		return append(acc, elem)
	}
}

// ToSlice returns all elements produced by source, in order.
func ToSlice[T any](ctx context.Context, source Observable[T]) ([]T, error) {
	return Reduce(ctx, source, []T{}, CollectSlice[T]())
}

// Notifications returns the notifications of a single subscription to source, including its terminal event.
// A failure of source is recorded as a notification rather than returned.
func Notifications[T any](ctx context.Context, source Observable[T]) ([]Notification[T], error) {
	materialized, err := Materialize(source)
	if err != nil {
		return nil, err
	}

	return ToSlice(ctx, materialized)
}

// AnyMatch returns true as soon as pred returns true for an element produced by source, that is, an element matches.
// If an element matches, it cancels the subscription using ErrShortCircuit.
func AnyMatch[T any](ctx context.Context, source Observable[T], pred PredicateFunc[T]) (bool, error) {
	anyMatch := false

	err := Each(ctx, source, func(_ context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if !pred(elem, index) {
			return
		}

		anyMatch = true

		cancel(ErrShortCircuit)
	})

	return anyMatch, err
}

// AllMatch returns true if pred returns true for all elements produced by source, that is, all elements match.
// If any element does not match, it cancels the subscription using ErrShortCircuit.
func AllMatch[T any](ctx context.Context, source Observable[T], pred PredicateFunc[T]) (bool, error) {
	allMatch := true

	err := Each(ctx, source, func(_ context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if pred(elem, index) {
			return
		}

		allMatch = false

		cancel(ErrShortCircuit)
	})

	return allMatch, err
}

// Count returns the number of elements produced by source.
func Count[T any](ctx context.Context, source Observable[T]) (uint64, error) {
	count := uint64(0)

	err := Each(ctx, source, func(_ context.Context, _ context.CancelCauseFunc, _ T, _ uint64) {
		count++
	})

	return count, err
}

package observables

import "context"

// Observer receives the events of a subscription.
// Next is called for each value, followed by at most one call to either Complete or Error.
type Observer[T any] interface {
	// Next receives the next value.
	Next(elem T)

	// Complete is called when the observable completed normally.
	Complete()

	// Error is called when the observable failed with err.
	Error(err error)
}

// Observable is a lazy, push-based producer of values.
type Observable[T any] interface {
	// Subscribe starts a new, independent run of the observable, delivering its events to observer
	// as long as ctx is not done. Events may be delivered synchronously, before Subscribe returns,
	// or asynchronously, but never concurrently.
	Subscribe(ctx context.Context, observer Observer[T])
}

// ProduceFunc produces the events of a single subscription, delivering them to sub.
// ctx is canceled as soon as sub received a terminal event, or the subscription is canceled.
// Any observable that ProduceFunc subscribes to internally should be subscribed to using ctx.
type ProduceFunc[T any] func(ctx context.Context, sub Observer[T])

// Operator maps a source observable to a derived observable.
// It returns an error wrapping ErrInvalidArgument if source cannot be used.
type Operator[T any] func(source Observable[T]) (Observable[T], error)

// ObserverFuncs implements Observer using optional callbacks.
// Callbacks that are nil are ignored.
type ObserverFuncs[T any] struct {
	OnNext     func(elem T)
	OnComplete func()
	OnError    func(err error)
}

type observable[T any] struct {
	produce ProduceFunc[T]
}

// subscriber guards an Observer for the duration of one subscription.
// It drops events after a terminal event or cancellation, and delivers at most one terminal event.
type subscriber[T any] struct {
	ctx      context.Context
	cancel   context.CancelCauseFunc
	observer Observer[T]
}

var _ Observer[any] = ObserverFuncs[any]{}

// Create returns a cold observable that calls produce for each subscription.
// Observables returned by Create compare equal only to themselves.
func Create[T any](produce ProduceFunc[T]) Observable[T] {
	return &observable[T]{
		produce: produce,
	}
}

// Pipe applies ops to source, in order, returning the resulting observable.
func Pipe[T any](source Observable[T], ops ...Operator[T]) (Observable[T], error) {
	if err := CheckObservable("Pipe", "source", source); err != nil {
		return nil, err
	}

	for _, op := range ops {
		if op == nil {
			return nil, notFunction("Pipe", "operator")
		}

		var err error

		source, err = op(source)
		if err != nil {
			return nil, err
		}
	}

	return source, nil
}

// Must returns v if err is nil, and panics otherwise.
// It is intended for pipelines that are known to be valid, such as package-level variables.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}

	return v
}

// Subscribe implements Observable.
func (o *observable[T]) Subscribe(ctx context.Context, observer Observer[T]) {
	if contextDone(ctx) {
		return
	}

	if observer == nil {
		observer = ObserverFuncs[T]{}
	}

	ctx, cancel := context.WithCancelCause(ctx)

	sub := &subscriber[T]{
		ctx:      ctx,
		cancel:   cancel,
		observer: observer,
	}

	defer sub.recoverPanic()

	o.produce(ctx, sub)
}

// Next implements Observer.
func (s *subscriber[T]) Next(elem T) {
	if contextDone(s.ctx) {
		return
	}

	defer s.recoverPanic()

	s.observer.Next(elem)
}

// Complete implements Observer.
func (s *subscriber[T]) Complete() {
	if contextDone(s.ctx) {
		return
	}

	// cancel first so that upstream subscriptions stop before the observer sees the event
	s.cancel(errTerminated)

	s.observer.Complete()
}

// Error implements Observer.
func (s *subscriber[T]) Error(err error) {
	if contextDone(s.ctx) {
		return
	}

	s.cancel(errTerminated)

	s.observer.Error(err)
}

// recoverPanic converts a panic into an error event.
// Panics after the subscription has ended are propagated unchanged.
func (s *subscriber[T]) recoverPanic() {
	r := recover()
	if r == nil {
		return
	}

	if contextDone(s.ctx) {
		panic(r)
	}

	s.Error(&PanicError{Value: r})
}

// Next implements Observer.
func (o ObserverFuncs[T]) Next(elem T) {
	if o.OnNext != nil {
		o.OnNext(elem)
	}
}

// Complete implements Observer.
func (o ObserverFuncs[T]) Complete() {
	if o.OnComplete != nil {
		o.OnComplete()
	}
}

// Error implements Observer.
func (o ObserverFuncs[T]) Error(err error) {
	if o.OnError != nil {
		o.OnError(err)
	}
}

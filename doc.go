// Package observables provides filtering operations on push-based observable streams.
// An Observable delivers values to an Observer, followed by at most one terminal event:
// normal completion, or an error.
//
// Observables are constructed by sources such as Of, FromChannel, or Create, which can push
// elements from slices, channels, or any arbitrary producer.
//
// Elements may then be filtered using operators such as Filter, DistinctUntilChanged, Drop,
// Take, IgnoreElements, and TakeUntil. Operators are composed left-to-right using Pipe.
// Operators never modify their source, they wrap it.
//
// Finally, the elements are consumed by terminal operations such as Each, Reduce, or ToSlice,
// or by subscribing an Observer directly.
//
// Every subscription receives a context.Context, which acts as its cancellation token.
// Canceling the context stops all further deliveries, and cancels every subscription that
// operators made internally using the same context. Operators deliver synchronously on the
// caller's stack, so an Observer may reenter the stream (for example, by pushing another value
// into a Subject) before the delivery that invoked it has returned.
//
// Observables are always lazy and cold: nothing happens until Subscribe is called, and every
// subscription is an independent run with its own state.
package observables

package observables

import "context"

// NotificationKind is the kind of event recorded in a Notification.
type NotificationKind int

const (
	// NextKind indicates a value.
	NextKind NotificationKind = iota

	// CompleteKind indicates normal completion.
	CompleteKind

	// ErrorKind indicates a failure.
	ErrorKind
)

// Notification records a single event of a subscription.
type Notification[T any] struct {
	// Kind is the kind of event.
	Kind NotificationKind

	// Value is the value of a NextKind notification.
	Value T

	// Err is the error of an ErrorKind notification.
	Err error
}

// NextNotification returns a notification for value elem.
func NextNotification[T any](elem T) Notification[T] {
	return Notification[T]{Kind: NextKind, Value: elem}
}

// CompleteNotification returns a notification for normal completion.
func CompleteNotification[T any]() Notification[T] {
	return Notification[T]{Kind: CompleteKind}
}

// ErrorNotification returns a notification for failure err.
func ErrorNotification[T any](err error) Notification[T] {
	return Notification[T]{Kind: ErrorKind, Err: err}
}

// Materialize returns an observable that produces a notification for each event of source,
// including its terminal event, and then completes.
func Materialize[T any](source Observable[T]) (Observable[Notification[T]], error) {
	if err := CheckObservable("Materialize", "source", source); err != nil {
		return nil, err
	}

	return Create(func(ctx context.Context, sub Observer[Notification[T]]) {
		source.Subscribe(ctx, ObserverFuncs[T]{
			OnNext: func(elem T) {
				sub.Next(NextNotification(elem))
			},
			OnComplete: func() {
				sub.Next(CompleteNotification[T]())
				sub.Complete()
			},
			OnError: func(err error) {
				sub.Next(ErrorNotification[T](err))
				sub.Complete()
			},
		})
	}), nil
}

// Send delivers the event recorded in n to observer.
func (n Notification[T]) Send(observer Observer[T]) {
	switch n.Kind {
	case NextKind:
		observer.Next(n.Value)

	case CompleteKind:
		observer.Complete()

	case ErrorKind:
		observer.Error(n.Err)
	}
}

// String implements fmt.Stringer.
func (k NotificationKind) String() string {
	switch k {
	case NextKind:
		return "next"
	case CompleteKind:
		return "complete"
	case ErrorKind:
		return "error"
	default:
		return "unknown"
	}
}

package observables

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidArgument is wrapped by every error returned for a malformed operator argument.
// Such errors are returned when an operator or its mapper is called, never delivered through
// an observable's error channel.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrShortCircuit is a generic error used to short-circuit a terminal operation by canceling its context.
var ErrShortCircuit = errors.New("short circuit")

// Argument error reasons.
const (
	reasonNotObservable = "not an observable"
	reasonNotFunction   = "not a function"
)

// An ArgumentError reports that an operator was configured or applied with an invalid argument.
type ArgumentError struct {
	// Op is the name of the operator that rejected the argument.
	Op string

	// Param is the name of the rejected parameter.
	Param string

	// Reason describes why the argument was rejected.
	Reason string
}

// A PanicError is delivered through an observable's error channel when handling a value panics,
// for example because a predicate or comparator panicked.
type PanicError struct {
	// Value is the value passed to panic.
	Value any
}

// CheckObservable returns an ArgumentError for operator op if o is nil, including a nil pointer
// stored in the interface, and nil otherwise.
func CheckObservable[T any](op string, param string, o Observable[T]) error {
	if isNil(o) {
		return notObservable(op, param)
	}

	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func notObservable(op string, param string) error {
	return &ArgumentError{Op: op, Param: param, Reason: reasonNotObservable}
}

func notFunction(op string, param string) error {
	return &ArgumentError{Op: op, Param: param, Reason: reasonNotFunction}
}

// Error implements error.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s is %s", e.Op, ErrInvalidArgument, e.Param, e.Reason)
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic while handling value: %v", e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

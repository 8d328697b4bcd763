package observables

import (
	"context"
	"errors"
)

// errTerminated is the cause used to cancel a subscription's context once it delivered
// its terminal event.
var errTerminated = errors.New("subscription terminated")

// contextDone returns true if ctx.Err() != nil.
func contextDone(ctx context.Context) bool {
	return ctx.Err() != nil
}

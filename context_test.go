package observables

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestContextDone(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	is.True(!contextDone(ctx))

	cancel()
	is.True(contextDone(ctx))
}

func TestContextDone_Terminated(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())

	cancel(errTerminated)

	is.True(contextDone(ctx))
	is.True(errors.Is(context.Cause(ctx), errTerminated))
	is.True(errors.Is(ctx.Err(), context.Canceled))
}

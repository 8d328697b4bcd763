package observables

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestTake(t *testing.T) {
	is := is.New(t)

	ints, err := Pipe(Of(1, 2, 3), Take[int](2))
	is.NoErr(err)

	rec := record(ints)

	is.Equal(rec.notifications, complete(1, 2))
}

func TestTake_Zero(t *testing.T) {
	is := is.New(t)

	ints, err := Pipe(Never[int](), Take[int](0))
	is.NoErr(err)

	is.True(ints == Empty[int]())
}

func TestTake_Negative(t *testing.T) {
	is := is.New(t)

	ints, err := Pipe(Never[int](), Take[int](-1))
	is.NoErr(err)

	is.True(ints == Empty[int]())
}

func TestTake_NaN(t *testing.T) {
	is := is.New(t)

	ints, err := Pipe(Create(func(context.Context, Observer[int]) {}), Take[int](math.NaN()))
	is.NoErr(err)

	is.True(ints == Empty[int]())
}

func TestTake_Infinity(t *testing.T) {
	is := is.New(t)

	source := Create(func(context.Context, Observer[int]) {})

	ints, err := Pipe(source, Take[int](math.Inf(1)))
	is.NoErr(err)

	is.True(ints == source)
}

func TestTake_LessThanCount(t *testing.T) {
	is := is.New(t)

	ints, err := Pipe(Of(1, 2), Take[int](5))
	is.NoErr(err)

	rec := record(ints)

	is.Equal(rec.notifications, complete(1, 2))
}

func TestTake_Fraction(t *testing.T) {
	is := is.New(t)

	ints, err := Pipe(Of(1, 2, 3, 4), Take[int](float32(2.5)))
	is.NoErr(err)

	rec := record(ints)

	is.Equal(rec.notifications, complete(1, 2, 3))
}

func TestTake_FractionForcesCompletion(t *testing.T) {
	is := is.New(t)

	subject := NewSubject[int]()

	ints, err := Pipe[int](subject, Take[int](2.5))
	is.NoErr(err)

	rec := &recorder[int]{}
	ints.Subscribe(context.Background(), rec)

	for i := 0; i < 10; i++ {
		subject.Next(i)
	}

	is.Equal(rec.notifications, complete(0, 1, 2))
	is.Equal(len(subject.subscribers), 0)
}

func TestTake_StopsSource(t *testing.T) {
	is := is.New(t)

	produced := 0

	source := Create(func(ctx context.Context, sub Observer[int]) {
		for i := 1; i <= 5; i++ {
			if contextDone(ctx) {
				return
			}

			produced++

			sub.Next(i)
		}

		sub.Complete()
	})

	ints, err := Pipe(source, Take[int](2))
	is.NoErr(err)

	rec := record(ints)

	is.Equal(rec.notifications, complete(1, 2))
	is.Equal(produced, 2)
}

func TestTake_Reentrant(t *testing.T) {
	is := is.New(t)

	subject := NewSubject[int]()

	ints, err := Pipe[int](subject, Take[int](2))
	is.NoErr(err)

	rec := &recorder[int]{}
	rec.onNext = func(elem int) {
		if elem == 2 {
			subject.Next(3)
		}
	}

	ints.Subscribe(context.Background(), rec)

	subject.Next(1)
	subject.Next(2)
	subject.Complete()

	is.Equal(rec.notifications, complete(1, 2))
}

func TestTake_ReentrantBeforeCount(t *testing.T) {
	is := is.New(t)

	subject := NewSubject[int]()

	ints, err := Pipe[int](subject, Take[int](2))
	is.NoErr(err)

	rec := &recorder[int]{}
	rec.onNext = func(elem int) {
		if elem == 1 {
			subject.Next(2)
			subject.Next(3)
		}
	}

	ints.Subscribe(context.Background(), rec)

	subject.Next(1)
	subject.Next(4)

	is.Equal(rec.notifications, complete(1, 2))
}

func TestTake_IndependentSubscriptions(t *testing.T) {
	is := is.New(t)

	ints, err := Pipe(Of(1, 2, 3), Take[int](1))
	is.NoErr(err)

	is.Equal(record(ints).notifications, complete(1))
	is.Equal(record(ints).notifications, complete(1))
}

func TestTake_Error(t *testing.T) {
	is := is.New(t)

	err := errors.New("error")

	ints, pipeErr := Pipe(Concat(Of(1), Throw[int](err)), Take[int](2))
	is.NoErr(pipeErr)

	rec := record(ints)

	is.Equal(rec.notifications, []Notification[int]{NextNotification(1), ErrorNotification[int](err)})
}

func TestTake_Cancel(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subject := NewSubject[int]()

	ints, err := Pipe[int](subject, Take[int](3))
	is.NoErr(err)

	rec := &recorder[int]{
		onNext: func(int) {
			cancel()
		},
	}

	ints.Subscribe(ctx, rec)

	subject.Next(1)
	subject.Next(2)
	subject.Complete()

	is.Equal(rec.notifications, []Notification[int]{NextNotification(1)})
}

func TestTake_InvalidArgument(t *testing.T) {
	is := is.New(t)

	for _, op := range []Operator[int]{Take[int](0), Take[int](math.Inf(1)), Take[int](2)} {
		_, err := op(nil)
		is.True(errors.Is(err, ErrInvalidArgument))
	}
}

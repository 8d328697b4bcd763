package observables

import (
	"errors"
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestDrop(t *testing.T) {
	is := is.New(t)

	ints, err := Pipe(Of(1, 2, 3, 4, 5), Drop[int](2))
	is.NoErr(err)

	rec := record(ints)

	is.Equal(rec.notifications, complete(3, 4, 5))
}

func TestDrop_Zero(t *testing.T) {
	is := is.New(t)

	source := Of(1, 2, 3)

	ints, err := Pipe(source, Drop[int](0))
	is.NoErr(err)

	is.True(ints == source)
}

func TestDrop_Negative(t *testing.T) {
	is := is.New(t)

	ints, err := Pipe(Of(1, 2, 3), Drop[int](-1))
	is.NoErr(err)

	is.True(ints == Empty[int]())

	ints, err = Pipe(Of(1, 2, 3), Drop[int](math.Inf(-1)))
	is.NoErr(err)

	is.True(ints == Empty[int]())
}

func TestDrop_NaN(t *testing.T) {
	is := is.New(t)

	ints, err := Pipe(Of(1, 2, 3), Drop[int](math.NaN()))
	is.NoErr(err)

	is.True(ints == Empty[int]())
}

func TestDrop_Infinity(t *testing.T) {
	is := is.New(t)

	ints, err := Pipe(Of(1, 2, 3), Drop[int](math.Inf(1)))
	is.NoErr(err)

	is.True(ints == Never[int]())
}

func TestDrop_Fraction(t *testing.T) {
	is := is.New(t)

	ints, err := Pipe(Of(1, 2, 3, 4, 5), Drop[int](2.5))
	is.NoErr(err)

	rec := record(ints)

	is.Equal(rec.notifications, complete(4, 5))
}

func TestDrop_MoreThanAvailable(t *testing.T) {
	is := is.New(t)

	ints, err := Pipe(Of(1, 2, 3), Drop[int](uint8(10)))
	is.NoErr(err)

	rec := record(ints)

	is.Equal(rec.notifications, complete[int]())
}

func TestDrop_Error(t *testing.T) {
	is := is.New(t)

	err := errors.New("error")

	ints, pipeErr := Pipe(Concat(Of(1, 2, 3), Throw[int](err)), Drop[int](2))
	is.NoErr(pipeErr)

	rec := record(ints)

	is.Equal(rec.notifications, []Notification[int]{NextNotification(3), ErrorNotification[int](err)})
}

func TestDrop_InvalidArgument(t *testing.T) {
	is := is.New(t)

	for _, op := range []Operator[int]{Drop[int](0), Drop[int](-1), Drop[int](math.Inf(1)), Drop[int](2)} {
		_, err := op(nil)
		is.True(errors.Is(err, ErrInvalidArgument))
	}
}

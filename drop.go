package observables

// Drop returns an operator that skips the first count elements produced by the source observable,
// and produces the remaining ones.
// The count is interpreted when the operator is applied: a count of 0 returns the source observable
// itself, a negative or NaN count returns Empty, and an infinite count returns Never.
func Drop[T any, N Number](count N) Operator[T] {
	return func(source Observable[T]) (Observable[T], error) {
		if err := CheckObservable("Drop", "source", source); err != nil {
			return nil, err
		}

		kind, n := classifyCount(count)

		switch kind {
		case countZero:
			return source, nil

		case countNone:
			return Empty[T](), nil

		case countInfinite:
			return Never[T](), nil
		}

		return Pipe(source, Must(Filter[T](func(_ T, index uint64) bool {
			return float64(index) >= n
		})))
	}
}

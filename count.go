package observables

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the type of element counts accepted by Drop and Take.
type Number interface {
	constraints.Integer | constraints.Float
}

// countKind classifies an element count.
type countKind int

const (
	countZero countKind = iota
	// countNone is a negative count, or NaN.
	countNone
	countInfinite
	countFinite
)

// classifyCount returns the kind of count n, and n as a float64.
func classifyCount[N Number](n N) (countKind, float64) {
	count := float64(n)

	switch {
	case math.IsNaN(count), count < 0:
		return countNone, count

	case count == 0:
		return countZero, count

	case math.IsInf(count, 1):
		return countInfinite, count

	default:
		return countFinite, count
	}
}

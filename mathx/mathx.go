package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// CentralDifference returns the symmetric difference quotient of two
// evaluations taken at +h and -h around the same point.
func CentralDifference[X constraints.Float](plusY, minusY, h X) X {
	return (plusY - minusY) / (2.0 * h)
}

func IsClose[X constraints.Float](a, b, tol X) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

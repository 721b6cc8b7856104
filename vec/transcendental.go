package vec

import (
	"math"

	"github.com/hupe1980/hypernum/kind"
)

func mapFloat[T kind.Scalar](v *Vector[T], f func(float64) float64) *Vector[float64] {
	out := deriveAs[float64](v, v.Len())
	if out.Err() == nil {
		for i, x := range v.data {
			out.data[i] = f(float64(x))
		}
	}
	return out
}

// Exp returns the element-wise natural exponential of v.
func Exp[T kind.Scalar](v *Vector[T]) *Vector[float64] {
	return mapFloat(v, math.Exp)
}

// Log returns the element-wise natural logarithm of v.
func Log[T kind.Scalar](v *Vector[T]) *Vector[float64] {
	return mapFloat(v, math.Log)
}

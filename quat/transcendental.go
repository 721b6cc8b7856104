package quat

import (
	"math"

	"github.com/hupe1980/hypernum/cplx"
	"github.com/hupe1980/hypernum/kind"
)

// polar splits q into modulus r, angle theta = acos(real/r) and the unit
// vector part u. A purely real q uses the i axis, so negative reals have
// theta = π along i.
func polar(q Quaternion[float64]) (r, theta float64, u [3]float64) {
	r = q.Modulus()
	v := math.Sqrt(q.I*q.I + q.J*q.J + q.K*q.K)
	if v == 0 {
		if q.Real < 0 {
			theta = math.Pi
		}
		return r, theta, [3]float64{1, 0, 0}
	}
	theta = math.Acos(math.Max(-1, math.Min(1, q.Real/r)))
	return r, theta, [3]float64{q.I / v, q.J / v, q.K / v}
}

func fromPolar(r, theta float64, u [3]float64) Quaternion[float64] {
	s := r * math.Sin(theta)
	return Quaternion[float64]{Real: r * math.Cos(theta), I: s * u[0], J: s * u[1], K: s * u[2]}
}

// Pow returns q^p = |q|^p · exp(p·θ·û), where q = |q|·exp(θ·û).
func (q Quaternion[T]) Pow(p float64) Quaternion[float64] {
	r, theta, u := polar(cast[float64](q))
	return fromPolar(math.Pow(r, p), p*theta, u)
}

// Exp returns e^q = e^real · (cos|v| + sin|v|·v/|v|) where v is the vector
// part of q.
func Exp[T kind.Scalar](q Quaternion[T]) Quaternion[float64] {
	f := cast[float64](q)
	v := math.Sqrt(f.I*f.I + f.J*f.J + f.K*f.K)
	e := math.Exp(f.Real)
	if v == 0 {
		return Quaternion[float64]{Real: e}
	}
	s := e * math.Sin(v) / v
	return Quaternion[float64]{Real: e * math.Cos(v), I: s * f.I, J: s * f.J, K: s * f.K}
}

// Log returns the principal logarithm ln|q| + θ·û.
func Log[T kind.Scalar](q Quaternion[T]) Quaternion[float64] {
	r, theta, u := polar(cast[float64](q))
	return Quaternion[float64]{Real: math.Log(r), I: theta * u[0], J: theta * u[1], K: theta * u[2]}
}

// PowQuaternion returns q^p = exp(log(q)·p). For a zero base the result
// follows math.Pow on the real part of p: 1 for zero, 0 for positive and
// +Inf for negative.
func PowQuaternion[S, U kind.Scalar](q Quaternion[S], p Quaternion[U]) Quaternion[float64] {
	if q.IsZero() {
		return Quaternion[float64]{Real: math.Pow(0, float64(p.Real))}
	}
	return Exp(hamilton(Log(q), cast[float64](p)))
}

// PowComplex returns q^c with c embedded in the real/i plane.
func PowComplex[S, U kind.Scalar](q Quaternion[S], c cplx.Complex[U]) Quaternion[float64] {
	return PowQuaternion(q, FromComplex(c))
}

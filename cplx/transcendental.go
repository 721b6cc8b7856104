package cplx

import (
	"math"

	"github.com/hupe1980/hypernum/kind"
)

// Rotate returns the unit rotor cos(angle) + sin(angle)·i.
func Rotate[T kind.Scalar](angle float64) Complex[T] {
	return Complex[T]{Real: T(math.Cos(angle)), Imag: T(math.Sin(angle))}
}

// Pow returns c^p computed in polar form r^p·e^{ipθ}.
func (c Complex[T]) Pow(p float64) Complex[float64] {
	r := math.Pow(c.Modulus(), p)
	theta := c.Arg() * p
	return Complex[float64]{Real: r * math.Cos(theta), Imag: r * math.Sin(theta)}
}

// PowComplex returns z^w = exp(w·log z), expanded analytically:
//
//	|z^w| = |z|^Re(w) · e^{-Im(w)·arg z}
//	arg(z^w) = Re(w)·arg z + Im(w)·ln|z|
//
// 0^0 is 1 and 0^w is 0 for any other w.
func PowComplex[S, U kind.Scalar](z Complex[S], w Complex[U]) Complex[float64] {
	if z.IsZero() {
		if w.IsZero() {
			return Complex[float64]{Real: 1}
		}
		return Complex[float64]{}
	}
	wr, wi := float64(w.Real), float64(w.Imag)
	theta := z.Arg()
	r := math.Pow(z.Modulus(), wr) * math.Exp(-wi*theta)
	phi := wr*theta + wi*math.Log(z.Modulus())
	return Complex[float64]{Real: r * math.Cos(phi), Imag: r * math.Sin(phi)}
}

// Sqrt returns the principal square root of c.
func Sqrt[T kind.Scalar](c Complex[T]) Complex[float64] {
	r := math.Sqrt(c.Modulus())
	theta := c.Arg() / 2
	return Complex[float64]{Real: r * math.Cos(theta), Imag: r * math.Sin(theta)}
}

// Log returns the principal natural logarithm ln|c| + arg(c)·i.
func Log[T kind.Scalar](c Complex[T]) Complex[float64] {
	return Complex[float64]{Real: math.Log(c.Modulus()), Imag: c.Arg()}
}

// Exp returns e^c.
func Exp[T kind.Scalar](c Complex[T]) Complex[float64] {
	e := math.Exp(float64(c.Real))
	im := float64(c.Imag)
	return Complex[float64]{Real: e * math.Cos(im), Imag: e * math.Sin(im)}
}

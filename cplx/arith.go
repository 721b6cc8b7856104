package cplx

import (
	"github.com/hupe1980/hypernum"
	"github.com/hupe1980/hypernum/kind"
)

func promoted[S, U kind.Scalar]() kind.Kind {
	return kind.Promote(kind.Of[S](), kind.Of[U]())
}

func quotient[S, U kind.Scalar]() kind.Kind {
	return kind.Quotient(kind.Of[S](), kind.Of[U]())
}

// divide computes num/den in float64 and stores the result as R. Integer
// results reject a zero divisor; float results follow IEEE-754.
func divide[R kind.Scalar](re, im, den float64) (Complex[R], error) {
	if den == 0 && kind.Of[R]().IsInteger() {
		return Complex[R]{}, hypernum.ErrDegenerateDivisor
	}
	return Complex[R]{Real: R(re / den), Imag: R(im / den)}, nil
}

// Add returns a + b as Complex[R].
func Add[R, S, U kind.Scalar](a Complex[S], b Complex[U]) Complex[R] {
	hypernum.Advise("cplx.Add", promoted[S, U](), kind.Of[R]())
	return Complex[R]{Real: R(a.Real) + R(b.Real), Imag: R(a.Imag) + R(b.Imag)}
}

// Sub returns a - b as Complex[R].
func Sub[R, S, U kind.Scalar](a Complex[S], b Complex[U]) Complex[R] {
	hypernum.Advise("cplx.Sub", promoted[S, U](), kind.Of[R]())
	return Complex[R]{Real: R(a.Real) - R(b.Real), Imag: R(a.Imag) - R(b.Imag)}
}

// Mul returns a · b as Complex[R].
func Mul[R, S, U kind.Scalar](a Complex[S], b Complex[U]) Complex[R] {
	hypernum.Advise("cplx.Mul", promoted[S, U](), kind.Of[R]())
	ar, ai, br, bi := R(a.Real), R(a.Imag), R(b.Real), R(b.Imag)
	return Complex[R]{Real: ar*br - ai*bi, Imag: ar*bi + ai*br}
}

// Quo returns a / b as Complex[R] using the conjugate over squared modulus
// rule. For an integer R a zero divisor yields ErrDegenerateDivisor.
func Quo[R, S, U kind.Scalar](a Complex[S], b Complex[U]) (Complex[R], error) {
	hypernum.Advise("cplx.Quo", quotient[S, U](), kind.Of[R]())
	ar, ai := float64(a.Real), float64(a.Imag)
	br, bi := float64(b.Real), float64(b.Imag)
	return divide[R](ar*br+ai*bi, ai*br-ar*bi, br*br+bi*bi)
}

// AddScalar returns c + v as Complex[R].
func AddScalar[R, S, U kind.Scalar](c Complex[S], v U) Complex[R] {
	hypernum.Advise("cplx.AddScalar", promoted[S, U](), kind.Of[R]())
	return Complex[R]{Real: R(c.Real) + R(v), Imag: R(c.Imag)}
}

// ScalarAdd returns v + c as Complex[R].
func ScalarAdd[R, S, U kind.Scalar](v U, c Complex[S]) Complex[R] {
	hypernum.Advise("cplx.ScalarAdd", promoted[U, S](), kind.Of[R]())
	return Complex[R]{Real: R(v) + R(c.Real), Imag: R(c.Imag)}
}

// SubScalar returns c - v as Complex[R].
func SubScalar[R, S, U kind.Scalar](c Complex[S], v U) Complex[R] {
	hypernum.Advise("cplx.SubScalar", promoted[S, U](), kind.Of[R]())
	return Complex[R]{Real: R(c.Real) - R(v), Imag: R(c.Imag)}
}

// ScalarSub returns v - c as Complex[R].
func ScalarSub[R, S, U kind.Scalar](v U, c Complex[S]) Complex[R] {
	hypernum.Advise("cplx.ScalarSub", promoted[U, S](), kind.Of[R]())
	return Complex[R]{Real: R(v) - R(c.Real), Imag: -R(c.Imag)}
}

// MulScalar returns c · v as Complex[R].
func MulScalar[R, S, U kind.Scalar](c Complex[S], v U) Complex[R] {
	hypernum.Advise("cplx.MulScalar", promoted[S, U](), kind.Of[R]())
	return Complex[R]{Real: R(c.Real) * R(v), Imag: R(c.Imag) * R(v)}
}

// ScalarMul returns v · c as Complex[R].
func ScalarMul[R, S, U kind.Scalar](v U, c Complex[S]) Complex[R] {
	hypernum.Advise("cplx.ScalarMul", promoted[U, S](), kind.Of[R]())
	return Complex[R]{Real: R(v) * R(c.Real), Imag: R(v) * R(c.Imag)}
}

// QuoScalar returns c / v as Complex[R].
func QuoScalar[R, S, U kind.Scalar](c Complex[S], v U) (Complex[R], error) {
	hypernum.Advise("cplx.QuoScalar", quotient[S, U](), kind.Of[R]())
	return divide[R](float64(c.Real), float64(c.Imag), float64(v))
}

// ScalarQuo returns v / c as Complex[R], computed as v · conj(c) / |c|².
func ScalarQuo[R, S, U kind.Scalar](v U, c Complex[S]) (Complex[R], error) {
	hypernum.Advise("cplx.ScalarQuo", quotient[U, S](), kind.Of[R]())
	cr, ci, fv := float64(c.Real), float64(c.Imag), float64(v)
	return divide[R](fv*cr, -fv*ci, cr*cr+ci*ci)
}

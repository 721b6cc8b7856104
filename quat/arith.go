package quat

import (
	"github.com/hupe1980/hypernum"
	"github.com/hupe1980/hypernum/cplx"
	"github.com/hupe1980/hypernum/kind"
)

func promoted[S, U kind.Scalar]() kind.Kind {
	return kind.Promote(kind.Of[S](), kind.Of[U]())
}

func quotient[S, U kind.Scalar]() kind.Kind {
	return kind.Quotient(kind.Of[S](), kind.Of[U]())
}

func lift[R, S kind.Scalar](c cplx.Complex[S]) Quaternion[R] {
	return Quaternion[R]{Real: R(c.Real), I: R(c.Imag)}
}

func hamilton[T kind.Scalar](a, b Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		Real: a.Real*b.Real - a.I*b.I - a.J*b.J - a.K*b.K,
		I:    a.Real*b.I + a.I*b.Real + a.J*b.K - a.K*b.J,
		J:    a.Real*b.J - a.I*b.K + a.J*b.Real + a.K*b.I,
		K:    a.Real*b.K + a.I*b.J - a.J*b.I + a.K*b.Real,
	}
}

// leftDivide computes conj(b)·a / |b|² in float64 and stores it as R.
func leftDivide[R kind.Scalar](a, b Quaternion[float64]) (Quaternion[R], error) {
	n := b.ModulusSquared()
	if n == 0 && kind.Of[R]().IsInteger() {
		return Quaternion[R]{}, hypernum.ErrDegenerateDivisor
	}
	p := hamilton(b.Conjugate(), a)
	return Quaternion[R]{
		Real: R(p.Real / n),
		I:    R(p.I / n),
		J:    R(p.J / n),
		K:    R(p.K / n),
	}, nil
}

// scalarDivide computes q / d in float64 and stores it as R.
func scalarDivide[R kind.Scalar](q Quaternion[float64], d float64) (Quaternion[R], error) {
	if d == 0 && kind.Of[R]().IsInteger() {
		return Quaternion[R]{}, hypernum.ErrDegenerateDivisor
	}
	return Quaternion[R]{Real: R(q.Real / d), I: R(q.I / d), J: R(q.J / d), K: R(q.K / d)}, nil
}

// Add returns a + b as Quaternion[R].
func Add[R, S, U kind.Scalar](a Quaternion[S], b Quaternion[U]) Quaternion[R] {
	hypernum.Advise("quat.Add", promoted[S, U](), kind.Of[R]())
	return cast[R](a).Add(cast[R](b))
}

// Sub returns a - b as Quaternion[R].
func Sub[R, S, U kind.Scalar](a Quaternion[S], b Quaternion[U]) Quaternion[R] {
	hypernum.Advise("quat.Sub", promoted[S, U](), kind.Of[R]())
	return cast[R](a).Sub(cast[R](b))
}

// Mul returns the Hamilton product a · b as Quaternion[R].
func Mul[R, S, U kind.Scalar](a Quaternion[S], b Quaternion[U]) Quaternion[R] {
	hypernum.Advise("quat.Mul", promoted[S, U](), kind.Of[R]())
	return hamilton(cast[R](a), cast[R](b))
}

// Quo returns Inv(b) · a as Quaternion[R].
func Quo[R, S, U kind.Scalar](a Quaternion[S], b Quaternion[U]) (Quaternion[R], error) {
	hypernum.Advise("quat.Quo", quotient[S, U](), kind.Of[R]())
	return leftDivide[R](cast[float64](a), cast[float64](b))
}

// Inv returns conj(q) / |q|² as Quaternion[R].
func Inv[R, S kind.Scalar](q Quaternion[S]) (Quaternion[R], error) {
	hypernum.Advise("quat.Inv", kind.Quotient(kind.Float32, kind.Of[S]()), kind.Of[R]())
	return leftDivide[R](Quaternion[float64]{Real: 1}, cast[float64](q))
}

// AddComplex returns q + c as Quaternion[R].
func AddComplex[R, S, U kind.Scalar](q Quaternion[S], c cplx.Complex[U]) Quaternion[R] {
	hypernum.Advise("quat.AddComplex", promoted[S, U](), kind.Of[R]())
	return cast[R](q).Add(lift[R](c))
}

// ComplexAdd returns c + q as Quaternion[R].
func ComplexAdd[R, S, U kind.Scalar](c cplx.Complex[U], q Quaternion[S]) Quaternion[R] {
	hypernum.Advise("quat.ComplexAdd", promoted[U, S](), kind.Of[R]())
	return lift[R](c).Add(cast[R](q))
}

// SubComplex returns q - c as Quaternion[R].
func SubComplex[R, S, U kind.Scalar](q Quaternion[S], c cplx.Complex[U]) Quaternion[R] {
	hypernum.Advise("quat.SubComplex", promoted[S, U](), kind.Of[R]())
	return cast[R](q).Sub(lift[R](c))
}

// ComplexSub returns c - q as Quaternion[R].
func ComplexSub[R, S, U kind.Scalar](c cplx.Complex[U], q Quaternion[S]) Quaternion[R] {
	hypernum.Advise("quat.ComplexSub", promoted[U, S](), kind.Of[R]())
	return lift[R](c).Sub(cast[R](q))
}

// MulComplex returns q · c as Quaternion[R].
func MulComplex[R, S, U kind.Scalar](q Quaternion[S], c cplx.Complex[U]) Quaternion[R] {
	hypernum.Advise("quat.MulComplex", promoted[S, U](), kind.Of[R]())
	return hamilton(cast[R](q), lift[R](c))
}

// ComplexMul returns c · q as Quaternion[R].
func ComplexMul[R, S, U kind.Scalar](c cplx.Complex[U], q Quaternion[S]) Quaternion[R] {
	hypernum.Advise("quat.ComplexMul", promoted[U, S](), kind.Of[R]())
	return hamilton(lift[R](c), cast[R](q))
}

// QuoComplex returns Inv(c) · q as Quaternion[R].
func QuoComplex[R, S, U kind.Scalar](q Quaternion[S], c cplx.Complex[U]) (Quaternion[R], error) {
	hypernum.Advise("quat.QuoComplex", quotient[S, U](), kind.Of[R]())
	return leftDivide[R](cast[float64](q), lift[float64](c))
}

// ComplexQuo returns Inv(q) · c as Quaternion[R].
func ComplexQuo[R, S, U kind.Scalar](c cplx.Complex[U], q Quaternion[S]) (Quaternion[R], error) {
	hypernum.Advise("quat.ComplexQuo", quotient[U, S](), kind.Of[R]())
	return leftDivide[R](lift[float64](c), cast[float64](q))
}

// AddScalar returns q + v as Quaternion[R].
func AddScalar[R, S, U kind.Scalar](q Quaternion[S], v U) Quaternion[R] {
	hypernum.Advise("quat.AddScalar", promoted[S, U](), kind.Of[R]())
	return cast[R](q).Add(FromReal(R(v)))
}

// ScalarAdd returns v + q as Quaternion[R].
func ScalarAdd[R, S, U kind.Scalar](v U, q Quaternion[S]) Quaternion[R] {
	hypernum.Advise("quat.ScalarAdd", promoted[U, S](), kind.Of[R]())
	return FromReal(R(v)).Add(cast[R](q))
}

// SubScalar returns q - v as Quaternion[R].
func SubScalar[R, S, U kind.Scalar](q Quaternion[S], v U) Quaternion[R] {
	hypernum.Advise("quat.SubScalar", promoted[S, U](), kind.Of[R]())
	return cast[R](q).Sub(FromReal(R(v)))
}

// ScalarSub returns v - q as Quaternion[R].
func ScalarSub[R, S, U kind.Scalar](v U, q Quaternion[S]) Quaternion[R] {
	hypernum.Advise("quat.ScalarSub", promoted[U, S](), kind.Of[R]())
	return FromReal(R(v)).Sub(cast[R](q))
}

// MulScalar returns q · v as Quaternion[R].
func MulScalar[R, S, U kind.Scalar](q Quaternion[S], v U) Quaternion[R] {
	hypernum.Advise("quat.MulScalar", promoted[S, U](), kind.Of[R]())
	return cast[R](q).Scale(R(v))
}

// ScalarMul returns v · q as Quaternion[R].
func ScalarMul[R, S, U kind.Scalar](v U, q Quaternion[S]) Quaternion[R] {
	hypernum.Advise("quat.ScalarMul", promoted[U, S](), kind.Of[R]())
	return cast[R](q).Scale(R(v))
}

// QuoScalar returns q / v as Quaternion[R].
func QuoScalar[R, S, U kind.Scalar](q Quaternion[S], v U) (Quaternion[R], error) {
	hypernum.Advise("quat.QuoScalar", quotient[S, U](), kind.Of[R]())
	return scalarDivide[R](cast[float64](q), float64(v))
}

// ScalarQuo returns v · Inv(q) as Quaternion[R].
func ScalarQuo[R, S, U kind.Scalar](v U, q Quaternion[S]) (Quaternion[R], error) {
	hypernum.Advise("quat.ScalarQuo", quotient[U, S](), kind.Of[R]())
	return leftDivide[R](FromReal(float64(v)), cast[float64](q))
}

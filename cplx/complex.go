package cplx

import (
	"math"

	"github.com/hupe1980/hypernum"
	"github.com/hupe1980/hypernum/kind"
)

// Complex is a complex number real + imag·i over T.
type Complex[T kind.Scalar] struct {
	Real T `json:"real"`
	Imag T `json:"imag"`
}

// New returns re + im·i.
func New[T kind.Scalar](re, im T) Complex[T] {
	return Complex[T]{Real: re, Imag: im}
}

// FromReal returns v + 0i.
func FromReal[T kind.Scalar](v T) Complex[T] {
	return Complex[T]{Real: v}
}

// Polar returns the complex number with modulus r and argument theta.
func Polar[T kind.Scalar](r, theta float64) Complex[T] {
	return Complex[T]{Real: T(r * math.Cos(theta)), Imag: T(r * math.Sin(theta))}
}

// I returns the imaginary unit.
func I() Complex[int] {
	return Complex[int]{Imag: 1}
}

// Convert casts each component of c to R.
func Convert[R, S kind.Scalar](c Complex[S]) Complex[R] {
	hypernum.Advise("cplx.Convert", kind.Of[S](), kind.Of[R]())
	return Complex[R]{Real: R(c.Real), Imag: R(c.Imag)}
}

// Add returns c + o.
func (c Complex[T]) Add(o Complex[T]) Complex[T] {
	return Complex[T]{Real: c.Real + o.Real, Imag: c.Imag + o.Imag}
}

// Sub returns c - o.
func (c Complex[T]) Sub(o Complex[T]) Complex[T] {
	return Complex[T]{Real: c.Real - o.Real, Imag: c.Imag - o.Imag}
}

// Mul returns c · o.
func (c Complex[T]) Mul(o Complex[T]) Complex[T] {
	return Complex[T]{
		Real: c.Real*o.Real - c.Imag*o.Imag,
		Imag: c.Real*o.Imag + c.Imag*o.Real,
	}
}

// Div returns c / o. See Quo for the handling of a zero divisor.
func (c Complex[T]) Div(o Complex[T]) (Complex[T], error) {
	return Quo[T](c, o)
}

// Scale returns c · v.
func (c Complex[T]) Scale(v T) Complex[T] {
	return Complex[T]{Real: c.Real * v, Imag: c.Imag * v}
}

// ScaleReal returns c · f, truncated back to T.
func (c Complex[T]) ScaleReal(f float64) Complex[T] {
	return Complex[T]{Real: T(float64(c.Real) * f), Imag: T(float64(c.Imag) * f)}
}

// Neg returns -c.
func (c Complex[T]) Neg() Complex[T] {
	return Complex[T]{Real: -c.Real, Imag: -c.Imag}
}

// Conjugate returns real - imag·i.
func (c Complex[T]) Conjugate() Complex[T] {
	return Complex[T]{Real: c.Real, Imag: -c.Imag}
}

// Inverse returns 1 / c.
func (c Complex[T]) Inverse() (Complex[T], error) {
	return ScalarQuo[T](T(1), c)
}

// Modulus returns |c|.
func (c Complex[T]) Modulus() float64 {
	return math.Hypot(float64(c.Real), float64(c.Imag))
}

// SquaredModulus returns |c|² in the element type.
func (c Complex[T]) SquaredModulus() T {
	return c.Real*c.Real + c.Imag*c.Imag
}

// Arg returns the argument of c in (-π, π].
func (c Complex[T]) Arg() float64 {
	return math.Atan2(float64(c.Imag), float64(c.Real))
}

// IsZero reports whether both components are exactly zero.
func (c Complex[T]) IsZero() bool {
	return c.Real == 0 && c.Imag == 0
}

// Equal reports whether c and o are equal within hypernum.Epsilon.
func (c Complex[T]) Equal(o Complex[T]) bool {
	return Equal(c, o)
}

// Equal reports whether a and b are equal within hypernum.Epsilon.
func Equal[S, U kind.Scalar](a Complex[S], b Complex[U]) bool {
	return hypernum.Near(float64(a.Real), float64(b.Real)) &&
		hypernum.Near(float64(a.Imag), float64(b.Imag))
}

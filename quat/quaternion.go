package quat

import (
	"math"

	"github.com/hupe1980/hypernum"
	"github.com/hupe1980/hypernum/cplx"
	"github.com/hupe1980/hypernum/kind"
)

// Quaternion is real + i·I + j·J + k·K over T.
type Quaternion[T kind.Scalar] struct {
	Real T `json:"real"`
	I    T `json:"i"`
	J    T `json:"j"`
	K    T `json:"k"`
}

// New returns re + i·I + j·J + k·K.
func New[T kind.Scalar](re, i, j, k T) Quaternion[T] {
	return Quaternion[T]{Real: re, I: i, J: j, K: k}
}

// FromReal embeds a scalar as v + 0i + 0j + 0k.
func FromReal[T kind.Scalar](v T) Quaternion[T] {
	return Quaternion[T]{Real: v}
}

// FromComplex embeds c in the real/i plane.
func FromComplex[T kind.Scalar](c cplx.Complex[T]) Quaternion[T] {
	return Quaternion[T]{Real: c.Real, I: c.Imag}
}

// J returns the basis element j.
func J() Quaternion[int] { return Quaternion[int]{J: 1} }

// K returns the basis element k.
func K() Quaternion[int] { return Quaternion[int]{K: 1} }

// Convert casts each component of q to R.
func Convert[R, S kind.Scalar](q Quaternion[S]) Quaternion[R] {
	hypernum.Advise("quat.Convert", kind.Of[S](), kind.Of[R]())
	return cast[R](q)
}

// ConvertComplex embeds c as a Quaternion[R].
func ConvertComplex[R, S kind.Scalar](c cplx.Complex[S]) Quaternion[R] {
	hypernum.Advise("quat.ConvertComplex", kind.Of[S](), kind.Of[R]())
	return Quaternion[R]{Real: R(c.Real), I: R(c.Imag)}
}

func cast[R, S kind.Scalar](q Quaternion[S]) Quaternion[R] {
	return Quaternion[R]{Real: R(q.Real), I: R(q.I), J: R(q.J), K: R(q.K)}
}

// Add returns q + o.
func (q Quaternion[T]) Add(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{Real: q.Real + o.Real, I: q.I + o.I, J: q.J + o.J, K: q.K + o.K}
}

// Sub returns q - o.
func (q Quaternion[T]) Sub(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{Real: q.Real - o.Real, I: q.I - o.I, J: q.J - o.J, K: q.K - o.K}
}

// Mul returns the Hamilton product q · o.
func (q Quaternion[T]) Mul(o Quaternion[T]) Quaternion[T] {
	return hamilton(q, o)
}

// Div returns Inv(o) · q.
func (q Quaternion[T]) Div(o Quaternion[T]) (Quaternion[T], error) {
	return Quo[T](q, o)
}

// Scale returns q · v.
func (q Quaternion[T]) Scale(v T) Quaternion[T] {
	return Quaternion[T]{Real: q.Real * v, I: q.I * v, J: q.J * v, K: q.K * v}
}

// ScaleReal returns q · f, truncated back to T.
func (q Quaternion[T]) ScaleReal(f float64) Quaternion[T] {
	return Quaternion[T]{
		Real: T(float64(q.Real) * f),
		I:    T(float64(q.I) * f),
		J:    T(float64(q.J) * f),
		K:    T(float64(q.K) * f),
	}
}

// Neg returns -q.
func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{Real: -q.Real, I: -q.I, J: -q.J, K: -q.K}
}

// Conjugate returns real - i·I - j·J - k·K.
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{Real: q.Real, I: -q.I, J: -q.J, K: -q.K}
}

// Inverse returns conj(q) / |q|².
func (q Quaternion[T]) Inverse() (Quaternion[T], error) {
	return Inv[T](q)
}

// Modulus returns |q|.
func (q Quaternion[T]) Modulus() float64 {
	r, i, j, k := float64(q.Real), float64(q.I), float64(q.J), float64(q.K)
	return math.Sqrt(r*r + i*i + j*j + k*k)
}

// ModulusSquared returns |q|² in the element type.
func (q Quaternion[T]) ModulusSquared() T {
	return q.Real*q.Real + q.I*q.I + q.J*q.J + q.K*q.K
}

// Vector returns the imaginary part (I, J, K).
func (q Quaternion[T]) Vector() [3]T {
	return [3]T{q.I, q.J, q.K}
}

// IsZero reports whether every component is exactly zero.
func (q Quaternion[T]) IsZero() bool {
	return q.Real == 0 && q.I == 0 && q.J == 0 && q.K == 0
}

// Equal reports whether q and o are equal within hypernum.Epsilon.
func (q Quaternion[T]) Equal(o Quaternion[T]) bool {
	return Equal(q, o)
}

// Equal reports whether a and b are equal within hypernum.Epsilon.
func Equal[S, U kind.Scalar](a Quaternion[S], b Quaternion[U]) bool {
	return hypernum.Near(float64(a.Real), float64(b.Real)) &&
		hypernum.Near(float64(a.I), float64(b.I)) &&
		hypernum.Near(float64(a.J), float64(b.J)) &&
		hypernum.Near(float64(a.K), float64(b.K))
}

package vec

import (
	"math"

	"github.com/hupe1980/hypernum"
	"github.com/hupe1980/hypernum/kind"
)

func promoted[S, U kind.Scalar]() kind.Kind {
	return kind.Promote(kind.Of[S](), kind.Of[U]())
}

func quotient[S, U kind.Scalar]() kind.Kind {
	return kind.Quotient(kind.Of[S](), kind.Of[U]())
}

// deriveAs returns an empty vector of n R elements sharing v's options.
func deriveAs[R, S any](v *Vector[S], n int) *Vector[R] {
	out := &Vector[R]{ring: resolve[R](), opts: v.opts}
	_ = out.reset(n)
	return out
}

func zipAs[R, S, U kind.Scalar](op string, a *Vector[S], b *Vector[U], f func(x, y R) R) (*Vector[R], error) {
	if err := sameSize(op, a.Len(), b.Len()); err != nil {
		return nil, err
	}
	hypernum.Advise(op, promoted[S, U](), kind.Of[R]())
	out := deriveAs[R](a, a.Len())
	if err := out.Err(); err != nil {
		return nil, err
	}
	for i := range out.data {
		out.data[i] = f(R(a.data[i]), R(b.data[i]))
	}
	return out, nil
}

// Convert returns a copy of v with every element converted to R.
func Convert[R, S kind.Scalar](v *Vector[S]) *Vector[R] {
	hypernum.Advise("vec.Convert", kind.Of[S](), kind.Of[R]())
	out := deriveAs[R](v, v.Len())
	if out.Err() == nil {
		for i, x := range v.data {
			out.data[i] = R(x)
		}
	}
	return out
}

// Add returns a + b as a Vector[R].
func Add[R, S, U kind.Scalar](a *Vector[S], b *Vector[U]) (*Vector[R], error) {
	return zipAs("vec.Add", a, b, func(x, y R) R { return x + y })
}

// Sub returns a - b as a Vector[R].
func Sub[R, S, U kind.Scalar](a *Vector[S], b *Vector[U]) (*Vector[R], error) {
	return zipAs("vec.Sub", a, b, func(x, y R) R { return x - y })
}

// Product returns the element-wise product of a and b as a Vector[R].
func Product[R, S, U kind.Scalar](a *Vector[S], b *Vector[U]) (*Vector[R], error) {
	return zipAs("vec.Product", a, b, func(x, y R) R { return x * y })
}

// Dot returns Σ a[i]·b[i] computed in R.
func Dot[R, S, U kind.Scalar](a *Vector[S], b *Vector[U]) (R, error) {
	var sum R
	if err := sameSize("vec.Dot", a.Len(), b.Len()); err != nil {
		return sum, err
	}
	hypernum.Advise("vec.Dot", promoted[S, U](), kind.Of[R]())
	for i := range a.data {
		sum += R(a.data[i]) * R(b.data[i])
	}
	return sum, nil
}

// Cross returns the right-handed cross product of two 3-vectors as a
// Vector[R].
func Cross[R, S, U kind.Scalar](a *Vector[S], b *Vector[U]) (*Vector[R], error) {
	if err := crossSizes(a.Len(), b.Len()); err != nil {
		return nil, err
	}
	hypernum.Advise("vec.Cross", promoted[S, U](), kind.Of[R]())
	out := deriveAs[R](a, 3)
	if err := out.Err(); err != nil {
		return nil, err
	}
	a0, a1, a2 := R(a.data[0]), R(a.data[1]), R(a.data[2])
	b0, b1, b2 := R(b.data[0]), R(b.data[1]), R(b.data[2])
	out.data[0] = a1*b2 - a2*b1
	out.data[1] = a2*b0 - a0*b2
	out.data[2] = a0*b1 - a1*b0
	return out, nil
}

// Scale returns v · x as a Vector[R].
func Scale[R, S, U kind.Scalar](v *Vector[S], x U) *Vector[R] {
	hypernum.Advise("vec.Scale", promoted[S, U](), kind.Of[R]())
	out := deriveAs[R](v, v.Len())
	if out.Err() == nil {
		for i, e := range v.data {
			out.data[i] = R(e) * R(x)
		}
	}
	return out
}

// Quo returns v / x element-wise as a Vector[R]. For an integer R a zero x
// yields ErrDegenerateDivisor.
func Quo[R, S, U kind.Scalar](v *Vector[S], x U) (*Vector[R], error) {
	hypernum.Advise("vec.Quo", quotient[S, U](), kind.Of[R]())
	if x == 0 && kind.Of[R]().IsInteger() {
		return nil, hypernum.ErrDegenerateDivisor
	}
	out := deriveAs[R](v, v.Len())
	if err := out.Err(); err != nil {
		return nil, err
	}
	d := float64(x)
	for i, e := range v.data {
		out.data[i] = R(float64(e) / d)
	}
	return out, nil
}

// ScalarQuo returns x / v as v.Inverse()·x, element by element.
func ScalarQuo[R, S, U kind.Scalar](x U, v *Vector[S]) (*Vector[R], error) {
	hypernum.Advise("vec.ScalarQuo", quotient[U, S](), kind.Of[R]())
	integer := kind.Of[R]().IsInteger()
	out := deriveAs[R](v, v.Len())
	if err := out.Err(); err != nil {
		return nil, err
	}
	n := float64(x)
	for i, e := range v.data {
		if e == 0 && integer {
			out.Release()
			return nil, hypernum.ErrDegenerateDivisor
		}
		out.data[i] = R(1 / float64(e) * n)
	}
	return out, nil
}

// Angle returns the angle between a and b in radians, or in degrees if deg
// is set. A zero-length operand yields ErrDegenerateDivisor.
func Angle[S, U kind.Scalar](a *Vector[S], b *Vector[U], deg bool) (float64, error) {
	if err := sameSize("vec.Angle", a.Len(), b.Len()); err != nil {
		return 0, err
	}
	var dot float64
	for i := range a.data {
		dot += float64(a.data[i]) * float64(b.data[i])
	}
	den := a.Magnitude() * b.Magnitude()
	if den == 0 {
		return 0, hypernum.ErrDegenerateDivisor
	}
	theta := math.Acos(math.Max(-1, math.Min(1, dot/den)))
	if deg {
		theta = theta * 180 / math.Pi
	}
	return theta, nil
}

// Equal reports whether a and b have the same length and pairwise equal
// elements within hypernum.Epsilon.
func Equal[S, U kind.Scalar](a *Vector[S], b *Vector[U]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.data {
		if !hypernum.Near(float64(a.data[i]), float64(b.data[i])) {
			return false
		}
	}
	return true
}

// AddInto adds src to dst element-wise in place, converting to R.
func AddInto[R, S kind.Scalar](dst *Vector[R], src *Vector[S]) error {
	if err := sameSize("vec.AddInto", dst.Len(), src.Len()); err != nil {
		return err
	}
	hypernum.Advise("vec.AddInto", promoted[R, S](), kind.Of[R]())
	for i := range dst.data {
		dst.data[i] += R(src.data[i])
	}
	return nil
}

// Assign replaces the elements of dst with src converted to R.
func Assign[R, S kind.Scalar](dst *Vector[R], src *Vector[S]) error {
	hypernum.Advise("vec.Assign", kind.Of[S](), kind.Of[R]())
	elems := make([]R, src.Len())
	for i, x := range src.data {
		elems[i] = R(x)
	}
	if err := dst.reset(len(elems)); err != nil {
		return err
	}
	copy(dst.data, elems)
	return nil
}

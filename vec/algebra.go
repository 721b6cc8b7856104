package vec

import (
	"github.com/hupe1980/hypernum"
	"github.com/hupe1980/hypernum/cplx"
	"github.com/hupe1980/hypernum/kind"
	"github.com/hupe1980/hypernum/quat"
)

// ToComplex returns the two-element vector v as real + imag·i.
func ToComplex[T kind.Scalar](v *Vector[T]) (cplx.Complex[T], error) {
	if err := sameSize("vec.ToComplex", v.Len(), 2); err != nil {
		return cplx.Complex[T]{}, err
	}
	return cplx.New(v.data[0], v.data[1]), nil
}

// MulComplex returns the vector of v[i]·c.
func MulComplex[R, S, U kind.Scalar](v *Vector[S], c cplx.Complex[U]) *Vector[cplx.Complex[R]] {
	hypernum.Advise("vec.MulComplex", promoted[S, U](), kind.Of[R]())
	out := deriveAs[cplx.Complex[R]](v, v.Len())
	if out.Err() == nil {
		re, im := R(c.Real), R(c.Imag)
		for i, e := range v.data {
			out.data[i] = cplx.New(R(e)*re, R(e)*im)
		}
	}
	return out
}

// QuoComplex returns the vector of v[i] / c. For an integer R a zero c
// yields ErrDegenerateDivisor.
func QuoComplex[R, S, U kind.Scalar](v *Vector[S], c cplx.Complex[U]) (*Vector[cplx.Complex[R]], error) {
	hypernum.Advise("vec.QuoComplex", quotient[S, U](), kind.Of[R]())
	cr, ci := float64(c.Real), float64(c.Imag)
	den := cr*cr + ci*ci
	if den == 0 && kind.Of[R]().IsInteger() {
		return nil, hypernum.ErrDegenerateDivisor
	}
	out := deriveAs[cplx.Complex[R]](v, v.Len())
	if err := out.Err(); err != nil {
		return nil, err
	}
	for i, e := range v.data {
		f := float64(e)
		out.data[i] = cplx.New(R(f*cr/den), R(-f*ci/den))
	}
	return out, nil
}

// ComplexQuo returns c / v, defined as v.Inverse()·c: the vector of
// (1/v[i])·c.
func ComplexQuo[R, S, U kind.Scalar](c cplx.Complex[U], v *Vector[S]) (*Vector[cplx.Complex[R]], error) {
	hypernum.Advise("vec.ComplexQuo", quotient[U, S](), kind.Of[R]())
	integer := kind.Of[R]().IsInteger()
	out := deriveAs[cplx.Complex[R]](v, v.Len())
	if err := out.Err(); err != nil {
		return nil, err
	}
	cr, ci := float64(c.Real), float64(c.Imag)
	for i, e := range v.data {
		if e == 0 && integer {
			out.Release()
			return nil, hypernum.ErrDegenerateDivisor
		}
		inv := 1 / float64(e)
		out.data[i] = cplx.New(R(inv*cr), R(inv*ci))
	}
	return out, nil
}

// MulQuaternion returns the vector of v[i]·q.
func MulQuaternion[R, S, U kind.Scalar](v *Vector[S], q quat.Quaternion[U]) *Vector[quat.Quaternion[R]] {
	hypernum.Advise("vec.MulQuaternion", promoted[S, U](), kind.Of[R]())
	out := deriveAs[quat.Quaternion[R]](v, v.Len())
	if out.Err() == nil {
		qr := quat.New(R(q.Real), R(q.I), R(q.J), R(q.K))
		for i, e := range v.data {
			out.data[i] = qr.Scale(R(e))
		}
	}
	return out
}

// QuoQuaternion returns the vector of v[i]·Inv(q). For an integer R a
// zero-norm q yields ErrDegenerateDivisor.
func QuoQuaternion[R, S, U kind.Scalar](v *Vector[S], q quat.Quaternion[U]) (*Vector[quat.Quaternion[R]], error) {
	hypernum.Advise("vec.QuoQuaternion", quotient[S, U](), kind.Of[R]())
	qf := quat.New(float64(q.Real), float64(q.I), float64(q.J), float64(q.K))
	den := qf.ModulusSquared()
	if den == 0 && kind.Of[R]().IsInteger() {
		return nil, hypernum.ErrDegenerateDivisor
	}
	out := deriveAs[quat.Quaternion[R]](v, v.Len())
	if err := out.Err(); err != nil {
		return nil, err
	}
	conj := qf.Conjugate()
	for i, e := range v.data {
		f := float64(e) / den
		out.data[i] = quat.New(R(f*conj.Real), R(f*conj.I), R(f*conj.J), R(f*conj.K))
	}
	return out, nil
}

// QuaternionQuo returns q / v, defined as v.Inverse()·q: the vector of
// (1/v[i])·q.
func QuaternionQuo[R, S, U kind.Scalar](q quat.Quaternion[U], v *Vector[S]) (*Vector[quat.Quaternion[R]], error) {
	hypernum.Advise("vec.QuaternionQuo", quotient[U, S](), kind.Of[R]())
	integer := kind.Of[R]().IsInteger()
	out := deriveAs[quat.Quaternion[R]](v, v.Len())
	if err := out.Err(); err != nil {
		return nil, err
	}
	qf := quat.New(float64(q.Real), float64(q.I), float64(q.J), float64(q.K))
	for i, e := range v.data {
		if e == 0 && integer {
			out.Release()
			return nil, hypernum.ErrDegenerateDivisor
		}
		inv := 1 / float64(e)
		out.data[i] = quat.New(R(inv*qf.Real), R(inv*qf.I), R(inv*qf.J), R(inv*qf.K))
	}
	return out, nil
}

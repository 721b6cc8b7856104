package vec

import (
	"math"

	"github.com/hupe1980/hypernum"
	"github.com/hupe1980/hypernum/kind"
	"github.com/hupe1980/hypernum/quat"
)

// Rotation returns the unit quaternion cos(angle/2) + sin(angle/2)·â, where â
// is axis normalized. A zero axis yields ErrDegenerateDivisor.
func Rotation[T kind.Scalar](axis Vec3[T], angle float64) (quat.Quaternion[float64], error) {
	mag := axis.Magnitude()
	if mag == 0 {
		return quat.Quaternion[float64]{}, hypernum.ErrDegenerateDivisor
	}
	s, c := math.Sincos(angle / 2)
	s /= mag
	return quat.New(c, s*float64(axis.X()), s*float64(axis.Y()), s*float64(axis.Z())), nil
}

// Rotate applies q to v with the conjugation q·v·q⁻¹, v embedded as a pure
// quaternion, and returns the vector part. q need not be a unit quaternion;
// a zero q yields ErrDegenerateDivisor.
func Rotate[R, S, U kind.Scalar](q quat.Quaternion[U], v Vec3[S]) (Vec3[R], error) {
	hypernum.Advise("vec.Rotate", promoted[U, S](), kind.Of[R]())
	qf := quat.New(float64(q.Real), float64(q.I), float64(q.J), float64(q.K))
	if qf.IsZero() {
		return Vec3[R]{}, hypernum.ErrDegenerateDivisor
	}
	inv, err := qf.Inverse()
	if err != nil {
		return Vec3[R]{}, err
	}
	p := quat.New(0, float64(v.X()), float64(v.Y()), float64(v.Z()))
	r := qf.Mul(p).Mul(inv)
	return NewVec3(R(r.I), R(r.J), R(r.K)), nil
}

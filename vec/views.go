package vec

import (
	"math"

	"github.com/hupe1980/hypernum"
	"github.com/hupe1980/hypernum/cplx"
	"github.com/hupe1980/hypernum/kind"
	"github.com/hupe1980/hypernum/quat"
)

// Vec2, Vec3 and Vec4 are fixed-arity views over a Vector. X, Y, Z and W
// read and write the same slots as At and Set on indices 0 to 3.
//
// A view created with AsVec2 (AsVec3, AsVec4) aliases its vector. If that
// vector is later shrunk, accessors on the view panic with
// *hypernum.ErrIndexOutOfRange. The zero value of a view is not usable.

// Vec2 is a two-element view.
type Vec2[T kind.Scalar] struct{ v *Vector[T] }

// Vec3 is a three-element view.
type Vec3[T kind.Scalar] struct{ v *Vector[T] }

// Vec4 is a four-element view.
type Vec4[T kind.Scalar] struct{ v *Vector[T] }

// NewVec2 returns a Vec2 backed by a fresh vector.
func NewVec2[T kind.Scalar](x, y T) Vec2[T] { return Vec2[T]{v: Of(x, y)} }

// NewVec3 returns a Vec3 backed by a fresh vector.
func NewVec3[T kind.Scalar](x, y, z T) Vec3[T] { return Vec3[T]{v: Of(x, y, z)} }

// NewVec4 returns a Vec4 backed by a fresh vector.
func NewVec4[T kind.Scalar](x, y, z, w T) Vec4[T] { return Vec4[T]{v: Of(x, y, z, w)} }

// Vec2FromComplex returns the view (real, imag).
func Vec2FromComplex[T kind.Scalar](c cplx.Complex[T]) Vec2[T] { return NewVec2(c.Real, c.Imag) }

// Vec3FromQuaternion returns the vector part (I, J, K) of q.
func Vec3FromQuaternion[T kind.Scalar](q quat.Quaternion[T]) Vec3[T] { return NewVec3(q.I, q.J, q.K) }

// AsVec2 returns a view aliasing v, which must have exactly two elements.
func AsVec2[T kind.Scalar](v *Vector[T]) (Vec2[T], error) {
	if err := sameSize("vec.AsVec2", v.Len(), 2); err != nil {
		return Vec2[T]{}, err
	}
	return Vec2[T]{v: v}, nil
}

// AsVec3 returns a view aliasing v, which must have exactly three elements.
func AsVec3[T kind.Scalar](v *Vector[T]) (Vec3[T], error) {
	if err := sameSize("vec.AsVec3", v.Len(), 3); err != nil {
		return Vec3[T]{}, err
	}
	return Vec3[T]{v: v}, nil
}

// AsVec4 returns a view aliasing v, which must have exactly four elements.
func AsVec4[T kind.Scalar](v *Vector[T]) (Vec4[T], error) {
	if err := sameSize("vec.AsVec4", v.Len(), 4); err != nil {
		return Vec4[T]{}, err
	}
	return Vec4[T]{v: v}, nil
}

func normalized[T kind.Scalar](xs []T) ([]T, error) {
	var sum float64
	for _, x := range xs {
		sum += float64(x) * float64(x)
	}
	mag := math.Sqrt(sum)
	if mag == 0 {
		return nil, hypernum.ErrDegenerateDivisor
	}
	hypernum.Advise("vec.Normalize", kind.Quotient(kind.Float32, kind.Of[T]()), kind.Of[T]())
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = T(float64(x) / mag)
	}
	return out, nil
}

func (w Vec2[T]) X() T { return *w.v.slot(0) }
func (w Vec2[T]) Y() T { return *w.v.slot(1) }

func (w Vec2[T]) SetX(x T) { *w.v.slot(0) = x }
func (w Vec2[T]) SetY(y T) { *w.v.slot(1) = y }

// Vector returns a copy of the view as a Vector.
func (w Vec2[T]) Vector() *Vector[T] { return w.v.Clone() }

func (w Vec2[T]) Add(o Vec2[T]) Vec2[T] { return NewVec2(w.X()+o.X(), w.Y()+o.Y()) }
func (w Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return NewVec2(w.X()-o.X(), w.Y()-o.Y()) }
func (w Vec2[T]) Scale(x T) Vec2[T]     { return NewVec2(w.X()*x, w.Y()*x) }
func (w Vec2[T]) Dot(o Vec2[T]) T       { return w.X()*o.X() + w.Y()*o.Y() }
func (w Vec2[T]) Magnitude() float64    { return w.v.Magnitude() }
func (w Vec2[T]) Equal(o Vec2[T]) bool  { return w.v.Equal(o.v) }
func (w Vec2[T]) String() string        { return w.v.String() }

// Normalize returns w / |w|.
func (w Vec2[T]) Normalize() (Vec2[T], error) {
	n, err := normalized(w.v.data)
	if err != nil {
		return Vec2[T]{}, err
	}
	return NewVec2(n[0], n[1]), nil
}

// Complex returns x + y·i.
func (w Vec2[T]) Complex() cplx.Complex[T] { return cplx.New(w.X(), w.Y()) }

// Rotate returns w rotated counter-clockwise by angle radians, computed as
// the complex product (x + y·i)·(cos angle + sin angle·i).
func (w Vec2[T]) Rotate(angle float64) Vec2[T] {
	return MulVec2[T](cplx.Rotate[float64](angle), w)
}

// MulVec2 returns c·v with v read as the complex number x + y·i.
func MulVec2[R, S, U kind.Scalar](c cplx.Complex[U], v Vec2[S]) Vec2[R] {
	hypernum.Advise("vec.MulVec2", promoted[U, S](), kind.Of[R]())
	cr, ci := float64(c.Real), float64(c.Imag)
	x, y := float64(v.X()), float64(v.Y())
	return NewVec2(R(cr*x-ci*y), R(cr*y+ci*x))
}

func (w Vec3[T]) X() T { return *w.v.slot(0) }
func (w Vec3[T]) Y() T { return *w.v.slot(1) }
func (w Vec3[T]) Z() T { return *w.v.slot(2) }

func (w Vec3[T]) SetX(x T) { *w.v.slot(0) = x }
func (w Vec3[T]) SetY(y T) { *w.v.slot(1) = y }
func (w Vec3[T]) SetZ(z T) { *w.v.slot(2) = z }

// Vector returns a copy of the view as a Vector.
func (w Vec3[T]) Vector() *Vector[T] { return w.v.Clone() }

func (w Vec3[T]) Add(o Vec3[T]) Vec3[T] { return NewVec3(w.X()+o.X(), w.Y()+o.Y(), w.Z()+o.Z()) }
func (w Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return NewVec3(w.X()-o.X(), w.Y()-o.Y(), w.Z()-o.Z()) }
func (w Vec3[T]) Scale(x T) Vec3[T]     { return NewVec3(w.X()*x, w.Y()*x, w.Z()*x) }
func (w Vec3[T]) Dot(o Vec3[T]) T       { return w.X()*o.X() + w.Y()*o.Y() + w.Z()*o.Z() }
func (w Vec3[T]) Magnitude() float64    { return w.v.Magnitude() }
func (w Vec3[T]) Equal(o Vec3[T]) bool  { return w.v.Equal(o.v) }
func (w Vec3[T]) String() string        { return w.v.String() }

// Normalize returns w / |w|.
func (w Vec3[T]) Normalize() (Vec3[T], error) {
	n, err := normalized(w.v.data)
	if err != nil {
		return Vec3[T]{}, err
	}
	return NewVec3(n[0], n[1], n[2]), nil
}

// Cross returns the right-handed cross product w × o.
func (w Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return NewVec3(
		w.Y()*o.Z()-w.Z()*o.Y(),
		w.Z()*o.X()-w.X()*o.Z(),
		w.X()*o.Y()-w.Y()*o.X(),
	)
}

// Quaternion embeds w as the pure quaternion 0 + x·i + y·j + z·k.
func (w Vec3[T]) Quaternion() quat.Quaternion[T] { return quat.New(0, w.X(), w.Y(), w.Z()) }

// Rotate returns w rotated by angle radians around axis.
// See Rotation and Rotate.
func (w Vec3[T]) Rotate(axis Vec3[T], angle float64) (Vec3[float64], error) {
	q, err := Rotation(axis, angle)
	if err != nil {
		return Vec3[float64]{}, err
	}
	return Rotate[float64](q, w)
}

func (w Vec4[T]) X() T { return *w.v.slot(0) }
func (w Vec4[T]) Y() T { return *w.v.slot(1) }
func (w Vec4[T]) Z() T { return *w.v.slot(2) }
func (w Vec4[T]) W() T { return *w.v.slot(3) }

func (w Vec4[T]) SetX(x T) { *w.v.slot(0) = x }
func (w Vec4[T]) SetY(y T) { *w.v.slot(1) = y }
func (w Vec4[T]) SetZ(z T) { *w.v.slot(2) = z }
func (w Vec4[T]) SetW(v T) { *w.v.slot(3) = v }

// Vector returns a copy of the view as a Vector.
func (w Vec4[T]) Vector() *Vector[T] { return w.v.Clone() }

func (w Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return NewVec4(w.X()+o.X(), w.Y()+o.Y(), w.Z()+o.Z(), w.W()+o.W())
}

func (w Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return NewVec4(w.X()-o.X(), w.Y()-o.Y(), w.Z()-o.Z(), w.W()-o.W())
}

func (w Vec4[T]) Scale(x T) Vec4[T] { return NewVec4(w.X()*x, w.Y()*x, w.Z()*x, w.W()*x) }

func (w Vec4[T]) Dot(o Vec4[T]) T {
	return w.X()*o.X() + w.Y()*o.Y() + w.Z()*o.Z() + w.W()*o.W()
}

func (w Vec4[T]) Magnitude() float64   { return w.v.Magnitude() }
func (w Vec4[T]) Equal(o Vec4[T]) bool { return w.v.Equal(o.v) }
func (w Vec4[T]) String() string       { return w.v.String() }

// Normalize returns w / |w|.
func (w Vec4[T]) Normalize() (Vec4[T], error) {
	n, err := normalized(w.v.data)
	if err != nil {
		return Vec4[T]{}, err
	}
	return NewVec4(n[0], n[1], n[2], n[3]), nil
}

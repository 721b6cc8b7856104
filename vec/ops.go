package vec

import (
	"math"

	"github.com/hupe1980/hypernum"
	"github.com/hupe1980/hypernum/kind"
)

func sameSize(op string, a, b int) error {
	if a != b {
		return &hypernum.ErrSizeMismatch{Op: op, Left: a, Right: b}
	}
	return nil
}

// zip returns a new vector whose i-th element is f(v[i], o[i]).
func (v *Vector[T]) zip(op string, o *Vector[T], f func(a, b T) T) (*Vector[T], error) {
	if err := sameSize(op, v.Len(), o.Len()); err != nil {
		return nil, err
	}
	out := v.derive(v.Len())
	if err := out.Err(); err != nil {
		return nil, err
	}
	for i := range out.data {
		out.data[i] = f(v.data[i], o.data[i])
	}
	return out, nil
}

// Assign replaces the elements of v with a copy of the elements of o.
// The length of v follows o.
func (v *Vector[T]) Assign(o *Vector[T]) error {
	if v == o {
		return nil
	}
	src := o.Slice()
	if err := v.reset(len(src)); err != nil {
		return err
	}
	copy(v.data, src)
	return nil
}

// AddAssign adds o to v element-wise in place.
func (v *Vector[T]) AddAssign(o *Vector[T]) error {
	if err := sameSize("vec.AddAssign", v.Len(), o.Len()); err != nil {
		return err
	}
	r := v.r()
	for i := range v.data {
		v.data[i] = r.add(v.data[i], o.data[i])
	}
	return nil
}

// SubAssign subtracts o from v element-wise in place.
func (v *Vector[T]) SubAssign(o *Vector[T]) error {
	if err := sameSize("vec.SubAssign", v.Len(), o.Len()); err != nil {
		return err
	}
	r := v.r()
	for i := range v.data {
		v.data[i] = r.sub(v.data[i], o.data[i])
	}
	return nil
}

// MulAssign multiplies v by o element-wise in place.
func (v *Vector[T]) MulAssign(o *Vector[T]) error {
	if err := sameSize("vec.MulAssign", v.Len(), o.Len()); err != nil {
		return err
	}
	r := v.r()
	for i := range v.data {
		v.data[i] = r.mul(v.data[i], o.data[i])
	}
	return nil
}

// ScaleAssign multiplies every element by x in place.
func (v *Vector[T]) ScaleAssign(x T) {
	r := v.r()
	for i := range v.data {
		v.data[i] = r.mul(v.data[i], x)
	}
}

// DivAssign divides every element by x in place. On error v is unchanged.
func (v *Vector[T]) DivAssign(x T) error {
	out, err := v.Div(x)
	if err != nil {
		return err
	}
	copy(v.data, out.data)
	out.Release()
	return nil
}

// Add returns v + o.
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	return v.zip("vec.Add", o, v.r().add)
}

// Sub returns v - o.
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	return v.zip("vec.Sub", o, v.r().sub)
}

// Product returns the element-wise product of v and o.
func (v *Vector[T]) Product(o *Vector[T]) (*Vector[T], error) {
	return v.zip("vec.Product", o, v.r().mul)
}

// Scale returns v · x. For complex and quaternion elements x multiplies from
// the right.
func (v *Vector[T]) Scale(x T) *Vector[T] {
	out := v.Clone()
	out.ScaleAssign(x)
	return out
}

// Div returns v / x element-wise.
func (v *Vector[T]) Div(x T) (*Vector[T], error) {
	out := v.derive(v.Len())
	if err := out.Err(); err != nil {
		return nil, err
	}
	r := v.r()
	for i := range v.data {
		q, err := r.div(v.data[i], x)
		if err != nil {
			out.Release()
			return nil, err
		}
		out.data[i] = q
	}
	return out, nil
}

// Neg returns -v.
func (v *Vector[T]) Neg() *Vector[T] {
	out := v.derive(v.Len())
	r := v.r()
	for i := range out.data {
		out.data[i] = r.neg(v.data[i])
	}
	return out
}

// Dot returns Σ v[i]·o[i].
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	var sum T
	if err := sameSize("vec.Dot", v.Len(), o.Len()); err != nil {
		return sum, err
	}
	r := v.r()
	for i := range v.data {
		sum = r.add(sum, r.mul(v.data[i], o.data[i]))
	}
	return sum, nil
}

func crossSizes(a, b int) error {
	if a != 3 {
		return &hypernum.ErrSizeMismatch{Op: "vec.Cross", Left: a, Right: 3}
	}
	if b != 3 {
		return &hypernum.ErrSizeMismatch{Op: "vec.Cross", Left: 3, Right: b}
	}
	return nil
}

// Cross returns the right-handed cross product of two 3-vectors.
func (v *Vector[T]) Cross(o *Vector[T]) (*Vector[T], error) {
	if err := crossSizes(v.Len(), o.Len()); err != nil {
		return nil, err
	}
	out := v.derive(3)
	if err := out.Err(); err != nil {
		return nil, err
	}
	r := v.r()
	a, b := v.data, o.data
	out.data[0] = r.sub(r.mul(a[1], b[2]), r.mul(a[2], b[1]))
	out.data[1] = r.sub(r.mul(a[2], b[0]), r.mul(a[0], b[2]))
	out.data[2] = r.sub(r.mul(a[0], b[1]), r.mul(a[1], b[0]))
	return out, nil
}

// Magnitude returns sqrt(Σ |v[i]|²). For scalar elements this is
// sqrt(v·v).
func (v *Vector[T]) Magnitude() float64 {
	r := v.r()
	var sum float64
	for _, x := range v.data {
		m := r.modulus(x)
		sum += m * m
	}
	return math.Sqrt(sum)
}

// Normalize returns v / |v|. A zero vector yields ErrDegenerateDivisor.
// Integer elements truncate toward zero and raise a narrowing advisory.
func (v *Vector[T]) Normalize() (*Vector[T], error) {
	mag := v.Magnitude()
	if mag == 0 {
		return nil, hypernum.ErrDegenerateDivisor
	}
	r := v.r()
	if k := r.elemKind(); k.Valid() {
		hypernum.Advise("vec.Normalize", kind.Quotient(kind.Float32, k), k)
	}
	out := v.derive(v.Len())
	if err := out.Err(); err != nil {
		return nil, err
	}
	for i := range v.data {
		out.data[i] = r.scaleReal(v.data[i], 1/mag)
	}
	return out, nil
}

// Inverse returns the element-wise reciprocal of v.
func (v *Vector[T]) Inverse() (*Vector[T], error) {
	r := v.r()
	if k := r.elemKind(); k.Valid() {
		hypernum.Advise("vec.Inverse", kind.Quotient(kind.Float32, k), k)
	}
	out := v.derive(v.Len())
	if err := out.Err(); err != nil {
		return nil, err
	}
	for i := range v.data {
		x, err := r.inv(v.data[i])
		if err != nil {
			out.Release()
			return nil, err
		}
		out.data[i] = x
	}
	return out, nil
}

// Sum returns the sum of all elements.
func (v *Vector[T]) Sum() T {
	r := v.r()
	var sum T
	for _, x := range v.data {
		sum = r.add(sum, x)
	}
	return sum
}

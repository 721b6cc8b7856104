// Package hypernum provides a generic algebraic number tower for Go.
//
// The tower is split into focused packages that all share the ambient
// facilities defined here (errors, tolerance, logging and the conversion
// advisory channel):
//
//   - kind: element-kind tags and the promotion table
//   - cplx: Complex[T] numbers
//   - quat: Quaternion[T] numbers (Hamilton product, polar forms)
//   - vec:  Vector[T] and the fixed-arity views Vec2, Vec3 and Vec4
//
// # Quick Start
//
//	a := cplx.New(3.0, 4.0)
//	b := cplx.New[int](1, 2)
//	c := cplx.Mul[float64](a, b)     // (-5 + 10i), natural result kind
//	n := cplx.Mul[int](a, b)         // narrowing: reported as an advisory
//
//	q := quat.Mul[int](quat.New(0, 1, 0, 0), quat.J()) // i·j = k
//
//	v := vec.Of(1.0, 2.0, 3.0)
//	w := vec.Of(4.0, 5.0, 6.0)
//	x, err := v.Cross(w) // [-3, 6, -3]
//
// # Mixed Element Types
//
// Every operation between values of different element types names its result
// element type explicitly. The natural result type is computed from the table
// in package kind; when the requested type differs, the operation still
// succeeds and a Conversion advisory is delivered to the current Observer:
//
//	obs := &hypernum.BasicObserver{}
//	prev := hypernum.SetObserver(obs)
//	defer hypernum.SetObserver(prev)
//
// # Equality
//
// Equality in every family is approximate: components are compared with an
// absolute tolerance of Epsilon.
//
// # Division
//
// Division by a zero-modulus value follows IEEE-754 for floating element
// types (the result holds Inf or NaN). For integer element types it fails
// with ErrDegenerateDivisor.
package hypernum

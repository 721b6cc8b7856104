// Package cplx implements generic complex numbers over any arithmetic element
// type.
//
// Same-kind arithmetic is available as methods:
//
//	z := cplx.New(3.0, 4.0)
//	w := z.Mul(z.Conjugate()) // 25 + 0i
//
// Mixed-kind arithmetic is available as functions whose first type parameter
// names the result element type; the remaining parameters are inferred:
//
//	a := cplx.New[int](1, 2)
//	b := cplx.New[float32](0.5, 0)
//	c := cplx.Mul[float32](a, b)
//
// The natural result kind is kind.Promote of the operand kinds (kind.Quotient
// for division). Requesting another kind is allowed and reported through
// hypernum's advisory channel.
package cplx

// Package quat implements generic quaternions over any arithmetic element type.
//
// Multiplication is the Hamilton product and is not commutative; every
// function preserves the operand order it was given.
//
//	i := quat.FromComplex(cplx.I())
//	k := i.Mul(quat.J()) // k
//
// Like package cplx, mixed-kind functions take the result element type as
// their first type parameter and report conversions away from the natural
// kind through the hypernum advisory channel:
//
//	q := quat.Mul[float64](quat.New[int](1, 2, 3, 4), quat.New(0.5, 0, 0, 0))
//
// Division is defined as multiplication by the inverse of the divisor from the
// left: Quo(a, b) == Inv(b)·a. For integer result kinds a zero-norm divisor
// yields hypernum.ErrDegenerateDivisor; floating result kinds follow IEEE-754.
package quat

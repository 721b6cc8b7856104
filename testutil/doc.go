// Package testutil provides testing utilities for hypernum.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source for property tests over
// complex numbers, quaternions and vectors.
//
// # Random Values
//
//	rng := testutil.NewRNG(seed)
//	x := rng.Float64Range(-10, 10)
//	re, im := rng.Pair(-1, 1)
//	v := rng.Floats(3, -1, 1)
//	axis, angle := rng.AxisAngle()
package testutil

package hypernum

import "gonum.org/v1/gonum/floats/scalar"

// Epsilon is the absolute tolerance used by every Equal in the tower.
const Epsilon = 1e-5

// Near reports whether a and b differ by at most Epsilon.
func Near(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Epsilon)
}

package quat

import (
	"math"
	"strings"

	"github.com/hupe1980/hypernum/kind"
)

const (
	formatPrecision = 3
	formatEpsilon   = 1e-4
)

// String renders q with three decimals for float kinds, e.g. "1.000 - 2.000i + k".
// Components within 1e-4 of zero are omitted and unit coefficients of the
// basis elements are left out.
func (q Quaternion[T]) String() string {
	var b strings.Builder

	writeTerm := func(v T, unit string) {
		if math.Abs(float64(v)) <= formatEpsilon {
			return
		}
		neg := v < 0
		switch {
		case b.Len() == 0 && neg:
			b.WriteByte('-')
		case b.Len() > 0 && neg:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if isUnit := v == 1 || (neg && -v == 1); unit == "" || !isUnit {
			b.WriteString(kind.FormatAbs(v, formatPrecision))
		}
		b.WriteString(unit)
	}

	writeTerm(q.Real, "")
	writeTerm(q.I, "i")
	writeTerm(q.J, "j")
	writeTerm(q.K, "k")

	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

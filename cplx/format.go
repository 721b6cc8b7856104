package cplx

import (
	"math"
	"strings"

	"github.com/hupe1980/hypernum/kind"
)

const (
	formatPrecision = 2
	formatEpsilon   = 0.01
)

// String renders c with two decimals for float kinds. Components below 0.01
// are suppressed, a unit imaginary coefficient renders as a bare "i" and an
// all-zero value renders as "0".
func (c Complex[T]) String() string {
	reZero := math.Abs(float64(c.Real)) < formatEpsilon
	imZero := math.Abs(float64(c.Imag)) < formatEpsilon

	switch {
	case reZero && imZero:
		return "0"
	case imZero:
		return kind.Format(c.Real, formatPrecision)
	}

	var b strings.Builder
	if !reZero {
		b.WriteString(kind.Format(c.Real, formatPrecision))
		if c.Imag < 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
	} else if c.Imag < 0 {
		b.WriteByte('-')
	}

	if unit := c.Imag == 1 || (c.Imag < 0 && -c.Imag == 1); !unit {
		b.WriteString(kind.FormatAbs(c.Imag, formatPrecision))
	}
	b.WriteByte('i')
	return b.String()
}

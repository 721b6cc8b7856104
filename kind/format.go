package kind

import "strconv"

// Format renders v in base 10. Floats use fixed notation with prec decimals;
// prec < 0 selects the shortest representation that round-trips.
func Format[T Scalar](v T, prec int) string {
	switch k := Of[T](); {
	case k.IsFloat():
		return strconv.FormatFloat(float64(v), 'f', prec, k.Bits())
	case k.IsSigned():
		return strconv.FormatInt(int64(v), 10)
	default:
		return strconv.FormatUint(uint64(v), 10)
	}
}

// FormatAbs renders |v| like Format. The most negative value of a signed
// integer kind is rendered without overflow.
func FormatAbs[T Scalar](v T, prec int) string {
	if v >= 0 {
		return Format(v, prec)
	}
	if k := Of[T](); k.IsFloat() {
		return strconv.FormatFloat(-float64(v), 'f', prec, k.Bits())
	}
	return strconv.FormatUint(uint64(-int64(v)), 10)
}

package kind

// Promote returns the result kind of an arithmetic operation between values
// of kind a and b. It is symmetric. Invalid operands yield Invalid.
func Promote(a, b Kind) Kind {
	if !a.Valid() || !b.Valid() {
		return Invalid
	}
	if a == b {
		return a
	}
	if a == Float64 || b == Float64 {
		return Float64
	}
	if a == Float32 || b == Float32 {
		return Float32
	}

	if a.IsSigned() == b.IsSigned() {
		switch {
		case a.Bits() > b.Bits():
			return a
		case b.Bits() > a.Bits():
			return b
		case a == Int || a == Uint:
			return b
		default:
			return a
		}
	}

	u, s := a, b
	if a.IsSigned() {
		u, s = b, a
	}
	if u.Bits() >= s.Bits() {
		return u
	}
	return s
}

// Quotient returns the result kind of a division between a and b.
func Quotient(a, b Kind) Kind {
	return Promote(Promote(Float32, a), b)
}

// Change classifies a conversion between two kinds.
type Change uint8

const (
	// Identity means source and target kinds are the same.
	Identity Change = iota
	// Widening means every source value is representable in the target.
	Widening
	// Narrowing means some source values lose range or precision.
	Narrowing
)

func (c Change) String() string {
	switch c {
	case Identity:
		return "identity"
	case Widening:
		return "widening"
	case Narrowing:
		return "narrowing"
	default:
		return "unknown"
	}
}

// Classify reports whether converting a value of kind from into kind to
// preserves every value.
func Classify(from, to Kind) Change {
	if from == to || !from.Valid() || !to.Valid() {
		return Identity
	}
	switch {
	case from.IsFloat() && to.IsInteger():
		return Narrowing
	case to.IsFloat():
		if from.precision() <= to.precision() {
			return Widening
		}
		return Narrowing
	case from.IsSigned() && !to.IsSigned():
		return Narrowing
	case to.precision() >= from.precision():
		return Widening
	default:
		return Narrowing
	}
}

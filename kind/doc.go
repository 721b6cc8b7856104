// Package kind implements the element-kind tags and the promotion table that
// decide the result element type of every mixed-type operation in hypernum.
//
// Go has no implicit arithmetic conversions, so the result type of an
// operation between a Complex[int8] and a Quaternion[float32] cannot be derived
// from the expression itself. Instead, every cross-type operation names its
// result type explicitly and checks it against the table below; a mismatch is
// reported through the advisory channel of the hypernum package.
//
// # Promotion Table
//
//   - Same kind: the kind itself (no small-integer promotion).
//   - Either operand Float64: Float64.
//   - Either operand Float32: Float32.
//   - Integers of equal signedness: the wider kind. Int and Uint are word
//     sized and lose ties to Int64/Uint64 (Int32/Uint32 on 32-bit targets).
//   - Mixed signedness: the unsigned kind if it is at least as wide as the
//     signed kind, otherwise the signed kind.
//
// Division always produces a floating kind:
//
//	Quotient(a, b) == Promote(Promote(Float32, a), b)
//
// # Usage
//
//	k := kind.Promote(kind.Of[int16](), kind.Of[uint8]()) // kind.Int16
//	q := kind.Quotient(kind.Int, kind.Int)                 // kind.Float32
package kind

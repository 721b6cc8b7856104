package hypernum

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateDivisor is returned when an integer-valued operation
	// divides by a zero-modulus value.
	ErrDegenerateDivisor = errors.New("degenerate divisor")
)

// ErrIndexOutOfRange indicates an element access beyond the current size.
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: index %d, size %d", e.Index, e.Size)
}

// ErrSizeMismatch indicates a binary operation between operands of
// incompatible lengths.
type ErrSizeMismatch struct {
	Op    string
	Left  int
	Right int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("%s: size mismatch: %d vs %d", e.Op, e.Left, e.Right)
}

// ErrInvalidRange indicates an invalid [Start, End) range over a vector.
type ErrInvalidRange struct {
	Start int
	End   int
	Size  int
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range [%d, %d) for size %d", e.Start, e.End, e.Size)
}

// ErrAllocation indicates that a backing buffer could not be allocated.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrAllocation struct {
	Elements int
	Bytes    int64
	cause    error
}

// NewAllocationError wraps cause as an allocation failure.
func NewAllocationError(elements int, bytes int64, cause error) *ErrAllocation {
	return &ErrAllocation{Elements: elements, Bytes: bytes, cause: cause}
}

func (e *ErrAllocation) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("allocation of %d elements (%d bytes) failed: %v", e.Elements, e.Bytes, e.cause)
	}
	return fmt.Sprintf("allocation of %d elements (%d bytes) failed", e.Elements, e.Bytes)
}

func (e *ErrAllocation) Unwrap() error { return e.cause }

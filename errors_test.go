package hypernum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"IndexOutOfRange", &ErrIndexOutOfRange{Index: 5, Size: 3}, "index out of range: index 5, size 3"},
		{"SizeMismatch", &ErrSizeMismatch{Op: "vec.Cross", Left: 3, Right: 4}, "vec.Cross: size mismatch: 3 vs 4"},
		{"InvalidRange", &ErrInvalidRange{Start: 4, End: 2, Size: 6}, "invalid range [4, 2) for size 6"},
		{"Allocation", NewAllocationError(10, 80, nil), "allocation of 10 elements (80 bytes) failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestAllocationErrorUnwrap(t *testing.T) {
	cause := errors.New("budget exhausted")
	err := NewAllocationError(1024, 8192, cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "budget exhausted")

	var allocErr *ErrAllocation
	assert.ErrorAs(t, error(err), &allocErr)
	assert.Equal(t, 1024, allocErr.Elements)
	assert.Equal(t, int64(8192), allocErr.Bytes)
}

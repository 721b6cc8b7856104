package quat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   interface{ String() string }
		want string
	}{
		{"Zero", Quaternion[float64]{}, "0"},
		{"NearZero", New(0.00005, 0, -0.00001, 0), "0"},
		{"Real", New(2, 0, 0, 0), "2"},
		{"Units", New(0, 1, 1, 1), "i + j + k"},
		{"LeadingNegative", New(0, -1, 0, 1), "-i + k"},
		{"Full", New(1, -2, 3, -4), "1 - 2i + 3j - 4k"},
		{"Float", New(1.0, -2.0, 0, 1.0), "1.000 - 2.000i + k"},
		{"FloatFraction", New(0, 0, 0.25, 0), "0.250j"},
		{"NegativeReal", New(-1.5, 0, 0, -1.0), "-1.500 - k"},
		{"MinInt8Leading", New[int8](0, -128, 0, 0), "-128i"},
		{"MinInt8Tail", New[int8](-128, 1, -128, -1), "-128 + i - 128j - k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

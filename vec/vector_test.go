package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hypernum"
	"github.com/hupe1980/hypernum/codec"
	"github.com/hupe1980/hypernum/cplx"
	"github.com/hupe1980/hypernum/quat"
)

func observe(t *testing.T) *hypernum.BasicObserver {
	t.Helper()
	obs := &hypernum.BasicObserver{}
	prev := hypernum.SetObserver(obs)
	t.Cleanup(func() { hypernum.SetObserver(prev) })
	return obs
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, []int{0, 0, 0}, New[int](3).Slice())
	assert.Equal(t, []float32{1.5, 1.5}, Filled[float32](2, 1.5).Slice())
	assert.Equal(t, []uint8{1, 2, 3}, Of[uint8](1, 2, 3).Slice())
	assert.Equal(t, []int{3, 4}, FromComplex(cplx.New(3, 4)).Slice())
	assert.Zero(t, Of[float64]().Len())

	src := []float64{1, 2}
	v := FromSlice(src)
	src[0] = 9
	assert.Equal(t, []float64{1, 2}, v.Slice(), "FromSlice copies its input")
}

func TestZeroValue(t *testing.T) {
	var v Vector[float64]
	assert.Zero(t, v.Len())
	assert.Equal(t, "[]", v.String())
	assert.Equal(t, 0.0, v.Sum())
	assert.NoError(t, v.Err())

	w := v.Append(1, 2)
	assert.Equal(t, []float64{1, 2}, w.Slice())
}

type (
	meters float64
	count  uint16
)

func TestNamedScalarElement(t *testing.T) {
	v := Of[meters](1, 2, 3)
	sum, err := v.Add(Of[meters](1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, []meters{2, 3, 4}, sum.Slice())
	assert.Equal(t, "[2, 3, 4]", sum.String())
	assert.InDelta(t, math.Sqrt(14), v.Magnitude(), 1e-12)

	n, err := Of[meters](3, 4).Normalize()
	require.NoError(t, err)
	assert.True(t, n.Equal(Of[meters](0.6, 0.8)))

	_, err = Of[count](1, 2).Div(0)
	assert.ErrorIs(t, err, hypernum.ErrDegenerateDivisor)
	q, err := Of[count](7, 9).Div(2)
	require.NoError(t, err)
	assert.Equal(t, []count{3, 4}, q.Slice())

	c := NewVec3[meters](1, 0, 0).Cross(NewVec3[meters](0, 1, 0))
	assert.Equal(t, meters(1), c.Z())

	mixed, err := Add[meters](Of(1, 2), Of[meters](0.5, 0.5))
	require.NoError(t, err)
	assert.Equal(t, []meters{1.5, 2.5}, mixed.Slice())
	assert.Equal(t, []float64{1, 2, 3}, Convert[float64](v).Slice())
}

func TestUnsupportedElement(t *testing.T) {
	type label string
	type point struct{ x, y float64 }
	assert.Panics(t, func() { New[label](1) })
	assert.Panics(t, func() { New[point](1) })
	assert.Panics(t, func() { New[any](1) })
}

func TestAtSet(t *testing.T) {
	v := New[int](3)

	_, err := v.At(5)
	var rangeErr *hypernum.ErrIndexOutOfRange
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 5, rangeErr.Index)
	assert.Equal(t, 3, rangeErr.Size)

	_, err = v.At(-1)
	assert.ErrorAs(t, err, &rangeErr)
	assert.ErrorAs(t, v.Set(3, 1), &rangeErr)

	require.NoError(t, v.Set(1, 42))
	x, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 42, x)
}

func TestCloneIsIndependent(t *testing.T) {
	v := Of(1, 2, 3)
	c := v.Clone()
	require.NoError(t, c.Set(0, 100))

	x, _ := v.At(0)
	assert.Equal(t, 1, x)
	assert.True(t, v.Equal(Of(1, 2, 3)))
	assert.False(t, v.Equal(c))
	assert.False(t, v.Equal(Of(1, 2)))
}

func TestEqualTolerance(t *testing.T) {
	assert.True(t, Of(1.0, 2.0).Equal(Of(1.000001, 1.999999)))
	assert.False(t, Of(1.0, 2.0).Equal(Of(1.001, 2.0)))
	assert.True(t, Equal(Of(1, 2), Of(1.0, 2.000001)))
	assert.False(t, Equal(Of(1, 2), Of(1.0)))
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   interface{ String() string }
		want string
	}{
		{"Float", Of(1.0, 2.5, 3.0), "[1, 2.5, 3]"},
		{"Int", Of(-1, 0, 7), "[-1, 0, 7]"},
		{"Float32", Of[float32](0.1), "[0.1]"},
		{"Complex", Of(cplx.New(1, 2), cplx.I()), "[1 + 2i, i]"},
		{"Quaternion", Of(quat.J(), quat.New(1, 0, 0, -1)), "[j, 1 - k]"},
		{"Empty", New[int](0), "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestJSON(t *testing.T) {
	v := Of(1.5, -2.0, 3.0)

	b, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5,-2,3]`, string(b))

	var got Vector[float64]
	require.NoError(t, got.UnmarshalJSON(b))
	assert.True(t, got.Equal(v))

	cv := Of(cplx.New(1, 2))
	b, err = codec.JSON{}.Marshal(cv)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"real":1,"imag":2}]`, string(b))

	var gotC Vector[cplx.Complex[int]]
	require.NoError(t, codec.JSON{}.Unmarshal(b, &gotC))
	assert.Equal(t, []cplx.Complex[int]{cplx.New(1, 2)}, gotC.Slice())

	assert.Error(t, got.UnmarshalJSON([]byte(`{"not":"an array"}`)))
}

type countingCodec struct {
	codec.JSON
	marshals, unmarshals int
}

func (c *countingCodec) Marshal(v any) ([]byte, error) {
	c.marshals++
	return c.JSON.Marshal(v)
}

func (c *countingCodec) Unmarshal(data []byte, v any) error {
	c.unmarshals++
	return c.JSON.Unmarshal(data, v)
}

func TestWithCodec(t *testing.T) {
	c := &countingCodec{}
	v := FromSlice([]int{1, 2}, WithCodec(c))

	b, err := v.Scale(2).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[2,4]`, string(b))
	assert.Equal(t, 1, c.marshals, "derived vectors keep the codec")

	require.NoError(t, v.UnmarshalJSON([]byte(`[5,6,7]`)))
	assert.Equal(t, 1, c.unmarshals)
	assert.Equal(t, []int{5, 6, 7}, v.Slice())
}

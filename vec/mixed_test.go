package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hypernum"
	"github.com/hupe1980/hypernum/kind"
)

func TestMixedArithmetic(t *testing.T) {
	obs := observe(t)

	a := Of(1, 2, 3)
	b := Of(0.5, 0.5, 0.5)

	sum, err := Add[float64](a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, sum.Slice())

	diff, err := Sub[float64](a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5, 2.5}, diff.Slice())

	prod, err := Product[float64](a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 1.5}, prod.Slice())

	dot, err := Dot[float64](a, b)
	require.NoError(t, err)
	assert.Equal(t, 3.0, dot)

	cross, err := Cross[float64](Of[int8](1, 2, 3), Of[float32](4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, 6, -3}, cross.Slice())

	assert.Equal(t, []float64{2.5, 5, 7.5}, Scale[float64](a, 2.5).Slice())
	assert.Equal(t, int64(1), obs.Total.Load(), "only the int8×float32 cross product widens")

	_, err = Add[float64](a, Of(1.0))
	var sizeErr *hypernum.ErrSizeMismatch
	assert.ErrorAs(t, err, &sizeErr)
}

func TestMixedNarrowing(t *testing.T) {
	obs := observe(t)

	got, err := Add[int](Of(1.5, 2.5), Of(1, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, got.Slice())

	require.Equal(t, int64(1), obs.Narrowing.Load())
	last := obs.Last()
	assert.Equal(t, "vec.Add", last.Op)
	assert.Equal(t, kind.Float64, last.From)
	assert.Equal(t, kind.Int, last.To)
}

func TestConvert(t *testing.T) {
	obs := observe(t)

	v := Convert[int16](Of(1.9, -2.9))
	assert.Equal(t, []int16{1, -2}, v.Slice())
	assert.Equal(t, int64(1), obs.Narrowing.Load())

	w := Convert[float64](Of[int32](7))
	assert.Equal(t, []float64{7}, w.Slice())
	assert.Equal(t, int64(1), obs.Widening.Load())
}

func TestQuo(t *testing.T) {
	got, err := Quo[float32](Of(1, 2, 3), 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 1, 1.5}, got.Slice())

	_, err = Quo[int](Of(1, 2), 0)
	assert.ErrorIs(t, err, hypernum.ErrDegenerateDivisor)

	inf, err := Quo[float64](Of(1.0), 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(inf.Slice()[0], 1))

	inv, err := ScalarQuo[float64](2, Of(1.0, 4.0, 0.5))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0.5, 4}, inv.Slice())

	_, err = ScalarQuo[int](2, Of(1, 0))
	assert.ErrorIs(t, err, hypernum.ErrDegenerateDivisor)
}

func TestAngle(t *testing.T) {
	theta, err := Angle(Of(1, 0), Of(0.0, 2.0), false)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, theta, 1e-12)

	deg, err := Angle(Of(1.0, 1.0), Of(1, 0), true)
	require.NoError(t, err)
	assert.InDelta(t, 45, deg, 1e-9)

	same, err := Angle(Of(2.0, 2.0, 2.0), Of(1.0, 1.0, 1.0), false)
	require.NoError(t, err)
	assert.InDelta(t, 0, same, 1e-7)

	_, err = Angle(Of(1, 2), Of(1, 2, 3), false)
	var sizeErr *hypernum.ErrSizeMismatch
	assert.ErrorAs(t, err, &sizeErr)

	_, err = Angle(Of(0, 0), Of(1, 2), false)
	assert.ErrorIs(t, err, hypernum.ErrDegenerateDivisor)
}

func TestInPlaceMixed(t *testing.T) {
	dst := Of(1.0, 2.0)
	require.NoError(t, AddInto(dst, Of(1, 1)))
	assert.Equal(t, []float64{2, 3}, dst.Slice())

	var sizeErr *hypernum.ErrSizeMismatch
	assert.ErrorAs(t, AddInto(dst, Of(1)), &sizeErr)

	require.NoError(t, Assign(dst, Of[int8](4, 5, 6)))
	assert.Equal(t, []float64{4, 5, 6}, dst.Slice())
}

func TestExpLog(t *testing.T) {
	v := Of(0, 1, 2)
	e := Exp(v)
	assert.True(t, e.Equal(Of(1, math.E, math.E*math.E)))
	assert.True(t, Log(e).Equal(Of(0.0, 1, 2)))
	assert.True(t, math.IsInf(Log(Of(0.0)).Slice()[0], -1))
}

package quat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	gquat "gonum.org/v1/gonum/num/quat"

	"github.com/hupe1980/hypernum/cplx"
	"github.com/hupe1980/hypernum/testutil"
)

func TestExpLogMatchGonum(t *testing.T) {
	rng := testutil.NewRNG(10)

	for range 100 {
		q := randomQuaternion(rng)
		assert.True(t, Exp(q).Equal(fromNumber(gquat.Exp(toNumber(q)))), "q=%v", q)
		assert.True(t, Log(q).Equal(fromNumber(gquat.Log(toNumber(q)))), "q=%v", q)
		assert.True(t, Exp(Log(q)).Equal(q), "q=%v", q)
	}
}

func TestPow(t *testing.T) {
	rng := testutil.NewRNG(11)

	for range 100 {
		q := randomQuaternion(rng)
		assert.True(t, q.Pow(2).Equal(q.Mul(q)), "q=%v", q)

		root := q.Pow(0.5)
		assert.True(t, root.Mul(root).Equal(q), "q=%v", q)
		assert.True(t, q.Pow(0).Equal(New(1.0, 0, 0, 0)))
	}
}

func TestPowQuaternionMatchesGonum(t *testing.T) {
	rng := testutil.NewRNG(12)

	for range 100 {
		q := randomQuaternion(rng)
		a, b, c, d := rng.Quad(-1, 1)
		p := New(a, b, c, d)
		want := fromNumber(gquat.Pow(toNumber(q), toNumber(p)))
		assert.True(t, PowQuaternion(q, p).Equal(want), "q=%v p=%v", q, p)
	}

	q := New(1.0, 1, 0, 0)
	assert.True(t, PowComplex(q, cplx.New(2, 0)).Equal(q.Mul(q)))
	assert.True(t, PowQuaternion(q, New(3, 0, 0, 0)).Equal(q.Pow(3)))
}

func TestPurelyRealOperands(t *testing.T) {
	assert.True(t, Log(New(-1, 0, 0, 0)).Equal(New(0, math.Pi, 0, 0)))
	assert.True(t, Log(New(math.E, 0, 0, 0)).Equal(New(1.0, 0, 0, 0)))
	assert.True(t, Exp(New(0, 0, 0, 0)).Equal(New(1.0, 0, 0, 0)))
	assert.True(t, New(4, 0, 0, 0).Pow(0.5).Equal(New(2.0, 0, 0, 0)))
	assert.True(t, New(-4, 0, 0, 0).Pow(0.5).Equal(New(0, 2.0, 0, 0)))
	assert.True(t, Exp(New(0, math.Pi, 0, 0)).Equal(New(-1.0, 0, 0, 0)))
}

func TestZeroBase(t *testing.T) {
	zero := Quaternion[float64]{}
	assert.Equal(t, New(1.0, 0, 0, 0), PowQuaternion(zero, Quaternion[int]{}))
	assert.Equal(t, Quaternion[float64]{}, PowQuaternion(zero, New(2, 0, 0, 0)))
	assert.True(t, math.IsInf(PowQuaternion(zero, New(-1, 0, 0, 0)).Real, 1))
	assert.Equal(t, Quaternion[float64]{}, zero.Pow(2))
	assert.Equal(t, New(1.0, 0, 0, 0), zero.Pow(0))
	assert.True(t, math.IsInf(Log(zero).Real, -1))
}

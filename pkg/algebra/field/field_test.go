package field

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizes(t *testing.T) {
	tests := []struct {
		name    string
		value   int64
		modulus uint64
		want    uint64
	}{
		{"In range", 3, 5, 3},
		{"Reduced", 12, 5, 2},
		{"Negative", -1, 11, 10},
		{"Negative multiple", -10, 5, 0},
		{"Large negative", -23, 7, 5},
		{"MinInt64", math.MinInt64, 7, uint64(7 - (uint64(1<<63) % 7))},
		{"Binary field", 3, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.value, tt.modulus)
			assert.Equal(t, tt.want, e.Value())
			assert.Equal(t, tt.modulus, e.Modulus())
		})
	}
}

func TestAdd(t *testing.T) {
	x := New(1, 3).Add(New(4, 3))
	assert.Equal(t, New(2, 3), x)
}

func TestArithmetic(t *testing.T) {
	f, err := NewField(11)
	require.NoError(t, err)

	a, b := f.Elem(7), f.Elem(9)

	assert.Equal(t, uint64(5), a.Add(b).Value())
	assert.Equal(t, uint64(9), a.Sub(b).Value())
	assert.Equal(t, uint64(2), b.Sub(a).Value())
	assert.Equal(t, uint64(8), a.Mul(b).Value())
	assert.Equal(t, uint64(4), a.Neg().Value())
	assert.True(t, f.Zero().Neg().IsZero())

	// 7 / 9 = 7 * 5 = 35 = 2 (mod 11)
	assert.Equal(t, uint64(2), a.Div(b).Value())
	assert.Equal(t, a, a.Div(b).Mul(b))
}

func TestArithmeticNearWordSize(t *testing.T) {
	// largest prime below 2^64
	const p = math.MaxUint64 - 58
	f, err := NewField(p)
	require.NoError(t, err)

	a := FromUint64(p-1, p)
	b := FromUint64(p-2, p)

	assert.Equal(t, uint64(p-3), a.Add(b).Value())
	assert.Equal(t, uint64(2), a.Mul(b).Value())
	assert.Equal(t, uint64(1), a.Sub(b).Value())
	assert.Equal(t, f.One(), b.Mul(b.Inv()))
}

func TestInverse(t *testing.T) {
	for _, p := range []uint64{2, 3, 5, 7, 11, 13, 251, 257, 65537} {
		f, err := NewField(p)
		require.NoError(t, err)

		for v := uint64(1); v < p && v < 2000; v++ {
			x := FromUint64(v, p)
			require.Equal(t, f.One(), x.Mul(x.Inv()), "p=%d x=%d", p, v)
		}
	}
}

func TestInverseOfZero(t *testing.T) {
	assert.True(t, New(0, 2).Inv().IsZero())
	assert.True(t, New(0, 13).Inv().IsZero())
	assert.Equal(t, uint64(1), New(1, 2).Inv().Value())
}

func TestPow(t *testing.T) {
	assert.Equal(t, uint64(1), New(2, 11).Pow(10).Value())
	assert.Equal(t, uint64(8), New(2, 11).Pow(3).Value())
	assert.Equal(t, uint64(1), New(0, 11).Pow(0).Value())
	assert.Equal(t, uint64(0), New(0, 11).Pow(4).Value())
}

func TestModulusMismatch(t *testing.T) {
	a, b := New(1, 5), New(1, 7)

	err := a.Compatible(b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrModulusMismatch))

	assert.NoError(t, a.Compatible(New(3, 5)))

	assert.Panics(t, func() { a.Add(b) })
	assert.Panics(t, func() { a.Sub(b) })
	assert.Panics(t, func() { a.Mul(b) })
	assert.Panics(t, func() { a.Div(b) })
}

func TestNewField(t *testing.T) {
	for _, p := range []uint64{0, 1, 4, 9, 15, 561, 65535} {
		_, err := NewField(p)
		assert.ErrorIs(t, err, ErrNotPrime, "p=%d", p)
	}

	f, err := NewField(5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), f.Modulus())
	assert.Equal(t, uint64(3), f.Elem(-2).Value())
}

func TestInt64(t *testing.T) {
	assert.Equal(t, int64(-1), New(10, 11).Int64())
	assert.Equal(t, int64(5), New(5, 11).Int64())
	assert.Equal(t, int64(-5), New(6, 11).Int64())
	assert.Equal(t, int64(1), New(1, 2).Int64())
}

func TestLiftAndValues(t *testing.T) {
	f, err := NewField(11)
	require.NoError(t, err)

	signed := Lift(f, []int64{1, -1, 1, 0, 3, 2, 0, 1})
	assert.Equal(t, []uint64{1, 10, 1, 0, 3, 2, 0, 1}, Values(signed))

	small := Lift(f, []int8{-12, 12})
	assert.Equal(t, []uint64{10, 1}, Values(small))

	unsigned := Lift(f, []uint32{22, 23})
	assert.Equal(t, []uint64{0, 1}, Values(unsigned))
}

func TestString(t *testing.T) {
	assert.Equal(t, "4", New(-1, 5).String())
}

//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package numtheory

import (
	"strings"
	"testing"

	"github.com/markkurossi/wide/mpa"
	"github.com/markkurossi/wide/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var factorialTests = []struct {
	n    int64
	info types.Info
	r    string
}{
	{0, types.Uint(4), "1"},
	{1, types.Uint(4), "1"},
	{3, types.Uint(4), "6"},
	{5, types.Uint8, "120"},
	{20, types.Uint64, "2432902008176640000"},
	{
		n:    100,
		info: types.Uint(1024),
		r: "93326215443944152681699238856266700490715968264381621468592963" +
			"8952175999932299156089414639761565182862536979208272237582511" +
			"85210916864000000000000000000000000",
	},
}

func TestFactorial(t *testing.T) {
	for idx, test := range factorialTests {
		r, err := Factorial(test.n, test.info)
		require.NoError(t, err)
		if r.String() != test.r {
			t.Errorf("factorial%d: %d!=%v, expected %v",
				idx, test.n, r, test.r)
		}
		assert.Equal(t, test.info, r.Info())
	}
}

func TestFactorialRecurrence(t *testing.T) {
	info := types.Uint512
	prev, err := Factorial(0, info)
	require.NoError(t, err)
	assert.Equal(t, "1", prev.String())
	for n := int64(1); n <= 60; n++ {
		f, err := Factorial(n, info)
		require.NoError(t, err)
		nn, _ := mpa.NewInt(n, info)
		expected, err := nn.Mul(prev)
		require.NoError(t, err)
		assert.Equal(t, 0, f.Cmp(expected), "%d!", n)
		prev = f
	}
}

func TestFactorialErrors(t *testing.T) {
	_, err := Factorial(-1, types.Uint64)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Factorial(34, types.Uint128)
	assert.NoError(t, err)
	_, err = Factorial(35, types.Uint128)
	assert.ErrorIs(t, err, mpa.ErrOverflow)
}

func TestCombination(t *testing.T) {
	r, err := Combination(60, 30, types.Uint64)
	require.NoError(t, err)
	assert.Equal(t, "118264581564861424", r.String())
	assert.Equal(t, types.Uint64, r.Info())

	r, err = Combination(1000, 500, types.Uint(1024))
	require.NoError(t, err)
	assert.Equal(t, 995, r.BitLen())
	assert.True(t, strings.HasSuffix(r.String(), "96905863799821216320"))

	_, err = Combination(67, 33, types.Uint64)
	assert.NoError(t, err)
	_, err = Combination(68, 34, types.Uint64)
	assert.ErrorIs(t, err, mpa.ErrOverflow)
}

func TestCombinationWidest(t *testing.T) {
	r, err := Combination(8192, 4096, types.Uint8192)
	require.NoError(t, err)
	assert.Equal(t, 8186, r.BitLen())
	s := r.String()
	assert.Len(t, s, 2464)
	assert.True(t, strings.HasSuffix(s, "79861870106525319750"))

	r, err = Combination(4096, 2048, types.Uint(4096))
	require.NoError(t, err)
	assert.Equal(t, 4090, r.BitLen())
}

func TestCombinationSymmetry(t *testing.T) {
	info := types.Uint512
	for n := int64(0); n <= 40; n++ {
		for r := int64(0); r <= n; r++ {
			a, err := Combination(n, r, info)
			require.NoError(t, err)
			b, err := Combination(n, n-r, info)
			require.NoError(t, err)
			assert.Equal(t, 0, a.Cmp(b), "C(%d,%d)", n, r)
		}
		first, _ := Combination(n, 0, info)
		last, _ := Combination(n, n, info)
		assert.Equal(t, "1", first.String())
		assert.Equal(t, "1", last.String())
	}
}

func TestCombinationFactorials(t *testing.T) {
	info := types.Uint512
	for n := int64(0); n <= 30; n++ {
		for r := int64(0); r <= n; r++ {
			nf, _ := Factorial(n, info)
			rf, _ := Factorial(r, info)
			nrf, _ := Factorial(n-r, info)
			den, err := rf.Mul(nrf)
			require.NoError(t, err)
			expected, rem, err := nf.DivRem(den)
			require.NoError(t, err)
			assert.True(t, rem.IsZero())

			c, err := Combination(n, r, info)
			require.NoError(t, err)
			assert.Equal(t, 0, c.Cmp(expected), "C(%d,%d)", n, r)
		}
	}
}

var rangeTests = []struct {
	n, r int64
}{
	{0, 1},
	{5, 6},
	{5, -1},
	{-1, 0},
	{10, 100},
}

func TestRangeErrors(t *testing.T) {
	for _, test := range rangeTests {
		_, err := Combination(test.n, test.r, types.Uint64)
		assert.ErrorIs(t, err, ErrInvalidRange, "C(%d,%d)", test.n, test.r)
		_, err = Permutation(test.n, test.r, types.Uint64)
		assert.ErrorIs(t, err, ErrInvalidRange, "P(%d,%d)", test.n, test.r)
	}
}

func TestPermutation(t *testing.T) {
	r, err := Permutation(20, 10, types.Uint64)
	require.NoError(t, err)
	assert.Equal(t, "670442572800", r.String())

	r, err = Permutation(30, 15, types.Uint128)
	require.NoError(t, err)
	assert.Equal(t, "202843204931727360000", r.String())

	for n := int64(0); n <= 20; n++ {
		p, err := Permutation(n, 0, types.Uint64)
		require.NoError(t, err)
		assert.Equal(t, "1", p.String())

		p, err = Permutation(n, n, types.Uint64)
		require.NoError(t, err)
		f, err := Factorial(n, types.Uint64)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Cmp(f))
	}
}

func TestGaussSum(t *testing.T) {
	r, err := GaussSum(5, types.Uint(4))
	require.NoError(t, err)
	assert.Equal(t, "15", r.String())

	var sum int64
	for n := int64(0); n <= 200; n++ {
		sum += n
		r, err := GaussSum(n, types.Uint32)
		require.NoError(t, err)
		v, _ := r.Int64()
		assert.Equal(t, sum, v, "GaussSum(%d)", n)
	}

	_, err = GaussSum(22, types.Uint8)
	assert.NoError(t, err)
	_, err = GaussSum(23, types.Uint8)
	assert.ErrorIs(t, err, mpa.ErrOverflow)

	_, err = GaussSum(-1, types.Uint8)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestGaussSumIdempotent(t *testing.T) {
	a, err := GaussSum(1<<40, types.Uint128)
	require.NoError(t, err)
	b, err := GaussSum(1<<40, types.Uint128)
	require.NoError(t, err)
	assert.Equal(t, a.Limbs(), b.Limbs())
	assert.Equal(t, "604462909807864343166976", a.String())
}

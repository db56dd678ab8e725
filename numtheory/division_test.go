//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package numtheory

import (
	"testing"

	"github.com/markkurossi/wide/mpa"
	"github.com/markkurossi/wide/prg"
	"github.com/markkurossi/wide/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var divisibilityTests = []struct {
	a, b string
	q, r string
}{
	{"17", "5", "3", "2"},
	{"-17", "5", "-4", "3"},
	{"17", "-5", "-3", "2"},
	{"-17", "-5", "4", "3"},
	{"0", "7", "0", "0"},
	{"6", "7", "0", "6"},
	{"-6", "7", "-1", "1"},
	{"21", "7", "3", "0"},
	{"-21", "7", "-3", "0"},
	{"-2147483648", "1", "-2147483648", "0"},
}

func TestDivisibilityTheorem(t *testing.T) {
	for idx, test := range divisibilityTests {
		a := mpa.MustParse(test.a, types.Int32)
		b := mpa.MustParse(test.b, types.Int32)
		q, r, err := DivisibilityTheorem(a, b, 64)
		require.NoError(t, err, "div%d", idx)
		if q.String() != test.q || r.String() != test.r {
			t.Errorf("div%d: %v/%v=(%v,%v), expected (%v,%v)",
				idx, a, b, q, r, test.q, test.r)
		}
		assert.Equal(t, types.Int32, q.Info())
		assert.Equal(t, types.Int32, r.Info())

		eq, er, err := a.DivRem(b)
		require.NoError(t, err)
		assert.Equal(t, 0, q.Cmp(eq), "div%d: quotient", idx)
		assert.Equal(t, 0, r.Cmp(er), "div%d: remainder", idx)
	}
}

func TestDivisibilityTheoremErrors(t *testing.T) {
	a := mpa.MustParse("17", types.Uint64)

	_, _, err := DivisibilityTheorem(a, mpa.Zero(types.Uint64), 10)
	assert.ErrorIs(t, err, mpa.ErrDivisionByZero)

	_, _, err = DivisibilityTheorem(a, mpa.MustParse("5", types.Uint64), 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, _, err = DivisibilityTheorem(a, mpa.MustParse("5", types.Uint64), -1)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestDivisibilityTheoremConvergence(t *testing.T) {
	// Every bit of 2**100-1 is a quotient bit so the refinement needs
	// exactly 100 steps.
	a := mpa.MustParse("0xfffffffffffffffffffffffff", types.Uint128)
	one := mpa.MustParse("1", types.Uint128)

	_, _, err := DivisibilityTheorem(a, one, 99)
	assert.ErrorIs(t, err, ErrNonConvergence)

	q, r, err := DivisibilityTheorem(a, one, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, q.Cmp(a))
	assert.True(t, r.IsZero())
}

func TestDivisibilityTheoremRandom(t *testing.T) {
	rand := prg.FromSeed(42)
	for _, info := range []types.Info{
		types.Int64, types.Uint128, types.Int(512), types.Uint(1024),
	} {
		for i := 0; i < 50; i++ {
			a, err := mpa.Rand(rand, info)
			require.NoError(t, err)
			b, err := mpa.Rand(rand, info)
			require.NoError(t, err)
			b = b.Rsh(uint(rand.Intn(int(info.Bits))))
			if b.IsZero() {
				continue
			}
			q, r, err := DivisibilityTheorem(a, b, int(info.Bits)+1)
			require.NoError(t, err, "%v/%v", a, b)

			eq, er, err := a.DivRem(b)
			require.NoError(t, err)
			assert.Equal(t, 0, q.Cmp(eq), "%v/%v: quotient", a, b)
			assert.Equal(t, 0, r.Cmp(er), "%v/%v: remainder", a, b)
		}
	}
}

func TestDivisibilityTheoremIdempotent(t *testing.T) {
	a := mpa.MustParse("123456789012345678901234567890", types.Uint128)
	b := mpa.MustParse("987654321", types.Uint128)
	q1, r1, err := DivisibilityTheorem(a, b, 128)
	require.NoError(t, err)
	q2, r2, err := DivisibilityTheorem(a, b, 128)
	require.NoError(t, err)
	assert.Equal(t, q1.Limbs(), q2.Limbs())
	assert.Equal(t, r1.Limbs(), r2.Limbs())
}

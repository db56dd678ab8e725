//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package numtheory

import (
	"fmt"

	"github.com/markkurossi/wide/mpa"
	"github.com/markkurossi/wide/types"
)

// DivisibilityTheorem computes the quotient q and remainder r of a/b
// so that a = q*b + r and 0 <= r < |b|, without a division
// instruction. Each refinement step subtracts the largest shifted
// divisor b<<s that fits into the partial remainder and adds 1<<s to
// the quotient, so the quotient bits are found from the most
// significant one downwards. The function fails with
// ErrNonConvergence if the remainder has not dropped below |b| after
// maxIterations steps. The result is equal to a.DivRem(b).
func DivisibilityTheorem(a, b mpa.Int, maxIterations int) (q, r mpa.Int,
	err error) {

	if maxIterations <= 0 {
		return q, r, fmt.Errorf(
			"numtheory.DivisibilityTheorem: maxIterations=%d: %w",
			maxIterations, ErrInvalidRange)
	}
	if b.IsZero() {
		return q, r, fmt.Errorf("numtheory.DivisibilityTheorem: %v/0: %w",
			a, mpa.ErrDivisionByZero)
	}
	info := a.Info().Join(b.Info())
	work := types.Uint(info.Bits)

	// Refine over the magnitudes. The unsigned absolute values always
	// fit into the working type.
	rem, err := a.Abs().Convert(work)
	if err != nil {
		return
	}
	div, err := b.Abs().Convert(work)
	if err != nil {
		return
	}
	quo := mpa.Zero(work)

	var iterations int
	for rem.Cmp(div) >= 0 {
		if iterations >= maxIterations {
			return q, r, fmt.Errorf(
				"numtheory.DivisibilityTheorem: %v/%v: %d iterations: %w",
				a, b, iterations, ErrNonConvergence)
		}
		iterations++

		s := uint(rem.BitLen() - div.BitLen())
		shifted, err := div.Lsh(s)
		if err != nil {
			return q, r, err
		}
		if shifted.Cmp(rem) > 0 {
			s--
			shifted, err = div.Lsh(s)
			if err != nil {
				return q, r, err
			}
		}
		rem, err = rem.Sub(shifted)
		if err != nil {
			return q, r, err
		}
		bit, err := mpa.NewUint(1, work)
		if err != nil {
			return q, r, err
		}
		bit, err = bit.Lsh(s)
		if err != nil {
			return q, r, err
		}
		quo, err = quo.Add(bit)
		if err != nil {
			return q, r, err
		}
	}

	// Euclidean adjustment: a negative dividend with a non-zero
	// remainder rounds the quotient magnitude up.
	if a.Sign() < 0 && !rem.IsZero() {
		one, err := mpa.NewUint(1, work)
		if err != nil {
			return q, r, err
		}
		quo, err = quo.Add(one)
		if err != nil {
			return q, r, err
		}
		rem, err = div.Sub(rem)
		if err != nil {
			return q, r, err
		}
	}

	if (a.Sign() < 0) != (b.Sign() < 0) {
		q, err = mpa.Zero(info).Sub(quo)
	} else {
		q, err = quo.Convert(info)
	}
	if err != nil {
		return
	}
	r, err = rem.Convert(info)
	return
}

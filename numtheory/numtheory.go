//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package numtheory implements combinatorial and number theoretic
// functions over fixed-width multi-precision integers.
package numtheory

import (
	"errors"
	"fmt"

	"github.com/markkurossi/wide/mpa"
	"github.com/markkurossi/wide/types"
)

// Errors returned by the number theory functions.
var (
	ErrInvalidRange   = errors.New("invalid range")
	ErrNonConvergence = errors.New("no convergence")
)

// Factorial returns n! as an integer of type info. The product is
// accumulated in a flat loop.
func Factorial(n int64, info types.Info) (mpa.Int, error) {
	if n < 0 {
		return mpa.Int{}, fmt.Errorf("numtheory.Factorial: n=%d: %w",
			n, ErrInvalidRange)
	}
	result, err := mpa.NewUint(1, info)
	if err != nil {
		return mpa.Int{}, err
	}
	for i := int64(2); i <= n; i++ {
		f, err := mpa.NewInt(i, info)
		if err != nil {
			return mpa.Int{}, err
		}
		result, err = result.Mul(f)
		if err != nil {
			return mpa.Int{}, err
		}
	}
	return result, nil
}

func checkRange(op string, n, r int64) error {
	if r < 0 || n < 0 || r > n {
		return fmt.Errorf("numtheory.%s: n=%d, r=%d: %w",
			op, n, r, ErrInvalidRange)
	}
	return nil
}

// Combination returns the number of r-element subsets of an n-element
// set, n!/(r!(n-r)!). The value is computed as the incremental
// product of (n-r+i)/i for i=1..r so n! is never materialized. Each
// partial product is C(n-r+i, i) and, with r <= n-r, no partial
// product exceeds the result. The step c*m/i is computed as
// (c/i)*m + (c%i)*m/i so the undivided product c*m is never formed.
func Combination(n, r int64, info types.Info) (mpa.Int, error) {
	if err := checkRange("Combination", n, r); err != nil {
		return mpa.Int{}, err
	}
	if r > n-r {
		r = n - r
	}
	result, err := mpa.NewUint(1, info)
	if err != nil {
		return mpa.Int{}, err
	}
	for i := int64(1); i <= r; i++ {
		m, err := mpa.NewInt(n-r+i, info)
		if err != nil {
			return mpa.Int{}, err
		}
		d, err := mpa.NewInt(i, info)
		if err != nil {
			return mpa.Int{}, err
		}
		result, err = mulDiv(result, m, d)
		if err != nil {
			return mpa.Int{}, err
		}
	}
	return result, nil
}

// mulDiv returns c*m/d for non-negative c, m, and d > 0 where d
// divides c*m. The intermediate values are bounded by max(c*m/d, d*m).
func mulDiv(c, m, d mpa.Int) (mpa.Int, error) {
	q, s, err := c.DivRem(d)
	if err != nil {
		return mpa.Int{}, err
	}
	hi, err := q.Mul(m)
	if err != nil {
		return mpa.Int{}, err
	}
	lo, err := s.Mul(m)
	if err != nil {
		return mpa.Int{}, err
	}
	lo, _, err = lo.DivRem(d)
	if err != nil {
		return mpa.Int{}, err
	}
	return hi.Add(lo)
}

// Permutation returns the number of ordered r-element sequences drawn
// from an n-element set, n!/(n-r)!, as the product of n-i for
// i=0..r-1.
func Permutation(n, r int64, info types.Info) (mpa.Int, error) {
	if err := checkRange("Permutation", n, r); err != nil {
		return mpa.Int{}, err
	}
	result, err := mpa.NewUint(1, info)
	if err != nil {
		return mpa.Int{}, err
	}
	for i := int64(0); i < r; i++ {
		f, err := mpa.NewInt(n-i, info)
		if err != nil {
			return mpa.Int{}, err
		}
		result, err = result.Mul(f)
		if err != nil {
			return mpa.Int{}, err
		}
	}
	return result, nil
}

// GaussSum returns the sum 0+1+...+n = n(n+1)/2. The even factor is
// halved before the multiplication so the intermediate value never
// exceeds the result.
func GaussSum(n int64, info types.Info) (mpa.Int, error) {
	if n < 0 {
		return mpa.Int{}, fmt.Errorf("numtheory.GaussSum: n=%d: %w",
			n, ErrInvalidRange)
	}
	a, err := mpa.NewInt(n, info)
	if err != nil {
		return mpa.Int{}, err
	}
	one, err := mpa.NewUint(1, info)
	if err != nil {
		return mpa.Int{}, err
	}
	b, err := a.Add(one)
	if err != nil {
		return mpa.Int{}, err
	}
	if n%2 == 0 {
		a = a.Rsh(1)
	} else {
		b = b.Rsh(1)
	}
	return a.Mul(b)
}

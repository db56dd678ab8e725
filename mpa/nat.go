//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package mpa

import (
	"math/bits"
)

// Word is one limb of a multi-precision magnitude.
type Word = uint64

const (
	wordBits = 64
	// decimal10 is the largest power of 10 that fits into a Word and
	// decimalDigits its number of digits.
	decimal10     Word = 10000000000000000000
	decimalDigits      = 19
)

// nat is an unsigned magnitude stored as little-endian limbs. The
// functions in this file never modify their arguments; results are
// normalized (no leading zero limbs) unless noted otherwise.
type nat []Word

func (x nat) norm() nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

func natFromWord(w Word) nat {
	if w == 0 {
		return nil
	}
	return nat{w}
}

func (x nat) isZero() bool {
	return len(x.norm()) == 0
}

func (x nat) bitLen() int {
	x = x.norm()
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*wordBits + bits.Len64(x[len(x)-1])
}

func (x nat) bit(i int) uint {
	idx := i / wordBits
	if i < 0 || idx >= len(x) {
		return 0
	}
	return uint(x[idx]>>(uint(i)%wordBits)) & 1
}

func (x nat) cmp(y nat) int {
	x = x.norm()
	y = y.norm()
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// pad returns x extended to n limbs. The result does not share
// storage with x.
func (x nat) pad(n int) nat {
	z := make(nat, n)
	copy(z, x.norm())
	return z
}

func addNat(x, y nat) nat {
	x = x.norm()
	y = y.norm()
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	var carry Word
	for i := 0; i < len(x); i++ {
		var yi Word
		if i < len(y) {
			yi = y[i]
		}
		z[i], carry = bits.Add64(x[i], yi, carry)
	}
	z[len(x)] = carry
	return z.norm()
}

// subNat returns x-y. The caller must ensure x >= y.
func subNat(x, y nat) nat {
	x = x.norm()
	y = y.norm()
	if len(x) < len(y) {
		panic("mpa: subNat underflow")
	}
	z := make(nat, len(x))
	var borrow Word
	for i := 0; i < len(x); i++ {
		var yi Word
		if i < len(y) {
			yi = y[i]
		}
		z[i], borrow = bits.Sub64(x[i], yi, borrow)
	}
	if borrow != 0 {
		panic("mpa: subNat underflow")
	}
	return z.norm()
}

// mulNat computes x*y with schoolbook multiplication over the
// significant limbs of the operands.
func mulNat(x, y nat) nat {
	x = x.norm()
	y = y.norm()
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make(nat, len(x)+len(y))
	for j, yj := range y {
		if yj == 0 {
			continue
		}
		var carry Word
		for i, xi := range x {
			hi, lo := bits.Mul64(xi, yj)
			var c Word
			lo, c = bits.Add64(lo, z[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			z[i+j] = lo
			carry = hi
		}
		z[j+len(x)] = carry
	}
	return z.norm()
}

// mulAddWW returns x*y+r.
func mulAddWW(x nat, y, r Word) nat {
	x = x.norm()
	z := make(nat, len(x)+1)
	carry := r
	for i, xi := range x {
		hi, lo := bits.Mul64(xi, y)
		var c Word
		z[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
	z[len(x)] = carry
	return z.norm()
}

// divW returns the quotient and remainder of x/y for a single limb
// divisor y != 0.
func divW(x nat, y Word) (nat, Word) {
	x = x.norm()
	q := make(nat, len(x))
	var r Word
	for i := len(x) - 1; i >= 0; i-- {
		q[i], r = bits.Div64(r, x[i], y)
	}
	return q.norm(), r
}

// divNat returns the quotient and remainder of x/y. The divisor must
// not be zero.
func divNat(x, y nat) (nat, nat) {
	x = x.norm()
	y = y.norm()
	if len(y) == 0 {
		panic("mpa: division by zero")
	}
	if x.cmp(y) < 0 {
		return nil, append(nat(nil), x...)
	}
	if len(y) == 1 {
		q, r := divW(x, y[0])
		return q, natFromWord(r)
	}

	// Shift-subtract long division from the most significant dividend
	// bit downwards.
	n := x.bitLen()
	q := make(nat, len(x))
	var r nat
	for i := n - 1; i >= 0; i-- {
		r = shlNat(r, 1)
		if x.bit(i) == 1 {
			if len(r) == 0 {
				r = nat{1}
			} else {
				r[0] |= 1
			}
		}
		if r.cmp(y) >= 0 {
			r = subNat(r, y)
			q[i/wordBits] |= 1 << (uint(i) % wordBits)
		}
	}
	return q.norm(), r.norm()
}

func shlNat(x nat, s uint) nat {
	x = x.norm()
	if len(x) == 0 {
		return nil
	}
	limbs := int(s / wordBits)
	shift := s % wordBits
	z := make(nat, len(x)+limbs+1)
	if shift == 0 {
		copy(z[limbs:], x)
		return z.norm()
	}
	for i := len(x) - 1; i >= 0; i-- {
		z[i+limbs+1] |= x[i] >> (wordBits - shift)
		z[i+limbs] = x[i] << shift
	}
	return z.norm()
}

func shrNat(x nat, s uint) nat {
	x = x.norm()
	limbs := int(s / wordBits)
	if limbs >= len(x) {
		return nil
	}
	shift := s % wordBits
	z := make(nat, len(x)-limbs)
	if shift == 0 {
		copy(z, x[limbs:])
		return z.norm()
	}
	for i := range z {
		z[i] = x[i+limbs] >> shift
		if i+limbs+1 < len(x) {
			z[i] |= x[i+limbs+1] << (wordBits - shift)
		}
	}
	return z.norm()
}

// pow2 returns 2**n.
func pow2(n int) nat {
	z := make(nat, n/wordBits+1)
	z[n/wordBits] = 1 << (uint(n) % wordBits)
	return z
}

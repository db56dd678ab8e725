//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package mpa

import (
	"fmt"

	"github.com/markkurossi/wide/types"
	"golang.org/x/exp/constraints"
)

// Int implements fixed-width multi-precision integers. The value is
// stored in sign-magnitude form: abs holds exactly info.Bits.Limbs()
// little-endian limbs. Int values are immutable; all operations
// return new values.
type Int struct {
	info types.Info
	neg  bool
	abs  nat
}

// Zero returns the zero value of the integer type info.
func Zero(info types.Info) Int {
	return Int{
		info: info,
		abs:  make(nat, info.Bits.Limbs()),
	}
}

// FromInteger creates a new Int of type info with init value x.
func FromInteger[T constraints.Integer](x T, info types.Info) (Int, error) {
	if x < 0 {
		// Two's complement negation of the uint64 bit pattern gives
		// the magnitude, also for the minimum value of the type.
		return newInt("mpa.FromInteger", info, true, natFromWord(-uint64(int64(x))))
	}
	return newInt("mpa.FromInteger", info, false, natFromWord(uint64(x)))
}

// NewInt creates a new Int of type info with init value x.
func NewInt(x int64, info types.Info) (Int, error) {
	return FromInteger(x, info)
}

// NewUint creates a new Int of type info with init value x.
func NewUint(x uint64, info types.Info) (Int, error) {
	return FromInteger(x, info)
}

// newInt creates an Int from its sign and magnitude. It fails if the
// type is not an integer type or the value does not fit into it.
func newInt(op string, info types.Info, neg bool, abs nat) (Int, error) {
	if !info.Integer() || !info.Bits.Valid() {
		return Int{}, fmt.Errorf("%s: %v: %w", op, info, ErrType)
	}
	abs = abs.norm()
	if len(abs) == 0 {
		neg = false
	}
	if !fits(info, neg, abs) {
		return Int{}, fmt.Errorf("%s: %v: %w", op, info, ErrOverflow)
	}
	return Int{
		info: info,
		neg:  neg,
		abs:  abs.pad(info.Bits.Limbs()),
	}, nil
}

// fits tests if the value with sign neg and magnitude abs is
// representable in the type info. Signed types hold the two's
// complement range [-2**(bits-1), 2**(bits-1)-1].
func fits(info types.Info, neg bool, abs nat) bool {
	bits := int(info.Bits)
	n := abs.bitLen()
	if !info.Signed() {
		return !neg && n <= bits
	}
	if n <= bits-1 {
		return true
	}
	return neg && abs.cmp(pow2(bits-1)) == 0
}

// Info returns the type info of x.
func (x Int) Info() types.Info {
	return x.info
}

// Bits returns the declared bit width of x.
func (x Int) Bits() int {
	return int(x.info.Bits)
}

// Signed tests if x is of a signed type.
func (x Int) Signed() bool {
	return x.info.Signed()
}

// Sign returns -1, 0, 1 if x is negative, zero, or positive.
func (x Int) Sign() int {
	switch {
	case x.abs.isZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// IsZero tests if x is zero.
func (x Int) IsZero() bool {
	return x.abs.isZero()
}

// BitLen returns the length of the absolute value of x in bits.
func (x Int) BitLen() int {
	return x.abs.bitLen()
}

// Bit returns the value of the i'th bit of the absolute value of x.
func (x Int) Bit(i int) uint {
	return x.abs.bit(i)
}

// Limbs returns a copy of the little-endian limbs of the absolute
// value of x.
func (x Int) Limbs() []uint64 {
	result := make([]uint64, len(x.abs))
	copy(result, x.abs)
	return result
}

// Cmp compares x and y and returns -1, 0, 1 if x is smaller, equal,
// or greater than y. The operands may have different types.
func (x Int) Cmp(y Int) int {
	xs := x.Sign()
	ys := y.Sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	}
	c := x.abs.cmp(y.abs)
	if xs < 0 {
		return -c
	}
	return c
}

// Add returns x+y.
func (x Int) Add(y Int) (Int, error) {
	info := x.info.Join(y.info)
	neg, abs := addSigned(x.neg, x.abs, y.neg, y.abs)
	return newInt("mpa.Add", info, neg, abs)
}

// Sub returns x-y.
func (x Int) Sub(y Int) (Int, error) {
	info := x.info.Join(y.info)
	neg, abs := addSigned(x.neg, x.abs, !y.neg, y.abs)
	return newInt("mpa.Sub", info, neg, abs)
}

func addSigned(xneg bool, xabs nat, yneg bool, yabs nat) (bool, nat) {
	if xneg == yneg {
		return xneg, addNat(xabs, yabs)
	}
	if xabs.cmp(yabs) >= 0 {
		return xneg, subNat(xabs, yabs)
	}
	return yneg, subNat(yabs, xabs)
}

// Mul returns x*y.
func (x Int) Mul(y Int) (Int, error) {
	info := x.info.Join(y.info)
	return newInt("mpa.Mul", info, x.neg != y.neg, mulNat(x.abs, y.abs))
}

// DivRem returns the quotient q and remainder r of x/y so that
// x = q*y + r and 0 <= r < |y|. The remainder is never negative also
// for signed operands.
func (x Int) DivRem(y Int) (q, r Int, err error) {
	info := x.info.Join(y.info)
	if y.IsZero() {
		return Int{}, Int{},
			fmt.Errorf("mpa.DivRem: %v/0: %w", x, ErrDivisionByZero)
	}
	qabs, rabs := divNat(x.abs, y.abs)
	if x.neg && len(rabs) > 0 {
		qabs = addNat(qabs, nat{1})
		rabs = subNat(y.abs, rabs)
	}
	q, err = newInt("mpa.DivRem", info, x.neg != y.neg, qabs)
	if err != nil {
		return
	}
	r, err = newInt("mpa.DivRem", info, false, rabs)
	return
}

// Neg returns -x.
func (x Int) Neg() (Int, error) {
	return newInt("mpa.Neg", x.info, !x.neg, x.abs)
}

// Abs returns the absolute value of x as an unsigned integer of the
// same width. The result always fits.
func (x Int) Abs() Int {
	return Int{
		info: types.Uint(x.info.Bits),
		abs:  x.abs,
	}
}

// Lsh returns x<<n. It fails if the result does not fit into the type
// of x.
func (x Int) Lsh(n uint) (Int, error) {
	return newInt("mpa.Lsh", x.info, x.neg, shlNat(x.abs, n))
}

// Rsh returns x>>n. The shift is applied to the absolute value i.e.
// it truncates towards zero.
func (x Int) Rsh(n uint) Int {
	result, err := newInt("mpa.Rsh", x.info, x.neg, shrNat(x.abs, n))
	if err != nil {
		panic(err)
	}
	return result
}

// Convert converts x into the integer type info. The conversion
// fails with ErrOverflow if the value does not fit into info.
func (x Int) Convert(info types.Info) (Int, error) {
	return newInt("mpa.Convert", info, x.neg, x.abs)
}

// Int64 returns the int64 representation of x and a boolean
// indicating if x was representable as int64.
func (x Int) Int64() (int64, bool) {
	v, err := x.Convert(types.Int64)
	if err != nil {
		return 0, false
	}
	if v.neg {
		return -int64(v.abs[0]), true
	}
	return int64(v.abs[0]), true
}

// Uint64 returns the uint64 representation of x and a boolean
// indicating if x was representable as uint64.
func (x Int) Uint64() (uint64, bool) {
	v, err := x.Convert(types.Uint64)
	if err != nil {
		return 0, false
	}
	return v.abs[0], true
}

//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpa

import (
	"fmt"
	"math"
	"strconv"

	"github.com/markkurossi/wide/types"
)

// Float implements fixed-width multi-precision floating point
// numbers. The value is mant * 2**(exp-prec) where prec is the
// mantissa precision, info.Bits-1 bits. Non-zero values are
// normalized so that the absolute value of the mantissa has exactly
// prec bits. The exponent is a signed integer of the type
// info.Exponent(). Results that round to a value above the exponent
// range fail with ErrOverflow, results below it flush to zero.
type Float struct {
	info types.Info
	mant Int
	exp  Int
}

func precision(info types.Info) int {
	return int(info.Bits) - 1
}

// ZeroFloat returns the zero value of the floating point type info.
func ZeroFloat(info types.Info) Float {
	return Float{
		info: info,
		mant: Zero(types.Int(info.Bits)),
		exp:  Zero(info.Exponent()),
	}
}

// OneFloat returns the value 1 of the floating point type info.
func OneFloat(info types.Info) (Float, error) {
	return newFloat("mpa.OneFloat", info, false, nat{1}, 0)
}

// FloatFromInt converts the integer x into the floating point type
// info. The value is rounded to the precision of info.
func FloatFromInt(x Int, info types.Info) (Float, error) {
	return newFloat("mpa.FloatFromInt", info, x.neg, x.abs, 0)
}

// FloatFromFloat64 converts the float64 value f into the floating
// point type info.
func FloatFromFloat64(f float64, info types.Info) (Float, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Float{}, fmt.Errorf("mpa.FloatFromFloat64: %v: %w",
			f, ErrOverflow)
	}
	frac, e := math.Frexp(math.Abs(f))
	mant := uint64(math.Ldexp(frac, 53))
	return newFloat("mpa.FloatFromFloat64", info, f < 0,
		natFromWord(mant), int64(e-53))
}

// Ratio returns num/den as a floating point number of type info.
func Ratio(num, den Int, info types.Info) (Float, error) {
	n, err := FloatFromInt(num, info)
	if err != nil {
		return Float{}, err
	}
	d, err := FloatFromInt(den, info)
	if err != nil {
		return Float{}, err
	}
	return n.Quo(d)
}

// newFloat creates a float from the value (-1)**neg * mag * 2**e2,
// rounding mag to the precision of info.
func newFloat(op string, info types.Info, neg bool, mag nat, e2 int64) (
	Float, error) {

	if info.Type != types.TFloat || !info.Bits.Valid() {
		return Float{}, fmt.Errorf("%s: %v: %w", op, info, ErrType)
	}
	mag = mag.norm()
	if len(mag) == 0 {
		return ZeroFloat(info), nil
	}
	prec := precision(info)
	n := mag.bitLen()
	if n > prec {
		shift := n - prec
		round := mag.bit(shift - 1)
		mag = shrNat(mag, uint(shift))
		e2 += int64(shift)
		if round == 1 {
			mag = addNat(mag, nat{1})
			if mag.bitLen() > prec {
				mag = shrNat(mag, 1)
				e2++
			}
		}
	} else if n < prec {
		mag = shlNat(mag, uint(prec-n))
		e2 -= int64(prec - n)
	}

	expInfo := info.Exponent()
	exp := e2 + int64(prec)
	bound := int64(1) << (expInfo.Bits - 1)
	if exp >= bound {
		return Float{}, fmt.Errorf("%s: %v: exponent %d: %w",
			op, info, exp, ErrOverflow)
	}
	if exp < -bound {
		return ZeroFloat(info), nil
	}
	mant, err := newInt(op, types.Int(info.Bits), neg, mag)
	if err != nil {
		return Float{}, err
	}
	e, err := NewInt(exp, expInfo)
	if err != nil {
		return Float{}, err
	}
	return Float{
		info: info,
		mant: mant,
		exp:  e,
	}, nil
}

// unpack returns the sign, magnitude, and binary exponent of x so
// that x = (-1)**neg * mag * 2**e2.
func (x Float) unpack() (neg bool, mag nat, e2 int64) {
	exp, _ := x.exp.Int64()
	return x.mant.neg, x.mant.abs.norm(), exp - int64(precision(x.info))
}

func joinFloat(x, y types.Info) types.Info {
	if y.Bits > x.Bits {
		return y
	}
	return x
}

// Info returns the type info of x.
func (x Float) Info() types.Info {
	return x.info
}

// Mantissa returns the signed mantissa of x.
func (x Float) Mantissa() Int {
	return x.mant
}

// Exponent returns the signed exponent of x.
func (x Float) Exponent() Int {
	return x.exp
}

// Sign returns -1, 0, 1 if x is negative, zero, or positive.
func (x Float) Sign() int {
	return x.mant.Sign()
}

// IsZero tests if x is zero.
func (x Float) IsZero() bool {
	return x.mant.IsZero()
}

// Neg returns -x.
func (x Float) Neg() Float {
	if x.IsZero() {
		return x
	}
	result := x
	result.mant.neg = !x.mant.neg
	return result
}

// Add returns x+y.
func (x Float) Add(y Float) (Float, error) {
	return addFloat("mpa.Float.Add", x, y, false)
}

// Sub returns x-y.
func (x Float) Sub(y Float) (Float, error) {
	return addFloat("mpa.Float.Sub", x, y, true)
}

func addFloat(op string, x, y Float, negY bool) (Float, error) {
	info := joinFloat(x.info, y.info)
	xn, xm, xe := x.unpack()
	yn, ym, ye := y.unpack()
	yn = yn != negY
	if len(ym) == 0 {
		return newFloat(op, info, xn, xm, xe)
	}
	if len(xm) == 0 {
		return newFloat(op, info, yn, ym, ye)
	}

	// Drop the smaller operand if it is below the rounding position
	// of the larger.
	xs := xe + int64(xm.bitLen())
	ys := ye + int64(ym.bitLen())
	limit := int64(precision(info)) + 2
	switch {
	case xs-ys > limit:
		return newFloat(op, info, xn, xm, xe)
	case ys-xs > limit:
		return newFloat(op, info, yn, ym, ye)
	}

	e := min(xe, ye)
	xm = shlNat(xm, uint(xe-e))
	ym = shlNat(ym, uint(ye-e))
	neg, mag := addSigned(xn, xm, yn, ym)
	return newFloat(op, info, neg, mag, e)
}

// Mul returns x*y.
func (x Float) Mul(y Float) (Float, error) {
	xn, xm, xe := x.unpack()
	yn, ym, ye := y.unpack()
	return newFloat("mpa.Float.Mul", joinFloat(x.info, y.info),
		xn != yn, mulNat(xm, ym), xe+ye)
}

// Quo returns x/y.
func (x Float) Quo(y Float) (Float, error) {
	info := joinFloat(x.info, y.info)
	if y.IsZero() {
		return Float{}, fmt.Errorf("mpa.Float.Quo: %v/0: %w",
			x, ErrDivisionByZero)
	}
	xn, xm, xe := x.unpack()
	yn, ym, ye := y.unpack()

	// Scale the dividend so that the integer quotient has at least
	// prec+2 bits.
	shift := precision(info) + 2 + ym.bitLen()
	q, _ := divNat(shlNat(xm, uint(shift)), ym)
	return newFloat("mpa.Float.Quo", info, xn != yn, q,
		xe-ye-int64(shift))
}

// Pow returns x**n. The value 0**0 is 1.
func (x Float) Pow(n uint) (Float, error) {
	result, err := OneFloat(x.info)
	if err != nil {
		return Float{}, err
	}
	base := x
	for n > 0 {
		if n&1 == 1 {
			result, err = result.Mul(base)
			if err != nil {
				return Float{}, err
			}
		}
		n >>= 1
		if n > 0 {
			base, err = base.Mul(base)
			if err != nil {
				return Float{}, err
			}
		}
	}
	return result, nil
}

// Cmp compares x and y and returns -1, 0, 1 if x is smaller, equal,
// or greater than y.
func (x Float) Cmp(y Float) int {
	xs := x.Sign()
	ys := y.Sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs == 0:
		return 0
	}
	_, xm, xe := x.unpack()
	_, ym, ye := y.unpack()

	var c int
	xsci := xe + int64(xm.bitLen())
	ysci := ye + int64(ym.bitLen())
	switch {
	case xsci < ysci:
		c = -1
	case xsci > ysci:
		c = 1
	default:
		e := min(xe, ye)
		c = shlNat(xm, uint(xe-e)).cmp(shlNat(ym, uint(ye-e)))
	}
	if xs < 0 {
		return -c
	}
	return c
}

// Float64 returns the float64 value nearest to x.
func (x Float) Float64() float64 {
	neg, mag, e2 := x.unpack()
	if len(mag) == 0 {
		return 0
	}
	if n := mag.bitLen(); n > wordBits {
		mag = shrNat(mag, uint(n-wordBits))
		e2 += int64(n - wordBits)
	}
	f := math.Ldexp(float64(mag[0]), int(e2))
	if neg {
		return -f
	}
	return f
}

func (x Float) String() string {
	return strconv.FormatFloat(x.Float64(), 'g', -1, 64)
}

//
// types.go
//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package types

import (
	"fmt"
)

// Type specifies a numeric type kind.
type Type int8

// Size specify sizes and bit counts of numeric types.
type Size int32

func (t Type) String() string {
	for k, v := range Types {
		if v == t {
			return k
		}
	}
	return fmt.Sprintf("{Type %d}", t)
}

// ShortString returns a short string name for the type.
func (t Type) ShortString() string {
	name, ok := shortTypes[t]
	if ok {
		return name
	}
	return t.String()
}

// LimbBits defines the limb size in bits.
const LimbBits = 64

// Numeric types.
const (
	TUndefined Type = iota
	TInt
	TUint
	TFloat
)

// Types define numeric types and their names.
var Types = map[string]Type{
	"<Undefined>": TUndefined,
	"int":         TInt,
	"uint":        TUint,
	"float":       TFloat,
}

var shortTypes = map[Type]string{
	TUndefined: "?",
	TInt:       "i",
	TUint:      "u",
	TFloat:     "f",
}

// Widths lists the declared type widths in ascending order.
var Widths = []Size{
	4, 8, 16, 32, 64, 128, 512, 1024, 2048, 3072, 4096, 8192,
}

// MaxWidth is the widest declared type width.
const MaxWidth Size = 8192

// Valid tests if the size is one of the declared widths.
func (s Size) Valid() bool {
	for _, w := range Widths {
		if w == s {
			return true
		}
	}
	return false
}

// Limbs returns the number of limbs needed to hold s bits.
func (s Size) Limbs() int {
	return (int(s) + LimbBits - 1) / LimbBits
}

// Info specifies information about a numeric type.
type Info struct {
	Type Type
	Bits Size
}

// Undefined defines type info for undefined types.
var Undefined = Info{
	Type: TUndefined,
}

// Predeclared type infos.
var (
	Int32    = Int(32)
	Int64    = Int(64)
	Uint8    = Uint(8)
	Uint32   = Uint(32)
	Uint64   = Uint(64)
	Uint128  = Uint(128)
	Uint512  = Uint(512)
	Uint8192 = Uint(8192)
	Int8192  = Int(8192)
	Float64  = Float(64)
	Float128 = Float(128)
)

// Int returns type info for signed integers of the argument width.
func Int(bits Size) Info {
	return Info{
		Type: TInt,
		Bits: bits,
	}
}

// Uint returns type info for unsigned integers of the argument width.
func Uint(bits Size) Info {
	return Info{
		Type: TUint,
		Bits: bits,
	}
}

// Float returns type info for floating point numbers of the argument
// width.
func Float(bits Size) Info {
	return Info{
		Type: TFloat,
		Bits: bits,
	}
}

func (i Info) String() string {
	if i.Bits == 0 {
		return i.Type.String()
	}
	return fmt.Sprintf("%s%d", i.Type, i.Bits)
}

// ShortString returns a short string name for the type info.
func (i Info) ShortString() string {
	if i.Bits == 0 {
		return i.Type.ShortString()
	}
	return fmt.Sprintf("%s%d", i.Type.ShortString(), i.Bits)
}

// Undefined tests if type is undefined.
func (i Info) Undefined() bool {
	return i.Type == TUndefined
}

// Valid tests if the type info names a declared numeric type.
func (i Info) Valid() bool {
	switch i.Type {
	case TInt, TUint, TFloat:
		return i.Bits.Valid()
	default:
		return false
	}
}

// Signed tests if the type can hold negative values.
func (i Info) Signed() bool {
	return i.Type == TInt || i.Type == TFloat
}

// Integer tests if the type is an integer type.
func (i Info) Integer() bool {
	return i.Type == TInt || i.Type == TUint
}

// Equal tests if the argument type is equal to this type info.
func (i Info) Equal(o Info) bool {
	return i.Type == o.Type && i.Bits == o.Bits
}

// Widen returns the type of the same kind with the next declared
// width. The widest type widens to itself.
func (i Info) Widen() Info {
	for _, w := range Widths {
		if w > i.Bits {
			return Info{
				Type: i.Type,
				Bits: w,
			}
		}
	}
	return i
}

// Exponent returns the signed exponent type for a floating point
// type.
func (i Info) Exponent() Info {
	switch {
	case i.Bits <= 8:
		return Int(4)
	case i.Bits <= 16:
		return Int(8)
	case i.Bits <= 32:
		return Int(16)
	default:
		return Int(32)
	}
}

// Join returns the result type of a binary integer operation between
// i and o: the wider width, signed if either operand is signed.
func (i Info) Join(o Info) Info {
	result := i
	if o.Bits > result.Bits {
		result.Bits = o.Bits
	}
	if o.Type == TInt {
		result.Type = TInt
	}
	return result
}

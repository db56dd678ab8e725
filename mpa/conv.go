//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package mpa

import (
	"fmt"
	"io"
	"strings"

	"github.com/markkurossi/wide/types"
)

// Parse parses the decimal or 0x-prefixed hexadecimal string s into
// an Int of type info. The string may have a leading sign.
func Parse(s string, info types.Info) (Int, error) {
	orig := s
	var neg bool
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	var abs nat
	var err error
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		abs, err = parseHex(s[2:], int(info.Bits))
	} else {
		abs, err = parseDecimal(s, int(info.Bits))
	}
	if err != nil {
		return Int{}, fmt.Errorf("mpa.Parse: %q: %w", orig, err)
	}
	return newInt("mpa.Parse", info, neg, abs)
}

// MustParse parses the string s into an Int of type info and panics
// if the string is invalid.
func MustParse(s string, info types.Info) Int {
	result, err := Parse(s, info)
	if err != nil {
		panic(err)
	}
	return result
}

func parseHex(s string, bits int) (nat, error) {
	if len(s) == 0 {
		return nil, ErrSyntax
	}
	var abs nat
	for _, r := range s {
		var d Word
		switch {
		case '0' <= r && r <= '9':
			d = Word(r - '0')
		case 'a' <= r && r <= 'f':
			d = Word(r - 'a' + 10)
		case 'A' <= r && r <= 'F':
			d = Word(r - 'A' + 10)
		default:
			return nil, ErrSyntax
		}
		abs = addNat(shlNat(abs, 4), natFromWord(d))
		if abs.bitLen() > bits+wordBits {
			return nil, ErrOverflow
		}
	}
	return abs, nil
}

func parseDecimal(s string, bits int) (nat, error) {
	if len(s) == 0 {
		return nil, ErrSyntax
	}
	var abs nat
	for len(s) > 0 {
		n := min(len(s), decimalDigits)
		var chunk Word
		mul := Word(1)
		for _, r := range s[:n] {
			if r < '0' || r > '9' {
				return nil, ErrSyntax
			}
			chunk = chunk*10 + Word(r-'0')
			mul *= 10
		}
		abs = mulAddWW(abs, mul, chunk)
		if abs.bitLen() > bits+wordBits {
			return nil, ErrOverflow
		}
		s = s[n:]
	}
	return abs, nil
}

func (x Int) String() string {
	return x.Text(10)
}

// Text returns the string representation of x in the given base. The
// supported bases are 10 and 16.
func (x Int) Text(base int) string {
	var sb strings.Builder
	if x.Sign() < 0 {
		sb.WriteByte('-')
	}
	switch base {
	case 16:
		sb.WriteString(hexString(x.abs))
	case 10:
		sb.WriteString(decimalString(x.abs))
	default:
		panic(fmt.Sprintf("mpa.Text: unsupported base %d", base))
	}
	return sb.String()
}

func hexString(x nat) string {
	x = x.norm()
	if len(x) == 0 {
		return "0"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%x", x[len(x)-1])
	for i := len(x) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016x", x[i])
	}
	return sb.String()
}

func decimalString(x nat) string {
	x = x.norm()
	if len(x) == 0 {
		return "0"
	}
	var chunks []Word
	for len(x) > 0 {
		var r Word
		x, r = divW(x, decimal10)
		chunks = append(chunks, r)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", chunks[len(chunks)-1])
	for i := len(chunks) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%019d", chunks[i])
	}
	return sb.String()
}

// Rand returns a random value of the integer type info. The random
// bits are read from r.
func Rand(r io.Reader, info types.Info) (Int, error) {
	if !info.Integer() || !info.Bits.Valid() {
		return Int{}, fmt.Errorf("mpa.Rand: %v: %w", info, ErrType)
	}
	buf := make([]byte, info.Bits.Limbs()*8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Int{}, err
	}
	abs := make(nat, info.Bits.Limbs())
	for i := range abs {
		for j := 0; j < 8; j++ {
			abs[i] |= Word(buf[i*8+j]) << (8 * j)
		}
	}
	// Signed values are read as bits-wide two's complement patterns
	// so the full range, including -2**(bits-1), is reachable.
	bits := int(info.Bits)
	abs = truncate(abs, bits)
	var neg bool
	if info.Signed() && abs.bit(bits-1) == 1 {
		neg = true
		abs = subNat(pow2(bits), abs)
	}
	return newInt("mpa.Rand", info, neg, abs)
}

// truncate returns the low n bits of x.
func truncate(x nat, n int) nat {
	z := append(nat(nil), x...)
	for i := range z {
		lo := i * wordBits
		switch {
		case lo >= n:
			z[i] = 0
		case lo+wordBits > n:
			z[i] &= (1 << uint(n-lo)) - 1
		}
	}
	return z.norm()
}

//
// parse.go
//
// Copyright (c) 2021-2026 Markku Rossi
//
// All rights reserved.
//

package types

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	reSized = regexp.MustCompilePOSIX(`^([[:alpha:]]+)([[:digit:]]+)$`)
)

// Parse parses type definition and returns its type information.
func Parse(val string) (info Info, err error) {
	m := reSized.FindStringSubmatch(val)
	if m == nil {
		return info, fmt.Errorf("types.Parse: unknown type: %s", val)
	}
	switch m[1] {
	case "i", "int":
		info.Type = TInt

	case "u", "uint":
		info.Type = TUint

	case "f", "float":
		info.Type = TFloat

	default:
		return info, fmt.Errorf("types.Parse: unknown type: %s", val)
	}
	bits, err := strconv.ParseInt(m[2], 10, 32)
	if err != nil {
		return Undefined, err
	}
	info.Bits = Size(bits)
	if !info.Bits.Valid() {
		return Undefined, fmt.Errorf("types.Parse: undeclared width: %s", val)
	}
	return
}

// MustParse parses the type definition and panics if it is invalid.
func MustParse(val string) Info {
	info, err := Parse(val)
	if err != nil {
		panic(err)
	}
	return info
}

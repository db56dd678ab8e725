//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpa

import (
	"errors"
)

// Errors returned by the arithmetic operations. The operations wrap
// these errors with the failing operation and type.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("overflow")
	ErrSyntax         = errors.New("invalid syntax")
	ErrType           = errors.New("invalid type")
)

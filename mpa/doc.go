//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

// Package mpa implements fixed-width multi-precision arithmetics. The
// integer and floating point types carry their declared bit width
// from the types package and every operation checks that its result
// fits into the width of the result type. Values are immutable so
// they can be shared freely between goroutines.
package mpa

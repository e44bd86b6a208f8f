// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set (unified, consistent).
// Conditions shared with the codec boundary are aliased from codec so that
// errors.Is matches across package borders; conditions owned by the scalar
// kernel are defined here with the "scalar: ..." message prefix.

package scalar

import (
	"errors"

	"github.com/katalvlaran/arbmath/codec"
)

// ErrMalformedInput aliases the codec sentinel: text does not match the
// canonical scalar grammar (whitespace, NUL, misplaced sign, stray '/').
var ErrMalformedInput = codec.ErrMalformedInput

// ErrOutOfRange aliases the codec sentinel: base outside [2,62] or an
// index/argument outside its declared bounds.
var ErrOutOfRange = codec.ErrOutOfRange

var (
	// ErrConversion indicates that a value does not fit the requested
	// narrower fixed-width type exactly.
	ErrConversion = errors.New("scalar: value does not fit target type")

	// ErrDivisionByZero indicates a zero denominator or zero divisor.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrNegativeExponent indicates an exponent below zero where only
	// non-negative exponents are defined.
	ErrNegativeExponent = errors.New("scalar: negative exponent")
)

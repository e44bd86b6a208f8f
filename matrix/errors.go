// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package, plus aliases for conditions shared with the codec and
// modular packages so errors.Is matches across borders. Public indexers
// MUST return these, not panic.

package matrix

import (
	"errors"

	"github.com/katalvlaran/arbmath/codec"
	"github.com/katalvlaran/arbmath/modular"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or
	// c<=0). Constructors must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub with different shapes, Mul where a.Cols != b.Rows,
	// or concatenation with a mismatched non-concatenated axis.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// ErrOutOfRange aliases the codec sentinel: a row or column index is
// negative, overflows the signed 64-bit index domain, or exceeds the shape.
var ErrOutOfRange = codec.ErrOutOfRange

// ErrMalformedInput aliases the codec sentinel for text that does not match
// the bracketed grammar (including ragged rows).
var ErrMalformedInput = codec.ErrMalformedInput

// ErrInvalidModulus aliases the modular sentinel for a non-positive " mod "
// suffix.
var ErrInvalidModulus = modular.ErrInvalidModulus

// ErrModulusMismatch aliases the modular sentinel for operations across
// matrices with unequal modulus values.
var ErrModulusMismatch = modular.ErrModulusMismatch

// SPDX-License-Identifier: MIT
// Package modular: sentinel error set (unified, consistent).
// Shared conditions are aliased from codec/scalar so errors.Is matches
// across package borders; modulus-specific conditions live here with the
// "modular: ..." message prefix.

package modular

import (
	"errors"

	"github.com/katalvlaran/arbmath/codec"
)

// ErrMalformedInput aliases the codec sentinel for grammar violations.
var ErrMalformedInput = codec.ErrMalformedInput

// ErrOutOfRange aliases the codec sentinel for out-of-bounds arguments.
var ErrOutOfRange = codec.ErrOutOfRange

var (
	// ErrInvalidModulus indicates a non-positive integer modulus or a
	// degenerate ring modulus (non-prime q, or f of degree < 1 after
	// reduction mod q).
	ErrInvalidModulus = errors.New("modular: invalid modulus")

	// ErrModulusMismatch indicates an operation across two values whose
	// contexts hold unequal modulus values.
	ErrModulusMismatch = errors.New("modular: modulus mismatch")

	// ErrNotInvertible indicates that a residue has no multiplicative
	// inverse under its modulus (gcd(value, modulus) != 1).
	ErrNotInvertible = errors.New("modular: element not invertible")
)

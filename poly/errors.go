// SPDX-License-Identifier: MIT
// Package poly: sentinel error set (unified, consistent).
// Shared conditions are aliased from codec; the grammar diagnostic owned by
// this package carries the "poly: ..." message prefix.

package poly

import (
	"errors"

	"github.com/katalvlaran/arbmath/codec"
)

// ErrMalformedInput aliases the codec sentinel for grammar violations.
var ErrMalformedInput = codec.ErrMalformedInput

// ErrOutOfRange aliases the codec sentinel for negative or overflowing
// indices.
var ErrOutOfRange = codec.ErrOutOfRange

// ErrMissingSeparator indicates that the count and the coefficient list are
// not divided by the required double space. It is distinct from
// ErrMalformedInput to make the most common formatting mistake diagnosable.
var ErrMissingSeparator = errors.New("poly: missing double-space separator")

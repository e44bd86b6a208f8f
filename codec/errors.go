// SPDX-License-Identifier: MIT
// Package codec: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the codec
// package and re-exported (aliased) by the value packages that surface the
// same conditions. All functions MUST return these sentinels and tests MUST
// check them via errors.Is. No function panics on user-triggered conditions.

package codec

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "codec: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary; callers will still use errors.Is to match.

var (
	// ErrMalformedInput indicates that a text token does not match the
	// canonical grammar of the requesting type: embedded whitespace, an
	// interior NUL byte, misplaced signs, stray separators, invalid digits.
	ErrMalformedInput = errors.New("codec: malformed input")

	// ErrOutOfRange indicates that an argument is outside its declared
	// bounds: a base not in [2,62], a negative index, or an index that does
	// not fit the signed 64-bit index domain.
	ErrOutOfRange = errors.New("codec: argument out of range")

	// ErrMissingField indicates that a serialized wrapper does not contain
	// the fixed field the type requires.
	ErrMissingField = errors.New("codec: missing wrapper field")

	// ErrUnexpectedField indicates that a serialized wrapper carries a field
	// other than the single fixed one.
	ErrUnexpectedField = errors.New("codec: unexpected wrapper field")

	// ErrDuplicateField indicates that the fixed wrapper field appears more
	// than once in the serialized form.
	ErrDuplicateField = errors.New("codec: duplicate wrapper field")

	// ErrNonStringPayload indicates that the wrapper field holds something
	// other than a single text payload.
	ErrNonStringPayload = errors.New("codec: wrapper payload is not a string")
)

// Package codec: base and index boundaries shared by all value packages.
// Every path that accepts a positional base or an integer-like index crosses
// one of the two checks below before the value reaches the arithmetic engine.

package codec

import (
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// MinBase and MaxBase delimit the positional bases every scalar codec
// accepts. Anything outside is a contract violation, not a parse failure.
const (
	MinBase = 2
	MaxBase = 62
)

// CheckBase validates a positional base against [MinBase, MaxBase].
// Returns ErrOutOfRange for any other value.
// Complexity: O(1).
func CheckBase(base int) error {
	if base < MinBase || base > MaxBase {
		return ErrOutOfRange
	}

	return nil
}

// CheckToken pre-validates a numeric text token before it is handed to the
// arithmetic engine: the token must be non-empty and must contain neither
// whitespace (anywhere, including the edges) nor an interior NUL byte.
// Digit-level validation stays with the engine; CheckToken only guards the
// conditions the engine would mis-handle or accept silently.
// Complexity: O(len(s)).
func CheckToken(s string) error {
	if s == "" {
		return ErrMalformedInput
	}
	if strings.ContainsRune(s, 0) {
		return ErrMalformedInput
	}
	if strings.IndexFunc(s, isSpace) >= 0 {
		return ErrMalformedInput
	}

	return nil
}

// isSpace reports whether r is one of the whitespace runes the canonical
// grammars never allow inside a token.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// ToIndex funnels any fixed-width integer into the single signed 64-bit
// index domain. Negative values and values above math.MaxInt64 are rejected
// with ErrOutOfRange instead of wrapping silently.
// Complexity: O(1).
func ToIndex[T constraints.Integer](v T) (int64, error) {
	if v < 0 {
		return 0, ErrOutOfRange
	}
	// v is non-negative here, so widening through uint64 is lossless for
	// every fixed-width source type.
	u := uint64(v)
	if u > math.MaxInt64 {
		return 0, ErrOutOfRange
	}

	return int64(u), nil
}

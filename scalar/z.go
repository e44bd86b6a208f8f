// Package scalar: the arbitrary-precision integer Z.
// Z wraps exactly one engine value (math/big) that the Z owns exclusively.
// Construction goes through the codec boundaries first, so no unchecked
// text and no out-of-range base ever reaches the engine.

package scalar

import (
	"math/big"
	"strings"

	"github.com/katalvlaran/arbmath/codec"

	"golang.org/x/exp/constraints"
)

// Z is an integer of arbitrary size. The zero value of Z is the integer 0
// and ready to use, but Z must always be handled through a pointer: copying
// a Z by value would alias the engine's storage.
type Z struct {
	v big.Int // exclusively owned engine storage
}

// NewZ returns a new integer with value 0.
// Complexity: O(1).
func NewZ() *Z {
	return new(Z)
}

// ZFromInt is the single coercion point absorbing every fixed-width integer
// type into Z. All mechanically derived operator forms (AddInt, ZMulInt, …)
// delegate here; the conversion itself is exact for every source width.
// Complexity: O(1).
func ZFromInt[T constraints.Integer](v T) *Z {
	var z Z
	if v < 0 {
		// Widening a negative source through int64 is lossless for every
		// signed fixed-width type.
		z.v.SetInt64(int64(v))
	} else {
		z.v.SetUint64(uint64(v))
	}

	return &z
}

// ZFromBig copies an engine value into a fresh Z. This is the boundary for
// sibling packages that already hold engine storage; the copy keeps the
// exclusive-ownership rule intact.
// Complexity: O(words).
func ZFromBig(x *big.Int) *Z {
	var z Z
	z.v.Set(x)

	return &z
}

// ZFromString parses a base-10 integer: an optional leading '-' followed by
// decimal digits. Anything else is ErrMalformedInput.
// Complexity: O(len(s)²) worst case inside the engine.
func ZFromString(s string) (*Z, error) {
	return ZFromStringBase(s, 10)
}

// ZFromStringBase parses an integer in the given base.
// Stage 1 (Validate): base in [2,62], token free of whitespace/NUL, no '+'
// sign (the grammar allows only an optional '-').
// Stage 2 (Parse): hand the token to the engine and check its verdict.
// Returns ErrOutOfRange for a bad base, ErrMalformedInput otherwise.
func ZFromStringBase(s string, base int) (*Z, error) {
	if err := codec.CheckBase(base); err != nil {
		return nil, err
	}
	if err := codec.CheckToken(s); err != nil {
		return nil, err
	}
	// The engine tolerates a leading '+', the canonical grammar does not.
	if strings.HasPrefix(s, "+") {
		return nil, ErrMalformedInput
	}

	var z Z
	if _, ok := z.v.SetString(s, base); !ok {
		return nil, ErrMalformedInput
	}

	return &z, nil
}

// Clone returns a deep copy of z. The returned value is fully independent:
// mutating one never affects the other.
// Complexity: O(words).
func (z *Z) Clone() *Z {
	return ZFromBig(&z.v)
}

// Big returns a deep copy of the underlying engine value, for call sites
// that must hand the value back to the engine themselves.
func (z *Z) Big() *big.Int {
	return new(big.Int).Set(&z.v)
}

// Equal reports whether z and other denote the same integer.
// Complexity: O(words).
func (z *Z) Equal(other *Z) bool {
	return z.v.Cmp(&other.v) == 0
}

// Cmp compares z and other and returns -1, 0 or +1.
func (z *Z) Cmp(other *Z) int {
	return z.v.Cmp(&other.v)
}

// Sign returns -1, 0 or +1 depending on the sign of z.
func (z *Z) Sign() int {
	return z.v.Sign()
}

// IsZero reports whether z is the additive identity.
func (z *Z) IsZero() bool {
	return z.v.Sign() == 0
}

// Text renders z in the given base; the output is the exact left inverse of
// ZFromStringBase for the same base. Returns ErrOutOfRange for a base
// outside [2,62].
func (z *Z) Text(base int) (string, error) {
	if err := codec.CheckBase(base); err != nil {
		return "", err
	}

	return z.v.Text(base), nil
}

// String renders z in base 10.
func (z *Z) String() string {
	return z.v.Text(10)
}

// Package scalar: exact narrowing from Z back to fixed-width integers.
// The engine's narrowing primitives return an unspecified result when the
// value is out of range, so each conversion re-widens the narrowed result
// and compares it against the original instead of trusting any sentinel.

package scalar

import "math/big"

// Int64 returns z as an int64 if, and only if, the value is exactly
// representable. Returns ErrConversion otherwise.
// Complexity: O(words) for the verification compare.
func (z *Z) Int64() (int64, error) {
	narrowed := z.v.Int64()
	if new(big.Int).SetInt64(narrowed).Cmp(&z.v) != 0 {
		return 0, ErrConversion
	}

	return narrowed, nil
}

// Uint64 returns z as a uint64 if, and only if, the value is exactly
// representable. Returns ErrConversion otherwise.
func (z *Z) Uint64() (uint64, error) {
	narrowed := z.v.Uint64()
	if new(big.Int).SetUint64(narrowed).Cmp(&z.v) != 0 {
		return 0, ErrConversion
	}

	return narrowed, nil
}

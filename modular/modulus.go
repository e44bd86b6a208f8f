// Package modular: the shared integer Modulus context.
// A Modulus is immutable once constructed, so any number of Zq values (and
// any number of goroutines) may hold the same *Modulus without copies or
// locks; the runtime releases the shared storage when the last referent is
// collected.

package modular

import (
	"math/big"

	"github.com/katalvlaran/arbmath/scalar"
)

// Modulus describes one positive integer modulus. Construct it once and
// share the pointer into every Zq built under it.
type Modulus struct {
	m big.Int // immutable after construction; always > 0
}

// NewModulus builds a context from a positive integer.
// Returns ErrInvalidModulus for zero or negative values.
// Complexity: O(words) for the defensive copy.
func NewModulus(v *scalar.Z) (*Modulus, error) {
	if v.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}

	var m Modulus
	m.m.Set(v.Big())

	return &m, nil
}

// ModulusFromString parses a positive base-10 integer into a context.
func ModulusFromString(s string) (*Modulus, error) {
	v, err := scalar.ZFromString(s)
	if err != nil {
		return nil, err
	}

	return NewModulus(v)
}

// Value returns the modulus as a new Z, independent of the context.
func (m *Modulus) Value() *scalar.Z {
	return scalar.ZFromBig(&m.m)
}

// Equal reports whether two contexts describe the same modulus value.
// Compatibility between Zq values is decided by this, never by pointer
// identity, so independently constructed equal contexts interoperate.
func (m *Modulus) Equal(other *Modulus) bool {
	return m.m.Cmp(&other.m) == 0
}

// String renders the modulus value in base 10.
func (m *Modulus) String() string {
	return m.m.Text(10)
}

// reduce returns the canonical representative of v in [0, m).
func (m *Modulus) reduce(v *big.Int) *big.Int {
	return reduceBig(v, &m.m)
}

// reduceBig normalizes v into [0, mod): the engine's truncated remainder is
// corrected by hand because a remainder of a negative input may itself be
// negative.
func reduceBig(v, mod *big.Int) *big.Int {
	out := new(big.Int).Rem(v, mod)
	if out.Sign() < 0 {
		out.Add(out, mod)
	}

	return out
}

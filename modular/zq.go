// Package modular: the modular scalar Zq.
// A Zq couples one canonical representative with a shared *Modulus. The
// representative invariant 0 <= v < modulus is re-established after every
// construction and every operation, never assumed from an operand's state.

package modular

import (
	"math/big"
	"strings"

	"github.com/katalvlaran/arbmath/scalar"

	"golang.org/x/exp/constraints"
)

// Zq is a residue class modulo a shared context. The zero value is not
// usable; construct through NewZq or ZqFromString.
type Zq struct {
	v big.Int  // canonical representative in [0, m)
	m *Modulus // shared immutable context
}

// NewZq builds the residue of v under m, reducing into [0, m) immediately;
// negative v values are normalized correctly.
// Complexity: one engine division.
func NewZq(v *scalar.Z, m *Modulus) *Zq {
	out := &Zq{m: m}
	out.v.Set(m.reduce(v.Big()))

	return out
}

// ZqFromInt absorbs any fixed-width integer into a residue under m.
func ZqFromInt[T constraints.Integer](v T, m *Modulus) *Zq {
	return NewZq(scalar.ZFromInt(v), m)
}

// ZqFromString parses the canonical form "<representative> mod <modulus>".
// The representative may be any integer (it is reduced); the modulus must
// be positive. A missing or repeated " mod " separator is ErrMalformedInput.
func ZqFromString(s string) (*Zq, error) {
	rep, mod, found := strings.Cut(s, " mod ")
	if !found || strings.Contains(mod, " mod ") {
		return nil, ErrMalformedInput
	}

	v, err := scalar.ZFromString(rep)
	if err != nil {
		return nil, err
	}
	m, err := ModulusFromString(mod)
	if err != nil {
		return nil, err
	}

	return NewZq(v, m), nil
}

// Clone returns a deep copy of the representative sharing the same context.
// The context itself is immutable and is deliberately not copied.
func (z *Zq) Clone() *Zq {
	out := &Zq{m: z.m}
	out.v.Set(&z.v)

	return out
}

// Modulus returns the shared context of z.
func (z *Zq) Modulus() *Modulus {
	return z.m
}

// Lift returns the canonical representative as a plain integer.
func (z *Zq) Lift() *scalar.Z {
	return scalar.ZFromBig(&z.v)
}

// Equal reports whether z and other are the same residue under equal
// modulus values. Residues under unequal moduli are never equal.
func (z *Zq) Equal(other *Zq) bool {
	return z.m.Equal(other.m) && z.v.Cmp(&other.v) == 0
}

// IsZero reports whether z is the additive identity of its ring.
func (z *Zq) IsZero() bool {
	return z.v.Sign() == 0
}

// String renders the canonical form "<representative> mod <modulus>".
func (z *Zq) String() string {
	return z.v.Text(10) + " mod " + z.m.String()
}

// sameContext guards every binary operation: unequal modulus values are a
// contract violation surfaced as ErrModulusMismatch, not silently resolved
// in favor of either operand.
func (z *Zq) sameContext(other *Zq) error {
	if !z.m.Equal(other.m) {
		return ErrModulusMismatch
	}

	return nil
}

// Add returns z + other reduced into [0, m).
func (z *Zq) Add(other *Zq) (*Zq, error) {
	if err := z.sameContext(other); err != nil {
		return nil, err
	}
	out := &Zq{m: z.m}
	out.v.Set(z.m.reduce(new(big.Int).Add(&z.v, &other.v)))

	return out, nil
}

// Sub returns z - other reduced into [0, m).
func (z *Zq) Sub(other *Zq) (*Zq, error) {
	if err := z.sameContext(other); err != nil {
		return nil, err
	}
	out := &Zq{m: z.m}
	out.v.Set(z.m.reduce(new(big.Int).Sub(&z.v, &other.v)))

	return out, nil
}

// Mul returns z * other reduced into [0, m).
func (z *Zq) Mul(other *Zq) (*Zq, error) {
	if err := z.sameContext(other); err != nil {
		return nil, err
	}
	out := &Zq{m: z.m}
	out.v.Set(z.m.reduce(new(big.Int).Mul(&z.v, &other.v)))

	return out, nil
}

// Neg returns -z reduced into [0, m).
func (z *Zq) Neg() *Zq {
	out := &Zq{m: z.m}
	out.v.Set(z.m.reduce(new(big.Int).Neg(&z.v)))

	return out
}

// Inv returns the multiplicative inverse of z, or ErrNotInvertible when
// gcd(representative, modulus) != 1.
func (z *Zq) Inv() (*Zq, error) {
	inv := new(big.Int).ModInverse(&z.v, &z.m.m)
	if inv == nil {
		return nil, ErrNotInvertible
	}
	out := &Zq{m: z.m}
	out.v.Set(inv)

	return out, nil
}

// Pow returns z^exp. A negative exponent inverts first and therefore fails
// with ErrNotInvertible when no inverse exists.
func (z *Zq) Pow(exp *scalar.Z) (*Zq, error) {
	base := &z.v
	if exp.Sign() < 0 {
		inverted, err := z.Inv()
		if err != nil {
			return nil, err
		}
		base = &inverted.v
	}

	out := &Zq{m: z.m}
	out.v.Exp(base, new(big.Int).Abs(exp.Big()), &z.m.m)

	return out, nil
}

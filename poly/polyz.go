// Package poly: PolyZ, a dense polynomial with integer coefficients.
// The coefficient at index i is the degree-i term; the slice is kept in
// canonical trimmed form at all times.

package poly

import (
	"github.com/katalvlaran/arbmath/scalar"
)

// PolyZ is a univariate polynomial over Z. The zero value is the zero
// polynomial and ready to use; handle PolyZ through a pointer.
type PolyZ struct {
	coeffs []*scalar.Z // canonical: highest stored coefficient is non-zero
}

// NewPolyZ returns the zero polynomial.
func NewPolyZ() *PolyZ {
	return new(PolyZ)
}

// PolyZFromString parses the canonical grammar
// "<count>  <c0> <c1> ... <c(count-1)>" with integer coefficients, then
// trims trailing zeros to restore canonical form.
func PolyZFromString(s string) (*PolyZ, error) {
	tokens, err := splitCanonical(s)
	if err != nil {
		return nil, err
	}

	p := &PolyZ{coeffs: make([]*scalar.Z, 0, len(tokens))}
	for _, tok := range tokens {
		c, err := scalar.ZFromString(tok)
		if err != nil {
			return nil, err
		}
		p.coeffs = append(p.coeffs, c)
	}
	p.trim()

	return p, nil
}

// trim drops trailing additive identities until the highest stored
// coefficient is non-zero or the polynomial is empty. Called after every
// mutation path; idempotent.
func (p *PolyZ) trim() {
	n := len(p.coeffs)
	for n > 0 && p.coeffs[n-1].IsZero() {
		n--
	}
	p.coeffs = p.coeffs[:n]
}

// Len returns the number of stored coefficients (degree + 1, or 0 for the
// zero polynomial).
func (p *PolyZ) Len() int64 {
	return int64(len(p.coeffs))
}

// Degree returns the degree of p, with -1 for the zero polynomial.
func (p *PolyZ) Degree() int64 {
	return int64(len(p.coeffs)) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p *PolyZ) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coeff returns the coefficient at index i as a fresh value. Reading at or
// beyond the stored length returns the additive identity, not an error.
// A negative index is a contract violation (ErrOutOfRange).
// Complexity: O(words) for the copy.
func (p *PolyZ) Coeff(i int64) (*scalar.Z, error) {
	if i < 0 {
		return nil, ErrOutOfRange
	}
	if i >= int64(len(p.coeffs)) {
		return scalar.NewZ(), nil
	}

	return p.coeffs[i].Clone(), nil
}

// SetCoeff sets the coefficient at index i to a deep copy of v, growing the
// storage with zeros as needed and re-trimming afterwards. A negative index
// is ErrOutOfRange.
func (p *PolyZ) SetCoeff(i int64, v *scalar.Z) error {
	if i < 0 {
		return ErrOutOfRange
	}
	for int64(len(p.coeffs)) <= i {
		p.coeffs = append(p.coeffs, scalar.NewZ())
	}
	p.coeffs[i] = v.Clone()
	p.trim()

	return nil
}

// Clone returns a deep copy of p: every coefficient is copied, nothing is
// shared with the original.
// Complexity: O(n * words).
func (p *PolyZ) Clone() *PolyZ {
	out := &PolyZ{coeffs: make([]*scalar.Z, len(p.coeffs))}
	for i, c := range p.coeffs {
		out.coeffs[i] = c.Clone()
	}

	return out
}

// Equal reports whether p and other have identical coefficients. Canonical
// trimming makes this a plain pairwise comparison.
func (p *PolyZ) Equal(other *PolyZ) bool {
	if len(p.coeffs) != len(other.coeffs) {
		return false
	}
	for i, c := range p.coeffs {
		if !c.Equal(other.coeffs[i]) {
			return false
		}
	}

	return true
}

// Evaluate computes p(x) by Horner's rule.
// Complexity: O(n) engine multiplications.
func (p *PolyZ) Evaluate(x *scalar.Z) *scalar.Z {
	acc := scalar.NewZ()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}

	return acc
}

// String renders the canonical grammar; the zero polynomial is "0".
func (p *PolyZ) String() string {
	tokens := make([]string, len(p.coeffs))
	for i, c := range p.coeffs {
		tokens[i] = c.String()
	}

	return joinCanonical(tokens)
}

// Add returns p + other as a new trimmed polynomial.
func (p *PolyZ) Add(other *PolyZ) *PolyZ {
	n := max(len(p.coeffs), len(other.coeffs))
	out := &PolyZ{coeffs: make([]*scalar.Z, n)}
	for i := 0; i < n; i++ {
		out.coeffs[i] = zCoeffOrZero(p, i).Add(zCoeffOrZero(other, i))
	}
	out.trim()

	return out
}

// Sub returns p - other as a new trimmed polynomial.
func (p *PolyZ) Sub(other *PolyZ) *PolyZ {
	n := max(len(p.coeffs), len(other.coeffs))
	out := &PolyZ{coeffs: make([]*scalar.Z, n)}
	for i := 0; i < n; i++ {
		out.coeffs[i] = zCoeffOrZero(p, i).Sub(zCoeffOrZero(other, i))
	}
	out.trim()

	return out
}

// Neg returns -p as a new polynomial.
func (p *PolyZ) Neg() *PolyZ {
	out := &PolyZ{coeffs: make([]*scalar.Z, len(p.coeffs))}
	for i, c := range p.coeffs {
		out.coeffs[i] = c.Neg()
	}

	return out
}

// Mul returns p * other by schoolbook convolution.
// Complexity: O(n*m) engine multiplications.
func (p *PolyZ) Mul(other *PolyZ) *PolyZ {
	if p.IsZero() || other.IsZero() {
		return NewPolyZ()
	}

	out := &PolyZ{coeffs: make([]*scalar.Z, len(p.coeffs)+len(other.coeffs)-1)}
	for i := range out.coeffs {
		out.coeffs[i] = scalar.NewZ()
	}
	for i, a := range p.coeffs {
		for j, b := range other.coeffs {
			out.coeffs[i+j] = out.coeffs[i+j].Add(a.Mul(b))
		}
	}
	out.trim()

	return out
}

// MulScalar returns c * p as a new trimmed polynomial.
func (p *PolyZ) MulScalar(c *scalar.Z) *PolyZ {
	out := &PolyZ{coeffs: make([]*scalar.Z, len(p.coeffs))}
	for i, a := range p.coeffs {
		out.coeffs[i] = a.Mul(c)
	}
	out.trim()

	return out
}

// zCoeffOrZero reads a coefficient without copying, substituting the
// additive identity past the stored length.
func zCoeffOrZero(p *PolyZ, i int) *scalar.Z {
	if i >= len(p.coeffs) {
		return scalar.NewZ()
	}

	return p.coeffs[i]
}

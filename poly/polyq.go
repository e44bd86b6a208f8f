// Package poly: PolyQ, a dense polynomial with rational coefficients.
// Mirrors PolyZ; every coefficient is additionally kept in lowest terms by
// the scalar kernel, so canonical form here means trimmed AND reduced.

package poly

import (
	"github.com/katalvlaran/arbmath/scalar"
)

// PolyQ is a univariate polynomial over Q. The zero value is the zero
// polynomial and ready to use; handle PolyQ through a pointer.
type PolyQ struct {
	coeffs []*scalar.Q // canonical: trimmed, each coefficient reduced
}

// NewPolyQ returns the zero polynomial.
func NewPolyQ() *PolyQ {
	return new(PolyQ)
}

// PolyQFromString parses the canonical grammar with rational coefficient
// tokens ("<num>" or "<num>/<den>"); coefficients are individually reduced
// to lowest terms and trailing zeros trimmed.
func PolyQFromString(s string) (*PolyQ, error) {
	tokens, err := splitCanonical(s)
	if err != nil {
		return nil, err
	}

	p := &PolyQ{coeffs: make([]*scalar.Q, 0, len(tokens))}
	for _, tok := range tokens {
		c, err := scalar.QFromString(tok)
		if err != nil {
			return nil, err
		}
		p.coeffs = append(p.coeffs, c)
	}
	p.trim()

	return p, nil
}

// trim drops trailing additive identities; idempotent, called after every
// mutation path.
func (p *PolyQ) trim() {
	n := len(p.coeffs)
	for n > 0 && p.coeffs[n-1].IsZero() {
		n--
	}
	p.coeffs = p.coeffs[:n]
}

// Len returns the number of stored coefficients.
func (p *PolyQ) Len() int64 {
	return int64(len(p.coeffs))
}

// Degree returns the degree of p, with -1 for the zero polynomial.
func (p *PolyQ) Degree() int64 {
	return int64(len(p.coeffs)) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p *PolyQ) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coeff returns the coefficient at index i as a fresh value; indices at or
// beyond the stored length yield the additive identity, a negative index
// yields ErrOutOfRange.
func (p *PolyQ) Coeff(i int64) (*scalar.Q, error) {
	if i < 0 {
		return nil, ErrOutOfRange
	}
	if i >= int64(len(p.coeffs)) {
		return scalar.NewQ(), nil
	}

	return p.coeffs[i].Clone(), nil
}

// SetCoeff sets the coefficient at index i to a deep copy of v, growing
// storage as needed and re-trimming afterwards.
func (p *PolyQ) SetCoeff(i int64, v *scalar.Q) error {
	if i < 0 {
		return ErrOutOfRange
	}
	for int64(len(p.coeffs)) <= i {
		p.coeffs = append(p.coeffs, scalar.NewQ())
	}
	p.coeffs[i] = v.Clone()
	p.trim()

	return nil
}

// Clone returns a deep copy of p.
func (p *PolyQ) Clone() *PolyQ {
	out := &PolyQ{coeffs: make([]*scalar.Q, len(p.coeffs))}
	for i, c := range p.coeffs {
		out.coeffs[i] = c.Clone()
	}

	return out
}

// Equal reports whether p and other have identical coefficients.
func (p *PolyQ) Equal(other *PolyQ) bool {
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
func (p *PolyQ) Evaluate(x *scalar.Q) *scalar.Q {
	acc := scalar.NewQ()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}

	return acc
}

// String renders the canonical grammar with reduced coefficient tokens.
func (p *PolyQ) String() string {
	tokens := make([]string, len(p.coeffs))
	for i, c := range p.coeffs {
		tokens[i] = c.String()
	}

	return joinCanonical(tokens)
}

// Add returns p + other as a new canonical polynomial.
func (p *PolyQ) Add(other *PolyQ) *PolyQ {
	n := max(len(p.coeffs), len(other.coeffs))
	out := &PolyQ{coeffs: make([]*scalar.Q, n)}
	for i := 0; i < n; i++ {
		out.coeffs[i] = qCoeffOrZero(p, i).Add(qCoeffOrZero(other, i))
	}
	out.trim()

	return out
}

// Sub returns p - other as a new canonical polynomial.
func (p *PolyQ) Sub(other *PolyQ) *PolyQ {
	n := max(len(p.coeffs), len(other.coeffs))
	out := &PolyQ{coeffs: make([]*scalar.Q, n)}
	for i := 0; i < n; i++ {
		out.coeffs[i] = qCoeffOrZero(p, i).Sub(qCoeffOrZero(other, i))
	}
	out.trim()

	return out
}

// Neg returns -p as a new polynomial.
func (p *PolyQ) Neg() *PolyQ {
	out := &PolyQ{coeffs: make([]*scalar.Q, len(p.coeffs))}
	for i, c := range p.coeffs {
		out.coeffs[i] = c.Neg()
	}

	return out
}

// Mul returns p * other by schoolbook convolution.
func (p *PolyQ) Mul(other *PolyQ) *PolyQ {
	if p.IsZero() || other.IsZero() {
		return NewPolyQ()
	}

	out := &PolyQ{coeffs: make([]*scalar.Q, len(p.coeffs)+len(other.coeffs)-1)}
	for i := range out.coeffs {
		out.coeffs[i] = scalar.NewQ()
	}
	for i, a := range p.coeffs {
		for j, b := range other.coeffs {
			out.coeffs[i+j] = out.coeffs[i+j].Add(a.Mul(b))
		}
	}
	out.trim()

	return out
}

// MulScalar returns c * p as a new canonical polynomial.
func (p *PolyQ) MulScalar(c *scalar.Q) *PolyQ {
	out := &PolyQ{coeffs: make([]*scalar.Q, len(p.coeffs))}
	for i, a := range p.coeffs {
		out.coeffs[i] = a.Mul(c)
	}
	out.trim()

	return out
}

// qCoeffOrZero reads a coefficient without copying, substituting the
// additive identity past the stored length.
func qCoeffOrZero(p *PolyQ, i int) *scalar.Q {
	if i >= len(p.coeffs) {
		return scalar.NewQ()
	}

	return p.coeffs[i]
}

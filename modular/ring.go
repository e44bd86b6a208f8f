// Package modular: the polynomial quotient ring Zq[X]/(f(X)).
// RingModulus is the shared immutable context (f, q); RingPoly is a residue
// polynomial reduced modulo both q (coefficient-wise) and f (by polynomial
// remainder) on every construction and every operation.

package modular

import (
	"math/big"
	"strings"

	"github.com/katalvlaran/arbmath/poly"
	"github.com/katalvlaran/arbmath/scalar"
)

// primalityRounds is the Miller-Rabin round count for the ring prime check;
// the engine additionally runs a Baillie-PSW test, so false positives are
// out of practical reach.
const primalityRounds = 32

// RingModulus describes the quotient ring Zq[X]/(f(X)) for a prime q and a
// polynomial f of degree >= 1 (after reduction of its coefficients mod q).
// Immutable once constructed; share the pointer into every RingPoly.
type RingModulus struct {
	f       []*big.Int // coefficients of f reduced mod q, trimmed, len = deg+1
	q       big.Int    // prime coefficient modulus
	leadInv *big.Int   // inverse of the leading coefficient of f mod q
}

// NewRingModulus builds the ring context from f and q.
// Stage 1 (Prime): q must be positive and (probabilistically) prime.
// Stage 2 (Reduce): f's coefficients are reduced mod q and re-trimmed;
// a leading coefficient divisible by q vanishes here.
// Stage 3 (Degenerate): the reduced f must keep degree >= 1.
// Returns ErrInvalidModulus on any violation.
func NewRingModulus(f *poly.PolyZ, q *scalar.Z) (*RingModulus, error) {
	qBig := q.Big()
	if qBig.Sign() <= 0 || !qBig.ProbablyPrime(primalityRounds) {
		return nil, ErrInvalidModulus
	}

	coeffs := make([]*big.Int, 0, f.Len())
	for i := int64(0); i <= f.Degree(); i++ {
		c, err := f.Coeff(i)
		if err != nil {
			return nil, err
		}
		coeffs = append(coeffs, reduceBig(c.Big(), qBig))
	}
	coeffs = trimBig(coeffs)
	if len(coeffs) < 2 {
		// Degree < 1: constant or zero modulus defines no ring.
		return nil, ErrInvalidModulus
	}

	ring := &RingModulus{f: coeffs}
	ring.q.Set(qBig)
	// q is prime and the trimmed leading coefficient is non-zero mod q, so
	// the inverse exists; a nil result would mean the invariant is broken.
	ring.leadInv = new(big.Int).ModInverse(coeffs[len(coeffs)-1], &ring.q)
	if ring.leadInv == nil {
		return nil, ErrInvalidModulus
	}

	return ring, nil
}

// RingModulusFromString parses the canonical form "<f> mod <q>" where f
// uses the count-prefixed polynomial grammar, e.g. "3  1 0 1 mod 17" for
// X^2 + 1 over GF(17).
func RingModulusFromString(s string) (*RingModulus, error) {
	fText, qText, found := strings.Cut(s, " mod ")
	if !found || strings.Contains(qText, " mod ") {
		return nil, ErrMalformedInput
	}

	f, err := poly.PolyZFromString(fText)
	if err != nil {
		return nil, err
	}
	q, err := scalar.ZFromString(qText)
	if err != nil {
		return nil, err
	}

	return NewRingModulus(f, q)
}

// Degree returns the degree of f; residues in the ring have fewer
// coefficients than this.
func (r *RingModulus) Degree() int64 {
	return int64(len(r.f)) - 1
}

// Prime returns q as a new value.
func (r *RingModulus) Prime() *scalar.Z {
	return scalar.ZFromBig(&r.q)
}

// Equal reports whether two contexts describe the same (f, q) pair by
// value; identity is irrelevant for compatibility.
func (r *RingModulus) Equal(other *RingModulus) bool {
	if r.q.Cmp(&other.q) != 0 || len(r.f) != len(other.f) {
		return false
	}
	for i, c := range r.f {
		if c.Cmp(other.f[i]) != 0 {
			return false
		}
	}

	return true
}

// String renders the canonical form "<f> mod <q>".
func (r *RingModulus) String() string {
	return bigPolyText(r.f) + " mod " + r.q.Text(10)
}

// RingPoly is a residue polynomial of the ring described by its shared
// RingModulus context. Construct through NewRingPoly or RingPolyFromString.
type RingPoly struct {
	coeffs []*big.Int // reduced mod (f, q); degree < deg(f)
	ring   *RingModulus
}

// NewRingPoly builds the residue of p in the ring, applying the full
// two-stage reduction (coefficients mod q, then remainder mod f).
func NewRingPoly(p *poly.PolyZ, ring *RingModulus) *RingPoly {
	coeffs := make([]*big.Int, 0, p.Len())
	for i := int64(0); i <= p.Degree(); i++ {
		c, _ := p.Coeff(i) // index is non-negative by construction
		coeffs = append(coeffs, c.Big())
	}

	return &RingPoly{coeffs: ring.reducePoly(coeffs), ring: ring}
}

// RingPolyFromString parses the self-describing canonical form
// "<residue> / <f> mod <q>", e.g. "2  1 5 / 3  1 0 1 mod 17".
func RingPolyFromString(s string) (*RingPoly, error) {
	resText, ringText, found := strings.Cut(s, " / ")
	if !found {
		return nil, ErrMalformedInput
	}

	residue, err := poly.PolyZFromString(resText)
	if err != nil {
		return nil, err
	}
	ring, err := RingModulusFromString(ringText)
	if err != nil {
		return nil, err
	}

	return NewRingPoly(residue, ring), nil
}

// Ring returns the shared context of p.
func (p *RingPoly) Ring() *RingModulus {
	return p.ring
}

// Lift returns the canonical residue as a plain integer polynomial.
func (p *RingPoly) Lift() *poly.PolyZ {
	out := poly.NewPolyZ()
	for i, c := range p.coeffs {
		// Indices are small non-negative ints; SetCoeff cannot fail here.
		_ = out.SetCoeff(int64(i), scalar.ZFromBig(c))
	}

	return out
}

// Clone returns a deep copy of the residue sharing the same context.
func (p *RingPoly) Clone() *RingPoly {
	coeffs := make([]*big.Int, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = new(big.Int).Set(c)
	}

	return &RingPoly{coeffs: coeffs, ring: p.ring}
}

// IsZero reports whether p is the additive identity of its ring.
func (p *RingPoly) IsZero() bool {
	return len(p.coeffs) == 0
}

// Equal reports whether p and other are the same residue under equal ring
// contexts.
func (p *RingPoly) Equal(other *RingPoly) bool {
	if !p.ring.Equal(other.ring) || len(p.coeffs) != len(other.coeffs) {
		return false
	}
	for i, c := range p.coeffs {
		if c.Cmp(other.coeffs[i]) != 0 {
			return false
		}
	}

	return true
}

// String renders the self-describing canonical form "<residue> / <f> mod <q>".
func (p *RingPoly) String() string {
	return bigPolyText(p.coeffs) + " / " + p.ring.String()
}

// sameRing guards binary operations the way Zq.sameContext does.
func (p *RingPoly) sameRing(other *RingPoly) error {
	if !p.ring.Equal(other.ring) {
		return ErrModulusMismatch
	}

	return nil
}

// Add returns p + other fully reduced.
func (p *RingPoly) Add(other *RingPoly) (*RingPoly, error) {
	if err := p.sameRing(other); err != nil {
		return nil, err
	}

	n := max(len(p.coeffs), len(other.coeffs))
	sum := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		sum[i] = new(big.Int).Add(bigCoeffOrZero(p.coeffs, i), bigCoeffOrZero(other.coeffs, i))
	}

	return &RingPoly{coeffs: p.ring.reducePoly(sum), ring: p.ring}, nil
}

// Sub returns p - other fully reduced.
func (p *RingPoly) Sub(other *RingPoly) (*RingPoly, error) {
	if err := p.sameRing(other); err != nil {
		return nil, err
	}

	n := max(len(p.coeffs), len(other.coeffs))
	diff := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		diff[i] = new(big.Int).Sub(bigCoeffOrZero(p.coeffs, i), bigCoeffOrZero(other.coeffs, i))
	}

	return &RingPoly{coeffs: p.ring.reducePoly(diff), ring: p.ring}, nil
}

// Neg returns -p fully reduced.
func (p *RingPoly) Neg() *RingPoly {
	neg := make([]*big.Int, len(p.coeffs))
	for i, c := range p.coeffs {
		neg[i] = new(big.Int).Neg(c)
	}

	return &RingPoly{coeffs: p.ring.reducePoly(neg), ring: p.ring}
}

// Mul returns p * other fully reduced.
func (p *RingPoly) Mul(other *RingPoly) (*RingPoly, error) {
	if err := p.sameRing(other); err != nil {
		return nil, err
	}
	if p.IsZero() || other.IsZero() {
		return &RingPoly{ring: p.ring}, nil
	}

	prod := make([]*big.Int, len(p.coeffs)+len(other.coeffs)-1)
	for i := range prod {
		prod[i] = new(big.Int)
	}
	for i, a := range p.coeffs {
		for j, b := range other.coeffs {
			prod[i+j].Add(prod[i+j], new(big.Int).Mul(a, b))
		}
	}

	return &RingPoly{coeffs: p.ring.reducePoly(prod), ring: p.ring}, nil
}

// reducePoly canonicalizes raw coefficients into a ring residue: every
// coefficient into [0, q), then repeated subtraction of shifted multiples
// of f until the degree drops below deg(f). The input slice is consumed.
func (r *RingModulus) reducePoly(raw []*big.Int) []*big.Int {
	for i, c := range raw {
		raw[i] = reduceBig(c, &r.q)
	}
	raw = trimBig(raw)

	degF := len(r.f) - 1
	for len(raw)-1 >= degF && len(raw) > 0 {
		lead := raw[len(raw)-1]
		// factor = lead(raw) * lead(f)^-1 mod q
		factor := reduceBig(new(big.Int).Mul(lead, r.leadInv), &r.q)
		shift := len(raw) - 1 - degF
		for i, fc := range r.f {
			term := new(big.Int).Mul(factor, fc)
			raw[shift+i] = reduceBig(new(big.Int).Sub(raw[shift+i], term), &r.q)
		}
		raw = trimBig(raw)
	}

	return raw
}

// trimBig drops trailing zero coefficients.
func trimBig(coeffs []*big.Int) []*big.Int {
	n := len(coeffs)
	for n > 0 && coeffs[n-1].Sign() == 0 {
		n--
	}

	return coeffs[:n]
}

// bigCoeffOrZero reads a coefficient, substituting zero past the length.
func bigCoeffOrZero(coeffs []*big.Int, i int) *big.Int {
	if i >= len(coeffs) {
		return new(big.Int)
	}

	return coeffs[i]
}

// bigPolyText renders raw coefficients in the count-prefixed grammar.
func bigPolyText(coeffs []*big.Int) string {
	if len(coeffs) == 0 {
		return "0"
	}

	var b strings.Builder
	b.WriteString(big.NewInt(int64(len(coeffs))).Text(10))
	b.WriteString(" ")
	for _, c := range coeffs {
		b.WriteString(" ")
		b.WriteString(c.Text(10))
	}

	return b.String()
}

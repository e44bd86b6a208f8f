// Package scalar: the arbitrary-precision rational Q.
// Q wraps exactly one engine rational that the Q owns exclusively. Every
// constructor and every operation leaves the value in canonical form:
// lowest terms with a positive denominator.

package scalar

import (
	"math/big"
	"strings"

	"golang.org/x/exp/constraints"
)

// Q is a rational number of arbitrary precision. Like Z, a Q must always be
// handled through a pointer; copying by value would alias engine storage.
type Q struct {
	v big.Rat // exclusively owned, always normalized by the engine
}

// NewQ returns a new rational with value 0/1.
// Complexity: O(1).
func NewQ() *Q {
	return new(Q)
}

// QFromInt absorbs any fixed-width integer into Q (denominator 1).
func QFromInt[T constraints.Integer](v T) *Q {
	var q Q
	q.v.SetInt(&ZFromInt(v).v)

	return &q
}

// QFromZ returns the rational z/1.
func QFromZ(z *Z) *Q {
	var q Q
	q.v.SetInt(&z.v)

	return &q
}

// QFromFrac returns the canonical rational num/den: reduced to lowest terms
// with a positive denominator. A zero den yields ErrDivisionByZero.
func QFromFrac(num, den *Z) (*Q, error) {
	if den.IsZero() {
		return nil, ErrDivisionByZero
	}

	var q Q
	q.v.SetFrac(&num.v, &den.v)

	return &q, nil
}

// QFromString parses a base-10 rational of the form "<num>" or
// "<num>/<den>" and canonicalizes it immediately. Both parts follow the
// integer grammar; the denominator may carry its own sign.
func QFromString(s string) (*Q, error) {
	return QFromStringBase(s, 10)
}

// QFromStringBase parses a rational with numerator and denominator written
// in the given base.
// Stage 1 (Split): at most one '/' divides the token.
// Stage 2 (Parse): each part goes through the integer parse path with all
// of its validation.
// Stage 3 (Canonicalize): reduction to lowest terms with a positive
// denominator is re-applied, never assumed from the input.
func QFromStringBase(s string, base int) (*Q, error) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		z, err := ZFromStringBase(s, base)
		if err != nil {
			return nil, err
		}

		return QFromZ(z), nil
	}
	if strings.Contains(den, "/") {
		return nil, ErrMalformedInput
	}

	n, err := ZFromStringBase(num, base)
	if err != nil {
		return nil, err
	}
	d, err := ZFromStringBase(den, base)
	if err != nil {
		return nil, err
	}

	return QFromFrac(n, d)
}

// Clone returns a deep copy of q, fully independent of the original.
// Complexity: O(words).
func (q *Q) Clone() *Q {
	var out Q
	out.v.Set(&q.v)

	return &out
}

// Num returns the canonical numerator as a new Z.
func (q *Q) Num() *Z {
	return ZFromBig(q.v.Num())
}

// Den returns the canonical (always positive) denominator as a new Z.
func (q *Q) Den() *Z {
	return ZFromBig(q.v.Denom())
}

// Equal reports whether q and other denote the same rational.
func (q *Q) Equal(other *Q) bool {
	return q.v.Cmp(&other.v) == 0
}

// Cmp compares q and other and returns -1, 0 or +1.
func (q *Q) Cmp(other *Q) int {
	return q.v.Cmp(&other.v)
}

// Sign returns -1, 0 or +1 depending on the sign of q.
func (q *Q) Sign() int {
	return q.v.Sign()
}

// IsZero reports whether q is the additive identity.
func (q *Q) IsZero() bool {
	return q.v.Sign() == 0
}

// Text renders q in the given base: "<num>" when the denominator is 1,
// "<num>/<den>" otherwise. Returns ErrOutOfRange for a base outside [2,62].
func (q *Q) Text(base int) (string, error) {
	num, err := q.Num().Text(base)
	if err != nil {
		return "", err
	}
	den := q.v.Denom()
	if den.Cmp(oneInt) == 0 {
		return num, nil
	}

	return num + "/" + den.Text(base), nil
}

// String renders q in base 10, omitting the "/1" of integral rationals.
func (q *Q) String() string {
	return q.v.RatString()
}

var oneInt = big.NewInt(1)

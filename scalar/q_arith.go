// Package scalar: canonical arithmetic on Q.
// Same composition rule as z_arith.go: one borrowed-operand implementation
// per operator, fresh result, operands untouched. The engine re-normalizes
// every result, so the lowest-terms/positive-denominator invariant holds on
// every exit path.

package scalar

// Add returns q + other as a new canonical value.
func (q *Q) Add(other *Q) *Q {
	var out Q
	out.v.Add(&q.v, &other.v)

	return &out
}

// Sub returns q - other as a new canonical value.
func (q *Q) Sub(other *Q) *Q {
	var out Q
	out.v.Sub(&q.v, &other.v)

	return &out
}

// Mul returns q * other as a new canonical value.
func (q *Q) Mul(other *Q) *Q {
	var out Q
	out.v.Mul(&q.v, &other.v)

	return &out
}

// Div returns q / other as a new canonical value.
// A zero divisor yields ErrDivisionByZero.
func (q *Q) Div(other *Q) (*Q, error) {
	if other.IsZero() {
		return nil, ErrDivisionByZero
	}

	var out Q
	out.v.Quo(&q.v, &other.v)

	return &out, nil
}

// Neg returns -q as a new canonical value.
func (q *Q) Neg() *Q {
	var out Q
	out.v.Neg(&q.v)

	return &out
}

// Abs returns |q| as a new canonical value.
func (q *Q) Abs() *Q {
	var out Q
	out.v.Abs(&q.v)

	return &out
}

// Inv returns 1/q as a new canonical value.
// A zero q yields ErrDivisionByZero.
func (q *Q) Inv() (*Q, error) {
	if q.IsZero() {
		return nil, ErrDivisionByZero
	}

	var out Q
	out.v.Inv(&q.v)

	return &out, nil
}

// Distance returns the absolute difference |q - other| as a new value.
func (q *Q) Distance(other *Q) *Q {
	return q.Sub(other).Abs()
}

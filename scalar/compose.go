// Package scalar: mechanically derived operator forms.
// Exactly one implementation per operator lives in z_arith.go/q_arith.go,
// written against borrowed library-type operands. Every cross-type form
// below is a thin generic forwarder whose whole body is "coerce, then
// delegate": the narrower fixed-width operand is lifted into the library
// type first and the result is always the library type. None of these
// bodies may grow logic of their own.

package scalar

import "golang.org/x/exp/constraints"

// ---- Z forwarders -----------------------------------------------------

// ZAddInt returns z + v for any fixed-width integer v.
func ZAddInt[T constraints.Integer](z *Z, v T) *Z { return z.Add(ZFromInt(v)) }

// ZSubInt returns z - v for any fixed-width integer v.
func ZSubInt[T constraints.Integer](z *Z, v T) *Z { return z.Sub(ZFromInt(v)) }

// ZIntSub returns v - z, the swapped-operand form of ZSubInt.
func ZIntSub[T constraints.Integer](v T, z *Z) *Z { return ZFromInt(v).Sub(z) }

// ZMulInt returns z * v for any fixed-width integer v.
func ZMulInt[T constraints.Integer](z *Z, v T) *Z { return z.Mul(ZFromInt(v)) }

// ZPowInt returns z^v; a negative v yields ErrNegativeExponent.
func ZPowInt[T constraints.Integer](z *Z, v T) (*Z, error) { return z.Pow(ZFromInt(v)) }

// ZGcdInt returns gcd(z, v) for any fixed-width integer v.
func ZGcdInt[T constraints.Integer](z *Z, v T) *Z { return z.Gcd(ZFromInt(v)) }

// ZLcmInt returns lcm(z, v) for any fixed-width integer v.
func ZLcmInt[T constraints.Integer](z *Z, v T) *Z { return z.Lcm(ZFromInt(v)) }

// ZDistanceInt returns |z - v| for any fixed-width integer v.
func ZDistanceInt[T constraints.Integer](z *Z, v T) *Z { return z.Distance(ZFromInt(v)) }

// ---- Q forwarders -----------------------------------------------------

// QAddInt returns q + v for any fixed-width integer v.
func QAddInt[T constraints.Integer](q *Q, v T) *Q { return q.Add(QFromInt(v)) }

// QSubInt returns q - v for any fixed-width integer v.
func QSubInt[T constraints.Integer](q *Q, v T) *Q { return q.Sub(QFromInt(v)) }

// QIntSub returns v - q, the swapped-operand form of QSubInt.
func QIntSub[T constraints.Integer](v T, q *Q) *Q { return QFromInt(v).Sub(q) }

// QMulInt returns q * v for any fixed-width integer v.
func QMulInt[T constraints.Integer](q *Q, v T) *Q { return q.Mul(QFromInt(v)) }

// QDivInt returns q / v; a zero v yields ErrDivisionByZero.
func QDivInt[T constraints.Integer](q *Q, v T) (*Q, error) { return q.Div(QFromInt(v)) }

// QIntDiv returns v / q, the swapped-operand form of QDivInt.
func QIntDiv[T constraints.Integer](v T, q *Q) (*Q, error) { return QFromInt(v).Div(q) }

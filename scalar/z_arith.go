// Package scalar: canonical arithmetic on Z.
// Each operator has exactly one implementation, written against borrowed
// (pointer) operands and returning a freshly allocated result; operands are
// never mutated. Every other call form is a thin forwarder in compose.go.

package scalar

import "math/big"

// Add returns z + other as a new value.
func (z *Z) Add(other *Z) *Z {
	var out Z
	out.v.Add(&z.v, &other.v)

	return &out
}

// Sub returns z - other as a new value.
func (z *Z) Sub(other *Z) *Z {
	var out Z
	out.v.Sub(&z.v, &other.v)

	return &out
}

// Mul returns z * other as a new value.
func (z *Z) Mul(other *Z) *Z {
	var out Z
	out.v.Mul(&z.v, &other.v)

	return &out
}

// Neg returns -z as a new value.
func (z *Z) Neg() *Z {
	var out Z
	out.v.Neg(&z.v)

	return &out
}

// Abs returns |z| as a new value.
func (z *Z) Abs() *Z {
	var out Z
	out.v.Abs(&z.v)

	return &out
}

// Pow returns z^exp as a new value. Only non-negative exponents are defined
// for plain integers; a negative exp yields ErrNegativeExponent.
func (z *Z) Pow(exp *Z) (*Z, error) {
	if exp.Sign() < 0 {
		return nil, ErrNegativeExponent
	}

	var out Z
	out.v.Exp(&z.v, &exp.v, nil)

	return &out, nil
}

// Gcd returns the greatest common divisor of z and other, with
// gcd(a, 0) = |a| and gcd(0, 0) = 0. The result is never negative.
func (z *Z) Gcd(other *Z) *Z {
	var out Z
	out.v.GCD(nil, nil, new(big.Int).Abs(&z.v), new(big.Int).Abs(&other.v))

	return &out
}

// Lcm returns the least common multiple of z and other, with lcm(a, 0) = 0.
// The result is never negative.
func (z *Z) Lcm(other *Z) *Z {
	if z.IsZero() || other.IsZero() {
		return NewZ()
	}

	var out Z
	out.v.Mul(&z.v, &other.v)
	out.v.Abs(&out.v)
	out.v.Div(&out.v, &z.Gcd(other).v)

	return &out
}

// Xgcd returns the extended gcd triple (g, x, y) with g = gcd(z, other) and
// z*x + other*y = g.
func (z *Z) Xgcd(other *Z) (g, x, y *Z) {
	g, x, y = NewZ(), NewZ(), NewZ()
	g.v.GCD(&x.v, &y.v, &z.v, &other.v)

	return g, x, y
}

// Distance returns the absolute difference |z - other| as a new value.
func (z *Z) Distance(other *Z) *Z {
	return z.Sub(other).Abs()
}

// Package modular: mechanically derived operator forms for Zq.
// Fixed-width operands are lifted into the residue ring of the left operand
// first; the canonical implementations in zq.go stay the single source of
// truth.

package modular

import (
	"github.com/katalvlaran/arbmath/scalar"

	"golang.org/x/exp/constraints"
)

// ZqAddInt returns z + v under z's modulus for any fixed-width integer v.
func ZqAddInt[T constraints.Integer](z *Zq, v T) (*Zq, error) {
	return z.Add(ZqFromInt(v, z.m))
}

// ZqSubInt returns z - v under z's modulus.
func ZqSubInt[T constraints.Integer](z *Zq, v T) (*Zq, error) {
	return z.Sub(ZqFromInt(v, z.m))
}

// ZqIntSub returns v - z, the swapped-operand form of ZqSubInt.
func ZqIntSub[T constraints.Integer](v T, z *Zq) (*Zq, error) {
	return ZqFromInt(v, z.m).Sub(z)
}

// ZqMulInt returns z * v under z's modulus.
func ZqMulInt[T constraints.Integer](z *Zq, v T) (*Zq, error) {
	return z.Mul(ZqFromInt(v, z.m))
}

// ZqPowInt returns z^v; negative v inverts first.
func ZqPowInt[T constraints.Integer](z *Zq, v T) (*Zq, error) {
	return z.Pow(scalar.ZFromInt(v))
}

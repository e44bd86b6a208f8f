// Package poly: mechanically derived operator and index forms.
// Same composition rule as the scalar package: these forwarders only coerce
// (fixed-width value into the library type, fixed-width index through the
// signed 64-bit boundary) and delegate to the single canonical method.

package poly

import (
	"github.com/katalvlaran/arbmath/codec"
	"github.com/katalvlaran/arbmath/scalar"

	"golang.org/x/exp/constraints"
)

// PolyZCoeffAt reads the coefficient at any fixed-width index; overflow or
// a negative index is ErrOutOfRange.
func PolyZCoeffAt[T constraints.Integer](p *PolyZ, i T) (*scalar.Z, error) {
	idx, err := codec.ToIndex(i)
	if err != nil {
		return nil, err
	}

	return p.Coeff(idx)
}

// PolyZSetCoeffAt writes the coefficient at any fixed-width index.
func PolyZSetCoeffAt[T constraints.Integer](p *PolyZ, i T, v *scalar.Z) error {
	idx, err := codec.ToIndex(i)
	if err != nil {
		return err
	}

	return p.SetCoeff(idx, v)
}

// PolyZSetCoeffInt absorbs a fixed-width coefficient value as well.
func PolyZSetCoeffInt[I, V constraints.Integer](p *PolyZ, i I, v V) error {
	return PolyZSetCoeffAt(p, i, scalar.ZFromInt(v))
}

// PolyZEvaluateInt evaluates p at any fixed-width integer point.
func PolyZEvaluateInt[T constraints.Integer](p *PolyZ, x T) *scalar.Z {
	return p.Evaluate(scalar.ZFromInt(x))
}

// PolyZMulInt returns v * p for any fixed-width integer v.
func PolyZMulInt[T constraints.Integer](p *PolyZ, v T) *PolyZ {
	return p.MulScalar(scalar.ZFromInt(v))
}

// PolyQCoeffAt reads the coefficient at any fixed-width index.
func PolyQCoeffAt[T constraints.Integer](p *PolyQ, i T) (*scalar.Q, error) {
	idx, err := codec.ToIndex(i)
	if err != nil {
		return nil, err
	}

	return p.Coeff(idx)
}

// PolyQSetCoeffAt writes the coefficient at any fixed-width index.
func PolyQSetCoeffAt[T constraints.Integer](p *PolyQ, i T, v *scalar.Q) error {
	idx, err := codec.ToIndex(i)
	if err != nil {
		return err
	}

	return p.SetCoeff(idx, v)
}

// PolyQSetCoeffInt absorbs a fixed-width coefficient value as well.
func PolyQSetCoeffInt[I, V constraints.Integer](p *PolyQ, i I, v V) error {
	return PolyQSetCoeffAt(p, i, scalar.QFromInt(v))
}

// PolyQEvaluateInt evaluates p at any fixed-width integer point.
func PolyQEvaluateInt[T constraints.Integer](p *PolyQ, x T) *scalar.Q {
	return p.Evaluate(scalar.QFromInt(x))
}

// PolyQMulInt returns v * p for any fixed-width integer v.
func PolyQMulInt[T constraints.Integer](p *PolyQ, v T) *PolyQ {
	return p.MulScalar(scalar.QFromInt(v))
}

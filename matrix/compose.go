// Package matrix: mechanically derived index and operand forms.
// Same composition rule as the scalar and poly packages: one canonical
// method per operation, and these forwarders only coerce fixed-width
// integers (indices through the signed 64-bit boundary, operands into the
// scalar kernel) before delegating.

package matrix

import (
	"github.com/katalvlaran/arbmath/codec"
	"github.com/katalvlaran/arbmath/scalar"

	"golang.org/x/exp/constraints"
)

// MatZAt reads the entry at any fixed-width index pair; overflow or a
// negative index is ErrOutOfRange.
func MatZAt[R, C constraints.Integer](m *MatZ, row R, col C) (*scalar.Z, error) {
	r, c, err := toIndexPair(row, col)
	if err != nil {
		return nil, err
	}

	return m.At(r, c)
}

// MatZSetAt writes the entry at any fixed-width index pair.
func MatZSetAt[R, C constraints.Integer](m *MatZ, row R, col C, v *scalar.Z) error {
	r, c, err := toIndexPair(row, col)
	if err != nil {
		return err
	}

	return m.Set(r, c, v)
}

// MatZSetInt absorbs a fixed-width entry value as well.
func MatZSetInt[R, C, V constraints.Integer](m *MatZ, row R, col C, v V) error {
	return MatZSetAt(m, row, col, scalar.ZFromInt(v))
}

// MatZScalarMulInt returns v * m for any fixed-width integer v.
func MatZScalarMulInt[T constraints.Integer](m *MatZ, v T) *MatZ {
	return m.ScalarMul(scalar.ZFromInt(v))
}

// MatQAt reads the entry at any fixed-width index pair.
func MatQAt[R, C constraints.Integer](m *MatQ, row R, col C) (*scalar.Q, error) {
	r, c, err := toIndexPair(row, col)
	if err != nil {
		return nil, err
	}

	return m.At(r, c)
}

// MatQSetAt writes the entry at any fixed-width index pair.
func MatQSetAt[R, C constraints.Integer](m *MatQ, row R, col C, v *scalar.Q) error {
	r, c, err := toIndexPair(row, col)
	if err != nil {
		return err
	}

	return m.Set(r, c, v)
}

// MatQSetInt absorbs a fixed-width entry value as well.
func MatQSetInt[R, C, V constraints.Integer](m *MatQ, row R, col C, v V) error {
	return MatQSetAt(m, row, col, scalar.QFromInt(v))
}

// MatQScalarMulInt returns v * m for any fixed-width integer v.
func MatQScalarMulInt[T constraints.Integer](m *MatQ, v T) *MatQ {
	return m.ScalarMul(scalar.QFromInt(v))
}

// MatZqAt reads the reduced entry at any fixed-width index pair.
func MatZqAt[R, C constraints.Integer](m *MatZq, row R, col C) (*scalar.Z, error) {
	r, c, err := toIndexPair(row, col)
	if err != nil {
		return nil, err
	}

	return m.At(r, c)
}

// MatZqSetAt writes the entry at any fixed-width index pair; the value is
// reduced into the context on the way in.
func MatZqSetAt[R, C constraints.Integer](m *MatZq, row R, col C, v *scalar.Z) error {
	r, c, err := toIndexPair(row, col)
	if err != nil {
		return err
	}

	return m.Set(r, c, v)
}

// MatZqSetInt absorbs a fixed-width entry value as well.
func MatZqSetInt[R, C, V constraints.Integer](m *MatZq, row R, col C, v V) error {
	return MatZqSetAt(m, row, col, scalar.ZFromInt(v))
}

// MatZqScalarMulInt returns v * m for any fixed-width integer v.
func MatZqScalarMulInt[T constraints.Integer](m *MatZq, v T) *MatZq {
	return m.ScalarMul(scalar.ZFromInt(v))
}

// toIndexPair coerces both index halves through the signed 64-bit boundary.
func toIndexPair[R, C constraints.Integer](row R, col C) (int64, int64, error) {
	r, err := codec.ToIndex(row)
	if err != nil {
		return 0, 0, err
	}
	c, err := codec.ToIndex(col)
	if err != nil {
		return 0, 0, err
	}

	return r, c, nil
}

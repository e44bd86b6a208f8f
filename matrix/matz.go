// Package matrix: MatZ, a dense matrix with integer entries.

package matrix

import (
	"github.com/katalvlaran/arbmath/scalar"
)

// MatZ is a fixed-shape matrix over Z. Construct through NewMatZ or
// MatZFromString; handle through a pointer.
type MatZ struct {
	d *dense[*scalar.Z]
}

// NewMatZ creates a rows×cols zero matrix.
// Returns ErrBadShape unless both dimensions are positive.
func NewMatZ(rows, cols int64) (*MatZ, error) {
	d, err := newDense(rows, cols, scalar.NewZ)
	if err != nil {
		return nil, err
	}

	return &MatZ{d: d}, nil
}

// MatZFromString parses the canonical grammar "[[a,b],[c,d]]" with integer
// entries. A " mod " suffix does not belong to a plain integer matrix and
// is rejected as malformed.
func MatZFromString(s string) (*MatZ, error) {
	body, _, found, err := cutModSuffix(s)
	if err != nil || found {
		return nil, ErrMalformedInput
	}

	rows, err := splitRows(body)
	if err != nil {
		return nil, err
	}

	out, err := NewMatZ(int64(len(rows)), int64(len(rows[0])))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, tok := range row {
			v, err := scalar.ZFromString(tok)
			if err != nil {
				return nil, err
			}
			out.d.data[int64(i)*out.d.c+int64(j)] = v
		}
	}

	return out, nil
}

// Rows returns the fixed number of rows. Complexity: O(1).
func (m *MatZ) Rows() int64 { return m.d.r }

// Cols returns the fixed number of columns. Complexity: O(1).
func (m *MatZ) Cols() int64 { return m.d.c }

// IsRowVector reports whether m has exactly one row.
func (m *MatZ) IsRowVector() bool { return m.d.r == 1 }

// IsColumnVector reports whether m has exactly one column.
func (m *MatZ) IsColumnVector() bool { return m.d.c == 1 }

// At retrieves a deep copy of the entry at (row, col).
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (m *MatZ) At(row, col int64) (*scalar.Z, error) {
	return m.d.at(row, col)
}

// Set stores a deep copy of v at (row, col).
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (m *MatZ) Set(row, col int64, v *scalar.Z) error {
	return m.d.set(row, col, v)
}

// Clone returns a deep copy, fully independent of the original.
func (m *MatZ) Clone() *MatZ {
	return &MatZ{d: m.d.clone()}
}

// Equal reports element-wise equality of equally shaped matrices.
func (m *MatZ) Equal(other *MatZ) bool {
	return m.d.equal(other.d)
}

// String renders the canonical bracketed grammar.
func (m *MatZ) String() string {
	return m.d.text()
}

// Transpose returns the transpose as a new matrix.
func (m *MatZ) Transpose() *MatZ {
	return &MatZ{d: m.d.transpose()}
}

// ConcatHorizontal returns [m | other]; mismatched row counts yield
// ErrDimensionMismatch.
func (m *MatZ) ConcatHorizontal(other *MatZ) (*MatZ, error) {
	d, err := m.d.concatHorizontal(other.d)
	if err != nil {
		return nil, err
	}

	return &MatZ{d: d}, nil
}

// ConcatVertical returns [m / other]; mismatched column counts yield
// ErrDimensionMismatch.
func (m *MatZ) ConcatVertical(other *MatZ) (*MatZ, error) {
	d, err := m.d.concatVertical(other.d)
	if err != nil {
		return nil, err
	}

	return &MatZ{d: d}, nil
}

// Tensor returns the Kronecker product m ⊗ other.
func (m *MatZ) Tensor(other *MatZ) *MatZ {
	return &MatZ{d: m.d.tensor(other.d, (*scalar.Z).Mul)}
}

// Add returns m + other; shapes must match.
func (m *MatZ) Add(other *MatZ) (*MatZ, error) {
	if m.d.r != other.d.r || m.d.c != other.d.c {
		return nil, ErrDimensionMismatch
	}

	out := m.Clone()
	for i, v := range other.d.data {
		out.d.data[i] = out.d.data[i].Add(v)
	}

	return out, nil
}

// Sub returns m - other; shapes must match.
func (m *MatZ) Sub(other *MatZ) (*MatZ, error) {
	if m.d.r != other.d.r || m.d.c != other.d.c {
		return nil, ErrDimensionMismatch
	}

	out := m.Clone()
	for i, v := range other.d.data {
		out.d.data[i] = out.d.data[i].Sub(v)
	}

	return out, nil
}

// Neg returns -m as a new matrix.
func (m *MatZ) Neg() *MatZ {
	out := m.Clone()
	for i, v := range out.d.data {
		out.d.data[i] = v.Neg()
	}

	return out
}

// Mul returns the matrix product m * other; m.Cols must equal other.Rows.
// Complexity: O(r*c*k) engine multiplications.
func (m *MatZ) Mul(other *MatZ) (*MatZ, error) {
	if m.d.c != other.d.r {
		return nil, ErrDimensionMismatch
	}

	out, err := NewMatZ(m.d.r, other.d.c)
	if err != nil {
		return nil, err
	}
	for i := int64(0); i < m.d.r; i++ {
		for j := int64(0); j < other.d.c; j++ {
			acc := scalar.NewZ()
			for k := int64(0); k < m.d.c; k++ {
				acc = acc.Add(m.d.data[i*m.d.c+k].Mul(other.d.data[k*other.d.c+j]))
			}
			out.d.data[i*out.d.c+j] = acc
		}
	}

	return out, nil
}

// ScalarMul returns c * m as a new matrix.
func (m *MatZ) ScalarMul(c *scalar.Z) *MatZ {
	out := m.Clone()
	for i, v := range out.d.data {
		out.d.data[i] = v.Mul(c)
	}

	return out
}

// Package matrix: MatQ, a dense matrix with rational entries.
// Mirrors MatZ; every entry additionally stays in lowest terms through the
// scalar kernel's canonicalization.

package matrix

import (
	"github.com/katalvlaran/arbmath/scalar"
)

// MatQ is a fixed-shape matrix over Q. Construct through NewMatQ or
// MatQFromString; handle through a pointer.
type MatQ struct {
	d *dense[*scalar.Q]
}

// NewMatQ creates a rows×cols zero matrix.
// Returns ErrBadShape unless both dimensions are positive.
func NewMatQ(rows, cols int64) (*MatQ, error) {
	d, err := newDense(rows, cols, scalar.NewQ)
	if err != nil {
		return nil, err
	}

	return &MatQ{d: d}, nil
}

// MatQFromString parses "[[a,b],[c,d]]" with rational entry tokens; every
// entry is reduced to lowest terms on the way in.
func MatQFromString(s string) (*MatQ, error) {
	body, _, found, err := cutModSuffix(s)
	if err != nil || found {
		return nil, ErrMalformedInput
	}

	rows, err := splitRows(body)
	if err != nil {
		return nil, err
	}

	out, err := NewMatQ(int64(len(rows)), int64(len(rows[0])))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, tok := range row {
			v, err := scalar.QFromString(tok)
			if err != nil {
				return nil, err
			}
			out.d.data[int64(i)*out.d.c+int64(j)] = v
		}
	}

	return out, nil
}

// Rows returns the fixed number of rows. Complexity: O(1).
func (m *MatQ) Rows() int64 { return m.d.r }

// Cols returns the fixed number of columns. Complexity: O(1).
func (m *MatQ) Cols() int64 { return m.d.c }

// IsRowVector reports whether m has exactly one row.
func (m *MatQ) IsRowVector() bool { return m.d.r == 1 }

// IsColumnVector reports whether m has exactly one column.
func (m *MatQ) IsColumnVector() bool { return m.d.c == 1 }

// At retrieves a deep copy of the entry at (row, col).
func (m *MatQ) At(row, col int64) (*scalar.Q, error) {
	return m.d.at(row, col)
}

// Set stores a deep copy of v at (row, col).
func (m *MatQ) Set(row, col int64, v *scalar.Q) error {
	return m.d.set(row, col, v)
}

// Clone returns a deep copy, fully independent of the original.
func (m *MatQ) Clone() *MatQ {
	return &MatQ{d: m.d.clone()}
}

// Equal reports element-wise equality of equally shaped matrices.
func (m *MatQ) Equal(other *MatQ) bool {
	return m.d.equal(other.d)
}

// String renders the canonical bracketed grammar with reduced entries.
func (m *MatQ) String() string {
	return m.d.text()
}

// Transpose returns the transpose as a new matrix.
func (m *MatQ) Transpose() *MatQ {
	return &MatQ{d: m.d.transpose()}
}

// ConcatHorizontal returns [m | other]; mismatched row counts yield
// ErrDimensionMismatch.
func (m *MatQ) ConcatHorizontal(other *MatQ) (*MatQ, error) {
	d, err := m.d.concatHorizontal(other.d)
	if err != nil {
		return nil, err
	}

	return &MatQ{d: d}, nil
}

// ConcatVertical returns [m / other]; mismatched column counts yield
// ErrDimensionMismatch.
func (m *MatQ) ConcatVertical(other *MatQ) (*MatQ, error) {
	d, err := m.d.concatVertical(other.d)
	if err != nil {
		return nil, err
	}

	return &MatQ{d: d}, nil
}

// Tensor returns the Kronecker product m ⊗ other.
func (m *MatQ) Tensor(other *MatQ) *MatQ {
	return &MatQ{d: m.d.tensor(other.d, (*scalar.Q).Mul)}
}

// Add returns m + other; shapes must match.
func (m *MatQ) Add(other *MatQ) (*MatQ, error) {
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
func (m *MatQ) Sub(other *MatQ) (*MatQ, error) {
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
func (m *MatQ) Neg() *MatQ {
	out := m.Clone()
	for i, v := range out.d.data {
		out.d.data[i] = v.Neg()
	}

	return out
}

// Mul returns the matrix product m * other; m.Cols must equal other.Rows.
func (m *MatQ) Mul(other *MatQ) (*MatQ, error) {
	if m.d.c != other.d.r {
		return nil, ErrDimensionMismatch
	}

	out, err := NewMatQ(m.d.r, other.d.c)
	if err != nil {
		return nil, err
	}
	for i := int64(0); i < m.d.r; i++ {
		for j := int64(0); j < other.d.c; j++ {
			acc := scalar.NewQ()
			for k := int64(0); k < m.d.c; k++ {
				acc = acc.Add(m.d.data[i*m.d.c+k].Mul(other.d.data[k*other.d.c+j]))
			}
			out.d.data[i*out.d.c+j] = acc
		}
	}

	return out, nil
}

// ScalarMul returns c * m as a new matrix.
func (m *MatQ) ScalarMul(c *scalar.Q) *MatQ {
	out := m.Clone()
	for i, v := range out.d.data {
		out.d.data[i] = v.Mul(c)
	}

	return out
}

// Package matrix: MatZq, a dense matrix of residues under one shared
// modulus context. Entries are stored as their canonical representatives in
// [0, m); reduction is re-applied on every write and every operation, so
// canonical text output always shows reduced values no matter how the
// matrix was constructed.

package matrix

import (
	"github.com/katalvlaran/arbmath/modular"
	"github.com/katalvlaran/arbmath/scalar"
)

// MatZq is a fixed-shape matrix over Z/mZ. All entries share one *Modulus
// context; construct through NewMatZq or MatZqFromString.
type MatZq struct {
	d *dense[*scalar.Z] // canonical representatives in [0, m)
	m *modular.Modulus  // shared immutable context
}

// NewMatZq creates a rows×cols zero matrix under m.
// Returns ErrBadShape unless both dimensions are positive.
func NewMatZq(rows, cols int64, m *modular.Modulus) (*MatZq, error) {
	d, err := newDense(rows, cols, scalar.NewZ)
	if err != nil {
		return nil, err
	}

	return &MatZq{d: d, m: m}, nil
}

// MatZqFromString parses "[[a,b],[c,d]] mod <m>". Entries may be written
// out of range (including negative); they are reduced into [0, m)
// immediately, so "[[-17]] mod 57" round-trips as "[[40]] mod 57".
func MatZqFromString(s string) (*MatZq, error) {
	body, modText, found, err := cutModSuffix(s)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrMalformedInput
	}

	m, err := modular.ModulusFromString(modText)
	if err != nil {
		return nil, err
	}

	rows, err := splitRows(body)
	if err != nil {
		return nil, err
	}

	out, err := NewMatZq(int64(len(rows)), int64(len(rows[0])), m)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, tok := range row {
			v, err := scalar.ZFromString(tok)
			if err != nil {
				return nil, err
			}
			out.d.data[int64(i)*out.d.c+int64(j)] = reduceEntry(v, m)
		}
	}

	return out, nil
}

// reduceEntry maps any integer to its canonical representative under m.
func reduceEntry(v *scalar.Z, m *modular.Modulus) *scalar.Z {
	return modular.NewZq(v, m).Lift()
}

// Rows returns the fixed number of rows. Complexity: O(1).
func (m *MatZq) Rows() int64 { return m.d.r }

// Cols returns the fixed number of columns. Complexity: O(1).
func (m *MatZq) Cols() int64 { return m.d.c }

// Modulus returns the shared context of m.
func (m *MatZq) Modulus() *modular.Modulus { return m.m }

// IsRowVector reports whether m has exactly one row.
func (m *MatZq) IsRowVector() bool { return m.d.r == 1 }

// IsColumnVector reports whether m has exactly one column.
func (m *MatZq) IsColumnVector() bool { return m.d.c == 1 }

// At retrieves a deep copy of the canonical representative at (row, col).
func (m *MatZq) At(row, col int64) (*scalar.Z, error) {
	return m.d.at(row, col)
}

// Set stores v at (row, col), reduced into [0, modulus) first.
func (m *MatZq) Set(row, col int64, v *scalar.Z) error {
	return m.d.set(row, col, reduceEntry(v, m.m))
}

// Clone returns a deep copy of the entries sharing the same context.
func (m *MatZq) Clone() *MatZq {
	return &MatZq{d: m.d.clone(), m: m.m}
}

// Equal reports element-wise equality under equal modulus values; matrices
// under unequal moduli are never equal.
func (m *MatZq) Equal(other *MatZq) bool {
	return m.m.Equal(other.m) && m.d.equal(other.d)
}

// String renders "[[...]] mod <m>" with every entry reduced.
func (m *MatZq) String() string {
	return m.d.text() + " mod " + m.m.String()
}

// sameContext guards binary operations; unequal modulus values are
// ErrModulusMismatch, never silently resolved.
func (m *MatZq) sameContext(other *MatZq) error {
	if !m.m.Equal(other.m) {
		return ErrModulusMismatch
	}

	return nil
}

// Transpose returns the transpose sharing the same context.
func (m *MatZq) Transpose() *MatZq {
	return &MatZq{d: m.d.transpose(), m: m.m}
}

// ConcatHorizontal returns [m | other]; contexts and row counts must match.
func (m *MatZq) ConcatHorizontal(other *MatZq) (*MatZq, error) {
	if err := m.sameContext(other); err != nil {
		return nil, err
	}
	d, err := m.d.concatHorizontal(other.d)
	if err != nil {
		return nil, err
	}

	return &MatZq{d: d, m: m.m}, nil
}

// ConcatVertical returns [m / other]; contexts and column counts must match.
func (m *MatZq) ConcatVertical(other *MatZq) (*MatZq, error) {
	if err := m.sameContext(other); err != nil {
		return nil, err
	}
	d, err := m.d.concatVertical(other.d)
	if err != nil {
		return nil, err
	}

	return &MatZq{d: d, m: m.m}, nil
}

// Tensor returns the Kronecker product m ⊗ other under the shared context.
func (m *MatZq) Tensor(other *MatZq) (*MatZq, error) {
	if err := m.sameContext(other); err != nil {
		return nil, err
	}
	mul := func(a, b *scalar.Z) *scalar.Z { return reduceEntry(a.Mul(b), m.m) }

	return &MatZq{d: m.d.tensor(other.d, mul), m: m.m}, nil
}

// Add returns m + other reduced entry-wise; shapes and contexts must match.
func (m *MatZq) Add(other *MatZq) (*MatZq, error) {
	if err := m.sameContext(other); err != nil {
		return nil, err
	}
	if m.d.r != other.d.r || m.d.c != other.d.c {
		return nil, ErrDimensionMismatch
	}

	out := m.Clone()
	for i, v := range other.d.data {
		out.d.data[i] = reduceEntry(out.d.data[i].Add(v), m.m)
	}

	return out, nil
}

// Sub returns m - other reduced entry-wise; shapes and contexts must match.
func (m *MatZq) Sub(other *MatZq) (*MatZq, error) {
	if err := m.sameContext(other); err != nil {
		return nil, err
	}
	if m.d.r != other.d.r || m.d.c != other.d.c {
		return nil, ErrDimensionMismatch
	}

	out := m.Clone()
	for i, v := range other.d.data {
		out.d.data[i] = reduceEntry(out.d.data[i].Sub(v), m.m)
	}

	return out, nil
}

// Neg returns -m reduced entry-wise.
func (m *MatZq) Neg() *MatZq {
	out := m.Clone()
	for i, v := range out.d.data {
		out.d.data[i] = reduceEntry(v.Neg(), m.m)
	}

	return out
}

// Mul returns the matrix product m * other reduced entry-wise; contexts
// must match and m.Cols must equal other.Rows.
func (m *MatZq) Mul(other *MatZq) (*MatZq, error) {
	if err := m.sameContext(other); err != nil {
		return nil, err
	}
	if m.d.c != other.d.r {
		return nil, ErrDimensionMismatch
	}

	out, err := NewMatZq(m.d.r, other.d.c, m.m)
	if err != nil {
		return nil, err
	}
	for i := int64(0); i < m.d.r; i++ {
		for j := int64(0); j < other.d.c; j++ {
			acc := scalar.NewZ()
			for k := int64(0); k < m.d.c; k++ {
				acc = acc.Add(m.d.data[i*m.d.c+k].Mul(other.d.data[k*other.d.c+j]))
			}
			out.d.data[i*out.d.c+j] = reduceEntry(acc, m.m)
		}
	}

	return out, nil
}

// ScalarMul returns c * m reduced entry-wise.
func (m *MatZq) ScalarMul(c *scalar.Z) *MatZq {
	out := m.Clone()
	for i, v := range out.d.data {
		out.d.data[i] = reduceEntry(v.Mul(c), m.m)
	}

	return out
}

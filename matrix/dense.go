// Package matrix: the shared dense storage core.
// dense is a row-major flat slice generalized over the entry type; the
// exported matrix types wrap it with their own arithmetic and codec. Shape
// logic (bounds, concat, transpose, tensor) lives here exactly once.

package matrix

// entry is the contract dense storage needs from an element type: deep
// copies, value equality and canonical text.
type entry[T any] interface {
	Clone() T
	Equal(T) bool
	String() string
}

// dense is a row-major r×c matrix. data holds r*c elements; the element at
// (i, j) lives at data[i*c+j].
type dense[T entry[T]] struct {
	r, c int64
	data []T // flat backing storage, length == r*c
}

// newDense creates an r×c dense matrix with every element set by zero().
// Returns ErrBadShape unless both dimensions are positive.
// Complexity: O(r*c) time and memory.
func newDense[T entry[T]](rows, cols int64, zero func() T) (*dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	data := make([]T, rows*cols)
	for i := range data {
		data[i] = zero()
	}

	return &dense[T]{r: rows, c: cols, data: data}, nil
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (d *dense[T]) indexOf(row, col int64) (int64, error) {
	if row < 0 || row >= d.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= d.c {
		return 0, ErrOutOfRange
	}

	return row*d.c + col, nil
}

// at retrieves a deep copy of the element at (row, col).
func (d *dense[T]) at(row, col int64) (T, error) {
	var zero T
	idx, err := d.indexOf(row, col)
	if err != nil {
		return zero, err
	}

	return d.data[idx].Clone(), nil
}

// set stores a deep copy of v at (row, col).
func (d *dense[T]) set(row, col int64, v T) error {
	idx, err := d.indexOf(row, col)
	if err != nil {
		return err
	}
	d.data[idx] = v.Clone()

	return nil
}

// clone returns a fully independent deep copy.
// Complexity: O(r*c).
func (d *dense[T]) clone() *dense[T] {
	out := &dense[T]{r: d.r, c: d.c, data: make([]T, len(d.data))}
	for i, v := range d.data {
		out.data[i] = v.Clone()
	}

	return out
}

// equal reports element-wise value equality of equally shaped matrices.
func (d *dense[T]) equal(other *dense[T]) bool {
	if d.r != other.r || d.c != other.c {
		return false
	}
	for i, v := range d.data {
		if !v.Equal(other.data[i]) {
			return false
		}
	}

	return true
}

// transpose returns the c×r transpose as a new matrix.
func (d *dense[T]) transpose() *dense[T] {
	out := &dense[T]{r: d.c, c: d.r, data: make([]T, len(d.data))}
	for i := int64(0); i < d.r; i++ {
		for j := int64(0); j < d.c; j++ {
			out.data[j*out.c+i] = d.data[i*d.c+j].Clone()
		}
	}

	return out
}

// concatHorizontal returns [d | other]; row counts must match.
func (d *dense[T]) concatHorizontal(other *dense[T]) (*dense[T], error) {
	if d.r != other.r {
		return nil, ErrDimensionMismatch
	}

	out := &dense[T]{r: d.r, c: d.c + other.c, data: make([]T, d.r*(d.c+other.c))}
	for i := int64(0); i < d.r; i++ {
		for j := int64(0); j < d.c; j++ {
			out.data[i*out.c+j] = d.data[i*d.c+j].Clone()
		}
		for j := int64(0); j < other.c; j++ {
			out.data[i*out.c+d.c+j] = other.data[i*other.c+j].Clone()
		}
	}

	return out, nil
}

// concatVertical returns [d / other]; column counts must match.
func (d *dense[T]) concatVertical(other *dense[T]) (*dense[T], error) {
	if d.c != other.c {
		return nil, ErrDimensionMismatch
	}

	out := &dense[T]{r: d.r + other.r, c: d.c, data: make([]T, (d.r+other.r)*d.c)}
	for i, v := range d.data {
		out.data[i] = v.Clone()
	}
	for i, v := range other.data {
		out.data[len(d.data)+i] = v.Clone()
	}

	return out, nil
}

// tensor returns the Kronecker product d ⊗ other using mul for the entry
// products. Shape: (d.r*other.r) × (d.c*other.c).
// Complexity: O(d.r*d.c*other.r*other.c).
func (d *dense[T]) tensor(other *dense[T], mul func(a, b T) T) *dense[T] {
	out := &dense[T]{
		r:    d.r * other.r,
		c:    d.c * other.c,
		data: make([]T, d.r*other.r*d.c*other.c),
	}
	for i := int64(0); i < d.r; i++ {
		for j := int64(0); j < d.c; j++ {
			a := d.data[i*d.c+j]
			for k := int64(0); k < other.r; k++ {
				for l := int64(0); l < other.c; l++ {
					row, col := i*other.r+k, j*other.c+l
					out.data[row*out.c+col] = mul(a, other.data[k*other.c+l])
				}
			}
		}
	}

	return out
}

// text renders the bracketed canonical grammar "[[a,b],[c,d]]" with no
// spaces; every entry prints its own canonical form.
func (d *dense[T]) text() string {
	buf := make([]byte, 0, len(d.data)*4)
	buf = append(buf, '[')
	for i := int64(0); i < d.r; i++ {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '[')
		for j := int64(0); j < d.c; j++ {
			if j > 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, d.data[i*d.c+j].String()...)
		}
		buf = append(buf, ']')
	}
	buf = append(buf, ']')

	return string(buf)
}

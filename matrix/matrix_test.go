package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/arbmath/matrix"
	"github.com/katalvlaran/arbmath/scalar"
	"github.com/stretchr/testify/require"
)

func mustMatZ(t *testing.T, s string) *matrix.MatZ {
	t.Helper()
	m, err := matrix.MatZFromString(s)
	require.NoError(t, err)

	return m
}

func mustMatQ(t *testing.T, s string) *matrix.MatQ {
	t.Helper()
	m, err := matrix.MatQFromString(s)
	require.NoError(t, err)

	return m
}

// matZComparer lets go-cmp diff matrices through their public equality.
var matZComparer = cmp.Comparer(func(a, b *matrix.MatZ) bool { return a.Equal(b) })

func TestNewMatZ_Shape(t *testing.T) {
	m, err := matrix.NewMatZ(2, 3)
	require.NoError(t, err)
	require.Equal(t, int64(2), m.Rows())
	require.Equal(t, int64(3), m.Cols())
	require.Equal(t, "[[0,0,0],[0,0,0]]", m.String())

	for _, dims := range [][2]int64{{0, 3}, {3, 0}, {-1, 3}, {3, -1}} {
		_, err := matrix.NewMatZ(dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrBadShape, "dims %v", dims)
	}
}

func TestMatZFromString_RoundTrip(t *testing.T) {
	m := mustMatZ(t, "[[1,-2],[3,4]]")
	require.Equal(t, "[[1,-2],[3,4]]", m.String())

	// One space after each comma is tolerated on input.
	spaced := mustMatZ(t, "[[1, -2], [3, 4]]")
	require.Empty(t, cmp.Diff(m, spaced, matZComparer))
}

func TestMatZFromString_Rejections(t *testing.T) {
	for _, s := range []string{
		"",
		"[]",
		"[[]]",
		"[1,2]",
		"[[1,2],[3]]",    // ragged
		"[[1,2],[3,4]",   // unclosed
		"[[1,2][3,4]]",   // missing row comma
		"[[1,,2]]",       // empty entry
		"[[1,2]] mod 17", // modulus on a plain integer matrix
		"[[1,  2]]",      // two spaces after the comma
		"[[1,2],]",       // trailing row comma
	} {
		_, err := matrix.MatZFromString(s)
		require.ErrorIs(t, err, matrix.ErrMalformedInput, "input %q", s)
	}
}

func TestMatZ_AtSet(t *testing.T) {
	m := mustMatZ(t, "[[1,2],[3,4]]")

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, "3", v.String())

	require.NoError(t, m.Set(1, 0, scalar.ZFromInt(9)))
	require.Equal(t, "[[1,2],[9,4]]", m.String())

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 2, scalar.NewZ()), matrix.ErrOutOfRange)
}

func TestMatZ_SetCopies(t *testing.T) {
	m := mustMatZ(t, "[[1]]")
	v := scalar.ZFromInt(5)
	require.NoError(t, m.Set(0, 0, v))

	// Mutating the source afterwards must not reach the matrix.
	got, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, "5", got.String())
	require.Equal(t, "5", v.String())
}

func TestMatZ_CloneIndependence(t *testing.T) {
	a := mustMatZ(t, "[[1,2],[3,4]]")
	b := a.Clone()
	require.NoError(t, b.Set(0, 0, scalar.ZFromInt(9)))
	require.Equal(t, "[[1,2],[3,4]]", a.String())
	require.Equal(t, "[[9,2],[3,4]]", b.String())
}

func TestMatZ_VectorPredicates(t *testing.T) {
	require.True(t, mustMatZ(t, "[[1,2,3]]").IsRowVector())
	require.False(t, mustMatZ(t, "[[1,2,3]]").IsColumnVector())
	require.True(t, mustMatZ(t, "[[1],[2]]").IsColumnVector())
	require.False(t, mustMatZ(t, "[[1,2],[3,4]]").IsRowVector())
}

func TestMatZ_Transpose(t *testing.T) {
	m := mustMatZ(t, "[[1,2,3],[4,5,6]]")
	require.Equal(t, "[[1,4],[2,5],[3,6]]", m.Transpose().String())
	require.Empty(t, cmp.Diff(m, m.Transpose().Transpose(), matZComparer))
}

func TestMatZ_Concat(t *testing.T) {
	a := mustMatZ(t, "[[1,2],[3,4]]")
	b := mustMatZ(t, "[[5],[6]]")

	h, err := a.ConcatHorizontal(b)
	require.NoError(t, err)
	require.Equal(t, "[[1,2,5],[3,4,6]]", h.String())

	v, err := a.ConcatVertical(mustMatZ(t, "[[7,8]]"))
	require.NoError(t, err)
	require.Equal(t, "[[1,2],[3,4],[7,8]]", v.String())

	_, err = a.ConcatHorizontal(mustMatZ(t, "[[1,2]]"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.ConcatVertical(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatZ_Tensor(t *testing.T) {
	a := mustMatZ(t, "[[1,2]]")
	b := mustMatZ(t, "[[0,3],[4,0]]")
	require.Equal(t, "[[0,3,0,6],[4,0,8,0]]", a.Tensor(b).String())
}

func TestMatZ_Arithmetic(t *testing.T) {
	a := mustMatZ(t, "[[1,2],[3,4]]")
	b := mustMatZ(t, "[[2,0],[1,2]]")

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, "[[3,2],[4,6]]", sum.String())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, "[[-1,2],[2,2]]", diff.String())

	require.Equal(t, "[[-1,-2],[-3,-4]]", a.Neg().String())
	require.Equal(t, "[[3,6],[9,12]]", a.ScalarMul(scalar.ZFromInt(3)).String())

	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, "[[4,4],[10,8]]", prod.String())

	_, err = a.Add(mustMatZ(t, "[[1,2,3]]"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Mul(mustMatZ(t, "[[1,2],[3,4],[5,6]]"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatQ_CanonicalEntries(t *testing.T) {
	m := mustMatQ(t, "[[2/4,1],[-1/-2,3/1]]")
	require.Equal(t, "[[1/2,1],[1/2,3]]", m.String())
}

func TestMatQ_Arithmetic(t *testing.T) {
	a := mustMatQ(t, "[[1/2,1/3]]")
	b := mustMatQ(t, "[[1/2,2/3]]")

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, "[[1,1]]", sum.String())

	prod, err := a.Mul(b.Transpose())
	require.NoError(t, err)
	require.Equal(t, "[[17/36]]", prod.String())

	require.Equal(t, "[[1/4,1/6]]", a.ScalarMul(mustQ(t, "1/2")).String())
}

func mustQ(t *testing.T, s string) *scalar.Q {
	t.Helper()
	q, err := scalar.QFromString(s)
	require.NoError(t, err)

	return q
}

func TestMat_ComposedForms(t *testing.T) {
	m := mustMatZ(t, "[[1,2],[3,4]]")

	v, err := matrix.MatZAt(m, uint8(1), int16(1))
	require.NoError(t, err)
	require.Equal(t, "4", v.String())

	require.NoError(t, matrix.MatZSetInt(m, 0, uint32(1), int8(-7)))
	require.Equal(t, "[[1,-7],[3,4]]", m.String())

	require.Equal(t, "[[2,-14],[6,8]]", matrix.MatZScalarMulInt(m, 2).String())

	_, err = matrix.MatZAt(m, -1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	q := mustMatQ(t, "[[1/2]]")
	require.NoError(t, matrix.MatQSetInt(q, 0, 0, 3))
	require.Equal(t, "[[3]]", q.String())
	require.Equal(t, "[[6]]", matrix.MatQScalarMulInt(q, uint16(2)).String())
}

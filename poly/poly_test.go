package poly_test

import (
	"testing"

	"github.com/katalvlaran/arbmath/poly"
	"github.com/katalvlaran/arbmath/scalar"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func mustPolyZ(t *testing.T, s string) *poly.PolyZ {
	t.Helper()
	p, err := poly.PolyZFromString(s)
	require.NoError(t, err)

	return p
}

func mustPolyQ(t *testing.T, s string) *poly.PolyQ {
	t.Helper()
	p, err := poly.PolyQFromString(s)
	require.NoError(t, err)

	return p
}

func TestPolyZFromString_Canonical(t *testing.T) {
	p := mustPolyZ(t, "3  17 0 -5")
	require.Equal(t, int64(3), p.Len())
	require.Equal(t, int64(2), p.Degree())
	require.Equal(t, "3  17 0 -5", p.String())
}

func TestPolyZFromString_TrimsTrailingZeros(t *testing.T) {
	p := mustPolyZ(t, "4  1 2 0 0")
	require.Equal(t, int64(2), p.Len())
	require.Equal(t, "2  1 2", p.String())
}

func TestPolyZFromString_ZeroPolynomial(t *testing.T) {
	p := mustPolyZ(t, "0")
	require.True(t, p.IsZero())
	require.Equal(t, int64(-1), p.Degree())
	require.Equal(t, "0", p.String())

	// A parsed all-zero list trims down to the same canonical form.
	require.Equal(t, "0", mustPolyZ(t, "2  0 0").String())
}

func TestPolyZFromString_MissingSeparator(t *testing.T) {
	_, err := poly.PolyZFromString("3 1 2 3")
	require.ErrorIs(t, err, poly.ErrMissingSeparator)
}

func TestPolyZFromString_Rejections(t *testing.T) {
	for _, s := range []string{
		"3  1 2",      // count larger than the list
		"1  1 2",      // count smaller than the list
		"-1  1",       // signed count
		"+1  1",       // signed count
		"x  1",        // non-numeric count
		"2  1  2",     // double space inside the list
		"2  1 2 ",     // trailing space
		"2  1 x",      // bad coefficient
		"0  ",         // zero count with separator
	} {
		_, err := poly.PolyZFromString(s)
		require.ErrorIs(t, err, poly.ErrMalformedInput, "input %q", s)
	}
}

func TestPolyZ_CoeffBeyondLength(t *testing.T) {
	p := mustPolyZ(t, "4  0 1 2 3")

	c, err := p.Coeff(4)
	require.NoError(t, err)
	require.True(t, c.IsZero())

	c, err = p.Coeff(1)
	require.NoError(t, err)
	require.Equal(t, "1", c.String())

	_, err = p.Coeff(-1)
	require.ErrorIs(t, err, poly.ErrOutOfRange)
}

func TestPolyZ_SetCoeff(t *testing.T) {
	p := poly.NewPolyZ()
	require.NoError(t, p.SetCoeff(3, scalar.ZFromInt(7)))
	require.Equal(t, "4  0 0 0 7", p.String())

	// Zeroing the leading coefficient re-trims.
	require.NoError(t, p.SetCoeff(3, scalar.NewZ()))
	require.True(t, p.IsZero())

	require.ErrorIs(t, p.SetCoeff(-1, scalar.NewZ()), poly.ErrOutOfRange)
}

func TestPolyZ_Arithmetic(t *testing.T) {
	a := mustPolyZ(t, "3  1 2 3")
	b := mustPolyZ(t, "2  4 5")

	require.Equal(t, "3  5 7 3", a.Add(b).String())
	require.Equal(t, "3  -3 -3 3", a.Sub(b).String())
	require.Equal(t, "3  -1 -2 -3", a.Neg().String())
	require.Equal(t, "4  4 13 22 15", a.Mul(b).String())
	require.Equal(t, "3  2 4 6", a.MulScalar(scalar.ZFromInt(2)).String())

	// Subtraction of equals collapses to the zero polynomial.
	require.True(t, a.Sub(a).IsZero())
	// Multiplication by zero stays zero.
	require.True(t, a.Mul(poly.NewPolyZ()).IsZero())
}

func TestPolyZ_Evaluate(t *testing.T) {
	// p(x) = 1 + 2x + 3x^2, p(2) = 17.
	p := mustPolyZ(t, "3  1 2 3")
	require.Equal(t, "17", p.Evaluate(scalar.ZFromInt(2)).String())
	require.Equal(t, "1", p.Evaluate(scalar.NewZ()).String())
	require.True(t, poly.NewPolyZ().Evaluate(scalar.ZFromInt(9)).IsZero())
}

func TestPolyZ_CloneIndependence(t *testing.T) {
	a := mustPolyZ(t, "2  1 2")
	b := a.Clone()
	require.True(t, a.Equal(b))

	require.NoError(t, b.SetCoeff(0, scalar.ZFromInt(9)))
	require.Equal(t, "2  1 2", a.String())
}

func TestPolyZ_RoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("string/parse is the identity", prop.ForAll(
		func(coeffs []int64) bool {
			p := poly.NewPolyZ()
			for i, c := range coeffs {
				if err := p.SetCoeff(int64(i), scalar.ZFromInt(c)); err != nil {
					return false
				}
			}
			back, err := poly.PolyZFromString(p.String())

			return err == nil && back.Equal(p)
		},
		gen.SliceOf(gen.Int64()),
	))
	properties.TestingRun(t)
}

func TestPolyQFromString_Canonical(t *testing.T) {
	p := mustPolyQ(t, "3  1 2/4 -3/2")
	require.Equal(t, "3  1 1/2 -3/2", p.String())
}

func TestPolyQFromString_MissingSeparator(t *testing.T) {
	_, err := poly.PolyQFromString("3 1 2/5 -3/2")
	require.ErrorIs(t, err, poly.ErrMissingSeparator)
}

func TestPolyQ_Arithmetic(t *testing.T) {
	a := mustPolyQ(t, "2  1/2 1/3")
	b := mustPolyQ(t, "2  1/2 2/3")

	require.Equal(t, "2  1 1", a.Add(b).String())
	require.Equal(t, "2  0 -1/3", a.Sub(b).String())
	require.Equal(t, "3  1/4 1/2 2/9", a.Mul(b).String())
	require.Equal(t, "2  3/2 1", a.MulScalar(scalar.QFromInt(3)).String())
}

func TestPolyQ_Evaluate(t *testing.T) {
	// p(x) = 1/2 + 1/3 x, p(3/2) = 1.
	p := mustPolyQ(t, "2  1/2 1/3")
	x, err := scalar.QFromString("3/2")
	require.NoError(t, err)
	require.Equal(t, "1", p.Evaluate(x).String())
}

func TestPoly_ComposedForms(t *testing.T) {
	p := mustPolyZ(t, "3  1 2 3")

	c, err := poly.PolyZCoeffAt(p, uint8(2))
	require.NoError(t, err)
	require.Equal(t, "3", c.String())

	require.NoError(t, poly.PolyZSetCoeffInt(p, uint16(3), int8(4)))
	require.Equal(t, "4  1 2 3 4", p.String())

	require.Equal(t, "49", poly.PolyZEvaluateInt(p, int32(2)).String())
	require.Equal(t, "4  2 4 6 8", poly.PolyZMulInt(p, 2).String())

	q := mustPolyQ(t, "2  1/2 1/2")
	require.Equal(t, "3/2", poly.PolyQEvaluateInt(q, uint32(2)).String())
	require.NoError(t, poly.PolyQSetCoeffInt(q, 0, int16(2)))
	require.Equal(t, "2  2 1/2", q.String())
}

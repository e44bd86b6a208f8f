package modular_test

import (
	"testing"

	"github.com/katalvlaran/arbmath/modular"
	"github.com/katalvlaran/arbmath/poly"
	"github.com/katalvlaran/arbmath/scalar"
	"github.com/stretchr/testify/require"
)

func mustRing(t *testing.T, s string) *modular.RingModulus {
	t.Helper()
	r, err := modular.RingModulusFromString(s)
	require.NoError(t, err)

	return r
}

func mustRingPoly(t *testing.T, s string) *modular.RingPoly {
	t.Helper()
	p, err := modular.RingPolyFromString(s)
	require.NoError(t, err)

	return p
}

func TestNewRingModulus(t *testing.T) {
	// X^2 + 1 over GF(17).
	r := mustRing(t, "3  1 0 1 mod 17")
	require.Equal(t, int64(2), r.Degree())
	require.Equal(t, "17", r.Prime().String())
	require.Equal(t, "3  1 0 1 mod 17", r.String())
}

func TestNewRingModulus_ReducesCoefficients(t *testing.T) {
	// 18 = 1 mod 17 and -1 = 16 mod 17.
	r := mustRing(t, "3  18 -1 1 mod 17")
	require.Equal(t, "3  1 16 1 mod 17", r.String())
}

func TestNewRingModulus_Rejections(t *testing.T) {
	// Composite coefficient modulus.
	_, err := modular.RingModulusFromString("3  1 0 1 mod 57")
	require.ErrorIs(t, err, modular.ErrInvalidModulus)

	// Constant after reduction: 17X + 1 collapses mod 17.
	_, err = modular.RingModulusFromString("2  1 17 mod 17")
	require.ErrorIs(t, err, modular.ErrInvalidModulus)

	// Zero polynomial.
	_, err = modular.RingModulusFromString("0 mod 17")
	require.ErrorIs(t, err, modular.ErrInvalidModulus)

	f, err := poly.PolyZFromString("3  1 0 1")
	require.NoError(t, err)
	_, err = modular.NewRingModulus(f, scalar.NewZ())
	require.ErrorIs(t, err, modular.ErrInvalidModulus)
}

func TestRingModulus_EqualByValue(t *testing.T) {
	a := mustRing(t, "3  1 0 1 mod 17")
	b := mustRing(t, "3  1 0 1 mod 17")
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(mustRing(t, "3  2 0 1 mod 17")))
	require.False(t, a.Equal(mustRing(t, "3  1 0 1 mod 19")))
}

func TestNewRingPoly_Reduces(t *testing.T) {
	ring := mustRing(t, "3  1 0 1 mod 17")

	// X^2 = -1 = 16 in Zq[X]/(X^2+1).
	square, err := poly.PolyZFromString("3  0 0 1")
	require.NoError(t, err)
	require.Equal(t, "1  16 / 3  1 0 1 mod 17", modular.NewRingPoly(square, ring).String())

	// Coefficients reduce mod 17 first.
	big, err := poly.PolyZFromString("2  18 -1")
	require.NoError(t, err)
	require.Equal(t, "2  1 16 / 3  1 0 1 mod 17", modular.NewRingPoly(big, ring).String())
}

func TestRingPolyFromString_RoundTrip(t *testing.T) {
	p := mustRingPoly(t, "2  1 5 / 3  1 0 1 mod 17")
	require.Equal(t, "2  1 5 / 3  1 0 1 mod 17", p.String())
	require.Equal(t, "2  1 5", p.Lift().String())

	back := mustRingPoly(t, p.String())
	require.True(t, back.Equal(p))

	_, err := modular.RingPolyFromString("2  1 5 mod 17")
	require.ErrorIs(t, err, modular.ErrMalformedInput)
}

func TestRingPoly_Arithmetic(t *testing.T) {
	ring := mustRing(t, "3  1 0 1 mod 17")
	a := mustRingPoly(t, "2  1 5 / 3  1 0 1 mod 17")
	b := mustRingPoly(t, "2  16 13 / 3  1 0 1 mod 17")

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, "2  0 1", sum.Lift().String())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, "2  2 9", diff.Lift().String())

	// (1+5X)(16+13X) = 16 + 93X + 65X^2; X^2 = -1, so 16-65+93X = -49+93X
	// = 2 + 8X mod 17.
	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, "2  2 8", prod.Lift().String())

	require.Equal(t, "2  16 12", a.Neg().Lift().String())

	// Subtraction of equals collapses to the ring zero.
	zero, err := a.Sub(a)
	require.NoError(t, err)
	require.True(t, zero.IsZero())
	_ = ring
}

func TestRingPoly_RingMismatch(t *testing.T) {
	a := mustRingPoly(t, "1  1 / 3  1 0 1 mod 17")
	b := mustRingPoly(t, "1  1 / 3  1 0 1 mod 19")

	_, err := a.Add(b)
	require.ErrorIs(t, err, modular.ErrModulusMismatch)
	_, err = a.Mul(b)
	require.ErrorIs(t, err, modular.ErrModulusMismatch)
}

func TestRingPoly_CloneIndependence(t *testing.T) {
	a := mustRingPoly(t, "2  1 5 / 3  1 0 1 mod 17")
	b := a.Clone()
	require.True(t, a.Equal(b))
	require.True(t, a.Ring().Equal(b.Ring()))
}

package poly_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/arbmath/codec"
	"github.com/katalvlaran/arbmath/poly"
	"github.com/stretchr/testify/require"
)

func TestPolyZ_JSONRoundTrip(t *testing.T) {
	p := mustPolyZ(t, "3  17 0 -5")

	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.Equal(t, `{"poly":"3  17 0 -5"}`, string(data))

	var back poly.PolyZ
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, back.Equal(p))
}

func TestPolyZ_JSONStrictness(t *testing.T) {
	var p poly.PolyZ
	require.ErrorIs(t, json.Unmarshal([]byte(`{"value":"0"}`), &p), codec.ErrUnexpectedField)
	require.ErrorIs(t, json.Unmarshal([]byte(`{"poly":"3 1 2 3"}`), &p), poly.ErrMissingSeparator)
}

func TestPolyQ_JSONRoundTrip(t *testing.T) {
	p := mustPolyQ(t, "2  1/2 -3/4")

	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.Equal(t, `{"poly":"2  1/2 -3/4"}`, string(data))

	var back poly.PolyQ
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, back.Equal(p))
}

func TestPolyZ_CBORRoundTrip(t *testing.T) {
	p := mustPolyZ(t, "2  -1 18446744073709551616")

	var buf bytes.Buffer
	require.NoError(t, p.EncodeCBOR(&buf))

	var back poly.PolyZ
	require.NoError(t, back.DecodeCBOR(&buf))
	require.True(t, back.Equal(p))
}

func TestPolyQ_CBORRoundTrip(t *testing.T) {
	p := mustPolyQ(t, "0")

	var buf bytes.Buffer
	require.NoError(t, p.EncodeCBOR(&buf))

	var back poly.PolyQ
	require.NoError(t, back.DecodeCBOR(&buf))
	require.True(t, back.IsZero())
}

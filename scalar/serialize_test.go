package scalar_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/arbmath/codec"
	"github.com/katalvlaran/arbmath/scalar"
	"github.com/stretchr/testify/require"
)

func TestZ_JSONRoundTrip(t *testing.T) {
	z := mustZ(t, "-42")

	data, err := json.Marshal(z)
	require.NoError(t, err)
	require.Equal(t, `{"value":"-42"}`, string(data))

	var back scalar.Z
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, back.Equal(z))
}

func TestZ_JSONStrictness(t *testing.T) {
	var z scalar.Z
	require.ErrorIs(t, json.Unmarshal([]byte(`{"value":"1","extra":"2"}`), &z), codec.ErrUnexpectedField)
	require.ErrorIs(t, json.Unmarshal([]byte(`{}`), &z), codec.ErrMissingField)
	require.ErrorIs(t, json.Unmarshal([]byte(`{"value":1}`), &z), codec.ErrNonStringPayload)
	require.ErrorIs(t, json.Unmarshal([]byte(`{"value":"not a number"}`), &z), scalar.ErrMalformedInput)
}

func TestQ_JSONRoundTrip(t *testing.T) {
	q := mustQ(t, "2/4")

	data, err := json.Marshal(q)
	require.NoError(t, err)
	require.Equal(t, `{"value":"1/2"}`, string(data))

	var back scalar.Q
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, back.Equal(q))
}

func TestZ_CBORRoundTrip(t *testing.T) {
	z := mustZ(t, "18446744073709551616")

	var buf bytes.Buffer
	require.NoError(t, z.EncodeCBOR(&buf))

	var back scalar.Z
	require.NoError(t, back.DecodeCBOR(&buf))
	require.True(t, back.Equal(z))
}

func TestQ_CBORRoundTrip(t *testing.T) {
	q := mustQ(t, "-7/3")

	var buf bytes.Buffer
	require.NoError(t, q.EncodeCBOR(&buf))

	var back scalar.Q
	require.NoError(t, back.DecodeCBOR(&buf))
	require.True(t, back.Equal(q))
}

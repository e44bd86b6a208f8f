package codec_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/arbmath/codec"
	"github.com/stretchr/testify/require"
)

func TestWrapText_Canonical(t *testing.T) {
	out, err := codec.WrapText("value", "-42")
	require.NoError(t, err)
	require.Equal(t, `{"value":"-42"}`, string(out))
}

func TestWrapText_EscapesPayload(t *testing.T) {
	out, err := codec.WrapText("value", `a"b`)
	require.NoError(t, err)
	require.Equal(t, `{"value":"a\"b"}`, string(out))
}

func TestUnwrapText_RoundTrip(t *testing.T) {
	wrapped, err := codec.WrapText("poly", "3  17 0 -5")
	require.NoError(t, err)

	text, err := codec.UnwrapText(wrapped, "poly")
	require.NoError(t, err)
	require.Equal(t, "3  17 0 -5", text)
}

func TestUnwrapText_Strictness(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty object", `{}`, codec.ErrMissingField},
		{"wrong field", `{"other":"1"}`, codec.ErrUnexpectedField},
		{"extra field", `{"value":"1","other":"2"}`, codec.ErrUnexpectedField},
		{"duplicate field", `{"value":"1","value":"2"}`, codec.ErrDuplicateField},
		{"non-string payload", `{"value":42}`, codec.ErrNonStringPayload},
		{"null payload", `{"value":null}`, codec.ErrNonStringPayload},
		{"bare string", `"value"`, codec.ErrMalformedInput},
		{"trailing garbage", `{"value":"1"} x`, codec.ErrMalformedInput},
		{"truncated", `{"value":"1"`, codec.ErrMalformedInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.UnwrapText([]byte(tc.in), "value")
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCBOR_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, codec.EncodeCBOR(&buf, "matrix", "[[1,2],[3,4]]"))

	text, err := codec.DecodeCBOR(&buf, "matrix")
	require.NoError(t, err)
	require.Equal(t, "[[1,2],[3,4]]", text)
}

func TestDecodeCBOR_WrongField(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, codec.EncodeCBOR(&buf, "value", "1"))

	_, err := codec.DecodeCBOR(&buf, "matrix")
	require.ErrorIs(t, err, codec.ErrUnexpectedField)
}

func TestCheckBase(t *testing.T) {
	require.NoError(t, codec.CheckBase(2))
	require.NoError(t, codec.CheckBase(10))
	require.NoError(t, codec.CheckBase(62))
	require.ErrorIs(t, codec.CheckBase(1), codec.ErrOutOfRange)
	require.ErrorIs(t, codec.CheckBase(63), codec.ErrOutOfRange)
	require.ErrorIs(t, codec.CheckBase(-10), codec.ErrOutOfRange)
}

func TestCheckToken(t *testing.T) {
	require.NoError(t, codec.CheckToken("-42"))
	require.ErrorIs(t, codec.CheckToken(""), codec.ErrMalformedInput)
	require.ErrorIs(t, codec.CheckToken(" 42"), codec.ErrMalformedInput)
	require.ErrorIs(t, codec.CheckToken("42 "), codec.ErrMalformedInput)
	require.ErrorIs(t, codec.CheckToken("4\t2"), codec.ErrMalformedInput)
	require.ErrorIs(t, codec.CheckToken("4\x002"), codec.ErrMalformedInput)
}

func TestToIndex_Widths(t *testing.T) {
	got, err := codec.ToIndex(int8(7))
	require.NoError(t, err)
	require.Equal(t, int64(7), got)

	got, err = codec.ToIndex(uint16(65535))
	require.NoError(t, err)
	require.Equal(t, int64(65535), got)

	got, err = codec.ToIndex(uint64(math.MaxInt64))
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), got)
}

func TestToIndex_Rejections(t *testing.T) {
	_, err := codec.ToIndex(int32(-1))
	require.ErrorIs(t, err, codec.ErrOutOfRange)

	_, err = codec.ToIndex(uint64(math.MaxInt64) + 1)
	require.ErrorIs(t, err, codec.ErrOutOfRange)

	_, err = codec.ToIndex(uint64(math.MaxUint64))
	require.ErrorIs(t, err, codec.ErrOutOfRange)
}

// Package scalar: structured serialization of Z and Q.
// Both types use the strict single-field wrapper {"value":"<text>"} for
// JSON and the same map shape for canonical CBOR. Payloads that fail the
// type's own grammar surface as deserialization errors.

package scalar

import (
	"io"

	"github.com/katalvlaran/arbmath/codec"
)

// wrapperField is the fixed wrapper field name shared by Z and Q.
const wrapperField = "value"

// MarshalJSON renders z as {"value":"<base-10 text>"}.
func (z *Z) MarshalJSON() ([]byte, error) {
	return codec.WrapText(wrapperField, z.String())
}

// UnmarshalJSON parses the strict single-field wrapper and the contained
// base-10 integer text.
func (z *Z) UnmarshalJSON(data []byte) error {
	text, err := codec.UnwrapText(data, wrapperField)
	if err != nil {
		return err
	}
	parsed, err := ZFromString(text)
	if err != nil {
		return err
	}
	z.v.Set(&parsed.v)

	return nil
}

// EncodeCBOR writes z as the canonical CBOR form of the wrapper.
func (z *Z) EncodeCBOR(w io.Writer) error {
	return codec.EncodeCBOR(w, wrapperField, z.String())
}

// DecodeCBOR reads one CBOR wrapper from r into z.
func (z *Z) DecodeCBOR(r io.Reader) error {
	text, err := codec.DecodeCBOR(r, wrapperField)
	if err != nil {
		return err
	}
	parsed, err := ZFromString(text)
	if err != nil {
		return err
	}
	z.v.Set(&parsed.v)

	return nil
}

// MarshalJSON renders q as {"value":"<canonical rational text>"}.
func (q *Q) MarshalJSON() ([]byte, error) {
	return codec.WrapText(wrapperField, q.String())
}

// UnmarshalJSON parses the strict single-field wrapper and the contained
// rational text, canonicalizing the result.
func (q *Q) UnmarshalJSON(data []byte) error {
	text, err := codec.UnwrapText(data, wrapperField)
	if err != nil {
		return err
	}
	parsed, err := QFromString(text)
	if err != nil {
		return err
	}
	q.v.Set(&parsed.v)

	return nil
}

// EncodeCBOR writes q as the canonical CBOR form of the wrapper.
func (q *Q) EncodeCBOR(w io.Writer) error {
	return codec.EncodeCBOR(w, wrapperField, q.String())
}

// DecodeCBOR reads one CBOR wrapper from r into q.
func (q *Q) DecodeCBOR(r io.Reader) error {
	text, err := codec.DecodeCBOR(r, wrapperField)
	if err != nil {
		return err
	}
	parsed, err := QFromString(text)
	if err != nil {
		return err
	}
	q.v.Set(&parsed.v)

	return nil
}

// Package matrix: structured serialization of the matrix types.
// Every matrix serializes as the strict single-field wrapper
// {"matrix":"<canonical text>"}; the payload is the same grammar the
// FromString constructors accept, so MatZq carries its modulus inside the
// one field.

package matrix

import (
	"io"

	"github.com/katalvlaran/arbmath/codec"
)

// matrixField is the fixed wrapper field name shared by all matrix types.
const matrixField = "matrix"

// MarshalJSON renders m as {"matrix":"[[...]]"}.
func (m *MatZ) MarshalJSON() ([]byte, error) {
	return codec.WrapText(matrixField, m.String())
}

// UnmarshalJSON parses the strict single-field wrapper and the contained
// bracketed integer matrix.
func (m *MatZ) UnmarshalJSON(data []byte) error {
	text, err := codec.UnwrapText(data, matrixField)
	if err != nil {
		return err
	}
	parsed, err := MatZFromString(text)
	if err != nil {
		return err
	}
	m.d = parsed.d

	return nil
}

// EncodeCBOR writes m as the canonical CBOR form of the wrapper.
func (m *MatZ) EncodeCBOR(w io.Writer) error {
	return codec.EncodeCBOR(w, matrixField, m.String())
}

// DecodeCBOR reads one CBOR wrapper from r into m.
func (m *MatZ) DecodeCBOR(r io.Reader) error {
	text, err := codec.DecodeCBOR(r, matrixField)
	if err != nil {
		return err
	}
	parsed, err := MatZFromString(text)
	if err != nil {
		return err
	}
	m.d = parsed.d

	return nil
}

// MarshalJSON renders m as {"matrix":"[[...]]"} with reduced entries.
func (m *MatQ) MarshalJSON() ([]byte, error) {
	return codec.WrapText(matrixField, m.String())
}

// UnmarshalJSON parses the strict single-field wrapper and the contained
// bracketed rational matrix.
func (m *MatQ) UnmarshalJSON(data []byte) error {
	text, err := codec.UnwrapText(data, matrixField)
	if err != nil {
		return err
	}
	parsed, err := MatQFromString(text)
	if err != nil {
		return err
	}
	m.d = parsed.d

	return nil
}

// EncodeCBOR writes m as the canonical CBOR form of the wrapper.
func (m *MatQ) EncodeCBOR(w io.Writer) error {
	return codec.EncodeCBOR(w, matrixField, m.String())
}

// DecodeCBOR reads one CBOR wrapper from r into m.
func (m *MatQ) DecodeCBOR(r io.Reader) error {
	text, err := codec.DecodeCBOR(r, matrixField)
	if err != nil {
		return err
	}
	parsed, err := MatQFromString(text)
	if err != nil {
		return err
	}
	m.d = parsed.d

	return nil
}

// MarshalJSON renders m as {"matrix":"[[...]] mod <m>"} with every entry
// reduced into [0, modulus).
func (m *MatZq) MarshalJSON() ([]byte, error) {
	return codec.WrapText(matrixField, m.String())
}

// UnmarshalJSON parses the strict single-field wrapper and the contained
// residue matrix, adopting the modulus embedded in the payload.
func (m *MatZq) UnmarshalJSON(data []byte) error {
	text, err := codec.UnwrapText(data, matrixField)
	if err != nil {
		return err
	}
	parsed, err := MatZqFromString(text)
	if err != nil {
		return err
	}
	m.d, m.m = parsed.d, parsed.m

	return nil
}

// EncodeCBOR writes m as the canonical CBOR form of the wrapper.
func (m *MatZq) EncodeCBOR(w io.Writer) error {
	return codec.EncodeCBOR(w, matrixField, m.String())
}

// DecodeCBOR reads one CBOR wrapper from r into m.
func (m *MatZq) DecodeCBOR(r io.Reader) error {
	text, err := codec.DecodeCBOR(r, matrixField)
	if err != nil {
		return err
	}
	parsed, err := MatZqFromString(text)
	if err != nil {
		return err
	}
	m.d, m.m = parsed.d, parsed.m

	return nil
}

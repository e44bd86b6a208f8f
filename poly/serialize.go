// Package poly: structured serialization of PolyZ and PolyQ.
// Both wrap their canonical text under the fixed field "poly".

package poly

import (
	"io"

	"github.com/katalvlaran/arbmath/codec"
)

// wrapperField is the fixed wrapper field name shared by the polynomial
// types.
const wrapperField = "poly"

// MarshalJSON renders p as {"poly":"<canonical text>"}.
func (p *PolyZ) MarshalJSON() ([]byte, error) {
	return codec.WrapText(wrapperField, p.String())
}

// UnmarshalJSON parses the strict wrapper and the contained polynomial.
func (p *PolyZ) UnmarshalJSON(data []byte) error {
	text, err := codec.UnwrapText(data, wrapperField)
	if err != nil {
		return err
	}
	parsed, err := PolyZFromString(text)
	if err != nil {
		return err
	}
	p.coeffs = parsed.coeffs

	return nil
}

// EncodeCBOR writes p as the canonical CBOR form of the wrapper.
func (p *PolyZ) EncodeCBOR(w io.Writer) error {
	return codec.EncodeCBOR(w, wrapperField, p.String())
}

// DecodeCBOR reads one CBOR wrapper from r into p.
func (p *PolyZ) DecodeCBOR(r io.Reader) error {
	text, err := codec.DecodeCBOR(r, wrapperField)
	if err != nil {
		return err
	}
	parsed, err := PolyZFromString(text)
	if err != nil {
		return err
	}
	p.coeffs = parsed.coeffs

	return nil
}

// MarshalJSON renders p as {"poly":"<canonical text>"}.
func (p *PolyQ) MarshalJSON() ([]byte, error) {
	return codec.WrapText(wrapperField, p.String())
}

// UnmarshalJSON parses the strict wrapper and the contained polynomial.
func (p *PolyQ) UnmarshalJSON(data []byte) error {
	text, err := codec.UnwrapText(data, wrapperField)
	if err != nil {
		return err
	}
	parsed, err := PolyQFromString(text)
	if err != nil {
		return err
	}
	p.coeffs = parsed.coeffs

	return nil
}

// EncodeCBOR writes p as the canonical CBOR form of the wrapper.
func (p *PolyQ) EncodeCBOR(w io.Writer) error {
	return codec.EncodeCBOR(w, wrapperField, p.String())
}

// DecodeCBOR reads one CBOR wrapper from r into p.
func (p *PolyQ) DecodeCBOR(r io.Reader) error {
	text, err := codec.DecodeCBOR(r, wrapperField)
	if err != nil {
		return err
	}
	parsed, err := PolyQFromString(text)
	if err != nil {
		return err
	}
	p.coeffs = parsed.coeffs

	return nil
}

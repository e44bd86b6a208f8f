// Package modular: structured serialization of the modular types.
// Field names: "modulus" for the two context types, "value" for Zq and
// "poly" for RingPoly. Deserializing a non-positive or degenerate modulus
// fails with the same typed errors as direct construction.

package modular

import (
	"io"

	"github.com/katalvlaran/arbmath/codec"
)

const (
	modulusField = "modulus"
	valueField   = "value"
	polyField    = "poly"
)

// MarshalJSON renders m as {"modulus":"<value>"}.
func (m *Modulus) MarshalJSON() ([]byte, error) {
	return codec.WrapText(modulusField, m.String())
}

// UnmarshalJSON parses the strict wrapper; the payload must be a positive
// integer.
func (m *Modulus) UnmarshalJSON(data []byte) error {
	text, err := codec.UnwrapText(data, modulusField)
	if err != nil {
		return err
	}
	parsed, err := ModulusFromString(text)
	if err != nil {
		return err
	}
	m.m.Set(&parsed.m)

	return nil
}

// EncodeCBOR writes m as the canonical CBOR form of the wrapper.
func (m *Modulus) EncodeCBOR(w io.Writer) error {
	return codec.EncodeCBOR(w, modulusField, m.String())
}

// DecodeCBOR reads one CBOR wrapper from r into m.
func (m *Modulus) DecodeCBOR(r io.Reader) error {
	text, err := codec.DecodeCBOR(r, modulusField)
	if err != nil {
		return err
	}
	parsed, err := ModulusFromString(text)
	if err != nil {
		return err
	}
	m.m.Set(&parsed.m)

	return nil
}

// MarshalJSON renders z as {"value":"<rep> mod <modulus>"}.
func (z *Zq) MarshalJSON() ([]byte, error) {
	return codec.WrapText(valueField, z.String())
}

// UnmarshalJSON parses the strict wrapper and the contained residue text.
func (z *Zq) UnmarshalJSON(data []byte) error {
	text, err := codec.UnwrapText(data, valueField)
	if err != nil {
		return err
	}
	parsed, err := ZqFromString(text)
	if err != nil {
		return err
	}
	z.v.Set(&parsed.v)
	z.m = parsed.m

	return nil
}

// EncodeCBOR writes z as the canonical CBOR form of the wrapper.
func (z *Zq) EncodeCBOR(w io.Writer) error {
	return codec.EncodeCBOR(w, valueField, z.String())
}

// DecodeCBOR reads one CBOR wrapper from r into z.
func (z *Zq) DecodeCBOR(r io.Reader) error {
	text, err := codec.DecodeCBOR(r, valueField)
	if err != nil {
		return err
	}
	parsed, err := ZqFromString(text)
	if err != nil {
		return err
	}
	z.v.Set(&parsed.v)
	z.m = parsed.m

	return nil
}

// MarshalJSON renders r as {"modulus":"<f> mod <q>"}.
func (r *RingModulus) MarshalJSON() ([]byte, error) {
	return codec.WrapText(modulusField, r.String())
}

// UnmarshalJSON parses the strict wrapper; the payload must describe a
// non-degenerate ring.
func (r *RingModulus) UnmarshalJSON(data []byte) error {
	text, err := codec.UnwrapText(data, modulusField)
	if err != nil {
		return err
	}
	parsed, err := RingModulusFromString(text)
	if err != nil {
		return err
	}
	r.f = parsed.f
	r.q.Set(&parsed.q)
	r.leadInv = parsed.leadInv

	return nil
}

// EncodeCBOR writes r as the canonical CBOR form of the wrapper.
func (r *RingModulus) EncodeCBOR(w io.Writer) error {
	return codec.EncodeCBOR(w, modulusField, r.String())
}

// DecodeCBOR reads one CBOR wrapper from reader into r.
func (r *RingModulus) DecodeCBOR(reader io.Reader) error {
	text, err := codec.DecodeCBOR(reader, modulusField)
	if err != nil {
		return err
	}
	parsed, err := RingModulusFromString(text)
	if err != nil {
		return err
	}
	r.f = parsed.f
	r.q.Set(&parsed.q)
	r.leadInv = parsed.leadInv

	return nil
}

// MarshalJSON renders p as {"poly":"<residue> / <f> mod <q>"}.
func (p *RingPoly) MarshalJSON() ([]byte, error) {
	return codec.WrapText(polyField, p.String())
}

// UnmarshalJSON parses the strict wrapper and the self-describing residue.
func (p *RingPoly) UnmarshalJSON(data []byte) error {
	text, err := codec.UnwrapText(data, polyField)
	if err != nil {
		return err
	}
	parsed, err := RingPolyFromString(text)
	if err != nil {
		return err
	}
	p.coeffs = parsed.coeffs
	p.ring = parsed.ring

	return nil
}

// EncodeCBOR writes p as the canonical CBOR form of the wrapper.
func (p *RingPoly) EncodeCBOR(w io.Writer) error {
	return codec.EncodeCBOR(w, polyField, p.String())
}

// DecodeCBOR reads one CBOR wrapper from r into p.
func (p *RingPoly) DecodeCBOR(r io.Reader) error {
	text, err := codec.DecodeCBOR(r, polyField)
	if err != nil {
		return err
	}
	parsed, err := RingPolyFromString(text)
	if err != nil {
		return err
	}
	p.coeffs = parsed.coeffs
	p.ring = parsed.ring

	return nil
}

// Package codec: canonical CBOR transport for the single-field wrapper.
// The wire shape mirrors the JSON wrapper exactly: one map with one text
// key and one text value, so the two transports stay interchangeable.

package codec

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	if cborEnc, err = cbor.CanonicalEncOptions().EncMode(); err != nil {
		panic(err)
	}
	// Duplicate map keys violate the wrapper contract at the wire level
	// already; make the decoder reject them instead of last-wins merging.
	if cborDec, err = (cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}).DecMode(); err != nil {
		panic(err)
	}
}

// EncodeCBOR writes the canonical CBOR form of the single-field wrapper
// {field: text} to w.
// Complexity: O(len(field) + len(text)).
func EncodeCBOR(w io.Writer, field, text string) error {
	return cborEnc.NewEncoder(w).Encode(map[string]string{field: text})
}

// DecodeCBOR reads one wrapper map from r and returns its text payload,
// enforcing the same strictness as UnwrapText: exactly one field, named
// field, holding a string.
// Complexity: O(size of the encoded map).
func DecodeCBOR(r io.Reader, field string) (string, error) {
	var m map[string]interface{}
	if err := cborDec.NewDecoder(r).Decode(&m); err != nil {
		return "", ErrMalformedInput
	}

	raw, ok := m[field]
	if !ok {
		if len(m) == 0 {
			return "", ErrMissingField
		}

		return "", ErrUnexpectedField
	}
	if len(m) > 1 {
		return "", ErrUnexpectedField
	}

	text, ok := raw.(string)
	if !ok {
		return "", ErrNonStringPayload
	}

	return text, nil
}

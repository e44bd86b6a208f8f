// Package codec: the strict single-field JSON wrapper.
// Every arbmath type serializes to {"<field>":"<canonical text>"} with a
// field name fixed per type. Unwrapping is deliberately strict: a missing
// field, an extra field, a duplicated field and a non-string payload are all
// rejected as typed failures, never tolerated or panicked on.

package codec

import (
	"bytes"
	"encoding/json"
	"io"
)

// WrapText builds the canonical single-field JSON wrapper around text.
// Stage 1 (Escape): delegate string escaping to encoding/json.
// Stage 2 (Compose): assemble {"field":"text"} byte-for-byte.
// Complexity: O(len(field) + len(text)).
func WrapText(field, text string) ([]byte, error) {
	key, err := json.Marshal(field)
	if err != nil {
		return nil, err
	}
	val, err := json.Marshal(text)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(key) + len(val) + 3)
	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(val)
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnwrapText extracts the text payload of the single-field wrapper.
// It walks the token stream by hand because encoding/json's struct decoding
// silently ignores unknown and duplicate fields, which the wrapper contract
// forbids.
//
// Stage 1 (Open): expect exactly one JSON object.
// Stage 2 (Keys): the first key must equal field; a second occurrence of
// field is ErrDuplicateField, any other key is ErrUnexpectedField.
// Stage 3 (Close): the object must end right after the payload.
// Complexity: O(len(data)).
func UnwrapText(data []byte, field string) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return "", ErrMalformedInput
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return "", ErrMalformedInput
	}

	var (
		payload string
		seen    bool
	)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return "", ErrMalformedInput
		}
		key, ok := keyTok.(string)
		if !ok {
			return "", ErrMalformedInput
		}
		switch {
		case key != field:
			return "", ErrUnexpectedField
		case seen:
			return "", ErrDuplicateField
		}

		valTok, err := dec.Token()
		if err != nil {
			return "", ErrMalformedInput
		}
		payload, ok = valTok.(string)
		if !ok {
			return "", ErrNonStringPayload
		}
		seen = true
	}
	if !seen {
		return "", ErrMissingField
	}

	// Consume the closing brace and require a clean end of input.
	if _, err = dec.Token(); err != nil {
		return "", ErrMalformedInput
	}
	if _, err = dec.Token(); err != io.EOF {
		return "", ErrMalformedInput
	}

	return payload, nil
}

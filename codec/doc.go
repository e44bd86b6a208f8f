// Package codec holds the cross-cutting text and serialization boundaries
// shared by every arbmath type.
//
// The codec package provides:
//
//   - Base validation for the positional text grammar (bases 2–62) and
//     token pre-validation (no embedded whitespace, no interior NUL byte)
//     applied before any string reaches the arithmetic engine.
//   - The signed 64-bit index boundary: every coefficient, row and column
//     index, whatever fixed-width integer type the caller holds, is funneled
//     through ToIndex and rejected on overflow or negative value.
//   - The strict single-field serialization wrapper
//     {"<field>":"<canonical text>"} used by all types, for JSON and for
//     canonical CBOR over io.Writer/io.Reader.
//
// Parsing the payload inside a wrapper is the owning type's job; codec only
// enforces the envelope (exactly one field, with the expected name, holding
// a string).
package codec

// Package scalar implements the arbitrary-precision scalar kernel: the
// integer type Z and the rational type Q.
//
// The scalar package provides:
//
//   - Deterministic construction from text in any base 2–62 and from every
//     fixed-width integer type through a single generic coercion point.
//   - Canonical text output that is the exact left inverse of parsing, so
//     parse(text(x, b), b) == x for every representable x and base b.
//   - Value semantics over the engine's heap-backed storage: Clone always
//     deep-copies, arithmetic always allocates a fresh result, and no two
//     live values ever alias mutable storage.
//   - Exact narrowing back to int64/uint64 that re-widens the narrowed
//     result and compares it against the original instead of trusting the
//     engine's saturating conversion.
//
// Q values are kept in canonical form at all times: lowest terms with a
// positive denominator, re-established after every construction and every
// arithmetic operation.
//
// See the examples in this package for usage patterns.
package scalar

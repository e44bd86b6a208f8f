// Package poly implements dense univariate polynomials over the scalar
// kernel: PolyZ with integer coefficients and PolyQ with rational ones.
//
// The poly package provides:
//
//   - The canonical count-prefixed text grammar
//     "<count>  <c0> <c1> ... <c(count-1)>" with exactly two spaces between
//     the count and the list and exactly one space between coefficients.
//     A missing double-space is reported as ErrMissingSeparator, separately
//     from other malformed input, because it is the most common mistake.
//   - Canonical trimmed form: the highest stored coefficient is never the
//     additive identity (the zero polynomial stores no coefficients at
//     all). Trimming is re-applied after parsing and after every mutation.
//   - Coefficient access where reading past the stored length returns the
//     additive identity instead of an error, while a negative index is a
//     contract violation (ErrOutOfRange).
//   - Horner evaluation and the usual operator surface (Add, Sub, Mul,
//     Neg, scalar multiplication) with fixed-width absorbing forms.
//
// Coefficients are deep-copied on the way in and on the way out; a
// polynomial never shares mutable storage with its callers.
package poly

// Package modular implements arithmetic in residue classes: the shared
// Modulus context, the modular scalar Zq, and the quotient ring
// Zq[X]/(f(X)) through RingModulus and RingPoly.
//
// The modular package provides:
//
//   - Modulus: an immutable, shareable description of a positive integer
//     modulus. Any number of Zq values may reference one context; contexts
//     compare by modulus value, never by identity.
//   - Zq: a residue whose canonical representative always lies in
//     [0, modulus). Reduction is re-applied after every operation and
//     normalizes negative inputs itself, without assuming the engine's
//     remainder already does.
//   - RingModulus / RingPoly: the context (f, q) of a polynomial quotient
//     ring over a prime q and its reduced residue polynomials.
//
// Operations across two values with unequal modulus values fail with
// ErrModulusMismatch; the package never silently adopts one operand's
// context.
package modular

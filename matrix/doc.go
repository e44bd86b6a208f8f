// Package matrix offers dense matrices over the arbitrary-precision scalar
// kernel: MatZ with integer entries, MatQ with rational entries and MatZq
// with entries reduced under one shared modulus context.
//
// The matrix package provides:
//
//   - Row-major flat storage with O(1) bounds-checked At/Set accessors that
//     return errors instead of panicking on bad indices.
//   - The bracketed text grammar "[[a,b],[c,d]]", optionally suffixed with
//     " mod <m>" for modular matrices; canonical output always renders the
//     reduced representative of every modular entry.
//   - Shape operations: horizontal/vertical concatenation (checked along
//     the non-concatenated axis), transpose, tensor (Kronecker) product,
//     and the derived row-/column-vector predicates.
//   - Exact arithmetic (Add, Sub, Mul, scalar multiplication) with shape
//     and modulus compatibility checks surfaced as typed errors.
//
// Dimensions are fixed at construction for the lifetime of a matrix;
// entries are mutable in place through Set. Matrices are best for dense
// exact-arithmetic workloads where O(rows*cols) memory is acceptable.
package matrix

// Package arbmath is a value-semantics layer over Go's arbitrary-precision
// arithmetic: integers, rationals, residues, polynomials and dense matrices
// with canonical text forms and strict structured serialization.
//
// 🚀 What is arbmath?
//
//	A pure-Go library that brings together:
//		• Scalars: arbitrary-size integers (Z) and canonical rationals (Q)
//		• Modular values: residues under a shared modulus (Zq) and
//		  polynomial quotient rings Zq[X]/(f(X))
//		• Polynomials: dense PolyZ and PolyQ in trimmed canonical form
//		• Matrices: MatZ, MatQ and MatZq over one generic dense core
//		• Codecs: canonical text grammars plus a strict single-field
//		  JSON/CBOR wrapper for every type
//
// ✨ Why choose arbmath?
//
//   - Value semantics – explicit Clone, fresh results, operands untouched
//   - Typed failures – sentinel errors matched with errors.Is, no panics
//     on user input
//   - Canonical everywhere – parse/print round-trips are exact in every
//     base from 2 to 62
//   - One source of truth – each operator has a single implementation;
//     fixed-width integer forms are thin generic forwarders
//
// Everything is organized under five subpackages:
//
//	codec/   - text boundaries (bases, tokens, indices) + the strict wrapper
//	scalar/  - Z and Q with arithmetic, conversions and serialization
//	poly/    - PolyZ and PolyQ with the count-prefixed text grammar
//	modular/ - Modulus, Zq, RingModulus and RingPoly
//	matrix/  - MatZ, MatQ and MatZq over the shared dense core
//
// Quick example:
//
//	m, _ := matrix.MatZqFromString("[[-17,-42,1],[-13,-5,-42]] mod 57")
//	fmt.Println(m) // [[40,15,1],[44,52,15]] mod 57
//
//	go get github.com/katalvlaran/arbmath
package arbmath

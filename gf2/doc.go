// Package gf2 offers boolean matrices and bit-vectors for linear systems over
// the two-element field, where addition is XOR and multiplication is AND.
//
// The gf2 package provides:
//
//   - Matrix: an m×(n+1) system of parity constraints, n coefficient columns
//     followed by one right-hand-side column. Weight, witness checks and the
//     '0'/'1'/'_' token format live here.
//   - Bitset: a fixed-capacity bit-vector for O(width/64) XOR and popcount,
//     used by the sparsifier. Capacity overflow is an error, never truncation.
//
// Matrices are plain values owned by the caller. Generators (package source)
// create them; echelon, sparsify and expand consume them. Destructive
// consumers mutate in place, so call Clone when one system feeds several.
package gf2

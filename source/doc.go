// Package source generates parity-constraint systems.
//
// Every generator returns a fresh gf2.Matrix of shape m×(n+1) and is a pure
// function of its parameters and the RNG stream it is given:
//
//   - Dense(m, n)             - every cell, RHS included, is a fair coin.
//   - Toeplitz(m, n)          - coefficients constant along diagonals.
//   - BoundedWeight(m, n, k)  - exactly k coefficient bits per row.
//   - External(spec, m, n)    - literal '0'/'1' tokens, '_' between rows;
//     RHS bits drawn at random.
//
// Generators are composed through Generate, which resolves functional options
// (WithSeed, WithRand) into an immutable configuration. There is no
// process-wide RNG: reproducibility requires an explicit seed.
//
//	a, err := source.Generate(source.Toeplitz(20, 64), source.WithSeed(42))
package source

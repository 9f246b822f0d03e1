// SPDX-License-Identifier: MIT
// Package: parity/source
//
// errors.go - sentinel errors for the source package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` with the generator name.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package source

import "errors"

// ErrBadSize indicates a negative row count or a variable count below one.
// Usage: if errors.Is(err, ErrBadSize) { /* report invalid size */ }.
var ErrBadSize = errors.New("source: invalid size")

// ErrWeightRange indicates a bounded-weight request with k outside [0, n].
var ErrWeightRange = errors.New("source: row weight out of range")

// ErrNeedRandSource indicates that a generator requires a non-nil *rand.Rand
// in the resolved sourceConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("source: rng is required")

// ErrMalformedSpec indicates that an external matrix specification does not
// describe exactly m rows of exactly n coefficient bits, or contains a
// token other than '0', '1', '_' and whitespace.
var ErrMalformedSpec = errors.New("source: malformed matrix specification")

// ErrNilGenerator indicates that Generate received a nil Generator.
var ErrNilGenerator = errors.New("source: nil generator")

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      return fmt.Errorf("%s: rng is required: %w", MethodDense, ErrNeedRandSource)
//
// 2) Priority (tie-break guidance when multiple validations fail):
//    • ErrBadSize        - size/domain checks first (m, n).
//    • ErrWeightRange    - then mode parameters (k).
//    • ErrMalformedSpec  - then external token validation.
//    • ErrNeedRandSource - then RNG presence.
//    No allocation and no RNG draw happens before all checks pass.

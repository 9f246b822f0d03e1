// SPDX-License-Identifier: MIT
// Package echelon: sentinel errors.

package echelon

import "errors"

// ErrNeedRandSource indicates that no RNG was supplied for the witness guesses.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* pass WithSeed or WithRand */ }.
var ErrNeedRandSource = errors.New("echelon: rng is required")

const (
	opReduce = "Reduce"
	opSolve  = "Solve"
)

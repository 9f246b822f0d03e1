// SPDX-License-Identifier: MIT
// Package: parity/source
//
// api.go - thin public entry-points for the source package.
//
// Design contract (strict):
//   - One orchestrator: Generate(gen, opts...). Resolves cfg, runs gen, returns the matrix.
//   - All generators are declared here, implemented in impl_*.go.
//   - Functional options resolve into an immutable sourceConfig (no global state).
//   - Determinism: same parameters and seed ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors; return nil matrix on any failure.

package source

import (
	"fmt"

	"github.com/katalvlaran/parity/gf2"
)

// Generator produces a fresh m×(n+1) matrix from the resolved sourceConfig.
// Generators MUST:
//   - Validate parameters before allocating or drawing from the RNG.
//   - Consume the RNG in a fixed, documented order.
//   - Return a nil matrix together with any error.
type Generator func(cfg sourceConfig) (*gf2.Matrix, error)

// Generate resolves options and runs gen. Any generator error is wrapped
// with "Generate: %w"; callers branch with errors.Is against the sentinels.
//
// Complexity: O(len(opts)) plus the generator's own cost.
func Generate(gen Generator, opts ...Option) (*gf2.Matrix, error) {
	if gen == nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, ErrNilGenerator)
	}
	cfg := newSourceConfig(opts...)
	a, err := gen(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	return a, nil
}

// =============================================================================
// Generators (declarations) - implemented in impl_*.go
// =============================================================================
//
// Dense(m, n)             every cell a fair coin.            O(m·n)
// Toeplitz(m, n)          constant diagonals.                O(m·n)
// BoundedWeight(m, n, k)  exactly k coefficient bits/row.    O(m·n)
// External(spec, m, n)    literal '0'/'1'/'_' tokens.        O(len(spec) + m·n)

// validateShape is the shared first validation step of every generator.
func validateShape(method string, m, n int) error {
	if m < MinRows {
		return fmt.Errorf("%s: m=%d < %d: %w", method, m, MinRows, ErrBadSize)
	}
	if n < MinVars {
		return fmt.Errorf("%s: n=%d < %d: %w", method, n, MinVars, ErrBadSize)
	}

	return nil
}

// requireRNG is the shared RNG-presence check.
func requireRNG(method string, cfg sourceConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

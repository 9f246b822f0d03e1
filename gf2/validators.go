// SPDX-License-Identifier: MIT
// Package: gf2
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape checks here.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package gf2

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if a == nil.
// Complexity: O(1).
func ValidateNotNil(a *Matrix) error {
	if a == nil {
		return gf2Errorf("ValidateNotNil", "%w", ErrNilMatrix)
	}

	return nil
}

// ValidateWitness checks a != nil and len(x) == a.Vars().
// Complexity: O(1).
func ValidateWitness(a *Matrix, x []bool) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if len(x) != a.n {
		return gf2Errorf("ValidateWitness", "len=%d want=%d: %w", len(x), a.n, ErrDimensionMismatch)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: parity/source
//
// impl_bounded.go - BoundedWeight(m, n, k): every row has exactly k true
// coefficient bits at uniformly random positions.
//
// RNG order: one shuffle of the column-index permutation per row (the
// permutation is carried over between rows), then one RHS draw per row.

package source

import (
	"fmt"

	"github.com/katalvlaran/parity/gf2"
)

// BoundedWeight returns a Generator for rows of fixed coefficient weight k.
// Contract: 0 ≤ k ≤ n, else ErrWeightRange.
func BoundedWeight(m, n, k int) Generator {
	return func(cfg sourceConfig) (*gf2.Matrix, error) {
		if err := validateShape(MethodBoundedWeight, m, n); err != nil {
			return nil, err
		}
		if k < 0 || k > n {
			return nil, fmt.Errorf("%s: k=%d not in [0,%d]: %w", MethodBoundedWeight, k, n, ErrWeightRange)
		}
		if err := requireRNG(MethodBoundedWeight, cfg); err != nil {
			return nil, err
		}

		a, err := gf2.NewMatrix(m, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBoundedWeight, err)
		}

		index := identity(n)
		for i := 0; i < m; i++ {
			shuffleInts(index, cfg.rng)
			row := a.RowView(i)
			for _, col := range index[:k] {
				row[col] = true
			}
		}

		// Parity bits at random, after all coefficient rows.
		for i := 0; i < m; i++ {
			a.RowView(i)[n] = cfg.coin()
		}

		return a, nil
	}
}

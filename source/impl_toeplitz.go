// SPDX-License-Identifier: MIT
// Package: parity/source
//
// impl_toeplitz.go - Toeplitz(m, n): coefficient block constant along every
// diagonal, RHS column independent.
//
// Canonical construction:
//   1. Column 0, row by row: draw the anchor A[i][0] and copy it down-right
//      to A[i+j][j] for 1 ≤ j < m−i, j < n.
//   2. RHS column, row by row: one independent draw per row.
//   3. Row 0, columns 1..n−1: draw the anchor A[0][j] and copy it to
//      A[i][j+i] for 1 ≤ i < m, j+i < n.
// Propagation stops exactly at the row and coefficient-column bounds; the
// RHS column is never written by propagation.
//
// Complexity: O(m·n) time, no extra space.

package source

import (
	"fmt"

	"github.com/katalvlaran/parity/gf2"
)

// Toeplitz returns a Generator for a diagonal-constant system.
func Toeplitz(m, n int) Generator {
	return func(cfg sourceConfig) (*gf2.Matrix, error) {
		if err := validateShape(MethodToeplitz, m, n); err != nil {
			return nil, err
		}
		if err := requireRNG(MethodToeplitz, cfg); err != nil {
			return nil, err
		}

		a, err := gf2.NewMatrix(m, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodToeplitz, err)
		}
		if m == 0 {
			return a, nil
		}

		// 1) first column anchors, propagated down-right.
		for i := 0; i < m; i++ {
			v := cfg.coin()
			a.RowView(i)[0] = v
			for j := 1; j < m-i && j < n; j++ {
				a.RowView(i + j)[j] = v
			}
		}

		// 2) RHS column.
		for i := 0; i < m; i++ {
			a.RowView(i)[n] = cfg.coin()
		}

		// 3) first row anchors, propagated right-down.
		row0 := a.RowView(0)
		for j := 1; j < n; j++ {
			v := cfg.coin()
			row0[j] = v
			for i := 1; i < m && j+i < n; i++ {
				a.RowView(i)[j+i] = v
			}
		}

		return a, nil
	}
}

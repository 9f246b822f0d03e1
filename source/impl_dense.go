// SPDX-License-Identifier: MIT
// Package: parity/source
//
// impl_dense.go - Dense(m, n): every cell of the m×(n+1) system, RHS
// included, is an independent fair coin.
//
// RNG order: row-major, coefficients then RHS within each row.

package source

import (
	"fmt"

	"github.com/katalvlaran/parity/gf2"
)

// Dense returns a Generator for a fully random system.
func Dense(m, n int) Generator {
	return func(cfg sourceConfig) (*gf2.Matrix, error) {
		if err := validateShape(MethodDense, m, n); err != nil {
			return nil, err
		}
		if err := requireRNG(MethodDense, cfg); err != nil {
			return nil, err
		}

		a, err := gf2.NewMatrix(m, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodDense, err)
		}
		for i := 0; i < m; i++ {
			row := a.RowView(i)
			for j := range row {
				row[j] = cfg.coin()
			}
		}

		return a, nil
	}
}

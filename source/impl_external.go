// SPDX-License-Identifier: MIT
// Package: parity/source
//
// impl_external.go - External(spec, m, n): parse a literal coefficient
// specification.
//
// Format:
//   • '0' / '1'  one coefficient bit, row-major;
//   • '_'        ends the current row and starts the next;
//   • ASCII whitespace is ignored;
//   • RHS bits are NOT part of the format; one independent draw per row.
//
// Contract:
//   • The spec must describe exactly m rows of exactly n bits. Short rows,
//     long rows, missing or extra rows and any other character fail with
//     ErrMalformedSpec naming expected vs actual counts. Nothing is padded.
//   • The spec is fully validated before the matrix is allocated and before
//     the RNG is touched.

package source

import (
	"fmt"

	"github.com/katalvlaran/parity/gf2"
)

// External returns a Generator that parses spec into an m×(n+1) matrix.
func External(spec string, m, n int) Generator {
	return func(cfg sourceConfig) (*gf2.Matrix, error) {
		if err := validateShape(MethodExternal, m, n); err != nil {
			return nil, err
		}
		rows, err := parseSpec(spec, m, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodExternal, err)
		}
		if err = requireRNG(MethodExternal, cfg); err != nil {
			return nil, err
		}

		a, err := gf2.NewMatrix(m, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodExternal, err)
		}
		// RHS drawn at allocation time, before the coefficient fill.
		for i := 0; i < m; i++ {
			a.RowView(i)[n] = cfg.coin()
		}
		for i, bits := range rows {
			copy(a.RowView(i)[:n], bits)
		}

		return a, nil
	}
}

// ParseSpec validates spec against (m, n) and returns the coefficient rows.
// It is the pure half of External and never touches an RNG.
func ParseSpec(spec string, m, n int) ([][]bool, error) {
	if err := validateShape(MethodExternal, m, n); err != nil {
		return nil, err
	}
	return parseSpec(spec, m, n)
}

func parseSpec(spec string, m, n int) ([][]bool, error) {
	if m == 0 {
		if hasTokens(spec) {
			return nil, fmt.Errorf("expected 0 rows, spec is not empty: %w", ErrMalformedSpec)
		}
		return [][]bool{}, nil
	}

	rows := make([][]bool, 0, m)
	cur := make([]bool, 0, n)
	closeRow := func() error {
		if len(cur) != n {
			return fmt.Errorf("row %d: expected %d bits, got %d: %w", len(rows), n, len(cur), ErrMalformedSpec)
		}
		rows = append(rows, cur)
		cur = make([]bool, 0, n)
		return nil
	}

	for pos, ch := range spec {
		switch ch {
		case TokenZero, TokenOne:
			if len(rows) >= m {
				return nil, fmt.Errorf("expected %d rows, got more at offset %d: %w", m, pos, ErrMalformedSpec)
			}
			cur = append(cur, ch == TokenOne)
		case TokenRowBreak:
			if err := closeRow(); err != nil {
				return nil, err
			}
		case ' ', '\t', '\n', '\r':
		default:
			return nil, fmt.Errorf("unexpected token %q at offset %d: %w", ch, pos, ErrMalformedSpec)
		}
	}
	// The final row has no trailing delimiter.
	if len(rows) < m {
		if err := closeRow(); err != nil {
			return nil, err
		}
	} else if len(cur) > 0 {
		return nil, fmt.Errorf("expected %d rows, got more: %w", m, ErrMalformedSpec)
	}
	if len(rows) != m {
		return nil, fmt.Errorf("expected %d rows, got %d: %w", m, len(rows), ErrMalformedSpec)
	}

	return rows, nil
}

func hasTokens(spec string) bool {
	for _, ch := range spec {
		switch ch {
		case ' ', '\t', '\n', '\r':
		default:
			return true
		}
	}
	return false
}

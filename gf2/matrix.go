// SPDX-License-Identifier: MIT

// Package gf2 - row storage for linear systems over the two-element field.
//
// Purpose:
//   - Hold an m×(n+1) boolean system: n coefficient columns followed by one
//     right-hand-side (RHS) column per row.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Kernels in echelon/sparsify/expand work on RowView slices directly; the
//     view aliases the matrix, so writes are visible immediately.
//   - Clone before handing one source matrix to two destructive consumers.
//
// Complexity quicksheet:
//   - NewMatrix: O(m*n); At/Set: O(1); XorRow: O(n); Clone/Equal/Weight: O(m*n).

package gf2

import (
	"fmt"
	"strings"
)

// Formatting literals.
const (
	_fmtTrue     = '1'
	_fmtFalse    = '0'
	_fmtRHSSep   = " | "
	_fmtRowDelim = '_'
)

// Matrix is an ordered sequence of rows; each row has exactly Vars()+1
// booleans, the last of which is the RHS bit.
// A Matrix is not safe for concurrent mutation.
type Matrix struct {
	n    int      // number of variables (coefficient columns), >= 1
	rows [][]bool // len(rows[i]) == n+1 for every i
}

// NewMatrix creates an m×(n+1) all-false system.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate m>=0 && n>=1; else ErrBadShape.
//   - Stage 2: allocate one contiguous buffer and slice it into rows.
//
// Inputs:
//   - m: number of constraints (0 allowed: an empty system).
//   - n: number of variables.
//
// Returns:
//   - *Matrix: newly allocated system.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(m*n), Space O(m*n).
func NewMatrix(m, n int) (*Matrix, error) {
	if m < 0 || n < 1 {
		return nil, gf2Errorf(opNewMatrix, "m=%d n=%d: %w", m, n, ErrBadShape)
	}
	width := n + 1
	buf := make([]bool, m*width)
	rows := make([][]bool, m)
	for i := 0; i < m; i++ {
		// Full slice expression keeps appends on one row from spilling into the next.
		rows[i] = buf[i*width : (i+1)*width : (i+1)*width]
	}

	return &Matrix{n: n, rows: rows}, nil
}

// FromRows builds a Matrix from a deep copy of rows. Every row must have the
// same length, at least 2 (one coefficient plus the RHS).
// Errors: ErrBadShape (empty input or rows shorter than 2), ErrRaggedRows.
// Complexity: O(m*n).
func FromRows(rows [][]bool) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, gf2Errorf(opFromRows, "no rows: %w", ErrBadShape)
	}
	width := len(rows[0])
	if width < 2 {
		return nil, gf2Errorf(opFromRows, "row width %d < 2: %w", width, ErrBadShape)
	}
	for i, r := range rows {
		if len(r) != width {
			return nil, gf2Errorf(opFromRows, "row %d has %d columns, want %d: %w",
				i, len(r), width, ErrRaggedRows)
		}
	}

	out, err := NewMatrix(len(rows), width-1)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		copy(out.rows[i], r)
	}

	return out, nil
}

// Rows returns the number of constraints m.
func (a *Matrix) Rows() int { return len(a.rows) }

// Vars returns the number of variables n.
func (a *Matrix) Vars() int { return a.n }

// Cols returns the row width n+1 (coefficients plus RHS).
func (a *Matrix) Cols() int { return a.n + 1 }

// checkIndex validates (i, j) against the current shape.
func (a *Matrix) checkIndex(op string, i, j int) error {
	if i < 0 || i >= len(a.rows) || j < 0 || j > a.n {
		return gf2Errorf(op, "(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return nil
}

// At returns the bit at (i, j); j == Vars() addresses the RHS column.
// Errors: ErrOutOfRange.
func (a *Matrix) At(i, j int) (bool, error) {
	if err := a.checkIndex(opAt, i, j); err != nil {
		return false, err
	}

	return a.rows[i][j], nil
}

// Set assigns v at (i, j); j == Vars() addresses the RHS column.
// Errors: ErrOutOfRange.
func (a *Matrix) Set(i, j int, v bool) error {
	if err := a.checkIndex(opSet, i, j); err != nil {
		return err
	}
	a.rows[i][j] = v

	return nil
}

// RHS returns the right-hand-side bit of row i. It panics on a bad index,
// like slice indexing; use At for a checked read.
func (a *Matrix) RHS(i int) bool { return a.rows[i][a.n] }

// Row returns a copy of row i (n+1 booleans).
// Errors: ErrOutOfRange.
func (a *Matrix) Row(i int) ([]bool, error) {
	if i < 0 || i >= len(a.rows) {
		return nil, gf2Errorf(opRow, "row %d: %w", i, ErrOutOfRange)
	}
	out := make([]bool, a.n+1)
	copy(out, a.rows[i])

	return out, nil
}

// RowView returns the backing slice of row i. Writes through the view mutate
// the matrix. The caller must not change the slice length.
// Panics on a bad index (programmer error inside kernels).
func (a *Matrix) RowView(i int) []bool { return a.rows[i] }

// XorRow adds row src into row dst over all n+1 columns: row[dst] ^= row[src].
// Errors: ErrOutOfRange.
// Complexity: O(n).
func (a *Matrix) XorRow(dst, src int) error {
	if dst < 0 || dst >= len(a.rows) || src < 0 || src >= len(a.rows) {
		return gf2Errorf(opXorRow, "dst=%d src=%d: %w", dst, src, ErrOutOfRange)
	}
	XorInto(a.rows[dst], a.rows[src])

	return nil
}

// XorInto sets dst[q] ^= src[q] for every q. Both slices must have equal
// length; the function panics otherwise (programmer error in a kernel).
func XorInto(dst, src []bool) {
	if len(dst) != len(src) {
		panic("gf2: XorInto length mismatch")
	}
	for q := range dst {
		dst[q] = dst[q] != src[q]
	}
}

// AppendRow appends a copy of row; len(row) must equal Cols().
// Errors: ErrDimensionMismatch.
func (a *Matrix) AppendRow(row []bool) error {
	if len(row) != a.n+1 {
		return gf2Errorf(opAppendRow, "row has %d columns, want %d: %w",
			len(row), a.n+1, ErrDimensionMismatch)
	}
	r := make([]bool, a.n+1)
	copy(r, row)
	a.rows = append(a.rows, r)

	return nil
}

// Clone returns a deep copy; the result shares no storage with a.
func (a *Matrix) Clone() *Matrix {
	out, _ := NewMatrix(len(a.rows), a.n) // shape already valid
	for i, r := range a.rows {
		copy(out.rows[i], r)
	}

	return out
}

// Equal reports whether a and b have the same shape and bits.
func (a *Matrix) Equal(b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.n != b.n || len(a.rows) != len(b.rows) {
		return false
	}
	for i := range a.rows {
		for j := range a.rows[i] {
			if a.rows[i][j] != b.rows[i][j] {
				return false
			}
		}
	}

	return true
}

// RowWeight returns the number of true bits in row i, RHS included.
func (a *Matrix) RowWeight(i int) int { return countTrue(a.rows[i]) }

// CoefficientWeight returns the number of true coefficient bits in row i.
func (a *Matrix) CoefficientWeight(i int) int { return countTrue(a.rows[i][:a.n]) }

// Weight returns the total number of true bits over all rows, RHS included.
// This is the quantity the sparsifier minimizes.
func (a *Matrix) Weight() int {
	total := 0
	for _, r := range a.rows {
		total += countTrue(r)
	}

	return total
}

func countTrue(bits []bool) int {
	c := 0
	for _, b := range bits {
		if b {
			c++
		}
	}

	return c
}

// IsZeroRow reports whether row i has no true coefficient.
func (a *Matrix) IsZeroRow(i int) bool { return a.CoefficientWeight(i) == 0 }

// IsContradiction reports whether row i reads 0 = 1.
func (a *Matrix) IsContradiction(i int) bool { return a.IsZeroRow(i) && a.RHS(i) }

// Satisfies reports whether x satisfies every row modulo 2.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != Vars().
// Complexity: O(m*n).
func (a *Matrix) Satisfies(x []bool) (bool, error) {
	if err := ValidateWitness(a, x); err != nil {
		return false, gf2Errorf(opSatisfies, "%w", err)
	}
	for _, r := range a.rows {
		parity := false
		for j := 0; j < a.n; j++ {
			if r[j] && x[j] {
				parity = !parity
			}
		}
		if parity != r[a.n] {
			return false, nil
		}
	}

	return true, nil
}

// Spec renders the coefficient bits in the external token format: '0'/'1'
// row-major with '_' between rows. RHS bits are not part of the format.
func (a *Matrix) Spec() string {
	var sb strings.Builder
	sb.Grow(len(a.rows) * (a.n + 1))
	for i, r := range a.rows {
		if i > 0 {
			sb.WriteByte(_fmtRowDelim)
		}
		writeBits(&sb, r[:a.n])
	}

	return sb.String()
}

// String renders one row per line as "coefficients | rhs".
func (a *Matrix) String() string {
	var sb strings.Builder
	for _, r := range a.rows {
		writeBits(&sb, r[:a.n])
		sb.WriteString(_fmtRHSSep)
		writeBits(&sb, r[a.n:])
		sb.WriteByte('\n')
	}

	return sb.String()
}

func writeBits(sb *strings.Builder, bits []bool) {
	for _, b := range bits {
		if b {
			sb.WriteByte(_fmtTrue)
		} else {
			sb.WriteByte(_fmtFalse)
		}
	}
}

// FormatBits renders a bool slice as a 0/1 string (witness printing).
func FormatBits(bits []bool) string {
	var sb strings.Builder
	sb.Grow(len(bits))
	writeBits(&sb, bits)

	return sb.String()
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

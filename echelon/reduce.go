// SPDX-License-Identifier: MIT

package echelon

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/parity/gf2"
)

// Reduce brings a into reduced row-echelon form in place and, when the system
// is feasible, returns a witness satisfying it.
//
// Implementation:
//   - Stage 1: validate input and options (no mutation on error).
//   - Stage 2: forward elimination over all rows; contradictions are
//     recorded and elimination continues, so a is always fully reduced.
//   - Stage 3: back-elimination from the last pivot to the first.
//   - Stage 4: witness construction (feasible systems only).
//
// Errors:
//   - gf2.ErrNilMatrix, ErrNeedRandSource.
//
// Complexity:
//   - Time O(m²·n), Space O(m + n).
func Reduce(a *gf2.Matrix, opts ...Option) (Result, error) {
	if err := gf2.ValidateNotNil(a); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opReduce, err)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return Result{}, fmt.Errorf("%s: %w", opReduce, ErrNeedRandSource)
	}

	res, claimed := eliminate(a)
	if !res.Feasible {
		return res, nil
	}
	res.Witness = witness(a, res.Pivots, claimed, cfg.rng)

	return res, nil
}

// Solve is Reduce on a private copy; a is left untouched.
func Solve(a *gf2.Matrix, opts ...Option) (Result, error) {
	if err := gf2.ValidateNotNil(a); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	res, err := Reduce(a.Clone(), opts...)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	return res, nil
}

// eliminate runs forward and back elimination and reports which columns
// were claimed as pivots.
func eliminate(a *gf2.Matrix) (Result, []bool) {
	m, n := a.Rows(), a.Vars()
	res := Result{Feasible: true, Vars: n}
	claimed := make([]bool, n)

	for i := 0; i < m; i++ {
		row := a.RowView(i)
		col := firstFree(row[:n], claimed)
		if col < 0 {
			if row[n] { // 0 = 1
				res.Feasible = false
				res.Contradictions = append(res.Contradictions, i)
			}
			continue // 0 = 0 contributes nothing
		}
		claimed[col] = true
		res.Pivots = append(res.Pivots, Pivot{Row: i, Col: col})
		for h := i + 1; h < m; h++ {
			if below := a.RowView(h); below[col] {
				gf2.XorInto(below, row)
			}
		}
	}

	for k := len(res.Pivots) - 1; k >= 0; k-- {
		p := res.Pivots[k]
		src := a.RowView(p.Row)
		for h := p.Row - 1; h >= 0; h-- {
			if above := a.RowView(h); above[p.Col] {
				gf2.XorInto(above, src)
			}
		}
	}

	return res, claimed
}

// firstFree returns the first true, unclaimed column of coeffs, or -1.
func firstFree(coeffs []bool, claimed []bool) int {
	for j, v := range coeffs {
		if v && !claimed[j] {
			return j
		}
	}
	return -1
}

// witness builds an assignment for a reduced, feasible system.
// One guess per variable is drawn in column order.
func witness(a *gf2.Matrix, pivots []Pivot, isPivot []bool, rng *rand.Rand) []bool {
	m, n := a.Rows(), a.Vars()
	x := make([]bool, n)
	for j := range x {
		x[j] = rng.Int63()&1 == 1
	}

	acc := make([]bool, m)
	for i := range acc {
		acc[i] = a.RHS(i)
	}
	// Fold every dependent variable fixed to true into the accumulator.
	for j := 0; j < n; j++ {
		if isPivot[j] || !x[j] {
			continue
		}
		foldColumn(a, acc, j)
	}
	// Pivot variables absorb whatever each row still needs.
	for k := len(pivots) - 1; k >= 0; k-- {
		p := pivots[k]
		x[p.Col] = acc[p.Row]
		if x[p.Col] {
			foldColumn(a, acc, p.Col)
		}
	}

	return x
}

// foldColumn sets acc ^= column j of a.
func foldColumn(a *gf2.Matrix, acc []bool, j int) {
	for i := range acc {
		if a.RowView(i)[j] {
			acc[i] = !acc[i]
		}
	}
}

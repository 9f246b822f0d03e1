// SPDX-License-Identifier: MIT

package echelon

// Pivot records that row Row was eliminated on column Col.
type Pivot struct {
	Row int
	Col int
}

// Result holds the outcome of a reduction.
type Result struct {
	// Feasible is false when some row reads 0 = 1 after elimination.
	Feasible bool

	// Pivots lists (row, column) pairs in elimination order.
	Pivots []Pivot

	// Contradictions lists the rows that reduced to 0 = 1.
	Contradictions []int

	// Witness is an assignment of all Vars variables satisfying every row
	// modulo 2. It is nil when Feasible is false and must not be read then.
	Witness []bool

	// Vars is the variable count n of the reduced system.
	Vars int
}

// Rank returns the number of pivots.
func (r Result) Rank() int { return len(r.Pivots) }

// Independent returns the pivot columns in elimination order.
func (r Result) Independent() []int {
	cols := make([]int, len(r.Pivots))
	for i, p := range r.Pivots {
		cols[i] = p.Col
	}
	return cols
}

// Dependent returns the non-pivot columns in ascending order.
func (r Result) Dependent() []int {
	isPivot := make([]bool, r.Vars)
	for _, p := range r.Pivots {
		isPivot[p.Col] = true
	}
	cols := make([]int, 0, r.Vars-len(r.Pivots))
	for j, ok := range isPivot {
		if !ok {
			cols = append(cols, j)
		}
	}
	return cols
}

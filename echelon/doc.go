// Package echelon decides solvability of a GF(2) system and produces one
// satisfying assignment.
//
// Reduce runs three stages over a gf2.Matrix, top to bottom:
//
//  1. Forward elimination. Each row picks as pivot its first true coefficient
//     not already claimed; the row is added into every lower row that has a
//     true in that column. An all-zero coefficient row with RHS 1 (0 = 1)
//     makes the system infeasible; with RHS 0 it is redundant.
//  2. Back-elimination. From the last pivot to the first, the pivot row is
//     added into every upper row with a true in the pivot column, giving
//     reduced row-echelon form (up to row order: rows are never swapped).
//  3. Witness construction. Every variable gets a random guess; dependent
//     (non-pivot) guesses are folded into the RHS, then pivot variables are
//     set from the last pivot to the first so that each row holds.
//
// Infeasibility is a result flag, not an error. Reduce mutates its input;
// Solve works on a clone.
//
// Complexity: O(m²·n) time, O(m + n) extra space.
package echelon

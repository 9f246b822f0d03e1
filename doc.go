// Package parity is a toolkit for systems of parity (XOR) constraints over
// GF(2): generating them, deciding them, rewriting them more sparsely and
// handing them to a SAT solver.
//
// 🚀 What is in the box?
//
//	• gf2/      - the m×(n+1) boolean system (coefficients + RHS) and a
//	              fixed-capacity bitset for fast XOR/popcount
//	• source/   - generators: dense, Toeplitz, bounded-weight, external 0/1/_ spec
//	• echelon/  - Gauss–Jordan elimination, feasibility, random witness
//	• sparsify/ - greedy 4/3/2-row XOR rewriting that never adds bits
//	• expand/   - redundant pairwise row combinations
//	• encode/   - CNF/XOR-circuit encodings for go-air/gini + DIMACS export
//	• config/   - YAML/JSON run configuration
//	• cmd/paritygen - the command-line front end
//
// ✨ Guarantees
//
//   - Deterministic: every random draw comes from an explicit *rand.Rand.
//   - Equivalence: sparsify and expand never change the solution set.
//   - Fail fast: invalid shapes, specs and configs are rejected before any
//     matrix is touched.
//
// Quick example (x0+x2 = r0, x1 = r1):
//
//	a, _ := source.Generate(source.External("101_010", 2, 3), source.WithSeed(7))
//	res, _ := echelon.Solve(a, echelon.WithSeed(7))
//	fmt.Println(res.Feasible, gf2.FormatBits(res.Witness))
//
//	go install github.com/katalvlaran/parity/cmd/paritygen@latest
package parity

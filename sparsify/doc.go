// Package sparsify rewrites a GF(2) system into an equivalent one with fewer
// true bits.
//
// A row may be replaced by its XOR with one, two or three other distinct rows:
// the solution set does not change, only the encoding weight. The search is a
// first-improvement greedy over fixed-order index tuples, run in phases from
// the largest combination down:
//
//   - 4-row combinations, only when m < QuadLimit   (default 100,   ~O(m⁴))
//   - 3-row combinations, only when m < TripleLimit (default 500,   ~O(m³))
//   - 2-row combinations, only when m < PairLimit   (default 10000, ~O(m²))
//
// The size limits are the only guard against runaway cost; raising them
// accepts the corresponding polynomial blow-up.
//
// Weight counts every bit of a row, RHS included. Rows are copied into
// fixed-capacity gf2.Bitset values for the search; the matrix is written back
// once, after every phase has completed.
package sparsify

// Package expand enlarges a GF(2) system with redundant pairwise combinations.
//
// Pairwise(a, p) returns a new matrix holding every row of a followed by
// row[i] ⊕ row[k] for each 0 ≤ i < k < p, in lexical (i, k) order. Every
// appended row is implied by the originals, so the solution set is unchanged;
// the redundancy gives downstream propagation more to work with.
//
// Growth is quadratic in p: PairCount(p) = p(p-1)/2 extra rows.
package expand

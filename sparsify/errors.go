// SPDX-License-Identifier: MIT
// Package sparsify: error tags. Capacity and nil-matrix failures surface the
// gf2 sentinels (gf2.ErrCapacity, gf2.ErrNilMatrix) wrapped with context.

package sparsify

const opSparsify = "Sparsify"

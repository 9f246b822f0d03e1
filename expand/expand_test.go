// SPDX-License-Identifier: MIT
package expand_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parity/echelon"
	"github.com/katalvlaran/parity/expand"
	"github.com/katalvlaran/parity/gf2"
	"github.com/katalvlaran/parity/source"
)

func b(vs ...int) []bool {
	out := make([]bool, len(vs))
	for i, v := range vs {
		out[i] = v == 1
	}
	return out
}

func TestPairCount(t *testing.T) {
	for p, want := range map[int]int{-3: 0, 0: 0, 1: 0, 2: 1, 3: 3, 4: 6, 10: 45} {
		require.Equal(t, want, expand.PairCount(p), "prefix %d", p)
	}
}

// TestPairwise_Order checks the appended rows and their (i, k) order.
func TestPairwise_Order(t *testing.T) {
	a, err := gf2.FromRows([][]bool{b(1, 0, 0, 1), b(0, 1, 0, 0), b(0, 0, 1, 1)})
	require.NoError(t, err)
	orig := a.Clone()

	out, err := expand.Pairwise(a, 3)
	require.NoError(t, err)
	require.True(t, orig.Equal(a), "input mutated")
	require.Equal(t, 6, out.Rows())

	want := [][]bool{
		b(1, 0, 0, 1), b(0, 1, 0, 0), b(0, 0, 1, 1),
		b(1, 1, 0, 1), // 0^1
		b(1, 0, 1, 0), // 0^2
		b(0, 1, 1, 1), // 1^2
	}
	got := make([][]bool, out.Rows())
	for i := range got {
		got[i], err = out.Row(i)
		require.NoError(t, err)
	}
	require.Empty(t, cmp.Diff(want, got))
}

func TestPairwise_Prefix(t *testing.T) {
	a, err := source.Generate(source.Dense(5, 4), source.WithSeed(2))
	require.NoError(t, err)

	tests := []struct {
		prefix int
		rows   int
		err    error
	}{
		{prefix: 0, rows: 5},
		{prefix: 1, rows: 5},
		{prefix: 2, rows: 6},
		{prefix: 5, rows: 15},
		{prefix: 6, err: expand.ErrPrefixRange},
		{prefix: -1, err: expand.ErrPrefixRange},
	}
	for _, tc := range tests {
		out, err := expand.Pairwise(a, tc.prefix)
		if tc.err != nil {
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, out)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.rows, out.Rows())
		require.Equal(t, a.Rows()+expand.PairCount(tc.prefix), out.Rows())
	}

	_, err = expand.Pairwise(nil, 0)
	require.ErrorIs(t, err, gf2.ErrNilMatrix)
}

// TestPairwise_PreservesSolutions: same feasibility and rank, and the original
// witness satisfies the expanded system.
func TestPairwise_PreservesSolutions(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 15; seed++ {
		a, err := source.Generate(source.BoundedWeight(8, 10, 3), source.WithSeed(seed))
		require.NoError(t, err)

		before, err := echelon.Solve(a, echelon.WithSeed(seed))
		require.NoError(t, err)

		out, err := expand.Pairwise(a, a.Rows())
		require.NoError(t, err)

		after, err := echelon.Solve(out, echelon.WithSeed(seed))
		require.NoError(t, err)
		require.Equal(t, before.Feasible, after.Feasible, "seed %d", seed)
		require.Equal(t, before.Rank(), after.Rank(), "seed %d", seed)

		if before.Feasible {
			ok, err := out.Satisfies(before.Witness)
			require.NoError(t, err)
			require.True(t, ok, "seed %d", seed)
		}
	}
}

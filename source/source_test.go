// SPDX-License-Identifier: MIT
// Package source_test contains unit tests for the matrix generators.
package source_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/parity/gf2"
	"github.com/katalvlaran/parity/source"
	"github.com/stretchr/testify/require"
)

const seedDet int64 = 20240917

// bit reads (i,j) and fails the test on error.
func bit(t *testing.T, a *gf2.Matrix, i, j int) bool {
	t.Helper()
	v, err := a.At(i, j)
	require.NoError(t, err)
	return v
}

// TestGenerators_Validation covers size, weight, spec and RNG errors in priority order.
func TestGenerators_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		gen  source.Generator
		opts []source.Option
		want error
	}{
		{"dense negative m", source.Dense(-1, 3), []source.Option{source.WithSeed(1)}, source.ErrBadSize},
		{"dense zero n", source.Dense(2, 0), []source.Option{source.WithSeed(1)}, source.ErrBadSize},
		{"toeplitz negative n", source.Toeplitz(2, -4), []source.Option{source.WithSeed(1)}, source.ErrBadSize},
		{"bounded k>n", source.BoundedWeight(3, 4, 5), []source.Option{source.WithSeed(1)}, source.ErrWeightRange},
		{"bounded k<0", source.BoundedWeight(3, 4, -1), []source.Option{source.WithSeed(1)}, source.ErrWeightRange},
		{"bounded size before weight", source.BoundedWeight(-3, 4, 9), nil, source.ErrBadSize},
		{"external short", source.External("10", 1, 3), []source.Option{source.WithSeed(1)}, source.ErrMalformedSpec},
		{"external spec before rng", source.External("1x0", 1, 3), nil, source.ErrMalformedSpec},
		{"dense no rng", source.Dense(2, 2), nil, source.ErrNeedRandSource},
		{"toeplitz no rng", source.Toeplitz(2, 2), nil, source.ErrNeedRandSource},
		{"nil generator", nil, nil, source.ErrNilGenerator},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a, err := source.Generate(tc.gen, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, a)
		})
	}
}

// TestDense_ShapeAndDeterminism checks shape and same-seed reproducibility.
func TestDense_ShapeAndDeterminism(t *testing.T) {
	a, err := source.Generate(source.Dense(7, 11), source.WithSeed(seedDet))
	require.NoError(t, err)
	require.Equal(t, 7, a.Rows())
	require.Equal(t, 11, a.Vars())

	b, err := source.Generate(source.Dense(7, 11), source.WithSeed(seedDet))
	require.NoError(t, err)
	require.True(t, a.Equal(b), "same seed must give the same matrix")

	c, err := source.Generate(source.Dense(7, 11), source.WithSeed(seedDet+1))
	require.NoError(t, err)
	require.False(t, a.Equal(c), "84 fair coins colliding across seeds is practically impossible")
}

// TestToeplitz_DiagonalsConstant verifies every coefficient diagonal is constant.
func TestToeplitz_DiagonalsConstant(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 6}, {6, 1}, {5, 5}, {4, 9}, {9, 4}, {13, 40}}
	for _, s := range shapes {
		m, n := s[0], s[1]
		for seed := int64(1); seed <= 5; seed++ {
			a, err := source.Generate(source.Toeplitz(m, n), source.WithSeed(seed))
			require.NoError(t, err)
			require.Equal(t, m, a.Rows())
			for i := 1; i < m; i++ {
				for j := 1; j < n; j++ {
					require.Equalf(t, bit(t, a, i-1, j-1), bit(t, a, i, j),
						"shape %dx%d seed %d: diagonal broken at (%d,%d)", m, n, seed, i, j)
				}
			}
		}
	}
}

// TestToeplitz_Empty checks m == 0 yields an empty system.
func TestToeplitz_Empty(t *testing.T) {
	a, err := source.Generate(source.Toeplitz(0, 5), source.WithSeed(seedDet))
	require.NoError(t, err)
	require.Equal(t, 0, a.Rows())
	require.Equal(t, 5, a.Vars())
}

// TestBoundedWeight_ExactRowWeight verifies each row carries exactly k coefficient bits.
func TestBoundedWeight_ExactRowWeight(t *testing.T) {
	for _, k := range []int{0, 1, 3, 8} {
		a, err := source.Generate(source.BoundedWeight(25, 8, k), source.WithSeed(seedDet))
		require.NoError(t, err)
		for i := 0; i < a.Rows(); i++ {
			require.Equalf(t, k, a.CoefficientWeight(i), "k=%d row %d", k, i)
		}
	}
}

// TestExternal_Layout checks the documented "101_010" example.
func TestExternal_Layout(t *testing.T) {
	a, err := source.Generate(source.External("101_010", 2, 3), source.WithSeed(seedDet))
	require.NoError(t, err)
	require.Equal(t, 2, a.Rows())
	require.Equal(t, 3, a.Vars())
	require.Equal(t, "101_010", a.Spec())
	require.Equal(t, []bool{true, false, true}, []bool{bit(t, a, 0, 0), bit(t, a, 0, 1), bit(t, a, 0, 2)})
	require.Equal(t, []bool{false, true, false}, []bool{bit(t, a, 1, 0), bit(t, a, 1, 1), bit(t, a, 1, 2)})
}

// TestParseSpec_Malformed covers every rejection path; nothing is padded or truncated.
func TestParseSpec_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
		m, n int
	}{
		{"too few rows", "101", 2, 3},
		{"short row", "10_010", 2, 3},
		{"long row", "1011_010", 2, 3},
		{"extra row", "101_010_111", 2, 3},
		{"extra bits after trailing break", "101_010_1", 2, 3},
		{"double break", "101__010", 2, 3},
		{"bad token", "1a1_010", 2, 3},
		{"empty spec", "", 1, 3},
		{"tokens for empty system", "1", 0, 3},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := source.ParseSpec(tc.spec, tc.m, tc.n)
			require.ErrorIs(t, err, source.ErrMalformedSpec)
		})
	}
}

// TestParseSpec_Accepted covers whitespace and a trailing delimiter.
func TestParseSpec_Accepted(t *testing.T) {
	rows, err := source.ParseSpec(" 10 1_\n010_", 2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]bool{{true, false, true}, {false, true, false}}, rows)

	rows, err = source.ParseSpec("", 0, 3)
	require.NoError(t, err)
	require.Empty(t, rows)
}

// TestDeriveRNG_Streams checks stream determinism and independence.
func TestDeriveRNG_Streams(t *testing.T) {
	a := source.DeriveRNG(seedDet, 3).Int63()
	b := source.DeriveRNG(seedDet, 3).Int63()
	c := source.DeriveRNG(seedDet, 4).Int63()
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)

	require.GreaterOrEqual(t, source.SeedFromTime(), int64(0))
}

// TestWithRand_SharedStream verifies one RNG feeds consecutive generators.
func TestWithRand_SharedStream(t *testing.T) {
	r1 := rand.New(rand.NewSource(seedDet))
	first, err := source.Generate(source.Dense(3, 3), source.WithRand(r1))
	require.NoError(t, err)
	second, err := source.Generate(source.Dense(3, 3), source.WithRand(r1))
	require.NoError(t, err)

	r2 := rand.New(rand.NewSource(seedDet))
	again, err := source.Generate(source.Dense(3, 3), source.WithRand(r2))
	require.NoError(t, err)
	require.True(t, first.Equal(again))
	require.NotNil(t, second)

	require.Panics(t, func() { source.WithRand(nil) })
}

// SPDX-License-Identifier: MIT
// Package encode_test cross-checks the SAT encodings against elimination.
package encode_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parity/echelon"
	"github.com/katalvlaran/parity/encode"
	"github.com/katalvlaran/parity/gf2"
	"github.com/katalvlaran/parity/source"
)

var levels = []encode.Level{encode.LevelIndividual, encode.LevelEliminated, encode.LevelNative}

func b(vs ...int) []bool {
	out := make([]bool, len(vs))
	for i, v := range vs {
		out[i] = v == 1
	}
	return out
}

// TestEncode_AgreesWithElimination runs every level over generated systems
// and checks the verdict, the model and the elimination witness.
func TestEncode_AgreesWithElimination(t *testing.T) {
	t.Parallel()
	gens := map[string]source.Generator{
		"dense":    source.Dense(9, 7),
		"toeplitz": source.Toeplitz(6, 9),
		"bounded":  source.BoundedWeight(10, 9, 3),
	}
	ctx := context.Background()
	for name, gen := range gens {
		for seed := int64(1); seed <= 8; seed++ {
			a, err := source.Generate(gen, source.WithSeed(seed))
			require.NoError(t, err)
			res, err := echelon.Solve(a, echelon.WithSeed(seed))
			require.NoError(t, err)

			for _, lvl := range levels {
				label := fmt.Sprintf("%s seed=%d level=%s", name, seed, lvl)
				enc, err := encode.Encode(a, encode.WithLevel(lvl), encode.WithThreshold(3))
				require.NoError(t, err, label)

				out, model, err := enc.Check(ctx)
				require.NoError(t, err, label)
				if !res.Feasible {
					require.Equal(t, encode.OutcomeUnsat, out, label)
					require.Nil(t, model, label)
					continue
				}
				require.Equal(t, encode.OutcomeSat, out, label)
				ok, err := a.Satisfies(model)
				require.NoError(t, err)
				require.True(t, ok, "%s: model %s", label, gf2.FormatBits(model))

				ok, err = enc.Verify(ctx, res.Witness)
				require.NoError(t, err)
				require.True(t, ok, label)
			}
		}
	}
}

func TestEncode_Contradiction(t *testing.T) {
	a, err := gf2.FromRows([][]bool{b(1, 1, 0, 1), b(0, 0, 0, 1)})
	require.NoError(t, err)
	for _, lvl := range levels {
		enc, err := encode.Encode(a, encode.WithLevel(lvl))
		require.NoError(t, err)
		out, model, err := enc.Check(context.Background())
		require.NoError(t, err)
		require.Equal(t, encode.OutcomeUnsat, out, lvl.String())
		require.Nil(t, model)
	}
}

// TestVerify_RejectsWrongWitness flips a variable of the first row.
func TestVerify_RejectsWrongWitness(t *testing.T) {
	// x0+x1 = 1, x1+x2 = 0, x2 = 1  ⇒  x = (0, 1, 1)
	a, err := gf2.FromRows([][]bool{b(1, 1, 0, 1), b(0, 1, 1, 0), b(0, 0, 1, 1)})
	require.NoError(t, err)
	ctx := context.Background()
	for _, lvl := range levels {
		enc, err := encode.Encode(a, encode.WithLevel(lvl), encode.WithThreshold(2))
		require.NoError(t, err)

		ok, err := enc.Verify(ctx, b(0, 1, 1))
		require.NoError(t, err)
		require.True(t, ok, lvl.String())

		ok, err = enc.Verify(ctx, b(1, 1, 1))
		require.NoError(t, err)
		require.False(t, ok, lvl.String())

		_, err = enc.Verify(ctx, b(0, 1))
		require.ErrorIs(t, err, gf2.ErrDimensionMismatch)
	}
}

// TestEncode_Chunking: 10 variables in one row with threshold 4 need two
// chaining variables (4 + 4 + 2).
func TestEncode_Chunking(t *testing.T) {
	row := make([]bool, 11)
	for j := 0; j < 10; j++ {
		row[j] = true
	}
	a, err := gf2.FromRows([][]bool{row})
	require.NoError(t, err)

	enc, err := encode.Encode(a, encode.WithLevel(encode.LevelIndividual), encode.WithThreshold(4))
	require.NoError(t, err)
	require.Equal(t, 10, enc.Vars())
	require.Equal(t, 2, enc.Aux())
	// chunks of 5, 6 and 3 literals: 2^4 + 2^5 + 2^2 clauses.
	require.Equal(t, 16+32+4, enc.Clauses())

	native, err := encode.Encode(a)
	require.NoError(t, err)
	require.Equal(t, encode.LevelNative, native.Level())
	require.Zero(t, native.Aux())
	require.Equal(t, 1, native.Clauses())
}

func TestEncode_Errors(t *testing.T) {
	_, err := encode.Encode(nil)
	require.ErrorIs(t, err, gf2.ErrNilMatrix)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { encode.WithThreshold(1) })
	require.Panics(t, func() { encode.WithLevel(encode.Level(7)) })
	require.Panics(t, func() { encode.WithLevel(encode.Level(-1)) })
	require.NotPanics(t, func() { encode.WithThreshold(encode.MinThreshold) })
}

// TestEncode_OwnsSystemCopy: later edits to the input do not leak into the
// encoding's own witness checks.
func TestEncode_OwnsSystemCopy(t *testing.T) {
	a, err := gf2.FromRows([][]bool{b(1, 0, 1), b(0, 1, 0)})
	require.NoError(t, err)
	enc, err := encode.Encode(a)
	require.NoError(t, err)
	require.NoError(t, a.AppendRow(b(1, 1, 1)))
	require.NoError(t, a.Set(0, 2, false))

	out, model, err := enc.Check(context.Background())
	require.NoError(t, err)
	require.Equal(t, encode.OutcomeSat, out)
	require.Equal(t, b(1, 0), model)

	_, err = enc.Verify(context.Background(), b(1, 0, 0))
	require.ErrorIs(t, err, gf2.ErrDimensionMismatch)
}

func TestCheck_Cancelled(t *testing.T) {
	a, err := source.Generate(source.Dense(5, 5), source.WithSeed(4))
	require.NoError(t, err)
	enc, err := encode.Encode(a)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, model, err := enc.Check(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, encode.OutcomeUnknown, out)
	require.Nil(t, model)

	_, err = enc.Verify(ctx, make([]bool, 5))
	require.ErrorIs(t, err, context.Canceled)
}

func TestWriteDimacs(t *testing.T) {
	a, err := gf2.FromRows([][]bool{b(1, 1, 0, 1), b(0, 1, 1, 0)})
	require.NoError(t, err)
	enc, err := encode.Encode(a, encode.WithLevel(encode.LevelIndividual))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.WriteDimacs(&buf))

	var header string
	clauses := 0
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		switch {
		case strings.HasPrefix(line, "p cnf "):
			header = line
		case strings.HasPrefix(line, "c "):
		default:
			require.True(t, strings.HasSuffix(line, " 0") || line == "0", line)
			clauses++
		}
	}
	require.NotEmpty(t, header)
	var vars, declared int
	_, err = fmt.Sscanf(header, "p cnf %d %d", &vars, &declared)
	require.NoError(t, err)
	require.Equal(t, declared, clauses)
	require.GreaterOrEqual(t, vars, 3)
	// Two 2-literal XORs: 2 + 2 clauses at least.
	require.GreaterOrEqual(t, clauses, 4)
}

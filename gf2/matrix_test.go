// SPDX-License-Identifier: MIT
// Package gf2_test contains unit tests for the Matrix type.
package gf2_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/parity/gf2"
	"github.com/stretchr/testify/require"
)

// rowsOf is a compact literal helper: "110|1" -> [true,true,false,true].
func rowsOf(t *testing.T, lines ...string) [][]bool {
	t.Helper()
	out := make([][]bool, 0, len(lines))
	for _, l := range lines {
		var r []bool
		for _, ch := range l {
			switch ch {
			case '0':
				r = append(r, false)
			case '1':
				r = append(r, true)
			case '|':
			default:
				t.Fatalf("bad literal %q", l)
			}
		}
		out = append(out, r)
	}
	return out
}

// TestNewMatrixInvalidShape ensures NewMatrix rejects negative rows and zero variables.
func TestNewMatrixInvalidShape(t *testing.T) {
	_, err := gf2.NewMatrix(-1, 3)
	require.ErrorIs(t, err, gf2.ErrBadShape)

	_, err = gf2.NewMatrix(2, 0)
	require.ErrorIs(t, err, gf2.ErrBadShape)

	a, err := gf2.NewMatrix(0, 4) // empty system is legal
	require.NoError(t, err)
	require.Equal(t, 0, a.Rows())
	require.Equal(t, 5, a.Cols())
}

// TestFromRowsValidation covers empty, short and ragged inputs.
func TestFromRowsValidation(t *testing.T) {
	_, err := gf2.FromRows(nil)
	require.ErrorIs(t, err, gf2.ErrBadShape)

	_, err = gf2.FromRows([][]bool{{true}})
	require.ErrorIs(t, err, gf2.ErrBadShape)

	_, err = gf2.FromRows([][]bool{{true, false}, {true}})
	require.ErrorIs(t, err, gf2.ErrRaggedRows)
}

// TestFromRowsDeepCopy verifies the input slices are not aliased.
func TestFromRowsDeepCopy(t *testing.T) {
	in := rowsOf(t, "10|1", "01|0")
	a, err := gf2.FromRows(in)
	require.NoError(t, err)

	in[0][0] = false
	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.True(t, v)
	require.Equal(t, 2, a.Vars())
	require.True(t, a.RHS(0))
	require.False(t, a.RHS(1))
}

// TestAtSetOutOfRange ensures indexers return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	a, err := gf2.NewMatrix(2, 2)
	require.NoError(t, err)

	_, err = a.At(-1, 0)
	require.ErrorIs(t, err, gf2.ErrOutOfRange)
	_, err = a.At(0, 3)
	require.ErrorIs(t, err, gf2.ErrOutOfRange)
	require.ErrorIs(t, a.Set(2, 0, true), gf2.ErrOutOfRange)
	require.NoError(t, a.Set(1, 2, true)) // RHS column is addressable
	_, err = a.Row(5)
	require.ErrorIs(t, err, gf2.ErrOutOfRange)
	require.ErrorIs(t, a.XorRow(0, 9), gf2.ErrOutOfRange)
}

// TestXorRowAndWeights checks row addition and the weight accessors.
func TestXorRowAndWeights(t *testing.T) {
	a, err := gf2.FromRows(rowsOf(t, "110|1", "011|0"))
	require.NoError(t, err)
	require.Equal(t, 5, a.Weight())
	require.Equal(t, 3, a.RowWeight(0))
	require.Equal(t, 2, a.CoefficientWeight(0))

	require.NoError(t, a.XorRow(0, 1))
	got, err := a.Row(0)
	require.NoError(t, err)
	if diff := cmp.Diff(rowsOf(t, "101|1")[0], got); diff != "" {
		t.Fatalf("row 0 mismatch (-want +got):\n%s", diff)
	}
}

// TestCloneIndependence ensures Clone returns storage that is not shared.
func TestCloneIndependence(t *testing.T) {
	a, err := gf2.FromRows(rowsOf(t, "10|1"))
	require.NoError(t, err)
	b := a.Clone()
	require.True(t, a.Equal(b))

	require.NoError(t, b.Set(0, 1, true))
	require.False(t, a.Equal(b))
	v, _ := a.At(0, 1)
	require.False(t, v)
}

// TestAppendRow covers the width check and the copy semantics.
func TestAppendRow(t *testing.T) {
	a, err := gf2.NewMatrix(1, 2)
	require.NoError(t, err)
	require.ErrorIs(t, a.AppendRow([]bool{true}), gf2.ErrDimensionMismatch)

	row := []bool{true, true, false}
	require.NoError(t, a.AppendRow(row))
	row[0] = false
	require.Equal(t, 2, a.Rows())
	v, _ := a.At(1, 0)
	require.True(t, v)
	require.Equal(t, 0, a.RowWeight(0)) // row 0 untouched by the append
}

// TestSatisfies exercises the modulo-2 witness check.
func TestSatisfies(t *testing.T) {
	a, err := gf2.FromRows(rowsOf(t, "110|1", "011|0", "101|1"))
	require.NoError(t, err)

	ok, err := a.Satisfies([]bool{true, false, false})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = a.Satisfies([]bool{true, true, false})
	require.NoError(t, err)
	require.False(t, ok)

	_, err = a.Satisfies([]bool{true})
	require.ErrorIs(t, err, gf2.ErrDimensionMismatch)

	var none *gf2.Matrix
	_, err = none.Satisfies(nil)
	require.ErrorIs(t, err, gf2.ErrNilMatrix)
}

// TestContradictionRows checks zero-row classification.
func TestContradictionRows(t *testing.T) {
	a, err := gf2.FromRows(rowsOf(t, "000|1", "000|0", "010|1"))
	require.NoError(t, err)
	require.True(t, a.IsContradiction(0))
	require.True(t, a.IsZeroRow(1))
	require.False(t, a.IsContradiction(1))
	require.False(t, a.IsZeroRow(2))
}

// TestSpecAndString checks both textual renderings.
func TestSpecAndString(t *testing.T) {
	a, err := gf2.FromRows(rowsOf(t, "101|1", "010|0"))
	require.NoError(t, err)
	require.Equal(t, "101_010", a.Spec())
	require.Equal(t, "101 | 1\n010 | 0\n", a.String())
	require.Equal(t, "0110", gf2.FormatBits([]bool{false, true, true, false}))
}

// TestValidators covers the nil and length guards.
func TestValidators(t *testing.T) {
	require.ErrorIs(t, gf2.ValidateNotNil(nil), gf2.ErrNilMatrix)

	a, _ := gf2.NewMatrix(1, 3)
	require.NoError(t, gf2.ValidateWitness(a, make([]bool, 3)))
	require.ErrorIs(t, gf2.ValidateWitness(a, make([]bool, 2)), gf2.ErrDimensionMismatch)
	require.ErrorIs(t, gf2.ValidateWitness(nil, nil), gf2.ErrNilMatrix)
}

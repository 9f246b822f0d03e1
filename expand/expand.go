// SPDX-License-Identifier: MIT

package expand

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/parity/gf2"
)

// ErrPrefixRange is returned when the prefix lies outside [0, Rows()].
var ErrPrefixRange = errors.New("expand: prefix out of range")

const opPairwise = "Pairwise"

// PairCount returns how many rows Pairwise appends for the given prefix.
// Non-positive prefixes yield 0.
func PairCount(prefix int) int {
	if prefix < 2 {
		return 0
	}
	return prefix * (prefix - 1) / 2
}

// Pairwise returns a copy of a extended with the XOR of every pair among its
// first prefix rows. a itself is not modified.
//
// Errors:
//   - gf2.ErrNilMatrix, ErrPrefixRange.
//
// Complexity: O((m + prefix²) * n).
func Pairwise(a *gf2.Matrix, prefix int) (*gf2.Matrix, error) {
	if err := gf2.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opPairwise, err)
	}
	if prefix < 0 || prefix > a.Rows() {
		return nil, fmt.Errorf("%s: prefix %d with %d rows: %w", opPairwise, prefix, a.Rows(), ErrPrefixRange)
	}

	out := a.Clone()
	buf := make([]bool, a.Cols())
	for i := 0; i < prefix; i++ {
		for k := i + 1; k < prefix; k++ {
			copy(buf, a.RowView(i))
			gf2.XorInto(buf, a.RowView(k))
			if err := out.AppendRow(buf); err != nil {
				return nil, fmt.Errorf("%s: %w", opPairwise, err)
			}
		}
	}

	return out, nil
}

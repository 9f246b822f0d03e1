// SPDX-License-Identifier: MIT

package sparsify

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/parity/gf2"
)

// PhaseReport describes one combination phase.
type PhaseReport struct {
	Arity   int  // rows per combination, the target row included
	Ran     bool // false when the row count was not below the phase limit
	Applied int  // rewrites performed
	Saved   int  // bits removed by this phase
}

// Report summarizes a Sparsify call. Saved == Initial - Final.
type Report struct {
	Initial int
	Final   int
	Saved   int
	Phases  []PhaseReport
}

// Sparsify greedily lowers the weight of a in place and reports the savings.
//
// Implementation:
//   - Stage 1: validate; pack every row into a bitset (capacity checked for
//     all rows before any work).
//   - Stage 2: run the 4-, 3- and 2-row phases subject to their limits.
//   - Stage 3: write the bitsets back into a.
//
// Behavior highlights:
//   - Never increases the weight: a rewrite happens only on a strict decrease.
//   - On error a is unchanged.
//
// Errors:
//   - gf2.ErrNilMatrix, gf2.ErrCapacity.
func Sparsify(a *gf2.Matrix, opts ...Option) (Report, error) {
	if err := gf2.ValidateNotNil(a); err != nil {
		return Report{}, fmt.Errorf("%s: %w", opSparsify, err)
	}
	cfg := newConfig(opts...)

	m, width := a.Rows(), a.Cols()
	capacity := cfg.capacity
	if capacity == 0 {
		capacity = width
	}
	s := &state{bv: make([]gf2.Bitset, m), weight: make([]int, m)}
	for i := 0; i < m; i++ {
		row, err := gf2.BitsetFromBools(a.RowView(i), capacity)
		if err != nil {
			return Report{}, fmt.Errorf("%s: row %d: %w", opSparsify, i, err)
		}
		s.bv[i] = row
		s.weight[i] = row.Count()
	}

	rep := Report{Initial: s.total()}
	cfg.logger.WithFields(logrus.Fields{"rows": m, "bits": rep.Initial}).Debug("initial # of bits")

	phases := []struct {
		arity int
		limit int
		run   func() (int, int)
	}{
		{4, cfg.quadLimit, s.quads},
		{3, cfg.tripleLimit, s.triples},
		{2, cfg.pairLimit, s.pairs},
	}
	for _, ph := range phases {
		pr := PhaseReport{Arity: ph.arity}
		if m < ph.limit {
			pr.Ran = true
			pr.Applied, pr.Saved = ph.run()
			rep.Saved += pr.Saved
		}
		cfg.logger.WithFields(logrus.Fields{
			"arity":   pr.Arity,
			"ran":     pr.Ran,
			"applied": pr.Applied,
			"saved":   pr.Saved,
		}).Debug("phase done")
		rep.Phases = append(rep.Phases, pr)
	}

	for i := 0; i < m; i++ {
		if err := s.bv[i].Bools(a.RowView(i)); err != nil {
			// Unreachable: every bitset was built from a row of this width.
			return Report{}, fmt.Errorf("%s: write back row %d: %w", opSparsify, i, err)
		}
	}
	rep.Final = rep.Initial - rep.Saved
	cfg.logger.WithField("bits", rep.Final).Debug("final # of bits")

	return rep, nil
}

// state holds the packed rows and their cached weights during the search.
type state struct {
	bv     []gf2.Bitset
	weight []int
}

func (s *state) total() int {
	t := 0
	for _, w := range s.weight {
		t += w
	}
	return t
}

// apply replaces row i by row i ^ others and books the saving.
func (s *state) apply(i, newWeight int, others ...int) int {
	for _, o := range others {
		_ = s.bv[i].XorWith(s.bv[o]) // equal capacities by construction
	}
	saved := s.weight[i] - newWeight
	s.weight[i] = newWeight
	return saved
}

// quads tries row i ^ l ^ z ^ g for all pairwise-distinct (i, l, z, g).
func (s *state) quads() (applied, saved int) {
	m := len(s.bv)
	for i := 0; i < m; i++ {
		for l := 0; l < m; l++ {
			if l == i {
				continue
			}
			for z := 0; z < m; z++ {
				if z == i || z == l {
					continue
				}
				for g := 0; g < m; g++ {
					if g == i || g == l || g == z {
						continue
					}
					if w := s.bv[i].XorCount(s.bv[l], s.bv[z], s.bv[g]); w < s.weight[i] {
						saved += s.apply(i, w, l, z, g)
						applied++
					}
				}
			}
		}
	}
	return applied, saved
}

// triples tries row i ^ l ^ z for all pairwise-distinct (i, l, z).
func (s *state) triples() (applied, saved int) {
	m := len(s.bv)
	for i := 0; i < m; i++ {
		for l := 0; l < m; l++ {
			if l == i {
				continue
			}
			for z := 0; z < m; z++ {
				if z == i || z == l {
					continue
				}
				if w := s.bv[i].XorCount(s.bv[l], s.bv[z]); w < s.weight[i] {
					saved += s.apply(i, w, l, z)
					applied++
				}
			}
		}
	}
	return applied, saved
}

// pairs tries row i ^ l for all distinct (i, l).
func (s *state) pairs() (applied, saved int) {
	m := len(s.bv)
	for i := 0; i < m; i++ {
		for l := 0; l < m; l++ {
			if l == i {
				continue
			}
			if w := s.bv[i].XorCount(s.bv[l]); w < s.weight[i] {
				saved += s.apply(i, w, l)
				applied++
			}
		}
	}
	return applied, saved
}

// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parity/config"
	"github.com/katalvlaran/parity/echelon"
	"github.com/katalvlaran/parity/encode"
	"github.com/katalvlaran/parity/source"
	"github.com/katalvlaran/parity/sparsify"
)

var errDisagreement = errors.New("elimination and SAT solver disagree")

// trialResult is the outcome of one independent pipeline run.
type trialResult struct {
	Feasible bool
	Rank     int
	Saved    int
}

// trialStats aggregates a batch of trials.
type trialStats struct {
	Count    int
	Feasible int
	Rank     float64 // mean
	Saved    float64 // mean bits removed by the sparsifier
}

func newTrialsCmd(o *options) *cobra.Command {
	var count, jobs int
	cmd := &cobra.Command{
		Use:   "trials",
		Short: "Run many seeded pipelines concurrently and print aggregate statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.cfg.Validate(); err != nil {
				return err
			}
			if count < 1 || jobs < 1 {
				return fmt.Errorf("trials: --count and --jobs must be positive: %w", config.ErrInvalidConfig)
			}
			seed := o.cfg.ResolveSeed()
			o.logger.WithFields(logrus.Fields{"count": count, "jobs": jobs, "seed": seed}).Info("running trials")

			st, err := runTrials(cmd.Context(), o.cfg, seed, count, jobs, o.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "trials: %d\nfeasible: %d (%.2f)\nmean rank: %.2f\nmean bits saved: %.2f\n",
				st.Count, st.Feasible, float64(st.Feasible)/float64(st.Count), st.Rank, st.Saved)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 10, "number of trials")
	cmd.Flags().IntVar(&jobs, "jobs", runtime.NumCPU(), "trials run in parallel")
	return cmd
}

// runTrials runs count pipelines with at most jobs in flight. Trial k draws
// from source.DeriveRNG(seed, k), so every trial is reproducible on its own
// and the result does not depend on scheduling.
func runTrials(ctx context.Context, cfg config.Config, seed int64, count, jobs int, logger logrus.FieldLogger) (trialStats, error) {
	gen, err := cfg.Generator()
	if err != nil {
		return trialStats{}, err
	}
	results := make([]trialResult, count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for k := 0; k < count; k++ {
		k := k
		g.Go(func() error {
			r, err := runTrial(ctx, cfg, gen, source.DeriveRNG(seed, uint64(k)))
			if err != nil {
				return fmt.Errorf("trial %d: %w", k, err)
			}
			logger.WithFields(logrus.Fields{"trial": k, "feasible": r.Feasible, "saved": r.Saved}).Debug("trial done")
			results[k] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return trialStats{}, err
	}

	st := trialStats{Count: count}
	for _, r := range results {
		if r.Feasible {
			st.Feasible++
		}
		st.Rank += float64(r.Rank)
		st.Saved += float64(r.Saved)
	}
	st.Rank /= float64(count)
	st.Saved /= float64(count)
	return st, nil
}

// runTrial generates one system, solves it, sparsifies it and cross-checks
// the rewritten system against both the witness and the SAT encoding.
func runTrial(ctx context.Context, cfg config.Config, gen source.Generator, rng *rand.Rand) (trialResult, error) {
	a, err := source.Generate(gen, source.WithRand(rng))
	if err != nil {
		return trialResult{}, err
	}
	res, err := echelon.Solve(a, echelon.WithRand(rng))
	if err != nil {
		return trialResult{}, err
	}
	rep, err := sparsify.Sparsify(a, cfg.SparsifyOptions()...)
	if err != nil {
		return trialResult{}, err
	}
	if res.Feasible {
		ok, err := a.Satisfies(res.Witness)
		if err != nil {
			return trialResult{}, err
		}
		if !ok {
			return trialResult{}, fmt.Errorf("witness lost by sparsification: %w", errDisagreement)
		}
	}

	enc, err := encode.Encode(a, cfg.EncodeOptions()...)
	if err != nil {
		return trialResult{}, err
	}
	verdict, _, err := enc.Check(ctx)
	if err != nil {
		return trialResult{}, err
	}
	if (verdict == encode.OutcomeSat) != res.Feasible {
		return trialResult{}, fmt.Errorf("feasible=%t, SAT solver says %s: %w", res.Feasible, verdict, errDisagreement)
	}

	return trialResult{Feasible: res.Feasible, Rank: res.Rank(), Saved: rep.Saved}, nil
}

// SPDX-License-Identifier: MIT
// Package: parity/echelon
//
// options.go - functional options. Option constructors panic on meaningless
// inputs; Reduce/Solve never panic.

package echelon

import "math/rand"

// Option customizes a Reduce/Solve call.
type Option func(*config)

type config struct {
	rng *rand.Rand // witness guesses; required
}

func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithRand supplies the RNG used for the random starting guesses.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("echelon: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a deterministic RNG for the starting guesses.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

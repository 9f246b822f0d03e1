// SPDX-License-Identifier: MIT
// Package: parity/source
//
// options.go - functional options for the source package.
//
// Contract (strict):
//   • Options are functional (type Option func(*sourceConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package source

import "math/rand"

// Option customizes generation by mutating a sourceConfig before the
// generator runs.
type Option func(*sourceConfig)

// WithRand provides an explicit RNG. The generator consumes it; callers that
// reuse one RNG across generators get one continuous stream.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("source: WithRand(nil)")
	}
	return func(c *sourceConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *sourceConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

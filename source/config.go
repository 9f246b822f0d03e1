// SPDX-License-Identifier: MIT
// Package: parity/source
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • sourceConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newSourceConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng = nil (generators fail with ErrNeedRandSource unless seeded)

package source

import "math/rand"

// sourceConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type sourceConfig struct {
	// RNG for every random draw; nil means "no randomness available".
	rng *rand.Rand
}

// newSourceConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newSourceConfig(opts ...Option) sourceConfig {
	cfg := sourceConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// coin draws one fair bit. The low bit of Int63 mirrors a rand()%2 draw.
func (c sourceConfig) coin() bool {
	return c.rng.Int63()&1 == 0
}

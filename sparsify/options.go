// SPDX-License-Identifier: MIT
// Package: parity/sparsify
//
// options.go - functional options and documented defaults.
//
// Contract (strict):
//   • Option constructors panic on meaningless inputs (negative limits,
//     non-positive capacity, nil logger). Sparsify never panics.
//   • A limit of 0 disables its phase.

package sparsify

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Phase size limits: a phase runs only when the row count is strictly below.
const (
	DefaultQuadLimit   = 100
	DefaultTripleLimit = 500
	DefaultPairLimit   = 10000
)

// Option customizes a Sparsify call.
type Option func(*config)

type config struct {
	quadLimit   int
	tripleLimit int
	pairLimit   int
	capacity    int // 0 ⇒ size bit-vectors to the row width
	logger      logrus.FieldLogger
}

func newConfig(opts ...Option) config {
	c := config{
		quadLimit:   DefaultQuadLimit,
		tripleLimit: DefaultTripleLimit,
		pairLimit:   DefaultPairLimit,
		logger:      discardLogger(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithQuadLimit sets the row-count bound for the 4-row phase. Panics if limit < 0.
func WithQuadLimit(limit int) Option {
	if limit < 0 {
		panic("sparsify: WithQuadLimit(limit<0)")
	}
	return func(c *config) { c.quadLimit = limit }
}

// WithTripleLimit sets the row-count bound for the 3-row phase. Panics if limit < 0.
func WithTripleLimit(limit int) Option {
	if limit < 0 {
		panic("sparsify: WithTripleLimit(limit<0)")
	}
	return func(c *config) { c.tripleLimit = limit }
}

// WithPairLimit sets the row-count bound for the 2-row phase. Panics if limit < 0.
func WithPairLimit(limit int) Option {
	if limit < 0 {
		panic("sparsify: WithPairLimit(limit<0)")
	}
	return func(c *config) { c.pairLimit = limit }
}

// WithCapacity fixes the bit-vector capacity. Rows wider than capacity make
// Sparsify fail with gf2.ErrCapacity before touching the matrix.
// Panics if capacity <= 0.
func WithCapacity(capacity int) Option {
	if capacity <= 0 {
		panic("sparsify: WithCapacity(capacity<=0)")
	}
	return func(c *config) { c.capacity = capacity }
}

// WithLogger routes per-phase debug output to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("sparsify: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// SPDX-License-Identifier: MIT

package encode

import "fmt"

// Level selects how rows are turned into constraints.
type Level int

const (
	LevelIndividual Level = iota
	LevelEliminated
	LevelNative
)

// Defaults.
const (
	DefaultLevel     = LevelNative
	DefaultThreshold = 4
	MinThreshold     = 2
)

// String returns the level name used in logs and flags.
func (l Level) String() string {
	switch l {
	case LevelIndividual:
		return "individual"
	case LevelEliminated:
		return "eliminated"
	case LevelNative:
		return "native"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Option customizes Encode. Option constructors panic on meaningless inputs;
// Encode never panics.
type Option func(*config)

type config struct {
	level     Level
	threshold int
}

func newConfig(opts ...Option) config {
	c := config{level: DefaultLevel, threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLevel selects the encoding. Panics on an unknown level.
func WithLevel(l Level) Option {
	if l < LevelIndividual || l > LevelNative {
		panic(fmt.Sprintf("encode: WithLevel(%v)", l))
	}
	return func(c *config) { c.level = l }
}

// WithThreshold sets the maximum number of row variables per direct XOR
// chunk. Panics if t < MinThreshold.
func WithThreshold(t int) Option {
	if t < MinThreshold {
		panic(fmt.Sprintf("encode: WithThreshold(%d<%d)", t, MinThreshold))
	}
	return func(c *config) { c.threshold = t }
}

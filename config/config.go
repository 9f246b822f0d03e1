// SPDX-License-Identifier: MIT

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/katalvlaran/parity/encode"
	"github.com/katalvlaran/parity/source"
	"github.com/katalvlaran/parity/sparsify"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Generator modes.
const (
	ModeDense    = "dense"
	ModeToeplitz = "toeplitz"
	ModeBounded  = "bounded"
	ModeExternal = "external"
)

// Config is the full parameter set of one run.
type Config struct {
	Rows   int    `json:"rows"`
	Vars   int    `json:"vars"`
	Mode   string `json:"mode"`
	Weight int    `json:"weight,omitempty"` // bounded mode: coefficients per row
	Matrix MatrixSpec `json:"matrix,omitempty"` // external mode: 0/1 rows separated by '_'

	// Seed fixes the RNG; nil means derive one from the clock.
	Seed *int64 `json:"seed,omitempty"`

	// SkipElim disables elimination in pipelines that would otherwise run it.
	SkipElim bool `json:"skipElim,omitempty"`

	FilterLevel     int `json:"filterLevel"`
	FilterThreshold int `json:"filterThreshold"`

	QuadLimit   int `json:"quadLimit"`
	TripleLimit int `json:"tripleLimit"`
	PairLimit   int `json:"pairLimit"`

	// ExpandPrefix is how many leading rows the expander combines.
	ExpandPrefix int `json:"expandPrefix,omitempty"`
}

// Default returns the documented defaults: a 10×10 dense system, native
// encoding with threshold 4 and the standard sparsifier limits.
func Default() Config {
	return Config{
		Rows:            10,
		Vars:            10,
		Mode:            ModeDense,
		FilterLevel:     int(encode.DefaultLevel),
		FilterThreshold: encode.DefaultThreshold,
		QuadLimit:       sparsify.DefaultQuadLimit,
		TripleLimit:     sparsify.DefaultTripleLimit,
		PairLimit:       sparsify.DefaultPairLimit,
	}
}

// Load reads path on top of Default and validates the result. YAML is
// converted to JSON first and then decoded, so field errors keep their
// sentinel (ErrInvalidConfig) for errors.Is.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	c := Default()
	if err := json.Unmarshal(js, &c); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func invalid(field, format string, args ...interface{}) error {
	return fmt.Errorf("config: %s: %s: %w", field, fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// Validate checks every field; the first violation is returned.
func (c Config) Validate() error {
	if c.Rows < source.MinRows {
		return invalid("rows", "%d < %d", c.Rows, source.MinRows)
	}
	if c.Vars < source.MinVars {
		return invalid("vars", "%d < %d", c.Vars, source.MinVars)
	}
	switch c.Mode {
	case ModeDense, ModeToeplitz:
	case ModeBounded:
		if c.Weight < 0 || c.Weight > c.Vars {
			return invalid("weight", "%d outside [0, %d]", c.Weight, c.Vars)
		}
	case ModeExternal:
		if c.Matrix == "" && c.Rows > 0 {
			return invalid("matrix", "required in %s mode with %d rows", ModeExternal, c.Rows)
		}
	default:
		return invalid("mode", "unknown %q", c.Mode)
	}
	if c.FilterLevel < int(encode.LevelIndividual) || c.FilterLevel > int(encode.LevelNative) {
		return invalid("filterLevel", "%d outside [0, 2]", c.FilterLevel)
	}
	if c.SkipElim && c.FilterLevel == int(encode.LevelEliminated) {
		return invalid("filterLevel", "level %d eliminates, which skipElim forbids", c.FilterLevel)
	}
	if c.FilterThreshold < encode.MinThreshold {
		return invalid("filterThreshold", "%d < %d", c.FilterThreshold, encode.MinThreshold)
	}
	for _, l := range []struct {
		name string
		v    int
	}{{"quadLimit", c.QuadLimit}, {"tripleLimit", c.TripleLimit}, {"pairLimit", c.PairLimit}} {
		if l.v < 0 {
			return invalid(l.name, "%d < 0", l.v)
		}
	}
	if c.ExpandPrefix < 0 || c.ExpandPrefix > c.Rows {
		return invalid("expandPrefix", "%d outside [0, %d]", c.ExpandPrefix, c.Rows)
	}
	return nil
}

// Generator returns the source generator for the configured mode.
func (c Config) Generator() (source.Generator, error) {
	switch c.Mode {
	case ModeDense:
		return source.Dense(c.Rows, c.Vars), nil
	case ModeToeplitz:
		return source.Toeplitz(c.Rows, c.Vars), nil
	case ModeBounded:
		return source.BoundedWeight(c.Rows, c.Vars, c.Weight), nil
	case ModeExternal:
		return source.External(string(c.Matrix), c.Rows, c.Vars), nil
	default:
		return nil, invalid("mode", "unknown %q", c.Mode)
	}
}

// ResolveSeed returns the configured seed, or a clock-derived one.
func (c Config) ResolveSeed() int64 {
	if c.Seed != nil {
		return *c.Seed
	}
	return source.SeedFromTime()
}

// SourceOptions seeds generation with seed.
func (c Config) SourceOptions(seed int64) []source.Option {
	return []source.Option{source.WithSeed(seed)}
}

// SparsifyOptions maps the phase limits.
func (c Config) SparsifyOptions() []sparsify.Option {
	return []sparsify.Option{
		sparsify.WithQuadLimit(c.QuadLimit),
		sparsify.WithTripleLimit(c.TripleLimit),
		sparsify.WithPairLimit(c.PairLimit),
	}
}

// EncodeOptions maps the filter level and threshold.
func (c Config) EncodeOptions() []encode.Option {
	return []encode.Option{
		encode.WithLevel(encode.Level(c.FilterLevel)),
		encode.WithThreshold(c.FilterThreshold),
	}
}

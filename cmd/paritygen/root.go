// SPDX-License-Identifier: MIT

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/parity/config"
	"github.com/katalvlaran/parity/gf2"
	"github.com/katalvlaran/parity/source"
)

// streamSolve is the RNG stream, derived from the run seed, that feeds the
// witness guesses of the solve command.
const streamSolve uint64 = 1

type options struct {
	configPath string
	rows       int
	vars       int
	mode       string
	weight     int
	matrix     string
	seed       int64
	skipElim   bool
	debug      bool

	cfg    config.Config
	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	o := &options{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:           "paritygen",
		Short:         "Generate and analyze GF(2) parity-constraint systems",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			o.logger = logrus.New()
			o.logger.SetOutput(cmd.ErrOrStderr())
			o.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if o.debug {
				o.logger.SetLevel(logrus.DebugLevel)
			}
			return o.complete(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "YAML or JSON run configuration")
	f.IntVarP(&o.rows, "rows", "m", def.Rows, "number of constraints")
	f.IntVarP(&o.vars, "vars", "n", def.Vars, "number of variables")
	f.StringVar(&o.mode, "mode", def.Mode, "generator: dense, toeplitz, bounded or external")
	f.IntVarP(&o.weight, "weight", "k", def.Weight, "coefficients per row in bounded mode")
	f.StringVar(&o.matrix, "matrix", "", "external matrix, e.g. 101_010")
	f.Int64Var(&o.seed, "seed", 0, "RNG seed (default: derived from the clock)")
	f.BoolVar(&o.skipElim, "skipelim", false, "skip Gaussian elimination")
	f.BoolVar(&o.debug, "debug", false, "use debug log level")

	cmd.AddCommand(
		newGenerateCmd(o),
		newSolveCmd(o),
		newSparsifyCmd(o),
		newExpandCmd(o),
		newEncodeCmd(o),
		newTrialsCmd(o),
	)

	return cmd
}

// complete builds the effective configuration: file (or defaults), then
// explicitly set flags on top.
func (o *options) complete(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("rows") {
		cfg.Rows = o.rows
	}
	if f.Changed("vars") {
		cfg.Vars = o.vars
	}
	if f.Changed("mode") {
		cfg.Mode = o.mode
	}
	if f.Changed("weight") {
		cfg.Weight = o.weight
	}
	if f.Changed("matrix") {
		cfg.Matrix = config.MatrixSpec(o.matrix)
		if !f.Changed("mode") {
			cfg.Mode = config.ModeExternal
		}
	}
	if f.Changed("seed") {
		seed := o.seed
		cfg.Seed = &seed
	}
	if f.Changed("skipelim") {
		cfg.SkipElim = o.skipElim
	}

	o.cfg = cfg
	return nil
}

// system validates the configuration and generates the matrix. It returns the
// seed actually used.
func (o *options) system() (*gf2.Matrix, int64, error) {
	if err := o.cfg.Validate(); err != nil {
		return nil, 0, err
	}
	gen, err := o.cfg.Generator()
	if err != nil {
		return nil, 0, err
	}
	seed := o.cfg.ResolveSeed()
	o.logger.WithFields(logrus.Fields{
		"mode": o.cfg.Mode,
		"rows": o.cfg.Rows,
		"vars": o.cfg.Vars,
		"seed": seed,
	}).Info("generating system")

	a, err := source.Generate(gen, o.cfg.SourceOptions(seed)...)
	if err != nil {
		return nil, 0, err
	}
	return a, seed, nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/parity/echelon"
	"github.com/katalvlaran/parity/encode"
	"github.com/katalvlaran/parity/gf2"
	"github.com/katalvlaran/parity/source"
)

func newSolveCmd(o *options) *cobra.Command {
	var verify bool
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Decide feasibility and print a witness",
		Long: `Reduce a copy of the system by Gaussian elimination and report feasibility,
rank and a witness. With --verify (or --skipelim) the system is also handed to
the SAT solver; a disagreement between the two is an error. --skipelim cannot
be combined with filter level 1, which eliminates inside the encoder.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, seed, err := o.system()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			var res *echelon.Result
			if !o.cfg.SkipElim {
				r, err := echelon.Solve(a, echelon.WithRand(source.DeriveRNG(seed, streamSolve)))
				if err != nil {
					return err
				}
				res = &r
				fmt.Fprintf(out, "feasible: %t\nrank: %d\n", r.Feasible, r.Rank())
				if r.Feasible {
					fmt.Fprintf(out, "witness: %s\n", gf2.FormatBits(r.Witness))
				}
			}

			if !verify && !o.cfg.SkipElim {
				return nil
			}
			enc, err := encode.Encode(a, o.cfg.EncodeOptions()...)
			if err != nil {
				return err
			}
			verdict, model, err := enc.Check(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "sat: %s\n", verdict)
			if res == nil {
				if verdict == encode.OutcomeSat {
					fmt.Fprintf(out, "witness: %s\n", gf2.FormatBits(model))
				}
				return nil
			}
			if (verdict == encode.OutcomeSat) != res.Feasible {
				return fmt.Errorf("solve: feasible=%t, SAT solver says %s: %w", res.Feasible, verdict, errDisagreement)
			}
			if res.Feasible {
				ok, err := enc.Verify(cmd.Context(), res.Witness)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("solve: witness %s rejected: %w", gf2.FormatBits(res.Witness), errDisagreement)
				}
			}
			o.logger.Debug("elimination and SAT solver agree")
			return nil
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check with the SAT encoding")
	return cmd
}

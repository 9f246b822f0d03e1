// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/parity/sparsify"
)

func newSparsifyCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sparsify",
		Short: "Lower the number of true bits with row combinations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := o.system()
			if err != nil {
				return err
			}
			opts := append(o.cfg.SparsifyOptions(), sparsify.WithLogger(o.logger))
			rep, err := sparsify.Sparsify(a, opts...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "initial # of bits: %d\nfinal # of bits: %d\n", rep.Initial, rep.Final)
			for _, ph := range rep.Phases {
				if ph.Ran {
					fmt.Fprintf(out, "  %d-row phase: %d rewrites, %d bits saved\n", ph.Arity, ph.Applied, ph.Saved)
				}
			}
			fmt.Fprint(out, a)
			return nil
		},
	}
}

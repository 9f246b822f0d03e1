// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd(o *options) *cobra.Command {
	var spec bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a generated system",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := o.system()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if spec {
				fmt.Fprintln(out, a.Spec())
				return nil
			}
			fmt.Fprint(out, a)
			return nil
		},
	}
	cmd.Flags().BoolVar(&spec, "spec", false, "print coefficients in the compact 0/1/_ format")
	return cmd
}

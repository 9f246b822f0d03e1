// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/parity/expand"
)

func newExpandCmd(o *options) *cobra.Command {
	var prefix int
	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Append pairwise XORs of the leading rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("prefix") {
				o.cfg.ExpandPrefix = prefix
			}
			a, _, err := o.system()
			if err != nil {
				return err
			}
			b, err := expand.Pairwise(a, o.cfg.ExpandPrefix)
			if err != nil {
				return err
			}
			o.logger.WithField("added", b.Rows()-a.Rows()).Debug("expanded")
			fmt.Fprint(cmd.OutOrStdout(), b)
			return nil
		},
	}
	cmd.Flags().IntVar(&prefix, "prefix", 0, "number of leading rows to combine")
	return cmd
}

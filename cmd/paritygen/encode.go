// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/parity/encode"
)

func newEncodeCmd(o *options) *cobra.Command {
	var (
		outPath   string
		level     int
		threshold int
	)
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Write the system as DIMACS CNF",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if cmd.Flags().Changed("level") {
				o.cfg.FilterLevel = level
			}
			if cmd.Flags().Changed("threshold") {
				o.cfg.FilterThreshold = threshold
			}
			a, _, err := o.system()
			if err != nil {
				return err
			}
			enc, err := encode.Encode(a, o.cfg.EncodeOptions()...)
			if err != nil {
				return err
			}
			o.logger.WithFields(logrus.Fields{
				"level": enc.Level(),
				"aux":   enc.Aux(),
			}).Info("encoded")

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, ferr := os.Create(outPath)
				if ferr != nil {
					return ferr
				}
				defer func() {
					if cerr := f.Close(); err == nil {
						err = cerr
					}
				}()
				w = f
			}
			return enc.WriteDimacs(w)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&level, "level", int(encode.DefaultLevel), "0 individual, 1 eliminated, 2 native")
	cmd.Flags().IntVar(&threshold, "threshold", encode.DefaultThreshold, "maximum variables per XOR chunk")
	return cmd
}

// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tabuqbf/instance"
)

type generateOptions struct {
	n   int
	gen instance.GenOptions
	out string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	o := &generateOptions{gen: instance.DefaultGenOptions()}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random upper-triangular instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := root.newLogger(cmd)
			if o.n <= 0 {
				return errors.New("--n must be positive")
			}
			m, err := instance.Generate(o.n, o.gen)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if o.out != "" {
				f, err := os.Create(o.out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err = instance.Write(w, m); err != nil {
				return fmt.Errorf("write instance: %w", err)
			}
			logger.WithField("n", o.n).Debugf("instance written to %q", o.out)

			return nil
		},
	}
	cmd.Flags().IntVarP(&o.n, "n", "n", 0, "domain size")
	cmd.Flags().IntVar(&o.gen.Min, "min", o.gen.Min, "smallest coefficient")
	cmd.Flags().IntVar(&o.gen.Max, "max", o.gen.Max, "largest coefficient")
	cmd.Flags().Int64Var(&o.gen.Seed, "seed", o.gen.Seed, "random seed (0 selects a fixed default)")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output file (default stdout)")

	return cmd
}

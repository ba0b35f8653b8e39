// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	debug bool
}

// newLogger returns a logrus logger writing to the command's stderr.
func (o *rootOptions) newLogger(cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if o.debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	logger.Debugf("log level %s", logger.Level)

	return logger
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "tabuqbf",
		Short:        "Tabu search for quadratic binary functions with prohibited triples",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "use debug log level")

	cmd.AddCommand(
		newSolveCmd(o),
		newBatchCmd(o),
		newGenerateCmd(o),
	)

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

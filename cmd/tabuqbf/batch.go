// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tabuqbf/experiment"
)

type batchOptions struct {
	configPath  string
	metricsFile string
}

func newBatchCmd(root *rootOptions) *cobra.Command {
	o := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every tenure × experiment combination over a list of instances",
		Long: `Runs the experiment batch described by a YAML config (or the built-in
default study when --config is empty) and writes one results file per
instance into the configured output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return o.run(ctx, cmd, root.newLogger(cmd))
		},
	}
	cmd.Flags().StringVarP(&o.configPath, "config", "c", "", "path to the batch YAML config")
	cmd.Flags().StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")

	return cmd
}

func (o *batchOptions) run(ctx context.Context, cmd *cobra.Command, logger *logrus.Logger) error {
	cfg := experiment.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = experiment.LoadConfig(o.configPath); err != nil {
			return err
		}
	}

	r, err := experiment.NewRunner(cfg, logger)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"run":         r.RunID(),
		"instances":   len(cfg.Instances),
		"experiments": len(cfg.Experiments) * len(cfg.Tenures),
		"parallel":    cfg.Parallel,
	}).Info("batch started")

	results, runErr := r.Run(ctx)

	out := cmd.OutOrStdout()
	for _, res := range results {
		fmt.Fprintf(out, "%s\t%s\t%g\t%.3fs\n", res.Instance, res.Title, res.Value(), res.Elapsed.Seconds())
	}
	if o.metricsFile != "" {
		if err = r.Metrics().WriteTextfile(o.metricsFile); err != nil {
			logger.WithError(err).Errorf("cannot write metrics to %s", o.metricsFile)
		}
	}

	return runErr
}

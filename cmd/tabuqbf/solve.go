// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/tabuqbf/experiment"
	"github.com/katalvlaran/tabuqbf/instance"
	"github.com/katalvlaran/tabuqbf/tabu"
)

type solveOptions struct {
	instancePath string
	tenure       int
	iterations   int
	seed         int64
	constraint   string
	trace        bool
	experiment   experiment.Experiment
}

// addSolveFlags binds the single-run configuration surface to fs.
func addSolveFlags(fs *pflag.FlagSet, o *solveOptions) {
	fs.StringVarP(&o.instancePath, "instance", "i", "", "path to the instance file")
	fs.IntVar(&o.tenure, "tenure", 20, "tabu tenure; the tabu queue holds 2·tenure slots")
	fs.IntVar(&o.iterations, "iterations", 1000, "number of search iterations")
	fs.Int64Var(&o.seed, "seed", 0, "random seed (0 selects a fixed default)")
	fs.StringVar(&o.constraint, "constraint", string(experiment.ConstraintPrune), "prohibited triples: none, validate or prune")
	fs.BoolVar(&o.trace, "trace", false, "log incumbent improvements at debug level")

	fs.StringVar(&o.experiment.LocalSearch, "local-search", tabu.BestImproving.String(), "first-improving or best-improving")
	fs.StringVar(&o.experiment.Strategy, "strategy", tabu.KindDefault, "default, prob or diversification")
	fs.Float64Var(&o.experiment.Probability, "probability", 0.5, "sampling probability in (0,1] for the prob strategy")
	fs.IntVar(&o.experiment.DiversificationStep, "diversification-step", 100, "restart period for the diversification strategy")
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	o := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single instance and print the best solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, root.newLogger(cmd))
		},
	}
	addSolveFlags(cmd.Flags(), o)
	_ = cmd.MarkFlagRequired("instance")

	return cmd
}

func (o *solveOptions) run(cmd *cobra.Command, logger *logrus.Logger) error {
	o.experiment.Key = "SOLVE"
	if err := o.experiment.Validate(); err != nil {
		return err
	}

	m, err := instance.Load(o.instancePath)
	if err != nil {
		return err
	}
	log := logger.WithFields(logrus.Fields{
		"instance": o.instancePath,
		"n":        m.Rows(),
		"strategy": o.experiment.Strategy,
	})

	opts := tabu.DefaultOptions()
	opts.Tenure = o.tenure
	opts.Iterations = o.iterations
	opts.Seed = o.seed
	if o.trace {
		seen := 0.0
		opts.Trace = func(st tabu.Step) {
			if st.Incumbent < seen {
				seen = st.Incumbent
				log.WithFields(logrus.Fields{
					"iteration": st.Iteration,
					"value":     -st.Incumbent,
					"size":      st.Size,
					"move":      st.Move.String(),
				}).Debug("incumbent improved")
			}
			if st.Restart {
				log.WithFields(logrus.Fields{
					"iteration": st.Iteration,
					"from":      st.PreRestartSize,
					"to":        st.RestartSize,
				}).Debug("diversification restart")
			}
		}
	}

	eng, err := o.experiment.BuildWithOptions(opts, m, experiment.Constraint(o.constraint))
	if err != nil {
		return err
	}

	start := time.Now()
	best, err := eng.Solve()
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	best.Cost = -best.Cost

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Best solution: %s\n", best)
	fmt.Fprintf(out, "Value: %s\n", strconv.FormatFloat(best.Cost, 'f', -1, 64))
	fmt.Fprintf(out, "Time: %sseg\n", strconv.FormatFloat(elapsed.Seconds(), 'f', 3, 64))
	log.WithField("seconds", elapsed.Seconds()).Debug("solve finished")

	return nil
}

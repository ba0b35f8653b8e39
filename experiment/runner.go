// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tabuqbf/instance"
	"github.com/katalvlaran/tabuqbf/matrix"
	"github.com/katalvlaran/tabuqbf/tabu"
)

// Runner executes a Config.
//
// Instances run concurrently, at most Config.Parallel at a time; the
// configurations of one instance run sequentially and share its results
// file. An instance that cannot be loaded is logged and skipped. A results
// file that cannot be written is logged; its runs still complete and are
// reported.
type Runner struct {
	cfg     *Config
	log     logrus.FieldLogger
	metrics *Metrics
	sys     SysInfo
	runID   string
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithMetrics records runs into m instead of a fresh Metrics.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// WithSysInfo overrides the host description written to results headers.
func WithSysInfo(s SysInfo) RunnerOption {
	return func(r *Runner) { r.sys = s }
}

// WithRunID fixes the batch id instead of a random UUID.
func WithRunID(id string) RunnerOption {
	return func(r *Runner) { r.runID = id }
}

// NewRunner validates cfg and prepares a batch.
func NewRunner(cfg *Config, log logrus.FieldLogger, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{cfg: cfg, log: log}
	for _, opt := range opts {
		opt(r)
	}
	if r.metrics == nil {
		r.metrics = NewMetrics()
	}
	if r.runID == "" {
		r.runID = uuid.New().String()
	}
	if r.sys == (SysInfo{}) {
		r.sys = CollectSysInfo()
	}
	r.log = r.log.WithField("run", r.runID)

	return r, nil
}

// RunID returns the batch id.
func (r *Runner) RunID() string { return r.runID }

// Metrics returns the collectors the runner records into.
func (r *Runner) Metrics() *Metrics { return r.metrics }

// Run executes every instance and returns the results in config order.
// It stops early only when ctx is cancelled or an engine cannot be built.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		r.log.WithError(err).Errorf("cannot create output directory %s", r.cfg.OutputDir)
	}

	perInstance := make([][]Result, len(r.cfg.Instances))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallel)
	for i, name := range r.cfg.Instances {
		i, name := i, name
		g.Go(func() error {
			res, err := r.runInstance(ctx, name)
			perInstance[i] = res
			return err
		})
	}
	err := g.Wait()

	var out []Result
	for _, res := range perInstance {
		out = append(out, res...)
	}

	return out, err
}

func (r *Runner) runInstance(ctx context.Context, name string) ([]Result, error) {
	log := r.log.WithField("instance", name)

	m, err := instance.Load(filepath.Join(r.cfg.InstanceDir, name))
	if err != nil {
		log.WithError(err).Error("error reading instance, skipping")
		r.metrics.failed("", Skipped)
		return nil, nil
	}

	var w io.Writer
	path := filepath.Join(r.cfg.OutputDir, name+".txt")
	f, err := os.Create(path)
	if err != nil {
		log.WithError(err).Errorf("cannot create results file %s", path)
	} else {
		defer f.Close()
		w = f
		if err = writeHeader(w, r.runID, r.sys); err != nil {
			log.WithError(err).Errorf("error writing in file %s", path)
		}
	}

	var results []Result
	for _, tenure := range r.cfg.Tenures {
		for _, exp := range r.cfg.Experiments {
			if err = ctx.Err(); err != nil {
				return results, err
			}
			res, err := r.runOne(name, m, tenure, exp, log)
			if err != nil {
				r.metrics.failed(exp.Strategy, Failed)
				return results, fmt.Errorf("%s %s: %w", name, exp.Title(tenure), err)
			}
			results = append(results, res)

			if w == nil {
				continue
			}
			if err = writeEntry(w, res); err != nil {
				log.WithError(err).Errorf("error writing in file: %s", res.Title)
			}
		}
	}

	return results, nil
}

func (r *Runner) runOne(name string, m matrix.Matrix, tenure int, exp Experiment, log logrus.FieldLogger) (Result, error) {
	title := exp.Title(tenure)
	log = log.WithField("experiment", title)
	log.Info("running experiment")

	seed := tabu.DeriveSeed(r.cfg.Seed, xxhash.Sum64String(name+"/"+title))
	eng, err := exp.Build(tenure, r.cfg.Iterations, seed, m, r.cfg.Constraint)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	best, err := eng.Solve()
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, err
	}
	best.Cost = -best.Cost

	res := Result{
		Instance: name,
		Title:    title,
		Strategy: exp.Strategy,
		Best:     best,
		Elapsed:  elapsed,
	}
	r.metrics.observe(res)
	log.WithFields(logrus.Fields{
		"value":   res.Value(),
		"size":    best.Len(),
		"seconds": seconds(elapsed),
	}).Info("experiment finished")

	return res, nil
}

// SPDX-License-Identifier: MIT

package experiment_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabuqbf/experiment"
	"github.com/katalvlaran/tabuqbf/instance"
	"github.com/katalvlaran/tabuqbf/qbf"
	"github.com/katalvlaran/tabuqbf/tabu"
	"github.com/katalvlaran/tabuqbf/triples"
)

func TestDefaultConfig(t *testing.T) {
	cfg := experiment.DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Len(t, cfg.Instances, 7)
	assert.Equal(t, []int{20, 100}, cfg.Tenures)
	assert.Equal(t, 10000, cfg.Iterations)
	require.Len(t, cfg.Experiments, 12)

	keys := make([]string, 0, len(cfg.Experiments))
	for _, e := range cfg.Experiments {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{
		"DEFAULT_FIRST", "DEFAULT_BEST",
		"PROB_0.25_FIRST", "PROB_0.25_BEST",
		"PROB_0.5_FIRST", "PROB_0.5_BEST",
		"PROB_0.75_FIRST", "PROB_0.75_BEST",
		"DIV_100_FIRST", "DIV_100_BEST",
		"DIV_10_FIRST", "DIV_10_BEST",
	}, keys)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
instances: [qbf010]
iterations: 50
tenures: [3]
parallel: 2
constraint: validate
experiments:
  - key: P
    localSearch: best-improving
    strategy: prob
    probability: 0.5
`), 0o644))

	cfg, err := experiment.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"qbf010"}, cfg.Instances)
	assert.Equal(t, 50, cfg.Iterations)
	assert.Equal(t, experiment.ConstraintValidate, cfg.Constraint)
	assert.Equal(t, "instances", cfg.InstanceDir)
	require.Len(t, cfg.Experiments, 1)
	assert.Equal(t, 0.5, cfg.Experiments[0].Probability)

	_, err = experiment.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_ValidateErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*experiment.Config)
	}{
		{"no instances", func(c *experiment.Config) { c.Instances = nil }},
		{"zero iterations", func(c *experiment.Config) { c.Iterations = 0 }},
		{"zero tenure", func(c *experiment.Config) { c.Tenures = []int{20, 0} }},
		{"zero parallel", func(c *experiment.Config) { c.Parallel = 0 }},
		{"bad constraint", func(c *experiment.Config) { c.Constraint = "strict" }},
		{"bad local search", func(c *experiment.Config) { c.Experiments[0].LocalSearch = "steepest" }},
		{"bad strategy", func(c *experiment.Config) { c.Experiments[0].Strategy = "annealing" }},
		{"prob without p", func(c *experiment.Config) { c.Experiments[2].Probability = 0 }},
		{"p above one", func(c *experiment.Config) { c.Experiments[2].Probability = 1.5 }},
		{"div without step", func(c *experiment.Config) { c.Experiments[8].DiversificationStep = 0 }},
		{"duplicate key", func(c *experiment.Config) { c.Experiments[1].Key = c.Experiments[0].Key }},
		{"instance path", func(c *experiment.Config) { c.Instances[0] = "../qbf020" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := experiment.DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), experiment.ErrInvalidConfig)
		})
	}
}

// TestExperiment_Build checks every default experiment under every constraint.
func TestExperiment_Build(t *testing.T) {
	m, err := instance.Generate(12, instance.GenOptions{Min: -5, Max: 5, Seed: 4})
	require.NoError(t, err)
	checker, err := qbf.New(m, qbf.WithTriples(triples.Generate(12)))
	require.NoError(t, err)

	for _, c := range []experiment.Constraint{experiment.ConstraintNone, experiment.ConstraintValidate, experiment.ConstraintPrune} {
		for _, exp := range experiment.DefaultConfig().Experiments {
			eng, err := exp.Build(3, 30, 1, m, c)
			require.NoError(t, err, "%s %s", c, exp.Key)
			best, err := eng.Solve()
			require.NoError(t, err)
			if c != experiment.ConstraintNone {
				assert.True(t, checker.Feasible(best), "%s %s", c, exp.Key)
			}
		}
	}

	_, err = experiment.DefaultConfig().Experiments[0].Build(3, 30, 1, m, "strict")
	assert.ErrorIs(t, err, experiment.ErrInvalidConfig)

	bad := experiment.Experiment{Key: "X", LocalSearch: "best-improving", Strategy: "prob", Probability: 2}
	_, err = bad.Build(3, 30, 1, m, experiment.ConstraintNone)
	assert.ErrorIs(t, err, tabu.ErrBadProbability)
}

func writeInstance(t *testing.T, dir, name string, n int, seed int64) {
	t.Helper()
	m, err := instance.Generate(n, instance.GenOptions{Min: -10, Max: 10, Seed: seed})
	require.NoError(t, err)
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, instance.Write(f, m))
}

func smallConfig(t *testing.T) *experiment.Config {
	t.Helper()
	dir := t.TempDir()
	inDir := filepath.Join(dir, "instances")
	require.NoError(t, os.Mkdir(inDir, 0o755))
	writeInstance(t, inDir, "qbf010", 10, 1)
	writeInstance(t, inDir, "qbf015", 15, 2)

	cfg := experiment.DefaultConfig()
	cfg.Instances = []string{"qbf010", "missing", "qbf015"}
	cfg.InstanceDir = inDir
	cfg.OutputDir = filepath.Join(dir, "results")
	cfg.Iterations = 40
	cfg.Tenures = []int{2, 5}
	cfg.Parallel = 2
	cfg.Experiments = cfg.Experiments[:3]

	return cfg
}

// TestRunner_Run runs a small batch and checks results, files, logs and metrics.
func TestRunner_Run(t *testing.T) {
	cfg := smallConfig(t)
	logger, hook := logtest.NewNullLogger()
	r, err := experiment.NewRunner(cfg, logger,
		experiment.WithRunID("run-1"),
		experiment.WithSysInfo(experiment.SysInfo{Platform: "linux", CPU: "cpu", RAM: "1 GB"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "run-1", r.RunID())

	results, err := r.Run(context.Background())
	require.NoError(t, err)
	// 2 loadable instances × 2 tenures × 3 experiments.
	require.Len(t, results, 12)
	assert.Equal(t, "qbf010", results[0].Instance)
	assert.Equal(t, "TENURE=2_DEFAULT_FIRST", results[0].Title)
	assert.Equal(t, "qbf015", results[11].Instance)
	assert.Equal(t, "TENURE=5_PROB_0.25_FIRST", results[11].Title)
	for _, res := range results {
		assert.GreaterOrEqual(t, res.Value(), 0.0, res.Title)
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "qbf010.txt"))
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "Run: run-1\nSystem: linux, cpu, 1 GB\n\n"))
	assert.Contains(t, text, "TENURE=2_DEFAULT_FIRST\nBest solution: Solution: cost=[")
	assert.Equal(t, 6, strings.Count(text, "Best solution: "))
	assert.Equal(t, 6, strings.Count(text, "seg\n\n"))
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "missing.txt"))

	var skipped bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel && e.Data["instance"] == "missing" {
			skipped = true
		}
	}
	assert.True(t, skipped)

	families, err := r.Metrics().Registry().Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "tabuqbf_runs_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			status := ""
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == experiment.StatusLabel {
					status = lp.GetValue()
				}
			}
			counts[status] += metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 12.0, counts[experiment.Succeeded])
	assert.Equal(t, 1.0, counts[experiment.Skipped])

	prom := filepath.Join(t.TempDir(), "tabuqbf.prom")
	require.NoError(t, r.Metrics().WriteTextfile(prom))
	raw, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "tabuqbf_best_value")
}

// TestRunner_SkipsOversizedInstance keeps the batch going past an instance
// whose header announces an unallocatable dimension.
func TestRunner_SkipsOversizedInstance(t *testing.T) {
	cfg := smallConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.InstanceDir, "huge"), []byte("2000000000 1 2 3"), 0o644))
	cfg.Instances = []string{"huge", "qbf010"}
	cfg.Parallel = 1
	cfg.Tenures = []int{2}
	cfg.Experiments = cfg.Experiments[:1]

	logger, hook := logtest.NewNullLogger()
	r, err := experiment.NewRunner(cfg, logger, experiment.WithSysInfo(experiment.SysInfo{Platform: "x", CPU: "y", RAM: "z"}))
	require.NoError(t, err)

	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "qbf010", results[0].Instance)
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "huge.txt"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "qbf010.txt"))

	var logged error
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel && e.Data["instance"] == "huge" {
			logged, _ = e.Data[logrus.ErrorKey].(error)
		}
	}
	assert.ErrorIs(t, logged, instance.ErrBadDimension)
}

// TestRunner_Deterministic reruns the same batch and compares values.
func TestRunner_Deterministic(t *testing.T) {
	cfg := smallConfig(t)
	run := func() []experiment.Result {
		logger, _ := logtest.NewNullLogger()
		r, err := experiment.NewRunner(cfg, logger, experiment.WithSysInfo(experiment.SysInfo{Platform: "x", CPU: "y", RAM: "z"}))
		require.NoError(t, err)
		res, err := r.Run(context.Background())
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Best, b[i].Best, a[i].Title)
	}
}

func TestRunner_Cancelled(t *testing.T) {
	cfg := smallConfig(t)
	logger, _ := logtest.NewNullLogger()
	r, err := experiment.NewRunner(cfg, logger, experiment.WithSysInfo(experiment.SysInfo{Platform: "x", CPU: "y", RAM: "z"}))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRunner_InvalidConfig(t *testing.T) {
	cfg := experiment.DefaultConfig()
	cfg.Tenures = nil
	_, err := experiment.NewRunner(cfg, logrus.New())
	assert.ErrorIs(t, err, experiment.ErrInvalidConfig)
}

// SPDX-License-Identifier: MIT

package experiment

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	StrategyLabel   = "strategy"
	StatusLabel     = "status"
	InstanceLabel   = "instance"
	ExperimentLabel = "experiment"

	Succeeded = "succeeded"
	Failed    = "failed"
	Skipped   = "skipped"
)

// Metrics holds the batch collectors on a private registry so that several
// runners (and tests) never collide on the default one.
type Metrics struct {
	registry *prometheus.Registry

	runs    *prometheus.CounterVec
	seconds *prometheus.HistogramVec
	best    *prometheus.GaugeVec
}

// NewMetrics creates and registers the batch collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tabuqbf_runs_total",
				Help: "Number of tabu search runs by strategy and outcome",
			},
			[]string{StrategyLabel, StatusLabel},
		),
		seconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tabuqbf_run_seconds",
				Help:    "Wall-clock duration of a single tabu search run",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{StrategyLabel},
		),
		best: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tabuqbf_best_value",
				Help: "Best objective value found per instance and experiment",
			},
			[]string{InstanceLabel, ExperimentLabel},
		),
	}
	m.registry.MustRegister(m.runs, m.seconds, m.best)

	return m
}

// Registry exposes the private registry, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) observe(r Result) {
	m.runs.WithLabelValues(r.Strategy, Succeeded).Inc()
	m.seconds.WithLabelValues(r.Strategy).Observe(r.Elapsed.Seconds())
	m.best.WithLabelValues(r.Instance, r.Title).Set(r.Value())
}

func (m *Metrics) failed(strategy, status string) {
	m.runs.WithLabelValues(strategy, status).Inc()
}

// WriteTextfile dumps every collector in the text exposition format, for
// node_exporter's textfile collector or plain inspection.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

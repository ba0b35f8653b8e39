// SPDX-License-Identifier: MIT

package tabu

import (
	"fmt"
	"strings"
)

// LocalSearch selects how a scan picks its move.
//
//   - FirstImproving: each move kind stops at the first admissible candidate
//     that beats the running minimum.
//   - BestImproving: every candidate of every kind is scanned; the global
//     minimum wins, first encountered on ties.
type LocalSearch int

const (
	// FirstImproving stops a move kind at its first improving candidate.
	FirstImproving LocalSearch = iota

	// BestImproving scans every candidate.
	BestImproving
)

// String returns the configuration name of the mode.
func (l LocalSearch) String() string {
	switch l {
	case FirstImproving:
		return "first-improving"
	case BestImproving:
		return "best-improving"
	default:
		return fmt.Sprintf("LocalSearch(%d)", int(l))
	}
}

// ParseLocalSearch maps "first-improving" / "best-improving" to a mode.
// Matching is case-insensitive; surrounding spaces are ignored.
func ParseLocalSearch(s string) (LocalSearch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first-improving", "first":
		return FirstImproving, nil
	case "best-improving", "best":
		return BestImproving, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownLocalSearch)
}

// Options configures an Engine.
//
// Fields:
//   - Tenure: half-length of the tabu queue; the queue holds 2·Tenure slots.
//   - Iterations: number of strategy steps after construction.
//   - Seed: RNG seed; 0 selects a fixed default stream. Same seed ⇒ same run.
//   - GreedyStart: build the initial solution with improving greedy insertions;
//     when false the search starts from the empty solution.
//   - Trace: optional callback invoked once per iteration. Must not retain
//     the Move beyond the call or mutate engine state.
type Options struct {
	Tenure      int
	Iterations  int
	Seed        int64
	GreedyStart bool
	Trace       func(Step)
}

// DefaultOptions returns Tenure 20, 1000 iterations, default seed, greedy start.
func DefaultOptions() Options {
	return Options{
		Tenure:      20,
		Iterations:  1000,
		Seed:        0,
		GreedyStart: true,
	}
}

// validateOptions checks the numeric fields independently of any evaluator.
func validateOptions(o Options) error {
	if o.Tenure < 1 {
		return fmt.Errorf("tenure=%d: %w", o.Tenure, ErrBadTenure)
	}
	if o.Iterations < 1 {
		return fmt.Errorf("iterations=%d: %w", o.Iterations, ErrBadIterations)
	}

	return nil
}

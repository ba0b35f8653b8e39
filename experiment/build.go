// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"

	"github.com/katalvlaran/tabuqbf/matrix"
	"github.com/katalvlaran/tabuqbf/qbf"
	"github.com/katalvlaran/tabuqbf/tabu"
	"github.com/katalvlaran/tabuqbf/triples"
)

// Title returns the results-file heading of e under tenure, e.g. "TENURE=20_DEFAULT_FIRST".
func (e Experiment) Title(tenure int) string {
	return fmt.Sprintf("TENURE=%d_%s", tenure, e.Key)
}

// BuildStrategy builds the tabu strategy the experiment names.
func (e Experiment) BuildStrategy() (tabu.Strategy, error) {
	mode, err := tabu.ParseLocalSearch(e.LocalSearch)
	if err != nil {
		return nil, fmt.Errorf("experiment %s: %w", e.Key, err)
	}
	s, err := tabu.NewStrategy(e.Strategy, mode, e.Probability, e.DiversificationStep)
	if err != nil {
		return nil, fmt.Errorf("experiment %s: %w", e.Key, err)
	}

	return s, nil
}

// Build wires a maximizing engine for m with default options apart from
// tenure, iterations and seed.
func (e Experiment) Build(tenure, iterations int, seed int64, m matrix.Matrix, constraint Constraint) (*tabu.Engine, error) {
	opts := tabu.DefaultOptions()
	opts.Tenure = tenure
	opts.Iterations = iterations
	opts.Seed = seed

	return e.BuildWithOptions(opts, m, constraint)
}

// BuildWithOptions wires QBF wrapped by qbf.Inverse, the experiment's
// strategy, and the triple mechanism chosen by constraint.
func (e Experiment) BuildWithOptions(opts tabu.Options, m matrix.Matrix, constraint Constraint) (*tabu.Engine, error) {
	strategy, err := e.BuildStrategy()
	if err != nil {
		return nil, err
	}

	var (
		qopts []qbf.Option
		extra []tabu.EngineOption
	)
	switch constraint {
	case ConstraintNone, "":
	case ConstraintValidate:
		qopts = append(qopts, qbf.WithTriples(triples.Generate(m.Rows())))
	case ConstraintPrune:
		extra = append(extra, tabu.WithIndex(triples.NewIndex(triples.Generate(m.Rows()))))
	default:
		return nil, fmt.Errorf("%w: constraint %q", ErrInvalidConfig, constraint)
	}

	f, err := qbf.New(m, qopts...)
	if err != nil {
		return nil, err
	}
	inv, err := qbf.NewInverse(f)
	if err != nil {
		return nil, err
	}

	return tabu.New(inv, strategy, opts, extra...)
}

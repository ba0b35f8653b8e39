// SPDX-License-Identifier: MIT

package tabu

import "errors"

var (
	// ErrBadTenure indicates Tenure < 1.
	ErrBadTenure = errors.New("tabu: tenure must be positive")

	// ErrBadIterations indicates Iterations < 1.
	ErrBadIterations = errors.New("tabu: iterations must be positive")

	// ErrBadProbability indicates a sampling probability outside [0, 1] or NaN.
	ErrBadProbability = errors.New("tabu: probability must be in [0,1]")

	// ErrBadStep indicates a diversification step < 1.
	ErrBadStep = errors.New("tabu: diversification step must be positive")

	// ErrUnknownLocalSearch is returned by ParseLocalSearch for unrecognized names.
	ErrUnknownLocalSearch = errors.New("tabu: unknown local search")

	// ErrUnknownStrategy is returned by NewStrategy for unrecognized kinds.
	ErrUnknownStrategy = errors.New("tabu: unknown strategy")

	// ErrNilEvaluator is returned by New when the evaluator is nil.
	ErrNilEvaluator = errors.New("tabu: nil evaluator")

	// ErrNilStrategy is returned by New when the strategy is nil.
	ErrNilStrategy = errors.New("tabu: nil strategy")

	// ErrDomainMismatch indicates a triple index referring to indices outside the evaluator domain.
	ErrDomainMismatch = errors.New("tabu: triple index does not match evaluator domain")

	// ErrNonFiniteCost is returned by Solve when a full evaluation yields NaN or ±Inf.
	ErrNonFiniteCost = errors.New("tabu: non-finite solution cost")
)

// SPDX-License-Identifier: MIT

// Package tabuqbf is a tabu-search toolkit for maximizing quadratic binary
// functions f(x) = xᵗAx under a set of prohibited triples.
//
// What is in the module?
//
//	• matrix     – bounds-checked dense storage + shape/value validators
//	• instance   – the whitespace-separated upper-triangular instance format (read, write, generate)
//	• triples    – the deterministic prohibited-triple family and its pair index
//	• qbf        – the evaluator: O(k²) full evaluation, O(n) insertion/removal/exchange deltas
//	• tabu       – the search engine and its strategies (default, prob, diversification)
//	• experiment – YAML-configured batches, results files, Prometheus metrics
//	• cmd/tabuqbf – the CLI (solve, batch, generate)
//
// Quick start:
//
//	m, _ := instance.Load("instances/qbf040")
//	eng, _ := experiment.Experiment{
//		Key: "DEFAULT_BEST", LocalSearch: "best-improving", Strategy: "default",
//	}.Build(20, 10000, 0, m, experiment.ConstraintPrune)
//	best, _ := eng.Solve()
//	fmt.Println(-best.Cost, best.Elements)
//
// The engine minimizes; experiment and the CLI wrap the evaluator with
// qbf.Inverse, so reported values are the maximization objective.
package tabuqbf

// SPDX-License-Identifier: MIT

// Package tabu implements Tabu Search over a qbf.Evaluator.
//
// What:
//
//	A single Engine drives the search; a Strategy decides each step's move.
//	Three strategies are provided:
//	  - Exhaustive: scans insertions, removals and exchanges (first- or best-improving).
//	  - Probabilistic: evaluates each candidate only if a uniform draw is below P.
//	  - Diversification: every Step-th iteration rebuilds a smaller random solution,
//	    then scans exhaustively.
//
// Sign convention:
//
//	The engine MINIMIZES cost. To maximize a QBF, wrap it with qbf.Inverse.
//	Deltas that are ±Inf (qbf.Rejected) are never selected.
//
// Lifecycle (State):
//
//	Constructing: greedy improving insertions from the empty solution (Options.GreedyStart).
//	Searching: Options.Iterations strategy steps; after each step the full cost is
//	re-evaluated and the incumbent replaced when strictly better.
//	Terminated: Solve returns a copy of the incumbent.
//
// Tabu memory:
//
//	A FIFO of exactly 2·Tenure slots. Every step pushes the removed index (or an empty
//	slot) and then the inserted index (or an empty slot), evicting the front each time.
//	A tabu index may still be chosen when the move beats the incumbent (aspiration).
//
// Prohibited triples (two interchangeable mechanisms):
//
//	Validation: build the evaluator with qbf.WithTriples; infeasible moves cost ±Inf.
//	Pruning: pass WithIndex(triples.NewIndex(...)); the candidate list drops every
//	index that would complete a triple with two selected ones.
//
// Determinism:
//
//	Each Solve reseeds its RNG from Options.Seed; same inputs ⇒ same result.
//	Draw order: construction tie-breaks, then per iteration the strategy's draws in
//	scan order (insertion positions, removal positions, then any new positions
//	visited by the exchange scan), and diversification's size and index draws.
//
// Concurrency:
//
//	An Engine and its Evaluator are single-goroutine objects. Run independent
//	engines in parallel, one Evaluator each.
package tabu

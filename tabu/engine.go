// SPDX-License-Identifier: MIT

package tabu

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/tabuqbf/qbf"
	"github.com/katalvlaran/tabuqbf/triples"
)

// State is the engine lifecycle phase.
type State int

const (
	Constructing State = iota
	Searching
	Terminated
)

func (s State) String() string {
	switch s {
	case Constructing:
		return "constructing"
	case Searching:
		return "searching"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Step is the per-iteration trace record passed to Options.Trace.
// Costs are in the engine's minimization sense.
type Step struct {
	Iteration int
	Move      Move
	Current   float64
	Incumbent float64
	TabuLen   int
	Size      int

	// Restart is set when the strategy rebuilt the solution before scanning.
	Restart        bool
	PreRestartSize int
	RestartSize    int
}

// EngineOption configures optional collaborators of an Engine.
type EngineOption func(*Engine)

// WithIndex enables candidate pruning by prohibited triples.
func WithIndex(idx *triples.Index) EngineOption {
	return func(e *Engine) { e.index = idx }
}

// Engine owns the current and incumbent solutions, the candidate list and
// the tabu queue of one search run. Not safe for concurrent use.
type Engine struct {
	eval     qbf.Evaluator
	strategy Strategy
	opts     Options
	index    *triples.Index
	n        int

	rng       *rand.Rand
	state     State
	iteration int
	current   *qbf.Solution
	incumbent *qbf.Solution
	selected  []bool
	cl        *candidateList
	tl        *tabuQueue
	prune     *pruner // nil without an index

	restarted      bool
	preRestartSize int
	restartSize    int
}

// validator is implemented by strategies with parameters to check.
type validator interface {
	validate() error
}

// New builds an engine.
//
// Validation:
//   - eval and strategy must be non-nil;
//   - Tenure ≥ 1 and Iterations ≥ 1;
//   - strategy parameters must be in range (probability, step, mode);
//   - every triple of the index must lie inside the evaluator's domain.
func New(eval qbf.Evaluator, strategy Strategy, opts Options, extra ...EngineOption) (*Engine, error) {
	if eval == nil {
		return nil, ErrNilEvaluator
	}
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	if err := validateOptions(opts); err != nil {
		return nil, fmt.Errorf("tabu.New: %w", err)
	}
	if v, ok := strategy.(validator); ok {
		if err := v.validate(); err != nil {
			return nil, fmt.Errorf("tabu.New: %s: %w", strategy.Name(), err)
		}
	}

	e := &Engine{
		eval:     eval,
		strategy: strategy,
		opts:     opts,
		n:        eval.DomainSize(),
	}
	for _, opt := range extra {
		opt(e)
	}
	if e.index != nil {
		for _, t := range e.index.Triples() {
			for _, v := range t.Members() {
				if v < 0 || v >= e.n {
					return nil, fmt.Errorf("tabu.New: triple %v, n=%d: %w", t, e.n, ErrDomainMismatch)
				}
			}
		}
		e.prune = newPruner(e.index, e.n)
	}
	e.selected = make([]bool, e.n)
	e.cl = newCandidateList(e.n)
	e.tl = newTabuQueue(opts.Tenure, e.n)
	e.reset()

	return e, nil
}

// reset restores the initial state: empty solution, full candidate list,
// tabu queue of empty slots, freshly seeded RNG.
func (e *Engine) reset() {
	e.rng = rngFromSeed(e.opts.Seed)
	e.state = Constructing
	e.iteration = 0
	for i := range e.selected {
		e.selected[i] = false
	}
	e.current = qbf.NewSolution()
	e.eval.Evaluate(e.current)
	e.incumbent = e.current.Clone()
	e.cl.clear()
	for i := 0; i < e.n; i++ {
		e.cl.add(i)
	}
	e.tl.reset()
	if e.prune != nil {
		e.prune.reset()
	}
	e.restarted = false
}

// Solve runs construction and the iteration budget, then returns a copy of
// the incumbent. Every call starts over from the initial state and seed.
//
// Complexity per iteration is dominated by the strategy's scan:
// O(|CL|·k) delta evaluations of O(k) each for the exhaustive strategies.
func (e *Engine) Solve() (*qbf.Solution, error) {
	e.reset()
	if e.opts.GreedyStart {
		e.construct()
	}
	e.incumbent = e.current.Clone()

	e.state = Searching
	for e.iteration = 1; e.iteration <= e.opts.Iterations; e.iteration++ {
		e.restarted = false
		m := e.strategy.Next(e)
		e.apply(m)

		cost := e.current.Cost
		if math.IsNaN(cost) || math.IsInf(cost, 0) {
			e.state = Terminated
			return e.incumbent.Clone(), fmt.Errorf("iteration %d: %w", e.iteration, ErrNonFiniteCost)
		}
		if cost < e.incumbent.Cost {
			e.incumbent = e.current.Clone()
		}
		if e.opts.Trace != nil {
			e.opts.Trace(e.step(m))
		}
	}
	e.state = Terminated

	return e.incumbent.Clone(), nil
}

// construct inserts, while it strictly improves the cost, a random candidate
// among those with the minimum insertion delta. It stops when no candidate
// improves or the candidate list is empty. The tabu queue is not touched.
func (e *Engine) construct() {
	rcl := make([]int, 0, e.n)
	for e.cl.len() > 0 {
		best := math.Inf(1)
		rcl = rcl[:0]
		for p := 0; p < e.cl.len(); p++ {
			c := e.cl.at(p)
			d := e.eval.InsertionCost(c, e.current)
			switch {
			case qbf.Rejected(d):
			case d < best:
				best = d
				rcl = append(rcl[:0], c)
			case d == best:
				rcl = append(rcl, c)
			}
		}
		if len(rcl) == 0 || !(best < 0) {
			return
		}
		e.insert(rcl[e.rng.Intn(len(rcl))])
		e.eval.Evaluate(e.current)
	}
}

// apply performs the removal half then the insertion half of m, pushing one
// tabu slot for each, and re-evaluates the full cost.
func (e *Engine) apply(m Move) {
	e.tl.push(m.Out)
	if m.Out.Present && e.selected[m.Out.Index] {
		e.remove(m.Out.Index)
	}
	e.tl.push(m.In)
	if m.In.Present && !e.selected[m.In.Index] {
		e.insert(m.In.Index)
	}
	e.eval.Evaluate(e.current)
}

func (e *Engine) insert(i int) {
	e.current.Add(i)
	e.selected[i] = true
	e.cl.remove(i)
	if e.prune != nil {
		e.prune.inserted(i, e.current.Elements, e.cl.remove)
	}
}

func (e *Engine) remove(i int) {
	e.current.Remove(i)
	e.selected[i] = false
	if e.prune != nil {
		e.prune.removed(i, e.current.Elements, func(c int) {
			if !e.selected[c] {
				e.cl.add(c)
			}
		})
		if e.prune.isBlocked(i) {
			return
		}
	}
	e.cl.add(i)
}

// restart discards the current solution and rebuilds it from k random domain
// draws. Tabu, duplicate, blocked and rejected picks are skipped, so the
// rebuilt solution has fewer than k+1 elements and stays feasible.
func (e *Engine) restart(k int) {
	e.restarted = true
	e.preRestartSize = e.current.Len()

	for _, s := range e.current.Elements {
		e.selected[s] = false
	}
	e.current = qbf.NewSolution()
	if e.prune != nil {
		e.prune.reset()
	}
	e.cl.clear()
	for i := 0; i < e.n; i++ {
		e.cl.add(i)
	}

	for d := 0; d < k; d++ {
		c := e.rng.Intn(e.n)
		if !e.cl.contains(c) || e.tl.contains(c) {
			continue
		}
		if qbf.Rejected(e.eval.InsertionCost(c, e.current)) {
			continue
		}
		e.insert(c)
	}
	e.eval.Evaluate(e.current)
	e.restartSize = e.current.Len()
}

// aspires reports whether applying delta would beat the incumbent.
func (e *Engine) aspires(delta float64) bool {
	return e.current.Cost+delta < e.incumbent.Cost
}

func (e *Engine) step(m Move) Step {
	st := Step{
		Iteration: e.iteration,
		Move:      m,
		Current:   e.current.Cost,
		Incumbent: e.incumbent.Cost,
		TabuLen:   e.tl.len(),
		Size:      e.current.Len(),
		Restart:   e.restarted,
	}
	if e.restarted {
		st.PreRestartSize = e.preRestartSize
		st.RestartSize = e.restartSize
	}

	return st
}

// State returns the lifecycle phase.
func (e *Engine) State() State { return e.state }

// Iteration returns the current 1-based iteration, 0 before searching.
func (e *Engine) Iteration() int { return e.iteration }

// Current returns a copy of the current solution.
func (e *Engine) Current() *qbf.Solution { return e.current.Clone() }

// Incumbent returns a copy of the best solution found so far.
func (e *Engine) Incumbent() *qbf.Solution { return e.incumbent.Clone() }

// Candidates returns the candidate list in enumeration order.
func (e *Engine) Candidates() []int { return e.cl.snapshot() }

// IsTabu reports whether i occupies a tabu slot.
func (e *Engine) IsTabu(i int) bool { return i >= 0 && i < e.n && e.tl.contains(i) }

// TabuLen returns the number of tabu slots, always 2·Tenure.
func (e *Engine) TabuLen() int { return e.tl.len() }

// Evaluator returns the evaluator the engine scores moves with.
func (e *Engine) Evaluator() qbf.Evaluator { return e.eval }

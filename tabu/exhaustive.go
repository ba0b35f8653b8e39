// SPDX-License-Identifier: MIT

package tabu

import (
	"fmt"

	"github.com/katalvlaran/tabuqbf/qbf"
)

// sampler filters scan positions. keepIn is asked for candidate-list
// positions and keepOut for solution positions; both may be asked again for
// the same position during the exchange scan and must answer consistently.
type sampler interface {
	keepIn(pos int) bool
	keepOut(pos int) bool
}

// scan looks for the lowest-delta admissible move in three phases sharing
// one running minimum: insertions over the candidate list, removals over the
// current solution, then exchanges over their cross product.
//
// Contracts:
//   - Admissible: the touched indices are not tabu, or the move beats the
//     incumbent (aspiration). An exchange needs both sides non-tabu.
//   - A candidate replaces the best only if its delta is strictly lower, so
//     the first one enumerated wins ties.
//   - FirstImproving ends a phase at its first replacement; in the exchange
//     phase that ends the whole nested scan.
//   - Rejected (infinite) deltas are skipped.
//   - s == nil evaluates every position.
//
// Returns a Move with neither side present when nothing is admissible.
func (e *Engine) scan(mode LocalSearch, s sampler) Move {
	var (
		best  = noMove()
		first = mode == FirstImproving
		cur   = e.current
		d     float64
	)

	for p := 0; p < e.cl.len(); p++ {
		if s != nil && !s.keepIn(p) {
			continue
		}
		c := e.cl.at(p)
		d = e.eval.InsertionCost(c, cur)
		if qbf.Rejected(d) || d >= best.Delta {
			continue
		}
		if !e.tl.contains(c) || e.aspires(d) {
			best = Move{In: Some(c), Delta: d}
			if first {
				break
			}
		}
	}

	for p := 0; p < cur.Len(); p++ {
		if s != nil && !s.keepOut(p) {
			continue
		}
		c := cur.Elements[p]
		d = e.eval.RemovalCost(c, cur)
		if qbf.Rejected(d) || d >= best.Delta {
			continue
		}
		if !e.tl.contains(c) || e.aspires(d) {
			best = Move{Out: Some(c), Delta: d}
			if first {
				break
			}
		}
	}

exchange:
	for i := 0; i < e.cl.len(); i++ {
		if s != nil && !s.keepIn(i) {
			continue
		}
		in := e.cl.at(i)
		for j := 0; j < cur.Len(); j++ {
			if s != nil && !s.keepOut(j) {
				continue
			}
			out := cur.Elements[j]
			d = e.eval.ExchangeCost(in, out, cur)
			if qbf.Rejected(d) || d >= best.Delta {
				continue
			}
			if (!e.tl.contains(in) && !e.tl.contains(out)) || e.aspires(d) {
				best = Move{In: Some(in), Out: Some(out), Delta: d}
				if first {
					break exchange
				}
			}
		}
	}

	return best
}

// Exhaustive evaluates every candidate of every move kind (subject to Mode).
type Exhaustive struct {
	Mode LocalSearch
}

func (x Exhaustive) Name() string { return KindDefault }

func (x Exhaustive) String() string { return fmt.Sprintf("%s(%s)", KindDefault, x.Mode) }

// Next returns the best admissible move of the current state.
func (x Exhaustive) Next(e *Engine) Move { return e.scan(x.Mode, nil) }

func (x Exhaustive) validate() error { return validateMode(x.Mode) }

func validateMode(m LocalSearch) error {
	if m != FirstImproving && m != BestImproving {
		return fmt.Errorf("%s: %w", m, ErrUnknownLocalSearch)
	}

	return nil
}

// SPDX-License-Identifier: MIT

package tabu

import (
	"fmt"
	"math"
)

// Probabilistic evaluates a candidate only if a uniform draw in [0,1) is
// below P. Draws are memoized per position for one iteration: the exchange
// scan reuses the draws of the insertion and removal scans and draws lazily
// for positions they never reached. Removals follow the same strict
// improvement rule as insertions and exchanges.
//
// P = 1 behaves like Exhaustive (while still consuming draws); P = 0 never
// evaluates anything, so only the tabu queue advances.
type Probabilistic struct {
	Mode LocalSearch
	P    float64
}

// probSampler adapts two draw caches to the sampler interface.
type probSampler struct {
	p       float64
	in, out *drawCache
}

func (s *probSampler) keepIn(pos int) bool  { return s.in.at(pos) < s.p }
func (s *probSampler) keepOut(pos int) bool { return s.out.at(pos) < s.p }

func (x Probabilistic) Name() string { return KindProbabilistic }

func (x Probabilistic) String() string {
	return fmt.Sprintf("%s(p=%g, %s)", KindProbabilistic, x.P, x.Mode)
}

// Next samples the neighborhood with fresh per-iteration draw caches.
func (x Probabilistic) Next(e *Engine) Move {
	s := &probSampler{
		p:   x.P,
		in:  newDrawCache(e.rng, e.cl.len()),
		out: newDrawCache(e.rng, e.current.Len()),
	}

	return e.scan(x.Mode, s)
}

func (x Probabilistic) validate() error {
	if math.IsNaN(x.P) || x.P < 0 || x.P > 1 {
		return fmt.Errorf("p=%g: %w", x.P, ErrBadProbability)
	}

	return validateMode(x.Mode)
}

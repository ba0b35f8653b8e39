// SPDX-License-Identifier: MIT

package tabu

import "fmt"

// Diversification wraps the exhaustive scan with periodic restarts.
//
// On every iteration divisible by Step, if the current solution has k0 > 0
// elements, a size k is drawn from [0, k0) and the solution is rebuilt from
// k random domain indices (tabu, duplicate and infeasible picks are skipped).
// The candidate list is rebuilt and the cost re-evaluated before the
// exhaustive scan runs on the perturbed state.
type Diversification struct {
	Mode LocalSearch
	Step int
}

func (x Diversification) Name() string { return KindDiversification }

func (x Diversification) String() string {
	return fmt.Sprintf("%s(step=%d, %s)", KindDiversification, x.Step, x.Mode)
}

// Next restarts when due, then scans exhaustively.
func (x Diversification) Next(e *Engine) Move {
	if k0 := e.current.Len(); k0 > 0 && e.iteration%x.Step == 0 {
		e.restart(e.rng.Intn(k0))
	}

	return e.scan(x.Mode, nil)
}

func (x Diversification) validate() error {
	if x.Step < 1 {
		return fmt.Errorf("step=%d: %w", x.Step, ErrBadStep)
	}

	return validateMode(x.Mode)
}

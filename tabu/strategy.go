// SPDX-License-Identifier: MIT

package tabu

import (
	"fmt"
	"strings"
)

// Strategy kinds accepted by NewStrategy.
const (
	KindDefault         = "default"
	KindProbabilistic   = "prob"
	KindDiversification = "diversification"
)

// Strategy picks the move of one iteration. Next may reshape the engine's
// current solution (Diversification does) but must leave applying the
// returned move to the engine.
type Strategy interface {
	Name() string
	Next(e *Engine) Move
}

var (
	_ Strategy = Exhaustive{}
	_ Strategy = Probabilistic{}
	_ Strategy = Diversification{}
)

// NewStrategy builds a strategy by kind:
//   - "default" (or "exhaustive")           → Exhaustive{mode}
//   - "prob" (or "probabilistic")           → Probabilistic{mode, p}
//   - "diversification" (or "div")          → Diversification{mode, step}
//
// p is checked only for "prob" and step only for "diversification".
func NewStrategy(kind string, mode LocalSearch, p float64, step int) (Strategy, error) {
	var s interface {
		Strategy
		validator
	}
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindDefault, "exhaustive", "":
		s = Exhaustive{Mode: mode}
	case KindProbabilistic, "probabilistic":
		s = Probabilistic{Mode: mode, P: p}
	case KindDiversification, "div":
		s = Diversification{Mode: mode, Step: step}
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownStrategy)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

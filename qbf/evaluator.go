// SPDX-License-Identifier: MIT

// Package qbf evaluates Quadratic Binary Functions f(x) = xᵗAx over a 0/1
// vector, fully and incrementally, with an optional prohibited-triple check.
//
// Sign conventions:
//   - QBF returns raw values; larger is better.
//   - Inverse negates every result so a cost-minimizing search maximizes f.
//   - A move rejected by the triple check costs -Inf on QBF, hence +Inf through
//     Inverse: the worst value in both senses. Rejected reports either.
//
// Concurrency: an Evaluator owns a scratch membership vector and is NOT safe
// for concurrent use. Build one per goroutine; the matrix itself is never mutated.
package qbf

import "math"

// Evaluator computes full and delta costs of solutions over a fixed domain.
type Evaluator interface {
	// DomainSize returns n; valid indices are [0, n).
	DomainSize() int

	// Evaluate computes the cost of s, stores it in s.Cost and returns it.
	Evaluate(s *Solution) float64

	// InsertionCost returns cost(s ∪ {e}) − cost(s).
	InsertionCost(e int, s *Solution) float64

	// RemovalCost returns cost(s \ {e}) − cost(s).
	RemovalCost(e int, s *Solution) float64

	// ExchangeCost returns cost((s ∪ {in}) \ {out}) − cost(s).
	ExchangeCost(in, out int, s *Solution) float64
}

// Rejected reports whether delta is the infinite hard-reject sentinel.
func Rejected(delta float64) bool {
	return math.IsInf(delta, 0)
}

// Inverse negates every result of the wrapped evaluator, turning maximization
// into minimization. It carries no state of its own.
type Inverse struct {
	inner Evaluator
}

var _ Evaluator = (*Inverse)(nil)

// NewInverse wraps e.
func NewInverse(e Evaluator) (*Inverse, error) {
	if e == nil {
		return nil, ErrNilEvaluator
	}

	return &Inverse{inner: e}, nil
}

// Unwrap returns the wrapped evaluator.
func (v *Inverse) Unwrap() Evaluator { return v.inner }

func (v *Inverse) DomainSize() int { return v.inner.DomainSize() }

func (v *Inverse) Evaluate(s *Solution) float64 {
	s.Cost = -v.inner.Evaluate(s)
	return s.Cost
}

func (v *Inverse) InsertionCost(e int, s *Solution) float64 {
	return -v.inner.InsertionCost(e, s)
}

func (v *Inverse) RemovalCost(e int, s *Solution) float64 {
	return -v.inner.RemovalCost(e, s)
}

func (v *Inverse) ExchangeCost(in, out int, s *Solution) float64 {
	return -v.inner.ExchangeCost(in, out, s)
}

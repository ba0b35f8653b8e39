// SPDX-License-Identifier: MIT

package qbf

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tabuqbf/matrix"
	"github.com/katalvlaran/tabuqbf/triples"
)

// QBF evaluates f(x) = xᵗAx for a square coefficient matrix A.
//
// Design:
//   - A is prefetched once into a flat row-major buffer; the source matrix is not retained.
//   - x is a scratch membership vector rebuilt from the solution on every call.
//     Only indices marked by the previous call are cleared, so a reset costs O(k).
//   - With triples configured, every delta first runs the exhaustive feasibility
//     check on the hypothetical result and returns -Inf when it fails.
//
// Complexity: Evaluate O(k²), deltas O(k) plus O(|triples|) when validating,
// where k is the solution size.
type QBF struct {
	n       int
	a       []float64
	x       []bool
	marked  []int
	triples []triples.Triple
}

var _ Evaluator = (*QBF)(nil)

// Option configures a QBF.
type Option func(*QBF)

// WithTriples enables the exhaustive prohibited-triple validation.
func WithTriples(ts []triples.Triple) Option {
	return func(q *QBF) {
		q.triples = append([]triples.Triple(nil), ts...)
	}
}

// New builds a QBF over m. m must be square and finite.
func New(m matrix.Matrix, opts ...Option) (*QBF, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("qbf.New: %w", err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, fmt.Errorf("qbf.New: %w", err)
	}
	n := m.Rows()
	if n == 0 {
		return nil, ErrEmptyDomain
	}

	q := &QBF{
		n: n,
		x: make([]bool, n),
	}
	if d, ok := m.(*matrix.Dense); ok {
		q.a = d.Flat()
	} else {
		q.a = make([]float64, n*n)
		var (
			i, j int
			v    float64
			err  error
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, fmt.Errorf("qbf.New: %w", err)
				}
				q.a[i*n+j] = v
			}
		}
	}
	for _, opt := range opts {
		opt(q)
	}
	for _, t := range q.triples {
		for _, v := range t.Members() {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("qbf.New: triple %v, n=%d: %w", t, n, ErrTripleRange)
			}
		}
	}

	return q, nil
}

// DomainSize returns n.
func (q *QBF) DomainSize() int { return q.n }

// Triples returns a copy of the configured triples; nil when validation is off.
func (q *QBF) Triples() []triples.Triple {
	if len(q.triples) == 0 {
		return nil
	}

	return append([]triples.Triple(nil), q.triples...)
}

// setVariables rebuilds x from s. Out-of-domain indices are ignored.
func (q *QBF) setVariables(s *Solution) {
	for _, i := range q.marked {
		q.x[i] = false
	}
	q.marked = q.marked[:0]
	for _, e := range s.Elements {
		if e < 0 || e >= q.n || q.x[e] {
			continue
		}
		q.x[e] = true
		q.marked = append(q.marked, e)
	}
}

// Evaluate computes xᵗAx, stores it in s.Cost and returns it.
func (q *QBF) Evaluate(s *Solution) float64 {
	q.setVariables(s)
	sum := 0.0
	for _, i := range q.marked {
		row := q.a[i*q.n : (i+1)*q.n]
		for _, j := range q.marked {
			sum += row[j]
		}
	}
	s.Cost = sum

	return sum
}

// contribution is A[i][i] + Σ_{j≠i, x_j=1} (A[i][j] + A[j][i]).
func (q *QBF) contribution(i int) float64 {
	sum := q.a[i*q.n+i]
	for _, j := range q.marked {
		if j != i {
			sum += q.a[i*q.n+j] + q.a[j*q.n+i]
		}
	}

	return sum
}

// InsertionCost returns 0 if e is already selected, -Inf if inserting e
// completes a prohibited triple, and e's contribution otherwise.
func (q *QBF) InsertionCost(e int, s *Solution) float64 {
	if q.validating() && !q.ValidateInsertion(e, s) {
		return math.Inf(-1)
	}
	q.setVariables(s)

	return q.insertion(e)
}

func (q *QBF) insertion(e int) float64 {
	if q.x[e] {
		return 0
	}

	return q.contribution(e)
}

// RemovalCost returns 0 if e is not selected, -Inf if the result would be
// infeasible, and minus e's contribution otherwise.
func (q *QBF) RemovalCost(e int, s *Solution) float64 {
	if q.validating() && !q.ValidateRemoval(e, s) {
		return math.Inf(-1)
	}
	q.setVariables(s)

	return q.removal(e)
}

func (q *QBF) removal(e int) float64 {
	if !q.x[e] {
		return 0
	}

	return -q.contribution(e)
}

// ExchangeCost degenerates to a removal when in is already selected and to
// an insertion when out is not; otherwise both contributions are combined
// and the doubly counted pair term A[in][out]+A[out][in] is subtracted.
func (q *QBF) ExchangeCost(in, out int, s *Solution) float64 {
	if q.validating() && !q.ValidateExchange(in, out, s) {
		return math.Inf(-1)
	}
	q.setVariables(s)

	switch {
	case in == out:
		return 0
	case q.x[in]:
		return q.removal(out)
	case !q.x[out]:
		return q.insertion(in)
	}

	return q.contribution(in) - q.contribution(out) - (q.a[in*q.n+out] + q.a[out*q.n+in])
}

func (q *QBF) validating() bool { return len(q.triples) > 0 }

// ValidateInsertion reports whether s ∪ {e} violates no triple.
// Complexity: O(k + |triples|).
func (q *QBF) ValidateInsertion(e int, s *Solution) bool {
	q.setVariables(s)

	return q.satisfied(func(i int) bool { return i == e || q.x[i] })
}

// ValidateRemoval reports whether s \ {e} violates no triple. It can fail
// only when s itself is infeasible and e is not part of every violation.
func (q *QBF) ValidateRemoval(e int, s *Solution) bool {
	q.setVariables(s)

	return q.satisfied(func(i int) bool { return i != e && q.x[i] })
}

// ValidateExchange reports whether (s ∪ {in}) \ {out} violates no triple.
func (q *QBF) ValidateExchange(in, out int, s *Solution) bool {
	q.setVariables(s)

	return q.satisfied(func(i int) bool { return (i == in || q.x[i]) && i != out })
}

// Feasible reports whether s violates no configured triple.
func (q *QBF) Feasible(s *Solution) bool {
	q.setVariables(s)

	return q.satisfied(func(i int) bool { return q.x[i] })
}

func (q *QBF) satisfied(member func(int) bool) bool {
	for _, t := range q.triples {
		if t.Violated(member) {
			return false
		}
	}

	return true
}

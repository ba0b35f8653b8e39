// SPDX-License-Identifier: MIT

package tabu

import (
	"fmt"
	"math"
)

// Elem is an optional domain index. The zero value is None.
type Elem struct {
	Index   int
	Present bool
}

// None is the absent element; it also fills empty tabu slots.
var None = Elem{}

// Some wraps a present domain index.
func Some(i int) Elem { return Elem{Index: i, Present: true} }

func (e Elem) String() string {
	if !e.Present {
		return "-"
	}

	return fmt.Sprintf("%d", e.Index)
}

// MoveKind classifies a Move by which sides are present.
type MoveKind int

const (
	NoMove MoveKind = iota
	Insertion
	Removal
	Exchange
)

func (k MoveKind) String() string {
	switch k {
	case Insertion:
		return "insertion"
	case Removal:
		return "removal"
	case Exchange:
		return "exchange"
	default:
		return "none"
	}
}

// Move is one structural change: In enters the solution, Out leaves it.
// Delta is the cost change as seen by the engine (lower is better).
type Move struct {
	In, Out Elem
	Delta   float64
}

// noMove is what a scan returns when no admissible candidate exists.
func noMove() Move { return Move{Delta: math.Inf(1)} }

// Kind reports whether m inserts, removes, exchanges, or does nothing.
func (m Move) Kind() MoveKind {
	switch {
	case m.In.Present && m.Out.Present:
		return Exchange
	case m.In.Present:
		return Insertion
	case m.Out.Present:
		return Removal
	default:
		return NoMove
	}
}

func (m Move) String() string {
	return fmt.Sprintf("%s(in=%s, out=%s, delta=%g)", m.Kind(), m.In, m.Out, m.Delta)
}

// SPDX-License-Identifier: MIT

package tabu

import "github.com/katalvlaran/tabuqbf/triples"

// pruner tracks, per domain index, how many selected pairs forbid it.
//
// An index c is blocked while some selected pair (a, b) forms a triple with
// it. Insertions and removals update the counters in O(k) index lookups,
// where k is the solution size, so the candidate list never needs a full
// triple scan. Starting from a feasible solution and only inserting
// unblocked indices, no triple ever becomes fully selected.
type pruner struct {
	idx     *triples.Index
	blocked []int
}

func newPruner(idx *triples.Index, n int) *pruner {
	return &pruner{idx: idx, blocked: make([]int, n)}
}

// isBlocked reports whether i would complete a triple with two selected indices.
func (p *pruner) isBlocked(i int) bool { return p.blocked[i] > 0 }

// inserted registers e against every other selected index and calls
// onBlock for each index whose counter leaves zero.
func (p *pruner) inserted(e int, selected []int, onBlock func(int)) {
	for _, s := range selected {
		if s == e {
			continue
		}
		for _, c := range p.idx.Forbidden(e, s) {
			p.blocked[c]++
			if p.blocked[c] == 1 {
				onBlock(c)
			}
		}
	}
}

// removed undoes inserted for e; selected must no longer contain e.
// onUnblock is called for each index whose counter returns to zero.
func (p *pruner) removed(e int, selected []int, onUnblock func(int)) {
	for _, s := range selected {
		if s == e {
			continue
		}
		for _, c := range p.idx.Forbidden(e, s) {
			p.blocked[c]--
			if p.blocked[c] == 0 {
				onUnblock(c)
			}
		}
	}
}

func (p *pruner) reset() {
	for i := range p.blocked {
		p.blocked[i] = 0
	}
}

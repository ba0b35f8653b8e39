// SPDX-License-Identifier: MIT

package triples

// pair is an unordered index pair stored with lo < hi.
type pair struct {
	lo, hi int
}

func makePair(a, b int) pair {
	if a > b {
		a, b = b, a
	}

	return pair{lo: a, hi: b}
}

// Index maps every unordered pair of a triple to the third member(s) that
// would complete it. Built once, read-only afterwards; safe for concurrent reads.
type Index struct {
	byPair  map[pair][]int
	triples []Triple
}

// NewIndex registers each triple under its three unordered pairs.
// Complexity: O(len(ts)).
func NewIndex(ts []Triple) *Index {
	idx := &Index{
		byPair:  make(map[pair][]int, 3*len(ts)),
		triples: append([]Triple(nil), ts...),
	}
	for _, t := range ts {
		idx.add(t.U, t.G, t.H)
		idx.add(t.U, t.H, t.G)
		idx.add(t.G, t.H, t.U)
	}

	return idx
}

func (x *Index) add(a, b, third int) {
	k := makePair(a, b)
	for _, v := range x.byPair[k] {
		if v == third {
			return
		}
	}
	x.byPair[k] = append(x.byPair[k], third)
}

// Forbidden returns the indices that complete a triple together with a and b.
// The returned slice is shared and must not be modified. Order is registration order.
// Complexity: O(1) expected.
func (x *Index) Forbidden(a, b int) []int {
	if x == nil || a == b {
		return nil
	}

	return x.byPair[makePair(a, b)]
}

// Pairs returns the number of distinct registered pairs.
func (x *Index) Pairs() int {
	if x == nil {
		return 0
	}

	return len(x.byPair)
}

// Len returns the number of triples the index was built from.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}

	return len(x.triples)
}

// Triples returns a copy of the indexed triples.
func (x *Index) Triples() []Triple {
	if x == nil {
		return nil
	}

	return append([]Triple(nil), x.triples...)
}

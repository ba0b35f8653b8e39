// SPDX-License-Identifier: MIT

// Package triples generates the prohibited triples of a QBF instance and
// indexes them for incremental candidate pruning.
//
// A triple (u, g, h) caps the selection at two of its three members: a
// feasible solution never holds all of u, g and h at once.
//
// Generation is deterministic. For every u in [1, n] (1-based):
//
//	l(u, π1, π2) = 1 + ((π1·(u−1) + π2) mod n)
//	g = l(u, 131, 1031),            or 1 + (l mod n) when l == u
//	h = l(u, 193, 1093),            or 1 + (l mod n) when it collides with u or g,
//	                                or 1 + ((l+1) mod n) when that collides too
//
// and the triple is stored 0-based. For n ≥ 3 the three members are pairwise
// distinct; for n < 3 no triple exists.
package triples

import "fmt"

const (
	gPi1, gPi2 = 131, 1031
	hPi1, hPi2 = 193, 1093
)

// Triple holds three pairwise-distinct 0-based domain indices.
type Triple struct {
	U, G, H int
}

// String renders the triple as (u,g,h).
func (t Triple) String() string {
	return fmt.Sprintf("(%d,%d,%d)", t.U, t.G, t.H)
}

// Members returns the three indices in (U, G, H) order.
func (t Triple) Members() [3]int {
	return [3]int{t.U, t.G, t.H}
}

// Count reports how many members of t satisfy member.
func (t Triple) Count(member func(int) bool) int {
	c := 0
	if member(t.U) {
		c++
	}
	if member(t.G) {
		c++
	}
	if member(t.H) {
		c++
	}

	return c
}

// Violated reports whether all three members are selected.
func (t Triple) Violated(member func(int) bool) bool {
	return t.Count(member) == 3
}

// Generate returns the n prohibited triples of a domain of size n.
// Complexity: O(n).
func Generate(n int) []Triple {
	if n < 3 {
		return nil
	}
	out := make([]Triple, 0, n)
	var u, g, h int
	for u = 1; u <= n; u++ {
		g = generateG(u, n)
		h = generateH(u, n, g)
		out = append(out, Triple{U: u - 1, G: g - 1, H: h - 1})
	}

	return out
}

func pairing(u, pi1, pi2, n int) int {
	return 1 + ((pi1*(u-1) + pi2) % n)
}

func generateG(u, n int) int {
	l := pairing(u, gPi1, gPi2, n)
	if l != u {
		return l
	}

	return 1 + (l % n)
}

func generateH(u, n, g int) int {
	l := pairing(u, hPi1, hPi2, n)
	if l != u && l != g {
		return l
	}
	aux := 1 + (l % n)
	if aux != u && aux != g {
		return aux
	}

	return 1 + ((l + 1) % n)
}

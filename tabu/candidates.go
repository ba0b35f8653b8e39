// SPDX-License-Identifier: MIT

package tabu

// candidateList keeps the indices eligible for insertion in a stable order.
// Removal preserves the relative order of the rest; additions go to the back.
type candidateList struct {
	items []int
	pos   []int // pos[i] is i's position in items, or -1
}

func newCandidateList(n int) *candidateList {
	cl := &candidateList{
		items: make([]int, 0, n),
		pos:   make([]int, n),
	}
	for i := range cl.pos {
		cl.pos[i] = -1
	}

	return cl
}

func (cl *candidateList) len() int { return len(cl.items) }

func (cl *candidateList) at(p int) int { return cl.items[p] }

func (cl *candidateList) contains(i int) bool { return cl.pos[i] >= 0 }

// add appends i unless it is already listed.
func (cl *candidateList) add(i int) {
	if cl.pos[i] >= 0 {
		return
	}
	cl.pos[i] = len(cl.items)
	cl.items = append(cl.items, i)
}

// remove drops i if listed. Complexity: O(len).
func (cl *candidateList) remove(i int) {
	p := cl.pos[i]
	if p < 0 {
		return
	}
	copy(cl.items[p:], cl.items[p+1:])
	cl.items = cl.items[:len(cl.items)-1]
	cl.pos[i] = -1
	for ; p < len(cl.items); p++ {
		cl.pos[cl.items[p]] = p
	}
}

// clear empties the list.
func (cl *candidateList) clear() {
	for _, i := range cl.items {
		cl.pos[i] = -1
	}
	cl.items = cl.items[:0]
}

func (cl *candidateList) snapshot() []int {
	return append([]int(nil), cl.items...)
}

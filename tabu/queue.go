// SPDX-License-Identifier: MIT

package tabu

// tabuQueue is a fixed-length FIFO of 2·tenure slots.
//
// Contracts:
//   - Length never changes: every push evicts the front slot first.
//   - Empty slots hold None and count towards the length.
//   - contains is O(1) through per-index occupancy counters.
type tabuQueue struct {
	slots []Elem
	head  int   // index of the front (oldest) slot
	count []int // occupancy per domain index
}

func newTabuQueue(tenure, n int) *tabuQueue {
	return &tabuQueue{
		slots: make([]Elem, 2*tenure),
		count: make([]int, n),
	}
}

// push dequeues the front slot and enqueues e at the back.
func (q *tabuQueue) push(e Elem) {
	old := q.slots[q.head]
	if old.Present {
		q.count[old.Index]--
	}
	q.slots[q.head] = e
	if e.Present {
		q.count[e.Index]++
	}
	q.head = (q.head + 1) % len(q.slots)
}

// contains reports whether i occupies any slot.
func (q *tabuQueue) contains(i int) bool {
	return q.count[i] > 0
}

func (q *tabuQueue) len() int { return len(q.slots) }

// reset fills every slot with None.
func (q *tabuQueue) reset() {
	for i := range q.slots {
		q.slots[i] = None
	}
	for i := range q.count {
		q.count[i] = 0
	}
	q.head = 0
}

// snapshot returns the slots from front to back.
func (q *tabuQueue) snapshot() []Elem {
	out := make([]Elem, 0, len(q.slots))
	out = append(out, q.slots[q.head:]...)
	out = append(out, q.slots[:q.head]...)

	return out
}

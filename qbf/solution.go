// SPDX-License-Identifier: MIT

package qbf

import (
	"strconv"
	"strings"
)

// Solution is an ordered set of selected domain indices plus the cost of the
// last evaluation. Cost is stale after any Add or Remove until re-evaluated.
type Solution struct {
	Elements []int
	Cost     float64
}

// NewSolution returns an empty solution with cost 0.
func NewSolution(elems ...int) *Solution {
	s := &Solution{Elements: make([]int, 0, len(elems))}
	for _, e := range elems {
		s.Add(e)
	}

	return s
}

// Len returns the number of selected indices.
func (s *Solution) Len() int {
	return len(s.Elements)
}

// Contains reports whether e is selected. Complexity: O(k).
func (s *Solution) Contains(e int) bool {
	for _, v := range s.Elements {
		if v == e {
			return true
		}
	}

	return false
}

// Add appends e unless it is already selected. Reports whether it was added.
func (s *Solution) Add(e int) bool {
	if s.Contains(e) {
		return false
	}
	s.Elements = append(s.Elements, e)

	return true
}

// Remove drops e preserving the order of the rest. Reports whether it was present.
func (s *Solution) Remove(e int) bool {
	for i, v := range s.Elements {
		if v == e {
			s.Elements = append(s.Elements[:i], s.Elements[i+1:]...)
			return true
		}
	}

	return false
}

// Clone returns a deep copy.
func (s *Solution) Clone() *Solution {
	out := &Solution{Elements: make([]int, len(s.Elements)), Cost: s.Cost}
	copy(out.Elements, s.Elements)

	return out
}

// String renders "Solution: cost=[c], size=[k], elements=[e1, e2, ...]".
func (s *Solution) String() string {
	var sb strings.Builder
	sb.WriteString("Solution: cost=[")
	sb.WriteString(strconv.FormatFloat(s.Cost, 'f', -1, 64))
	sb.WriteString("], size=[")
	sb.WriteString(strconv.Itoa(len(s.Elements)))
	sb.WriteString("], elements=[")
	for i, e := range s.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(e))
	}
	sb.WriteByte(']')

	return sb.String()
}

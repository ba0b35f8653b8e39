// SPDX-License-Identifier: MIT

package tabu_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tabuqbf/matrix"
	"github.com/katalvlaran/tabuqbf/qbf"
	"github.com/katalvlaran/tabuqbf/tabu"
	"github.com/katalvlaran/tabuqbf/triples"
)

// ExampleEngine_Solve maximizes f(x) = x0 + x1 + x2 + x3.
//
// Scenario:
//
//	A = diag(1,1,1,1), tenure 1, 3 iterations, best-improving.
//	Greedy construction selects every index; no later move improves.
func ExampleEngine_Solve() {
	a, _ := matrix.NewDiagonal([]float64{1, 1, 1, 1})
	f, _ := qbf.New(a)
	minimize, _ := qbf.NewInverse(f)

	opts := tabu.DefaultOptions()
	opts.Tenure = 1
	opts.Iterations = 3
	eng, err := tabu.New(minimize, tabu.Exhaustive{Mode: tabu.BestImproving}, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	best, _ := eng.Solve()
	sort.Ints(best.Elements)
	fmt.Printf("value=%g elements=%v\n", -best.Cost, best.Elements)
	// Output:
	// value=4 elements=[0 1 2 3]
}

// ExampleWithIndex prunes candidates so that no prohibited triple is ever
// completely selected.
func ExampleWithIndex() {
	a, _ := matrix.NewDiagonal([]float64{1, 1, 1})
	f, _ := qbf.New(a)
	minimize, _ := qbf.NewInverse(f)
	idx := triples.NewIndex(triples.Generate(3))

	opts := tabu.DefaultOptions()
	opts.Iterations = 10
	eng, _ := tabu.New(minimize, tabu.Exhaustive{Mode: tabu.BestImproving}, opts, tabu.WithIndex(idx))
	best, _ := eng.Solve()
	fmt.Printf("value=%g size=%d\n", -best.Cost, best.Len())
	// Output:
	// value=2 size=2
}

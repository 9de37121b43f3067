// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"fmt"

	"github.com/katalvlaran/graphblas/algebra"
	"github.com/katalvlaran/graphblas/algorithms"
	"github.com/katalvlaran/graphblas/collections"
	"github.com/katalvlaran/graphblas/execution"
)

// ExampleBFSLevels layers a small directed graph:
//
//	0 → 1 → 3
//	↓
//	2
func ExampleBFSLevels() {
	ctx, err := execution.Init(execution.NonBlocking)
	if err != nil {
		panic(err)
	}
	defer ctx.Release()

	g, err := collections.MatrixFromElements(ctx, collections.Size{Rows: 4, Columns: 4}, []collections.MatrixElement[bool]{
		{Row: 0, Column: 1, Value: true},
		{Row: 0, Column: 2, Value: true},
		{Row: 1, Column: 3, Value: true},
	}, algebra.BinaryOperator[bool]{})
	if err != nil {
		panic(err)
	}

	levels, err := algorithms.BFSLevels(g, 0, nil)
	if err != nil {
		panic(err)
	}
	elements, _ := levels.Elements()
	for _, e := range elements {
		fmt.Printf("vertex %d: level %d\n", e.Index, e.Value)
	}
	// Output:
	// vertex 0: level 0
	// vertex 1: level 1
	// vertex 2: level 1
	// vertex 3: level 2
}

// ExampleShortestPaths finds the cheaper detour A→C→B.
func ExampleShortestPaths() {
	ctx, err := execution.Init(execution.NonBlocking)
	if err != nil {
		panic(err)
	}
	defer ctx.Release()

	const a, b, c = 0, 1, 2
	g, err := collections.MatrixFromElements(ctx, collections.Size{Rows: 3, Columns: 3}, []collections.MatrixElement[float64]{
		{Row: a, Column: b, Value: 5},
		{Row: a, Column: c, Value: 1},
		{Row: c, Column: b, Value: 2.5},
	}, algebra.BinaryOperator[float64]{})
	if err != nil {
		panic(err)
	}

	dist, err := algorithms.ShortestPaths(g, a)
	if err != nil {
		panic(err)
	}
	d, _ := dist.ElementOrDefault(b)
	fmt.Println("A→B:", d)
	// Output:
	// A→B: 3.5
}

// SPDX-License-Identifier: MIT
package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()
	for k := 1; k <= 3; k++ {
		g.AddNode(k)
	}
	_ = g.Connect(1, 2, 1.5)
	_ = g.Connect(2, 3, 2)

	fmt.Println("edge 2-1:", g.EdgeWeight(2, 1))
	fmt.Println("edge 1-3:", g.EdgeWeight(1, 3))
	fmt.Println(g)

	removed, _ := g.RemoveNode(2)
	fmt.Println("removed:", removed.Key, "edges left:", g.EdgeCount())

	// Output:
	// edge 2-1: 1.5
	// edge 1-3: -1
	// nodes=3, edges=2, revision=5
	// removed: 2 edges left: 0
}

// ExampleGraph_Connect shows that invalid mutations leave the graph untouched.
func ExampleGraph_Connect() {
	g := core.NewGraph()
	g.AddNode(1)
	g.AddNode(2)

	err := g.Connect(1, 2, -3)
	fmt.Println(errors.Is(err, core.ErrNegativeWeight), g.EdgeCount(), g.Revision())

	err = g.Connect(1, 1, 3)
	fmt.Println(errors.Is(err, core.ErrSelfLoop), g.EdgeCount(), g.Revision())

	// Output:
	// true 0 2
	// true 0 2
}

// ExampleGraph_Clone shows that a copy evolves independently.
func ExampleGraph_Clone() {
	g := core.NewGraph()
	g.AddNode(1)
	g.AddNode(2)
	_ = g.Connect(1, 2, 4)

	c := g.Clone()
	_ = c.RemoveEdge(1, 2)

	fmt.Println("source:", g)
	fmt.Println("clone: ", c)

	// Output:
	// source: nodes=2, edges=1, revision=3
	// clone:  nodes=2, edges=0, revision=4
}

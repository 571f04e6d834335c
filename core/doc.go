// SPDX-License-Identifier: MIT

// Package core defines the undirected weighted Graph store used by every other
// package in wgraph.
//
// What:
//
//   - Nodes are identified by caller-assigned integer keys and carry two scratch
//     fields (Label, Marker) that the store copies but never interprets.
//   - Edges are undirected and carry a non-negative float64 weight. Each weight is
//     stored symmetrically; both directions are created, updated and removed
//     together.
//   - No self-loops, no parallel edges.
//   - EdgeCount() is the number of distinct unordered pairs.
//   - Revision() increases on every structural mutation (AddNode, RemoveNode,
//     Connect, RemoveEdge, Clear) and lets callers detect stale views or caches.
//
// Invalid mutations (self-loop, unknown endpoint, negative weight, missing edge)
// leave the graph untouched and return a sentinel error. Callers that follow the
// "silently ignored" convention may discard that error; nothing changed.
//
// Determinism:
//
//   - Nodes(), NodeKeys(), Neighbors(), NeighborKeys() and Edges() are sorted by key.
//
// Concurrency:
//
//   - All structural state is guarded by one sync.RWMutex; readers never observe a
//     half-applied mutation (for example, one direction of an edge).
//   - Label and Marker are plain fields. Writing them from several goroutines at
//     once is a data race the store does not prevent.
//
// Example:
//
//	g := core.NewGraph()
//	g.AddNode(1)
//	g.AddNode(2)
//	_ = g.Connect(1, 2, 3.5)
//	fmt.Println(g.EdgeWeight(2, 1)) // 3.5
package core

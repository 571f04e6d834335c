// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy and clearing of graph instances.
// Determinism:
//   - Clone carries the revision value over so the copy continues the numbering.
// Concurrency:
//   - Clone holds the source read lock only; the clone is private until returned.

package core

// Clone returns a deep copy of g.
//
// Behavior highlights:
//   - New *Node values with the same Key, Label and Marker.
//   - Same edges and weights, same edge count.
//   - Revision starts at the source's current value and evolves independently.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		nodes:     make(map[int]*Node, len(g.nodes)),
		adj:       make(map[int]map[int]float64, len(g.adj)),
		edgeCount: g.edgeCount,
		revision:  g.revision,
	}
	var (
		key   int
		n     *Node
		table map[int]float64
	)
	for key, n = range g.nodes {
		cp := *n
		clone.nodes[key] = &cp
	}
	for key, table = range g.adj {
		ct := make(map[int]float64, len(table))
		for nbr, w := range table {
			ct[nbr] = w
		}
		clone.adj[key] = ct
	}

	return clone
}

// Clear removes every node and edge. The revision is bumped once if anything
// was removed and is never reset, so staleness checks keep working.
//
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.nodes) == 0 {
		return
	}
	g.nodes = make(map[int]*Node)
	g.adj = make(map[int]map[int]float64)
	g.edgeCount = 0
	g.revision++
}

// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and summaries. No algorithms or hidden state here.

package core

import "fmt"

// Revision returns the modification counter.
//
// Every accepted AddNode, RemoveNode, Connect, RemoveEdge and a non-empty Clear
// increments it by exactly one. Rejected mutations leave it untouched.
//
// Complexity: O(1).
func (g *Graph) Revision() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.revision
}

// Stats produces a consistent snapshot of counters and aggregate weight.
//
// Complexity:
//   - Time O(V + E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: g.edgeCount,
		Revision:  g.revision,
	}
	for a, table := range g.adj {
		if len(table) == 0 {
			stats.IsolatedNodes++
		}
		for b, w := range table {
			if a < b {
				stats.TotalWeight += w
			}
		}
	}

	return stats
}

// String implements fmt.Stringer.
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fmt.Sprintf("nodes=%d, edges=%d, revision=%d", len(g.nodes), g.edgeCount, g.revision)
}

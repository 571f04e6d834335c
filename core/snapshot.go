// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Plain-data capture of a graph and validated reconstruction from it.
// Persistence codecs encode Snapshot; they never touch Graph internals.

package core

import (
	"fmt"
	"sort"
)

// Snapshot is a self-contained, order-stable description of a graph state.
type Snapshot struct {
	Revision uint64 `json:"revision" yaml:"revision"`
	Nodes    []Node `json:"nodes" yaml:"nodes"`
	Edges    []Edge `json:"edges" yaml:"edges"`
}

// Snapshot captures nodes (by value, sorted by key), edges and revision.
// Complexity: O(V log V + E log E).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, *n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Key < nodes[j].Key })

	return Snapshot{
		Revision: g.revision,
		Nodes:    nodes,
		Edges:    g.edgesLocked(),
	}
}

// FromSnapshot builds a new graph equal to the one s was captured from.
//
// Implementation:
//   - Stage 1: Register nodes, rejecting duplicates (ErrDuplicateNode).
//   - Stage 2: Register edges, rejecting self-loops, unknown endpoints, negative,
//     NaN or infinite weights and repeated pairs.
//   - Stage 3: Set the revision to s.Revision.
//
// The result is only returned when every entry is valid, so a bad snapshot can
// never produce a partially built graph.
//
// Complexity: O(V + E).
func FromSnapshot(s Snapshot) (*Graph, error) {
	g := NewGraph()
	for i := range s.Nodes {
		n := s.Nodes[i]
		if _, dup := g.nodes[n.Key]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, n.Key)
		}
		g.nodes[n.Key] = &n
		g.adj[n.Key] = make(map[int]float64)
	}
	for _, e := range s.Edges {
		if err := checkWeight(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
		if err := g.validPair(e.From, e.To); err != nil {
			return nil, err
		}
		if _, dup := g.adj[e.From][e.To]; dup {
			return nil, fmt.Errorf("%w: %d-%d", ErrDuplicateEdge, e.From, e.To)
		}
		g.adj[e.From][e.To] = e.Weight
		g.adj[e.To][e.From] = e.Weight
		g.edgeCount++
	}
	g.revision = s.Revision

	return g, nil
}

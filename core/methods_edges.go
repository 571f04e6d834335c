// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and queries: Connect/RemoveEdge/HasEdge/EdgeWeight/Edges.
// Determinism:
//   - Edges() is sorted by (From, To) with From < To.
// Concurrency:
//   - Both directions of an edge change under one write lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// validPair checks a != b and both endpoints exist. Caller holds g.mu.
func (g *Graph) validPair(a, b int) error {
	if a == b {
		return fmt.Errorf("%w: %d", ErrSelfLoop, a)
	}
	if _, ok := g.nodes[a]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, a)
	}
	if _, ok := g.nodes[b]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, b)
	}

	return nil
}

// checkWeight accepts finite, non-negative weights.
func checkWeight(a, b int, w float64) error {
	switch {
	case w < 0 || math.IsNaN(w):
		return fmt.Errorf("%w: %d-%d weight=%v", ErrNegativeWeight, a, b, w)
	case math.IsInf(w, 1):
		return fmt.Errorf("%w: %d-%d", ErrInfiniteWeight, a, b)
	}

	return nil
}

// Connect creates or re-weights the undirected edge a—b.
//
// Implementation:
//   - Stage 1: Reject negative, NaN or infinite weight, self-loops and unknown
//     endpoints.
//   - Stage 2: Write w into both neighbor tables.
//   - Stage 3: A previously absent pair bumps the edge count; every accepted
//     call bumps the revision (overwriting with the same weight included).
//
// Errors:
//   - ErrNegativeWeight, ErrInfiniteWeight, ErrSelfLoop, ErrNodeNotFound. The
//     graph is unchanged.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Connect(a, b int, w float64) error {
	// 1) Validate the weight before taking the lock.
	if err := checkWeight(a, b, w); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Validate endpoints under the lock.
	if err := g.validPair(a, b); err != nil {
		return err
	}
	// 3) A new pair bumps the edge count; a re-weight does not.
	if _, exists := g.adj[a][b]; !exists {
		g.edgeCount++
	}
	// 4) Write both directions, then record the mutation.
	g.adj[a][b] = w
	g.adj[b][a] = w
	g.revision++

	return nil
}

// RemoveEdge deletes the undirected edge a—b.
//
// Errors:
//   - ErrSelfLoop, ErrNodeNotFound, ErrEdgeNotFound. The graph is unchanged, so a
//     repeated call is harmless.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) RemoveEdge(a, b int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.validPair(a, b); err != nil {
		return err
	}
	if _, exists := g.adj[a][b]; !exists {
		return fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, a, b)
	}
	delete(g.adj[a], b)
	delete(g.adj[b], a)
	g.edgeCount--
	g.revision++

	return nil
}

// Edge returns the weight of a—b and whether the edge exists.
// Self-pairs never report an edge.
// Complexity: O(1).
func (g *Graph) Edge(a, b int) (float64, bool) {
	if a == b {
		return NoEdge, false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	wa, okA := g.adj[a][b]
	_, okB := g.adj[b][a]
	if !okA || !okB {
		return NoEdge, false
	}

	return wa, true
}

// HasEdge reports whether a != b, both exist and are connected.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int) bool {
	_, ok := g.Edge(a, b)

	return ok
}

// EdgeWeight returns the weight of a—b, or NoEdge (-1) if there is none.
// Complexity: O(1).
func (g *Graph) EdgeWeight(a, b int) float64 {
	w, _ := g.Edge(a, b)

	return w
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once, normalised From < To and sorted.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

// edgesLocked is Edges without locking. Caller holds g.mu.
func (g *Graph) edgesLocked() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for a, table := range g.adj {
		for b, w := range table {
			if a < b {
				out = append(out, newEdge(a, b, w))
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

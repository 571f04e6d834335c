// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and queries.
// Determinism:
//   - Nodes(), NodeKeys(), Neighbors() and NeighborKeys() return key-ascending order.
// Concurrency:
//   - Mutations under g.mu write lock, queries under g.mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddNode registers a node with the given key and default scratch fields.
//
// Behavior highlights:
//   - Idempotent: an existing key is a no-op and does not touch the revision.
//   - Allocates an empty neighbor table so Neighbors never distinguishes
//     "no table" from "no neighbors".
//
// Returns:
//   - bool: true if the node was created.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(key int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[key]; exists {
		return false
	}
	g.nodes[key] = &Node{Key: key}
	g.adj[key] = make(map[int]float64)
	g.revision++

	return true
}

// HasNode reports whether a node with the given key exists.
// Complexity: O(1).
func (g *Graph) HasNode(key int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[key]

	return ok
}

// Node returns the live node for key.
// Complexity: O(1).
func (g *Graph) Node(key int) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[key]

	return n, ok
}

// RemoveNode deletes the node and every edge touching it as one mutation.
//
// Implementation:
//   - Stage 1: Under the write lock, verify presence (ErrNodeNotFound).
//   - Stage 2: Drop the mirrored entry in each neighbor's table, decrementing
//     the edge count once per incident edge.
//   - Stage 3: Drop the node and its own table; bump revision once.
//
// Returns:
//   - *Node: the removed node (its scratch fields as they were).
//   - error: ErrNodeNotFound if key was absent; the graph is then unchanged.
//
// Complexity:
//   - Time O(deg(key)), Space O(1).
func (g *Graph) RemoveNode(key int) (*Node, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Verify presence; an unknown key leaves the graph untouched.
	n, ok := g.nodes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, key)
	}

	// 2) Drop the mirrored entry from every neighbor's table.
	var nbr int
	for nbr = range g.adj[key] {
		delete(g.adj[nbr], key)
		g.edgeCount-- // one per incident edge
	}
	// 3) Drop the node itself; the whole removal counts as one mutation.
	delete(g.adj, key)
	delete(g.nodes, key)
	g.revision++

	return n, nil
}

// Nodes returns the live nodes sorted by key.
//
// The slice is fresh; the *Node values are not. Writing Label/Marker through them
// is allowed and visible to every holder of the graph.
//
// Complexity: O(V log V).
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// NodeKeys returns all node keys in ascending order.
// Complexity: O(V log V).
func (g *Graph) NodeKeys() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := make([]int, 0, len(g.nodes))
	for k := range g.nodes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Neighbors returns the nodes adjacent to key, sorted by key.
//
// An isolated node yields an empty, non-nil slice. An unknown key yields
// ErrNodeNotFound, so "no such node" and "no neighbors" never collapse.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(key int) ([]*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	table, ok := g.adj[key]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, key)
	}
	out := make([]*Node, 0, len(table))
	for nbr := range table {
		out = append(out, g.nodes[nbr])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out, nil
}

// NeighborKeys is Neighbors reduced to keys.
// Complexity: O(d log d).
func (g *Graph) NeighborKeys(key int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	table, ok := g.adj[key]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, key)
	}
	keys := make([]int, 0, len(table))
	for nbr := range table {
		keys = append(keys, nbr)
	}
	sort.Ints(keys)

	return keys, nil
}

// Degree returns the number of edges incident to key.
// Complexity: O(1).
func (g *Graph) Degree(key int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	table, ok := g.adj[key]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, key)
	}

	return len(table), nil
}

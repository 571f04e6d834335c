// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge and Graph declarations, sentinel errors, constructor.
// Concurrency:
//   - A single sync.RWMutex guards nodes, adjacency, edge count and revision.
//   - Node scratch fields (Label, Marker) are NOT guarded; they belong to the caller.

package core

import (
	"errors"
	"sync"
)

// NoEdge is the weight reported by EdgeWeight when no edge exists.
const NoEdge float64 = -1

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates both endpoints of an edge operation are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates a negative (or NaN) weight was supplied to Connect.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrInfiniteWeight indicates a +Inf weight was supplied to Connect.
	ErrInfiniteWeight = errors.New("core: infinite edge weight")

	// ErrDuplicateNode indicates a snapshot lists the same node key twice.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrDuplicateEdge indicates a snapshot lists the same node pair twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Node is a graph vertex identified by an integer Key.
//
// Label and Marker are scratch attributes owned by the caller. They are not part
// of the node's identity: two nodes are equal iff their keys are equal. The graph
// copies them on Clone and carries them in snapshots but never interprets them.
type Node struct {
	// Key is the unique, caller-assigned identifier. It never changes.
	Key int `json:"key" yaml:"key"`

	// Label is a free floating-point marker (distance, weight, colour...).
	Label float64 `json:"label,omitempty" yaml:"label,omitempty"`

	// Marker is a free-form text marker (visitation state, remark...).
	Marker string `json:"marker,omitempty" yaml:"marker,omitempty"`
}

// Equal reports whether n and o denote the same node. Only keys are compared;
// two nil nodes are equal.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}

	return n.Key == o.Key
}

// Edge is an undirected weighted connection, normalised so that From < To.
type Edge struct {
	From   int     `json:"from" yaml:"from"`
	To     int     `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// newEdge builds an Edge with ordered endpoints.
func newEdge(a, b int, w float64) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{From: a, To: b, Weight: w}
}

// Graph is an undirected, non-negatively weighted graph without self-loops or
// parallel edges.
//
// adj holds one neighbor table per node (possibly empty); every weight is stored
// twice, adj[a][b] == adj[b][a]. revision increases on every structural mutation.
type Graph struct {
	mu sync.RWMutex

	nodes     map[int]*Node
	adj       map[int]map[int]float64
	edgeCount int
	revision  uint64
}

// NewGraph creates an empty Graph with revision 0.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int]*Node),
		adj:   make(map[int]map[int]float64),
	}
}

// GraphStats is a read-only summary of a graph.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	IsolatedNodes int
	TotalWeight   float64
	Revision      uint64
}

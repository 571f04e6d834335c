// SPDX-License-Identifier: MIT

// Package wgraph is an in-memory, undirected, non-negatively weighted graph
// with Dijkstra-based queries and snapshot persistence.
//
// Everything is organized under these subpackages:
//
//	core/       — Graph, Node, Edge and Snapshot; thread-safe mutation and queries
//	dijkstra/   — single-source shortest paths with run-local state
//	algorithms/ — borrowed-graph queries: copy, connectivity, distance, path, BFS
//	persist/    — binary (zstd + BLAKE3), JSON, YAML and read-only HCL codecs
//	cmd/wgraph  — command-line front end (stats, connected, dist, path, convert)
//
// Quick start:
//
//	g := core.NewGraph()
//	g.AddNode(1)
//	g.AddNode(2)
//	_ = g.Connect(1, 2, 2.5)
//
//	a := algorithms.New(g)
//	d := a.ShortestPathDist(1, 2) // 2.5
//	ok := a.Save("graph.wg")
//
// Invariants maintained by core.Graph:
//   - no self-loops and no parallel edges
//   - weights are symmetric and never negative
//   - a revision counter grows on every structural mutation
package wgraph

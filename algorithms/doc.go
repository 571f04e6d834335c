// SPDX-License-Identifier: MIT

// Package algorithms answers questions about a core.Graph.
//
// An Algorithms value borrows a graph (it never owns it) and provides:
//
//   - Copy: deep copy of the borrowed graph.
//   - IsConnected: single-source reachability from the smallest key.
//   - ShortestPathDist / ShortestPath: Dijkstra distance and route, with the
//     classic sentinel results (-1, nil).
//   - Distance / Path: the same queries with typed errors that separate
//     invalid input (ErrUninitialized, ErrNodeNotFound) from "no answer"
//     (ErrUnreachable).
//   - Save / Load: whole-graph persistence through package persist.
//
// The package also exposes a hop-count BFS and connected-component listing.
//
// No query writes to the graph or to its nodes' scratch fields; all traversal
// state is local to a call, so any number of queries may run concurrently over
// a graph that is not being mutated.
package algorithms

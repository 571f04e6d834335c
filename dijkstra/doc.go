// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// over a core.Graph (undirected, non-negative float64 weights).
//
// Overview:
//
//   - Nodes are settled in order of increasing distance using a binary min-heap.
//   - Relaxation pushes a fresh heap entry instead of decrease-key; stale entries
//     are skipped on extraction ("lazy deletion").
//   - All per-run state (distance, predecessor, visited) belongs to the run. Node
//     Label/Marker fields are never touched, so runs are re-entrant and several
//     goroutines may query the same unchanging graph at once.
//   - Ties between equal labels are broken by heap order; no result depends on it
//     other than which of several equal-cost paths PathTo returns.
//
// Options:
//
//	– Source(key):          required, the starting node.
//	– WithTarget(key):      stop as soon as key is settled.
//	– WithReturnPath():     record predecessors for Result.PathTo.
//	– WithMaxDistance(d):   leave nodes farther than d unreached (d ≥ 0).
//
// Errors (sentinel):
//
//	– ErrNilGraph        nil graph.
//	– ErrSourceNotSet    Source option missing.
//	– ErrSourceNotFound  source key absent from the graph.
//	– ErrTargetNotFound  target key absent from the graph.
//	– ErrBadMaxDistance  panic from WithMaxDistance for d < 0 or NaN.
//	– ErrUnreachable     Result.PathTo for a node that was not reached.
//	– ErrPathNotTracked  Result.PathTo without WithReturnPath.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); the heap may hold up to E entries.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(2), dijkstra.WithTarget(9), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	d, _ := res.Distance(9)
//	path, _ := res.PathTo(9)
package dijkstra

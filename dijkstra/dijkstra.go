// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
)

// Dijkstra computes shortest distances from Options.Source over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be supplied (ErrSourceNotSet) and exist (ErrSourceNotFound).
//  3. A Target, if supplied, must exist (ErrTargetNotFound).
//
// Weights are non-negative by core.Graph construction, so no pre-scan is needed.
//
// All traversal state (distance, predecessor, visited) lives in the runner; the
// graph's nodes are never written, so concurrent runs over an unchanging graph
// are safe.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) with lazy deletion in the heap.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !cfg.sourceSet {
		return nil, ErrSourceNotSet
	}
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, cfg.Source)
	}
	if cfg.HasTarget && !g.HasNode(cfg.Target) {
		return nil, fmt.Errorf("%w: %d", ErrTargetNotFound, cfg.Target)
	}

	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]float64, n),
		visited: make(map[int]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int]int, n)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{
		Source:  cfg.Source,
		Dist:    r.dist,
		Prev:    r.prev,
		Settled: r.settled,
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph     // graph being traversed, read-only
	options Options         // validated options for this run
	dist    map[int]float64 // absent key means +Inf
	prev    map[int]int     // nil unless ReturnPath
	visited map[int]bool    // settled nodes
	pq      nodePQ          // lazy-deletion min-heap
	settled int             // number of nodes settled so far
}

// init seeds the source at distance zero.
func (r *runner) init() {
	// 1) Distance to the source is zero; everything else is implicitly +Inf.
	r.dist[r.options.Source] = 0
	// 2) Initialize the heap and push the source.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{key: r.options.Source, dist: 0})
}

// distOf returns the tentative distance of key (+Inf if never labelled).
func (r *runner) distOf(key int) float64 {
	if d, ok := r.dist[key]; ok {
		return d
	}

	return math.Inf(1)
}

// process repeatedly settles the closest unvisited node.
//
// Loop termination conditions:
//
//   - The heap becomes empty.
//   - The target was settled.
//
// MaxDistance is enforced when labels are pushed (see relax), so every entry
// in the heap is already within the cap.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.key

		// 2) Skip a stale duplicate left behind by an earlier, larger label.
		if r.visited[u] {
			continue
		}

		// 3) Mark u as visited. Its distance is now final.
		r.visited[u] = true
		r.settled++

		// 4) Early exit once the target is settled.
		if cfg.HasTarget && u == cfg.Target {
			return nil
		}

		// 5) Relax every edge incident to u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves tentative distances of u's unvisited neighbors.
func (r *runner) relax(u int) error {
	// 1) Retrieve the neighbors of u in ascending key order.
	neighbors, err := r.g.NeighborKeys(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	// 2) For each unvisited neighbor v, attempt relaxation.
	du := r.dist[u]
	for _, v := range neighbors {
		if r.visited[v] {
			continue
		}
		w, ok := r.g.Edge(u, v)
		if !ok {
			// Edge vanished between NeighborKeys and Edge: graph mutated mid-run.
			continue
		}

		// Candidate distance for Source -> ... -> u -> v.
		candidate := du + w

		// Labels beyond MaxDistance are never recorded nor queued.
		if candidate > r.options.MaxDistance {
			continue
		}

		// Strictly better only; equal labels would just queue duplicates.
		if candidate >= r.distOf(v) {
			continue
		}

		// Record the improvement and queue v with its new label.
		r.dist[v] = candidate
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{key: v, dist: candidate})
	}

	return nil
}

// nodeItem is a heap entry: a node key and the label it was pushed with.
type nodeItem struct {
	key  int     // node key
	dist float64 // label at push time; may be stale
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Duplicates are allowed;
// entries for already-visited nodes are skipped on extraction.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

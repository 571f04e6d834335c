// SPDX-License-Identifier: MIT
//
// # BFS — Breadth-First Search
//
// Breadth-First Search explores the graph level by level from a start node,
// ignoring weights. It layers nodes by hop count and backs Components.
//
// Steps:
//  1. Initialize:
//     - Mark start visited, depth=0, enqueue.
//     - Invoke OnEnqueue hook.
//  2. Loop until queue empty:
//     2.1 Dequeue an item (key, depth).
//     2.2 Visit the node:
//     - Append to result.Order.
//     - Invoke OnVisit; if error, abort.
//     2.3 Enqueue unvisited neighbors in ascending key order:
//     - Mark visited, set parent and depth+1.
//     - Invoke OnEnqueue.
//  3. Check context cancellation before each dequeue.
//
// Time complexity: O(V + E log E) (neighbor keys are sorted)
// Memory usage:    O(V)

package algorithms

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/wgraph/core"
)

// BFSOptions configures traversal behavior.
type BFSOptions struct {
	// Ctx allows cancellation; if nil, context.Background() is used.
	Ctx context.Context

	// OnEnqueue(key, depth) is called immediately after key is enqueued.
	OnEnqueue func(key, depth int)
	// OnVisit(key, depth) is called when key is dequeued and visited.
	// If it returns an error, traversal aborts (key is already in Order).
	OnVisit func(key, depth int) error
}

// BFSResult holds the outcome of a BFS traversal.
type BFSResult struct {
	// Order is the sequence of visited keys.
	Order []int
	// Depth maps key → hop count from start.
	Depth map[int]int
	// Parent maps key → predecessor key in the BFS tree. The start has none.
	Parent map[int]int
}

// queueItem pairs a node key with its BFS depth.
type queueItem struct {
	key   int
	depth int
}

// BFS performs a breadth-first search on g from start.
// It returns a BFSResult and any error encountered (ErrUninitialized for a nil
// graph, ErrNodeNotFound, the context error, or a wrapped OnVisit error). The
// partial result is returned alongside hook and context errors.
func BFS(g *core.Graph, start int, opts *BFSOptions) (*BFSResult, error) {
	if g == nil {
		return nil, ErrUninitialized
	}
	ctx := context.Background()
	if opts != nil && opts.Ctx != nil {
		ctx = opts.Ctx
	}

	res := &BFSResult{
		Order:  make([]int, 0),
		Depth:  make(map[int]int),
		Parent: make(map[int]int),
	}
	w := &walker{
		graph: g,
		opts:  opts,
		res:   res,
		ctx:   ctx,
	}
	if err := w.init(start); err != nil {
		return res, err
	}
	if err := w.loop(); err != nil {
		return res, err
	}

	return res, nil
}

// walker holds the mutable state for one BFS execution.
type walker struct {
	graph *core.Graph
	opts  *BFSOptions
	res   *BFSResult
	ctx   context.Context
	queue []queueItem
}

func (w *walker) init(start int) error {
	if !w.graph.HasNode(start) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, start)
	}
	w.push(queueItem{key: start, depth: 0})

	return nil
}

// push marks key visited (via Depth) and enqueues it.
func (w *walker) push(item queueItem) {
	w.res.Depth[item.key] = item.depth
	w.queue = append(w.queue, item)
	if w.opts != nil && w.opts.OnEnqueue != nil {
		w.opts.OnEnqueue(item.key, item.depth)
	}
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.key)
		if w.opts != nil && w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(item.key, item.depth); err != nil {
				return fmt.Errorf("algorithms: OnVisit error at %d: %w", item.key, err)
			}
		}

		nbrs, err := w.graph.NeighborKeys(item.key)
		if err != nil {
			// Removed concurrently; nothing to expand.
			continue
		}
		for _, v := range nbrs {
			if _, seen := w.res.Depth[v]; seen {
				continue
			}
			w.res.Parent[v] = item.key
			w.push(queueItem{key: v, depth: item.depth + 1})
		}
	}

	return nil
}

// Components lists the connected components of g, each sorted ascending and
// ordered by smallest key. A nil graph has no components.
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	seen := make(map[int]bool, g.NodeCount())
	var out [][]int
	for _, k := range g.NodeKeys() {
		if seen[k] {
			continue
		}
		res, err := BFS(g, k, nil)
		if err != nil {
			continue
		}
		comp := make([]int, 0, len(res.Order))
		for _, v := range res.Order {
			seen[v] = true
			comp = append(comp, v)
		}
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}

// Components lists the connected components of the bound graph.
func (a *Algorithms) Components() [][]int {
	return Components(a.Graph())
}

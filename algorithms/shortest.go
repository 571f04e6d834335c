// SPDX-License-Identifier: MIT

package algorithms

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
)

// IsConnected reports whether every node is reachable from every other.
//
// An unbound graph or one with fewer than two nodes is vacuously connected.
// Otherwise one Dijkstra run starts at the smallest key; since edges are
// symmetric, reaching every node from one start proves connectivity for all.
func (a *Algorithms) IsConnected() bool {
	g := a.Graph()
	if g == nil {
		return true
	}
	keys := g.NodeKeys()
	if len(keys) < 2 {
		return true
	}

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(keys[0]))
	if err != nil {
		// Start node removed between NodeKeys and the run.
		return false
	}
	for _, k := range keys {
		if !res.Reached(k) {
			return false
		}
	}

	return true
}

// Distance returns the shortest-path cost from src to dest.
//
// Errors:
//   - ErrUninitialized if no graph is bound.
//   - ErrNodeNotFound if src or dest is absent.
//   - ErrUnreachable if both exist but lie in different components.
//
// Distance(k, k) is 0 for any existing k and does not run the search.
func (a *Algorithms) Distance(src, dest int) (float64, error) {
	g, err := a.bound(src, dest)
	if err != nil {
		return NoPath, err
	}
	if src == dest {
		return 0, nil
	}

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithTarget(dest))
	if err != nil {
		return NoPath, mapEngineErr(err)
	}
	d, ok := res.Distance(dest)
	if !ok {
		return NoPath, fmt.Errorf("%w: %d -> %d", ErrUnreachable, src, dest)
	}

	return d, nil
}

// Path returns the nodes of a shortest route [src ... dest].
// Errors are those of Distance. Path(k, k) is the single node k.
func (a *Algorithms) Path(src, dest int) ([]*core.Node, error) {
	g, err := a.bound(src, dest)
	if err != nil {
		return nil, err
	}
	if src == dest {
		n, _ := g.Node(src)
		return []*core.Node{n}, nil
	}

	res, err := dijkstra.Dijkstra(g,
		dijkstra.Source(src),
		dijkstra.WithTarget(dest),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		return nil, mapEngineErr(err)
	}
	keys, err := res.PathTo(dest)
	if err != nil {
		return nil, fmt.Errorf("%w: %d -> %d", ErrUnreachable, src, dest)
	}

	path := make([]*core.Node, 0, len(keys))
	for _, k := range keys {
		n, ok := g.Node(k)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, k)
		}
		path = append(path, n)
	}

	return path, nil
}

// ShortestPathDist is Distance with the sentinel convention: NoPath (-1) for
// an unbound graph, an absent key, or an unreachable destination.
func (a *Algorithms) ShortestPathDist(src, dest int) float64 {
	d, err := a.Distance(src, dest)
	if err != nil {
		return NoPath
	}

	return d
}

// ShortestPath is Path with the sentinel convention: nil when there is no
// answer. A trivial route is never nil, it holds one node.
func (a *Algorithms) ShortestPath(src, dest int) []*core.Node {
	path, err := a.Path(src, dest)
	if err != nil {
		return nil
	}

	return path
}

// bound returns the bound graph after checking both keys exist.
func (a *Algorithms) bound(src, dest int) (*core.Graph, error) {
	g := a.Graph()
	if g == nil {
		return nil, ErrUninitialized
	}
	for _, k := range [...]int{src, dest} {
		if !g.HasNode(k) {
			return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, k)
		}
	}

	return g, nil
}

// mapEngineErr translates engine validation errors into this package's
// sentinels.
func mapEngineErr(err error) error {
	switch {
	case errors.Is(err, dijkstra.ErrSourceNotFound), errors.Is(err, dijkstra.ErrTargetNotFound):
		return fmt.Errorf("%w: %v", ErrNodeNotFound, err)
	case errors.Is(err, dijkstra.ErrNilGraph):
		return ErrUninitialized
	}

	return err
}

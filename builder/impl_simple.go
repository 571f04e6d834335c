// SPDX-License-Identifier: MIT
//
// Simple deterministic topologies: Path, Cycle, Star, Complete.
//
// Determinism:
//   - Nodes are registered in ascending local index order.
//   - Edges are emitted in ascending (i, j) order, so with a seeded WeightFn
//     each edge always receives the same weight.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path builds P_n: 0-1-2-...-(n-1). Requires n ≥ 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addNodes(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := connect(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: a Path closed by edge (n-1, 0). Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := connect(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a hub (local index 0) with n-1 leaves. Requires n ≥ 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := connect(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n. Requires n ≥ 1.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

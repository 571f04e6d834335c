// SPDX-License-Identifier: MIT
//
// Grid(rows, cols): 2D orthogonal grid with 4-neighborhood.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r, c) has local index r*cols + c (row-major).
//   - For each cell, emit Right then Bottom if present.
//
// Complexity: O(rows*cols) nodes and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		addNodes(g, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := connect(methodGrid, g, cfg, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(methodGrid, g, cfg, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

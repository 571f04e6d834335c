// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves bopts, and applies cons in
// order. The first constructor error is returned wrapped as "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs cons against an existing graph. On error g may hold the nodes and
// edges added before the failing constructor.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// addNodes registers keys key(0)..key(n-1).
func addNodes(g *core.Graph, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddNode(cfg.key(i))
	}
}

// connect adds edge (i, j) in local indices with the next drawn weight.
func connect(method string, g *core.Graph, cfg builderConfig, i, j int) error {
	a, b := cfg.key(i), cfg.key(j)
	if err := g.Connect(a, b, cfg.weight()); err != nil {
		return fmt.Errorf("%s: Connect(%d,%d): %v: %w", method, a, b, err, ErrConstructFailed)
	}

	return nil
}

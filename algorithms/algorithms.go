// SPDX-License-Identifier: MIT

package algorithms

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/persist"
)

// NoPath is the sentinel distance for "no answer" (invalid input or unreachable).
const NoPath float64 = -1

// Sentinel errors returned by the typed query methods.
var (
	// ErrUninitialized indicates no graph is bound.
	ErrUninitialized = errors.New("algorithms: no graph bound")

	// ErrNodeNotFound indicates a query key is absent from the bound graph.
	ErrNodeNotFound = errors.New("algorithms: node not found")

	// ErrUnreachable indicates both keys exist but no path joins them.
	ErrUnreachable = errors.New("algorithms: destination unreachable")
)

// Algorithms runs queries over a borrowed *core.Graph.
//
// The reference may be nil ("uninitialized") and can be swapped with Init.
// Several Algorithms values may share one graph.
type Algorithms struct {
	mu     sync.RWMutex
	g      *core.Graph
	log    *zap.Logger
	format persist.Format
}

// Option configures an Algorithms value.
type Option func(*Algorithms)

// WithLogger sets the logger used to report persistence failures.
func WithLogger(l *zap.Logger) Option {
	return func(a *Algorithms) {
		if l != nil {
			a.log = l
		}
	}
}

// WithSnapshotFormat forces the persistence format used by Save and Load.
// The default infers it from the file extension.
func WithSnapshotFormat(f persist.Format) Option {
	return func(a *Algorithms) { a.format = f }
}

// New binds g (which may be nil) and applies opts.
func New(g *core.Graph, opts ...Option) *Algorithms {
	a := &Algorithms{g: g, log: zap.NewNop(), format: persist.FormatAuto}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init rebinds the borrowed graph. Passing nil unbinds it.
func (a *Algorithms) Init(g *core.Graph) {
	a.mu.Lock()
	a.g = g
	a.mu.Unlock()
}

// Graph returns the bound graph, or nil.
func (a *Algorithms) Graph() *core.Graph {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.g
}

// Copy returns a deep copy of the bound graph, or nil when uninitialized.
func (a *Algorithms) Copy() *core.Graph {
	g := a.Graph()
	if g == nil {
		return nil
	}

	return g.Clone()
}

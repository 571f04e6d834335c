// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotSet indicates that no Source option was supplied.
	ErrSourceNotSet = errors.New("dijkstra: source not set")

	// ErrSourceNotFound indicates that the source node does not exist.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrTargetNotFound indicates that the early-exit target does not exist.
	ErrTargetNotFound = errors.New("dijkstra: target node not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable indicates that a node was not reached from the source.
	ErrUnreachable = errors.New("dijkstra: node not reachable from source")

	// ErrPathNotTracked indicates PathTo was called without WithReturnPath.
	ErrPathNotTracked = errors.New("dijkstra: predecessors not recorded")
)

// Options configures a single Dijkstra run.
type Options struct {
	Source      int     // starting node key
	Target      int     // early-exit node key, valid when HasTarget
	HasTarget   bool    // whether Target is set
	ReturnPath  bool    // whether to record predecessors
	MaxDistance float64 // settle only nodes with dist <= MaxDistance

	sourceSet bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no source, no target, no predecessor
// tracking and no distance cap (+Inf).
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
	}
}

// Source sets the starting node. Required.
func Source(key int) Option {
	return func(o *Options) {
		o.Source = key
		o.sourceSet = true
	}
}

// WithTarget stops the run once key is extracted from the queue; its distance
// and predecessor chain are final at that point.
func WithTarget(key int) Option {
	return func(o *Options) {
		o.Target = key
		o.HasTarget = true
	}
}

// WithReturnPath records predecessors so Result.PathTo can rebuild routes.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance stops settling nodes whose distance exceeds max.
// A negative or NaN max panics with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// Result holds the outcome of one run.
//
// Dist contains only reached nodes; a missing key means "infinite".
// Prev maps a reached node to its predecessor on a shortest path (the source
// has none). Prev is nil unless WithReturnPath was given.
// After an early exit on WithTarget, entries of nodes that were not yet settled
// are upper bounds, not final distances.
type Result struct {
	Source  int
	Dist    map[int]float64
	Prev    map[int]int
	Settled int
}

// Distance returns the shortest distance to key and whether key was reached.
func (r *Result) Distance(key int) (float64, bool) {
	d, ok := r.Dist[key]
	if !ok {
		return math.Inf(1), false
	}

	return d, true
}

// Reached reports whether key received a finite distance.
func (r *Result) Reached(key int) bool {
	_, ok := r.Dist[key]

	return ok
}

// PathTo rebuilds the node sequence [Source ... dest] by walking predecessors
// back from dest and reversing.
func (r *Result) PathTo(dest int) ([]int, error) {
	if r.Prev == nil {
		return nil, ErrPathNotTracked
	}
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dest)
	}
	path := []int{dest}
	for cur := dest; cur != r.Source; {
		prev, ok := r.Prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: broken predecessor chain at %d", ErrUnreachable, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures from composable
// topology constructors: Path, Cycle, Star, Complete, Grid and RandomSparse.
//
// Every constructor registers its nodes as consecutive integer keys starting at
// the configured key offset (WithKeyOffset, default 0) and draws each edge
// weight from the configured WeightFn (default: constant 1). Stochastic pieces
// (RandomSparse, UniformWeightFn) read from a *rand.Rand set via WithSeed or
// WithRand, so equal options and call order always yield equal graphs.
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 10))},
//		builder.Grid(8, 8),
//	)
//
// Option constructors panic on meaningless input; constructors return sentinel
// errors and never panic.
package builder

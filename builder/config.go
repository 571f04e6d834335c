// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// keyOffset is the key of the first node a constructor registers.
	keyOffset int
	// rng for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// weightFn draws one edge weight.
	weightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// key maps a constructor-local index to a graph key.
func (c builderConfig) key(i int) int { return c.keyOffset + i }

// weight draws the next edge weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }

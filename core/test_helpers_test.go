// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

// Fixture sizes (avoid magic numbers in test bodies).
const (
	NScenarioNodes = 11
	NReaders       = 50
	NWriters       = 8
	NRounds        = 200
)

// scenarioEdges is the reference weighted graph over nodes 0..10; node 10 is isolated.
var scenarioEdges = []core.Edge{
	{From: 2, To: 5, Weight: 1},
	{From: 1, To: 9, Weight: 8.3},
	{From: 3, To: 5, Weight: 2},
	{From: 1, To: 5, Weight: 0.5},
	{From: 8, To: 4, Weight: 3},
	{From: 0, To: 6, Weight: 4.1},
	{From: 7, To: 4, Weight: 9},
}

// newScenarioGraph builds nodes 0..10 and connects scenarioEdges.
func newScenarioGraph(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for k := 0; k < NScenarioNodes; k++ {
		require.True(t, g.AddNode(k))
	}
	for _, e := range scenarioEdges {
		require.NoError(t, g.Connect(e.From, e.To, e.Weight))
	}

	return g
}

// requireSameGraph asserts structural and scratch equality of two distinct graphs.
func requireSameGraph(t *testing.T, want, got *core.Graph) {
	t.Helper()
	require.NotSame(t, want, got)
	require.Equal(t, want.NodeCount(), got.NodeCount(), "node count")
	require.Equal(t, want.EdgeCount(), got.EdgeCount(), "edge count")
	require.Equal(t, want.Revision(), got.Revision(), "revision")

	for _, n := range want.Nodes() {
		m, ok := got.Node(n.Key)
		require.True(t, ok, "node %d missing", n.Key)
		require.NotSame(t, n, m, "node %d shared", n.Key)
		require.Equal(t, n.Label, m.Label, "label of %d", n.Key)
		require.Equal(t, n.Marker, m.Marker, "marker of %d", n.Key)

		nbrs, err := want.NeighborKeys(n.Key)
		require.NoError(t, err)
		for _, nbr := range nbrs {
			require.Equal(t, want.EdgeWeight(n.Key, nbr), got.EdgeWeight(n.Key, nbr), "weight %d-%d", n.Key, nbr)
		}
	}
}

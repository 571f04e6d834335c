// SPDX-License-Identifier: MIT
// Package core_test verifies deep-copy and snapshot contracts.

package core_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

func TestGraph_Clone(t *testing.T) {
	g := newScenarioGraph(t)
	n, _ := g.Node(4)
	n.Label = 2.5
	n.Marker = "seen"

	c := g.Clone()
	requireSameGraph(t, g, c)
	requireSameGraph(t, c, g)
	if diff := cmp.Diff(g.Snapshot(), c.Snapshot()); diff != "" {
		t.Fatalf("clone snapshot mismatch (-src +clone):\n%s", diff)
	}

	// Mutating the clone leaves the source untouched.
	rev := g.Revision()
	require.NoError(t, c.Connect(9, 10, 7.3))
	_, err := c.RemoveNode(5)
	require.NoError(t, err)
	cn, _ := c.Node(4)
	cn.Label = 99

	assert.False(t, g.HasEdge(9, 10))
	assert.True(t, g.HasNode(5))
	assert.Equal(t, 2.5, n.Label)
	assert.Equal(t, rev, g.Revision())
	assert.Equal(t, rev+2, c.Revision(), "clone continues the source numbering")
}

func TestGraph_CloneEmpty(t *testing.T) {
	g := core.NewGraph()
	c := g.Clone()
	requireSameGraph(t, g, c)
	assert.Equal(t, uint64(0), c.Revision())
}

func TestSnapshot_RoundTrip(t *testing.T) {
	g := newScenarioGraph(t)
	n, _ := g.Node(0)
	n.Label = math.Inf(1)
	n.Marker = "False"
	require.NoError(t, g.RemoveEdge(4, 7))

	s := g.Snapshot()
	assert.Equal(t, g.Revision(), s.Revision)
	assert.Len(t, s.Nodes, g.NodeCount())
	assert.Len(t, s.Edges, g.EdgeCount())

	r, err := core.FromSnapshot(s)
	require.NoError(t, err)
	requireSameGraph(t, g, r)
	if diff := cmp.Diff(s, r.Snapshot()); diff != "" {
		t.Fatalf("rebuilt snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestFromSnapshot_Invalid(t *testing.T) {
	nodes := []core.Node{{Key: 1}, {Key: 2}}
	cases := []struct {
		name string
		snap core.Snapshot
		want error
	}{
		{"duplicate node", core.Snapshot{Nodes: []core.Node{{Key: 1}, {Key: 1}}}, core.ErrDuplicateNode},
		{"self loop", core.Snapshot{Nodes: nodes, Edges: []core.Edge{{From: 1, To: 1, Weight: 1}}}, core.ErrSelfLoop},
		{"unknown endpoint", core.Snapshot{Nodes: nodes, Edges: []core.Edge{{From: 1, To: 3, Weight: 1}}}, core.ErrNodeNotFound},
		{"negative weight", core.Snapshot{Nodes: nodes, Edges: []core.Edge{{From: 1, To: 2, Weight: -1}}}, core.ErrNegativeWeight},
		{"nan weight", core.Snapshot{Nodes: nodes, Edges: []core.Edge{{From: 1, To: 2, Weight: math.NaN()}}}, core.ErrNegativeWeight},
		{"infinite weight", core.Snapshot{Nodes: nodes, Edges: []core.Edge{{From: 1, To: 2, Weight: math.Inf(1)}}}, core.ErrInfiniteWeight},
		{"duplicate pair", core.Snapshot{Nodes: nodes, Edges: []core.Edge{{From: 1, To: 2, Weight: 1}, {From: 2, To: 1, Weight: 2}}}, core.ErrDuplicateEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.FromSnapshot(tc.snap)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

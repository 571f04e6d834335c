// SPDX-License-Identifier: MIT
package core_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

func TestNode_JSON(t *testing.T) {
	cases := []struct {
		name  string
		label float64
		want  string
	}{
		{"zero", 0, `{"key":1,"marker":"m"}`},
		{"finite", 2.5, `{"key":1,"label":2.5,"marker":"m"}`},
		{"+inf", math.Inf(1), `{"key":1,"label":"+Inf","marker":"m"}`},
		{"-inf", math.Inf(-1), `{"key":1,"label":"-Inf","marker":"m"}`},
		{"nan", math.NaN(), `{"key":1,"label":"NaN","marker":"m"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(core.Node{Key: 1, Label: tc.label, Marker: "m"})
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(data))

			var got core.Node
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, 1, got.Key)
			assert.Equal(t, "m", got.Marker)
			if math.IsNaN(tc.label) {
				assert.True(t, math.IsNaN(got.Label))
			} else {
				assert.Equal(t, tc.label, got.Label)
			}
		})
	}
}

func TestNode_JSONInvalid(t *testing.T) {
	var n core.Node
	require.Error(t, json.Unmarshal([]byte(`{"key":1,"label":"huge"}`), &n))
	require.Error(t, json.Unmarshal([]byte(`{"key":1,"label":true}`), &n))
	require.Error(t, json.Unmarshal([]byte(`{"key":1,"colour":"red"}`), &n), "unknown fields are rejected")
}

func TestSnapshot_JSONNonFiniteLabels(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(1)
	g.AddNode(2)
	require.NoError(t, g.Connect(1, 2, 3))
	n1, _ := g.Node(1)
	n1.Label = math.Inf(1)
	n2, _ := g.Node(2)
	n2.Label = math.NaN()

	data, err := json.Marshal(g.Snapshot())
	require.NoError(t, err)

	var snap core.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	restored, err := core.FromSnapshot(snap)
	require.NoError(t, err)

	r1, _ := restored.Node(1)
	r2, _ := restored.Node(2)
	assert.True(t, math.IsInf(r1.Label, 1))
	assert.True(t, math.IsNaN(r2.Label))
	assert.Equal(t, 3.0, restored.EdgeWeight(1, 2))
	assert.Equal(t, g.Revision(), restored.Revision())
}

// SPDX-License-Identifier: MIT
package persist_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/persist"
)

// sampleGraph is the 0..10 scenario graph with a few scratch values set.
func sampleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for k := 0; k <= 10; k++ {
		g.AddNode(k)
	}
	for _, e := range []struct {
		a, b int
		w    float64
	}{
		{2, 5, 1}, {1, 9, 8.3}, {3, 5, 2}, {1, 5, 0.5}, {8, 4, 3}, {0, 6, 4.1}, {7, 4, 9},
	} {
		require.NoError(t, g.Connect(e.a, e.b, e.w))
	}
	n, _ := g.Node(3)
	n.Label, n.Marker = 4.25, "grey"
	n, _ = g.Node(10)
	n.Marker = "isolated"

	return g
}

func requireSameGraph(t *testing.T, want, got *core.Graph) {
	t.Helper()
	require.NotNil(t, got)
	if diff := cmp.Diff(want.Snapshot(), got.Snapshot(), cmpopts.EquateEmpty(), cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, want.NodeCount(), got.NodeCount())
	assert.Equal(t, want.EdgeCount(), got.EdgeCount())
	assert.Equal(t, want.Revision(), got.Revision())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, name := range []string{"graph.wg", "graph.json", "graph.yaml", "graph.yml"} {
		t.Run(name, func(t *testing.T) {
			g := sampleGraph(t)
			path := filepath.Join(t.TempDir(), name)

			require.NoError(t, persist.Save(path, g))
			loaded, err := persist.Load(path)
			require.NoError(t, err)
			requireSameGraph(t, g, loaded)

			// Loaded graph is independent of the source.
			require.NoError(t, loaded.RemoveEdge(2, 5))
			assert.True(t, g.HasEdge(2, 5))
		})
	}
}

func TestSaveLoad_NonFiniteLabels(t *testing.T) {
	for _, name := range []string{"graph.wg", "graph.json", "graph.yaml"} {
		t.Run(name, func(t *testing.T) {
			g := sampleGraph(t)
			for key, label := range map[int]float64{0: math.Inf(1), 4: math.Inf(-1), 10: math.NaN()} {
				n, _ := g.Node(key)
				n.Label = label
			}
			path := filepath.Join(t.TempDir(), name)

			require.NoError(t, persist.Save(path, g))
			loaded, err := persist.Load(path)
			require.NoError(t, err)
			requireSameGraph(t, g, loaded)

			n, _ := loaded.Node(0)
			assert.True(t, math.IsInf(n.Label, 1))
			n, _ = loaded.Node(4)
			assert.True(t, math.IsInf(n.Label, -1))
			n, _ = loaded.Node(10)
			assert.True(t, math.IsNaN(n.Label))
			assert.Equal(t, "isolated", n.Marker)
		})
	}
}

func TestDecode_InfiniteWeight(t *testing.T) {
	src := "revision: 3\nnodes:\n  - key: 1\n  - key: 2\nedges:\n  - {from: 1, to: 2, weight: .inf}\n"
	g, err := persist.Decode(strings.NewReader(src), persist.FormatYAML)
	require.ErrorIs(t, err, core.ErrInfiniteWeight)
	assert.Nil(t, g)
}

func TestSaveLoad_EmptyGraph(t *testing.T) {
	g := core.NewGraph()
	path := filepath.Join(t.TempDir(), "empty.wg")
	require.NoError(t, persist.Save(path, g))

	loaded, err := persist.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.NodeCount())
	assert.Equal(t, uint64(0), loaded.Revision())
}

func TestSaveLoad_ForcedFormat(t *testing.T) {
	g := sampleGraph(t)
	path := filepath.Join(t.TempDir(), "graph.data")

	require.NoError(t, persist.Save(path, g, persist.WithFormat(persist.FormatJSON)))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")))

	// Extension says binary; the override wins.
	loaded, err := persist.Load(path, persist.WithFormat(persist.FormatJSON))
	require.NoError(t, err)
	requireSameGraph(t, g, loaded)

	_, err = persist.Load(path)
	require.ErrorIs(t, err, persist.ErrCorrupt)
}

func TestSave_InvalidInput(t *testing.T) {
	dir := t.TempDir()

	require.ErrorIs(t, persist.Save("", core.NewGraph()), persist.ErrEmptyPath)
	require.ErrorIs(t, persist.Save(filepath.Join(dir, "g.wg"), nil), persist.ErrNilGraph)
	require.ErrorIs(t, persist.Save(filepath.Join(dir, "g.hcl"), core.NewGraph()), persist.ErrReadOnlyFormat)
	require.Error(t, persist.Save(filepath.Join(dir, "missing", "g.wg"), core.NewGraph()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSave_FailureKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.wg")
	g := sampleGraph(t)
	require.NoError(t, persist.Save(path, g))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = persist.Save(path, core.NewGraph(), persist.WithFormat(persist.Format(99)))
	require.ErrorIs(t, err, persist.ErrUnknownFormat)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be cleaned up")
}

func TestLoad_InvalidInput(t *testing.T) {
	g, err := persist.Load("")
	require.ErrorIs(t, err, persist.ErrEmptyPath)
	assert.Nil(t, g)

	g, err = persist.Load(filepath.Join(t.TempDir(), "nope.wg"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, g)
}

func TestDecode_CorruptBinary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, persist.Encode(&buf, sampleGraph(t), persist.FormatBinary))
	good := buf.Bytes()

	mutate := func(f func([]byte) []byte) []byte {
		cp := append([]byte(nil), good...)
		return f(cp)
	}
	cases := map[string][]byte{
		"empty":     {},
		"short":     good[:10],
		"bad magic": mutate(func(b []byte) []byte { b[0] = 'X'; return b }),
		"version":   mutate(func(b []byte) []byte { b[4] = 9; return b }),
		"digest":    mutate(func(b []byte) []byte { b[5] ^= 0xff; return b }),
		"truncated": good[:len(good)/2],
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := persist.Decode(bytes.NewReader(data), persist.FormatBinary)
			require.ErrorIs(t, err, persist.ErrCorrupt)
			assert.Nil(t, g)
		})
	}
}

func TestDecode_InvalidSnapshot(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"self loop": {
			src:  `{"revision":1,"nodes":[{"key":1}],"edges":[{"from":1,"to":1,"weight":1}]}`,
			want: core.ErrSelfLoop,
		},
		"unknown endpoint": {
			src:  `{"revision":1,"nodes":[{"key":1}],"edges":[{"from":1,"to":2,"weight":1}]}`,
			want: core.ErrNodeNotFound,
		},
		"negative weight": {
			src:  `{"revision":3,"nodes":[{"key":1},{"key":2}],"edges":[{"from":1,"to":2,"weight":-1}]}`,
			want: core.ErrNegativeWeight,
		},
		"duplicate node": {
			src:  `{"revision":2,"nodes":[{"key":1},{"key":1}],"edges":[]}`,
			want: core.ErrDuplicateNode,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := persist.Decode(strings.NewReader(tc.src), persist.FormatJSON)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}

	_, err := persist.Decode(strings.NewReader(`{"nodes":[],"bogus":1}`), persist.FormatJSON)
	require.Error(t, err)
}

func TestDecode_HCL(t *testing.T) {
	src := `
nodes = [0, 1, 2, 10]

edge {
  from   = 2
  to     = 5
  weight = 1
}

edge {
  from   = 1
  to     = 5
  weight = 0.5
}
`
	g, err := persist.Decode(strings.NewReader(src), persist.FormatHCL)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 5, 10}, g.NodeKeys())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 1.0, g.EdgeWeight(5, 2))
	assert.Equal(t, 0.5, g.EdgeWeight(1, 5))
}

func TestDecode_HCLErrors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"duplicate edge": {
			src:  "edge {\n from = 1\n to = 2\n weight = 1\n}\nedge {\n from = 2\n to = 1\n weight = 3\n}\n",
			want: core.ErrDuplicateEdge,
		},
		"self loop": {
			src:  "edge {\n from = 1\n to = 1\n weight = 1\n}\n",
			want: core.ErrSelfLoop,
		},
		"negative": {
			src:  "edge {\n from = 1\n to = 2\n weight = -2\n}\n",
			want: core.ErrNegativeWeight,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := persist.Decode(strings.NewReader(tc.src), persist.FormatHCL)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}

	_, err := persist.Decode(strings.NewReader("edge {"), persist.FormatHCL)
	require.Error(t, err)
	_, err = persist.Decode(strings.NewReader("edge {\n from = 1\n}\n"), persist.FormatHCL)
	require.Error(t, err, "missing attributes are rejected")
}

func TestLoad_HCLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.hcl")
	require.NoError(t, os.WriteFile(path, []byte("nodes = [3]\n"), 0o600))

	g, err := persist.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, g.NodeKeys())
}

func TestFormat(t *testing.T) {
	for path, want := range map[string]persist.Format{
		"a.json": persist.FormatJSON,
		"a.YAML": persist.FormatYAML,
		"a.yml":  persist.FormatYAML,
		"a.hcl":  persist.FormatHCL,
		"a.wg":   persist.FormatBinary,
		"a":      persist.FormatBinary,
	} {
		assert.Equal(t, want, persist.FormatFor(path), path)
	}

	for name, want := range map[string]persist.Format{
		"":       persist.FormatAuto,
		"auto":   persist.FormatAuto,
		"Binary": persist.FormatBinary,
		"json":   persist.FormatJSON,
		"yml":    persist.FormatYAML,
		"hcl":    persist.FormatHCL,
	} {
		got, err := persist.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := persist.ParseFormat("xml")
	require.ErrorIs(t, err, persist.ErrUnknownFormat)

	assert.Equal(t, "yaml", persist.FormatYAML.String())
	assert.Equal(t, "format(42)", persist.Format(42).String())
}

func TestSaveLoad_Logging(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(obs)

	path := filepath.Join(t.TempDir(), "g.json")
	require.NoError(t, persist.Save(path, sampleGraph(t), persist.WithLogger(log)))
	_, err := persist.Load(path, persist.WithLogger(log))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "graph saved", entries[0].Message)
	assert.Equal(t, "graph loaded", entries[1].Message)
	assert.Equal(t, int64(11), entries[1].ContextMap()["nodes"])
	assert.Equal(t, "json", entries[1].ContextMap()["format"])
}

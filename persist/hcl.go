// SPDX-License-Identifier: MIT

package persist

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/wgraph/core"
)

// hclGraphFile is the top-level structure of a hand-written graph definition:
//
//	nodes = [0, 1, 2]
//
//	edge {
//	  from   = 0
//	  to     = 1
//	  weight = 2.5
//	}
//
// Edge endpoints missing from nodes are registered implicitly.
type hclGraphFile struct {
	Nodes []int     `hcl:"nodes,optional"`
	Edges []hclEdge `hcl:"edge,block"`
}

type hclEdge struct {
	From   int     `hcl:"from"`
	To     int     `hcl:"to"`
	Weight float64 `hcl:"weight"`
}

// hclFilename labels diagnostics for definitions read from a stream.
const hclFilename = "graph.hcl"

func decodeHCL(r io.Reader) (*core.Graph, error) {
	src, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("persist: read hcl: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, hclFilename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("persist: failed to parse HCL: %w", diags)
	}

	var parsed hclGraphFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("persist: failed to decode HCL: %w", diags)
	}

	g := core.NewGraph()
	for _, k := range parsed.Nodes {
		g.AddNode(k)
	}
	for i, e := range parsed.Edges {
		g.AddNode(e.From)
		g.AddNode(e.To)
		if g.HasEdge(e.From, e.To) {
			return nil, fmt.Errorf("persist: edge block %d: %w: %d-%d", i, core.ErrDuplicateEdge, e.From, e.To)
		}
		if err := g.Connect(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("persist: edge block %d: %w", i, err)
		}
	}

	return g, nil
}

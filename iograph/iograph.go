// SPDX-License-Identifier: MIT
// Package iograph is the JSON boundary: it decodes the wire schema spec.md
// §6 describes into a graph.Graph, and encodes a graph.Graph back out.
// Decoding flattens each edge's "lines" entries — a mix of bare line ID
// strings and {"id": "..."} objects is accepted, matching prepare_graph.py's
// normalization — into a plain []string before the rest of the pipeline
// ever sees it.
package iograph

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/weese/transit-map/graph"
)

type wireNode struct {
	ID       string  `json:"id"`
	Metadata nodeMeta `json:"metadata"`
}

type nodeMeta struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Dummy bool    `json:"dummy"`
}

type wireEdge struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Metadata edgeMeta `json:"metadata"`
}

type edgeMeta struct {
	Lines []json.RawMessage `json:"lines"`
}

type wireGraph struct {
	Nodes []wireNode `json:"nodes"`
	Edges []wireEdge `json:"edges"`
}

// Decode reads a network graph in the wire schema from r.
func Decode(r io.Reader) (*graph.Graph, error) {
	var w wireGraph
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, fmt.Errorf("iograph: decode: %w", err)
	}

	nodes := make([]*graph.Node, len(w.Nodes))
	for i, n := range w.Nodes {
		nodes[i] = &graph.Node{ID: n.ID, X: n.Metadata.X, Y: n.Metadata.Y, Dummy: n.Metadata.Dummy}
	}

	edges := make([]*graph.Edge, len(w.Edges))
	for i, e := range w.Edges {
		lines, err := flattenLines(e.Metadata.Lines)
		if err != nil {
			return nil, fmt.Errorf("iograph: edge %d: %w", i, err)
		}
		edges[i] = &graph.Edge{Source: e.Source, Target: e.Target, Lines: lines}
	}

	return graph.New(nodes, edges)
}

// flattenLines normalizes each raw line entry: a bare JSON string is used
// as-is; a JSON object is decoded and its "id" field is used.
func flattenLines(raw []json.RawMessage) ([]string, error) {
	out := make([]string, len(raw))
	for i, r := range raw {
		var asString string
		if err := json.Unmarshal(r, &asString); err == nil {
			out[i] = asString
			continue
		}
		var asObject struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(r, &asObject); err != nil {
			return nil, fmt.Errorf("line entry %d is neither a string nor an object with an id: %w", i, err)
		}
		out[i] = asObject.ID
	}
	return out, nil
}

// Encode writes g to w in the wire schema.
func Encode(w io.Writer, g *graph.Graph) error {
	out := wireGraph{
		Nodes: make([]wireNode, len(g.Nodes)),
		Edges: make([]wireEdge, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		out.Nodes[i] = wireNode{ID: n.ID, Metadata: nodeMeta{X: n.X, Y: n.Y, Dummy: n.Dummy}}
	}
	for i, e := range g.Edges {
		lines := make([]json.RawMessage, len(e.Lines))
		for j, l := range e.Lines {
			raw, err := json.Marshal(l)
			if err != nil {
				return fmt.Errorf("iograph: marshal line %q: %w", l, err)
			}
			lines[j] = raw
		}
		out.Edges[i] = wireEdge{Source: e.Source, Target: e.Target, Metadata: edgeMeta{Lines: lines}}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("iograph: encode: %w", err)
	}
	return nil
}

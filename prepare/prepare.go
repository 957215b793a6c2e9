// SPDX-License-Identifier: MIT
// Package prepare implements GraphPreparer: it takes a freshly decoded
// graph.Graph, validates it, and returns an independent copy annotated
// with each edge's candidate octolinear directions.
//
// Line-object flattening and default-metadata handling (the other two
// GraphPreparer duties in spec.md §4.3) happen earlier, at the iograph
// decode boundary, because Go's typed decode makes "ensure every node has
// a metadata object" moot and lets "lines is a list of scalar IDs" be a
// property of the wire format rather than a runtime normalization step.
package prepare

import (
	"fmt"

	"github.com/weese/transit-map/direction"
	"github.com/weese/transit-map/graph"
)

// Prepare validates g (every edge endpoint must resolve to a declared
// node) and returns a deep copy with SourceDirections/TargetDirections
// populated on every edge. The input is never mutated.
func Prepare(g *graph.Graph) (*graph.Graph, error) {
	byID := make(map[string]*graph.Node, len(g.Nodes))
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}

	out := g.Clone()
	for _, e := range out.Edges {
		source, ok := byID[e.Source]
		if !ok {
			return nil, fmt.Errorf("prepare: edge %s->%s: %w", e.Source, e.Target, graph.ErrUnknownNode)
		}
		target, ok := byID[e.Target]
		if !ok {
			return nil, fmt.Errorf("prepare: edge %s->%s: %w", e.Source, e.Target, graph.ErrUnknownNode)
		}

		c := direction.Classify(source.X, source.Y, target.X, target.Y)
		e.SourceDirections = c.Source
		e.TargetDirections = c.Target
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package formulation orchestrates GraphIndex, VariableAllocator, and the
// three constraint builders into one lp.Model, replicating the generate_lp
// double loop over edge pairs: adjacent pairs (sharing an endpoint) get
// bend-angle constraints, non-adjacent pairs get occlusion constraints.
package formulation

import (
	"github.com/weese/transit-map/config"
	"github.com/weese/transit-map/constraints"
	"github.com/weese/transit-map/graph"
	"github.com/weese/transit-map/lp"
	"github.com/weese/transit-map/variables"
)

// Build assembles the complete lp.Model for a prepared graph (one that has
// already been through prepare.Prepare, so every edge carries direction
// classifications).
func Build(g *graph.Graph, cfg config.Config) (*lp.Model, error) {
	idx, err := graph.NewIndex(g)
	if err != nil {
		return nil, err
	}

	alloc := variables.NewAllocator(len(g.Nodes), len(g.Edges))

	var eager []string
	for e := range g.Edges {
		cs, err := constraints.Octolinearity(g, idx, e, cfg)
		if err != nil {
			return nil, err
		}
		eager = append(eager, cs...)
	}

	var lazy []string
	for o := 0; o < len(g.Edges); o++ {
		for i := o + 1; i < len(g.Edges); i++ {
			outer, inner := g.Edges[o], g.Edges[i]
			if sharesEndpoint(outer, inner) {
				headToTail := outer.Target == inner.Source || outer.Source == inner.Target
				shareLine := sharesAnyLine(outer, inner)
				pair := alloc.AddPair(o, i, headToTail, shareLine)
				pairEager, pairLazy := constraints.Adjacency(pair, cfg)
				eager = append(eager, pairEager...)
				lazy = append(lazy, pairLazy...)
				continue
			}
			outerSourceIdx, err := idx.NodeIndex(outer.Source)
			if err != nil {
				return nil, err
			}
			outerTargetIdx, err := idx.NodeIndex(outer.Target)
			if err != nil {
				return nil, err
			}
			innerSourceIdx, err := idx.NodeIndex(inner.Source)
			if err != nil {
				return nil, err
			}
			innerTargetIdx, err := idx.NodeIndex(inner.Target)
			if err != nil {
				return nil, err
			}
			os := idx.NodeAt(outerSourceIdx)
			ot := idx.NodeAt(outerTargetIdx)
			is := idx.NodeAt(innerSourceIdx)
			it := idx.NodeAt(innerTargetIdx)
			eager = append(eager, constraints.Occlusion(
				constraints.NodeCoord(outerSourceIdx, os.X, os.Y),
				constraints.NodeCoord(outerTargetIdx, ot.X, ot.Y),
				constraints.NodeCoord(innerSourceIdx, is.X, is.Y),
				constraints.NodeCoord(innerTargetIdx, it.X, it.Y),
			)...)
		}
	}

	manifest := alloc.Build()
	return &lp.Model{
		Variables:       manifest,
		Constraints:     eager,
		LazyConstraints: lazy,
		Config:          cfg,
	}, nil
}

func sharesEndpoint(a, b *graph.Edge) bool {
	return a.Source == b.Source || a.Source == b.Target || a.Target == b.Source || a.Target == b.Target
}

func sharesAnyLine(a, b *graph.Edge) bool {
	set := make(map[string]struct{}, len(a.Lines))
	for _, l := range a.Lines {
		set[l] = struct{}{}
	}
	for _, l := range b.Lines {
		if _, ok := set[l]; ok {
			return true
		}
	}
	return false
}

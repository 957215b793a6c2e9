// SPDX-License-Identifier: MIT
package graph

import "strings"

// edgeKey identifies an edge by the (source, target, lines) tuple the spec
// uses for edge equality in §4.1. Lines are joined with a separator that
// cannot appear in a line ID (line IDs come from JSON object keys/strings).
type edgeKey struct {
	source, target, lines string
}

func keyOf(e *Edge) edgeKey {
	return edgeKey{source: e.Source, target: e.Target, lines: strings.Join(e.Lines, "\x00")}
}

// Index provides the stable integer indices the rest of the pipeline keys
// LP variables on: nodeIndex(id) -> n, edgeIndex(edge) -> e, plus the
// adjacency queries (degree, incident edges) the constraint builders need.
//
// Complexity: NewIndex is O(V+E); all queries are O(1) except EdgesAt, which
// is O(deg(v)).
type Index struct {
	g         *Graph
	nodeIdx   map[string]int
	edgeIdx   map[edgeKey]int
	incidence map[string][]int // node id -> indices of edges touching it
}

// NewIndex builds an Index over g. Returns ErrUnknownNode if any edge
// references a node not present in g.Nodes (should not happen for a graph
// that passed New, but Index is also usable standalone).
func NewIndex(g *Graph) (*Index, error) {
	idx := &Index{
		g:         g,
		nodeIdx:   make(map[string]int, len(g.Nodes)),
		edgeIdx:   make(map[edgeKey]int, len(g.Edges)),
		incidence: make(map[string][]int, len(g.Nodes)),
	}
	for i, n := range g.Nodes {
		idx.nodeIdx[n.ID] = i
	}
	for i, e := range g.Edges {
		if _, ok := idx.nodeIdx[e.Source]; !ok {
			return nil, ErrUnknownNode
		}
		if _, ok := idx.nodeIdx[e.Target]; !ok {
			return nil, ErrUnknownNode
		}
		idx.edgeIdx[keyOf(e)] = i
		idx.incidence[e.Source] = append(idx.incidence[e.Source], i)
		if e.Target != e.Source {
			idx.incidence[e.Target] = append(idx.incidence[e.Target], i)
		}
	}
	return idx, nil
}

// NodeIndex returns the stable index of the node with the given ID.
func (idx *Index) NodeIndex(id string) (int, error) {
	n, ok := idx.nodeIdx[id]
	if !ok {
		return 0, ErrNodeNotFound
	}
	return n, nil
}

// EdgeIndex returns the stable index of e, matched by (source,target,lines).
func (idx *Index) EdgeIndex(e *Edge) (int, error) {
	i, ok := idx.edgeIdx[keyOf(e)]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	return i, nil
}

// NodeAt returns the node at the given stable index.
func (idx *Index) NodeAt(n int) *Node {
	return idx.g.Nodes[n]
}

// Degree returns the number of edges incident to the node with the given
// ID (undirected: an edge contributes once to each distinct endpoint).
func (idx *Index) Degree(id string) int {
	return len(idx.incidence[id])
}

// EdgesAt returns the indices of edges incident to the node with the given ID.
func (idx *Index) EdgesAt(id string) []int {
	return idx.incidence[id]
}

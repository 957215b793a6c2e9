// SPDX-License-Identifier: MIT
package graph

import "errors"

// Sentinel errors for graph construction and lookup. Callers should branch
// on these with errors.Is; they are never stringified into new errors.
var (
	// ErrEmptyNodeID indicates a node was declared with an empty ID.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrDuplicateNode indicates two nodes were declared with the same ID.
	ErrDuplicateNode = errors.New("graph: duplicate node ID")

	// ErrUnknownNode indicates an edge referenced a node ID that was never declared.
	ErrUnknownNode = errors.New("graph: edge references unknown node")

	// ErrNodeNotFound indicates a lookup by ID found no matching node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates a lookup by (source,target,lines) found no matching edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

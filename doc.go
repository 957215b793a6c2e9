// SPDX-License-Identifier: MIT
// Package transitmap turns a geographic transit network graph into an
// octolinear ("metro map") layout: it classifies each edge's direction,
// assembles a mixed-integer linear program enforcing octolinearity,
// bend-angle minimization, and edge-occlusion avoidance, emits it as a
// CPLEX LP file, and revises the input graph's coordinates from a solver's
// solution.
//
// The pipeline is organized as a sequence of small packages, each mirroring
// one stage:
//
//	graph/       — Node, Edge, Graph, and the stable-index lookup
//	direction/   — octolinear direction classification
//	prepare/     — validation and direction annotation
//	variables/   — LP variable naming and manifest assembly
//	constraints/ — octolinearity, occlusion, and adjacency constraint text
//	lp/          — LP file rendering
//	formulation/ — orchestration of variables + constraints into one model
//	solverrun/   — scoped solver subprocess invocation
//	solution/    — solver output parsing and coordinate revision
//	iograph/     — the JSON wire boundary
//	cmd/transitmap — a thin CLI front end
package transitmap

// SPDX-License-Identifier: MIT
package constraints_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weese/transit-map/config"
	"github.com/weese/transit-map/constraints"
	"github.com/weese/transit-map/graph"
)

func dueEastGraph(t *testing.T) (*graph.Graph, *graph.Index) {
	t.Helper()
	nodes := []*graph.Node{{ID: "A"}, {ID: "B"}}
	edges := []*graph.Edge{{
		Source: "A", Target: "B", Lines: []string{"L1"},
		SourceDirections: []int{4, 3, 5},
		TargetDirections: []int{0, 7, 1},
	}}
	g, err := graph.New(nodes, edges)
	require.NoError(t, err)
	idx, err := graph.NewIndex(g)
	require.NoError(t, err)
	return g, idx
}

func TestOctolinearity_PinsDueEastDirection(t *testing.T) {
	g, idx := dueEastGraph(t)
	cs, err := constraints.Octolinearity(g, idx, 0, config.DefaultConfig())
	require.NoError(t, err)
	require.Contains(t, cs, "a0 = 1")
	require.Contains(t, cs, "b0 = 0")
}

func TestOctolinearity_CoordinateCouplingUsesStableIndices(t *testing.T) {
	g, idx := dueEastGraph(t)
	cs, err := constraints.Octolinearity(g, idx, 0, config.DefaultConfig())
	require.NoError(t, err)
	require.Contains(t, cs, "vx1 - vx0 - pa0 + pb0 = 0")
	require.Contains(t, cs, "vy1 - vy0 - pc0 + pd0 = 0")
}

// dummyJointGraph builds A-M-B, both edges on L1, M a dummy interchange so
// collinear's isDummy branch fires regardless of degree. Both edges carry
// identical SourceDirections so the head-to-tail tie (e0.Target == e1.Source)
// fires the direct a-a/b-b/c-c/d-d ties.
func dummyJointGraph(t *testing.T) (*graph.Graph, *graph.Index) {
	t.Helper()
	nodes := []*graph.Node{{ID: "A"}, {ID: "M", Dummy: true}, {ID: "B"}}
	edges := []*graph.Edge{
		{
			Source: "A", Target: "M", Lines: []string{"L1"},
			SourceDirections: []int{4, 3, 5},
			TargetDirections: []int{0, 7, 1},
		},
		{
			Source: "M", Target: "B", Lines: []string{"L1"},
			SourceDirections: []int{4, 3, 5},
			TargetDirections: []int{0, 7, 1},
		},
	}
	g, err := graph.New(nodes, edges)
	require.NoError(t, err)
	idx, err := graph.NewIndex(g)
	require.NoError(t, err)
	return g, idx
}

func TestOctolinearity_CollinearDummyJointTiesDirectionIndicators(t *testing.T) {
	g, idx := dummyJointGraph(t)
	cs, err := constraints.Octolinearity(g, idx, 0, config.DefaultConfig())
	require.NoError(t, err)

	require.Contains(t, cs, "a0 - a1 = 0")
	require.Contains(t, cs, "b0 - b1 = 0")
	require.Contains(t, cs, "c0 - c1 = 0")
	require.Contains(t, cs, "d0 - d1 = 0")
}

// degreeTwoChainGraph builds D-A-B-C-E, all on L1, so the middle pair
// (A-B, B-C) satisfies collinear's allDegreeTwo branch without any dummy
// node: A, B, and C each have degree exactly 2.
func degreeTwoChainGraph(t *testing.T) (*graph.Graph, *graph.Index) {
	t.Helper()
	nodes := []*graph.Node{{ID: "D"}, {ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "E"}}
	dir := []int{4, 3, 5}
	rev := []int{0, 7, 1}
	edges := []*graph.Edge{
		{Source: "D", Target: "A", Lines: []string{"L1"}, SourceDirections: dir, TargetDirections: rev},
		{Source: "A", Target: "B", Lines: []string{"L1"}, SourceDirections: dir, TargetDirections: rev},
		{Source: "B", Target: "C", Lines: []string{"L1"}, SourceDirections: dir, TargetDirections: rev},
		{Source: "C", Target: "E", Lines: []string{"L1"}, SourceDirections: dir, TargetDirections: rev},
	}
	g, err := graph.New(nodes, edges)
	require.NoError(t, err)
	idx, err := graph.NewIndex(g)
	require.NoError(t, err)
	return g, idx
}

func TestOctolinearity_CollinearDegreeTwoChainTiesDirectionIndicators(t *testing.T) {
	g, idx := degreeTwoChainGraph(t)
	// Edge 1 is A-B: its neighbors D-A (degree(D)=1, no tie) and B-C
	// (degree(B)=2, degree(C)=2, tie fires) both share one endpoint, but
	// only the all-degree-2 pair ties.
	cs, err := constraints.Octolinearity(g, idx, 1, config.DefaultConfig())
	require.NoError(t, err)

	require.Contains(t, cs, "a1 - a2 = 0")
	require.Contains(t, cs, "b1 - b2 = 0")
	require.Contains(t, cs, "c1 - c2 = 0")
	require.Contains(t, cs, "d1 - d2 = 0")
	require.NotContains(t, cs, "a1 - a0 = 0")
}

func TestOctolinearity_SecondaryDirectionReleasesExactlyOnePin(t *testing.T) {
	nodes := []*graph.Node{{ID: "A"}, {ID: "B"}}
	edges := []*graph.Edge{{
		Source: "A", Target: "B", Lines: []string{"L1"},
		SourceDirections: []int{0, 7},
	}}
	g, err := graph.New(nodes, edges)
	require.NoError(t, err)
	idx, err := graph.NewIndex(g)
	require.NoError(t, err)

	cs, err := constraints.Octolinearity(g, idx, 0, config.DefaultConfig())
	require.NoError(t, err)

	require.Contains(t, cs, "a0 = 0")
	require.Contains(t, cs, "b0 = 1")
	require.Contains(t, cs, "d0 = 0", "secondary=7 matches main=0's prevSecond and releases d0")
	require.NotContains(t, cs, "c0 = 0", "secondary=7 must not also release c0 (main=0's nextSecond is 1, not 7)")
}

func TestOctolinearity_RejectsOutOfRangeDirection(t *testing.T) {
	nodes := []*graph.Node{{ID: "A"}, {ID: "B"}}
	edges := []*graph.Edge{{Source: "A", Target: "B", SourceDirections: []int{9}}}
	g, err := graph.New(nodes, edges)
	require.NoError(t, err)
	idx, err := graph.NewIndex(g)
	require.NoError(t, err)

	_, err = constraints.Octolinearity(g, idx, 0, config.DefaultConfig())
	require.ErrorIs(t, err, constraints.ErrUnknownDirection)
}

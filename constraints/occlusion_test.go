// SPDX-License-Identifier: MIT
package constraints_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weese/transit-map/constraints"
)

func TestOcclusion_SeparatesAlongBestAxis(t *testing.T) {
	// outer edge runs far to the west of inner edge: west-east axis should
	// qualify (all 4 endpoint-pair distances negative) and dominate.
	outerSource := constraints.NodeCoord(0, 0, 0)
	outerTarget := constraints.NodeCoord(1, 0, 10)
	innerSource := constraints.NodeCoord(2, 100, 0)
	innerTarget := constraints.NodeCoord(3, 100, 10)

	cs := constraints.Occlusion(outerSource, outerTarget, innerSource, innerTarget)
	require.Len(t, cs, 4)
	for _, c := range cs {
		require.Contains(t, c, "<= -1")
	}
}

func TestOcclusion_NoAxisQualifiesReturnsNoConstraints(t *testing.T) {
	// Edges crossing through the same region: no axis has all 4 distances
	// agree in sign.
	outerSource := constraints.NodeCoord(0, 0, 0)
	outerTarget := constraints.NodeCoord(1, 10, 10)
	innerSource := constraints.NodeCoord(2, 10, 0)
	innerTarget := constraints.NodeCoord(3, 0, 10)

	cs := constraints.Occlusion(outerSource, outerTarget, innerSource, innerTarget)
	require.Nil(t, cs)
}

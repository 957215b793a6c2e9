// SPDX-License-Identifier: MIT
package direction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weese/transit-map/direction"
)

func TestClassify_DueEast(t *testing.T) {
	c := direction.Classify(0, 0, 10, 0)
	require.Equal(t, 4, c.Source[0])
	require.Equal(t, 0, c.Target[0])
}

func TestClassify_DueWest(t *testing.T) {
	c := direction.Classify(0, 0, -10, 0)
	require.Equal(t, 0, c.Source[0])
	require.Equal(t, 4, c.Target[0])
}

func TestClassify_ZeroVectorTieBreaksSmaller(t *testing.T) {
	c := direction.Classify(5, 5, 5, 5)
	require.Len(t, c.Source, 3)
	require.Equal(t, []int{4, 3, 5}, c.Source)
}

func TestClassify_IsIdempotent(t *testing.T) {
	a := direction.Classify(1, 2, 13, -4)
	b := direction.Classify(1, 2, 13, -4)
	require.Equal(t, a, b)
}

func TestClassify_TargetIsOppositeOfSource(t *testing.T) {
	c := direction.Classify(0, 0, 7, 7)
	for i, s := range c.Source {
		require.Equal(t, (s+4)%8, c.Target[i])
	}
}

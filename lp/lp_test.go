// SPDX-License-Identifier: MIT
package lp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weese/transit-map/config"
	"github.com/weese/transit-map/lp"
	"github.com/weese/transit-map/variables"
)

func TestEmit_SectionOrderAndAnchorPin(t *testing.T) {
	alloc := variables.NewAllocator(2, 1)
	manifest := alloc.Build()

	m := &lp.Model{
		Variables:   manifest,
		Constraints: []string{"a0 = 1"},
		Config:      config.DefaultConfig(),
	}
	out := lp.Emit(m)

	sections := []string{"Minimize", "Subject To", "Bounds", "General", "Binary", "End"}
	last := -1
	for _, s := range sections {
		i := strings.Index(out, s)
		require.GreaterOrEqual(t, i, 0, "missing section %q", s)
		require.Greater(t, i, last, "section %q out of order", s)
		last = i
	}

	require.Contains(t, out, " vx0 = 10000\n")
	require.Contains(t, out, " vy0 = 10000\n")
	require.Contains(t, out, " a0 = 1\n")
}

func TestEmit_ObjectiveCombinesBendAndLengthTerms(t *testing.T) {
	alloc := variables.NewAllocator(1, 1)
	alloc.AddPair(0, 0, true, true)
	manifest := alloc.Build()

	m := &lp.Model{Variables: manifest, Config: config.DefaultConfig()}
	out := lp.Emit(m)

	require.Contains(t, out, " 4 q0 + 3 l0\n")
}

func TestEmit_ZeroEdgeGraphCollapsesObjectiveToZero(t *testing.T) {
	alloc := variables.NewAllocator(1, 0)
	manifest := alloc.Build()

	m := &lp.Model{Variables: manifest, Config: config.DefaultConfig()}
	out := lp.Emit(m)

	require.Contains(t, out, " 0\n")
	require.NotContains(t, out, " + \n")
	require.NotContains(t, out, " +\n")
}

func TestEmit_BoundsUseConfig(t *testing.T) {
	alloc := variables.NewAllocator(1, 1)
	manifest := alloc.Build()
	cfg := config.DefaultConfig()

	m := &lp.Model{Variables: manifest, Config: cfg}
	out := lp.Emit(m)

	require.Contains(t, out, " 1 <= l0 <= 8\n")
	require.Contains(t, out, " 9850 <= vx0 <= 10150\n")
}

// SPDX-License-Identifier: MIT
// Package constraints is OctolinearityConstraints, OcclusionConstraints,
// and AdjacencyConstraints: pure functions that turn graph topology into
// LP constraint lines, given the stable indices from graph.Index. None of
// them hold state across calls — the stateful bookkeeping (pair discovery,
// variable registration) lives in the variables.Allocator the caller
// drives, in the spirit of lvlath/algorithms' "settings struct, free
// functions" split rather than lvlath/builder's stateful config object.
package constraints

import (
	"fmt"

	"github.com/weese/transit-map/config"
	"github.com/weese/transit-map/graph"
	"github.com/weese/transit-map/numfmt"
	"github.com/weese/transit-map/variables"
)

// setProduct returns the three inequalities linearizing product = continuous*binary,
// per spec.md §4.5.
func setProduct(product, continuous, binary string, bigM float64) []string {
	u := numfmt.Number(bigM)
	return []string{
		fmt.Sprintf("%s - %s %s <= 0", product, u, binary),
		fmt.Sprintf("%s - %s <= 0", product, continuous),
		fmt.Sprintf("%s - %s - %s %s >= -%s", product, continuous, u, binary, u),
	}
}

// directionFix is one row of the direction-pinning table in spec.md §4.5:
// which of {a,b,c,d} are clamped for this main direction, and which single
// variable a matching secondary direction additionally releases.
type directionFix struct {
	fixed       [2]string // e.g. "a = 0", "b = 1"
	prevSecond  int       // secondary value that releases prevRelease
	prevRelease string
	nextSecond  int
	nextRelease string
}

// directionPinning returns the equality constraints fixing edge e's
// direction indicators to main, with secondary unlocking at most one
// additional equality, per the table in spec.md §4.5.
func directionPinning(e int, main, secondary int) ([]string, error) {
	if main < 0 || main > 7 {
		return nil, fmt.Errorf("constraints: edge %d: main direction %d out of range: %w", e, main, ErrUnknownDirection)
	}
	fix := pinningFor(e, main)
	out := append([]string(nil), fix.fixed[:]...)
	if secondary == fix.prevSecond {
		out = append(out, fix.prevRelease)
	}
	if secondary == fix.nextSecond {
		out = append(out, fix.nextRelease)
	}
	return out, nil
}

func pinningFor(e, main int) directionFix {
	a, b, c, d := variables.A(e), variables.B(e), variables.C(e), variables.D(e)
	switch main {
	case 0:
		return directionFix{[2]string{a + " = 0", b + " = 1"}, 7, d + " = 0", 1, c + " = 0"}
	case 1:
		return directionFix{[2]string{a + " = 0", c + " = 0"}, 2, d + " = 1", 0, b + " = 1"}
	case 2:
		return directionFix{[2]string{c + " = 0", d + " = 1"}, 3, b + " = 0", 1, a + " = 0"}
	case 3:
		return directionFix{[2]string{b + " = 0", c + " = 0"}, 4, a + " = 1", 2, d + " = 1"}
	case 4:
		return directionFix{[2]string{a + " = 1", b + " = 0"}, 5, d + " = 0", 3, c + " = 0"}
	case 5:
		return directionFix{[2]string{b + " = 0", d + " = 0"}, 6, c + " = 1", 4, a + " = 1"}
	case 6:
		return directionFix{[2]string{c + " = 1", d + " = 0"}, 7, a + " = 0", 5, b + " = 0"}
	case 7:
		return directionFix{[2]string{a + " = 0", d + " = 0"}, 0, b + " = 1", 6, c + " = 1"}
	}
	return directionFix{}
}

// collinear returns true when the two edges are tied into one straight
// segment through their shared endpoint, per spec.md §4.5: every one of
// the four endpoints has degree exactly 2, or the shared endpoint is a
// dummy interchange.
func collinear(idx *graph.Index, e, other *graph.Edge, shared string) bool {
	if shared == "" {
		return false
	}
	allDegreeTwo := idx.Degree(e.Source) == 2 && idx.Degree(e.Target) == 2 &&
		idx.Degree(other.Source) == 2 && idx.Degree(other.Target) == 2
	return allDegreeTwo || isDummy(idx, shared)
}

func isDummy(idx *graph.Index, id string) bool {
	n, err := idx.NodeIndex(id)
	if err != nil {
		return false
	}
	return idx.NodeAt(n).Dummy
}

// sharedEndpoint returns the single node ID shared between e and other, if
// they share exactly one endpoint, else ("", false).
func sharedEndpoint(e, other *graph.Edge) (string, bool) {
	ends := [2]string{e.Source, e.Target}
	otherEnds := map[string]bool{other.Source: true, other.Target: true}
	shared := ""
	count := 0
	for _, id := range ends {
		if otherEnds[id] {
			shared = id
			count++
		}
	}
	if count != 1 {
		return "", false
	}
	return shared, true
}

func sameDirections(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Octolinearity returns every constraint spec.md §4.5 associates with
// edge e: the product linearization, the coordinate coupling, the
// direction-pinning equalities, and the collinearity ties to any
// same-line edge sharing exactly one endpoint under the degree/dummy
// condition.
func Octolinearity(g *graph.Graph, idx *graph.Index, e int, cfg config.Config) ([]string, error) {
	edge := g.Edges[e]
	sIdx, err := idx.NodeIndex(edge.Source)
	if err != nil {
		return nil, err
	}
	tIdx, err := idx.NodeIndex(edge.Target)
	if err != nil {
		return nil, err
	}

	var out []string
	out = append(out, setProduct(variables.PA(e), variables.L(e), variables.A(e), cfg.BigM())...)
	out = append(out, setProduct(variables.PB(e), variables.L(e), variables.B(e), cfg.BigM())...)
	out = append(out, setProduct(variables.PC(e), variables.L(e), variables.C(e), cfg.BigM())...)
	out = append(out, setProduct(variables.PD(e), variables.L(e), variables.D(e), cfg.BigM())...)

	out = append(out,
		fmt.Sprintf("%s - %s - %s + %s = 0", variables.VX(tIdx), variables.VX(sIdx), variables.PA(e), variables.PB(e)),
		fmt.Sprintf("%s - %s - %s + %s = 0", variables.VY(tIdx), variables.VY(sIdx), variables.PC(e), variables.PD(e)),
		fmt.Sprintf("%s + %s <= 1", variables.A(e), variables.B(e)),
		fmt.Sprintf("%s + %s <= 1", variables.C(e), variables.D(e)),
	)

	main := 0
	if len(edge.SourceDirections) > 0 {
		main = edge.SourceDirections[0]
	}
	secondary := 0
	if len(edge.SourceDirections) > 1 {
		secondary = edge.SourceDirections[1]
	}
	pin, err := directionPinning(e, main, secondary)
	if err != nil {
		return nil, err
	}
	out = append(out, pin...)

	for _, other := range g.Edges {
		if other == edge {
			continue
		}
		if !sharesLine(edge, other) {
			continue
		}
		shared, ok := sharedEndpoint(edge, other)
		if !ok {
			continue
		}
		if !collinear(idx, edge, other, shared) {
			continue
		}
		otherIdx, err := idx.EdgeIndex(other)
		if err != nil {
			return nil, err
		}

		if edge.Target == other.Source || edge.Source == other.Target {
			if sameDirections(edge.SourceDirections, other.SourceDirections) {
				out = append(out,
					fmt.Sprintf("%s - %s = 0", variables.A(e), variables.A(otherIdx)),
					fmt.Sprintf("%s - %s = 0", variables.B(e), variables.B(otherIdx)),
					fmt.Sprintf("%s - %s = 0", variables.C(e), variables.C(otherIdx)),
					fmt.Sprintf("%s - %s = 0", variables.D(e), variables.D(otherIdx)),
				)
			}
		} else if sameDirections(edge.TargetDirections, other.SourceDirections) {
			out = append(out,
				fmt.Sprintf("%s - %s = 0", variables.A(e), variables.B(otherIdx)),
				fmt.Sprintf("%s - %s = 0", variables.B(e), variables.A(otherIdx)),
				fmt.Sprintf("%s - %s = 0", variables.C(e), variables.D(otherIdx)),
				fmt.Sprintf("%s - %s = 0", variables.D(e), variables.C(otherIdx)),
			)
		}
	}

	return out, nil
}

func sharesLine(a, b *graph.Edge) bool {
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

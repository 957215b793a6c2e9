// SPDX-License-Identifier: MIT
package constraints

import (
	"fmt"
	"math"

	"github.com/weese/transit-map/variables"
)

// axis is one of the 4 directions occlusion separation is tried along:
// the projection of a node's (x, y) coordinate used to compare two edges.
type axis struct {
	name    string
	project func(x, y float64) float64
	emit    func(outerIdx, innerIdx int) string // the LHS text for one node pair
}

var occlusionAxes = []axis{
	{
		name:    "west-east",
		project: func(x, y float64) float64 { return x },
		emit:    func(o, i int) string { return fmt.Sprintf("%s - %s", variables.VX(o), variables.VX(i)) },
	},
	{
		name:    "south-north",
		project: func(x, y float64) float64 { return y },
		emit:    func(o, i int) string { return fmt.Sprintf("%s - %s", variables.VY(o), variables.VY(i)) },
	},
	{
		name:    "southwest-northeast",
		project: func(x, y float64) float64 { return x - y },
		emit: func(o, i int) string {
			return fmt.Sprintf("%s - %s - %s + %s", variables.VX(o), variables.VY(o), variables.VX(i), variables.VY(i))
		},
	},
	{
		name:    "northwest-southeast",
		project: func(x, y float64) float64 { return x + y },
		emit: func(o, i int) string {
			return fmt.Sprintf("%s + %s - %s - %s", variables.VX(o), variables.VY(o), variables.VX(i), variables.VY(i))
		},
	},
}

// nodeCoord is the (index, x, y) the occlusion axis projections need, one
// per endpoint of the two candidate edges.
type nodeCoord struct {
	index int
	x, y  float64
}

// Occlusion returns the separation constraints for two edges that do not
// share an endpoint, per spec.md §4.6. It tries the 4 axes above, each
// scored by how consistently the edges' endpoints fall on one side of it;
// an axis qualifies only when all four endpoint-pair distances agree in
// sign (all positive or all non-positive), and among qualifying axes the
// one with the largest minimum absolute distance wins. If no axis
// qualifies, the edges are left unconstrained.
func Occlusion(outerSource, outerTarget, innerSource, innerTarget nodeCoord) []string {
	bestAxis := -1
	bestScore := -1.0
	bestAllPositive := false

	for ai, ax := range occlusionAxes {
		os := ax.project(outerSource.x, outerSource.y)
		ot := ax.project(outerTarget.x, outerTarget.y)
		is := ax.project(innerSource.x, innerSource.y)
		it := ax.project(innerTarget.x, innerTarget.y)

		dists := [4]float64{os - is, os - it, ot - is, ot - it}
		positive := 0
		minAbs := math.Inf(1)
		for _, d := range dists {
			if d > 0 {
				positive++
			}
			if math.Abs(d) < minAbs {
				minAbs = math.Abs(d)
			}
		}
		if positive != 0 && positive != 4 {
			continue
		}
		if minAbs > bestScore {
			bestScore = minAbs
			bestAxis = ai
			bestAllPositive = positive == 4
		}
	}

	if bestAxis < 0 {
		return nil
	}

	ax := occlusionAxes[bestAxis]
	cmp := "<= -1"
	if bestAllPositive {
		cmp = ">= 1"
	}

	pairs := [4][2]nodeCoord{
		{outerSource, innerSource},
		{outerSource, innerTarget},
		{outerTarget, innerSource},
		{outerTarget, innerTarget},
	}
	out := make([]string, 0, 4)
	for _, p := range pairs {
		out = append(out, fmt.Sprintf("%s %s", ax.emit(p[0].index, p[1].index), cmp))
	}
	return out
}

// NodeCoord builds the projection input Occlusion needs for one endpoint.
func NodeCoord(index int, x, y float64) nodeCoord {
	return nodeCoord{index: index, x: x, y: y}
}

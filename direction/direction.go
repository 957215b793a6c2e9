// SPDX-License-Identifier: MIT
// Package direction classifies an edge's geographic vector into candidate
// octolinear directions. It generalizes the 8-neighbor offset table
// lvlath/gridgraph uses for Conn8 grid connectivity ({0,-1},{1,-1},{1,0}...)
// from a fixed grid step into a continuous angle, picking the three closest
// of the eight compass directions instead of enumerating all eight blindly.
package direction

import "math"

// Classification holds the ordered candidate directions for one edge.
// Source[0] is the main direction, Source[1] the secondary fallback, both
// consumed by the octolinearity constraints. Target[i] always equals
// (Source[i]+4) mod 8 — the direction as seen from the other endpoint.
type Classification struct {
	Source []int
	Target []int
}

// allCandidates is {-1,0,1,...,9}: the direction axis extended by one slot
// on each side so directions near the 0/8 wraparound still have neighbors
// to fall back to before reduction mod 8.
func allCandidates() []int {
	c := make([]int, 0, 11)
	for i := -1; i <= 9; i++ {
		c = append(c, i)
	}
	return c
}

// mod8 reduces n into [0,7], correctly handling the -1 candidate.
func mod8(n int) int {
	return (n + 16) % 8
}

// angle maps a 2-D vector to a continuous direction index in [0,8], with
// 0 = due west (9 o'clock), increasing counter-clockwise.
func angle(dx, dy float64) float64 {
	return 4 * (math.Atan2(dy, dx)/math.Pi + 1)
}

// closestNumber returns the candidate closest to target. On a tie it keeps
// the first candidate encountered, i.e. the numerically smaller one, since
// candidates are scanned in ascending order — the tie-break the source
// left unspecified (spec.md §9) and this module fixes deterministically.
func closestNumber(target float64, candidates []int) int {
	best := candidates[0]
	bestDist := math.Abs(float64(best) - target)
	for _, c := range candidates[1:] {
		d := math.Abs(float64(c) - target)
		if d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

// closestDirectionIDs picks the three candidates closest to angle, in
// order, each reduced mod 8. Complexity: O(1) (fixed-size 11-element scan,
// three times).
func closestDirectionIDs(angle float64) []int {
	remaining := allCandidates()
	out := make([]int, 0, 3)
	for i := 0; i < 3 && len(remaining) > 0; i++ {
		c := closestNumber(angle, remaining)
		out = append(out, mod8(c))
		for j, v := range remaining {
			if v == c {
				remaining = append(remaining[:j], remaining[j+1:]...)
				break
			}
		}
	}
	return out
}

// Classify computes the candidate octolinear directions for the edge
// running from (sx,sy) to (tx,ty). It is a pure function of its inputs:
// calling it twice with the same coordinates returns identical results
// (the idempotence property spec.md §8 requires of the classifier).
func Classify(sx, sy, tx, ty float64) Classification {
	a := angle(tx-sx, ty-sy)
	src := closestDirectionIDs(a)
	tgt := make([]int, len(src))
	for i, d := range src {
		tgt[i] = mod8(d + 4)
	}
	return Classification{Source: src, Target: tgt}
}

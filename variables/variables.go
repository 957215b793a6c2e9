// SPDX-License-Identifier: MIT
// Package variables is VariableAllocator: it names every LP variable the
// formulation can emit and classifies each by type (continuous, integer,
// binary). It is a pure naming service — it does not emit constraints —
// mirroring lvlath/builder's separation between naming/config
// (builderConfig, IDFn) and the algorithms that consume the names.
package variables

import "strconv"

// Node/edge-indexed variable names. The numeric suffix is the stable index
// from graph.Index; no separator is used (vx0, a3, ...), matching the LP
// tokens the spec's worked examples show.
func VX(n int) string { return "vx" + itoa(n) }
func VY(n int) string { return "vy" + itoa(n) }

func L(e int) string  { return "l" + itoa(e) }
func PA(e int) string { return "pa" + itoa(e) }
func PB(e int) string { return "pb" + itoa(e) }
func PC(e int) string { return "pc" + itoa(e) }
func PD(e int) string { return "pd" + itoa(e) }

func A(e int) string { return "a" + itoa(e) }
func B(e int) string { return "b" + itoa(e) }
func C(e int) string { return "c" + itoa(e) }
func D(e int) string { return "d" + itoa(e) }

// Adjacent-edge-pair-indexed variable names. p is the pair counter
// assigned as pairs are discovered, not a node or edge index.
func Q(p int) string  { return "q" + itoa(p) }
func H(p int) string  { return "h" + itoa(p) }
func OA(p int) string { return "oa" + itoa(p) }
func OB(p int) string { return "ob" + itoa(p) }
func OC(p int) string { return "oc" + itoa(p) }
func OD(p int) string { return "od" + itoa(p) }
func UA(p int) string { return "ua" + itoa(p) }
func UB(p int) string { return "ub" + itoa(p) }
func UC(p int) string { return "uc" + itoa(p) }
func UD(p int) string { return "ud" + itoa(p) }

func itoa(n int) string { return strconv.Itoa(n) }

// Pair describes one adjacent-edge-pair's bookkeeping: which two edges it
// ties, whether they meet head-to-tail (vs. tail-to-tail/head-to-head),
// and the objective coefficient for its q_p bend-angle variable (1.0 if
// the edges share a line, 0.25 otherwise — spec.md §4.7/§4.8).
type Pair struct {
	Index       int
	Outer       int
	Inner       int
	HeadToTail  bool
	ShareLine   bool
	Coefficient float64
}

// Manifest is the Variables dataclass from the source's generate_lp.py,
// generalized: the complete roster of names to declare in each LP section.
type Manifest struct {
	Continuous map[string][]string
	Integer    map[string][]string
	Binary     map[string][]string
	// Coefficients holds the objective coefficient for each integer
	// variable family that carries one (only "q" does).
	Coefficients map[string][]float64
}

// Allocator builds a Manifest for a graph with nodeCount nodes and
// edgeCount edges, plus whatever adjacent-edge pairs are registered via
// AddPair. It does not emit constraints; constraints consume the same
// naming functions independently.
type Allocator struct {
	nodeCount int
	edgeCount int
	pairs     []Pair
}

// NewAllocator returns an Allocator for a graph with the given node and
// edge counts.
func NewAllocator(nodeCount, edgeCount int) *Allocator {
	return &Allocator{nodeCount: nodeCount, edgeCount: edgeCount}
}

// AddPair registers a newly discovered adjacent-edge pair (outer, inner
// are edge indices, outer < inner) and returns the Pair record, including
// its freshly assigned pair index (the next one in discovery order).
func (a *Allocator) AddPair(outer, inner int, headToTail, shareLine bool) Pair {
	coef := 0.25
	if shareLine {
		coef = 1.0
	}
	p := Pair{
		Index:       len(a.pairs),
		Outer:       outer,
		Inner:       inner,
		HeadToTail:  headToTail,
		ShareLine:   shareLine,
		Coefficient: coef,
	}
	a.pairs = append(a.pairs, p)
	return p
}

// Build assembles the complete Manifest from the node/edge counts and the
// pairs registered so far.
func (a *Allocator) Build() *Manifest {
	m := &Manifest{
		Continuous: map[string][]string{
			"vx": indexed(a.nodeCount, VX),
			"vy": indexed(a.nodeCount, VY),
			"l":  indexed(a.edgeCount, L),
			"pa": indexed(a.edgeCount, PA),
			"pb": indexed(a.edgeCount, PB),
			"pc": indexed(a.edgeCount, PC),
			"pd": indexed(a.edgeCount, PD),
		},
		Integer: map[string][]string{
			"q": indexed(len(a.pairs), Q),
		},
		Binary: map[string][]string{
			"a":  indexed(a.edgeCount, A),
			"b":  indexed(a.edgeCount, B),
			"c":  indexed(a.edgeCount, C),
			"d":  indexed(a.edgeCount, D),
			"h":  indexed(len(a.pairs), H),
			"oa": indexed(len(a.pairs), OA),
			"ob": indexed(len(a.pairs), OB),
			"oc": indexed(len(a.pairs), OC),
			"od": indexed(len(a.pairs), OD),
			"ua": indexed(len(a.pairs), UA),
			"ub": indexed(len(a.pairs), UB),
			"uc": indexed(len(a.pairs), UC),
			"ud": indexed(len(a.pairs), UD),
		},
		Coefficients: map[string][]float64{
			"q": coefficients(a.pairs),
		},
	}
	return m
}

func indexed(n int, name func(int) string) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = name(i)
	}
	return out
}

func coefficients(pairs []Pair) []float64 {
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = p.Coefficient
	}
	return out
}

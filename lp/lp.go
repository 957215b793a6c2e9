// SPDX-License-Identifier: MIT
// Package lp is LPEmitter: it renders a fully assembled Model (as built by
// formulation.Build) into a CPLEX LP format text file — Minimize, Subject To, Bounds,
// General, Binary, End, in that exact order, with the exact section
// nesting the spec's worked example shows (a single leading space before
// each statement line, no indentation otherwise). Its rendering mirrors
// lvlath/matrix.Dense.String(): deterministic, one accumulating
// strings.Builder, no third-party templating.
package lp

import (
	"strings"

	"github.com/weese/transit-map/config"
	"github.com/weese/transit-map/numfmt"
	"github.com/weese/transit-map/variables"
)

// Model is everything LPEmitter needs: the variable manifest, the ordered
// constraint lines (eager constraints, then lazy not-equal gadgets, in
// the order formulation assembled them), and the config the section
// headers/bounds read from.
type Model struct {
	Variables       *variables.Manifest
	Constraints     []string
	LazyConstraints []string
	Config          config.Config
}

// Emit renders m as LP format text.
func Emit(m *Model) string {
	var b strings.Builder

	writeLine := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	writeStatement := func(s string) {
		b.WriteByte(' ')
		writeLine(s)
	}

	writeLine("Minimize")
	writeStatement(objective(m.Variables))

	writeLine("Subject To")
	writeStatement("vx0 = " + numfmt.Number(m.Config.Offset))
	writeStatement("vy0 = " + numfmt.Number(m.Config.Offset))
	for _, c := range m.Constraints {
		writeStatement(c)
	}
	for _, c := range m.LazyConstraints {
		writeStatement(c)
	}

	writeLine("Bounds")
	for _, l := range m.Variables.Continuous["l"] {
		writeStatement(numfmt.Number(m.Config.MinEdgeLength) + " <= " + l + " <= " + numfmt.Number(m.Config.MaxEdgeLength))
	}
	xLo := numfmt.Number(m.Config.Offset - m.Config.MaxWidth/2)
	xHi := numfmt.Number(m.Config.Offset + m.Config.MaxWidth/2)
	for _, vx := range m.Variables.Continuous["vx"] {
		writeStatement(xLo + " <= " + vx + " <= " + xHi)
	}
	yLo := numfmt.Number(m.Config.Offset - m.Config.MaxHeight/2)
	yHi := numfmt.Number(m.Config.Offset + m.Config.MaxHeight/2)
	for _, vy := range m.Variables.Continuous["vy"] {
		writeStatement(yLo + " <= " + vy + " <= " + yHi)
	}
	for _, family := range []string{"pa", "pb", "pc", "pd"} {
		for _, v := range m.Variables.Continuous[family] {
			writeStatement("0 <= " + v)
		}
	}
	for _, q := range m.Variables.Integer["q"] {
		writeStatement("0 <= " + q + " <= 3")
	}

	writeLine("General")
	for _, q := range m.Variables.Integer["q"] {
		writeStatement(q)
	}

	writeLine("Binary")
	for _, family := range []string{"a", "b", "c", "d", "h", "oa", "ob", "oc", "od", "ua", "ub", "uc", "ud"} {
		for _, v := range m.Variables.Binary[family] {
			writeStatement(v)
		}
	}

	writeLine("End")

	return b.String()
}

// objective renders "<angle terms> + <length terms>": 4*coef per bend
// variable, 3 per edge-length variable, per spec.md §4.8. A graph with no
// edges has neither term; per spec.md §8 the objective collapses to "0"
// rather than a dangling "+" with no operands on either side.
func objective(m *variables.Manifest) string {
	var terms []string
	qs := m.Integer["q"]
	coefs := m.Coefficients["q"]
	for i, q := range qs {
		terms = append(terms, numfmt.Number(4*coefs[i])+" "+q)
	}
	angles := strings.Join(terms, " + ")

	var lengthTerms []string
	for _, l := range m.Continuous["l"] {
		lengthTerms = append(lengthTerms, "3 "+l)
	}
	lengths := strings.Join(lengthTerms, " + ")

	switch {
	case angles == "" && lengths == "":
		return "0"
	case angles == "":
		return lengths
	case lengths == "":
		return angles
	default:
		return angles + " + " + lengths
	}
}

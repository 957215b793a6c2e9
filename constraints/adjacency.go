// SPDX-License-Identifier: MIT
package constraints

import (
	"fmt"

	"github.com/weese/transit-map/config"
	"github.com/weese/transit-map/numfmt"
	"github.com/weese/transit-map/variables"
)

// notEqual returns the two inequalities forcing left + negativeRight != 0,
// toggled by the boolean indicator, per spec.md §4.7. bigM is the upper
// bound the gadget needs to be slack whichever way the indicator falls.
func notEqual(left, negativeRight, boolean string, bigM float64) []string {
	u := numfmt.Number(bigM)
	return []string{
		fmt.Sprintf("%s %s - %s %s <= -0.5", left, negativeRight, u, boolean),
		fmt.Sprintf("%s %s - %s %s >= %s", left, negativeRight, u, boolean, numfmt.Number(0.5-bigM)),
	}
}

// Adjacency returns the bend-angle constraints spec.md §4.7 associates
// with one adjacent edge pair (sharing at least one endpoint), split into
// eager constraints (written immediately) and lazy ones (the not-equal
// gadget, written after every eager constraint, matching the source's
// constraints/lazy_constraints separation).
func Adjacency(p variables.Pair, cfg config.Config) (eager, lazy []string) {
	suffix := p.Index

	if p.ShareLine {
		eager = append(eager, fmt.Sprintf("%s <= 2", variables.Q(suffix)))
	}
	eager = append(eager, fmt.Sprintf("%s - %s - %s - %s - %s = 0",
		variables.Q(suffix), variables.OA(suffix), variables.OB(suffix), variables.OC(suffix), variables.OD(suffix)))

	o, i := p.Outer, p.Inner
	bigM := cfg.BigM()

	if p.HeadToTail {
		lazy = append(lazy, notEqual(
			fmt.Sprintf("3 %s - 3 %s + %s - %s", variables.A(o), variables.B(o), variables.C(o), variables.D(o)),
			fmt.Sprintf("+ 3 %s - 3 %s + %s - %s", variables.A(i), variables.B(i), variables.C(i), variables.D(i)),
			variables.H(suffix), bigM)...)
		eager = append(eager,
			fmt.Sprintf("%s + %s - 2 %s - %s = 0", variables.A(o), variables.A(i), variables.UA(suffix), variables.OA(suffix)),
			fmt.Sprintf("%s + %s - 2 %s - %s = 0", variables.B(o), variables.B(i), variables.UB(suffix), variables.OB(suffix)),
			fmt.Sprintf("%s + %s - 2 %s - %s = 0", variables.C(o), variables.C(i), variables.UC(suffix), variables.OC(suffix)),
			fmt.Sprintf("%s + %s - 2 %s - %s = 0", variables.D(o), variables.D(i), variables.UD(suffix), variables.OD(suffix)),
		)
	} else {
		lazy = append(lazy, notEqual(
			fmt.Sprintf("3 %s - 3 %s + %s - %s", variables.A(o), variables.B(o), variables.C(o), variables.D(o)),
			fmt.Sprintf("- 3 %s + 3 %s - %s + %s", variables.A(i), variables.B(i), variables.C(i), variables.D(i)),
			variables.H(suffix), bigM)...)
		eager = append(eager,
			fmt.Sprintf("%s + %s - 2 %s - %s = 0", variables.A(o), variables.B(i), variables.UA(suffix), variables.OA(suffix)),
			fmt.Sprintf("%s + %s - 2 %s - %s = 0", variables.B(o), variables.A(i), variables.UB(suffix), variables.OB(suffix)),
			fmt.Sprintf("%s + %s - 2 %s - %s = 0", variables.C(o), variables.D(i), variables.UC(suffix), variables.OC(suffix)),
			fmt.Sprintf("%s + %s - 2 %s - %s = 0", variables.D(o), variables.C(i), variables.UD(suffix), variables.OD(suffix)),
		)
	}

	return eager, lazy
}

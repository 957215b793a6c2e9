// SPDX-License-Identifier: MIT
// Package numfmt formats the float64 values that appear in LP tokens.
// Whole numbers print without a decimal point ("9", "-9"); anything else
// prints with the minimal number of digits needed to round-trip. This is a
// deliberate simplification of the source's Python formatting (where an
// int-valued setting prints without a decimal but a float-valued one
// always prints "x.0" even when whole) — the CPLEX LP format accepts
// either spelling of a number, so this module picks one consistent
// rendering instead of replicating Python's type-dependent quirk.
package numfmt

import (
	"math"
	"strconv"
)

// Number renders v the way every LP token in this module is written.
func Number(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// SPDX-License-Identifier: MIT
// Package solution is SolutionReviser: it parses a solver's variable-value
// dump and writes the resulting node coordinates back onto a cloned graph.
package solution

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/weese/transit-map/config"
	"github.com/weese/transit-map/graph"
)

// Values maps a solver variable name to its value.
type Values map[string]float64

// Parse reads a solver solution stream. Lines beginning with
// "objective value:" or "solution status:" are ignored, as are any line
// that does not split into at least a variable and a value token.
func Parse(r io.Reader) (Values, error) {
	values := make(Values)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "objective value:") || strings.HasPrefix(line, "solution status:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		values[fields[0]] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// Revise returns a clone of g with every node's X/Y set from values,
// offset back into the original coordinate space and rounded to 5 decimal
// places. A variable absent from values is treated as 0, per spec.md §4.9.
func Revise(g *graph.Graph, values Values, cfg config.Config) *graph.Graph {
	out := g.Clone()
	for i, n := range out.Nodes {
		vx := values["vx"+strconv.Itoa(i)]
		vy := values["vy"+strconv.Itoa(i)]
		n.X = round5(vx - cfg.Offset)
		n.Y = round5(vy - cfg.Offset)
	}
	return out
}

func round5(v float64) float64 {
	const scale = 1e5
	return math.Round(v*scale) / scale
}

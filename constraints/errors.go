// SPDX-License-Identifier: MIT
package constraints

import "errors"

// ErrUnknownDirection indicates an edge's main direction fell outside 0-7,
// which direction.Classify never produces on its own but a hand-built
// graph.Edge supplied directly to this package might.
var ErrUnknownDirection = errors.New("constraints: direction index out of range")

// SPDX-License-Identifier: MIT
// Package: lvknot/render
//
// mermaid.go — Mermaid "graph TD" export.

package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvknot/diagram"
)

// Mermaid produces a Mermaid graph TD flowchart of d. Crossing i becomes
// node Ci labelled with its kind, every arc becomes an edge labelled with
// its strand index, and free loops become standalone circle nodes Li.
func Mermaid(d diagram.Diagram) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i := 0; i < d.NumCrossings(); i++ {
		fmt.Fprintf(&sb, "  C%d[\"%d: %s\"]\n", i, i, Kind(d.Crossing(i)))
	}
	for i := 0; i < d.NumStrands(); i++ {
		s := d.Strand(i)
		if s.IsLoop() {
			fmt.Fprintf(&sb, "  L%d((\"loop %d\"))\n", i, i)
			continue
		}
		fmt.Fprintf(&sb, "  C%d -->|%d| C%d\n", s.From, i, s.To)
	}

	return sb.String()
}

// Kind returns a short tag for a crossing: "X+" or "X-" for transverse
// crossings, "O" for double points and "M" for midpoints.
func Kind(c diagram.Crossing) string {
	switch x := c.(type) {
	case diagram.Transverse:
		if x.Positive {
			return "X+"
		}
		return "X-"
	case diagram.Singular:
		return "O"
	case diagram.Midpoint:
		return "M"
	default:
		return "?"
	}
}

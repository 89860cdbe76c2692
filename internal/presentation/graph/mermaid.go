// Package graph exports the discovered maze as a Mermaid flowchart, for
// embedding exploration results in markdown docs.
package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/ariadne/pkg/domain"
)

// GenerateMermaid produces Mermaid flowchart syntax from a snapshot. Semantic
// shapes: entry ((circle)), exit [[subroutine]], trap [/parallelogram/]. The
// shortest route and the agent's position are styled when present.
func GenerateMermaid(snap domain.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	cells := sortedCells(snap)
	for _, cell := range cells {
		if !cell.Reachable {
			continue
		}

		opener, closer := "[", "]"
		switch {
		case cell.Coordinate == (domain.Coordinate{}):
			opener, closer = "((", "))"
		case cell.Kind == domain.KindStop:
			opener, closer = "[[", "]]"
		case cell.Kind == domain.KindTrap:
			opener, closer = "[/", "/]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", nodeID(cell.Coordinate), opener, cell.Key(), closer)

		// Edges to the right and downward neighbors only, so each pair is
		// drawn once.
		for _, d := range []domain.Coordinate{{X: 1}, {Y: 1}} {
			next := domain.Coordinate{X: cell.X + d.X, Y: cell.Y + d.Y}
			if neighbor, ok := snap.Cells[next.Key()]; ok && neighbor.Reachable {
				fmt.Fprintf(&sb, "    %s --- %s\n", nodeID(cell.Coordinate), nodeID(next))
			}
		}
	}

	writeOverlay(&sb, snap)
	return sb.String()
}

func writeOverlay(sb *strings.Builder, snap domain.Snapshot) {
	sb.WriteString("\n    %% Overlay Styles\n")
	sb.WriteString("    classDef route fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef agent fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

	if len(snap.Results) > 0 {
		seen := make(map[string]bool)
		for _, c := range snap.Results[0] {
			id := nodeID(c)
			if !seen[id] {
				seen[id] = true
				fmt.Fprintf(sb, "    class %s route;\n", id)
			}
		}
	}

	if _, ok := snap.Cells[snap.Position.Key()]; ok || snap.Position == (domain.Coordinate{}) {
		fmt.Fprintf(sb, "    class %s agent;\n", nodeID(snap.Position))
	}
}

func sortedCells(snap domain.Snapshot) []domain.Cell {
	cells := make([]domain.Cell, 0, len(snap.Cells))
	for _, c := range snap.Cells {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// nodeID sanitizes a coordinate into a Mermaid-safe identifier. Negative
// components use "m" as the sign.
func nodeID(c domain.Coordinate) string {
	id := fmt.Sprintf("c%d_%d", c.X, c.Y)
	return strings.ReplaceAll(id, "-", "m")
}

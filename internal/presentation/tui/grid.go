// Package tui renders exploration results for terminals.
package tui

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/ariadne/pkg/domain"
)

// Grid symbols. The agent only knows what it discovered, so anything outside
// the map renders as fog.
const (
	symFog     = ' '
	symWall    = '#'
	symPath    = '.'
	symTrap    = 'x'
	symExit    = 'E'
	symAgent  = '@'
	symWalked = '*'
)

// RenderGrid draws the discovered portion of the maze. The shortest path (if
// any) is highlighted, the agent's position marked.
func RenderGrid(snap domain.Snapshot) string {
	if len(snap.Cells) == 0 {
		return "(nothing discovered yet)\n"
	}

	minX, minY, maxX, maxY := bounds(snap)

	onRoute := make(map[string]bool)
	if len(snap.Results) > 0 {
		for _, c := range snap.Results[0] {
			onRoute[c.Key()] = true
		}
	}

	p := termenv.ColorProfile()
	var sb strings.Builder
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			pos := domain.Coordinate{X: x, Y: y}
			sb.WriteString(renderCell(p, snap, pos, onRoute[pos.Key()]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderCell(p termenv.Profile, snap domain.Snapshot, pos domain.Coordinate, onRoute bool) string {
	if pos == snap.Position {
		return termenv.String(string(symAgent)).Foreground(p.Color("#fbbf24")).Bold().String()
	}

	cell, known := snap.Cells[pos.Key()]
	if !known {
		return string(symFog)
	}

	switch {
	case cell.Kind == domain.KindStop:
		return termenv.String(string(symExit)).Foreground(p.Color("#34d399")).String()
	case cell.Kind == domain.KindTrap:
		return termenv.String(string(symTrap)).Foreground(p.Color("#f87171")).String()
	case !cell.Reachable:
		return termenv.String(string(symWall)).Foreground(p.Color("#6b7280")).String()
	case onRoute:
		return termenv.String(string(symWalked)).Foreground(p.Color("#60a5fa")).String()
	default:
		return string(symPath)
	}
}

func bounds(snap domain.Snapshot) (minX, minY, maxX, maxY int) {
	first := true
	for _, cell := range snap.Cells {
		if first {
			minX, maxX = cell.X, cell.X
			minY, maxY = cell.Y, cell.Y
			first = false
			continue
		}
		minX = min(minX, cell.X)
		maxX = max(maxX, cell.X)
		minY = min(minY, cell.Y)
		maxY = max(maxY, cell.Y)
	}
	minX = min(minX, snap.Position.X)
	maxX = max(maxX, snap.Position.X)
	minY = min(minY, snap.Position.Y)
	maxY = max(maxY, snap.Position.Y)
	return
}

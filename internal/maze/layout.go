package maze

import (
	"fmt"
	"strings"

	"github.com/aretw0/ariadne/pkg/domain"
)

// Layout symbols for ASCII maze rows.
const (
	symWall  = '#'
	symPath  = '.'
	symTrap  = 'T'
	symStop  = 'E'
	symEntry = 'S'
)

// Layout is the authority's full knowledge of one maze. Agents only ever see
// it one discovery at a time.
//
// Coordinates handed to agents are relative to the entry cell, so the entry
// is always (0,0). X grows to the right, Y grows downward.
type Layout struct {
	ID   string
	Name string

	rows  []string
	entry struct{ row, col int }
}

// Source provides maze layouts to the authority.
type Source interface {
	// Layout retrieves a layout by ID.
	// Returns domain.ErrLayoutNotFound if the ID is unknown.
	Layout(id string) (*Layout, error)

	// Default returns the layout used when a start request names none.
	Default() (*Layout, error)
}

// Parse builds a Layout from ASCII rows. Rows must be non-empty, rectangular
// and contain exactly one entry ('S'). Walls ('#'), paths ('.'), traps ('T')
// and exits ('E') make up the rest.
func Parse(id, name string, rows []string) (*Layout, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout %s: no rows", id)
	}

	l := &Layout{ID: id, Name: name, rows: rows}
	l.entry.row = -1

	width := len(rows[0])
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("layout %s: row %d has width %d, want %d", id, r, len(row), width)
		}
		for c, sym := range row {
			switch sym {
			case symWall, symPath, symTrap, symStop:
			case symEntry:
				if l.entry.row != -1 {
					return nil, fmt.Errorf("layout %s: multiple entry cells", id)
				}
				l.entry.row = r
				l.entry.col = c
			default:
				return nil, fmt.Errorf("layout %s: unknown symbol %q at row %d col %d", id, sym, r, c)
			}
		}
	}

	if l.entry.row == -1 {
		return nil, fmt.Errorf("layout %s: no entry cell", id)
	}
	if !strings.Contains(strings.Join(rows, ""), string(symStop)) {
		return nil, fmt.Errorf("layout %s: no exit cell", id)
	}

	return l, nil
}

// CellAt returns the cell at an agent-relative coordinate. Out-of-bounds
// coordinates read as unreachable walls.
func (l *Layout) CellAt(pos domain.Coordinate) domain.Cell {
	row := l.entry.row + pos.Y
	col := l.entry.col + pos.X

	cell := domain.Cell{Coordinate: pos}
	if row < 0 || row >= len(l.rows) || col < 0 || col >= len(l.rows[0]) {
		cell.Kind = domain.KindWall
		return cell
	}

	switch l.rows[row][col] {
	case symWall:
		cell.Kind = domain.KindWall
	case symTrap:
		cell.Kind = domain.KindTrap
		cell.Reachable = true
	case symStop:
		cell.Kind = domain.KindStop
		cell.Reachable = true
	default: // path or entry
		cell.Kind = domain.KindPath
		cell.Reachable = true
	}
	return cell
}

// Neighbors returns the four orthogonal cells around pos, walls included.
// Order is fixed: up, right, down, left.
func (l *Layout) Neighbors(pos domain.Coordinate) []domain.Cell {
	deltas := []domain.Coordinate{
		{X: 0, Y: -1},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: -1, Y: 0},
	}

	cells := make([]domain.Cell, 0, len(deltas))
	for _, d := range deltas {
		cells = append(cells, l.CellAt(domain.Coordinate{X: pos.X + d.X, Y: pos.Y + d.Y}))
	}
	return cells
}

// CanMove reports whether a single step from one coordinate to an adjacent,
// enterable cell is legal. Traps and exits are enterable; walls are not.
func (l *Layout) CanMove(from, to domain.Coordinate) bool {
	dx := from.X - to.X
	dy := from.Y - to.Y
	if dx*dx+dy*dy != 1 {
		return false
	}
	return l.CellAt(to).Reachable
}

package domain

import "fmt"

// CellKind classifies discovered terrain.
type CellKind string

const (
	// KindPath is open ground the agent can walk on.
	KindPath CellKind = "path"
	// KindWall blocks movement.
	KindWall CellKind = "wall"
	// KindTrap is legal to enter but kills the agent.
	KindTrap CellKind = "trap"
	// KindStop marks an exit cell.
	KindStop CellKind = "stop"
)

// Coordinate is an integer grid position. The entry cell of a session is
// always (0,0); the authority reports positions relative to it.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Key returns the canonical map/set key for the coordinate.
func (c Coordinate) Key() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Cell is a discovered coordinate plus its terrain. Cells are immutable once
// discovered; the authority never mutates previously reported terrain.
type Cell struct {
	Coordinate
	Reachable bool     `json:"reachable"`
	Kind      CellKind `json:"kind"`
}

// Safe reports whether an explorer may step onto the cell without dying.
func (c Cell) Safe() bool {
	return c.Reachable && c.Kind != KindTrap
}

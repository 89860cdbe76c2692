package domain

import "sort"

// Path is an ordered walk from the entry cell to an exit cell, inclusive.
type Path []Coordinate

// Len returns the number of cells in the walk.
func (p Path) Len() int {
	return len(p)
}

// Contains reports whether the walk passes through the coordinate.
func (p Path) Contains(c Coordinate) bool {
	for _, step := range p {
		if step == c {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the walk. Exploration shares path
// prefixes between recursive frames, so candidates must be detached before
// they are recorded.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// SortPaths orders candidates ascending by length. The sort is stable so that
// equal-length paths keep their discovery order.
func SortPaths(paths []Path) {
	sort.SliceStable(paths, func(i, j int) bool {
		return len(paths[i]) < len(paths[j])
	})
}

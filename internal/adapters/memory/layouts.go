package memory

import (
	"github.com/aretw0/ariadne/internal/maze"
	"github.com/aretw0/ariadne/pkg/domain"
)

// defaultRows is the built-in maze served when a start request names none.
var defaultRows = []string{
	"S..#E",
	".#..T",
	"...#.",
	"#...E",
}

// LayoutSource implements maze.Source from a static set of parsed layouts.
// It always carries the built-in default maze; tests add their own with Add.
type LayoutSource struct {
	layouts   map[string]*maze.Layout
	defaultID string
}

// NewLayoutSource creates a source holding the built-in default layout.
func NewLayoutSource() *LayoutSource {
	layout, err := maze.Parse("labyrinth", "The Labyrinth", defaultRows)
	if err != nil {
		// The built-in rows are constant; a parse failure is a programming
		// error, not a runtime condition.
		panic(err)
	}

	return &LayoutSource{
		layouts:   map[string]*maze.Layout{layout.ID: layout},
		defaultID: layout.ID,
	}
}

// Add registers a layout. The first added layout does not displace the
// built-in default; use SetDefault for that.
func (s *LayoutSource) Add(layout *maze.Layout) {
	s.layouts[layout.ID] = layout
}

// SetDefault changes which layout Start serves when none is requested.
func (s *LayoutSource) SetDefault(id string) error {
	if _, ok := s.layouts[id]; !ok {
		return domain.ErrLayoutNotFound
	}
	s.defaultID = id
	return nil
}

// Layout retrieves a layout by ID.
func (s *LayoutSource) Layout(id string) (*maze.Layout, error) {
	layout, ok := s.layouts[id]
	if !ok {
		return nil, domain.ErrLayoutNotFound
	}
	return layout, nil
}

// Default returns the default layout.
func (s *LayoutSource) Default() (*maze.Layout, error) {
	return s.Layout(s.defaultID)
}

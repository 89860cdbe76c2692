package maze_test

import (
	"testing"

	"github.com/aretw0/ariadne/internal/maze"
	"github.com/aretw0/ariadne/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Validation(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"ragged", []string{"S.E", "##"}},
		{"no entry", []string{"..E"}},
		{"two entries", []string{"S.S", "..E"}},
		{"no exit", []string{"S.."}},
		{"unknown symbol", []string{"S?E"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.Parse("bad", "", tc.rows)
			assert.Error(t, err)
		})
	}
}

func TestLayout_RelativeCoordinates(t *testing.T) {
	l, err := maze.Parse("corridor", "", []string{
		"#####",
		"#S.E#",
		"#####",
	})
	require.NoError(t, err)

	// The entry reads as a path cell at (0,0).
	entry := l.CellAt(domain.Coordinate{})
	assert.Equal(t, domain.KindPath, entry.Kind)
	assert.True(t, entry.Reachable)

	exit := l.CellAt(domain.Coordinate{X: 2, Y: 0})
	assert.Equal(t, domain.KindStop, exit.Kind)

	// Out of bounds reads as wall.
	oob := l.CellAt(domain.Coordinate{X: -10, Y: 0})
	assert.Equal(t, domain.KindWall, oob.Kind)
	assert.False(t, oob.Reachable)
}

func TestLayout_NeighborsOrder(t *testing.T) {
	l, err := maze.Parse("cross", "", []string{
		"#T#",
		"#S.",
		"#E#",
	})
	require.NoError(t, err)

	cells := l.Neighbors(domain.Coordinate{})
	require.Len(t, cells, 4)

	// Fixed order: up, right, down, left.
	assert.Equal(t, domain.KindTrap, cells[0].Kind)
	assert.Equal(t, domain.KindPath, cells[1].Kind)
	assert.Equal(t, domain.KindStop, cells[2].Kind)
	assert.Equal(t, domain.KindWall, cells[3].Kind)
}

func TestLayout_CanMove(t *testing.T) {
	l, err := maze.Parse("corridor", "", []string{
		"#####",
		"#S.E#",
		"#####",
	})
	require.NoError(t, err)

	from := domain.Coordinate{}
	assert.True(t, l.CanMove(from, domain.Coordinate{X: 1, Y: 0}))
	assert.False(t, l.CanMove(from, domain.Coordinate{X: 0, Y: 1}), "wall")
	assert.False(t, l.CanMove(from, domain.Coordinate{X: 2, Y: 0}), "not adjacent")
	assert.False(t, l.CanMove(from, from), "no self move")
}

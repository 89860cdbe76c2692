package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/ariadne/internal/runtime"
	"github.com/aretw0/ariadne/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_NoPathSucceedsImmediately(t *testing.T) {
	gw := newFakeGateway(t, []string{"S.E"})
	store := startSession(t, gw)

	nav := runtime.NewNavigator(gw, store)
	status := nav.Follow(context.Background())

	assert.Equal(t, domain.NavSucceeded, status)
	snap := store.Snapshot()
	assert.True(t, snap.Finished)
	assert.Contains(t, snap.Log, "no path available")
	assert.Empty(t, gw.Moves, "no moves without a path")
}

func TestNavigator_WalksShortestPath(t *testing.T) {
	gw := newFakeGateway(t, []string{"S.E"})
	store := startSession(t, gw)

	store.SetResults([]domain.Path{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	})

	nav := runtime.NewNavigator(gw, store)
	status := nav.Follow(context.Background())

	assert.Equal(t, domain.NavSucceeded, status)
	assert.Equal(t, []domain.Coordinate{{X: 1, Y: 0}, {X: 2, Y: 0}}, gw.Moves)

	snap := store.Snapshot()
	assert.True(t, snap.Finished)
	assert.True(t, snap.Win, "the last step lands on the exit")
	assert.Equal(t, domain.Coordinate{X: 2, Y: 0}, snap.Position)
}

func TestNavigator_SelectsShortestOfMany(t *testing.T) {
	gw := newFakeGateway(t, []string{"S.E"})
	store := startSession(t, gw)

	short := domain.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	long := domain.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 0}}
	store.SetResults([]domain.Path{short, long})

	nav := runtime.NewNavigator(gw, store)
	status := nav.Follow(context.Background())

	assert.Equal(t, domain.NavSucceeded, status)
	assert.Len(t, gw.Moves, short.Len()-1)
}

// A failed step aborts the walk, stops issuing moves, and leaves the
// finished flag unset.
func TestNavigator_AbortLeavesUnfinished(t *testing.T) {
	gw := newFakeGateway(t, []string{"S...E"})
	store := startSession(t, gw)

	store.SetResults([]domain.Path{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}},
	})

	gw.FailMoveAt = func(target domain.Coordinate, call int) error {
		if call == 2 {
			return errors.New("timeout after 3s")
		}
		return nil
	}

	nav := runtime.NewNavigator(gw, store)
	status := nav.Follow(context.Background())

	assert.Equal(t, domain.NavAborted, status)
	require.Len(t, gw.Moves, 1, "no further steps after the failure")

	snap := store.Snapshot()
	assert.False(t, snap.Finished, "abort does not finish the session")
	assert.Contains(t, snap.Log[len(snap.Log)-1], "navigation aborted")
	assert.Equal(t, domain.Coordinate{X: 1, Y: 0}, snap.Position, "position stays at the last confirmed cell")
}

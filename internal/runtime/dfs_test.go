package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/ariadne/internal/runtime"
	"github.com/aretw0/ariadne/pkg/domain"
	"github.com/aretw0/ariadne/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startSession(t *testing.T, gw *fakeGateway) *session.Store {
	t.Helper()
	store := session.New()
	update, err := gw.Start(context.Background(), "tester")
	require.NoError(t, err)
	store.ApplyStart(update)
	return store
}

func TestDFS_RequiresSession(t *testing.T) {
	gw := newFakeGateway(t, []string{"S.E"})
	dfs := runtime.NewDFS(gw, session.New())

	_, err := dfs.Explore(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

// Straight two-step corridor: exactly one path of length 3.
func TestDFS_StraightCorridor(t *testing.T) {
	gw := newFakeGateway(t, []string{"S.E"})
	store := startSession(t, gw)

	dfs := runtime.NewDFS(gw, store)
	paths, err := dfs.Explore(context.Background())
	require.NoError(t, err)

	require.Len(t, paths, 1)
	assert.Equal(t, domain.Path{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
	}, paths[0])

	snap := store.Snapshot()
	assert.False(t, snap.Exploring, "run disarms the session")
	assert.False(t, snap.Win, "exploration never steps onto the exit")
	assert.Equal(t, paths, snap.Results)
}

// Two routes to the same exit, lengths 3 and 5: both recorded, shortest
// first.
func TestDFS_TwoRoutesSortedByLength(t *testing.T) {
	gw := newFakeGateway(t, []string{
		"S.E",
		"...",
	})
	store := startSession(t, gw)

	dfs := runtime.NewDFS(gw, store)
	paths, err := dfs.Explore(context.Background())
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, 3, paths[0].Len())
	assert.Equal(t, 5, paths[1].Len())
	for i := 1; i < len(paths); i++ {
		assert.LessOrEqual(t, paths[i-1].Len(), paths[i].Len())
	}
}

// A dead-end branch triggers a physical backtracking move before the next
// sibling, and never leaks a partial path into the results.
func TestDFS_DeadEndBacktracks(t *testing.T) {
	gw := newFakeGateway(t, []string{
		"S.E",
		"#.#",
	})
	store := startSession(t, gw)

	dfs := runtime.NewDFS(gw, store)
	paths, err := dfs.Explore(context.Background())
	require.NoError(t, err)

	require.Len(t, paths, 1)
	assert.Equal(t, 3, paths[0].Len())

	// Forward into the dead end, explicit backtrack out of it, then the
	// final backtrack to the entry as the root frame unwinds.
	assert.Equal(t, []domain.Coordinate{
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 1, Y: 0},
		{X: 0, Y: 0},
	}, gw.Moves)

	for _, p := range paths {
		assert.False(t, p.Contains(domain.Coordinate{X: 1, Y: 1}), "dead end must not appear in results")
	}
}

// A discovery failure deep in one branch aborts only that branch; routes
// found elsewhere survive.
func TestDFS_DiscoverFailureAbortsBranchOnly(t *testing.T) {
	gw := newFakeGateway(t, []string{
		"S.E",
		"...",
	})
	gw.FailDiscoverAt = func(position domain.Coordinate, call int) error {
		if position == (domain.Coordinate{X: 1, Y: 1}) {
			return errors.New("timeout after 3s")
		}
		return nil
	}
	store := startSession(t, gw)

	dfs := runtime.NewDFS(gw, store)
	paths, err := dfs.Explore(context.Background())
	require.NoError(t, err)

	// Without the failure this maze yields two routes (see above); the
	// deeper one dies with its branch.
	require.Len(t, paths, 1)
	assert.Equal(t, 3, paths[0].Len())

	snap := store.Snapshot()
	assert.Contains(t, snap.Log[len(snap.Log)-2], "discover failed")
}

// A move failure abandons the branch without poisoning its siblings.
func TestDFS_MoveFailureAbandonsBranch(t *testing.T) {
	gw := newFakeGateway(t, []string{
		"S.E",
		"...",
	})
	gw.FailMoveAt = func(target domain.Coordinate, call int) error {
		if target == (domain.Coordinate{X: 1, Y: 1}) {
			return errors.New("connection reset")
		}
		return nil
	}
	store := startSession(t, gw)

	dfs := runtime.NewDFS(gw, store)
	paths, err := dfs.Explore(context.Background())
	require.NoError(t, err)

	// The short route does not pass through (1,1) and must survive.
	require.NotEmpty(t, paths)
	assert.Equal(t, 3, paths[0].Len())
}

// Traps are never entered and never appear in results; no path repeats a
// coordinate.
func TestDFS_AvoidsTrapsAndRevisits(t *testing.T) {
	gw := newFakeGateway(t, []string{
		"S.T",
		"..E",
		"T..",
	})
	store := startSession(t, gw)

	dfs := runtime.NewDFS(gw, store)
	paths, err := dfs.Explore(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	trapA := domain.Coordinate{X: 2, Y: 0}
	trapB := domain.Coordinate{X: 0, Y: 2}
	for _, move := range gw.Moves {
		assert.NotEqual(t, trapA, move)
		assert.NotEqual(t, trapB, move)
	}

	for _, p := range paths {
		seen := make(map[string]bool)
		for _, c := range p {
			assert.False(t, seen[c.Key()], "path revisits %s", c.Key())
			seen[c.Key()] = true
			assert.NotEqual(t, trapA, c)
			assert.NotEqual(t, trapB, c)
		}
	}

	assert.False(t, store.Dead(), "the explorer must stay alive")
}

// The discovered map only ever grows during a run.
func TestDFS_MonotonicDiscovery(t *testing.T) {
	gw := newFakeGateway(t, []string{
		"S..",
		".#E",
	})
	store := startSession(t, gw)

	var sizes []int
	hooks := domain.LifecycleHooks{
		OnDiscover: func(_ context.Context, _ *domain.DiscoverEvent) {
			sizes = append(sizes, len(store.Snapshot().Cells))
		},
	}

	dfs := runtime.NewDFS(gw, store, runtime.WithLifecycleHooks(hooks))
	_, err := dfs.Explore(context.Background())
	require.NoError(t, err)

	for i := 1; i < len(sizes); i++ {
		assert.GreaterOrEqual(t, sizes[i], sizes[i-1])
	}
}

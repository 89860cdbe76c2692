package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/ariadne/pkg/domain"
)

type fakeEngine struct {
	started string
	snap    domain.Snapshot
	routes  []domain.Path
	status  domain.NavigationStatus
}

func (f *fakeEngine) Start(ctx context.Context, player string) error {
	f.started = player
	return nil
}

func (f *fakeEngine) Explore(ctx context.Context) ([]domain.Path, error) {
	return f.routes, nil
}

func (f *fakeEngine) FollowShortestPath(ctx context.Context) (domain.NavigationStatus, error) {
	f.snap.Win = true
	return f.status, nil
}

func (f *fakeEngine) Snapshot() domain.Snapshot { return f.snap }
func (f *fakeEngine) Reset()                    {}

func TestHandleSolve(t *testing.T) {
	eng := &fakeEngine{
		routes: []domain.Path{{{X: 0, Y: 0}, {X: 1, Y: 0}}},
		status: domain.NavSucceeded,
	}
	s := NewServer(eng)

	resp, err := s.handleSolve(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"player": "theseus",
	})
	require.NoError(t, err)
	assert.Equal(t, "theseus", eng.started)
	assert.Equal(t, domain.NavSucceeded, resp.Status)
	assert.True(t, resp.Win)
	assert.Len(t, resp.Routes, 1)
}

func TestHandleSolve_RequiresPlayer(t *testing.T) {
	s := NewServer(&fakeEngine{})

	_, err := s.handleSolve(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{})
	assert.ErrorContains(t, err, "player is required")
}

func TestHandleExplore_DoesNotNavigate(t *testing.T) {
	eng := &fakeEngine{routes: []domain.Path{}}
	s := NewServer(eng)

	resp, err := s.handleExplore(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"player": "theseus",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Status)
	assert.False(t, resp.Win)
}

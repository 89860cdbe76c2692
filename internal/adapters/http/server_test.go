package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authority "github.com/aretw0/ariadne/internal/adapters/http"
	"github.com/aretw0/ariadne/internal/adapters/memory"
	"github.com/aretw0/ariadne/internal/maze"
	"github.com/aretw0/ariadne/pkg/domain"
	"github.com/aretw0/ariadne/pkg/ports"
)

func newTestServer(t *testing.T, rows []string) *httptest.Server {
	t.Helper()

	layouts := memory.NewLayoutSource()
	if rows != nil {
		layout, err := maze.Parse("test", "Test", rows)
		require.NoError(t, err)
		layouts.Add(layout)
		require.NoError(t, layouts.SetDefault("test"))
	}

	handler := authority.NewHandler(memory.NewStore(), layouts, prometheus.NewRegistry())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func startGame(t *testing.T, srv *httptest.Server) domain.Update {
	t.Helper()
	resp := postJSON(t, srv.URL+"/api/start", map[string]string{"player": "theseus"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var update domain.Update
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&update))
	return update
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func move(t *testing.T, srv *httptest.Server, endpoint string, x, y int) (*http.Response, domain.Update) {
	t.Helper()
	resp := postJSON(t, srv.URL+endpoint, map[string]int{"x": x, "y": y})

	var update domain.Update
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&update))
	}
	resp.Body.Close()
	return resp, update
}

func TestServer_StartIssuesCapabilities(t *testing.T) {
	srv := newTestServer(t, []string{"S.E"})

	update := startGame(t, srv)
	assert.Equal(t, domain.Coordinate{}, update.Position)
	assert.False(t, update.Dead)
	assert.False(t, update.Win)
	assert.NotEmpty(t, update.MoveEndpoint)
	assert.NotEmpty(t, update.DiscoverEndpoint)
}

func TestServer_StartRequiresPlayer(t *testing.T) {
	srv := newTestServer(t, []string{"S.E"})

	resp := postJSON(t, srv.URL+"/api/start", map[string]string{})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_StartUnknownMaze(t *testing.T) {
	srv := newTestServer(t, []string{"S.E"})

	resp := postJSON(t, srv.URL+"/api/start", map[string]string{"player": "theseus", "maze": "nope"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_DiscoverReturnsNeighbors(t *testing.T) {
	srv := newTestServer(t, []string{"S.E"})
	update := startGame(t, srv)

	resp, err := http.Get(srv.URL + update.DiscoverEndpoint)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Cells []domain.Cell `json:"cells"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	// Fixed order: up, right, down, left. Only right is open.
	require.Len(t, body.Cells, 4)
	assert.False(t, body.Cells[0].Reachable)
	assert.True(t, body.Cells[1].Reachable)
	assert.Equal(t, domain.Coordinate{X: 1, Y: 0}, body.Cells[1].Coordinate)
}

func TestServer_MoveRotatesToken(t *testing.T) {
	srv := newTestServer(t, []string{"S.E"})
	start := startGame(t, srv)

	resp, after := move(t, srv, start.MoveEndpoint, 1, 0)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.Coordinate{X: 1, Y: 0}, after.Position)
	assert.NotEqual(t, start.MoveEndpoint, after.MoveEndpoint)

	// The pre-move endpoint is now stale.
	resp, _ = move(t, srv, start.MoveEndpoint, 0, 0)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Discovery with the stale token is rejected too.
	getResp, err := http.Get(srv.URL + start.DiscoverEndpoint)
	require.NoError(t, err)
	getResp.Body.Close()
	assert.Equal(t, http.StatusConflict, getResp.StatusCode)
}

func TestServer_DiscoverDoesNotRotateToken(t *testing.T) {
	srv := newTestServer(t, []string{"S.E"})
	start := startGame(t, srv)

	for i := 0; i < 2; i++ {
		resp, err := http.Get(srv.URL + start.DiscoverEndpoint)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, _ := move(t, srv, start.MoveEndpoint, 1, 0)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_IllegalMove(t *testing.T) {
	srv := newTestServer(t, []string{"S.E"})
	start := startGame(t, srv)

	// Not adjacent.
	resp, _ := move(t, srv, start.MoveEndpoint, 2, 0)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// Into a wall (out of bounds reads as wall).
	resp, _ = move(t, srv, start.MoveEndpoint, 0, -1)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// Rejected moves don't rotate the token.
	resp, _ = move(t, srv, start.MoveEndpoint, 1, 0)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_TrapKills(t *testing.T) {
	srv := newTestServer(t, []string{"STE"})
	start := startGame(t, srv)

	resp, after := move(t, srv, start.MoveEndpoint, 1, 0)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, after.Dead)

	// Dead games reject further moves.
	resp, _ = move(t, srv, after.MoveEndpoint, 0, 0)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestServer_ExitWins(t *testing.T) {
	srv := newTestServer(t, []string{"SE"})
	start := startGame(t, srv)

	resp, after := move(t, srv, start.MoveEndpoint, 1, 0)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, after.Win)

	resp, _ = move(t, srv, after.MoveEndpoint, 0, 0)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestServer_UnknownGame(t *testing.T) {
	srv := newTestServer(t, []string{"S.E"})

	resp, err := http.Get(srv.URL + "/api/games/nope/discover?token=x")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, []string{"S.E"})

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

type recordingLocker struct {
	locked   []string
	released int
}

func (l *recordingLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	l.locked = append(l.locked, key)
	return func(ctx context.Context) error {
		l.released++
		return nil
	}, nil
}

func TestServer_MovesHoldTheGameLock(t *testing.T) {
	layouts := memory.NewLayoutSource()
	layout, err := maze.Parse("test", "Test", []string{"S.E"})
	require.NoError(t, err)
	layouts.Add(layout)
	require.NoError(t, layouts.SetDefault("test"))

	locker := &recordingLocker{}
	handler := authority.NewHandler(memory.NewStore(), layouts, prometheus.NewRegistry(),
		authority.WithLocker(locker))
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	start := startGame(t, srv)
	resp, _ := move(t, srv, start.MoveEndpoint, 1, 0)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, locker.locked, 1)
	assert.Equal(t, 1, locker.released)
}

func TestServer_DefaultMazeIsSolvable(t *testing.T) {
	// nil rows keeps the built-in default layout.
	srv := newTestServer(t, nil)
	update := startGame(t, srv)

	// Walk the top corridor right twice; the built-in maze keeps going, this
	// just proves the default layout serves real terrain.
	resp, update := move(t, srv, update.MoveEndpoint, 1, 0)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, update = move(t, srv, update.MoveEndpoint, 2, 0)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, update.Dead)
	assert.Equal(t, domain.Coordinate{X: 2, Y: 0}, update.Position)
}

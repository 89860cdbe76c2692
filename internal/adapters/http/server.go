// Package http implements the reference maze authority: the HTTP service the
// remote gateway client talks to. It owns the full maze layouts and reveals
// them one discovery at a time, rotating the capability token on every state
// transition.
package http

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/ariadne/internal/logging"
	"github.com/aretw0/ariadne/internal/maze"
	"github.com/aretw0/ariadne/pkg/domain"
	"github.com/aretw0/ariadne/pkg/ports"
)

// Server holds the authority's collaborators.
type Server struct {
	games   ports.GameStore
	layouts maze.Source
	locker  ports.GameLocker
	logger  *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the operational logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithLocker serializes move handling per game, for deployments with more
// than one authority replica sharing a store.
func WithLocker(locker ports.GameLocker) Option {
	return func(s *Server) {
		s.locker = locker
	}
}

// NewHandler builds the authority's HTTP handler. The registry, when not nil,
// is exposed at /metrics.
func NewHandler(games ports.GameStore, layouts maze.Source, reg *prometheus.Registry, opts ...Option) http.Handler {
	s := &Server{
		games:   games,
		layouts: layouts,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Post("/api/start", s.handleStart)
	r.Get("/api/games/{id}/discover", s.handleDiscover)
	r.Post("/api/games/{id}/move", s.handleMove)
	if reg != nil {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	return r
}

type startRequest struct {
	Player string `json:"player"`
	Maze   string `json:"maze,omitempty"`
}

type moveRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type discoverResponse struct {
	Cells []domain.Cell `json:"cells"`
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var body startRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Player == "" {
		writeError(w, http.StatusBadRequest, "player is required")
		return
	}

	layout, err := s.lookupLayout(body.Maze)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown maze")
		return
	}

	game := &domain.Game{
		ID:     randomHex(8),
		Player: body.Player,
		Layout: layout.ID,
		Token:  randomHex(16),
	}
	if err := s.games.Save(r.Context(), game); err != nil {
		s.logger.Error("failed to save game", "err", err)
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}

	s.logger.Info("game started", "game", game.ID, "player", game.Player, "maze", layout.ID)
	writeJSON(w, http.StatusOK, s.update(game))
}

func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	game, layout, ok := s.authorize(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, discoverResponse{
		Cells: layout.Neighbors(game.Position),
	})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	if s.locker != nil {
		unlock, err := s.locker.Lock(r.Context(), chi.URLParam(r, "id"), 5*time.Second)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, "game is locked")
			return
		}
		defer func() {
			if err := unlock(r.Context()); err != nil {
				s.logger.Warn("failed to release game lock", "err", err)
			}
		}()
	}

	game, layout, ok := s.authorize(w, r)
	if !ok {
		return
	}
	if game.Dead || game.Win {
		writeError(w, http.StatusConflict, "game is over")
		return
	}

	var body moveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	target := domain.Coordinate{X: body.X, Y: body.Y}
	if !layout.CanMove(game.Position, target) {
		writeError(w, http.StatusUnprocessableEntity, "illegal move")
		return
	}

	game.Position = target
	switch layout.CellAt(target).Kind {
	case domain.KindTrap:
		game.Dead = true
	case domain.KindStop:
		game.Win = true
	}

	// Rotate the capability token. The endpoints in the previous response are
	// now stale.
	game.Token = randomHex(16)

	if err := s.games.Save(r.Context(), game); err != nil {
		s.logger.Error("failed to save game", "err", err)
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}

	s.logger.Debug("move applied", "game", game.ID, "x", target.X, "y", target.Y,
		"dead", game.Dead, "win", game.Win)
	writeJSON(w, http.StatusOK, s.update(game))
}

// authorize loads the game named in the URL and checks its capability token.
// On failure it writes the error response and returns ok=false.
func (s *Server) authorize(w http.ResponseWriter, r *http.Request) (*domain.Game, *maze.Layout, bool) {
	id := chi.URLParam(r, "id")

	game, err := s.games.Load(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown game")
		return nil, nil, false
	}

	if r.URL.Query().Get("token") != game.Token {
		writeError(w, http.StatusConflict, "stale capability token")
		return nil, nil, false
	}

	layout, err := s.layouts.Layout(game.Layout)
	if err != nil {
		s.logger.Error("game references missing layout", "game", game.ID, "layout", game.Layout)
		writeError(w, http.StatusInternalServerError, "layout unavailable")
		return nil, nil, false
	}

	return game, layout, true
}

func (s *Server) lookupLayout(id string) (*maze.Layout, error) {
	if id == "" {
		return s.layouts.Default()
	}
	return s.layouts.Layout(id)
}

func (s *Server) update(game *domain.Game) domain.Update {
	return domain.Update{
		Position:         game.Position,
		Dead:             game.Dead,
		Win:              game.Win,
		MoveEndpoint:     fmt.Sprintf("/api/games/%s/move?token=%s", game.ID, game.Token),
		DiscoverEndpoint: fmt.Sprintf("/api/games/%s/discover?token=%s", game.ID, game.Token),
	}
}

func randomHex(bytes int) string {
	buf := make([]byte, bytes)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

package memory

import (
	"context"
	"sync"

	"github.com/aretw0/ariadne/pkg/domain"
)

// Store implements ports.GameStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Game
	mu   sync.RWMutex
}

// NewStore creates a new in-memory game store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Game),
	}
}

// Save persists the game in memory.
func (s *Store) Save(ctx context.Context, game *domain.Game) error {
	// Copy so later caller mutations don't leak into the store.
	copied := *game

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[game.ID] = &copied
	return nil
}

// Load retrieves a game by ID.
func (s *Store) Load(ctx context.Context, id string) (*domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.data[id]
	if !ok {
		return nil, domain.ErrGameNotFound
	}

	ret := *game
	return &ret, nil
}

// Delete removes the game.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns the IDs of active games.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}

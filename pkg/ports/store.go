package ports

import (
	"context"

	"github.com/aretw0/ariadne/pkg/domain"
)

// GameStore defines the interface for persisting authority-side game records.
// The reference authority uses it to survive handler restarts and to share
// games across replicas.
type GameStore interface {
	// Save persists the game record under its ID.
	Save(ctx context.Context, game *domain.Game) error

	// Load retrieves a game record by ID.
	// Returns domain.ErrGameNotFound if the game does not exist.
	Load(ctx context.Context, id string) (*domain.Game, error)

	// Delete removes the game record.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all active games.
	List(ctx context.Context) ([]string, error)
}

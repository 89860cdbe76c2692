package ports

import (
	"context"

	"github.com/aretw0/ariadne/pkg/domain"
)

// Gateway is the driven port to the remote maze authority. The authority is
// the sole source of truth for position, death and victory; every call is a
// network round trip that can fail or time out.
//
// Discovery is stateful: Discover reports the surroundings of wherever the
// agent currently stands, so exploring a different branch requires physically
// moving the agent there first.
type Gateway interface {
	// Start begins a new session. The entry cell is reported as (0,0).
	Start(ctx context.Context, player string) (*domain.Update, error)

	// Discover lists the cells visible from the agent's current position.
	// The endpoint must be the capability token from the latest Update.
	Discover(ctx context.Context, endpoint string) ([]domain.Cell, error)

	// Move relocates the agent to an adjacent cell. The endpoint must be the
	// capability token from the latest Update; the returned Update rotates
	// both tokens. Illegal moves fail without changing the agent's position.
	Move(ctx context.Context, endpoint string, target domain.Coordinate) (*domain.Update, error)
}

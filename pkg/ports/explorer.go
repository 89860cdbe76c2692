package ports

import (
	"context"

	"github.com/aretw0/ariadne/pkg/domain"
)

// Explorer drives the remote agent through the maze to discover exit paths.
//
// Both exploration strategies (exhaustive DFS and the greedy stepper) sit
// behind this single capability. A session holds one active explorer slot, so
// the two strategies can never steer the same physical agent concurrently.
type Explorer interface {
	// Explore runs one exploration from the agent's current position and
	// returns the exit paths found, sorted ascending by length. Branch-level
	// failures (network errors, timeouts, illegal moves) abandon only the
	// affected branch and are reported through the session log, not the
	// returned error.
	Explore(ctx context.Context) ([]domain.Path, error)
}

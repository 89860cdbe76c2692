package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/ariadne/pkg/domain"
	"github.com/aretw0/ariadne/pkg/ports"
	"github.com/aretw0/ariadne/pkg/session"
)

// Greedy is the autonomous stepper: while the session is armed it discovers
// the current surroundings, takes the first unexplored safe neighbor, and
// repeats. It performs no backtracking and finds at most one route.
//
// The stepper is a plain sequential loop. Each iteration is one "tick", so
// non-reentrancy is structural: there is no way for a tick to start while the
// previous one is still in flight.
type Greedy struct {
	gateway ports.Gateway
	store   *session.Store
	opts    options
}

// NewGreedy creates the greedy explorer for a session.
func NewGreedy(gateway ports.Gateway, store *session.Store, opts ...Option) *Greedy {
	return &Greedy{
		gateway: gateway,
		store:   store,
		opts:    newOptions(opts),
	}
}

// Explore free-runs the stepper until it disarms: either no qualifying
// neighbor remains, a call fails, or the agent walks onto an exit. If the run
// ends on an exit the single route is published as the session's results.
func (g *Greedy) Explore(ctx context.Context) ([]domain.Path, error) {
	if !g.store.Started() {
		return nil, domain.ErrNoSession
	}

	g.store.ResetVisited()
	start := g.store.Position()
	g.store.MarkVisited(start)
	route := domain.Path{start}

	for g.store.Exploring() {
		next, ok := g.tick(ctx)
		if !ok {
			break
		}
		route = append(route, next)

		if g.store.Win() {
			g.store.AppendLog(fmt.Sprintf("exit reached at %s after %d step(s)", next.Key(), len(route)-1))
			g.store.Disarm()
			g.store.SetResults([]domain.Path{route})
			return g.store.Results(), nil
		}
	}

	g.store.SetResults(nil)
	return nil, nil
}

// tick performs one discover-decide-move cycle. It returns the cell moved to,
// or ok=false after disarming the session (exhaustion or failure).
func (g *Greedy) tick(ctx context.Context) (domain.Coordinate, bool) {
	position := g.store.Position()
	_, discoverEndpoint := g.store.Endpoints()

	cells, err := g.gateway.Discover(ctx, discoverEndpoint)
	if err != nil {
		g.store.AppendLog(fmt.Sprintf("discover failed at %s: %v", position.Key(), err))
		g.opts.logger.Warn("discover failed", "position", position.Key(), "err", err)
		g.store.Disarm()
		return domain.Coordinate{}, false
	}
	g.store.RecordDiscovery(cells)
	if g.opts.hooks.OnDiscover != nil {
		g.opts.hooks.OnDiscover(ctx, &domain.DiscoverEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventDiscover},
			Position:  position,
			Cells:     cells,
		})
	}

	// First qualifying neighbor wins; no exhaustive search.
	next, ok := g.candidate(cells)
	if !ok {
		g.store.AppendLog(fmt.Sprintf("no unexplored neighbor at %s, stepping stopped", position.Key()))
		g.store.Disarm()
		return domain.Coordinate{}, false
	}

	moveEndpoint, _ := g.store.Endpoints()
	update, err := g.gateway.Move(ctx, moveEndpoint, next.Coordinate)
	if err != nil {
		g.store.AppendLog(fmt.Sprintf("move to %s failed: %v", next.Key(), err))
		g.opts.logger.Warn("move failed", "target", next.Key(), "err", err)
		g.store.Disarm()
		return domain.Coordinate{}, false
	}
	g.store.ApplyMove(update)
	g.store.MarkVisited(update.Position)
	g.store.AppendLog(fmt.Sprintf("stepped to %s", update.Position.Key()))
	if g.opts.hooks.OnMove != nil {
		g.opts.hooks.OnMove(ctx, &domain.MoveEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventMove},
			From:      position,
			To:        update.Position,
		})
	}

	return update.Position, true
}

func (g *Greedy) candidate(cells []domain.Cell) (domain.Cell, bool) {
	for _, cell := range cells {
		if !cell.Safe() || g.store.Visited(cell.Coordinate) {
			continue
		}
		return cell, true
	}
	return domain.Cell{}, false
}

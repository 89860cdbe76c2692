package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/ariadne/pkg/domain"
	"github.com/aretw0/ariadne/pkg/ports"
	"github.com/aretw0/ariadne/pkg/session"
)

// DFS is the exhaustive exploration engine. It physically drives the remote
// agent through a backtracking depth-first search and enumerates every walk
// from the entry cell to an exit that never revisits a cell and never steps
// on a trap.
//
// Discovery is destructive: querying neighbors requires standing at a cell,
// so after a branch is fully explored the engine issues an explicit move to
// return the agent to the branch point before trying the next sibling.
type DFS struct {
	gateway ports.Gateway
	store   *session.Store
	opts    options
}

// NewDFS creates the exhaustive explorer for a session.
func NewDFS(gateway ports.Gateway, store *session.Store, opts ...Option) *DFS {
	return &DFS{
		gateway: gateway,
		store:   store,
		opts:    newOptions(opts),
	}
}

// run owns the mutable search state for one exploration run. It is passed by
// reference through the recursion rather than living on the engine, so a run
// is self-contained and the engine itself stays stateless.
type run struct {
	paths []domain.Path
}

// Explore runs the full search from the agent's current position. The
// returned paths are sorted ascending by length; they are also published to
// the session store as the run's results.
func (d *DFS) Explore(ctx context.Context) ([]domain.Path, error) {
	if !d.store.Started() {
		return nil, domain.ErrNoSession
	}

	d.store.ResetVisited()
	r := &run{}
	d.walk(ctx, r, domain.Path{d.store.Position()})

	domain.SortPaths(r.paths)
	d.store.SetResults(r.paths)
	d.store.Disarm()
	d.store.AppendLog(fmt.Sprintf("exploration finished, %d exit path(s) found", len(r.paths)))
	d.opts.logger.Info("exploration finished", "paths", len(r.paths))

	return d.store.Results(), nil
}

// walk explores one cell and all branches below it. Failures abandon only
// this branch: they are logged and the frame returns, leaving siblings and
// shallower branches untouched.
func (d *DFS) walk(ctx context.Context, r *run, path domain.Path) {
	current := path[len(path)-1]
	if d.store.Visited(current) {
		return
	}
	d.store.MarkVisited(current)

	// The root frame starts where the agent already stands; every deeper
	// frame first moves the agent into its cell.
	if len(path) > 1 {
		if !d.move(ctx, current, false) {
			return
		}
	}

	_, discoverEndpoint := d.store.Endpoints()
	cells, err := d.gateway.Discover(ctx, discoverEndpoint)
	if err != nil {
		d.store.AppendLog(fmt.Sprintf("discover failed at %s: %v", current.Key(), err))
		d.opts.logger.Warn("discover failed", "position", current.Key(), "err", err)
		return
	}
	d.store.RecordDiscovery(cells)
	if d.opts.hooks.OnDiscover != nil {
		d.opts.hooks.OnDiscover(ctx, &domain.DiscoverEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventDiscover},
			Position:  current,
			Cells:     cells,
		})
	}

	// Neighbors are explored in the order the authority returned them.
	for _, cell := range cells {
		if d.store.Visited(cell.Coordinate) || !cell.Reachable || cell.Kind == domain.KindTrap {
			continue
		}

		if cell.Kind == domain.KindStop {
			// An exit is a leaf: record the walk, never step onto it.
			exit := append(path.Clone(), cell.Coordinate)
			r.paths = append(r.paths, exit)
			d.store.AppendLog(fmt.Sprintf("exit found at %s, path length %d", cell.Key(), len(exit)))
			if d.opts.hooks.OnExitFound != nil {
				d.opts.hooks.OnExitFound(ctx, &domain.ExitEvent{
					EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventExitFound},
					Exit:      cell.Coordinate,
					Path:      exit,
				})
			}
			continue
		}

		d.walk(ctx, r, append(path.Clone(), cell.Coordinate))

		// Undo the branch's forward move so the next sibling is explored
		// from the right physical position. The branch may have failed
		// before moving at all; a failed backtrack is logged and the
		// sibling loop carries on regardless.
		if d.store.Position() != current {
			d.move(ctx, current, true)
		}
	}
}

// move relocates the agent and applies the confirmed response. It returns
// false on failure, after logging; it never propagates the error upward.
func (d *DFS) move(ctx context.Context, target domain.Coordinate, backtrack bool) bool {
	from := d.store.Position()
	moveEndpoint, _ := d.store.Endpoints()

	update, err := d.gateway.Move(ctx, moveEndpoint, target)
	if err != nil {
		if backtrack {
			d.store.AppendLog(fmt.Sprintf("backtrack to %s failed: %v", target.Key(), err))
		} else {
			d.store.AppendLog(fmt.Sprintf("move to %s failed: %v", target.Key(), err))
		}
		d.opts.logger.Warn("move failed", "target", target.Key(), "backtrack", backtrack, "err", err)
		return false
	}
	d.store.ApplyMove(update)

	event := &domain.MoveEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventMove},
		From:      from,
		To:        update.Position,
	}
	if backtrack {
		event.Type = domain.EventBacktrack
		if d.opts.hooks.OnBacktrack != nil {
			d.opts.hooks.OnBacktrack(ctx, event)
		}
	} else if d.opts.hooks.OnMove != nil {
		d.opts.hooks.OnMove(ctx, event)
	}
	return true
}

package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/ariadne/pkg/domain"
	"github.com/aretw0/ariadne/pkg/ports"
	"github.com/aretw0/ariadne/pkg/session"
)

// Navigator replays a discovered exit path by issuing sequential moves. It is
// a small state machine: Idle -> Walking -> Succeeded | Aborted.
type Navigator struct {
	gateway ports.Gateway
	store   *session.Store
	opts    options
	status  domain.NavigationStatus
}

// NewNavigator creates a navigator for a session.
func NewNavigator(gateway ports.Gateway, store *session.Store, opts ...Option) *Navigator {
	return &Navigator{
		gateway: gateway,
		store:   store,
		opts:    newOptions(opts),
		status:  domain.NavIdle,
	}
}

// Status returns the navigator's current state.
func (n *Navigator) Status() domain.NavigationStatus {
	return n.status
}

// Follow selects the shortest discovered path (results are sorted ascending
// by length, ties broken by discovery order) and walks it step by step.
//
// With no results it succeeds immediately. A failed step aborts the walk and
// deliberately leaves the session's finished flag unset: only arrival and the
// no-path case mark the session finished.
func (n *Navigator) Follow(ctx context.Context) domain.NavigationStatus {
	results := n.store.Results()
	if len(results) == 0 {
		n.store.AppendLog("no path available")
		n.store.MarkFinished()
		n.status = domain.NavSucceeded
		return n.status
	}

	path := results[0]
	n.status = domain.NavWalking
	n.store.AppendLog(fmt.Sprintf("following shortest path, %d cell(s)", path.Len()))
	n.opts.logger.Info("navigation started", "length", path.Len())

	// The first coordinate is the current position; replay the rest.
	for _, step := range path[1:] {
		moveEndpoint, _ := n.store.Endpoints()
		update, err := n.gateway.Move(ctx, moveEndpoint, step)
		if err != nil {
			n.store.AppendLog(fmt.Sprintf("navigation aborted at %s: %v", step.Key(), err))
			n.opts.logger.Warn("navigation aborted", "target", step.Key(), "err", err)
			n.status = domain.NavAborted
			return n.status
		}

		from := n.store.Position()
		n.store.ApplyMove(update)
		n.store.AppendLog(fmt.Sprintf("moved to %s", update.Position.Key()))
		if n.opts.hooks.OnMove != nil {
			n.opts.hooks.OnMove(ctx, &domain.MoveEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventMove},
				From:      from,
				To:        update.Position,
			})
		}
	}

	n.store.AppendLog(fmt.Sprintf("arrived at exit %s", path[len(path)-1].Key()))
	n.store.MarkFinished()
	n.status = domain.NavSucceeded
	return n.status
}

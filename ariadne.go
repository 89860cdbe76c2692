package ariadne

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/ariadne/internal/logging"
	"github.com/aretw0/ariadne/internal/runtime"
	"github.com/aretw0/ariadne/pkg/domain"
	"github.com/aretw0/ariadne/pkg/ports"
	"github.com/aretw0/ariadne/pkg/session"
)

// Version is the library version, overridable at build time.
var Version = "0.1.0-dev"

// Engine is the high-level entry point for the Ariadne library. It owns one
// session against a maze authority and exposes the mutating operations:
// reset, start, explore and follow.
//
// At most one exploration or navigation operation runs per session. The
// engine holds a single active-operation slot; a second call while one is in
// flight returns domain.ErrBusy instead of queueing. Both exploration
// strategies sit behind this same slot, so they can never steer the agent
// concurrently.
type Engine struct {
	gateway ports.Gateway
	store   *session.Store
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	mode    domain.Mode

	// slot is the non-reentrant in-flight guard. TryLock, never Lock:
	// callers are rejected, not serialized.
	slot sync.Mutex
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a structured logger for operational events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMode selects the exploration strategy (default: exhaustive DFS).
func WithMode(mode domain.Mode) Option {
	return func(e *Engine) {
		e.mode = mode
	}
}

// WithLifecycleHooks registers observability hooks for explorer events.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// New creates an Engine speaking to the given maze authority gateway.
func New(gateway ports.Gateway, opts ...Option) *Engine {
	e := &Engine{
		gateway: gateway,
		store:   session.New(),
		logger:  logging.NewNop(),
		mode:    domain.ModeExhaustive,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// acquire claims the active-operation slot.
func (e *Engine) acquire() (release func(), err error) {
	if !e.slot.TryLock() {
		return nil, domain.ErrBusy
	}
	return e.slot.Unlock, nil
}

// Reset clears all session state back to initial values.
func (e *Engine) Reset() {
	e.store.Reset()
}

// Start begins a new session for the player. Previous session state is
// cleared, the confirmed entry position and capability tokens are installed,
// and the session comes up armed for exploration.
func (e *Engine) Start(ctx context.Context, player string) error {
	release, err := e.acquire()
	if err != nil {
		return err
	}
	defer release()

	update, err := e.gateway.Start(ctx, player)
	if err != nil {
		return fmt.Errorf("start failed: %w", err)
	}

	e.store.ApplyStart(update)
	e.store.AppendLog(fmt.Sprintf("session started for %q at %s", player, update.Position.Key()))
	e.logger.Info("session started", "player", player)
	return nil
}

// Explore runs the session's explorer and returns the exit paths found,
// shortest first. The results are also published on the session snapshot.
func (e *Engine) Explore(ctx context.Context) ([]domain.Path, error) {
	release, err := e.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	return e.explorer().Explore(ctx)
}

// FollowShortestPath replays the shortest discovered path against the
// authority. The returned status is the navigator's terminal state; step
// failures are reported there and in the session log, not as an error.
func (e *Engine) FollowShortestPath(ctx context.Context) (domain.NavigationStatus, error) {
	release, err := e.acquire()
	if err != nil {
		return domain.NavIdle, err
	}
	defer release()

	if !e.store.Started() {
		return domain.NavIdle, domain.ErrNoSession
	}

	nav := runtime.NewNavigator(e.gateway, e.store,
		runtime.WithLogger(e.logger),
		runtime.WithLifecycleHooks(e.hooks),
	)
	return nav.Follow(ctx), nil
}

// Snapshot returns a read-only copy of the session state.
func (e *Engine) Snapshot() domain.Snapshot {
	return e.store.Snapshot()
}

// Mode returns the session's exploration strategy.
func (e *Engine) Mode() domain.Mode {
	return e.mode
}

func (e *Engine) explorer() ports.Explorer {
	opts := []runtime.Option{
		runtime.WithLogger(e.logger),
		runtime.WithLifecycleHooks(e.hooks),
	}
	if e.mode == domain.ModeGreedy {
		return runtime.NewGreedy(e.gateway, e.store, opts...)
	}
	return runtime.NewDFS(e.gateway, e.store, opts...)
}

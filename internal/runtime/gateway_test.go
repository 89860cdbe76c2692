package runtime_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/ariadne/internal/maze"
	"github.com/aretw0/ariadne/pkg/domain"
)

// fakeGateway serves a maze.Layout in-process. It rotates capability tokens
// on every start/move response and fails any call presenting a stale one, so
// the engines' token discipline is verified on every test.
type fakeGateway struct {
	t      *testing.T
	layout *maze.Layout

	position domain.Coordinate
	sequence int

	moveEndpoint     string
	discoverEndpoint string

	// Moves records every confirmed move in order.
	Moves []domain.Coordinate

	// Scripted failures: return an error for the nth call (1-based), or for
	// a specific position/target. Nil hooks never fail.
	FailDiscoverAt func(position domain.Coordinate, call int) error
	FailMoveAt     func(target domain.Coordinate, call int) error

	discoverCalls int
	moveCalls     int
}

func newFakeGateway(t *testing.T, rows []string) *fakeGateway {
	t.Helper()
	layout, err := maze.Parse("test", "", rows)
	if err != nil {
		t.Fatalf("bad test layout: %v", err)
	}
	return &fakeGateway{t: t, layout: layout}
}

func (g *fakeGateway) rotate() *domain.Update {
	g.sequence++
	g.moveEndpoint = fmt.Sprintf("/move?token=%d", g.sequence)
	g.discoverEndpoint = fmt.Sprintf("/discover?token=%d", g.sequence)

	cell := g.layout.CellAt(g.position)
	return &domain.Update{
		Position:         g.position,
		Dead:             cell.Kind == domain.KindTrap,
		Win:              cell.Kind == domain.KindStop,
		MoveEndpoint:     g.moveEndpoint,
		DiscoverEndpoint: g.discoverEndpoint,
	}
}

func (g *fakeGateway) Start(ctx context.Context, player string) (*domain.Update, error) {
	g.position = domain.Coordinate{}
	return g.rotate(), nil
}

func (g *fakeGateway) Discover(ctx context.Context, endpoint string) ([]domain.Cell, error) {
	g.discoverCalls++
	if endpoint != g.discoverEndpoint {
		g.t.Errorf("stale discover token: got %q, want %q", endpoint, g.discoverEndpoint)
	}
	if g.FailDiscoverAt != nil {
		if err := g.FailDiscoverAt(g.position, g.discoverCalls); err != nil {
			return nil, err
		}
	}
	return g.layout.Neighbors(g.position), nil
}

func (g *fakeGateway) Move(ctx context.Context, endpoint string, target domain.Coordinate) (*domain.Update, error) {
	g.moveCalls++
	if endpoint != g.moveEndpoint {
		g.t.Errorf("stale move token: got %q, want %q", endpoint, g.moveEndpoint)
	}
	if g.FailMoveAt != nil {
		if err := g.FailMoveAt(target, g.moveCalls); err != nil {
			return nil, err
		}
	}
	if !g.layout.CanMove(g.position, target) {
		return nil, domain.ErrIllegalMove
	}
	g.position = target
	g.Moves = append(g.Moves, target)
	return g.rotate(), nil
}

package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventDiscover  EventType = "discover"
	EventMove      EventType = "move"
	EventBacktrack EventType = "backtrack"
	EventExitFound EventType = "exit_found"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// DiscoverEvent reports a successful neighbor discovery.
type DiscoverEvent struct {
	EventBase
	Position Coordinate `json:"position"`
	Cells    []Cell     `json:"cells"`
}

// MoveEvent reports a confirmed move, forward or backtracking.
type MoveEvent struct {
	EventBase
	From Coordinate `json:"from"`
	To   Coordinate `json:"to"`
}

// ExitEvent reports a discovered exit path.
type ExitEvent struct {
	EventBase
	Exit Coordinate `json:"exit"`
	Path Path       `json:"path"`
}

// LifecycleHooks defines callbacks for explorer observability.
type LifecycleHooks struct {
	OnDiscover  func(context.Context, *DiscoverEvent)
	OnMove      func(context.Context, *MoveEvent)
	OnBacktrack func(context.Context, *MoveEvent)
	OnExitFound func(context.Context, *ExitEvent)
}

package domain

// Mode selects the exploration strategy for a session. Exactly one explorer
// is ever active per session; the two strategies are never armed together.
type Mode string

const (
	// ModeExhaustive performs the backtracking depth-first search and
	// enumerates every safe route to an exit.
	ModeExhaustive Mode = "exhaustive"
	// ModeGreedy advances one unexplored safe neighbor at a time and finds
	// at most one route. No backtracking.
	ModeGreedy Mode = "greedy"
)

// NavigationStatus is the state of the path replay machine.
type NavigationStatus string

const (
	NavIdle      NavigationStatus = "idle"
	NavWalking   NavigationStatus = "walking"
	NavSucceeded NavigationStatus = "succeeded"
	NavAborted   NavigationStatus = "aborted"
)

// Game is the authority-side record of a running session. Position is
// relative to the layout's entry cell.
type Game struct {
	ID       string     `json:"id"`
	Player   string     `json:"player"`
	Layout   string     `json:"layout"`
	Position Coordinate `json:"position"`
	Token    string     `json:"token"`
	Dead     bool       `json:"dead"`
	Win      bool       `json:"win"`
}

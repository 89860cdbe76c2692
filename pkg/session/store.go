package session

import (
	"sync"

	"github.com/aretw0/ariadne/pkg/domain"
)

// Store holds the canonical mutable state of one session: the confirmed
// position, the discovered map, the visited set, the capability tokens, the
// append-only log and the exit paths found.
//
// The Store is pure state transition logic. It performs no network I/O, which
// keeps it independently testable; explorers and the navigator feed it with
// authority responses.
type Store struct {
	mu sync.RWMutex

	position domain.Coordinate
	cells    map[string]domain.Cell
	visited  map[string]bool
	log      []string
	results  []domain.Path

	moveEndpoint     string
	discoverEndpoint string

	started   bool
	dead      bool
	win       bool
	finished  bool
	exploring bool
}

// New creates an empty session store positioned at the entry cell.
func New() *Store {
	s := &Store{}
	s.reset()
	return s
}

// reset clears all state to initial values. Caller must hold s.mu.
func (s *Store) reset() {
	s.position = domain.Coordinate{}
	s.cells = make(map[string]domain.Cell)
	s.visited = make(map[string]bool)
	s.log = nil
	s.results = nil
	s.moveEndpoint = ""
	s.discoverEndpoint = ""
	s.started = false
	s.dead = false
	s.win = false
	s.finished = false
	s.exploring = false
}

// Reset clears the session back to its initial state: empty map, empty
// visited set, empty results, empty log, position (0,0), all flags false.
// Resetting twice is identical to resetting once.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// ApplyStart resets the session and installs the initial position and
// capability tokens from a successful start response. The session comes up
// armed (exploring=true).
func (s *Store) ApplyStart(u *domain.Update) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	s.position = u.Position
	s.dead = u.Dead
	s.win = u.Win
	s.moveEndpoint = u.MoveEndpoint
	s.discoverEndpoint = u.DiscoverEndpoint
	s.started = true
	s.exploring = true
}

// ApplyMove installs a confirmed move response: position, terminal flags and
// the rotated capability tokens. The new position is added to the visited
// set; the set is never reset here (it is per exploration run, not per move).
func (s *Store) ApplyMove(u *domain.Update) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.position = u.Position
	s.dead = u.Dead
	s.win = u.Win
	s.moveEndpoint = u.MoveEndpoint
	s.discoverEndpoint = u.DiscoverEndpoint
	s.visited[u.Position.Key()] = true
}

// RecordDiscovery merges cells into the discovered map. The map grows
// monotonically: insert-or-overwrite by coordinate key, never removal.
func (s *Store) RecordDiscovery(cells []domain.Cell) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range cells {
		s.cells[c.Key()] = c
	}
}

// AppendLog appends a human-readable entry to the session log. The log is
// never truncated within a session.
func (s *Store) AppendLog(entry string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = append(s.log, entry)
}

// SetResults publishes the outcome of a completed exploration run. Results
// stay empty until an exploration finishes; they are rebuilt wholesale, never
// amended.
func (s *Store) SetResults(paths []domain.Path) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = make([]domain.Path, len(paths))
	for i, p := range paths {
		s.results[i] = p.Clone()
	}
}

// ResetVisited clears the visited set at the start of an exploration run.
func (s *Store) ResetVisited() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visited = make(map[string]bool)
}

// Visited reports whether the coordinate was entered during the current run.
func (s *Store) Visited(c domain.Coordinate) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visited[c.Key()]
}

// MarkVisited adds the coordinate to the visited set.
func (s *Store) MarkVisited(c domain.Coordinate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visited[c.Key()] = true
}

// Disarm clears the exploring flag, stopping explorers from initiating
// further steps.
func (s *Store) Disarm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exploring = false
}

// MarkFinished sets the terminal finished flag.
func (s *Store) MarkFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finished = true
}

// Position returns the last position confirmed by the authority.
func (s *Store) Position() domain.Coordinate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.position
}

// Endpoints returns the most recently issued capability tokens.
func (s *Store) Endpoints() (move, discover string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveEndpoint, s.discoverEndpoint
}

// Started reports whether a start response has been applied.
func (s *Store) Started() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

// Exploring reports whether the session is armed for exploration.
func (s *Store) Exploring() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exploring
}

// Dead reports whether the authority declared the agent dead.
func (s *Store) Dead() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dead
}

// Win reports whether the authority declared victory.
func (s *Store) Win() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.win
}

// Results returns a copy of the published exit paths, shortest first.
func (s *Store) Results() []domain.Path {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Path, len(s.results))
	for i, p := range s.results {
		out[i] = p.Clone()
	}
	return out
}

// Snapshot returns a read-only copy of the full session state for rendering.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cells := make(map[string]domain.Cell, len(s.cells))
	for k, v := range s.cells {
		cells[k] = v
	}
	log := make([]string, len(s.log))
	copy(log, s.log)
	results := make([]domain.Path, len(s.results))
	for i, p := range s.results {
		results[i] = p.Clone()
	}

	return domain.Snapshot{
		Position:  s.position,
		Cells:     cells,
		Log:       log,
		Results:   results,
		Exploring: s.exploring,
		Finished:  s.finished,
		Dead:      s.dead,
		Win:       s.win,
	}
}

package domain

// Update is the authority's response to a start or move request. It is the
// only source of truth for position, death and victory: local state is never
// advanced optimistically.
//
// MoveEndpoint and DiscoverEndpoint are opaque capability tokens. Every
// start/move response rotates them, and only the most recently returned pair
// is valid for the next call.
type Update struct {
	Position         Coordinate `json:"position"`
	Dead             bool       `json:"dead"`
	Win              bool       `json:"win"`
	MoveEndpoint     string     `json:"move_endpoint"`
	DiscoverEndpoint string     `json:"discover_endpoint"`
}

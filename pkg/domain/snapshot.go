package domain

// Snapshot is a read-only view of a session for rendering layers. Maps and
// slices are copies; callers may hold onto them freely.
type Snapshot struct {
	Position  Coordinate      `json:"position"`
	Cells     map[string]Cell `json:"cells"`
	Log       []string        `json:"log"`
	Results   []Path          `json:"results"`
	Exploring bool            `json:"exploring"`
	Finished  bool            `json:"finished"`
	Dead      bool            `json:"dead"`
	Win       bool            `json:"win"`
}

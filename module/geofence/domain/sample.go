package domain

import "time"

type Sample struct {
	Coordinate Coordinate `json:"coordinate"`
	Timestamp  time.Time  `json:"timestamp"`
}

// Transition records a change of occupied zone between two consecutive
// samples. A nil From or To means "outside every zone".
type Transition struct {
	From *Zone
	To   *Zone
	At   Sample
}

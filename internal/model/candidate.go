package model

// Candidate is a single resource slot's outcome for one service, as
// exported by the local stage for consumption by the global stage: whether
// the local solver assigned it, and its precomputed per-slot cost.
type Candidate struct {
	Assigned bool    `json:"assigned"`
	Cost     float64 `json:"cost"`
}

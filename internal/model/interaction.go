package model

// Interaction describes an outgoing interaction one service declares
// towards another: weight is carried as the service graph's edge weight,
// dataTransfer is the cost-relevant quantity consumed by the assignment
// problem.
type Interaction struct {
	Weight       float64 `json:"weight"`
	DataTransfer float64 `json:"dataTransfer"`
}

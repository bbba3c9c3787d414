package composition

import (
	"github.com/google/uuid"

	"github.com/UIBK-DPS-DC/pulse/internal/moea"
)

// Result wraps one evaluated global-composition solution with an
// identifier and the service -> chosen cluster-resource-slot mapping,
// flattened for downstream consumption (the inspection server, the
// composition graph). Supplemented feature mirroring
// assignment.Result — the Java reference has no equivalent wrapper
// (DESIGN.md).
type Result struct {
	ID       uuid.UUID
	Selected map[int][]ClusterResourceIndex
	Cost     float64
	Latency  float64
}

// NewResult builds a Result from an evaluated solution.
func NewResult(solution *moea.Solution, problem *GlobalCompositionProblem) Result {
	selected := make(map[int][]ClusterResourceIndex)
	for k := range problem.services {
		indices := problem.clusterResourceIndices[k]
		for _, x := range solution.Variables[k].SetBits() {
			selected[k] = append(selected[k], indices[x])
		}
	}

	return Result{
		ID:       uuid.New(),
		Selected: selected,
		Cost:     solution.ObjectiveValue(CostObjective),
		Latency:  solution.ObjectiveValue(LatencyObjective),
	}
}

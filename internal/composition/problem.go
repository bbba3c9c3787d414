// Package composition implements the global composition problem:
// across all eligible clusters, which cluster-resource slot each
// service's replicas should land on. Grounded on
// global/composition/PulseCompositionProblem.java.
package composition

import (
	"math/rand"

	"github.com/UIBK-DPS-DC/pulse/internal/model"
	"github.com/UIBK-DPS-DC/pulse/internal/moea"
	"github.com/UIBK-DPS-DC/pulse/internal/state"
)

const (
	CostObjective    = 0
	LatencyObjective = 1
	NumObjectives    = 2
)

// ClusterResourceIndex names one candidate slot for a service: cluster
// u's resource i.
type ClusterResourceIndex struct {
	ClusterIndex  int
	ResourceIndex int
}

// GlobalCompositionProblem selects, for each service, exactly
// Replicas slots among the cluster-resource candidates the local stage
// marked assigned, minimizing total candidate cost (objective 0) and
// total pairwise latency between touched clusters, self-loops included
// (objective 1). One equality constraint per service pins its
// selection count to its replica count.
//
// Like LocalAssignmentProblem, this holds no mutable per-call scratch
// state — Evaluate's touched-cluster tracking lives on the stack.
type GlobalCompositionProblem struct {
	clusters []model.Cluster
	services []model.Service
	latency  *state.GlobalState

	// clusterResourceIndices[k] lists every (cluster, resource) slot the
	// local stage marked assigned for service k.
	clusterResourceIndices [][]ClusterResourceIndex
}

// NewGlobalCompositionProblem precomputes, for every service, the list
// of cluster-resource slots the local stage marked as assigned
// candidates.
func NewGlobalCompositionProblem(s *state.GlobalState) *GlobalCompositionProblem {
	clusters := s.Clusters()
	services := s.Services()

	n := len(services)
	clusterResourceIndices := make([][]ClusterResourceIndex, n)
	for k := 0; k < n; k++ {
		var indices []ClusterResourceIndex
		for u, cluster := range clusters {
			candidates := cluster.Candidates[k]
			for i, candidate := range candidates {
				if candidate.Assigned {
					indices = append(indices, ClusterResourceIndex{ClusterIndex: u, ResourceIndex: i})
				}
			}
		}
		clusterResourceIndices[k] = indices
	}

	return &GlobalCompositionProblem{clusters: clusters, services: services, latency: s, clusterResourceIndices: clusterResourceIndices}
}

// IsComplete reports whether every service has at least one candidate
// slot to choose from.
func (p *GlobalCompositionProblem) IsComplete() bool {
	for _, indices := range p.clusterResourceIndices {
		if len(indices) == 0 {
			return false
		}
	}
	return true
}

func (p *GlobalCompositionProblem) Clusters() []model.Cluster { return p.clusters }
func (p *GlobalCompositionProblem) Services() []model.Service { return p.services }

// ClusterResourceIndices returns the candidate slot list for service k.
func (p *GlobalCompositionProblem) ClusterResourceIndices(k int) []ClusterResourceIndex {
	return p.clusterResourceIndices[k]
}

func (p *GlobalCompositionProblem) NumberOfVariables() int   { return len(p.services) }
func (p *GlobalCompositionProblem) NumberOfObjectives() int  { return NumObjectives }
func (p *GlobalCompositionProblem) NumberOfConstraints() int { return len(p.services) }

func (p *GlobalCompositionProblem) NewSolution() *moea.Solution {
	n := len(p.services)
	solution := moea.NewSolution(n, NumObjectives, n)

	for k := range p.services {
		solution.Variables[k] = moea.NewBinaryVariable("Assignment", len(p.clusterResourceIndices[k]))
	}

	solution.Objectives[CostObjective] = moea.Objective{Name: "Cost", Sense: moea.Minimize}
	solution.Objectives[LatencyObjective] = moea.Objective{Name: "Latency", Sense: moea.Minimize}

	for k, service := range p.services {
		solution.Constraints[k] = moea.Constraint{Name: "Replicas", Target: float64(service.Replicas)}
	}

	return solution
}

// Evaluate sums the cost of every selected candidate slot, records
// each service's selected count as its constraint's observed value,
// and sums pairwise latency over every ordered pair of touched
// clusters, including self-pairs.
func (p *GlobalCompositionProblem) Evaluate(_ *rand.Rand, solution *moea.Solution) {
	touched := make(map[int]bool)
	var touchedOrder []int

	var cost float64
	for k := range p.services {
		indices := p.clusterResourceIndices[k]

		var assigned int
		for _, x := range solution.Variables[k].SetBits() {
			cr := indices[x]
			candidate := p.clusters[cr.ClusterIndex].Candidates[k][cr.ResourceIndex]

			cost += candidate.Cost

			if !touched[cr.ClusterIndex] {
				touched[cr.ClusterIndex] = true
				touchedOrder = append(touchedOrder, cr.ClusterIndex)
			}

			assigned++
		}
		solution.SetConstraintValue(k, float64(assigned))
	}

	var latency float64
	for _, u := range touchedOrder {
		for _, v := range touchedOrder {
			if l, ok := p.latency.ClusterGraph().Latency(p.clusters[u].ClusterName, p.clusters[v].ClusterName); ok {
				latency += l
			}
		}
	}

	solution.SetObjectiveValue(CostObjective, cost)
	solution.SetObjectiveValue(LatencyObjective, latency)
}

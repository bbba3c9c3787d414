// Package assignment implements the local assignment problem: which
// resource slots, within one cluster, each service's replicas should
// occupy. Grounded on local/assignment/PulseAssignmentProblem.java.
package assignment

import (
	"math"
	"math/rand"

	"github.com/UIBK-DPS-DC/pulse/internal/model"
	"github.com/UIBK-DPS-DC/pulse/internal/moea"
	"github.com/UIBK-DPS-DC/pulse/internal/state"
)

const (
	CostObjective     = 0
	FairnessObjective = 1
	NumObjectives     = 2
)

// LocalAssignmentProblem places each service's replicas onto the
// feasible resources of one cluster, minimizing total cost (objective
// 0) while maximizing worst-case per-resource utilization fairness
// (objective 1, an Lp-norm — §9 resolves this as a maximize sense
// despite "norm" sounding like a penalty to minimize).
//
// Unlike the Java reference, LocalAssignmentProblem holds no mutable
// per-evaluation scratch state: Evaluate takes its own *rand.Rand and
// keeps the assignment matrix and per-resource utilization totals on
// the stack, so the same problem value can be evaluated concurrently
// from many goroutines (§5, §9).
type LocalAssignmentProblem struct {
	resources []model.Resource
	services  []model.Service

	p float64 // fairness Lp-norm exponent

	// f[k] lists, in ascending order, the indices into resources that
	// service k's requirements fit within.
	f [][]int
	// c[k][i] is the precomputed cost of assigning service k onto
	// resources[i].
	c [][]float64
}

// NewLocalAssignmentProblem precomputes the feasible-resource sets and
// cost matrix for the given local state and fairness exponent p.
func NewLocalAssignmentProblem(s *state.LocalState, p float64) *LocalAssignmentProblem {
	resources := s.Resources()
	services := s.Services()
	sg := s.ServiceGraph()

	n, m := len(services), len(resources)

	f := make([][]int, n)
	for k, service := range services {
		feasible := make([]int, 0, m)
		for i, resource := range resources {
			if service.Requirements.Leq(resource.Characteristics) {
				feasible = append(feasible, i)
			}
		}
		f[k] = feasible
	}

	c := make([][]float64, n)
	for k, service := range services {
		row := make([]float64, m)
		outEdges := sg.OutgoingEdges(service.ServiceName)
		inEdges := sg.IncomingEdges(service.ServiceName)

		for i, resource := range resources {
			cost := resource.Cost()
			total := cost.Fixed + service.Data*cost.Data
			for _, e := range outEdges {
				total += e.DataTransfer * cost.Out
			}
			for _, e := range inEdges {
				total += e.DataTransfer * cost.In
			}
			row[i] = total
		}
		c[k] = row
	}

	return &LocalAssignmentProblem{resources: resources, services: services, p: p, f: f, c: c}
}

func (p *LocalAssignmentProblem) Resources() []model.Resource { return p.resources }
func (p *LocalAssignmentProblem) Services() []model.Service   { return p.services }

// FeasibleResources returns the precomputed f[k] table.
func (p *LocalAssignmentProblem) FeasibleResources() [][]int { return p.f }

// AssignmentCosts returns the precomputed c[k][i] table.
func (p *LocalAssignmentProblem) AssignmentCosts() [][]float64 { return p.c }

func (p *LocalAssignmentProblem) NumberOfVariables() int   { return len(p.services) }
func (p *LocalAssignmentProblem) NumberOfObjectives() int  { return NumObjectives }
func (p *LocalAssignmentProblem) NumberOfConstraints() int { return 0 }

func (p *LocalAssignmentProblem) NewSolution() *moea.Solution {
	solution := moea.NewSolution(len(p.services), NumObjectives, 0)
	for k := range p.services {
		solution.Variables[k] = moea.NewBinaryVariable("Assignment", len(p.f[k]))
	}
	solution.Objectives[CostObjective] = moea.Objective{Name: "Cost", Sense: moea.Minimize}
	solution.Objectives[FairnessObjective] = moea.Objective{Name: "Fairness", Sense: moea.Maximize}
	return solution
}

func lpNorm(values []float64, p float64) float64 {
	var sum float64
	for _, v := range values {
		sum += math.Pow(v, p)
	}
	return math.Pow(sum, 1.0/p)
}

// Evaluate repairs every variable's cardinality to match its service's
// replica count (capped at how many resources are feasible), then
// computes total cost and Lp-norm fairness over the repaired
// assignment.
func (p *LocalAssignmentProblem) Evaluate(rng *rand.Rand, solution *moea.Solution) {
	n := len(p.services)
	m := len(p.resources)

	assignments := make([][]bool, n)
	for k := 0; k < n; k++ {
		assignments[k] = make([]bool, m)

		variable := solution.Variables[k]
		target := min(p.services[k].Replicas, len(p.f[k]))
		adjustCardinality(rng, variable, target)

		for _, x := range variable.SetBits() {
			assignments[k][p.f[k][x]] = true
		}
	}

	var cost float64
	for k := 0; k < n; k++ {
		for i := 0; i < m; i++ {
			if assignments[k][i] {
				cost += p.c[k][i]
			}
		}
	}
	solution.SetObjectiveValue(CostObjective, cost)

	resourceMaxUtilization := make([]float64, m)
	for i, resource := range p.resources {
		var total *model.Characteristics
		for k := 0; k < n; k++ {
			if !assignments[k][i] {
				continue
			}
			utilization := p.services[k].Requirements.Div(resource.Characteristics)
			if total == nil {
				u := utilization
				total = &u
			} else {
				added := total.Add(utilization)
				total = &added
			}
		}
		if total == nil {
			resourceMaxUtilization[i] = 0.0
		} else {
			resourceMaxUtilization[i] = total.Max()
		}
	}
	solution.SetObjectiveValue(FairnessObjective, lpNorm(resourceMaxUtilization, p.p))
}

// adjustCardinality flips the fewest possible bits of variable so its
// cardinality equals target, choosing which bits to flip uniformly at
// random via rng rather than a shared engine-wide PRNG (§9).
func adjustCardinality(rng *rand.Rand, variable *moea.BinaryVariable, target int) {
	current := variable.Cardinality()
	if current == target {
		return
	}

	var setBits, clearBits []int
	for i := 0; i < variable.NumberOfBits(); i++ {
		if variable.Get(i) {
			setBits = append(setBits, i)
		} else {
			clearBits = append(clearBits, i)
		}
	}

	if current > target {
		rng.Shuffle(len(setBits), func(i, j int) { setBits[i], setBits[j] = setBits[j], setBits[i] })
		for i := 0; i < current-target; i++ {
			variable.Set(setBits[i], false)
		}
	} else {
		rng.Shuffle(len(clearBits), func(i, j int) { clearBits[i], clearBits[j] = clearBits[j], clearBits[i] })
		for i := 0; i < target-current; i++ {
			variable.Set(clearBits[i], true)
		}
	}
}

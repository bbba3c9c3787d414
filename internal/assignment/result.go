package assignment

import (
	"github.com/google/uuid"

	"github.com/UIBK-DPS-DC/pulse/internal/model"
	"github.com/UIBK-DPS-DC/pulse/internal/moea"
)

// Result wraps one evaluated local-assignment solution with an
// identifier, so it can be tracked across the selection stage and the
// global composition problem it feeds into. The Java reference has no
// such wrapper (it passes Solution and PulseAssignmentProblem around
// together); giving each result a uuid.UUID is a supplemented feature
// useful once results start flowing between goroutines and across the
// optional inspection server (DESIGN.md).
type Result struct {
	ID         uuid.UUID
	Candidates [][]model.Candidate
	Cost       float64
	Fairness   float64
}

// CandidatesFromSolution converts an evaluated solution into the
// per-service candidate lists the global composition problem consumes:
// one row per service, one Candidate per resource, assigned exactly
// where the solution's repaired bitset says so. Grounded on
// utils/common/Utils.solutionToCandidates.
func CandidatesFromSolution(solution *moea.Solution, problem *LocalAssignmentProblem) [][]model.Candidate {
	n := len(problem.services)
	m := len(problem.resources)

	candidates := make([][]model.Candidate, n)
	for k := 0; k < n; k++ {
		f := problem.f[k]
		assigned := make(map[int]bool, len(f))
		for _, x := range solution.Variables[k].SetBits() {
			assigned[f[x]] = true
		}

		row := make([]model.Candidate, m)
		for i := 0; i < m; i++ {
			row[i] = model.Candidate{Assigned: assigned[i], Cost: problem.c[k][i]}
		}
		candidates[k] = row
	}

	return candidates
}

// NewResult builds a Result from an evaluated solution, assigning it a
// fresh identifier.
func NewResult(solution *moea.Solution, problem *LocalAssignmentProblem) Result {
	return Result{
		ID:         uuid.New(),
		Candidates: CandidatesFromSolution(solution, problem),
		Cost:       solution.ObjectiveValue(CostObjective),
		Fairness:   solution.ObjectiveValue(FairnessObjective),
	}
}

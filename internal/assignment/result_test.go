package assignment

import (
	"math/rand"
	"testing"
)

func TestCandidatesFromSolutionMarksAssignedSlots(t *testing.T) {
	problem := NewLocalAssignmentProblem(twoResourceFixture(), 2)
	rng := rand.New(rand.NewSource(5))

	solution := problem.NewSolution()
	solution.Variables[0].Set(0, true)
	problem.Evaluate(rng, solution)

	candidates := CandidatesFromSolution(solution, problem)
	if len(candidates) != 2 {
		t.Fatalf("expected one candidate row per service, got %d", len(candidates))
	}
	if len(candidates[0]) != 2 {
		t.Fatalf("expected one candidate per resource, got %d", len(candidates[0]))
	}

	assignedCount := 0
	for _, c := range candidates[0] {
		if c.Assigned {
			assignedCount++
		}
	}
	if assignedCount != solution.Variables[0].Cardinality() {
		t.Fatalf("assigned candidate count %d does not match repaired cardinality %d", assignedCount, solution.Variables[0].Cardinality())
	}

	for i, c := range candidates[0] {
		if c.Cost != problem.AssignmentCosts()[0][i] {
			t.Fatalf("candidate cost at resource %d = %f, want %f", i, c.Cost, problem.AssignmentCosts()[0][i])
		}
	}
}

func TestNewResultAssignsAUniqueID(t *testing.T) {
	problem := NewLocalAssignmentProblem(twoResourceFixture(), 2)
	rng := rand.New(rand.NewSource(5))

	s1 := problem.NewSolution()
	problem.Evaluate(rng, s1)
	s2 := problem.NewSolution()
	problem.Evaluate(rng, s2)

	r1 := NewResult(s1, problem)
	r2 := NewResult(s2, problem)

	if r1.ID == r2.ID {
		t.Fatal("expected distinct results to get distinct ids")
	}
	if r1.Cost != s1.ObjectiveValue(CostObjective) || r1.Fairness != s1.ObjectiveValue(FairnessObjective) {
		t.Fatal("Result did not carry over the solution's objective values")
	}
}

package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/UIBK-DPS-DC/pulse/internal/moea"
)

func solutionWithObjectives(cost, fairness float64, feasible bool) *moea.Solution {
	target := 0.0
	if feasible {
		target = 1.0
	}
	s := moea.NewSolution(0, 2, 1)
	s.SetObjectiveValue(0, cost)
	s.SetObjectiveValue(1, fairness)
	s.Constraints[0] = moea.Constraint{Target: 1, Value: target}
	return s
}

func TestFeasibleFiltersOutConstraintViolations(t *testing.T) {
	pop := []*moea.Solution{
		solutionWithObjectives(1, 1, true),
		solutionWithObjectives(2, 2, false),
		solutionWithObjectives(3, 3, true),
	}

	got := feasible(pop)
	if len(got) != 2 {
		t.Fatalf("expected 2 feasible solutions, got %d", len(got))
	}
}

func TestKneenessIsZeroOnTheChordEndpoints(t *testing.T) {
	p0 := solutionWithObjectives(0, 0, true)
	p1 := solutionWithObjectives(10, 10, true)

	assert.InDelta(t, 0.0, Kneeness(p0, p1, p0), 1e-9)
	assert.InDelta(t, 0.0, Kneeness(p0, p1, p1), 1e-9)
}

func TestKneenessDegenerateLineIsZero(t *testing.T) {
	p0 := solutionWithObjectives(5, 5, true)
	p1 := solutionWithObjectives(5, 5, true)
	mid := solutionWithObjectives(3, 9, true)

	assert.InDelta(t, 0.0, Kneeness(p0, p1, mid), 1e-9)
}

func TestKneenessSelectorPicksTheFurthestBow(t *testing.T) {
	pop := []*moea.Solution{
		solutionWithObjectives(0, 10, true),
		solutionWithObjectives(3, 9, true),
		solutionWithObjectives(5, 2, true), // furthest from the chord
		solutionWithObjectives(8, 1, true),
		solutionWithObjectives(10, 0, true),
	}

	selector := NewKneenessSelector()
	chosen, ok := selector.Select(pop)
	if !ok {
		t.Fatal("expected a selection")
	}
	if chosen.ObjectiveValue(0) != 5 {
		t.Fatalf("expected the interior knee point (cost=5), got cost=%f", chosen.ObjectiveValue(0))
	}
}

func TestKneenessSelectorShortPopulationReturnsFirst(t *testing.T) {
	pop := []*moea.Solution{solutionWithObjectives(1, 1, true), solutionWithObjectives(2, 2, true)}
	selector := NewKneenessSelector()

	chosen, ok := selector.Select(pop)
	if !ok || chosen != pop[0] {
		t.Fatal("expected a population smaller than 3 to return its first element")
	}
}

func TestKneenessSelectorNoFeasibleSolutions(t *testing.T) {
	pop := []*moea.Solution{solutionWithObjectives(1, 1, false)}
	selector := NewKneenessSelector()

	if _, ok := selector.Select(pop); ok {
		t.Fatal("expected no selection from an all-infeasible population")
	}
}

func TestPreferenceSelectorExtremesAndMedian(t *testing.T) {
	pop := []*moea.Solution{
		solutionWithObjectives(3, 0, true),
		solutionWithObjectives(1, 0, true),
		solutionWithObjectives(2, 0, true),
	}

	best := NewPreferenceSelector(0.0)
	chosen, ok := best.Select(pop)
	if !ok || chosen.ObjectiveValue(0) != 1 {
		t.Fatalf("preference 0 should pick the lowest-cost solution, got %v", chosen)
	}

	worst := NewPreferenceSelector(1.0)
	chosen, ok = worst.Select(pop)
	if !ok || chosen.ObjectiveValue(0) != 3 {
		t.Fatalf("preference 1 should pick the highest-cost solution, got %v", chosen)
	}

	median := NewPreferenceSelector(0.5)
	chosen, ok = median.Select(pop)
	if !ok || chosen.ObjectiveValue(0) != 2 {
		t.Fatalf("preference 0.5 should pick the median solution, got %v", chosen)
	}
}

func TestPreferenceSelectorSingleElement(t *testing.T) {
	pop := []*moea.Solution{solutionWithObjectives(5, 0, true)}
	selector := NewPreferenceSelector(0.9)

	chosen, ok := selector.Select(pop)
	if !ok || chosen != pop[0] {
		t.Fatal("expected the single feasible element back regardless of preference")
	}
}

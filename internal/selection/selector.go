// Package selection picks one solution out of a non-dominated
// population returned by the external evolutionary engine. Grounded on
// local/selection/Selector.java and its two implementations.
package selection

import "github.com/UIBK-DPS-DC/pulse/internal/moea"

// Selector picks a single solution from a population according to some
// strategy.
type Selector interface {
	// Select returns the chosen solution, or false if the population
	// (after filtering to feasible solutions) is empty.
	Select(population []*moea.Solution) (*moea.Solution, bool)
}

// feasible filters population down to solutions satisfying every
// constraint, in place order.
func feasible(population []*moea.Solution) []*moea.Solution {
	out := make([]*moea.Solution, 0, len(population))
	for _, s := range population {
		if s.Feasible() {
			out = append(out, s)
		}
	}
	return out
}

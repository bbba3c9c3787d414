package assignment

import (
	"math/rand"

	"github.com/UIBK-DPS-DC/pulse/internal/moea"
)

// ReplicaAwareInitialization seeds each solution by, for every service,
// sampling its replica count's worth of feasible-resource indices with
// replacement and setting those bits. Cardinality is later repaired by
// Evaluate's adjustCardinality, so duplicate draws are harmless — they
// just leave that service under-subscribed until repair tops it up.
// Grounded on local/assignment/ReplicaAwareInitialization.java.
type ReplicaAwareInitialization struct {
	problem *LocalAssignmentProblem
}

func NewReplicaAwareInitialization(problem *LocalAssignmentProblem) *ReplicaAwareInitialization {
	return &ReplicaAwareInitialization{problem: problem}
}

func (init *ReplicaAwareInitialization) Initialize(rng *rand.Rand, populationSize int) []*moea.Solution {
	population := make([]*moea.Solution, populationSize)

	for p := 0; p < populationSize; p++ {
		solution := init.problem.NewSolution()
		for _, v := range solution.Variables {
			v.Clear()
		}

		for k, service := range init.problem.services {
			feasible := init.problem.f[k]
			if len(feasible) == 0 {
				continue
			}
			for r := 0; r < service.Replicas; r++ {
				i := rng.Intn(len(feasible))
				solution.Variables[k].Set(i, true)
			}
		}

		population[p] = solution
	}

	return population
}

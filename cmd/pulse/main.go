// cmd/pulse wires the data model, connector, local assignment problem
// and selectors together into a runnable demo: load a cluster's
// resources and a service list, seed and evaluate a population for the
// local assignment problem, pick one solution with a selector, and
// serve the resulting assignment graph over the gui's inspection
// endpoint. A real deployment supplies the evolutionary engine itself
// (§6); this main only exercises the pieces Pulse owns.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/UIBK-DPS-DC/pulse/internal/assignment"
	"github.com/UIBK-DPS-DC/pulse/internal/config"
	"github.com/UIBK-DPS-DC/pulse/internal/connector"
	"github.com/UIBK-DPS-DC/pulse/internal/gui"
	"github.com/UIBK-DPS-DC/pulse/internal/model"
	"github.com/UIBK-DPS-DC/pulse/internal/moea"
	"github.com/UIBK-DPS-DC/pulse/internal/selection"
	"github.com/UIBK-DPS-DC/pulse/internal/state"
	"github.com/UIBK-DPS-DC/pulse/logging"
)

var log = logging.Get()

func main() {
	configFilePath := flag.String("config_file", "", "Path to config file")
	flag.Parse()

	fmt.Println(*configFilePath)

	yamlFile, err := os.ReadFile(*configFilePath)
	if err != nil {
		log.Err(err).Msg("could not load config")
		os.Exit(1)
	}

	if err := yaml.UnmarshalStrict(yamlFile, &config.PulseGeneralConfig); err != nil {
		log.Err(err).Msg("could not load config")
		os.Exit(1)
	}

	c, err := buildConnector(config.PulseGeneralConfig.ConnectorKind)
	if err != nil {
		log.Err(err).Msg("could not init the connector")
		os.Exit(1)
	}

	resources, err := c.LoadResources(context.Background())
	if err != nil {
		log.Err(err).Msg("could not load resources")
		os.Exit(1)
	}

	services, err := loadServices(config.PulseGeneralConfig.ServicesFile)
	if err != nil {
		log.Err(err).Msg("could not load services")
		os.Exit(1)
	}

	localState := state.NewLocalState(resources, services)
	problem := assignment.NewLocalAssignmentProblem(localState, config.PulseGeneralConfig.FairnessExponent)

	result, err := runLocalAssignment(problem)
	if err != nil {
		log.Err(err).Msg("local assignment produced no feasible solution")
		os.Exit(1)
	}

	log.Info().Msgf("selected assignment: cost=%f fairness=%f", result.Cost, result.Fairness)

	snapshotRequestStream := make(chan struct{})
	snapshotStream := make(chan gui.Snapshot)

	go serveSnapshots(problem, result, snapshotRequestStream, snapshotStream)

	gui.SetUp(gui.Bridge{
		SnapshotRequestStream: snapshotRequestStream,
		SnapshotStream:        snapshotStream,
	})
	gui.Run()
}

func buildConnector(kind string) (connector.Connector, error) {
	switch kind {
	case "const":
		return connector.NewConstantConnector(), nil
	case "kubernetes":
		return connector.NewKubeConnector()
	default:
		return nil, fmt.Errorf("connector kind %q is not recognized", kind)
	}
}

func loadServices(path string) ([]model.Service, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read services file: %w", err)
	}

	var services []model.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, fmt.Errorf("could not parse services file: %w", err)
	}

	return services, nil
}

// runLocalAssignment stands in for the external evolutionary engine:
// it seeds a population with ReplicaAwareInitialization, evaluates it
// once, keeps the non-dominated front, and hands it to a
// PreferenceSelector. A real deployment drives this loop across many
// generations with a proper NSGA-II-style engine (§6).
func runLocalAssignment(problem *assignment.LocalAssignmentProblem) (assignment.Result, error) {
	rng := rand.New(rand.NewSource(1))

	init := assignment.NewReplicaAwareInitialization(problem)
	population := init.Initialize(rng, config.PulseGeneralConfig.PopulationSize)

	for _, solution := range population {
		problem.Evaluate(rng, solution)
	}

	front := nonDominatedFront(population)

	selector := selection.NewPreferenceSelector(config.PulseGeneralConfig.SelectorPreference)
	chosen, ok := selector.Select(front)
	if !ok {
		return assignment.Result{}, fmt.Errorf("no feasible solution in population")
	}

	return assignment.NewResult(chosen, problem), nil
}

// nonDominatedFront keeps every solution not dominated by another:
// cost minimized, fairness maximized.
func nonDominatedFront(population []*moea.Solution) []*moea.Solution {
	var front []*moea.Solution
	for _, candidate := range population {
		dominated := false
		for _, other := range population {
			if other == candidate {
				continue
			}
			if dominates(other, candidate) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, candidate)
		}
	}
	return front
}

func dominates(a, b *moea.Solution) bool {
	aCost, bCost := a.ObjectiveValue(assignment.CostObjective), b.ObjectiveValue(assignment.CostObjective)
	aFair, bFair := a.ObjectiveValue(assignment.FairnessObjective), b.ObjectiveValue(assignment.FairnessObjective)

	betterOrEqual := aCost <= bCost && aFair >= bFair
	strictlyBetter := aCost < bCost || aFair > bFair

	return betterOrEqual && strictlyBetter
}

func serveSnapshots(problem *assignment.LocalAssignmentProblem, result assignment.Result, requests <-chan struct{}, snapshots chan<- gui.Snapshot) {
	graphMLBytes, err := assignment.BuildGraph(problem, result.Candidates, result.Cost, result.Fairness).ToGraphML()
	if err != nil {
		log.Err(err).Msg("could not render assignment graphml")
	}
	csvText, err := assignment.BuildGraph(problem, result.Candidates, result.Cost, result.Fairness).ToCSV()
	if err != nil {
		log.Err(err).Msg("could not render assignment csv")
	}

	snapshot := gui.Snapshot{
		AssignmentGraphML: string(graphMLBytes),
		AssignmentCSV:     csvText,
	}

	for range requests {
		snapshots <- snapshot
	}
}

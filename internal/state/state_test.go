package state

import (
	"testing"

	"github.com/UIBK-DPS-DC/pulse/internal/model"
)

func TestNewLocalStateBuildsServiceGraph(t *testing.T) {
	services := []model.Service{
		{ServiceName: "A", Interactions: map[string]model.Interaction{"B": {Weight: 1, DataTransfer: 3}}},
		{ServiceName: "B"},
	}
	resources := []model.Resource{{ResourceName: "r0"}}

	s := NewLocalState(resources, services)

	if len(s.Resources()) != 1 || len(s.Services()) != 2 {
		t.Fatalf("unexpected local state shape: %v", s)
	}
	if dt, ok := s.ServiceGraph().DataTransfer("A", "B"); !ok || dt != 3 {
		t.Fatalf("expected the service graph to carry A->B, got %v, %v", dt, ok)
	}
}

func TestNewGlobalStateRejectsMismatchedCandidateRows(t *testing.T) {
	services := []model.Service{{ServiceName: "A"}, {ServiceName: "B"}}
	clusters := []model.Cluster{
		{
			ClusterName: "c0",
			Resources:   []model.Resource{{ResourceName: "r0"}},
			Candidates:  [][]model.Candidate{{{Assigned: true}}},
		},
	}

	if _, err := NewGlobalState(clusters, services, nil); err == nil {
		t.Fatal("expected an error: one candidate row for two services")
	}
}

func TestNewGlobalStateRejectsWrongPerServiceWidth(t *testing.T) {
	services := []model.Service{{ServiceName: "A"}}
	clusters := []model.Cluster{
		{
			ClusterName: "c0",
			Resources:   []model.Resource{{ResourceName: "r0"}, {ResourceName: "r1"}},
			Candidates:  [][]model.Candidate{{{Assigned: true}}},
		},
	}

	if _, err := NewGlobalState(clusters, services, nil); err == nil {
		t.Fatal("expected an error: candidate row width must match resource count")
	}
}

func TestNewLocalStateDedupsResourcesAndServicesByName(t *testing.T) {
	resources := []model.Resource{
		{ResourceName: "r0", Characteristics: model.NewCharacteristics(1, 1, 1, 0)},
		{ResourceName: "r0", Characteristics: model.NewCharacteristics(9, 9, 9, 9)},
		{ResourceName: "r1"},
	}
	services := []model.Service{
		{ServiceName: "A", Replicas: 1},
		{ServiceName: "A", Replicas: 99},
		{ServiceName: "B"},
	}

	s := NewLocalState(resources, services)

	if len(s.Resources()) != 2 || len(s.Services()) != 2 {
		t.Fatalf("expected duplicates dropped, got %d resources, %d services", len(s.Resources()), len(s.Services()))
	}
	if s.Resources()[0].Characteristics.Cpu() != 1 {
		t.Fatal("expected first-write-wins: r0 should keep its first Characteristics")
	}
	if s.Services()[0].Replicas != 1 {
		t.Fatal("expected first-write-wins: A should keep its first Replicas")
	}
}

func TestNewGlobalStateDedupsClustersAndServicesByName(t *testing.T) {
	services := []model.Service{{ServiceName: "A"}, {ServiceName: "A"}}
	clusters := []model.Cluster{
		{
			ClusterName: "c0",
			Resources:   []model.Resource{{ResourceName: "r0"}},
			Candidates:  [][]model.Candidate{{{Assigned: true}}},
		},
		{
			ClusterName: "c0",
			Resources:   []model.Resource{{ResourceName: "r0"}},
			Candidates:  [][]model.Candidate{{{Assigned: true}}, {{Assigned: true}}},
		},
	}

	s, err := NewGlobalState(clusters, services, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Clusters()) != 1 || len(s.Services()) != 1 {
		t.Fatalf("expected duplicates dropped, got %d clusters, %d services", len(s.Clusters()), len(s.Services()))
	}
	if len(s.Clusters()[0].Candidates) != 1 {
		t.Fatal("expected first-write-wins: c0 should keep its first Candidates")
	}
}

func TestNewGlobalStateRejectsUnknownLatencyCluster(t *testing.T) {
	services := []model.Service{{ServiceName: "A"}}
	clusters := []model.Cluster{
		{ClusterName: "c0", Resources: []model.Resource{{ResourceName: "r0"}}, Candidates: [][]model.Candidate{{{Assigned: true}}}},
	}

	t.Run("unknown row", func(t *testing.T) {
		latency := map[string]map[string]float64{"ghost": {"c0": 1}}
		if _, err := NewGlobalState(clusters, services, latency); err == nil {
			t.Fatal("expected an error: latency row names an unknown cluster")
		}
	})

	t.Run("unknown column", func(t *testing.T) {
		latency := map[string]map[string]float64{"c0": {"ghost": 1}}
		if _, err := NewGlobalState(clusters, services, latency); err == nil {
			t.Fatal("expected an error: latency column names an unknown cluster")
		}
	})
}

func TestNewGlobalStateBuildsClusterGraph(t *testing.T) {
	services := []model.Service{{ServiceName: "A"}}
	clusters := []model.Cluster{
		{ClusterName: "c0", Resources: []model.Resource{{ResourceName: "r0"}}, Candidates: [][]model.Candidate{{{Assigned: true}}}},
		{ClusterName: "c1", Resources: []model.Resource{{ResourceName: "r0"}}, Candidates: [][]model.Candidate{{{Assigned: false}}}},
	}
	latency := map[string]map[string]float64{"c0": {"c1": 5}}

	s, err := NewGlobalState(clusters, services, latency)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := s.ClusterGraph().Latency("c0", "c1"); !ok || v != 5 {
		t.Fatalf("expected c0->c1 latency 5, got %v, %v", v, ok)
	}
}

package state

import (
	"fmt"

	"github.com/UIBK-DPS-DC/pulse/internal/graph"
	"github.com/UIBK-DPS-DC/pulse/internal/model"
	"github.com/UIBK-DPS-DC/pulse/internal/utils"
)

// GlobalState is the input to the global composition problem: the
// clusters eligible to host services, the services to place across
// them, the pairwise latency table between clusters, and the cluster
// graph built from that table.
type GlobalState struct {
	clusters     []model.Cluster
	services     []model.Service
	latency      map[string]map[string]float64
	clusterGraph *graph.ClusterGraph
}

// NewGlobalState validates and builds a global state. clusters and
// services are de-duplicated by name first-write-wins, preserving
// insertion order, the same way the Java reference folds its
// constructor arguments into a LinkedHashMap keyed by name (§3). It
// then requires every cluster's per-service candidate list to have
// exactly one entry per service (so the candidate list is addressable
// by service index) and every latency row/column key to name a known
// cluster, failing fast otherwise, mirroring the Java reference's
// constructor assertions (§3, §7).
func NewGlobalState(clusters []model.Cluster, services []model.Service, latency map[string]map[string]float64) (*GlobalState, error) {
	clusters = utils.DedupByName(clusters, func(c model.Cluster) string { return c.ClusterName })
	services = utils.DedupByName(services, func(s model.Service) string { return s.ServiceName })

	for _, c := range clusters {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if len(c.Candidates) != len(services) {
			return nil, fmt.Errorf("cluster %q: has %d candidate rows, want %d (one per service)", c.ClusterName, len(c.Candidates), len(services))
		}
	}

	known := make(map[string]bool, len(clusters))
	for _, c := range clusters {
		known[c.ClusterName] = true
	}
	for from, row := range latency {
		if !known[from] {
			return nil, fmt.Errorf("latency: row %q does not name a known cluster", from)
		}
		for to := range row {
			if !known[to] {
				return nil, fmt.Errorf("latency: column %q in row %q does not name a known cluster", to, from)
			}
		}
	}

	return &GlobalState{
		clusters:     clusters,
		services:     services,
		latency:      latency,
		clusterGraph: graph.BuildClusterGraph(clusters, latency),
	}, nil
}

func (s *GlobalState) Clusters() []model.Cluster { return s.clusters }
func (s *GlobalState) Services() []model.Service { return s.services }
func (s *GlobalState) Latency() map[string]map[string]float64 { return s.latency }
func (s *GlobalState) ClusterGraph() *graph.ClusterGraph { return s.clusterGraph }

func (s *GlobalState) String() string {
	return fmt.Sprintf("GlobalState{clusters=%d, services=%d}", len(s.clusters), len(s.services))
}

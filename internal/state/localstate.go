// Package state holds LocalState and GlobalState: each owns a model
// snapshot together with the graph built over it. They are split out
// of internal/model to avoid a model<->graph import cycle, since a
// state's graph is built from (and keyed by) the model types it wraps.
package state

import (
	"fmt"

	"github.com/UIBK-DPS-DC/pulse/internal/graph"
	"github.com/UIBK-DPS-DC/pulse/internal/model"
	"github.com/UIBK-DPS-DC/pulse/internal/utils"
)

// LocalState is the input to the local assignment problem: the
// resources of one cluster, the services that must be placed on it,
// and the service interaction graph built from those services.
type LocalState struct {
	resources    []model.Resource
	services     []model.Service
	serviceGraph *graph.ServiceGraph
}

// NewLocalState builds a local state and its service graph.
// resources and services are de-duplicated by name first-write-wins,
// preserving insertion order, the same way the Java reference folds
// its constructor arguments into a LinkedHashMap keyed by name (§3).
func NewLocalState(resources []model.Resource, services []model.Service) *LocalState {
	resources = utils.DedupByName(resources, func(r model.Resource) string { return r.ResourceName })
	services = utils.DedupByName(services, func(s model.Service) string { return s.ServiceName })

	return &LocalState{
		resources:    resources,
		services:     services,
		serviceGraph: graph.BuildServiceGraph(services),
	}
}

func (s *LocalState) Resources() []model.Resource { return s.resources }
func (s *LocalState) Services() []model.Service    { return s.services }
func (s *LocalState) ServiceGraph() *graph.ServiceGraph { return s.serviceGraph }

func (s *LocalState) String() string {
	return fmt.Sprintf("LocalState{resources=%d, services=%d}", len(s.resources), len(s.services))
}

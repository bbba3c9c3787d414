// Package graph holds the directed graphs Pulse builds over its data
// model: a service interaction graph per local state and a cluster
// latency graph per global state. The two result graphs (assignment,
// composition) live in internal/assignment and internal/composition.
// None of jgrapht's Go equivalents turned up anywhere in the retrieval
// pack, so these are hand-rolled adjacency structures; GraphML export
// goes through internal/graphml, a thin wrapper over encoding/xml, for
// the same reason (§9, DESIGN.md).
package graph

import (
	"github.com/UIBK-DPS-DC/pulse/internal/graphml"
	"github.com/UIBK-DPS-DC/pulse/internal/model"
)

// ServiceEdge is one service's declared interaction with another.
type ServiceEdge struct {
	From         string
	To           string
	Weight       float64
	DataTransfer float64
}

// ServiceGraph is the directed weighted multigraph of a local state's
// services and their interactions. It is built once, from the services
// a LocalState owns, and never mutated afterwards.
type ServiceGraph struct {
	services map[string]model.Service
	out      map[string][]ServiceEdge
	in       map[string][]ServiceEdge
}

// BuildServiceGraph adds every service as a vertex, then an edge for
// each declared interaction whose target also exists among services.
// An interaction naming a service outside this set is silently
// dropped, not an error (§4.2).
func BuildServiceGraph(services []model.Service) *ServiceGraph {
	g := &ServiceGraph{
		services: make(map[string]model.Service, len(services)),
		out:      make(map[string][]ServiceEdge),
		in:       make(map[string][]ServiceEdge),
	}

	for _, s := range services {
		g.services[s.ServiceName] = s
	}

	for _, from := range services {
		for target, interaction := range from.Interactions {
			if _, ok := g.services[target]; !ok {
				continue
			}
			e := ServiceEdge{From: from.ServiceName, To: target, Weight: interaction.Weight, DataTransfer: interaction.DataTransfer}
			g.out[from.ServiceName] = append(g.out[from.ServiceName], e)
			g.in[target] = append(g.in[target], e)
		}
	}

	return g
}

// DataTransfer returns the data transfer of the edge from -> to, if one
// exists.
func (g *ServiceGraph) DataTransfer(from, to string) (float64, bool) {
	for _, e := range g.out[from] {
		if e.To == to {
			return e.DataTransfer, true
		}
	}
	return 0, false
}

// OutgoingEdges returns every edge leaving the named service.
func (g *ServiceGraph) OutgoingEdges(service string) []ServiceEdge {
	return g.out[service]
}

// IncomingEdges returns every edge entering the named service.
func (g *ServiceGraph) IncomingEdges(service string) []ServiceEdge {
	return g.in[service]
}

// ToGraphML renders the service graph as GraphML.
func (g *ServiceGraph) ToGraphML() ([]byte, error) {
	doc := graphml.NewDocument(true)
	doc.RegisterAttribute("label", graphml.NodeDomain, "string")
	doc.RegisterAttribute("weight", graphml.EdgeDomain, "double")
	doc.RegisterAttribute("dataTransfer", graphml.EdgeDomain, "double")

	for name := range g.services {
		doc.AddNode(name, map[string]string{"label": name})
	}
	id := 0
	for from, edges := range g.out {
		for _, e := range edges {
			doc.AddEdge(graphml.EdgeID(id), from, e.To, map[string]string{
				"weight":       graphml.FormatFloat(e.Weight),
				"dataTransfer": graphml.FormatFloat(e.DataTransfer),
			})
			id++
		}
	}

	return doc.Marshal()
}

package graph

import (
	"github.com/UIBK-DPS-DC/pulse/internal/graphml"
	"github.com/UIBK-DPS-DC/pulse/internal/model"
)

// LatencyEdge is the directed latency from one cluster to another.
type LatencyEdge struct {
	From    string
	To      string
	Latency float64
}

// ClusterGraph is the directed weighted pseudograph of a global state's
// clusters, weighted by pairwise latency. Self-loops (From == To) are
// legal: the composition problem's latency objective sums them in
// (§4.6).
type ClusterGraph struct {
	clusters map[string]bool
	latency  map[string]map[string]float64
}

// BuildClusterGraph adds one vertex per cluster, then one edge per
// (row, col) entry of the latency table whose endpoints both name a
// known cluster; entries naming an unknown cluster are dropped.
func BuildClusterGraph(clusters []model.Cluster, latency map[string]map[string]float64) *ClusterGraph {
	g := &ClusterGraph{
		clusters: make(map[string]bool, len(clusters)),
		latency:  make(map[string]map[string]float64),
	}
	for _, c := range clusters {
		g.clusters[c.ClusterName] = true
	}

	for from, row := range latency {
		if !g.clusters[from] {
			continue
		}
		for to, value := range row {
			if !g.clusters[to] {
				continue
			}
			if g.latency[from] == nil {
				g.latency[from] = make(map[string]float64)
			}
			g.latency[from][to] = value
		}
	}

	return g
}

// Latency returns the latency edge from -> to, if one exists.
func (g *ClusterGraph) Latency(from, to string) (float64, bool) {
	row, ok := g.latency[from]
	if !ok {
		return 0, false
	}
	v, ok := row[to]
	return v, ok
}

// ToGraphML renders the cluster graph as GraphML.
func (g *ClusterGraph) ToGraphML() ([]byte, error) {
	doc := graphml.NewDocument(true)
	doc.RegisterAttribute("label", graphml.NodeDomain, "string")
	doc.RegisterAttribute("latency", graphml.EdgeDomain, "double")

	for name := range g.clusters {
		doc.AddNode(name, map[string]string{"label": name})
	}
	id := 0
	for from, row := range g.latency {
		for to, value := range row {
			doc.AddEdge(graphml.EdgeID(id), from, to, map[string]string{"latency": graphml.FormatFloat(value)})
			id++
		}
	}

	return doc.Marshal()
}

package composition

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/UIBK-DPS-DC/pulse/internal/graphml"
	"github.com/UIBK-DPS-DC/pulse/internal/model"
)

// Graph is the service/cluster-resource result graph built from one
// evaluated global-composition solution. Grounded on
// global/graph/CompositionGraph.java.
type Graph struct {
	problem *GlobalCompositionProblem
	edges   []compositionEdge
}

type compositionEdge struct {
	serviceIndex int
	cr           ClusterResourceIndex
}

// BuildGraph builds the composition result graph from an evaluated
// solution's selected cluster-resource slots per service.
func BuildGraph(problem *GlobalCompositionProblem, selected map[int][]ClusterResourceIndex) *Graph {
	g := &Graph{problem: problem}
	for k, crs := range selected {
		for _, cr := range crs {
			g.edges = append(g.edges, compositionEdge{serviceIndex: k, cr: cr})
		}
	}
	return g
}

func clusterResourceVertexID(cr ClusterResourceIndex) string {
	return "cr:" + strconv.Itoa(cr.ClusterIndex) + ":" + strconv.Itoa(cr.ResourceIndex)
}

func serviceVertexID(k int) string { return "service:" + strconv.Itoa(k) }

// ToGraphML renders the composition graph with the same attribute
// schema as the Java exporter (service nodes, cluster-resource nodes).
func (g *Graph) ToGraphML() ([]byte, error) {
	doc := graphml.NewDocument(true)
	doc.RegisterAttribute("type", graphml.NodeDomain, "string")
	doc.RegisterAttribute("label", graphml.NodeDomain, "string")
	doc.RegisterAttribute("cluster", graphml.NodeDomain, "string")
	doc.RegisterAttribute("resource", graphml.NodeDomain, "string")
	doc.RegisterAttribute("cpu", graphml.NodeDomain, "double")
	doc.RegisterAttribute("memory", graphml.NodeDomain, "double")
	doc.RegisterAttribute("disk", graphml.NodeDomain, "double")
	doc.RegisterAttribute("gpu", graphml.NodeDomain, "double")
	doc.RegisterAttribute("cost", graphml.NodeDomain, "double")

	seenCR := make(map[ClusterResourceIndex]bool)
	seenService := make(map[int]bool)

	for _, e := range g.edges {
		if !seenService[e.serviceIndex] {
			seenService[e.serviceIndex] = true
			s := g.problem.services[e.serviceIndex]
			v := s.Requirements.Values()
			doc.AddNode(serviceVertexID(e.serviceIndex), map[string]string{
				"type":   "service",
				"label":  s.ServiceName,
				"cpu":    graphml.FormatFloat(v[0]),
				"memory": graphml.FormatFloat(v[1]),
				"disk":   graphml.FormatFloat(v[2]),
				"gpu":    graphml.FormatFloat(v[3]),
			})
		}
		if !seenCR[e.cr] {
			seenCR[e.cr] = true
			cluster := g.problem.clusters[e.cr.ClusterIndex]
			resource := cluster.Resources[e.cr.ResourceIndex]
			v := resource.Characteristics.Values()
			doc.AddNode(clusterResourceVertexID(e.cr), map[string]string{
				"type":     "cluster-resource",
				"label":    resource.ResourceName,
				"cluster":  cluster.ClusterName,
				"resource": resource.ResourceName,
				"cpu":      graphml.FormatFloat(v[0]),
				"memory":   graphml.FormatFloat(v[1]),
				"disk":     graphml.FormatFloat(v[2]),
				"gpu":      graphml.FormatFloat(v[3]),
				"cost":     graphml.FormatFloat(resource.Cost().Sum()),
			})
		}
	}

	for id, e := range g.edges {
		doc.AddEdge(graphml.EdgeID(id), serviceVertexID(e.serviceIndex), clusterResourceVertexID(e.cr), nil)
	}

	return doc.Marshal()
}

// ToCSV renders a cluster x resource assignment-count matrix.
func (g *Graph) ToCSV() (string, error) {
	counts := make(map[[2]string]int)
	clusters := make(map[string]bool)
	resources := make(map[string]bool)

	for _, e := range g.edges {
		cluster := g.problem.clusters[e.cr.ClusterIndex]
		resource := cluster.Resources[e.cr.ResourceIndex]
		clusters[cluster.ClusterName] = true
		resources[resource.ResourceName] = true
		counts[[2]string{cluster.ClusterName, resource.ResourceName}]++
	}

	clusterNames := sortedKeys(clusters)
	resourceNames := sortedKeys(resources)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{""}, resourceNames...)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, c := range clusterNames {
		row := []string{c}
		for _, r := range resourceNames {
			row = append(row, strconv.Itoa(counts[[2]string{c, r}]))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// FixedCostPerResource returns each touched resource's fixed cost,
// keyed by resource name (Resource is not comparable as a map key the
// way the Java side uses it directly, since Characteristics embeds a
// pointer; name is the natural Go key).
func (g *Graph) FixedCostPerResource() map[string]float64 {
	cost := make(map[string]float64)
	for _, e := range g.edges {
		resource := g.problem.clusters[e.cr.ClusterIndex].Resources[e.cr.ResourceIndex]
		cost[resource.ResourceName] = resource.Cost().Fixed
	}
	return cost
}

// UtilizationPerResource returns, for each touched resource, the
// largest dimension of the utilization vectors summed over every
// service assigned to it (mirrors getUtilizationPerResource, keyed by
// resource name for the same reason as FixedCostPerResource).
func (g *Graph) UtilizationPerResource() map[string]float64 {
	totals := make(map[string]*model.Characteristics)
	for _, e := range g.edges {
		resource := g.problem.clusters[e.cr.ClusterIndex].Resources[e.cr.ResourceIndex]
		service := g.problem.services[e.serviceIndex]
		utilization := service.Requirements.Div(resource.Characteristics)

		if existing, ok := totals[resource.ResourceName]; ok {
			added := existing.Add(utilization)
			totals[resource.ResourceName] = &added
		} else {
			u := utilization
			totals[resource.ResourceName] = &u
		}
	}

	result := make(map[string]float64, len(totals))
	for name, c := range totals {
		result[name] = c.Max()
	}
	return result
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

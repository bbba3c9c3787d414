package assignment

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/UIBK-DPS-DC/pulse/internal/graphml"
	"github.com/UIBK-DPS-DC/pulse/internal/model"
)

// Graph is the bipartite service/resource result graph built from one
// evaluated solution: an edge from a service vertex to a resource
// vertex for every bit the repaired solution set. Grounded on
// local/graph/AssignmentGraph.java.
type Graph struct {
	problem  *LocalAssignmentProblem
	edges    []assignmentEdge
	cost     float64
	fairness float64
}

type assignmentEdge struct {
	serviceIndex  int
	resourceIndex int
}

// BuildGraph builds the assignment result graph for an evaluated
// solution. cost and fairness are the solution's own objective values,
// stamped onto every edge the same way the Java exporter stamps its
// "latency" edge attribute from whichever objective happens to sit at
// index 1 — here that is honestly the fairness objective, not a
// cross-stage latency value.
func BuildGraph(problem *LocalAssignmentProblem, candidates [][]model.Candidate, cost, fairness float64) *Graph {
	g := &Graph{problem: problem, cost: cost, fairness: fairness}
	for k, row := range candidates {
		for i, c := range row {
			if c.Assigned {
				g.edges = append(g.edges, assignmentEdge{serviceIndex: k, resourceIndex: i})
			}
		}
	}
	return g
}

// ToGraphML renders the assignment graph: one node per service, one
// node per resource, one edge per assignment, with the same attribute
// schema as the Java exporter.
func (g *Graph) ToGraphML() ([]byte, error) {
	doc := graphml.NewDocument(false)
	doc.RegisterAttribute("type", graphml.NodeDomain, "string")
	doc.RegisterAttribute("label", graphml.NodeDomain, "string")
	doc.RegisterAttribute("cpu", graphml.NodeDomain, "double")
	doc.RegisterAttribute("memory", graphml.NodeDomain, "double")
	doc.RegisterAttribute("disk", graphml.NodeDomain, "double")
	doc.RegisterAttribute("gpu", graphml.NodeDomain, "double")
	doc.RegisterAttribute("cost", graphml.NodeDomain, "double")
	doc.RegisterAttribute("cost", graphml.EdgeDomain, "double")
	doc.RegisterAttribute("fairness", graphml.EdgeDomain, "double")

	for k, s := range g.problem.services {
		v := s.Requirements.Values()
		doc.AddNode(serviceVertexID(k), map[string]string{
			"type":   "service",
			"label":  s.ServiceName,
			"cpu":    graphml.FormatFloat(v[0]),
			"memory": graphml.FormatFloat(v[1]),
			"disk":   graphml.FormatFloat(v[2]),
			"gpu":    graphml.FormatFloat(v[3]),
		})
	}
	for i, r := range g.problem.resources {
		v := r.Characteristics.Values()
		doc.AddNode(resourceVertexID(i), map[string]string{
			"type":   "resource",
			"label":  r.ResourceName,
			"cpu":    graphml.FormatFloat(v[0]),
			"memory": graphml.FormatFloat(v[1]),
			"disk":   graphml.FormatFloat(v[2]),
			"gpu":    graphml.FormatFloat(v[3]),
			"cost":   graphml.FormatFloat(r.Cost().Sum()),
		})
	}

	for id, e := range g.edges {
		doc.AddEdge(graphml.EdgeID(id), serviceVertexID(e.serviceIndex), resourceVertexID(e.resourceIndex), map[string]string{
			"cost":     graphml.FormatFloat(g.cost),
			"fairness": graphml.FormatFloat(g.fairness),
		})
	}

	return doc.Marshal()
}

// ToCSV renders a service x resource assignment-count matrix.
func (g *Graph) ToCSV() (string, error) {
	counts := make(map[[2]string]int)
	services := make(map[string]bool)
	resources := make(map[string]bool)

	for _, e := range g.edges {
		s := g.problem.services[e.serviceIndex].ServiceName
		r := g.problem.resources[e.resourceIndex].ResourceName
		services[s] = true
		resources[r] = true
		counts[[2]string{s, r}]++
	}

	serviceNames := sortedKeys(services)
	resourceNames := sortedKeys(resources)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{""}, resourceNames...)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, s := range serviceNames {
		row := []string{s}
		for _, r := range resourceNames {
			row = append(row, strconv.Itoa(counts[[2]string{s, r}]))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

func serviceVertexID(k int) string  { return "service:" + strconv.Itoa(k) }
func resourceVertexID(i int) string { return "resource:" + strconv.Itoa(i) }

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

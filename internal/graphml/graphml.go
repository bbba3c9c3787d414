// Package graphml is a small GraphML document builder shared by every
// Pulse graph type (service, cluster, assignment, composition). It
// lives in its own leaf package, with no dependency on internal/model,
// so both internal/graph and the result-graph builders in
// internal/assignment and internal/composition can depend on it
// without a cycle.
//
// No Go GraphML library turned up anywhere in the retrieval pack, so
// this wraps encoding/xml directly, reproducing the handful of
// jgrapht GraphMLExporter features the Java reference actually uses:
// typed node/edge attribute keys, no nested graphs, no hyperedges
// (DESIGN.md).
package graphml

import (
	"encoding/xml"
	"strconv"
)

type Domain string

const (
	NodeDomain Domain = "node"
	EdgeDomain Domain = "edge"
)

// Document accumulates nodes, edges and their typed attribute keys for
// one export.
type Document struct {
	directed bool
	keys     []key
	keySeen  map[string]bool
	nodes    []node
	edges    []edge
}

func NewDocument(directed bool) *Document {
	return &Document{directed: directed, keySeen: make(map[string]bool)}
}

// RegisterAttribute declares a typed node/edge attribute key, e.g.
// ("cpu", NodeDomain, "double"). Re-registering the same (domain, name)
// pair is a no-op.
func (d *Document) RegisterAttribute(name string, domain Domain, attrType string) {
	id := keyID(domain, name)
	if d.keySeen[id] {
		return
	}
	d.keySeen[id] = true
	d.keys = append(d.keys, key{ID: id, For: string(domain), AttrName: name, AttrType: attrType})
}

func (d *Document) AddNode(id string, attrs map[string]string) {
	n := node{ID: id}
	for name, value := range attrs {
		n.Data = append(n.Data, data{Key: keyID(NodeDomain, name), Value: value})
	}
	d.nodes = append(d.nodes, n)
}

func (d *Document) AddEdge(id, source, target string, attrs map[string]string) {
	e := edge{ID: id, Source: source, Target: target}
	for name, value := range attrs {
		e.Data = append(e.Data, data{Key: keyID(EdgeDomain, name), Value: value})
	}
	d.edges = append(d.edges, e)
}

func (d *Document) Marshal() ([]byte, error) {
	edgeDefault := "undirected"
	if d.directed {
		edgeDefault = "directed"
	}

	root := root{
		XMLNS: "http://graphml.graphdrawing.org/xmlns",
		Keys:  d.keys,
		Graph: graph{EdgeDefault: edgeDefault, Nodes: d.nodes, Edges: d.edges},
	}

	out, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func keyID(domain Domain, name string) string {
	return string(domain[0]) + "_" + name
}

// EdgeID builds a stable, unique edge identifier from a running counter.
func EdgeID(i int) string {
	return "e" + strconv.Itoa(i)
}

// FormatFloat renders a float64 the way GraphML attribute values expect.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type key struct {
	XMLName  xml.Name `xml:"key"`
	ID       string   `xml:"id,attr"`
	For      string   `xml:"for,attr"`
	AttrName string   `xml:"attr.name,attr"`
	AttrType string   `xml:"attr.type,attr"`
}

type data struct {
	XMLName xml.Name `xml:"data"`
	Key     string   `xml:"key,attr"`
	Value   string   `xml:",chardata"`
}

type node struct {
	XMLName xml.Name `xml:"node"`
	ID      string   `xml:"id,attr"`
	Data    []data   `xml:"data"`
}

type edge struct {
	XMLName xml.Name `xml:"edge"`
	ID      string   `xml:"id,attr"`
	Source  string   `xml:"source,attr"`
	Target  string   `xml:"target,attr"`
	Data    []data   `xml:"data"`
}

type graph struct {
	XMLName     xml.Name `xml:"graph"`
	EdgeDefault string   `xml:"edgedefault,attr"`
	Nodes       []node   `xml:"node"`
	Edges       []edge   `xml:"edge"`
}

type root struct {
	XMLName xml.Name `xml:"graphml"`
	XMLNS   string   `xml:"xmlns,attr"`
	Keys    []key    `xml:"key"`
	Graph   graph    `xml:"graph"`
}

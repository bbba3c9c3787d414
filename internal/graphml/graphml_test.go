package graphml

import (
	"strings"
	"testing"
)

func TestDocumentMarshalShape(t *testing.T) {
	doc := NewDocument(true)
	doc.RegisterAttribute("label", NodeDomain, "string")
	doc.RegisterAttribute("weight", EdgeDomain, "double")

	doc.AddNode("a", map[string]string{"label": "A"})
	doc.AddNode("b", map[string]string{"label": "B"})
	doc.AddEdge(EdgeID(0), "a", "b", map[string]string{"weight": FormatFloat(2.5)})

	raw, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := string(raw)

	if !strings.HasPrefix(out, `<?xml`) {
		t.Fatalf("expected an xml header, got:\n%s", out)
	}
	if !strings.Contains(out, `edgedefault="directed"`) {
		t.Fatalf("expected a directed graph, got:\n%s", out)
	}
	if !strings.Contains(out, `id="a"`) || !strings.Contains(out, `id="b"`) {
		t.Fatalf("expected both node ids, got:\n%s", out)
	}
	if !strings.Contains(out, `source="a"`) || !strings.Contains(out, `target="b"`) {
		t.Fatalf("expected the edge endpoints, got:\n%s", out)
	}
	if !strings.Contains(out, "2.5") {
		t.Fatalf("expected the formatted weight value, got:\n%s", out)
	}
}

func TestRegisterAttributeDeduplicates(t *testing.T) {
	doc := NewDocument(false)
	doc.RegisterAttribute("cpu", NodeDomain, "double")
	doc.RegisterAttribute("cpu", NodeDomain, "double")

	if len(doc.keys) != 1 {
		t.Fatalf("expected re-registering the same attribute to be a no-op, got %d keys", len(doc.keys))
	}
}

func TestUndirectedDefault(t *testing.T) {
	doc := NewDocument(false)
	raw, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(raw), `edgedefault="undirected"`) {
		t.Fatalf("expected an undirected graph, got:\n%s", raw)
	}
}

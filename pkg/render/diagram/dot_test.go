package diagram

import (
	"strings"
	"testing"

	"github.com/matzehuels/pipeviz/pkg/dag"
)

func testGraph() *dag.DAG {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "Repository", Row: 0, Category: "vcs", Icon: "onprem/vcs/github"})
	_ = g.AddNode(dag.Node{ID: "Static Website", Row: 1, Category: "storage", Icon: "aws/storage/s3",
		Meta: dag.Metadata{"bucket": "site", "region": "us-east-1"}})
	_ = g.AddEdge(dag.Edge{From: "Repository", To: "Static Website"})
	return g
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(testGraph(), Options{})

	for _, want := range []string{
		"digraph G",
		`rankdir="LR"`,
		`label=""`,
		`"Repository" [`,
		`"Static Website" [`,
		`"Repository" -> "Static Website";`,
		`tooltip="onprem/vcs/github"`,
		`fillcolor="#7AA116"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s\n%s", want, dot)
		}
	}
}

func TestToDOT_GraphAttrOverrides(t *testing.T) {
	dot := ToDOT(testGraph(), Options{
		Title:     "CI",
		Direction: DirectionTB,
		GraphAttr: map[string]string{"bgcolor": "transparent", "pad": "0.5"},
	})

	for _, want := range []string{`bgcolor="transparent"`, `pad="0.5"`, `rankdir="TB"`, `label="CI"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s", want)
		}
	}
	if strings.Contains(dot, `pad="2.0"`) {
		t.Error("ToDOT() should let GraphAttr override the default pad")
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	opts := Options{GraphAttr: map[string]string{"bgcolor": "transparent", "dpi": "96", "splines": "line"}}
	first := ToDOT(testGraph(), opts)
	for range 10 {
		if got := ToDOT(testGraph(), opts); got != first {
			t.Fatalf("ToDOT() not deterministic:\n%s\n---\n%s", first, got)
		}
	}
}

func TestToDOT_EdgeOrder(t *testing.T) {
	g := dag.New(nil)
	ids := []string{"e", "d", "c", "b", "a"}
	for i, id := range ids {
		_ = g.AddNode(dag.Node{ID: id, Row: i})
		if i > 0 {
			_ = g.AddEdge(dag.Edge{From: ids[i-1], To: id})
		}
	}

	dot := ToDOT(g, Options{})
	last := -1
	for i := 1; i < len(ids); i++ {
		idx := strings.Index(dot, `"`+ids[i-1]+`" -> "`+ids[i]+`"`)
		if idx < 0 {
			t.Fatalf("missing edge %s -> %s", ids[i-1], ids[i])
		}
		if idx < last {
			t.Errorf("edge %s -> %s out of order", ids[i-1], ids[i])
		}
		last = idx
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(testGraph(), Options{Output: Output{Detailed: true}})

	if !strings.Contains(dot, `label="Static Website\nbucket: site\nregion: us-east-1"`) {
		t.Errorf("ToDOT() detailed label missing sorted metadata:\n%s", dot)
	}
	if !strings.Contains(dot, `label="Repository"`) {
		t.Error("ToDOT() detailed label for node without metadata should be the ID")
	}
}

func TestNodeAttrs_FallbackStyle(t *testing.T) {
	attrs := nodeAttrs(dag.Node{ID: "x", Category: "unknown"}, false)

	if attrs["fillcolor"] != fallbackStyle.FillColor {
		t.Errorf("fillcolor = %q, want %q", attrs["fillcolor"], fallbackStyle.FillColor)
	}
	if _, ok := attrs["tooltip"]; ok {
		t.Error("tooltip should be omitted without an icon")
	}
}

func TestGraphAttrs_DoesNotMutateDefaults(t *testing.T) {
	_ = GraphAttrs(Options{GraphAttr: map[string]string{"pad": "9"}})
	if defaultGraphAttr["pad"] != "2.0" {
		t.Errorf("defaultGraphAttr mutated: pad = %q", defaultGraphAttr["pad"])
	}
}

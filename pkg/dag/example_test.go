package dag_test

import (
	"fmt"

	"github.com/matzehuels/pipeviz/pkg/dag"
)

func ExampleDAG_basic() {
	// A three-stage chain: source → build → bucket
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "source", Row: 0})
	_ = g.AddNode(dag.Node{ID: "build", Row: 1})
	_ = g.AddNode(dag.Node{ID: "bucket", Row: 2})
	_ = g.AddEdge(dag.Edge{From: "source", To: "build"})
	_ = g.AddEdge(dag.Edge{From: "build", To: "bucket"})

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Path:", g.ValidatePath() == nil)
	// Output:
	// Nodes: 3
	// Edges: 2
	// Path: true
}

func ExampleDAG_Nodes() {
	g := dag.New(nil)
	for i, id := range []string{"c", "a", "b"} {
		_ = g.AddNode(dag.Node{ID: id, Row: i})
	}

	fmt.Println(dag.NodeIDs(g.Nodes()))
	// Output:
	// [c a b]
}

func ExampleDAG_ValidatePath() {
	// Fan-out is a valid DAG but not a simple path
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "pipeline", Row: 0})
	_ = g.AddNode(dag.Node{ID: "build", Row: 1})
	_ = g.AddNode(dag.Node{ID: "test", Row: 1})
	_ = g.AddEdge(dag.Edge{From: "pipeline", To: "build"})
	_ = g.AddEdge(dag.Edge{From: "pipeline", To: "test"})

	fmt.Println(g.Validate())
	fmt.Println(g.ValidatePath())
	// Output:
	// <nil>
	// graph is not a simple path
}

// Package dag provides the in-memory graph model behind a pipeline diagram.
//
// # Overview
//
// A pipeline diagram is a directed graph whose nodes are pipeline stages and
// whose edges mean "flows into". This package stores that graph and checks its
// structure before anything is handed to Graphviz.
//
// Unlike a plain adjacency map, [DAG] remembers insertion order: [DAG.Nodes]
// and [DAG.Edges] always return elements in the order they were added, so two
// graphs built by the same sequence of calls serialize to identical DOT and
// JSON.
//
// # Basic Usage
//
//	g := dag.New(nil)
//	g.AddNode(dag.Node{ID: "Repository", Row: 0, Category: "vcs"})
//	g.AddNode(dag.Node{ID: "CodeBuild", Row: 1, Category: "build"})
//	g.AddEdge(dag.Edge{From: "Repository", To: "CodeBuild"})
//
// # Validation
//
// [DAG.Validate] checks that every edge joins consecutive rows and that the
// graph is acyclic. [DAG.ValidatePath] additionally requires a simple path:
// one source, no branching, and every node on the chain.
//
// # Concurrency
//
// DAG is not safe for concurrent use. Build it on one goroutine.
package dag

package diagram

import (
	"github.com/matzehuels/pipeviz/pkg/dag"
	perrors "github.com/matzehuels/pipeviz/pkg/errors"
)

// Builder accumulates the nodes and edges of one diagram.
//
// Errors are sticky: the first failing Node or Connect is remembered and
// every later call is a no-op, so a construction sequence can run to the end
// and check [Builder.Err] once.
type Builder struct {
	graph *dag.DAG
	err   error
}

// NewBuilder returns an empty builder. The title and direction of opts are
// recorded as graph metadata.
func NewBuilder(opts Options) *Builder {
	return &Builder{
		graph: dag.New(dag.Metadata{
			"title":     opts.Title,
			"direction": string(opts.withDefaults().Direction),
		}),
	}
}

// Graph returns the graph built so far.
func (b *Builder) Graph() *dag.DAG { return b.graph }

// Err returns the first construction error, if any.
func (b *Builder) Err() error { return b.err }

// Node adds a node labeled label. Each node gets the next row, so edges must
// join nodes added one after the other. It returns nil once the builder has
// failed.
func (b *Builder) Node(label, category, icon string, meta map[string]string) *dag.Node {
	if b.err != nil {
		return nil
	}
	if err := perrors.ValidateLabel(label); err != nil {
		b.err = err
		return nil
	}

	md := make(dag.Metadata, len(meta))
	for k, v := range meta {
		md[k] = v
	}
	n := dag.Node{
		ID:       label,
		Row:      b.graph.NodeCount(),
		Category: category,
		Icon:     icon,
		Meta:     md,
	}
	if err := b.graph.AddNode(n); err != nil {
		b.err = perrors.Wrap(perrors.ErrCodeInvalidGraph, err, "node %q", label)
		return nil
	}
	added, _ := b.graph.Node(label)
	return added
}

// Connect adds a "flows into" edge between each consecutive pair of nodes,
// so Connect(a, b, c) adds a→b and b→c.
func (b *Builder) Connect(nodes ...*dag.Node) {
	for i := 1; i < len(nodes); i++ {
		if b.err != nil {
			return
		}
		from, to := nodes[i-1], nodes[i]
		if from == nil || to == nil {
			b.err = perrors.New(perrors.ErrCodeInvalidGraph, "connect: nil node")
			return
		}
		if err := b.graph.AddEdge(dag.Edge{From: from.ID, To: to.ID}); err != nil {
			b.err = perrors.Wrap(perrors.ErrCodeInvalidGraph, err, "edge %s->%s", from.ID, to.ID)
		}
	}
}

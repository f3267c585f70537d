package pipeline

import (
	"context"
	"fmt"
	"maps"

	"github.com/matzehuels/pipeviz/pkg/dag"
	perrors "github.com/matzehuels/pipeviz/pkg/errors"
	"github.com/matzehuels/pipeviz/pkg/render/diagram"
)

// Stage is one step of a pipeline.
type Stage struct {
	// Label is the node label and must be unique within the definition.
	Label string
	// Category selects the icon and style.
	Category Category
	// Meta is descriptive data about the provisioned resource. It is shown
	// in detailed diagrams and graph exports.
	Meta map[string]string
}

// Definition describes a pipeline diagram: render options plus the stages in
// flow order.
type Definition struct {
	Title     string
	Direction diagram.Direction
	GraphAttr map[string]string
	Stages    []Stage
}

// Validate checks that the definition has at least one stage, that labels are
// valid and unique, and that every category is known.
func (d *Definition) Validate() error {
	if len(d.Stages) == 0 {
		return perrors.New(perrors.ErrCodeInvalidGraph, "pipeline has no stages")
	}
	if d.Direction != "" {
		if _, err := diagram.ParseDirection(string(d.Direction)); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(d.Stages))
	for i, st := range d.Stages {
		if err := perrors.ValidateLabel(st.Label); err != nil {
			return perrors.Wrap(perrors.ErrCodeInvalidInput, err, "stage %d", i+1)
		}
		if seen[st.Label] {
			return perrors.New(perrors.ErrCodeInvalidGraph, "duplicate stage label: %q", st.Label)
		}
		seen[st.Label] = true
		if !st.Category.Valid() {
			return perrors.New(perrors.ErrCodeInvalidCategory, "stage %q: invalid category %q (must be one of: %s)",
				st.Label, st.Category, categoryList())
		}
	}
	return nil
}

// Clone returns a deep copy of d.
func (d *Definition) Clone() *Definition {
	c := &Definition{
		Title:     d.Title,
		Direction: d.Direction,
		GraphAttr: maps.Clone(d.GraphAttr),
		Stages:    make([]Stage, len(d.Stages)),
	}
	for i, st := range d.Stages {
		c.Stages[i] = Stage{Label: st.Label, Category: st.Category, Meta: maps.Clone(st.Meta)}
	}
	return c
}

// Options returns the diagram options for d writing to out.
func (d *Definition) Options(out diagram.Output) diagram.Options {
	return diagram.Options{
		Title:     d.Title,
		Direction: d.Direction,
		GraphAttr: maps.Clone(d.GraphAttr),
		Output:    out,
	}
}

// Graph builds the diagram model of d without rendering it.
func (d *Definition) Graph() (*dag.DAG, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	b := diagram.NewBuilder(d.Options(diagram.Output{}))
	if err := d.build(b); err != nil {
		return nil, err
	}
	return b.Graph(), nil
}

// Draw renders d to a single image file and returns its path. The rendering
// facility is released before Draw returns, whether or not rendering
// succeeded.
func (d *Definition) Draw(ctx context.Context, out diagram.Output) (path string, err error) {
	if err := d.Validate(); err != nil {
		return "", err
	}

	s, err := diagram.Open(ctx, d.Options(out))
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := d.build(s.Builder); err != nil {
		return "", err
	}
	return s.Render()
}

// build adds one node per stage and chains them in order.
func (d *Definition) build(b *diagram.Builder) error {
	nodes := make([]*dag.Node, 0, len(d.Stages))
	for _, st := range d.Stages {
		nodes = append(nodes, b.Node(st.Label, st.Category.String(), st.Category.Icon(), st.Meta))
	}
	b.Connect(nodes...)
	if err := b.Err(); err != nil {
		return err
	}
	if err := b.Graph().ValidatePath(); err != nil {
		return perrors.Wrap(perrors.ErrCodeInvalidGraph, err, "pipeline")
	}
	return nil
}

// FromGraph converts a path-shaped graph back into a definition. Stages follow
// the path from its source; the "title" and "direction" graph metadata become
// the title and direction. Node metadata values are formatted as strings.
func FromGraph(g *dag.DAG) (*Definition, error) {
	if err := g.ValidatePath(); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidGraph, err, "pipeline graph")
	}

	d := &Definition{Stages: make([]Stage, 0, g.NodeCount())}
	if title, ok := g.Meta()["title"].(string); ok {
		d.Title = title
	}
	if dir, ok := g.Meta()["direction"].(string); ok && dir != "" {
		parsed, err := diagram.ParseDirection(dir)
		if err != nil {
			return nil, err
		}
		d.Direction = parsed
	}

	n := g.Sources()[0]
	for {
		c, err := ParseCategory(n.Category)
		if err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeInvalidCategory, err, "node %q", n.ID)
		}
		var meta map[string]string
		if len(n.Meta) > 0 {
			meta = make(map[string]string, len(n.Meta))
			for k, v := range n.Meta {
				meta[k] = fmt.Sprint(v)
			}
		}
		d.Stages = append(d.Stages, Stage{Label: n.ID, Category: c, Meta: meta})

		children := g.Children(n.ID)
		if len(children) == 0 {
			break
		}
		n, _ = g.Node(children[0])
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

package diagram

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/pipeviz/pkg/dag"
)

// NodeStyle is the visual treatment of one node category.
type NodeStyle struct {
	FillColor string
	FontColor string
}

// Styles maps category names to their node style. Categories without an
// entry use fallbackStyle.
var Styles = map[string]NodeStyle{
	"vcs":          {FillColor: "#24292E", FontColor: "#FFFFFF"},
	"orchestrator": {FillColor: "#4053D6", FontColor: "#FFFFFF"},
	"build":        {FillColor: "#4053D6", FontColor: "#FFFFFF"},
	"deploy":       {FillColor: "#4053D6", FontColor: "#FFFFFF"},
	"storage":      {FillColor: "#7AA116", FontColor: "#FFFFFF"},
}

var fallbackStyle = NodeStyle{FillColor: "#B2BEC3", FontColor: "#2D3436"}

var (
	defaultGraphAttr = map[string]string{
		"pad":       "2.0",
		"splines":   "ortho",
		"nodesep":   "0.60",
		"ranksep":   "0.75",
		"fontname":  "Sans-Serif",
		"fontsize":  "15",
		"fontcolor": "#2D3436",
	}
	defaultNodeAttr = map[string]string{
		"shape":    "box",
		"style":    "rounded,filled",
		"fontname": "Sans-Serif",
		"fontsize": "13",
		"margin":   "0.3,0.2",
	}
	defaultEdgeAttr = map[string]string{
		"color":    "#7B8894",
		"fontname": "Sans-Serif",
		"fontsize": "13",
	}
)

// GraphAttrs returns the effective graph-level attributes for opts: the
// built-in defaults, then label and rankdir, then opts.GraphAttr on top.
func GraphAttrs(opts Options) map[string]string {
	attrs := maps.Clone(defaultGraphAttr)
	attrs["label"] = opts.Title
	attrs["rankdir"] = string(opts.withDefaults().Direction)
	maps.Copy(attrs, opts.GraphAttr)
	return attrs
}

// ToDOT converts a graph to Graphviz DOT source.
//
// The output is deterministic: nodes and edges appear in insertion order and
// attributes are sorted by key, so identical graphs yield identical bytes.
func ToDOT(g *dag.DAG, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  graph [%s];\n", fmtAttrList(GraphAttrs(opts)))
	fmt.Fprintf(&buf, "  node [%s];\n", fmtAttrList(defaultNodeAttr))
	fmt.Fprintf(&buf, "  edge [%s];\n", fmtAttrList(defaultEdgeAttr))
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, fmtAttrList(nodeAttrs(*n, opts.Detailed)))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n dag.Node, detailed bool) map[string]string {
	style, ok := Styles[n.Category]
	if !ok {
		style = fallbackStyle
	}
	attrs := map[string]string{
		"label":     fmtLabel(n, detailed),
		"fillcolor": style.FillColor,
		"fontcolor": style.FontColor,
	}
	if n.Icon != "" {
		attrs["tooltip"] = n.Icon
	}
	return attrs
}

func fmtLabel(n dag.Node, detailed bool) string {
	if !detailed || len(n.Meta) == 0 {
		return n.ID
	}

	parts := make([]string, 0, len(n.Meta))
	for _, k := range slices.Sorted(maps.Keys(n.Meta)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, n.Meta[k]))
	}
	return n.ID + "\n" + strings.Join(parts, "\n")
}

func fmtAttrList(attrs map[string]string) string {
	parts := make([]string, 0, len(attrs))
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		parts = append(parts, fmt.Sprintf("%s=%q", k, attrs[k]))
	}
	return strings.Join(parts, ", ")
}

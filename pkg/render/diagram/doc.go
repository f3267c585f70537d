// Package diagram is the adapter between pipeline descriptions and the
// Graphviz rendering facility.
//
// # Overview
//
// A diagram is authored inside a [Scope]. [Open] validates the render
// configuration and acquires a [Renderer]; nodes and edges are then added
// with [Scope.Node] and [Scope.Connect]; [Scope.Render] lays the graph out,
// encodes it, and writes exactly one file; [Scope.Close] releases the
// renderer. Close is meant to be deferred right after Open, so the renderer
// is released whether construction succeeds or not.
//
// Graph construction lives in [Builder], which Scope embeds. A Builder can
// also be used on its own to get the model without rendering it.
//
// # Output
//
// The output path comes from [Options.Path]. Unless a filename is given, it
// is derived from the title by [FilenameFor]: "" becomes "diagram.png" and
// "Static Website CI" becomes "static_website_ci.png". Files are written
// through a temp file and a rename, so a failed render never leaves a partial
// image behind.
//
// # DOT Format
//
// [ToDOT] produces the Graphviz source. Graph attributes are the built-in
// defaults, then the title as label and the direction as rankdir, then
// [Options.GraphAttr] on top, so {"bgcolor": "transparent"} gives a
// transparent background. Node colours come from [Styles] keyed by category.
// The output is deterministic for a given graph and options.
//
// # Dependencies
//
// [GraphvizRenderer] uses [github.com/goccy/go-graphviz] to lay out and encode
// PNG, SVG, and JPG in process. PDF export additionally requires librsvg
// (rsvg-convert).
package diagram

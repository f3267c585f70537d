// Package render holds format conversions shared by the diagram renderers.
//
// Graphviz encodes PNG, SVG, and JPG in process (see the [diagram]
// subpackage). PDF is produced by converting the SVG rendering with the
// external rsvg-convert tool from librsvg:
//
//	svg, err := renderer.Render(ctx, dot, diagram.FormatSVG)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [diagram]: github.com/matzehuels/pipeviz/pkg/render/diagram
package render

package diagram

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pipeviz/pkg/render"
)

// Renderer is the rendering facility: it lays out DOT source and encodes the
// result. A Renderer is acquired when a [Scope] opens and closed when the
// scope closes.
type Renderer interface {
	Render(ctx context.Context, dot string, format Format) ([]byte, error)
	Close() error
}

// GraphvizRenderer renders in process with the WebAssembly build of Graphviz.
// PNG, SVG, and JPG are encoded directly; PDF goes through SVG and
// [render.ToPDF]. It is not safe for concurrent use.
type GraphvizRenderer struct {
	gv *graphviz.Graphviz
}

// NewGraphvizRenderer instantiates the Graphviz runtime.
func NewGraphvizRenderer(ctx context.Context) (*GraphvizRenderer, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	return &GraphvizRenderer{gv: gv}, nil
}

// Render lays out dot and encodes it as format.
func (r *GraphvizRenderer) Render(ctx context.Context, dot string, format Format) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		svg, err := r.encode(ctx, dot, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		return normalizeViewBox(svg), nil
	case FormatPNG:
		return r.encode(ctx, dot, graphviz.PNG)
	case FormatJPG:
		return r.encode(ctx, dot, graphviz.JPG)
	case FormatPDF:
		svg, err := r.encode(ctx, dot, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(ctx, normalizeViewBox(svg))
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func (r *GraphvizRenderer) encode(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := r.gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// Close releases the Graphviz runtime.
func (r *GraphvizRenderer) Close() error {
	return r.gv.Close()
}

// sourceRenderer serves FormatDOT without starting Graphviz.
type sourceRenderer struct{}

func (sourceRenderer) Render(_ context.Context, dot string, format Format) ([]byte, error) {
	if format != FormatDOT {
		return nil, fmt.Errorf("unsupported format without graphviz: %s", format)
	}
	return []byte(dot), nil
}

func (sourceRenderer) Close() error { return nil }

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales from its
// viewBox instead of Graphviz's point-based width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

package diagram

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	perrors "github.com/matzehuels/pipeviz/pkg/errors"
)

// Format is an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatJPG Format = "jpg"
	FormatPDF Format = "pdf"
	FormatDOT Format = "dot" // raw DOT source, no layout
)

// DefaultFormat is the format used when none is requested.
const DefaultFormat = FormatPNG

// Formats lists the supported formats in display order.
var Formats = []Format{FormatPNG, FormatSVG, FormatJPG, FormatPDF, FormatDOT}

// ParseFormat converts a format name (case-insensitive, optional leading
// dot) to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	if f == "jpeg" {
		f = FormatJPG
	}
	if !slices.Contains(Formats, f) {
		return "", perrors.New(perrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, svg, jpg, pdf, dot)", s)
	}
	return f, nil
}

// Direction is the Graphviz rankdir of the diagram.
type Direction string

const (
	DirectionTB Direction = "TB" // top to bottom
	DirectionBT Direction = "BT" // bottom to top
	DirectionLR Direction = "LR" // left to right
	DirectionRL Direction = "RL" // right to left
)

// DefaultDirection lays the pipeline out left to right.
const DefaultDirection = DirectionLR

// ParseDirection converts a direction name (case-insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToUpper(strings.TrimSpace(s)))
	switch d {
	case DirectionTB, DirectionBT, DirectionLR, DirectionRL:
		return d, nil
	}
	return "", perrors.New(perrors.ErrCodeInvalidDirection, "invalid direction: %q (must be one of: TB, BT, LR, RL)", s)
}

// defaultFilename is the base name used when the title is empty.
const defaultFilename = "diagram"

// Output controls where and how the rendered diagram is written.
type Output struct {
	// Format of the artifact. Defaults to [DefaultFormat].
	Format Format
	// Filename is the output path. When empty it is derived from the title
	// with [FilenameFor] and placed in OutDir.
	Filename string
	// OutDir is the directory for derived filenames. Defaults to ".".
	OutDir string
	// Detailed adds node metadata to labels.
	Detailed bool
	// Renderer overrides the rendering facility. Nil selects Graphviz.
	Renderer Renderer
}

// Options is the render configuration of one diagram scope. GraphAttr is
// applied to the whole graph and wins over the built-in defaults, Direction
// and Title included.
type Options struct {
	Title     string
	Direction Direction
	GraphAttr map[string]string
	Output
}

// withDefaults returns a copy of o with empty fields defaulted.
func (o Options) withDefaults() Options {
	if o.Direction == "" {
		o.Direction = DefaultDirection
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.OutDir == "" {
		o.OutDir = "."
	}
	return o
}

// attrNameRe matches attribute names that can be written unquoted in DOT.
var attrNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the direction, format, graph attribute names, and output
// path. Empty fields are validated as their defaults.
func (o Options) Validate() error {
	o = o.withDefaults()
	if _, err := ParseDirection(string(o.Direction)); err != nil {
		return err
	}
	if _, err := ParseFormat(string(o.Format)); err != nil {
		return err
	}
	for k := range o.GraphAttr {
		if !attrNameRe.MatchString(k) {
			return perrors.New(perrors.ErrCodeInvalidConfig, "invalid graph attribute name: %q", k)
		}
	}
	return perrors.ValidateOutputPath(o.Path())
}

// Path returns the file the diagram is written to.
func (o Options) Path() string {
	if o.Filename != "" {
		return o.Filename
	}
	return filepath.Join(o.OutDir, FilenameFor(o.Title, o.Format))
}

// FilenameFor derives an output filename from a diagram title: words are
// lowercased and joined with underscores, path separators are replaced, and
// an empty title becomes "diagram".
//
//	FilenameFor("", FormatPNG)                 // "diagram.png"
//	FilenameFor("Static Website CI", FormatSVG) // "static_website_ci.svg"
func FilenameFor(title string, format Format) string {
	base := strings.ToLower(strings.Join(strings.Fields(title), "_"))
	base = strings.NewReplacer("/", "_", "\\", "_").Replace(base)
	if base == "" || base == "." || base == ".." {
		base = defaultFilename
	}
	if format == "" {
		format = DefaultFormat
	}
	return base + "." + string(format)
}

package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pipeviz/pkg/render/diagram"
)

// Runner draws definitions and logs what it did.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Result describes a finished render.
type Result struct {
	// Path is the written image file.
	Path string
	// Format is the encoding of Path.
	Format diagram.Format
	// Stats contains counts and timing.
	Stats Stats
}

// Stats contains render statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	RenderTime time.Duration
}

// Run validates d, draws it to out, and returns the result. On error no
// output file exists.
func (r *Runner) Run(ctx context.Context, d *Definition, out diagram.Output) (*Result, error) {
	g, err := d.Graph()
	if err != nil {
		return nil, err
	}
	opts := d.Options(out)
	r.Logger.Debug("built pipeline",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"direction", opts.Direction)

	start := time.Now()
	path, err := d.Draw(ctx, out)
	if err != nil {
		return nil, err
	}
	format := out.Format
	if format == "" {
		format = diagram.DefaultFormat
	}
	res := &Result{
		Path:   path,
		Format: format,
		Stats: Stats{
			NodeCount:  g.NodeCount(),
			EdgeCount:  g.EdgeCount(),
			RenderTime: time.Since(start),
		},
	}

	r.Logger.Info("rendered diagram",
		"path", res.Path,
		"format", res.Format,
		"duration", res.Stats.RenderTime)
	return res, nil
}

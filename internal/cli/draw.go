package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pipeviz/pkg/config"
	"github.com/matzehuels/pipeviz/pkg/pipeline"
	"github.com/matzehuels/pipeviz/pkg/render/diagram"
)

// drawOpts holds the command-line flags for drawing a diagram.
type drawOpts struct {
	config    string // TOML, HCL, or JSON graph file
	output    string // output file path
	outDir    string // directory for the derived filename
	format    string // png, svg, jpg, pdf, or dot
	direction string // TB, BT, LR, or RL
	title     string // diagram title
	detailed  bool   // include stage metadata in node labels
}

func (o *drawOpts) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.config, "config", "c", "", "pipeline config file (.toml, .hcl, or .json)")
	f.StringVarP(&o.output, "output", "o", "", "output file (default: derived from the title, e.g. diagram.png)")
	f.StringVar(&o.outDir, "out-dir", "", "directory for the derived output file")
	f.StringVarP(&o.format, "format", "f", "", "output format: png, svg, jpg, pdf, dot (default: from --output, else png)")
	f.StringVar(&o.direction, "direction", "", "layout direction: TB, BT, LR, RL")
	f.StringVar(&o.title, "title", "", "diagram title")
	f.BoolVar(&o.detailed, "detailed", false, "show stage metadata in node labels")
}

// apply overlays the flags the user set onto cfg.
func (o *drawOpts) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("title") {
		cfg.Pipeline.Title = o.title
	}
	if o.direction != "" {
		d, err := diagram.ParseDirection(o.direction)
		if err != nil {
			return err
		}
		cfg.Pipeline.Direction = d
	}
	if o.output != "" {
		cfg.Filename = o.output
	}
	switch {
	case o.format != "":
		f, err := diagram.ParseFormat(o.format)
		if err != nil {
			return err
		}
		cfg.Format = f
	case o.output != "":
		// Infer the format from a recognized extension; unknown extensions
		// keep the configured format.
		if f, err := diagram.ParseFormat(filepath.Ext(o.output)); err == nil {
			cfg.Format = f
		}
	}
	if flags.Changed("detailed") {
		cfg.Detailed = o.detailed
	}
	return nil
}

func (c *CLI) runDraw(cmd *cobra.Command, opts drawOpts) error {
	cfg, err := c.loadConfig(opts.config)
	if err != nil {
		return err
	}
	if err := opts.apply(cmd, cfg); err != nil {
		return err
	}

	out := cfg.Output()
	out.OutDir = opts.outDir

	res, err := pipeline.NewRunner(c.Logger).Run(cmd.Context(), cfg.Pipeline, out)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s diagram", res.Format)
	printFile(res.Path)
	printStats(res.Stats.NodeCount, res.Stats.EdgeCount)
	return nil
}

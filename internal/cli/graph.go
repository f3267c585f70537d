package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/pipeviz/pkg/errors"
	pio "github.com/matzehuels/pipeviz/pkg/io"
	"github.com/matzehuels/pipeviz/pkg/render/diagram"
)

// graphCommand prints the diagram model without rendering it.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		configPath string
		output     string
		dot        bool
		detailed   bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the pipeline graph as JSON or DOT",
		Long: `Print the nodes and edges of the pipeline diagram without rendering an image.

The JSON output can be passed back with --config to draw the same pipeline.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(configPath)
			if err != nil {
				return err
			}
			prog := newProgress(c.Logger)
			g, err := cfg.Pipeline.Graph()
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Built graph with %d nodes and %d edges", g.NodeCount(), g.EdgeCount()))

			if dot {
				out := cfg.Output()
				out.Detailed = out.Detailed || detailed
				src := diagram.ToDOT(g, cfg.Pipeline.Options(out))
				if output == "" {
					_, err := fmt.Fprint(cmd.OutOrStdout(), src)
					return err
				}
				return writeText(output, src)
			}

			if output == "" {
				return pio.WriteJSON(g, cmd.OutOrStdout())
			}
			if err := pio.ExportJSON(g, output); err != nil {
				return perrors.Wrap(perrors.ErrCodeExport, err, "export graph")
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "pipeline config file (.toml, .hcl, or .json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&dot, "dot", false, "print Graphviz DOT instead of JSON")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show stage metadata in DOT labels")

	return cmd
}

func writeText(path, s string) error {
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		return perrors.Wrap(perrors.ErrCodeExport, err, "write %s", path)
	}
	printFile(path)
	return nil
}

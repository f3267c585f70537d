// Package cli implements the pipeviz command-line interface.
//
// The root command draws the pipeline diagram. Subcommands:
//   - graph: print the diagram model as JSON or DOT without rendering
//   - version: print build information
//   - completion: generate shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pipeviz/pkg/buildinfo"
	"github.com/matzehuels/pipeviz/pkg/config"
	"github.com/matzehuels/pipeviz/pkg/observability"
)

// appName is the application name used for display.
const appName = "pipeviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var opts drawOpts

	root := &cobra.Command{
		Use:   appName,
		Short: "Pipeviz draws a delivery pipeline as an architecture diagram",
		Long: `Pipeviz draws a CI/CD pipeline as a left-to-right architecture diagram.

Without a config file it draws the built-in static website pipeline:

  Repository -> CodePipeline -> CodeBuild -> CodeDeploy -> Static Website`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetDiagramHooks(newLogHooks(c.Logger))
			c.Logger.Debug("starting", "app", appName, "version", buildinfo.Short())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDraw(cmd, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	opts.register(root)

	root.AddCommand(c.graphCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads path, or returns the built-in configuration when path is
// empty.
func (c *CLI) loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded config", "path", path, "stages", len(cfg.Pipeline.Stages))
	return cfg, nil
}

package config

import (
	"bytes"
	"maps"
	"os"
	"path/filepath"
	"strings"

	perrors "github.com/matzehuels/pipeviz/pkg/errors"
	pio "github.com/matzehuels/pipeviz/pkg/io"
	"github.com/matzehuels/pipeviz/pkg/pipeline"
	"github.com/matzehuels/pipeviz/pkg/render/diagram"
)

// Config is a loaded configuration: the pipeline to draw and where to write it.
type Config struct {
	Pipeline *pipeline.Definition
	Format   diagram.Format
	Filename string
	Detailed bool
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Pipeline: pipeline.StaticWebsite(),
		Format:   diagram.DefaultFormat,
	}
}

// Output returns the render output described by c.
func (c *Config) Output() diagram.Output {
	return diagram.Output{
		Format:   c.Format,
		Filename: c.Filename,
		Detailed: c.Detailed,
	}
}

// Load reads the file at path. The syntax is chosen by extension: .toml,
// .hcl, or .json for a graph written by the graph command.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perrors.New(perrors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return nil, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data, path)
}

// Parse decodes data using the syntax implied by filename's extension.
func Parse(data []byte, filename string) (*Config, error) {
	var (
		raw *rawConfig
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		raw, err = parseTOML(data)
	case ".hcl":
		raw, err = parseHCL(data, filename)
	case ".json":
		return parseGraph(data, filename)
	default:
		return nil, perrors.New(perrors.ErrCodeInvalidConfig, "unsupported config file type %q (use .toml, .hcl, or .json)", ext)
	}
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "parse %s", filename)
	}
	return raw.apply(Default())
}

// parseGraph reads a JSON graph export. Its stages, title, and direction
// replace the built-in ones; graph attributes and output settings keep their
// defaults.
func parseGraph(data []byte, filename string) (*Config, error) {
	g, err := pio.ReadJSON(bytes.NewReader(data))
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "parse %s", filename)
	}
	def, err := pipeline.FromGraph(g)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	def.GraphAttr = cfg.Pipeline.GraphAttr
	cfg.Pipeline = def
	return cfg, nil
}

// rawConfig is the syntax-independent form of a config file. Nil pointers
// mean the key was absent.
type rawConfig struct {
	Title     *string
	Direction *string
	Format    *string
	Output    *string
	Detailed  *bool
	GraphAttr map[string]string
	Stages    []rawStage
}

type rawStage struct {
	Label    string
	Category string
	Meta     map[string]string
}

// apply overlays r onto base and validates the result.
func (r *rawConfig) apply(base *Config) (*Config, error) {
	cfg := *base
	def := base.Pipeline.Clone()
	cfg.Pipeline = def

	if r.Title != nil {
		def.Title = *r.Title
	}
	if r.Direction != nil {
		d, err := diagram.ParseDirection(*r.Direction)
		if err != nil {
			return nil, err
		}
		def.Direction = d
	}
	if len(r.GraphAttr) > 0 {
		if def.GraphAttr == nil {
			def.GraphAttr = make(map[string]string, len(r.GraphAttr))
		}
		maps.Copy(def.GraphAttr, r.GraphAttr)
	}
	if r.Stages != nil {
		def.Stages = make([]pipeline.Stage, 0, len(r.Stages))
		for _, s := range r.Stages {
			c, err := pipeline.ParseCategory(s.Category)
			if err != nil {
				return nil, perrors.Wrap(perrors.ErrCodeInvalidCategory, err, "stage %q", s.Label)
			}
			def.Stages = append(def.Stages, pipeline.Stage{Label: s.Label, Category: c, Meta: s.Meta})
		}
	}

	if r.Output != nil {
		if err := perrors.ValidateOutputPath(*r.Output); err != nil {
			return nil, err
		}
		cfg.Filename = *r.Output
		if f, err := diagram.ParseFormat(filepath.Ext(*r.Output)); err == nil {
			cfg.Format = f
		}
	}
	if r.Format != nil {
		f, err := diagram.ParseFormat(*r.Format)
		if err != nil {
			return nil, err
		}
		cfg.Format = f
	}
	if r.Detailed != nil {
		cfg.Detailed = *r.Detailed
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

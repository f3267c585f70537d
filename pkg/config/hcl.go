package config

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

type hclFile struct {
	Title     *string           `hcl:"title,optional"`
	Direction *string           `hcl:"direction,optional"`
	Format    *string           `hcl:"format,optional"`
	Output    *string           `hcl:"output,optional"`
	Detailed  *bool             `hcl:"detailed,optional"`
	GraphAttr map[string]string `hcl:"graph_attr,optional"`
	Stages    []hclStage        `hcl:"stage,block"`
}

type hclStage struct {
	Label    string            `hcl:"label,label"`
	Category string            `hcl:"category"`
	Meta     map[string]string `hcl:"meta,optional"`
}

func parseHCL(data []byte, filename string) (*rawConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var f hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &f); diags.HasErrors() {
		return nil, diags
	}

	raw := &rawConfig{
		Title:     f.Title,
		Direction: f.Direction,
		Format:    f.Format,
		Output:    f.Output,
		Detailed:  f.Detailed,
		GraphAttr: f.GraphAttr,
	}
	if len(f.Stages) > 0 {
		raw.Stages = make([]rawStage, 0, len(f.Stages))
		for _, s := range f.Stages {
			raw.Stages = append(raw.Stages, rawStage(s))
		}
	}
	return raw, nil
}

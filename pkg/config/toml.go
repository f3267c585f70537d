package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type tomlFile struct {
	Title     *string           `toml:"title"`
	Direction *string           `toml:"direction"`
	Format    *string           `toml:"format"`
	Output    *string           `toml:"output"`
	Detailed  *bool             `toml:"detailed"`
	GraphAttr map[string]string `toml:"graph_attr"`
	Stages    []tomlStage       `toml:"stage"`
}

type tomlStage struct {
	Label    string            `toml:"label"`
	Category string            `toml:"category"`
	Meta     map[string]string `toml:"meta"`
}

func parseTOML(data []byte) (*rawConfig, error) {
	var f tomlFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	raw := &rawConfig{
		Title:     f.Title,
		Direction: f.Direction,
		Format:    f.Format,
		Output:    f.Output,
		Detailed:  f.Detailed,
		GraphAttr: f.GraphAttr,
	}
	if md.IsDefined("stage") {
		raw.Stages = make([]rawStage, 0, len(f.Stages))
		for _, s := range f.Stages {
			raw.Stages = append(raw.Stages, rawStage(s))
		}
	}
	return raw, nil
}

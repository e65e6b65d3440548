package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder accumulates one partial config per source. Errors are joined
// and reported by build, so the chain never has to be interrupted.
type configBuilder struct {
	layers []*StructuredConfig
	args   []string
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]*StructuredConfig, 0, 3)}
}

func (b *configBuilder) add(layer *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
	} else if layer != nil {
		b.layers = append(b.layers, layer)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	layer := new(StructuredConfig)
	return b.add(layer, parseEnv(layer))
}

// withFlags parses args without the program name. Positional arguments are
// kept for the client commands.
func (b *configBuilder) withFlags(args []string) *configBuilder {
	layer, rest, err := parseFlags(args)
	b.args = rest
	return b.add(layer, err)
}

// withJSON loads the file named by the last layer that set JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			path = layer.JSONFilePath
		}
	}
	if path == "" {
		return b
	}
	return b.add(parseJSON(path))
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return merged, nil
}

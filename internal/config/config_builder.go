package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

// Names of the configuration sources, used in error messages.
const (
	sourceEnv      = "env"
	sourceFlags    = "flags"
	sourceJSON     = "json"
	sourceDefaults = "defaults"
)

// configLayer is one source of configuration values.
type configLayer struct {
	source string
	cfg    *StructuredConfig
}

// configBuilder collects layers in precedence order; the first layer that
// sets a field wins.
type configBuilder struct {
	layers []configLayer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]configLayer, 0, 4),
	}
}

func (b *configBuilder) add(source string, cfg *StructuredConfig) *configBuilder {
	b.layers = append(b.layers, configLayer{source: source, cfg: cfg})
	return b
}

func (b *configBuilder) fail(source string, err error) *configBuilder {
	b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(config, layer.cfg); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", layer.source, err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		return b.fail(sourceEnv, err)
	}
	return b.add(sourceEnv, envCfg)
}

// withFlags adds the flags that were set explicitly. Flag defaults are left
// to withDefaults so that they cannot shadow the JSON file.
func (b *configBuilder) withFlags(fs *pflag.FlagSet, flags *StructuredConfig) *configBuilder {
	if fs == nil || flags == nil {
		return b
	}
	return b.add(sourceFlags, changedFlags(fs, flags))
}

// withJSON loads the file named by the first layer that sets a config path.
func (b *configBuilder) withJSON() *configBuilder {
	for _, layer := range b.layers {
		if layer.cfg.JSONFilePath == "" {
			continue
		}
		jsonCfg, err := parseJSON(layer.cfg.JSONFilePath)
		if err != nil {
			return b.fail(sourceJSON, err)
		}
		return b.add(sourceJSON, jsonCfg)
	}
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(sourceDefaults, Defaults())
}

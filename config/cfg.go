// Package config defines program configuration and prepares shared services
// (logging) from it. Defaults come from an embedded YAML template expanded
// with gencfg; a user-supplied configuration file is superimposed on top and
// the result is sanitized and validated.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
	"go.uber.org/multierr"

	"stylo/plugin"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	// RendererConfig selects renderer behavior: vendor prefixes for keyframe
	// blocks and the plugin chain styles pass through before serialization.
	RendererConfig struct {
		KeyframePrefixes []string `yaml:"keyframe_prefixes"`
		Plugins          []string `yaml:"plugins" validate:"dive,oneof=unit important"`
		DefaultUnit      string   `yaml:"default_unit" validate:"omitempty,oneof=px em rem pt"`
	}

	// DocumentConfig controls output of rendered stylesheet documents.
	DocumentConfig struct {
		OutputNameTemplate string `yaml:"output_name_template" validate:"required"`
		Verify             bool   `yaml:"verify"`
	}

	Config struct {
		Version  int            `yaml:"version" validate:"eq=1"`
		Document DocumentConfig `yaml:"document"`
		Renderer RendererConfig `yaml:"renderer"`
		Logging  LoggingConfig  `yaml:"logging"`
	}
)

const outputNameTemplateFieldName = "output_name_template"

// The output name template is itself a text/template - keep gencfg from
// expanding it while processing defaults.
var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(outputNameTemplateFieldName),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

// Dump serializes active configuration back to YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// BuildPlugins maps configured plugin names to plugin implementations,
// accumulating errors for unknown names.
func (conf *RendererConfig) BuildPlugins() ([]plugin.Plugin, error) {
	var errs error
	out := make([]plugin.Plugin, 0, len(conf.Plugins))
	for _, name := range conf.Plugins {
		switch name {
		case "unit":
			unit := conf.DefaultUnit
			if len(unit) == 0 {
				unit = "px"
			}
			out = append(out, plugin.Unit(unit))
		case "important":
			out = append(out, plugin.Important())
		default:
			errs = multierr.Append(errs, fmt.Errorf("unknown renderer plugin %q", name))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

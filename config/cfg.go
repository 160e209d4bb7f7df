// Package config defines program configuration and prepares the standard
// logger and debug reporter.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
)

//go:embed config.yaml
var defaultConfig []byte

type (
	// GeneratorConfig selects how animation identifiers are produced.
	GeneratorConfig struct {
		// Names is the name source: "uuid" (unique across runs) or
		// "sequence" (deterministic, process-local).
		Names string `yaml:"names"`
		// Prefix seeds generated keyframe names; slugged before use.
		Prefix string `yaml:"prefix,omitempty"`
	}

	// OutputConfig controls the shape of emitted stylesheets.
	OutputConfig struct {
		// Header emits a generated-by comment at the top of every sheet.
		Header bool `yaml:"header"`
	}

	Config struct {
		Version   int             `yaml:"version"`
		Generator GeneratorConfig `yaml:"generator"`
		Output    OutputConfig    `yaml:"output"`
		Logging   LoggingConfig   `yaml:"logging"`
		Reporting ReporterConfig  `yaml:"reporting"`
	}
)

// LoadConfiguration builds active configuration: embedded defaults overlaid
// with values from fname (when non-empty). Unknown fields in the user file
// are rejected.
func LoadConfiguration(fname string) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(defaultConfig, &conf); err != nil {
		return nil, fmt.Errorf("broken embedded default configuration: %w", err)
	}

	if len(fname) > 0 {
		data, err := os.ReadFile(fname)
		if err != nil {
			return nil, fmt.Errorf("unable to read configuration '%s': %w", fname, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&conf); err != nil {
			return nil, fmt.Errorf("unable to parse configuration '%s': %w", fname, err)
		}
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("bad configuration: %w", err)
	}
	return &conf, nil
}

func (conf *Config) validate() error {
	var err error
	if conf.Version != 1 {
		err = multierr.Append(err, fmt.Errorf("unsupported version %d", conf.Version))
	}
	switch conf.Generator.Names {
	case "uuid", "sequence":
	default:
		err = multierr.Append(err, fmt.Errorf("unknown name source '%s' (supported: uuid, sequence)", conf.Generator.Names))
	}
	switch conf.Logging.ConsoleLogger.Level {
	case "none", "normal", "debug":
	default:
		err = multierr.Append(err, fmt.Errorf("unknown console log level '%s'", conf.Logging.ConsoleLogger.Level))
	}
	switch conf.Logging.FileLogger.Level {
	case "none", "normal", "debug":
	default:
		err = multierr.Append(err, fmt.Errorf("unknown file log level '%s'", conf.Logging.FileLogger.Level))
	}
	switch conf.Logging.FileLogger.Mode {
	case "", "append", "overwrite":
	default:
		err = multierr.Append(err, fmt.Errorf("unknown file log mode '%s'", conf.Logging.FileLogger.Mode))
	}
	return err
}

// Dump serializes active configuration to YAML.
func Dump(conf *Config) ([]byte, error) {
	data, err := yaml.Marshal(conf)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize configuration: %w", err)
	}
	return data, nil
}

// DefaultConfiguration returns the embedded default configuration text.
func DefaultConfiguration() []byte {
	return bytes.Clone(defaultConfig)
}

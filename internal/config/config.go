package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/aretw0/arkhe/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "arkhe.yaml"

// Config holds the CLI settings.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Demo     Demo   `mapstructure:"demo"`
	// Protocols overrides the protocol of builtin handovers by id.
	Protocols map[string]domain.PreservationProtocol `mapstructure:"protocols"`
}

// Demo configures the demo hypergraph.
type Demo struct {
	Graph string `mapstructure:"graph"`
	Node  string `mapstructure:"node"`
	Space string `mapstructure:"space"`
	Input int    `mapstructure:"input"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Demo: Demo{
			Graph: "demo",
			Node:  "n1",
			Space: "R",
			Input: 5,
		},
		Protocols: map[string]domain.PreservationProtocol{},
	}
}

// Load reads a YAML file over the defaults.
// A missing file yields the defaults unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document does not mention.
func Parse(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if raw == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(protocolHook),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

var protocolType = reflect.TypeOf(domain.Conservative)

// protocolHook only accepts protocol names; numbers and bools would otherwise be
// weakly decoded into values outside the enumeration.
func protocolHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != protocolType || from == protocolType {
		return data, nil
	}
	if from.Kind() != reflect.String {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnknownProtocol, data)
	}
	return domain.ParseProtocol(data.(string))
}

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"almanac/internal/almanac"
)

const (
	PartBoth = "both"

	defaultLevel    = "info"
	defaultEncoding = "console"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds CLI settings.
type Config struct {
	Part     string `yaml:"part" validate:"oneof=seeds ranges both 1 2"`
	Validate *bool  `yaml:"validate"`
	Merge    *bool  `yaml:"merge"`
	Log      Log    `yaml:"log"`
}

// Log configures the zap logger.
type Log struct {
	Level    string `yaml:"level" validate:"oneof=debug info warn error"`
	Encoding string `yaml:"encoding" validate:"oneof=console json"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Part == "" {
		c.Part = PartBoth
	}

	if c.Validate == nil {
		c.Validate = boolPtr(true)
	}

	if c.Merge == nil {
		c.Merge = boolPtr(true)
	}

	if c.Log.Level == "" {
		c.Log.Level = defaultLevel
	}

	if c.Log.Encoding == "" {
		c.Log.Encoding = defaultEncoding
	}
}

// Parts resolves the configured part selection.
func (c *Config) Parts() ([]almanac.Part, error) {
	if c.Part == PartBoth {
		return almanac.AllParts, nil
	}

	p, err := almanac.ParsePart(c.Part)
	if err != nil {
		return nil, err
	}

	return []almanac.Part{p}, nil
}

// SolveOptions translates the settings into almanac solve options.
func (c *Config) SolveOptions() []almanac.SolveOption {
	var opts []almanac.SolveOption
	if c.Validate != nil && !*c.Validate {
		opts = append(opts, almanac.WithoutValidation())
	}

	if c.Merge != nil && !*c.Merge {
		opts = append(opts, almanac.WithoutMerge())
	}

	return opts
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

func boolPtr(b bool) *bool {
	return &b
}

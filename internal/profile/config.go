package profile

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config lists the sweeps to run.
type Config struct {
	// Samples applies to sweeps that do not set their own count.
	Samples int     `yaml:"samples"`
	Sweeps  []Sweep `yaml:"sweeps"`
}

// LoadConfig loads sweeps from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. A file that lists
// sweeps replaces the default list.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := validateSamples(c.Samples); err != nil {
		return err
	}
	if len(c.Sweeps) == 0 {
		return errNoSweeps
	}
	for i, s := range c.Sweeps {
		if _, ok := Lookup(s.Function); !ok {
			return fmt.Errorf("sweep %d: %w: %q", i, errUnknownFunction, s.Function)
		}
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

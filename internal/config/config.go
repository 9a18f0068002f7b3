package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level brio.yaml project configuration.
type Config struct {
	// Entry is the entry-point source file, relative to the project file.
	Entry string `yaml:"entry,omitempty"`
	// OutDir is the configured output directory. The build command does not
	// read it; it writes to -o or beside the source file.
	OutDir string `yaml:"outDir,omitempty"`
	// Cache enables the driver-level check cache.
	Cache bool `yaml:"cache,omitempty"`
}

// Default returns the configuration used when no project file exists.
func Default() *Config {
	return &Config{OutDir: "dist", Cache: false}
}

// Load reads a brio.yaml file. A missing file is not an error; the defaults
// are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

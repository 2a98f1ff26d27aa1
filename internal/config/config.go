package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional ledger-converter.yaml configuration.
type Config struct {
	// OutputDir is where convert writes workbooks.
	OutputDir string `yaml:"output_dir"`
	// ListenAddr is the serve command's bind address.
	ListenAddr string `yaml:"listen_addr"`
	// BannerMarkers are extra page-banner substrings to suppress, for
	// documents whose organization name or address lines would otherwise
	// be counted as skipped lines.
	BannerMarkers []string `yaml:"banner_markers,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		OutputDir:  "output",
		ListenAddr: ":8080",
	}
}

// Load reads a YAML config file from disk. Fields left out of the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	return cfg, nil
}

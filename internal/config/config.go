// Package config holds the settings of one ingestion run: an optional YAML
// file overlaid with command-line flags.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Pavani8370/Multi-source/pkg/payerloader"
)

// Config is the run configuration.
type Config struct {
	Payer     string `yaml:"payer"`
	Source    string `yaml:"source,omitempty"`
	LogFormat string `yaml:"log_format,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
}

// Load reads a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", payerloader.ErrConfigNotFound, path)
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge overlays the non-empty fields of o onto c.
func (c *Config) Merge(o Config) {
	if o.Payer != "" {
		c.Payer = o.Payer
	}
	if o.Source != "" {
		c.Source = o.Source
	}
	if o.LogFormat != "" {
		c.LogFormat = o.LogFormat
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

// Validate checks the payer against the accepted set and that file-based
// payers name a source. It touches no files.
func (c *Config) Validate() error {
	if c.Payer == "" {
		return fmt.Errorf("%w: --payer is required (one of %s)",
			payerloader.ErrMissingArgument, strings.Join(payerloader.Payers(), ", "))
	}
	if !slices.Contains(payerloader.Payers(), c.Payer) {
		return fmt.Errorf("%w: payer %q (want one of %s)",
			payerloader.ErrInvalidArgument, c.Payer, strings.Join(payerloader.Payers(), ", "))
	}
	if payerloader.IsFileBased(c.Payer) && c.Source == "" {
		return fmt.Errorf("%w: --source is required for file-based loading (payer %s)",
			payerloader.ErrMissingArgument, c.Payer)
	}
	return nil
}

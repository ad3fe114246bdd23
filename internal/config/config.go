package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the search scope configuration (~/.aws-search.yml).
type Config struct {
	AWSAccounts []string `yaml:"aws_accounts"`
	AWSRegions  []string `yaml:"aws_regions"`
}

// DefaultPath returns the config file path (~/.aws-search.yml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".aws-search.yml"
	}
	return filepath.Join(home, ".aws-search.yml")
}

// Load reads the configuration from the given path. An absent or malformed
// file is an error: the search scope has to come from somewhere.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no configuration found, please create %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(cfg.AWSAccounts) == 0 {
		return nil, fmt.Errorf("config %s: aws_accounts must list at least one account", path)
	}
	if len(cfg.AWSRegions) == 0 {
		return nil, fmt.Errorf("config %s: aws_regions must list at least one region", path)
	}

	return &cfg, nil
}

// Scope resolves the account and region lists for a run. Command-line
// overrides replace the configured lists entirely, they never merge.
func (c *Config) Scope(accounts, regions []string) ([]string, []string) {
	resolvedAccounts := c.AWSAccounts
	if len(accounts) > 0 {
		resolvedAccounts = accounts
	}

	resolvedRegions := c.AWSRegions
	if len(regions) > 0 {
		resolvedRegions = regions
	}

	return resolvedAccounts, resolvedRegions
}

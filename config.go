package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config controls where puzzle inputs come from and where they are cached.
type Config struct {
	Version int `yaml:"version"`
	// SessionFile holds the adventofcode.com session cookie.
	SessionFile string `yaml:"session_file"`
	// CacheDir is where inputs are stored as <year>/<day>.input.
	CacheDir string `yaml:"cache_dir"`
	BaseURL  string `yaml:"base_url"`
}

// DefaultConfig is used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		SessionFile: filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"),
		CacheDir:    ".",
		BaseURL:     "https://adventofcode.com",
	}
}

// LoadConfig reads a YAML config file. Unset fields take their default.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(b)
}

func parseConfig(b []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Version = 0
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	if cfg.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d", cfg.Version)
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	return cfg, nil
}

// defaultConfigPath is where the config lives when neither -config nor
// $AOC_CONFIG names one.
func defaultConfigPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "aoc", "config.yaml")
}

// resolveConfig loads the config named by -config, or else $AOC_CONFIG. A
// file named either way must exist. Without both, a missing default file
// means DefaultConfig.
func resolveConfig(flagPath string) (*Config, error) {
	if p := Or(flagPath, os.Getenv("AOC_CONFIG")); p != "" {
		return LoadConfig(p)
	}
	cfg, err := LoadConfig(defaultConfigPath())
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

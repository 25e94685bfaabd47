// Package config loads the CLI's file configuration from
// ~/.frauddesk/config.yaml. A missing file is not an error; every field
// has a usable default.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL = "http://localhost:4000/api"
	DefaultTimeout = 30 * time.Second
)

// Duration parses "30s" style values from YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config is the client-side file configuration.
type Config struct {
	// BaseURL is the fraud API root, including the /api prefix.
	BaseURL string `yaml:"base_url"`
	// Timeout bounds every API request.
	Timeout Duration `yaml:"timeout"`
	// StateDir holds the persisted session files; empty uses
	// ~/.frauddesk/state.
	StateDir string `yaml:"state_dir"`
	// CacheDir persists API read caches across runs; empty keeps the
	// cache in memory only.
	CacheDir string `yaml:"cache_dir"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: Duration(DefaultTimeout),
	}
}

// DefaultPath returns ~/.frauddesk/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".frauddesk", "config.yaml"), nil
}

// Load reads the configuration file at path, or the default path when path
// is empty. A missing file yields Default(). Zero-value fields are filled
// with defaults so a partial file works.
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Default(), err
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = Duration(DefaultTimeout)
	}
	return cfg, nil
}

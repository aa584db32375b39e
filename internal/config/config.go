// Package config handles configuration for the maudegw binary.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Config holds the maudegw configuration.
type Config struct {
	Server ServerConfig `json:"server" yaml:"server"`
	Maude  MaudeConfig  `json:"maude" yaml:"maude"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port"`
}

// MaudeConfig holds interpreter configuration.
type MaudeConfig struct {
	// Path to the Maude binary; empty means discover via PATH.
	Path string `json:"path" yaml:"path"`
	// ModuleFiles are .maude files loaded by each interpreter at startup.
	ModuleFiles []string `json:"module_files" yaml:"module_files"`
	// PoolSize is the number of interpreters the server runs.
	PoolSize int `json:"pool_size" yaml:"pool_size"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 7423,
		},
		Maude: MaudeConfig{
			PoolSize: 2,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".maudegw.yaml"
	}

	return filepath.Join(home, ".maudegw.yaml")
}

// Load reads configuration from path, falling back to defaults for a
// missing file. An empty path means the default location.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to path (default location when empty).
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}

	return nil
}

// Addr returns the server listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

package i18nmsg

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config maps feature namespaces to message overrides.
type Config struct {
	Messages map[string]map[string]string `yaml:"messages"`
}

// LoadConfig reads a message catalog from disk.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open messages config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// LoadConfigFromReader constructs a Config from an io.Reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read messages config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal messages config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects blank namespaces and keys.
func (c *Config) Validate() error {
	for ns, entries := range c.Messages {
		if strings.TrimSpace(ns) == "" {
			return fmt.Errorf("messages config: namespace cannot be empty")
		}
		for key := range entries {
			if strings.TrimSpace(key) == "" {
				return fmt.Errorf("messages config: namespace %s has an empty key", ns)
			}
		}
	}
	return nil
}

// Catalog builds the Translator backed by this configuration.
func (c *Config) Catalog() *Catalog {
	if c == nil {
		return NewCatalog(nil)
	}
	return NewCatalog(c.Messages)
}

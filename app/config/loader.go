package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the category configuration
type Loader struct {
	path string
}

// NewLoader creates a new configuration loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and validates the category configuration file
func (l *Loader) Load() (*Config, error) {
	config, err := l.loadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", l.path, err)
	}

	if err := l.validate(config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", l.path, err)
	}

	return config, nil
}

// loadFile loads a single YAML configuration file
func (l *Loader) loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &config, nil
}

// validate validates the configuration
func (l *Loader) validate(config *Config) error {
	if len(config.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}

	seen := make(map[string]bool, len(config.Categories))
	for i, cat := range config.Categories {
		if cat.Key == "" {
			return fmt.Errorf("category at index %d: key is required", i)
		}
		if cat.Name == "" {
			return fmt.Errorf("category %s: name is required", cat.Key)
		}
		if seen[cat.Key] {
			return fmt.Errorf("duplicate category key: %s", cat.Key)
		}
		seen[cat.Key] = true

		if len(cat.Sources) == 0 {
			return fmt.Errorf("category %s: at least one source is required", cat.Key)
		}
		for j, src := range cat.Sources {
			if src.Name == "" {
				return fmt.Errorf("category %s: source at index %d: name is required", cat.Key, j)
			}
			if src.URL == "" {
				return fmt.Errorf("category %s: source %s: URL is required", cat.Key, src.Name)
			}
		}
	}

	// Group aliases must resolve to known category keys and must not
	// shadow a category key.
	for name, keys := range config.Groups {
		if seen[name] {
			return fmt.Errorf("group %s conflicts with a category key", name)
		}
		if len(keys) == 0 {
			return fmt.Errorf("group %s must reference at least one category", name)
		}
		for _, key := range keys {
			if !seen[key] {
				return fmt.Errorf("group %s references unknown category: %s", name, key)
			}
		}
	}

	return nil
}

// Package config reads and writes building configurations as YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gosteel/internal/building"
)

// Load reads a building configuration from a YAML file.
func Load(path string) (building.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return building.Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a building configuration. The dimensions block is decoded
// into the variant named by the type field.
func Parse(data []byte) (building.Config, error) {
	var cfg building.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return building.Config{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	return cfg, nil
}

// LoadOverrides reads template overrides from a YAML file. Overrides
// usually omit the type; their dimensions are then decoded as those of
// building type t and the returned type stays empty.
func LoadOverrides(path string, t building.Type) (building.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return building.Config{}, fmt.Errorf("reading overrides file: %w", err)
	}
	return ParseOverrides(data, t)
}

// ParseOverrides decodes template overrides; see LoadOverrides.
func ParseOverrides(data []byte, t building.Type) (building.Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return building.Config{}, fmt.Errorf("parsing overrides YAML: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return building.Config{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return building.Config{}, fmt.Errorf("parsing overrides YAML: expected a mapping, got %s", root.Tag)
	}

	typed := hasKey(root, "type")
	if !typed {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "type"},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(t)},
		)
	}

	var cfg building.Config
	if err := root.Decode(&cfg); err != nil {
		return building.Config{}, fmt.Errorf("parsing overrides YAML: %w", err)
	}
	if !typed {
		cfg.Type = ""
	}
	return cfg, nil
}

func hasKey(mapping *yaml.Node, key string) bool {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return true
		}
	}
	return false
}

// Marshal renders cfg as YAML.
func Marshal(cfg building.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config YAML: %w", err)
	}
	return data, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg building.Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultVersion  = "1"
	defaultLinkType = "Link"
)

//go:embed defaults.yaml
var defaultTables []byte

// Default returns the built-in tables.
func Default() *Tables {
	t, err := Parse(defaultTables)
	if err != nil {
		panic(fmt.Sprintf("embedded tables: %v", err))
	}

	return t
}

// LoadFile loads and parses a YAML tables file from the given path.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file %s: %w", path, err)
	}

	return Parse(data)
}

// Load returns the tables at path, or the built-in tables when path is empty.
func Load(path string) (*Tables, error) {
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

// Parse parses YAML data into Tables.
func Parse(data []byte) (*Tables, error) {
	var t Tables

	err := yaml.Unmarshal(data, &t)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tables YAML: %w", err)
	}

	applyDefaults(&t)

	return &t, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(t *Tables) {
	if t.Version == "" {
		t.Version = defaultVersion
	}

	if t.LinkType == "" {
		t.LinkType = defaultLinkType
	}
}

// Marshal serializes Tables to YAML.
func Marshal(t *Tables) ([]byte, error) {
	return yaml.Marshal(t)
}

// WriteFile writes Tables to the given path.
func WriteFile(t *Tables, path string) error {
	data, err := Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal tables: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write tables file %s: %w", path, err)
	}

	return nil
}

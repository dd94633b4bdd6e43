package model

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// LoadFile loads and parses a graph file (YAML or JSON) from the given path.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML (or JSON) data into a Graph.
func Parse(data []byte) (*Graph, error) {
	var g Graph

	err := yaml.Unmarshal(data, &g)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graph YAML: %w", err)
	}

	applyDefaults(&g)

	return &g, nil
}

// applyDefaults fills fields upstream parsers commonly leave empty.
func applyDefaults(g *Graph) {
	// drop null entries so passes never see nil descriptors
	g.Models = compact(g.Models)
	g.Operations = compact(g.Operations)

	for _, m := range g.Models {
		applyModelDefaults(m)
	}

	for _, op := range g.Operations {
		if op.OperationIDOriginal == "" {
			op.OperationIDOriginal = op.OperationID
		}

		op.Responses = compact(op.Responses)
		op.AllParams = compact(op.AllParams)
	}
}

func applyModelDefaults(m *Model) {
	m.Properties = compact(m.Properties)

	for _, p := range m.Properties {
		if p.BaseName == "" {
			p.BaseName = p.Name
		}

		if p.DataTypeWithEnum == "" {
			p.DataTypeWithEnum = p.DataType
		}
	}
}

func compact[T any](items []*T) []*T {
	if items == nil {
		return nil
	}

	out := items[:0]

	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}

	return out
}

// ParseModel parses a single model descriptor, as produced by static
// templates and written by model writers.
func ParseModel(data []byte) (*Model, error) {
	var m Model

	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse model YAML: %w", err)
	}

	applyModelDefaults(&m)

	return &m, nil
}

// MarshalModel serializes a single model descriptor to YAML.
func MarshalModel(m *Model) ([]byte, error) {
	return yaml.Marshal(m)
}

// Marshal serializes a Graph to YAML.
func Marshal(g *Graph) ([]byte, error) {
	return yaml.Marshal(g)
}

// WriteFile writes a Graph to the given path, creating parent directories.
func WriteFile(g *Graph, path string) error {
	data, err := Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal graph: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write graph file %s: %w", path, err)
	}

	return nil
}

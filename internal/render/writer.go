// Package render writes model descriptors for the downstream renderer.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"docref-generator/internal/model"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

const descriptorExt = ".yaml"

// FileWriter writes one <Name>.yaml file per model into Dir.
type FileWriter struct {
	Dir string
}

// NewFileWriter creates a FileWriter for dir.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{Dir: dir}
}

// WriteModel writes m, creating Dir if it doesn't exist.
func (w *FileWriter) WriteModel(m *model.Model) error {
	if m.Name == "" || strings.ContainsAny(m.Name, `/\`) || m.Name == "." || m.Name == ".." {
		return fmt.Errorf("invalid model name %q", m.Name)
	}

	data, err := model.MarshalModel(m)
	if err != nil {
		return fmt.Errorf("marshaling model %s: %w", m.Name, err)
	}

	err = os.MkdirAll(w.Dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	err = os.WriteFile(w.Path(m.Name), data, filePerm)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", m.Name+descriptorExt, err)
	}

	return nil
}

// WriteModels writes every model, stopping at the first failure.
func (w *FileWriter) WriteModels(models []*model.Model) error {
	for _, m := range models {
		if err := w.WriteModel(m); err != nil {
			return err
		}
	}

	return nil
}

// Path returns the file a model named name is written to.
func (w *FileWriter) Path(name string) string {
	return filepath.Join(w.Dir, name+descriptorExt)
}

// MemoryWriter keeps written models in memory, in write order.
type MemoryWriter struct {
	Models []*model.Model
}

// WriteModel records m.
func (w *MemoryWriter) WriteModel(m *model.Model) error {
	w.Models = append(w.Models, m)
	return nil
}

// Names returns the names of the recorded models.
func (w *MemoryWriter) Names() []string {
	names := make([]string, 0, len(w.Models))
	for _, m := range w.Models {
		names = append(names, m.Name)
	}

	return names
}

// Find returns the recorded model with the given name, or nil.
func (w *MemoryWriter) Find(name string) *model.Model {
	i := slices.IndexFunc(w.Models, func(m *model.Model) bool { return m.Name == name })
	if i < 0 {
		return nil
	}

	return w.Models[i]
}

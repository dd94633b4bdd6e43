// Package static renders the fixed model descriptors that have no
// counterpart in the source contract (containers, pagination metadata).
//
// Each entry of the staticModels table names a text/template file. The
// template is executed with TemplateData and must produce a YAML model
// descriptor in the graph file format.
package static

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"text/template"

	"docref-generator/internal/config"
	"docref-generator/internal/diagnostic"
	"docref-generator/internal/model"
	"docref-generator/internal/naming"
)

//go:embed templates/*.yaml.tmpl
var builtin embed.FS

// ModelWriter receives finished model descriptors.
type ModelWriter interface {
	WriteModel(m *model.Model) error
}

// TemplateData is the data passed to every static template.
type TemplateData struct {
	// Name is the model name from the table entry.
	Name string
	// ModelPackage qualifies imports.
	ModelPackage string
}

// Builtin returns the embedded templates.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtin, "templates")
	if err != nil {
		panic(fmt.Sprintf("static: embedded templates: %v", err))
	}

	return sub
}

// Templates returns the template source for dir: the embedded templates
// when dir is empty, the directory otherwise.
func Templates(dir string) fs.FS {
	if dir == "" {
		return Builtin()
	}

	return os.DirFS(dir)
}

// Emitter renders static descriptors.
type Emitter struct {
	entries      []config.StaticModel
	templates    fs.FS
	modelPackage string
	logger       *slog.Logger
}

// NewEmitter creates an Emitter for entries. A nil templates uses Builtin(),
// a nil logger slog.Default().
func NewEmitter(entries []config.StaticModel, templates fs.FS, modelPackage string, logger *slog.Logger) *Emitter {
	if templates == nil {
		templates = Builtin()
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Emitter{
		entries:      entries,
		templates:    templates,
		modelPackage: modelPackage,
		logger:       logger,
	}
}

// Emit renders every entry and hands it to w. A failing entry is logged and
// recorded as a warning; the others are still emitted. It returns the number
// of descriptors written.
func (e *Emitter) Emit(w ModelWriter, diags *diagnostic.Diagnostics) int {
	written := 0

	for _, entry := range e.entries {
		m, err := e.Render(entry)
		if err != nil {
			e.warn(diags, "static_template_failed", entry, err)
			continue
		}

		if err := w.WriteModel(m); err != nil {
			e.warn(diags, "static_write_failed", entry, err)
			continue
		}

		written++
	}

	return written
}

// Render executes the template of entry and decodes the result.
func (e *Emitter) Render(entry config.StaticModel) (*model.Model, error) {
	src, err := fs.ReadFile(e.templates, entry.Template)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", entry.Template, err)
	}

	tmpl, err := template.New(entry.Template).
		Funcs(template.FuncMap{"lowerCamel": naming.LowerCamel}).
		Option("missingkey=error").
		Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", entry.Template, err)
	}

	var buf bytes.Buffer

	data := TemplateData{Name: entry.Name, ModelPackage: e.modelPackage}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", entry.Template, err)
	}

	m, err := model.ParseModel(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("template %s did not produce a model: %w", entry.Template, err)
	}

	switch m.Name {
	case "":
		m.Name = entry.Name
	case entry.Name:
	default:
		return nil, fmt.Errorf("template %s declares model %q, want %q", entry.Template, m.Name, entry.Name)
	}

	return m, nil
}

func (e *Emitter) warn(diags *diagnostic.Diagnostics, code string, entry config.StaticModel, err error) {
	e.logger.Warn("static model skipped",
		slog.String("model", entry.Name),
		slog.String("template", entry.Template),
		slog.Any("error", err))

	if diags != nil {
		diags.AddWarning(code, err.Error(), entry.Name, entry.Template)
	}
}

package static

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docref-generator/internal/config"
	"docref-generator/internal/diagnostic"
	"docref-generator/internal/model"
)

type recorder struct {
	models []*model.Model
	failOn string
}

func (r *recorder) WriteModel(m *model.Model) error {
	if m.Name == r.failOn {
		return errors.New("disk full")
	}

	r.models = append(r.models, m)

	return nil
}

func (r *recorder) names() []string {
	var out []string
	for _, m := range r.models {
		out = append(out, m.Name)
	}

	return out
}

func TestBuiltinTemplates(t *testing.T) {
	entries := config.Default().StaticModels
	e := NewEmitter(entries, nil, "org.example.model", nil)

	w := &recorder{}
	diags := &diagnostic.Diagnostics{}

	n := e.Emit(w, diags)

	assert.Equal(t, len(entries), n)
	assert.Empty(t, diags.Warnings)
	assert.Equal(t, []string{"BillSummaryContainer", "MongoIdContainer", "LinkContainer", "Meta"}, w.names())

	container := w.models[0]
	assert.True(t, container.IsMongoDocument)
	assert.Equal(t, []string{"org.example.model.BillSummary"}, container.Imports)
	assert.Equal(t, "mongoId", container.Properties[0].Name)

	links := w.models[2]
	assert.True(t, links.IsLinkContainer)
	assert.Equal(t, "Link", links.FindProperty("links").ComplexType)

	mongoID := w.models[1]
	assert.Equal(t, "_id", mongoID.Properties[0].BaseName)
	assert.Equal(t, "String", mongoID.Properties[0].DataTypeWithEnum)
}

func TestEmitContinuesPastFailures(t *testing.T) {
	templates := fstest.MapFS{
		"a.yaml.tmpl":     {Data: []byte("name: {{ .Name }}\nproperties:\n  - name: x\n    dataType: String\n")},
		"named.yaml.tmpl": {Data: []byte("properties:\n  - name: y\n")},
		"wrong.yaml.tmpl": {Data: []byte("name: Other\n")},
		"bad.yaml.tmpl":   {Data: []byte("name: {{ .Name \n")},
	}

	entries := []config.StaticModel{
		{Name: "A", Template: "a.yaml.tmpl"},
		{Name: "Missing", Template: "missing.yaml.tmpl"},
		{Name: "Named", Template: "named.yaml.tmpl"},
		{Name: "Wrong", Template: "wrong.yaml.tmpl"},
		{Name: "Bad", Template: "bad.yaml.tmpl"},
	}

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	w := &recorder{}
	diags := &diagnostic.Diagnostics{}

	n := NewEmitter(entries, templates, "", logger).Emit(w, diags)

	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"A", "Named"}, w.names())
	assert.Equal(t, "y", w.models[1].Properties[0].BaseName)

	require.Len(t, diags.Warnings, 3)
	assert.Equal(t, []string{"static_template_failed", "static_template_failed", "static_template_failed"}, diags.Codes())
	assert.Equal(t, "Missing", diags.Warnings[0].Subject)
	assert.Contains(t, diags.Warnings[0].Message, "failed to read template missing.yaml.tmpl")
	assert.Contains(t, diags.Warnings[1].Message, `declares model "Other", want "Wrong"`)
	assert.Contains(t, diags.Warnings[2].Message, "failed to parse template bad.yaml.tmpl")

	assert.Contains(t, logs.String(), "static model skipped")
	assert.False(t, diags.HasErrors())
}

func TestEmitWriteFailure(t *testing.T) {
	templates := fstest.MapFS{
		"a.yaml.tmpl": {Data: []byte("name: {{ .Name }}\n")},
	}

	entries := []config.StaticModel{
		{Name: "A", Template: "a.yaml.tmpl"},
		{Name: "B", Template: "a.yaml.tmpl"},
	}

	w := &recorder{failOn: "A"}
	diags := &diagnostic.Diagnostics{}

	n := NewEmitter(entries, templates, "", slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))).Emit(w, diags)

	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"B"}, w.names())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "static_write_failed", diags.Warnings[0].Code)
}

func TestTemplates(t *testing.T) {
	_, err := Templates("").Open("meta.yaml.tmpl")
	require.NoError(t, err)

	dir := t.TempDir()
	_, err = Templates(dir).Open("meta.yaml.tmpl")
	assert.Error(t, err)
}

package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	t.Setenv("DOCREF_TABLES", "tables.yaml")
	t.Setenv("DOCREF_IMPLICIT_HEADERS", "true")
	t.Setenv("DOCREF_TITLE", "accounts")

	o, err := LoadOptions()
	require.NoError(t, err)

	assert.Equal(t, "tables.yaml", o.TablesPath)
	assert.True(t, o.ImplicitHeaders)
	assert.False(t, o.UseTags)
	assert.Equal(t, "accounts", o.Title)
	assert.Equal(t, "org.openapitools.model", o.ModelPackage)
	assert.Equal(t, "info", o.LogLevel)
	assert.Equal(t, "text", o.LogFormat)
}

func TestLoadOptionsInvalidBool(t *testing.T) {
	t.Setenv("DOCREF_USE_TAGS", "maybe")

	_, err := LoadOptions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing environment")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := Options{LogLevel: "debug", LogFormat: "json"}.NewLogger(&buf)
	require.NoError(t, err)

	logger.Debug("remapped property", "model", "Person")
	assert.Contains(t, buf.String(), `"msg":"remapped property"`)
	assert.Contains(t, buf.String(), `"model":"Person"`)

	_, err = Options{LogFormat: "xml"}.NewLogger(&buf)
	require.Error(t, err)

	_, err = Options{LogLevel: "loud"}.NewLogger(&buf)
	require.Error(t, err)
}

package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Options select the generation mode of a run.
type Options struct {
	// TablesPath points to a tables file; empty uses the built-in tables.
	TablesPath string `env:"DOCREF_TABLES"`

	// ImplicitHeaders removes header parameters from operations; renderers
	// declare them implicitly.
	ImplicitHeaders bool `env:"DOCREF_IMPLICIT_HEADERS"`

	// UseTags groups operations by primary tag instead of by path segment.
	UseTags bool `env:"DOCREF_USE_TAGS"`

	// Title overrides the title derived from the API title.
	Title string `env:"DOCREF_TITLE"`

	// TemplateDir overrides the built-in static model templates.
	TemplateDir string `env:"DOCREF_TEMPLATE_DIR"`

	// ModelPackage is passed to static model templates.
	ModelPackage string `env:"DOCREF_MODEL_PACKAGE" envDefault:"org.openapitools.model"`

	LogLevel  string `env:"DOCREF_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"DOCREF_LOG_FORMAT" envDefault:"text"`
}

// LoadOptions reads Options from the environment.
func LoadOptions() (Options, error) {
	var o Options
	if err := env.Parse(&o); err != nil {
		return Options{}, fmt.Errorf("parsing environment: %w", err)
	}

	return o, nil
}

// NewLogger builds the run logger: text by default, JSON when LogFormat is "json".
func (o Options) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if o.LogLevel != "" {
		if err := level.UnmarshalText([]byte(o.LogLevel)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", o.LogLevel, err)
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(o.LogFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (expected \"text\" or \"json\")", o.LogFormat)
	}
}

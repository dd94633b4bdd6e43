package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"docref-generator/internal/config"
	"docref-generator/internal/diagnostic"
	"docref-generator/internal/model"
	"docref-generator/internal/pipeline"
	"docref-generator/internal/render"
	"docref-generator/internal/static"
)

const (
	graphFile = "graph.yaml"
	modelsDir = "models"
)

type EnrichCmd struct {
	Graph string `arg:"" help:"Graph file (YAML or JSON)." type:"existingfile"`
	Out   string `help:"Output directory." default:"generated" short:"o"`

	Tables          string `help:"Configuration tables file (default: built-in tables)."`
	ImplicitHeaders bool   `help:"Drop header parameters from operations." name:"implicit-headers"`
	UseTags         bool   `help:"Group operations by tag instead of path segment." name:"use-tags"`
	Title           string `help:"Project title (default: derived from the API title)."`
	TemplateDir     string `help:"Directory overriding the built-in static templates." name:"template-dir"`
	ModelPackage    string `help:"Package used in static model imports." name:"model-package"`
	Dump            bool   `help:"Dump the enrichment result to stdout."`
	DryRun          bool   `help:"Enrich without writing files; list the model descriptors instead." name:"dry-run"`
	Watch           bool   `help:"Watch the graph, tables and templates and enrich again on change." short:"w"`
}

// apply overrides environment options with the flags that were set.
func (c *EnrichCmd) apply(opts *config.Options) {
	if c.Tables != "" {
		opts.TablesPath = c.Tables
	}

	if c.ImplicitHeaders {
		opts.ImplicitHeaders = true
	}

	if c.UseTags {
		opts.UseTags = true
	}

	if c.Title != "" {
		opts.Title = c.Title
	}

	if c.TemplateDir != "" {
		opts.TemplateDir = c.TemplateDir
	}

	if c.ModelPackage != "" {
		opts.ModelPackage = c.ModelPackage
	}
}

func (c *EnrichCmd) Run(opts *config.Options, stdout io.Writer) error {
	c.apply(opts)

	logger, err := opts.NewLogger(os.Stderr)
	if err != nil {
		return err
	}

	if err := c.enrich(opts, logger, stdout); err != nil {
		return err
	}

	if !c.Watch {
		return nil
	}

	files := []string{c.Graph}
	if opts.TablesPath != "" {
		files = append(files, opts.TablesPath)
	}

	var dirs []string
	if opts.TemplateDir != "" {
		dirs = append(dirs, opts.TemplateDir)
	}

	w, err := newWatcher(files, dirs, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("watching for changes", slog.Any("files", files), slog.Any("dirs", dirs))

	return w.loop(ctx, func() error { return c.enrich(opts, logger, stdout) })
}

// checkOutput refuses an output graph that would overwrite the input graph.
func (c *EnrichCmd) checkOutput() error {
	in, err := filepath.Abs(c.Graph)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", c.Graph, err)
	}

	out, err := filepath.Abs(filepath.Join(c.Out, graphFile))
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}

	if in == out {
		return fmt.Errorf("output %s would overwrite the input graph", out)
	}

	return nil
}

// enrich runs the pipeline once and writes the results to Out.
func (c *EnrichCmd) enrich(opts *config.Options, logger *slog.Logger, stdout io.Writer) error {
	if !c.DryRun {
		if err := c.checkOutput(); err != nil {
			return err
		}
	}

	tables, err := config.Load(opts.TablesPath)
	if err != nil {
		return err
	}

	lookup, err := config.Compile(tables)
	if err != nil {
		return fmt.Errorf("invalid tables: %w", err)
	}

	g, err := model.LoadFile(c.Graph)
	if err != nil {
		return err
	}

	emitter := static.NewEmitter(lookup.StaticModels(), static.Templates(opts.TemplateDir), opts.ModelPackage, logger)
	p := pipeline.New(lookup, pipeline.Options{
		ImplicitHeaders: opts.ImplicitHeaders,
		UseTags:         opts.UseTags,
		Title:           opts.Title,
	}, emitter, logger)

	var res *pipeline.Result
	if c.DryRun {
		res, err = dryRun(p, g, stdout)
	} else {
		res, err = c.write(p, g)
	}

	if err != nil {
		return err
	}

	for _, d := range res.Diagnostics.Warnings {
		logger.Warn(d.Message, diagnosticAttrs(d)...)
	}

	for _, d := range res.Diagnostics.Infos {
		logger.Info(d.Message, diagnosticAttrs(d)...)
	}

	if c.Dump {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		dumper.Fdump(stdout, res)
	}

	return nil
}

// write enriches g and writes the graph and every model descriptor to Out.
func (c *EnrichCmd) write(p *pipeline.Pipeline, g *model.Graph) (*pipeline.Result, error) {
	writer := render.NewFileWriter(filepath.Join(c.Out, modelsDir))

	res, err := p.Run(g, writer)
	if err != nil {
		return nil, err
	}

	if err := writer.WriteModels(g.Models); err != nil {
		return nil, err
	}

	if err := model.WriteFile(g, filepath.Join(c.Out, graphFile)); err != nil {
		return nil, err
	}

	return res, nil
}

// dryRun enriches g in memory and lists the descriptors that would be written.
func dryRun(p *pipeline.Pipeline, g *model.Graph, stdout io.Writer) (*pipeline.Result, error) {
	mem := &render.MemoryWriter{}

	res, err := p.Run(g, mem)
	if err != nil {
		return nil, err
	}

	for _, m := range g.Models {
		if _, err := fmt.Fprintf(stdout, "%s/%s.yaml\n", modelsDir, m.Name); err != nil {
			return nil, err
		}
	}

	for _, name := range mem.Names() {
		if _, err := fmt.Fprintf(stdout, "%s/%s.yaml (static)\n", modelsDir, name); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func diagnosticAttrs(d diagnostic.Diagnostic) []any {
	return []any{
		slog.String("code", d.Code),
		slog.String("subject", d.Subject),
		slog.String("key", d.Key),
	}
}

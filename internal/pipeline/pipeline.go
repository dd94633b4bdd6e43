package pipeline

import (
	"errors"
	"log/slog"

	"docref-generator/internal/config"
	"docref-generator/internal/diagnostic"
	"docref-generator/internal/model"
	"docref-generator/internal/naming"
	"docref-generator/internal/static"
)

// Options control the generation mode of a run.
type Options struct {
	// ImplicitHeaders drops header parameters from every operation.
	ImplicitHeaders bool
	// UseTags groups operations by primary tag instead of path segment.
	UseTags bool
	// Title overrides the title derived from the graph.
	Title string
}

// Result is the outcome of a run. The graph is enriched in place.
type Result struct {
	Graph      *model.Graph
	Title      string
	Collection *Collection
	Groups     []OperationGroup
	// StaticModels is the number of static descriptors written.
	StaticModels int
	Diagnostics  diagnostic.Diagnostics
}

// Pipeline runs the enrichment passes over a graph.
type Pipeline struct {
	lookup  *config.Lookup
	opts    Options
	emitter *static.Emitter
	logger  *slog.Logger
}

// New creates a Pipeline. A nil emitter skips static descriptors; a nil
// logger uses slog.Default().
func New(lookup *config.Lookup, opts Options, emitter *static.Emitter, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	return &Pipeline{lookup: lookup, opts: opts, emitter: emitter, logger: logger}
}

// Run enriches g and writes static descriptors to w (if both an emitter and
// w are present).
func (p *Pipeline) Run(g *model.Graph, w static.ModelWriter) (*Result, error) {
	if g == nil {
		return nil, errors.New("graph is nil")
	}

	if p.lookup == nil {
		return nil, errors.New("tables are not compiled")
	}

	res := &Result{Graph: g, Title: p.title(g)}

	for _, op := range g.Operations {
		ReduceTags(op)
	}

	res.Collection = Collect(g.Operations, p.logger, &res.Diagnostics)

	for _, op := range g.Operations {
		NormalizeOperation(op)

		if p.opts.ImplicitHeaders {
			op.AllParams = FilterHeaderParams(op.AllParams)
		}
	}

	res.Groups = GroupOperations(g.Operations, p.opts.UseTags)

	NewEnricher(p.lookup, res.Collection, p.logger).EnrichModels(g.Models)
	res.Diagnostics.Merge(CheckCoverage(g, p.lookup))

	if p.emitter != nil && w != nil {
		res.StaticModels = p.emitter.Emit(w, &res.Diagnostics)
	}

	p.logger.Info("enriched graph",
		slog.String("title", res.Title),
		slog.Int("models", len(g.Models)),
		slog.Int("operations", len(g.Operations)),
		slog.Int("groups", len(res.Groups)),
		slog.Int("staticModels", res.StaticModels),
		slog.Int("warnings", len(res.Diagnostics.Warnings)))

	return res, nil
}

func (p *Pipeline) title(g *model.Graph) string {
	if p.opts.Title != "" {
		return p.opts.Title
	}

	return naming.Title(g.Title)
}

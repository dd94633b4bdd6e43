package pipeline

import (
	"log/slog"
	"strings"

	"docref-generator/internal/config"
	"docref-generator/internal/model"
	"docref-generator/internal/naming"
)

// Enricher rewrites models using the compiled tables and a finished
// Collection. It never mutates either.
type Enricher struct {
	lookup     *config.Lookup
	collection *Collection
	logger     *slog.Logger
}

// NewEnricher creates an Enricher. A nil logger uses slog.Default().
func NewEnricher(lookup *config.Lookup, collection *Collection, logger *slog.Logger) *Enricher {
	if logger == nil {
		logger = slog.Default()
	}

	if collection == nil {
		collection = &Collection{}
	}

	return &Enricher{lookup: lookup, collection: collection, logger: logger}
}

// EnrichModels enriches every model in order.
func (e *Enricher) EnrichModels(models []*model.Model) {
	for _, m := range models {
		e.EnrichModel(m)
	}
}

// EnrichModel applies, in order: document mapping, reference injection,
// property rewriting, the link-container flag and enum simplification.
func (e *Enricher) EnrichModel(m *model.Model) {
	e.mapDocument(m)

	e.injectReferences(m)

	for _, p := range m.Properties {
		// injected references are final
		if p.IsHiddenReference {
			continue
		}

		e.rewriteProperty(m, p)
	}

	e.markLinkContainer(m)

	for _, p := range m.Properties {
		simplifyEnum(p)
	}
}

func (e *Enricher) mapDocument(m *model.Model) {
	collection, ok := e.collection.CollectionFor(m.Name)
	if !ok || e.lookup.IsExcluded(m.Name) {
		return
	}

	m.IsMongoDocument = true
	m.MongoCollection = collection
}

func (e *Enricher) injectReferences(m *model.Model) {
	tag, ok := e.lookup.Endpoint(m.Name)
	if !ok {
		return
	}

	e.logger.Debug("matched endpoint", slog.String("model", m.Name), slog.String("tag", tag))

	for _, entry := range e.collection.ReferencesFor(tag) {
		if entry.ModelName == "" || entry.ModelName == m.Name || hasReference(m, entry) {
			continue
		}

		m.Properties = append(m.Properties, referenceProperty(entry))

		e.logger.Debug("injected reference",
			slog.String("model", m.Name),
			slog.String("target", entry.ModelName),
			slog.String("accountType", entry.AccountClassifier))
	}
}

// referenceProperty builds the hidden property pointing at entry's model.
func referenceProperty(entry ReferenceEntry) *model.Property {
	name := naming.LowerCamel(entry.ModelName)

	return &model.Property{
		Name:              name,
		BaseName:          name,
		DataTypeWithEnum:  entry.ModelName,
		Getter:            "get" + entry.ModelName,
		Setter:            "set" + entry.ModelName,
		IsHiddenReference: true,
		IsPaymProperty:    entry.AccountClassifier == classifierPaym,
		IsPaygProperty:    entry.AccountClassifier == classifierPayg,
	}
}

func hasReference(m *model.Model, entry ReferenceEntry) bool {
	want := referenceProperty(entry)

	for _, p := range m.Properties {
		if p.IsHiddenReference &&
			p.DataTypeWithEnum == want.DataTypeWithEnum &&
			p.IsPaymProperty == want.IsPaymProperty &&
			p.IsPaygProperty == want.IsPaygProperty {
			return true
		}
	}

	return false
}

func (e *Enricher) rewriteProperty(m *model.Model, p *model.Property) {
	if p.Example == "null" {
		p.Example = ""
	}

	e.markNested(p, p.ComplexType)
	e.remapComplexType(m, p)
	e.remapDataType(m, p)

	newName, ok := e.lookup.Rename(m.Name, p.Name)
	if !ok || newName == p.Name {
		return
	}

	e.logger.Debug("renamed property",
		slog.String("model", m.Name),
		slog.String("from", p.Name),
		slog.String("to", newName))

	p.Name = newName
	p.Getter = naming.Getter(newName)
	p.Setter = naming.Setter(newName)
}

// remapComplexType replaces a remapped complexType, including its
// occurrences inside dataTypeWithEnum ("List<BillSummary>").
func (e *Enricher) remapComplexType(m *model.Model, p *model.Property) {
	to, ok := e.lookup.Remap(p.ComplexType)
	if !ok {
		return
	}

	from := p.ComplexType
	p.DataTypeWithEnum = strings.ReplaceAll(p.DataTypeWithEnum, from, to)
	p.ComplexType = to

	if p.BaseType == from {
		p.BaseType = to
	}

	e.markNested(p, to)
	e.logRemap(m, p, from, to)
}

// remapDataType covers simple references whose whole dataTypeWithEnum is a
// remap key.
func (e *Enricher) remapDataType(m *model.Model, p *model.Property) {
	to, ok := e.lookup.Remap(p.DataTypeWithEnum)
	if !ok {
		return
	}

	from := p.DataTypeWithEnum
	p.DataTypeWithEnum = to

	if baseType, ok := e.lookup.Remap(p.BaseType); ok {
		p.BaseType = baseType
	}

	e.markNested(p, to)
	e.logRemap(m, p, from, to)
}

func (e *Enricher) markNested(p *model.Property, typeName string) {
	if typeName != "" && e.lookup.IsNestedType(typeName) {
		p.IsVisibleReference = true
	}
}

func (e *Enricher) logRemap(m *model.Model, p *model.Property, from, to string) {
	e.logger.Debug("remapped property",
		slog.String("model", m.Name),
		slog.String("property", p.Name),
		slog.String("from", from),
		slog.String("to", to))
}

func (e *Enricher) markLinkContainer(m *model.Model) {
	for _, p := range m.Properties {
		if p.ComplexType != "" && p.ComplexType == e.lookup.LinkType() {
			m.IsLinkContainer = true
			return
		}
	}
}

// simplifyEnum replaces inline enums with their underlying type.
func simplifyEnum(p *model.Property) {
	if !p.IsEnum {
		return
	}

	p.IsEnum = false

	if p.DataType != "" {
		p.DataTypeWithEnum = p.DataType
	}
}

package config

import (
	"maps"
	"slices"
	"strings"

	"docref-generator/internal/common"
)

// Lookup is the compiled, read-only view of Tables used during a run. It is
// safe for concurrent use.
type Lookup struct {
	exclusions   map[string]struct{}
	remap        map[string]string
	nested       map[string]struct{}
	renames      map[string]string
	endpoints    map[string]string
	staticModels []StaticModel
	linkType     string
}

// Compile validates t and builds a Lookup. A nil t compiles the defaults.
func Compile(t *Tables) (*Lookup, error) {
	if t == nil {
		t = Default()
	}

	if err := Validate(t).Error(); err != nil {
		return nil, err
	}

	linkType := t.LinkType
	if linkType == "" {
		linkType = defaultLinkType
	}

	return &Lookup{
		exclusions:   common.SetOf(t.DocumentExclusions),
		remap:        maps.Clone(t.ModelRemap),
		nested:       common.SetOf(t.NestedReferenceTypes),
		renames:      maps.Clone(t.PropertyRenames),
		endpoints:    maps.Clone(t.Endpoints),
		staticModels: slices.Clone(t.StaticModels),
		linkType:     linkType,
	}, nil
}

// IsExcluded reports whether a model must never become a persisted document.
func (l *Lookup) IsExcluded(model string) bool {
	_, ok := l.exclusions[model]
	return ok
}

// Remap returns the replacement for a type name.
func (l *Lookup) Remap(typeName string) (string, bool) {
	to, ok := l.remap[typeName]
	return to, ok
}

// IsNestedType reports whether references to typeName stay visible.
func (l *Lookup) IsNestedType(typeName string) bool {
	_, ok := l.nested[typeName]
	return ok
}

// Rename returns the new name of model.property.
func (l *Lookup) Rename(model, property string) (string, bool) {
	to, ok := l.renames[model+"."+property]
	return to, ok
}

// Endpoint returns the tag associated with a parent model.
func (l *Lookup) Endpoint(model string) (string, bool) {
	tag, ok := l.endpoints[model]
	return tag, ok
}

// StaticModels returns the static descriptor list in table order.
func (l *Lookup) StaticModels() []StaticModel {
	return slices.Clone(l.staticModels)
}

// LinkType returns the type name marking link containers.
func (l *Lookup) LinkType() string {
	return l.linkType
}

// ModelKeys returns, per table, the model names the table refers to:
// exclusions, endpoint keys and the model part of rename keys. Type remaps
// are left out since they also name primitive types.
func (l *Lookup) ModelKeys() map[string][]string {
	renamed := make(map[string]struct{}, len(l.renames))
	for key := range l.renames {
		modelName, _, _ := strings.Cut(key, ".")
		renamed[modelName] = struct{}{}
	}

	return map[string][]string{
		"documentExclusions": slices.Sorted(maps.Keys(l.exclusions)),
		"endpoints":          slices.Sorted(maps.Keys(l.endpoints)),
		"propertyRenames":    slices.Sorted(maps.Keys(renamed)),
	}
}

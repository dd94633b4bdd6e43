package config

// Tables is the root of a tables file.
type Tables struct {
	// Version of the tables schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// DocumentExclusions lists models that never become persisted documents,
	// typically entries held by a container model that owns the collection.
	DocumentExclusions []string `yaml:"documentExclusions,omitempty" validate:"dive,required"`

	// ModelRemap replaces referenced type names: {"BillSummary": "BillSummaryContainer"}.
	ModelRemap map[string]string `yaml:"modelRemap,omitempty" validate:"dive,keys,required,endkeys,required"`

	// NestedReferenceTypes are document types that, when referenced from
	// another model, stay visible in responses.
	NestedReferenceTypes []string `yaml:"nestedReferenceTypes,omitempty" validate:"dive,required"`

	// PropertyRenames is keyed by "Model.property". The wire name is kept.
	PropertyRenames map[string]string `yaml:"propertyRenames,omitempty" validate:"dive,keys,required,contains=.,endkeys,required"`

	// Endpoints associates a parent model with the tag of the operations
	// whose results become its references.
	Endpoints map[string]string `yaml:"endpoints,omitempty" validate:"dive,keys,required,endkeys,required"`

	// StaticModels are emitted from templates; the contract cannot express them.
	StaticModels []StaticModel `yaml:"staticModels,omitempty" validate:"dive"`

	// LinkType is the type name that marks a model as a link container.
	LinkType string `yaml:"linkType,omitempty"`
}

// StaticModel pairs a model name with its template key.
type StaticModel struct {
	Name     string `yaml:"name" validate:"required"`
	Template string `yaml:"template" validate:"required"`
}

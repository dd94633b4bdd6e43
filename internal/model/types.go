package model

import "docref-generator/internal/common"

// ContainerKind identifies the collection wrapper of a return shape.
type ContainerKind string

const (
	ContainerNone ContainerKind = ""
	ContainerList ContainerKind = "List"
	ContainerMap  ContainerKind = "Map"
	ContainerSet  ContainerKind = "Set"
)

// String returns the container name, or "none" for ContainerNone.
func (k ContainerKind) String() string {
	if k == ContainerNone {
		return "none"
	}

	return string(k)
}

// VoidType is the return type of operations that declare no response body.
const VoidType = "Void"

// Graph is the parsed API description handed to the enrichment pipeline.
type Graph struct {
	// Title is the API title from the source contract.
	Title string `yaml:"title,omitempty"`
	// Models in source order. Identity is Model.Name.
	Models []*Model `yaml:"models,omitempty"`
	// Operations in source order.
	Operations []*Operation `yaml:"operations,omitempty"`
}

// Model describes one data shape destined for code emission.
type Model struct {
	Name       string      `yaml:"name"`
	IsEnum     bool        `yaml:"isEnum,omitempty"`
	Properties []*Property `yaml:"properties,omitempty"`
	Imports    []string    `yaml:"imports,omitempty"`

	// IsMongoDocument marks a model stored 1:1 as a document.
	IsMongoDocument bool `yaml:"isMongoDocument,omitempty"`
	// MongoCollection is the collection name for document models.
	MongoCollection string `yaml:"mongoCollection,omitempty"`
	// IsLinkContainer marks models holding a Link typed property.
	IsLinkContainer bool `yaml:"isLinkContainer,omitempty"`
}

// Property describes one field of a Model.
type Property struct {
	Name string `yaml:"name"`
	// BaseName is the wire name; renames never touch it.
	BaseName         string `yaml:"baseName,omitempty"`
	ComplexType      string `yaml:"complexType,omitempty"`
	DataType         string `yaml:"dataType,omitempty"`
	DataTypeWithEnum string `yaml:"dataTypeWithEnum,omitempty"`
	BaseType         string `yaml:"baseType,omitempty"`
	Getter           string `yaml:"getter,omitempty"`
	Setter           string `yaml:"setter,omitempty"`
	Example          string `yaml:"example,omitempty"`
	IsEnum           bool   `yaml:"isEnum,omitempty"`

	// IsHiddenReference marks a synthesized reference kept out of responses.
	IsHiddenReference bool `yaml:"isHiddenReference,omitempty"`
	// IsVisibleReference marks a reference to a nested document type that
	// stays visible in responses.
	IsVisibleReference bool `yaml:"isVisibleReference,omitempty"`
	IsPaymProperty     bool `yaml:"isPaymProperty,omitempty"`
	IsPaygProperty     bool `yaml:"isPaygProperty,omitempty"`
}

// Tag is an operation tag. The first tag of an operation is its primary tag.
type Tag struct {
	Name string `yaml:"name"`
}

// Operation describes one API action.
type Operation struct {
	OperationID         string `yaml:"operationId"`
	OperationIDOriginal string `yaml:"operationIdOriginal,omitempty"`
	Path                string `yaml:"path,omitempty"`
	HTTPMethod          string `yaml:"httpMethod,omitempty"`
	Tags                []Tag  `yaml:"tags,omitempty"`
	// AllTags keeps every declared tag name after Tags is reduced to the
	// primary tag.
	AllTags []string `yaml:"allTags,omitempty"`

	// ReturnType holds the raw shape ("List<Foo>") until normalization, then
	// the element type. Empty means no return type.
	ReturnType      string        `yaml:"returnType,omitempty"`
	ReturnContainer ContainerKind `yaml:"returnContainer,omitempty"`
	Responses       []*Response   `yaml:"responses,omitempty"`
	AllParams       []*Parameter  `yaml:"allParams,omitempty"`

	// AccountType is the account classifier extension ("paym", "payg").
	AccountType string `yaml:"accountType,omitempty"`

	// BaseName is the name of the group the operation was placed in.
	BaseName             string `yaml:"baseName,omitempty"`
	SubresourceOperation bool   `yaml:"subresourceOperation,omitempty"`
}

// PrimaryTag returns the name of the first tag and true, or "" and false.
func (o *Operation) PrimaryTag() (string, bool) {
	tag, ok := common.First(o.Tags)
	return tag.Name, ok
}

// Response is one response alternative of an operation.
type Response struct {
	Code          string        `yaml:"code"`
	DataType      string        `yaml:"dataType,omitempty"`
	ContainerType ContainerKind `yaml:"containerType,omitempty"`
}

// Parameter is one operation parameter.
type Parameter struct {
	Name          string `yaml:"name"`
	In            string `yaml:"in,omitempty"`
	IsHeaderParam bool   `yaml:"isHeaderParam,omitempty"`
	// HasMore is the list-terminator flag used by renderers: false on the
	// last parameter.
	HasMore bool `yaml:"hasMore,omitempty"`
}

// FindModel returns the model with the given name, or nil.
func (g *Graph) FindModel(name string) *Model {
	for _, m := range g.Models {
		if m.Name == name {
			return m
		}
	}

	return nil
}

// FindProperty returns the first property with the given name, or nil.
func (m *Model) FindProperty(name string) *Property {
	for _, p := range m.Properties {
		if p.Name == name {
			return p
		}
	}

	return nil
}

package pipeline

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"docref-generator/internal/diagnostic"
	"docref-generator/internal/model"
)

// placeholderModel is the generic return type of untyped resource
// operations. It never becomes a reference.
const placeholderModel = "resource"

const (
	classifierPaym = "paym"
	classifierPayg = "payg"
)

// ReferenceEntry is a model returned by operations of one tag, with the
// account classifier of the returning operation.
type ReferenceEntry struct {
	ModelName         string
	AccountClassifier string
}

// Collection is the output of Collect. It is read-only once built.
type Collection struct {
	// References maps a tag to its distinct reference entries in first-seen
	// order.
	References map[string][]ReferenceEntry
	// Collections maps a return type to the collection (original operation
	// id) it is stored in.
	Collections map[string]string
	// Tags lists the primary tags in first-seen order.
	Tags []string
}

// ReferencesFor returns the entries collected for tag.
func (c *Collection) ReferencesFor(tag string) []ReferenceEntry {
	return c.References[tag]
}

// CollectionFor returns the collection name recorded for a model.
func (c *Collection) CollectionFor(modelName string) (string, bool) {
	name, ok := c.Collections[modelName]
	return name, ok
}

// Collect scans ops once and groups their return types by primary tag.
// Operations without tags are ignored, operations without a return type
// only register their tag. Return shapes are taken as they are,
// so Collect runs before NormalizeOperation.
func Collect(ops []*model.Operation, logger *slog.Logger, diags *diagnostic.Diagnostics) *Collection {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Collection{
		References:  make(map[string][]ReferenceEntry),
		Collections: make(map[string]string),
	}

	for _, op := range ops {
		tag, ok := op.PrimaryTag()
		if !ok {
			continue
		}

		if _, seen := c.References[tag]; !seen {
			c.References[tag] = []ReferenceEntry{}
			c.Tags = append(c.Tags, tag)
		}

		if op.ReturnType == "" || op.ReturnType == model.VoidType {
			continue
		}

		c.recordCollection(op, diags)

		entry := ReferenceEntry{ModelName: op.ReturnType, AccountClassifier: op.AccountType}
		if strings.EqualFold(entry.ModelName, placeholderModel) || slices.Contains(c.References[tag], entry) {
			continue
		}

		c.References[tag] = append(c.References[tag], entry)

		logger.Debug("collected reference",
			slog.String("tag", tag),
			slog.String("model", entry.ModelName),
			slog.String("accountType", entry.AccountClassifier))
	}

	return c
}

// recordCollection stores the collection of op's return type. The last
// operation wins; a changed value is reported.
func (c *Collection) recordCollection(op *model.Operation, diags *diagnostic.Diagnostics) {
	prev, exists := c.Collections[op.ReturnType]
	if exists && prev != op.OperationIDOriginal && diags != nil {
		diags.AddInfo("collection_overwritten",
			fmt.Sprintf("collection %q replaced by %q", prev, op.OperationIDOriginal),
			op.ReturnType, op.OperationID)
	}

	c.Collections[op.ReturnType] = op.OperationIDOriginal
}

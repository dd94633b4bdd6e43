// Package config provides the static configuration tables of the enrichment
// pipeline and the generation options.
//
// Tables are read from YAML; built-in defaults are embedded:
//
//	version: "1"
//	documentExclusions:
//	  - BillSummary
//	modelRemap:
//	  BillingAccountPerson: BillingAccount
//	nestedReferenceTypes:
//	  - BillingAccount
//	propertyRenames:
//	  RecurringTopups.id: topupId
//	endpoints:
//	  BillingAccount: billing-account
//	staticModels:
//	  - name: Meta
//	    template: meta.yaml.tmpl
//	linkType: Link
//
// # Tables
//
//   - documentExclusions: models never flagged as persisted documents
//   - modelRemap: type name replacements applied to property types
//   - nestedReferenceTypes: referenced types that stay visible in responses
//   - propertyRenames: "Model.property" to new property name
//   - endpoints: model name to the operation tag whose results it references
//   - staticModels: descriptors emitted from built-in templates
//
// Tables are validated and compiled into an immutable Lookup before a run.
// A remap target may not itself be a remap key; chains would make the remap
// pass depend on how often it runs.
//
// Options carry the generation mode and are read from DOCREF_* environment
// variables.
package config

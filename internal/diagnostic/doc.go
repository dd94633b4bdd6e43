// Package diagnostic provides structured errors, warnings and informational
// notes collected while loading tables and enriching a graph.
//
// Key capabilities:
//   - Table validation errors with the offending key
//   - Non-fatal static template failures
//   - Notes on ambiguous input (collection names overwritten by a later operation)
package diagnostic

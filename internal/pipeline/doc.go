// Package pipeline enriches a parsed API graph with persistence and wire
// mapping metadata before it is handed to a renderer.
//
// Run executes the passes in a fixed order:
//
//  1. ReduceTags keeps the primary tag of every operation.
//  2. Collect scans all operations and builds the reference and collection
//     tables, keyed by tag and return type.
//  3. NormalizeOperation and FilterHeaderParams rewrite return shapes and
//     parameter lists.
//  4. GroupOperations assigns operations to API groups.
//  5. Enricher rewrites every model using the compiled tables and the
//     collected output.
//  6. CheckCoverage notes table keys that name no model of the graph.
//  7. The static emitter hands fixed descriptors to the model writer.
//
// Every pass is idempotent: running Run twice over the same graph leaves the
// graph unchanged after the first run.
package pipeline

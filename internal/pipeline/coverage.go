package pipeline

import (
	"fmt"
	"slices"

	"docref-generator/internal/config"
	"docref-generator/internal/diagnostic"
	"docref-generator/internal/match"
	"docref-generator/internal/model"
)

// CheckCoverage reports table keys naming models that are not in g, with
// the closest model name when one is similar enough. Tables are shared
// between contracts, so these are infos only.
func CheckCoverage(g *model.Graph, lookup *config.Lookup) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	known := make([]string, 0, len(g.Models))
	for _, m := range g.Models {
		known = append(known, m.Name)
	}

	keys := lookup.ModelKeys()

	tables := make([]string, 0, len(keys))
	for table := range keys {
		tables = append(tables, table)
	}

	slices.Sort(tables)

	for _, table := range tables {
		for _, name := range keys[table] {
			if slices.Contains(known, name) {
				continue
			}

			msg := fmt.Sprintf("model %q is not in the graph", name)
			if suggestion, ok := match.Suggest(name, known, match.DefaultThreshold); ok {
				msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
			}

			diags.AddInfo("unmatched_table_key", msg, table, name)
		}
	}

	return diags
}

package match

import (
	"cmp"
	"slices"
)

// DefaultThreshold is the lowest similarity Suggest accepts.
const DefaultThreshold = 0.6

// Suggestion is a known name scored against a looked-up one.
type Suggestion struct {
	Name  string
	Score float64
}

// Rank scores every known name against name, best first. Ties are broken by
// name so the order is stable.
func Rank(name string, known []string) []Suggestion {
	ranked := make([]Suggestion, 0, len(known))
	for _, k := range known {
		ranked = append(ranked, Suggestion{Name: k, Score: Similarity(name, k)})
	}

	slices.SortFunc(ranked, func(a, b Suggestion) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return ranked
}

// Suggest returns the known name closest to name when it scores at least
// threshold. Exact matches are not suggestions.
func Suggest(name string, known []string, threshold float64) (string, bool) {
	for _, s := range Rank(name, known) {
		if s.Name == name {
			continue
		}

		if s.Score < threshold {
			return "", false
		}

		return s.Name, true
	}

	return "", false
}

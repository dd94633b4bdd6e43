package match

// Distance returns the edit distance between a and b, counted in runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	// one row of the edit matrix, indexed by position in ra
	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			above := row[i]

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			row[i] = min(row[i]+1, row[i-1]+1, diag+cost)
			diag = above
		}
	}

	return row[len(ra)]
}

// Similarity scores folded a and b between 0 (unrelated) and 1 (same name).
func Similarity(a, b string) float64 {
	fa, fb := Fold(a), Fold(b)

	longest := max(len([]rune(fa)), len([]rune(fb)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(fa, fb))/float64(longest)
}

package match

// Levenshtein returns the edit distance between a and b, counted in runes.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j, cb := range rb {
		diag := row[0]
		row[0] = j + 1

		for i, ca := range ra {
			cost := 1
			if ca == cb {
				cost = 0
			}

			diag, row[i+1] = row[i+1], min(row[i+1]+1, row[i]+1, diag+cost)
		}
	}

	return row[len(ra)]
}

// LevenshteinNormalized maps the edit distance to a similarity in [0, 1],
// 1 meaning equal strings.
func LevenshteinNormalized(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

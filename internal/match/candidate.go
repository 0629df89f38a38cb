package match

import (
	"cmp"
	"slices"
)

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name string

	// Score is the normalized Levenshtein similarity (0-1), the better of the
	// plain and suffix-stripped comparisons.
	Score float64

	NormalizedName string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankNames scores every known name against name and returns the candidates
// sorted by descending score, ties by name.
func RankNames(name string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	norm := NormalizeIdent(name)
	normStripped := NormalizeBase(name)

	for _, k := range known {
		kNorm := NormalizeIdent(k)

		score := LevenshteinNormalized(norm, kNorm)
		if stripped := LevenshteinNormalized(normStripped, NormalizeBase(k)); stripped > score {
			score = stripped
		}

		candidates = append(candidates, Candidate{
			Name:           k,
			Score:          score,
			NormalizedName: kNorm,
		})
	}

	slices.SortFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return candidates
}

// FindIdent returns the first known name that normalizes to the same
// identifier as name ("order_id" finds "OrderID").
func FindIdent(name string, known []string) (string, bool) {
	norm := NormalizeIdent(name)
	for _, k := range known {
		if NormalizeIdent(k) == norm {
			return k, true
		}
	}

	return "", false
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates with score above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Names returns the candidate names in ranking order.
func (c CandidateList) Names() []string {
	names := make([]string, len(c))
	for i, cand := range c {
		names[i] = cand.Name
	}

	return names
}

// DefaultSuggestThreshold is the minimum score for a name to be suggested.
const DefaultSuggestThreshold = 0.6

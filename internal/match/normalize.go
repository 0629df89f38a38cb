package match

import (
	"strings"
	"unicode"
)

// qualifiers are trailing words ignored by NormalizeBase, longest first.
var qualifiers = []string{"timestamp", "ids", "utc", "id", "at"}

// TokenizeIdent splits an identifier into lowercase words. Words break at
// separators (_ - space), at lower-to-upper transitions and before the last
// capital of an acronym followed by a lowercase letter:
//
//	OrderID     -> order id
//	XMLParser   -> xml parser
//	zip_code    -> zip code
func TokenizeIdent(s string) []string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return words
}

// NormalizeIdent folds an identifier to its lowercase words joined without
// separators, so "order_id", "orderId" and "OrderID" compare equal.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// NormalizeBase is NormalizeIdent with one trailing qualifier (id, ids, at,
// utc, timestamp) removed. A name made only of the qualifier is kept.
func NormalizeBase(s string) string {
	norm := NormalizeIdent(s)

	for _, q := range qualifiers {
		if len(norm) > len(q) && strings.HasSuffix(norm, q) {
			return strings.TrimSuffix(norm, q)
		}
	}

	return norm
}

// splitWords splits s keeping the original case of every word.
func splitWords(s string) []string {
	var (
		words []string
		start = -1
	)

	runes := []rune(s)

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}

		start = -1
	}

	for i, r := range runes {
		if isSeparator(r) {
			flush(i)
			continue
		}

		if start >= 0 && wordBoundary(runes, i) {
			flush(i)
		}

		if start < 0 {
			start = i
		}
	}

	flush(len(runes))

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// wordBoundary reports whether a new word starts at runes[i], i > 0.
func wordBoundary(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	prev := runes[i-1]
	if !unicode.IsUpper(prev) {
		return !isSeparator(prev)
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// Package match provides identifier normalization, Levenshtein distance and
// name-based candidate ranking.
//
// Key functions:
//   - NormalizeIdent, NormalizeBase: fold identifiers for fuzzy matching
//   - TokenizeIdent: splits identifiers into lowercase words for naming styles
//   - Levenshtein: computes edit distance between strings
//   - RankNames: ranks known names against an unknown one ("did you mean")
package match

package match

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// LevenshteinScorer scores string similarity as a normalized edit-distance
// ratio on the 0-100 scale.
type LevenshteinScorer struct{}

// Score returns 100*(maxLen-distance)/maxLen, truncated. Truncation rather
// than rounding guarantees 100 is returned only for identical strings, so
// a near-miss on a long name can never masquerade as an exact match.
func (LevenshteinScorer) Score(a, b string) int {
	if a == b {
		return 100
	}
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 100
	}
	distance := levenshtein.ComputeDistance(a, b)
	if distance > maxLen {
		distance = maxLen
	}
	return 100 * (maxLen - distance) / maxLen
}

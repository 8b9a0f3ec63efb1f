package match

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Similarity computes the edit-distance percentage similarity between two
// strings, in [0, 100]. Two empty strings are defined as identical (100).
// Cost is O(len(a)*len(b)), which is acceptable because callers only invoke
// it within an artist-filtered candidate set, never across the full cross
// product of both libraries.
func Similarity(a, b string) int {
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 100
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 100 * (maxLen - distance) / maxLen
}

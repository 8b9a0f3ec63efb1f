package match

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	urlPattern        = regexp.MustCompile(`www\.\S+`)
	featClausePattern = regexp.MustCompile(`(?i)\b(?:featuring|feat|ft)\.?\s.*$`)
	trailingBPM       = regexp.MustCompile(`\s\d{2,3}$`)
	punctuation       = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
)

// diacriticStripper decomposes characters and drops the combining marks,
// so "Beyoncé" folds to "Beyonce".
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a raw title or artist into a comparison key.
//
// The pipeline order matters: URL and feat-clause removal must run before
// punctuation stripping, otherwise the punctuation pass would fuse a URL or
// feat clause into word-character noise that can no longer be removed.
// Output is only ever used as a key, never shown to users.
func Normalize(input string) string {
	if input == "" {
		return ""
	}
	s := norm.NFKC.String(input)
	s = stripDiacritics(s)
	s = strings.ToLower(s)
	s = urlPattern.ReplaceAllString(s, "")
	s = featClausePattern.ReplaceAllString(s, "")
	// A trailing standalone 2-3 digit number is almost always a stray BPM
	// annotation ("Song Title 131"), not part of the song name.
	s = trailingBPM.ReplaceAllString(s, "")
	s = punctuation.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeArtist normalizes an artist name and strips a leading definite
// article. Sources disagree on "The Weeknd" vs "Weeknd"; the prefix carries
// no discriminative value for matching.
func NormalizeArtist(input string) string {
	s := Normalize(input)
	return strings.TrimPrefix(s, "the ")
}

func stripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return out
}

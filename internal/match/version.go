package match

import (
	"regexp"
	"strings"
)

// versionKeywords is the vocabulary that marks a bracketed group as a
// version/mix descriptor rather than part of the song name.
var versionKeywords = map[string]struct{}{
	"remix":        {},
	"mix":          {},
	"edit":         {},
	"rework":       {},
	"bootleg":      {},
	"mashup":       {},
	"version":      {},
	"radio":        {},
	"club":         {},
	"extended":     {},
	"vocal":        {},
	"instrumental": {},
	"dub":          {},
	"original":     {},
	"live":         {},
	"acoustic":     {},
	"unplugged":    {},
	"remaster":     {},
	"demo":         {},
	"vip":          {},
}

var (
	bracketGroup = regexp.MustCompile(`\s*[(\[][^)\]]*[)\]]`)
	// trailingMix catches unbracketed suffixes like "Song Original Mix" that
	// some sources emit without parentheses.
	trailingMix = regexp.MustCompile(`(?i)\s+(?:original|extended)\s+mix\s*$`)
)

// SplitVersion separates a raw title into its commercially meaningful core
// and the version/mix descriptor found in trailing bracketed groups.
// Neither return value is normalized. A title with no recognizable version
// keyword comes back unchanged with an empty descriptor.
func SplitVersion(title string) (core, version string) {
	if title == "" {
		return "", ""
	}
	var descriptors []string
	core = bracketGroup.ReplaceAllStringFunc(title, func(group string) string {
		inner := strings.TrimSpace(strings.Trim(strings.TrimSpace(group), "()[]"))
		if hasVersionKeyword(inner) {
			descriptors = append(descriptors, inner)
			return ""
		}
		return group
	})
	return strings.TrimSpace(core), strings.Join(descriptors, " ")
}

// CoreTitle returns the normalized core of a title: URLs stripped, bracketed
// version descriptors removed, trailing unbracketed "original mix"/"extended
// mix" suffixes dropped, then the full Normalize pipeline applied.
func CoreTitle(rawTitle string) string {
	if rawTitle == "" {
		return ""
	}
	// URLs first so their tokens cannot masquerade as version keywords.
	s := urlPattern.ReplaceAllString(rawTitle, "")
	core, _ := SplitVersion(s)
	core = trailingMix.ReplaceAllString(core, "")
	return Normalize(core)
}

func hasVersionKeyword(group string) bool {
	for _, field := range strings.Fields(strings.ToLower(group)) {
		field = strings.Trim(field, ".,;:!")
		if _, ok := versionKeywords[field]; ok {
			return true
		}
	}
	return false
}

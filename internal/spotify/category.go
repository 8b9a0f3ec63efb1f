package spotify

import "strings"

// Keyword table mapping Spotify's fine-grained artist genres onto coarse
// categories. First keyword hit wins, so more specific entries come before
// broader ones ("drum and bass" before "bass", "punk" before "pop").
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"drum and bass", "dnb"},
	{"drum n bass", "dnb"},
	{"jungle", "dnb"},
	{"house", "house"},
	{"garage", "house"},
	{"techno", "techno"},
	{"trance", "trance"},
	{"dubstep", "bass"},
	{"ambient", "ambient"},
	{"downtempo", "ambient"},
	{"chill", "ambient"},
	{"hip hop", "hip-hop"},
	{"rap", "hip-hop"},
	{"grime", "hip-hop"},
	{"metal", "metal"},
	{"punk", "rock"},
	{"rock", "rock"},
	{"indie", "rock"},
	{"jazz", "jazz"},
	{"classical", "classical"},
	{"folk", "folk"},
	{"country", "folk"},
	{"funk", "soul"},
	{"soul", "soul"},
	{"disco", "soul"},
	{"r&b", "soul"},
	{"pop", "pop"},
}

// CategoryForGenres maps a list of artist genres to a coarse category.
// Genres are checked in order, so the artist's first genre dominates.
func CategoryForGenres(genres []string) string {
	for _, genre := range genres {
		g := strings.ToLower(genre)
		for _, entry := range categoryKeywords {
			if strings.Contains(g, entry.keyword) {
				return entry.category
			}
		}
	}
	return ""
}

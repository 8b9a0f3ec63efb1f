package match

import "strings"

// Record is the normalized view of one local track, precomputed so the
// matcher never normalizes inside its scan loops.
type Record struct {
	Track  *LocalTrack
	Title  string
	Core   string
	Artist string
}

// Index holds the lookup structures built once per matching run from the
// local collection: a set of exact keys, a set of core-title keys, and the
// per-track record list in input order. Duplicate local files collapse to a
// single key; that is intentional, the key sets answer membership only.
// An Index is never mutated after construction and is safe for concurrent
// readers.
type Index struct {
	exact   map[string]struct{}
	core    map[string]struct{}
	records []Record
}

// BuildIndex precomputes the lookup structures for a matching run.
// Every input track contributes exactly one entry to each structure.
func BuildIndex(tracks []LocalTrack) *Index {
	idx := &Index{
		exact:   make(map[string]struct{}, len(tracks)),
		core:    make(map[string]struct{}, len(tracks)),
		records: make([]Record, 0, len(tracks)),
	}
	for i := range tracks {
		track := &tracks[i]
		title := effectiveTitle(track)
		artist := NormalizeArtist(track.EffectiveArtist())
		record := Record{
			Track:  track,
			Title:  Normalize(title),
			Core:   CoreTitle(title),
			Artist: artist,
		}
		idx.exact[joinKey(record.Title, record.Artist)] = struct{}{}
		idx.core[joinKey(record.Core, record.Artist)] = struct{}{}
		idx.records = append(idx.records, record)
	}
	return idx
}

// Size returns the number of indexed local tracks.
func (idx *Index) Size() int {
	return len(idx.records)
}

// effectiveTitle strips a literal "<artist> - " prefix from the raw title,
// for sources that embed the artist in the title field. Both the primary
// artist and the plain artist are tried as prefix candidates.
func effectiveTitle(track *LocalTrack) string {
	for _, artist := range []string{track.PrimaryArtist, track.Artist} {
		if artist == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(track.Title, artist+" - "); ok {
			return rest
		}
	}
	return track.Title
}

func joinKey(title, artist string) string {
	return title + "_" + artist
}

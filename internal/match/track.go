package match

// LocalTrack is one file in the local collection. Title and Artist may be
// empty when tag extraction could not parse the file; the engine treats
// missing fields as empty strings rather than rejecting the record.
type LocalTrack struct {
	ID            string `json:"id"`
	Title         string `json:"title,omitempty"`
	Artist        string `json:"artist,omitempty"`
	PrimaryArtist string `json:"primary_artist,omitempty"`
	Album         string `json:"album,omitempty"`
	Genre         string `json:"genre,omitempty"`
	Path          string `json:"path"`
}

// EffectiveArtist returns the primary-artist override when set, otherwise
// the plain artist field.
func (t LocalTrack) EffectiveArtist() string {
	if t.PrimaryArtist != "" {
		return t.PrimaryArtist
	}
	return t.Artist
}

// StreamingTrack is one entry in the canonical streaming library.
type StreamingTrack struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	PrimaryArtist string `json:"primary_artist,omitempty"`
	Album         string `json:"album,omitempty"`
	Genre         string `json:"genre,omitempty"`
	Category      string `json:"category,omitempty"`
}

// EffectiveArtist returns the primary-artist override when set, otherwise
// the plain artist field.
func (t StreamingTrack) EffectiveArtist() string {
	if t.PrimaryArtist != "" {
		return t.PrimaryArtist
	}
	return t.Artist
}

package match

import (
	"reflect"
	"testing"
)

func TestMatchTierExact(t *testing.T) {
	// Punctuation and definite-article differences disappear under
	// normalization, so these are exact-key equal.
	idx := BuildIndex([]LocalTrack{
		{ID: "l1", Title: "Don't Stop", Artist: "Beatles"},
	})
	result := Match(StreamingTrack{ID: "s1", Title: "Dont Stop", Artist: "The Beatles"}, idx)

	if !result.Matched || result.Tier != TierExact {
		t.Fatalf("got matched=%v tier=%d, want exact match", result.Matched, result.Tier)
	}
	if result.Local != nil {
		t.Error("exact tier reports key membership only, no record identity")
	}
}

func TestMatchTierCore(t *testing.T) {
	idx := BuildIndex([]LocalTrack{
		{ID: "l1", Title: "Song", Artist: "DJ X"},
	})
	result := Match(StreamingTrack{ID: "s1", Title: "Song (Extended Mix)", Artist: "DJ X"}, idx)

	if !result.Matched || result.Tier != TierCore {
		t.Fatalf("got matched=%v tier=%d, want core match", result.Matched, result.Tier)
	}
	if result.Local != nil {
		t.Error("core key tier reports membership only")
	}
}

func TestMatchTierCrossTier(t *testing.T) {
	// One side kept version info the other stripped, in a shape neither key
	// set covers. Both scan directions are exercised: streaming core against
	// the local full title, and streaming full title against the local core.
	tests := []struct {
		name      string
		local     LocalTrack
		streaming StreamingTrack
	}{
		{
			name:      "streaming core equals local full title",
			local:     LocalTrack{ID: "l1", Title: "Song (Club Mix)", Artist: "DJ X"},
			streaming: StreamingTrack{ID: "s1", Title: "Song Club Mix (Radio Edit)", Artist: "DJ X"},
		},
		{
			name:      "streaming full title equals local core",
			local:     LocalTrack{ID: "l1", Title: "Song Acoustic Club Mix (Dub)", Artist: "DJ X"},
			streaming: StreamingTrack{ID: "s1", Title: "Song Acoustic (Club Mix)", Artist: "DJ X"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := BuildIndex([]LocalTrack{tt.local})
			result := Match(tt.streaming, idx)
			if !result.Matched || result.Tier != TierCore {
				t.Fatalf("got matched=%v tier=%d, want cross-tier core match", result.Matched, result.Tier)
			}
			if result.Local == nil || result.Local.ID != "l1" {
				t.Error("cross-tier match should identify the local record")
			}
		})
	}
}

func TestMatchTierFuzzy(t *testing.T) {
	idx := BuildIndex([]LocalTrack{
		{ID: "l1", Title: "One More Time", Artist: "Daft Punk"},
	})
	result := Match(StreamingTrack{ID: "s1", Title: "One More Tyme", Artist: "Daft Punk"}, idx)

	if !result.Matched || result.Tier != TierFuzzy {
		t.Fatalf("got matched=%v tier=%d, want fuzzy match", result.Matched, result.Tier)
	}
	if result.Local == nil || result.Local.ID != "l1" {
		t.Fatal("fuzzy match should identify the local record")
	}
	if result.Similarity < DefaultFuzzyThreshold || result.Similarity > 100 {
		t.Errorf("similarity = %d, want within [%d, 100]", result.Similarity, DefaultFuzzyThreshold)
	}
}

func TestMatchUnmatched(t *testing.T) {
	idx := BuildIndex([]LocalTrack{
		{ID: "l1", Title: "Some Song", Artist: "Somebody"},
	})
	result := Match(StreamingTrack{ID: "s1", Title: "Completely Unrelated Song", Artist: "Obscure Artist"}, idx)

	if result.Matched || result.Tier != TierNone {
		t.Fatalf("got matched=%v tier=%d, want no match", result.Matched, result.Tier)
	}
	if result.Local != nil || result.Similarity != 0 {
		t.Error("unmatched result should carry no local track or similarity")
	}
}

func TestMatchArtistGate(t *testing.T) {
	// Same title, different artist: the fuzzy tier must never cross artists.
	idx := BuildIndex([]LocalTrack{
		{ID: "l1", Title: "Home", Artist: "Artist A"},
	})
	result := Match(StreamingTrack{ID: "s1", Title: "Home", Artist: "Artist B"}, idx)

	if result.Matched {
		t.Fatalf("cross-artist match at tier %d", result.Tier)
	}
}

func TestMatchDeterministic(t *testing.T) {
	idx := BuildIndex([]LocalTrack{
		{ID: "l1", Title: "Song (Radio Edit)", Artist: "DJ X"},
		{ID: "l2", Title: "Song", Artist: "DJ X"},
	})
	track := StreamingTrack{ID: "s1", Title: "Song (Extended Mix)", Artist: "DJ X"}

	first := Match(track, idx)
	second := Match(track, idx)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Match not deterministic: %+v vs %+v", first, second)
	}
}

func TestMatchFirstSufficientWins(t *testing.T) {
	// Two fuzzy candidates above threshold: insertion order decides.
	idx := BuildIndex([]LocalTrack{
		{ID: "first", Title: "One More Tyme", Artist: "Daft Punk"},
		{ID: "second", Title: "One More Time", Artist: "Daft Punk"},
	})
	result := Match(StreamingTrack{ID: "s1", Title: "One More Timex", Artist: "Daft Punk"}, idx)

	if !result.Matched || result.Tier != TierFuzzy {
		t.Fatalf("got matched=%v tier=%d, want fuzzy match", result.Matched, result.Tier)
	}
	if result.Local == nil || result.Local.ID != "first" {
		t.Errorf("want first sufficient candidate, got %+v", result.Local)
	}
}

func TestMatchNormalizedStringsRetained(t *testing.T) {
	idx := BuildIndex(nil)
	result := Match(StreamingTrack{Title: "Sông (VIP)", Artist: "The Béatles"}, idx)

	if result.Title != "song vip" {
		t.Errorf("result.Title = %q", result.Title)
	}
	if result.Core != "song" {
		t.Errorf("result.Core = %q", result.Core)
	}
	if result.Artist != "beatles" {
		t.Errorf("result.Artist = %q", result.Artist)
	}
}

func TestMatchTrace(t *testing.T) {
	idx := BuildIndex([]LocalTrack{
		{ID: "l1", Title: "Elsewhere", Artist: "Nobody"},
	})
	var events []TraceEvent
	matcher := Matcher{Index: idx, Trace: func(event TraceEvent) {
		events = append(events, event)
	}}

	matcher.Match(StreamingTrack{Title: "Missing Song", Artist: "Obscure Artist"})

	if len(events) != 3 {
		t.Fatalf("got %d trace events, want one per tier", len(events))
	}
	wantTiers := []Tier{TierExact, TierCore, TierFuzzy}
	for i, event := range events {
		if event.Tier != wantTiers[i] || event.Matched {
			t.Errorf("event %d = tier %d matched %v", i, event.Tier, event.Matched)
		}
	}
}

func TestMatchAllPreservesOrder(t *testing.T) {
	local := []LocalTrack{
		{ID: "l1", Title: "Song", Artist: "DJ X"},
	}
	streaming := []StreamingTrack{
		{ID: "s1", Title: "Song", Artist: "DJ X"},
		{ID: "s2", Title: "Absent", Artist: "Nobody"},
		{ID: "s3", Title: "Song (Extended Mix)", Artist: "DJ X"},
	}

	results := MatchAll(streaming, local)
	if len(results) != len(streaming) {
		t.Fatalf("got %d results, want %d", len(results), len(streaming))
	}
	for i, result := range results {
		if result.Streaming.ID != streaming[i].ID {
			t.Errorf("result %d is for %s, want %s", i, result.Streaming.ID, streaming[i].ID)
		}
	}
	if !results[0].Matched || results[1].Matched || !results[2].Matched {
		t.Errorf("unexpected verdicts: %v %v %v", results[0].Matched, results[1].Matched, results[2].Matched)
	}
}

func TestMatchEmptyFieldsFailToMatch(t *testing.T) {
	idx := BuildIndex([]LocalTrack{
		{ID: "l1", Title: "Song", Artist: "DJ X"},
	})
	result := Match(StreamingTrack{}, idx)
	if result.Matched {
		t.Errorf("empty streaming track matched at tier %d", result.Tier)
	}
}

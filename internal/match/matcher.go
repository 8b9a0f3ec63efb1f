package match

// Tier identifies which matching strategy produced a result, in order of
// decreasing strictness.
type Tier int

const (
	// TierNone means no tier matched.
	TierNone Tier = 0
	// TierExact is a normalized title+artist key hit.
	TierExact Tier = 1
	// TierCore is a core-title key hit or a cross-tier title equality.
	TierCore Tier = 2
	// TierFuzzy is an edit-distance match at or above the fuzzy threshold.
	TierFuzzy Tier = 3
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierCore:
		return "core"
	case TierFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// DefaultFuzzyThreshold is the minimum percentage similarity for a tier-3
// match.
const DefaultFuzzyThreshold = 85

// Result is the verdict for one streaming track. Local is set only when a
// tier identifies a specific record: exact and core key hits report
// membership without record identity because the key sets deliberately
// collapse duplicates. Similarity is populated for fuzzy matches only.
// The normalized strings used for comparison are retained for audit output.
type Result struct {
	Matched    bool
	Tier       Tier
	Streaming  StreamingTrack
	Local      *LocalTrack
	Similarity int
	Title      string
	Core       string
	Artist     string
}

// TraceEvent describes one tier decision during a match, for optional
// fine-grained diagnostics.
type TraceEvent struct {
	Tier       Tier
	Streaming  StreamingTrack
	Candidate  *LocalTrack
	Matched    bool
	Similarity int
}

// TraceFunc observes tier decisions. A nil TraceFunc is a no-op.
type TraceFunc func(TraceEvent)

// Matcher runs the tiered cascade for streaming tracks against a prebuilt
// Index. The zero threshold means DefaultFuzzyThreshold. Matcher holds no
// per-call state; a single value may serve concurrent Match calls.
type Matcher struct {
	Index     *Index
	Threshold int
	Trace     TraceFunc
}

// Match attempts the tiered cascade for one streaming track. Tiers are
// strictly ordered and the first match wins; no tier looks for a better
// match once an earlier tier succeeded. The function is deterministic and
// total: malformed or absent fields normalize to empty strings and fail to
// match rather than erroring.
func (m *Matcher) Match(track StreamingTrack) Result {
	result := Result{
		Streaming: track,
		Title:     Normalize(track.Title),
		Core:      CoreTitle(track.Title),
		Artist:    NormalizeArtist(track.EffectiveArtist()),
	}

	// Tier 1: exact key membership.
	if _, ok := m.Index.exact[joinKey(result.Title, result.Artist)]; ok {
		result.Matched = true
		result.Tier = TierExact
		m.trace(TraceEvent{Tier: TierExact, Streaming: track, Matched: true})
		return result
	}
	m.trace(TraceEvent{Tier: TierExact, Streaming: track})

	// Tier 2: core-title key membership.
	if _, ok := m.Index.core[joinKey(result.Core, result.Artist)]; ok {
		result.Matched = true
		result.Tier = TierCore
		m.trace(TraceEvent{Tier: TierCore, Streaming: track, Matched: true})
		return result
	}

	// Tier 2b: one side kept version info the other stripped. Compare the
	// streaming full title against local cores and vice versa, restricted to
	// artist-equal records.
	for i := range m.Index.records {
		record := &m.Index.records[i]
		if record.Artist != result.Artist {
			continue
		}
		if result.Title == record.Core || result.Core == record.Title {
			result.Matched = true
			result.Tier = TierCore
			result.Local = record.Track
			m.trace(TraceEvent{Tier: TierCore, Streaming: track, Candidate: record.Track, Matched: true})
			return result
		}
	}
	m.trace(TraceEvent{Tier: TierCore, Streaming: track})

	// Tier 3: fuzzy, same artist gate. First record crossing the threshold
	// wins, so the outcome follows the index's insertion order when several
	// candidates qualify.
	threshold := m.Threshold
	if threshold == 0 {
		threshold = DefaultFuzzyThreshold
	}
	for i := range m.Index.records {
		record := &m.Index.records[i]
		if record.Artist != result.Artist {
			continue
		}
		titleSim := Similarity(record.Title, result.Title)
		coreSim := Similarity(record.Core, result.Core)
		if titleSim >= threshold || coreSim >= threshold {
			result.Matched = true
			result.Tier = TierFuzzy
			result.Local = record.Track
			result.Similarity = titleSim
			if coreSim > titleSim {
				result.Similarity = coreSim
			}
			m.trace(TraceEvent{Tier: TierFuzzy, Streaming: track, Candidate: record.Track, Matched: true, Similarity: result.Similarity})
			return result
		}
	}
	m.trace(TraceEvent{Tier: TierFuzzy, Streaming: track})

	return result
}

func (m *Matcher) trace(event TraceEvent) {
	if m.Trace != nil {
		m.Trace(event)
	}
}

// Match runs the tiered cascade for a single streaming track with default
// settings.
func Match(track StreamingTrack, index *Index) Result {
	matcher := Matcher{Index: index}
	return matcher.Match(track)
}

// MatchAll builds one index from the local collection and matches every
// streaming track against it, preserving input order. One Result is
// produced per streaming track, matched or not.
func MatchAll(streaming []StreamingTrack, local []LocalTrack) []Result {
	matcher := Matcher{Index: BuildIndex(local)}
	results := make([]Result, 0, len(streaming))
	for _, track := range streaming {
		results = append(results, matcher.Match(track))
	}
	return results
}

package eval

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gwherrett/mako-sync/internal/match"
)

// Verdict labels what a fixture case asserts about its streaming track.
type Verdict string

const (
	// VerdictTrueMissing asserts the track is correctly absent locally and
	// must never match anything.
	VerdictTrueMissing Verdict = "true-missing"
	// VerdictFalseNegative asserts the track should match its expected local
	// track but the matcher currently fails to find it.
	VerdictFalseNegative Verdict = "false-negative"
)

// Case is one labeled corpus entry.
type Case struct {
	Name      string               `json:"name"`
	Streaming match.StreamingTrack `json:"streaming"`
	Expected  *match.LocalTrack    `json:"expected,omitempty"`
	Verdict   Verdict              `json:"verdict"`
	Category  string               `json:"category,omitempty"`
	Notes     string               `json:"notes,omitempty"`
}

// Validate enforces the label invariant: a true-missing case carries no
// expected track, a false-negative case must name one.
func (c Case) Validate() error {
	switch c.Verdict {
	case VerdictTrueMissing:
		if c.Expected != nil {
			return fmt.Errorf("case %q: true-missing must not name an expected track", c.Name)
		}
	case VerdictFalseNegative:
		if c.Expected == nil {
			return fmt.Errorf("case %q: false-negative must name an expected track", c.Name)
		}
	default:
		return fmt.Errorf("case %q: unknown verdict %q", c.Name, c.Verdict)
	}
	return nil
}

// Load reads and validates a fixture corpus from a JSON file.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture corpus: %w", err)
	}
	var cases []Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("parse fixture corpus: %w", err)
	}
	for _, c := range cases {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	return cases, nil
}

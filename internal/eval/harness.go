package eval

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gwherrett/mako-sync/internal/match"
)

// Failure records one case whose outcome is a defect or a still-open gap.
type Failure struct {
	Case     string
	Verdict  Verdict
	Category string
	Tier     match.Tier
	Detail   string
}

// CategoryStats counts outcomes for one failure-category tag.
type CategoryStats struct {
	Passed int
	Failed int
}

// Report aggregates harness outcomes for one evaluation run.
//
// Outcome mapping: a true-missing case that stays unmatched is a true
// positive; one that matches anything is a false positive (always a defect).
// A false-negative case that now matches is a true negative (the gap has
// been fixed); one that still fails to match is a false negative.
type Report struct {
	RunID          string
	Cases          int
	TruePositives  int
	FalsePositives int
	TrueNegatives  int
	FalseNegatives int
	Failures       []Failure
	Categories     map[string]CategoryStats
}

// Recall is the share of should-match cases the matcher finds.
func (r Report) Recall() float64 {
	total := r.TrueNegatives + r.FalseNegatives
	if total == 0 {
		return 1
	}
	return float64(r.TrueNegatives) / float64(total)
}

// FalseNegativeRate is the complement of recall.
func (r Report) FalseNegativeRate() float64 {
	return 1 - r.Recall()
}

// Evaluate runs the matcher over every case against a single index built
// from all cases' expected local tracks combined. Sharing one index is the
// point: a track labeled truly missing must stay unmatched even against
// another case's expected track.
func Evaluate(cases []Case) (Report, error) {
	report := Report{
		RunID:      uuid.NewString(),
		Cases:      len(cases),
		Categories: make(map[string]CategoryStats),
	}

	var locals []match.LocalTrack
	for _, c := range cases {
		if err := c.Validate(); err != nil {
			return Report{}, err
		}
		if c.Expected != nil {
			locals = append(locals, *c.Expected)
		}
	}

	matcher := match.Matcher{Index: match.BuildIndex(locals)}
	for _, c := range cases {
		result := matcher.Match(c.Streaming)
		switch c.Verdict {
		case VerdictTrueMissing:
			if result.Matched {
				report.FalsePositives++
				report.Failures = append(report.Failures, Failure{
					Case:     c.Name,
					Verdict:  c.Verdict,
					Category: c.Category,
					Tier:     result.Tier,
					Detail:   fmt.Sprintf("labeled truly missing but matched at tier %d", result.Tier),
				})
			} else {
				report.TruePositives++
			}
		case VerdictFalseNegative:
			stats := report.Categories[c.Category]
			if result.Matched {
				report.TrueNegatives++
				stats.Passed++
			} else {
				report.FalseNegatives++
				stats.Failed++
				report.Failures = append(report.Failures, Failure{
					Case:     c.Name,
					Verdict:  c.Verdict,
					Category: c.Category,
					Detail:   "still unmatched",
				})
			}
			report.Categories[c.Category] = stats
		}
	}
	return report, nil
}

// Check enforces the non-regression contract: zero false positives, and a
// false-negative rate no worse than the ratchet threshold. The threshold is
// only ever lowered as matching improves.
func Check(report Report, maxFalseNegativeRate float64) error {
	if report.FalsePositives > 0 {
		return fmt.Errorf("%d false positive(s): truly-missing tracks matched local files", report.FalsePositives)
	}
	if rate := report.FalseNegativeRate(); rate > maxFalseNegativeRate {
		return fmt.Errorf("false-negative rate %.3f exceeds threshold %.3f", rate, maxFalseNegativeRate)
	}
	return nil
}

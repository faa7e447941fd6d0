package analysis

import (
	"math"
	"time"
)

// Detection thresholds. The exact cutoffs are product choices, not API
// facts: a repo needs real popularity before a missing license matters,
// and a PR is only stale once it has sat open past the review horizon.
const (
	popularStarThreshold = 50
	staleRepoStarMinimum = 10

	staleRepoAge       = 6 * 30 * 24 * time.Hour
	stalePRAge         = 30 * 24 * time.Hour
	staleIssueAge      = 60 * 24 * time.Hour
	contributionGapAge = 30 * 24 * time.Hour
)

// scoreScale maps a raw severity signal onto the shared (0, 5] scale.
// Base is the score right at the trigger threshold, PerUnit the increase
// per unit of signal beyond it. Scores saturate at Max, so the mapping is
// monotonic non-decreasing and clamped by construction.
type scoreScale struct {
	Base    float64
	PerUnit float64
	Max     float64
}

// score converts a signal (units beyond the trigger threshold) to a score.
// Negative signals clamp to the base: triggering at all is worth Base.
func (s scoreScale) score(signal float64) float64 {
	if signal < 0 {
		signal = 0
	}
	v := s.Base + s.PerUnit*signal
	if v > s.Max {
		v = s.Max
	}
	return math.Round(v*100) / 100
}

var (
	// signal: stars above popularStarThreshold
	licenseScale = scoreScale{Base: 2.0, PerUnit: 0.02, Max: 5}

	// signal: idle days beyond staleRepoAge
	staleRepoScale = scoreScale{Base: 1.5, PerUnit: 0.01, Max: 4.5}

	// signal: stars above staleRepoStarMinimum
	descriptionScale = scoreScale{Base: 1.0, PerUnit: 0.005, Max: 2.5}

	// signal: open days beyond stalePRAge
	stalePRScale = scoreScale{Base: 1.8, PerUnit: 0.03, Max: 5}

	// signal: open days beyond staleIssueAge
	staleIssueScale = scoreScale{Base: 1.2, PerUnit: 0.02, Max: 4}

	// signal: quiet days beyond contributionGapAge
	contributionGapScale = scoreScale{Base: 2.0, PerUnit: 0.05, Max: 4.5}
)

// profileGapScore is flat: a missing bio or blog link is a fixed-size nudge.
const profileGapScore = 1.5

// daysBeyond returns how many days past the given age threshold the
// timestamp is, relative to now. Negative when the threshold isn't reached.
func daysBeyond(now, t time.Time, age time.Duration) float64 {
	return now.Sub(t.Add(age)).Hours() / 24
}

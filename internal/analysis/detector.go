// Package analysis turns normalized GitHub data into scored, ranked,
// categorized findings.
package analysis

import (
	"time"

	"github.com/alimgiray/gitfocus/internal/models"
)

// Input carries everything the detectors inspect for one analysis run.
// Now is the reference time for all age calculations, so runs are
// reproducible in tests.
type Input struct {
	Profile      models.Profile
	Repositories []models.RepositorySummary
	PullRequests []models.ActivityItem
	Issues       []models.ActivityItem
	Events       []time.Time
	Now          time.Time
}

// Detector is a pure rule that examines the input and produces zero or
// more candidate findings. Detectors share no state and never report
// errors; an empty slice means nothing to flag.
type Detector func(in *Input) []models.Finding

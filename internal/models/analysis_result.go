package models

import "time"

// CategoryScores summarizes findings per category for the UI's score
// overview cards. A category with no findings scores zero.
type CategoryScores struct {
	Health float64 `json:"health"`
	Work   float64 `json:"work"`
	Growth float64 `json:"growth"`
}

// AnalysisResult is the unit of caching and rendering: the analyzed
// profile plus its ranked findings. Timestamp is epoch milliseconds at
// capture time.
type AnalysisResult struct {
	Profile   Profile        `json:"profile"`
	Findings  []Finding      `json:"findings"`
	Scores    CategoryScores `json:"scores"`
	RepoCount int            `json:"repo_count"`
	Timestamp int64          `json:"timestamp"`
}

// CapturedAt returns the capture timestamp as a time.Time.
func (r *AnalysisResult) CapturedAt() time.Time {
	return time.UnixMilli(r.Timestamp)
}

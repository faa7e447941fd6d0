package models

import "time"

// RepositorySummary holds the slice of repository metadata the detectors
// inspect. License is nil when the repository has no detectable license,
// which is itself a signal.
type RepositorySummary struct {
	Name          string    `json:"name"`
	FullName      string    `json:"full_name"`
	Fork          bool      `json:"fork"`
	Description   *string   `json:"description"`
	License       *string   `json:"license"`
	Stars         int       `json:"stars"`
	PushedAt      time.Time `json:"pushed_at"`
	DefaultBranch string    `json:"default_branch"`
}

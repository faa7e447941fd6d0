package models

import "time"

type ActivityType string

const (
	ActivityTypePR    ActivityType = "pr"
	ActivityTypeIssue ActivityType = "issue"
)

// ActivityItem is a pull request or issue authored by the analyzed user,
// sourced from the search API.
type ActivityItem struct {
	Title         string       `json:"title"`
	URL           string       `json:"url"`
	CreatedAt     time.Time    `json:"created_at"`
	RepositoryURL string       `json:"repository_url"`
	Open          bool         `json:"open"`
	Type          ActivityType `json:"type"`
}

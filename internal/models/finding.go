package models

type Category string

const (
	CategoryHealth Category = "health"
	CategoryWork   Category = "work"
	CategoryGrowth Category = "growth"
)

// Finding is a single actionable observation about the analyzed account.
// Score is always in (0, 5]; a detector that has nothing to say emits no
// finding rather than a zero score. Rank is assigned by the ranker and is
// 1-based.
type Finding struct {
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Score    float64  `json:"score"`
	Link     string   `json:"link,omitempty"`
	Rank     int      `json:"rank"`
}

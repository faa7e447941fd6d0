package analysis

import (
	"sort"

	"github.com/alimgiray/gitfocus/internal/models"
)

// Rank sorts findings by score in descending order and assigns the 1-based
// display rank. The sort is stable: ties keep detector registration order,
// then intra-detector emission order. Findings are not deduplicated; two
// detectors may flag the same repository for different reasons.
func Rank(findings []models.Finding) []models.Finding {
	ranked := make([]models.Finding, len(findings))
	copy(ranked, findings)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// Summarize reduces the findings to one headline score per category: the
// score of the category's top finding, zero when the category is clean.
func Summarize(findings []models.Finding) models.CategoryScores {
	var scores models.CategoryScores
	for _, f := range findings {
		switch f.Category {
		case models.CategoryHealth:
			if f.Score > scores.Health {
				scores.Health = f.Score
			}
		case models.CategoryWork:
			if f.Score > scores.Work {
				scores.Work = f.Score
			}
		case models.CategoryGrowth:
			if f.Score > scores.Growth {
				scores.Growth = f.Score
			}
		}
	}
	return scores
}

package analysis

import (
	"github.com/alimgiray/gitfocus/internal/models"
	"github.com/alimgiray/gitfocus/pkg/logger"
)

// Engine runs all registered detectors over one analysis input and
// assembles the ranked result.
type Engine struct {
	detectors []Detector
}

// NewEngine creates an engine with all built-in detectors registered.
// Registration order is the tiebreak for equal scores.
func NewEngine() *Engine {
	return &Engine{
		detectors: []Detector{
			MissingLicense,
			StaleRepository,
			MissingDescription,
			StalePullRequest,
			StaleIssue,
			ProfileGap,
			ContributionGap,
		},
	}
}

// Analyze runs every detector, ranks the collected findings, and returns
// the assembled result. A panicking detector is skipped, not fatal: one
// malformed record must not void the whole analysis.
func (e *Engine) Analyze(in *Input) *models.AnalysisResult {
	var all []models.Finding
	for _, detector := range e.detectors {
		all = append(all, runDetector(detector, in)...)
	}

	ranked := Rank(all)

	return &models.AnalysisResult{
		Profile:   in.Profile,
		Findings:  ranked,
		Scores:    Summarize(ranked),
		RepoCount: len(in.Repositories),
		Timestamp: in.Now.UnixMilli(),
	}
}

func runDetector(detector Detector, in *Input) (findings []models.Finding) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Errorf("detector panicked, skipping")
			findings = nil
		}
	}()
	return detector(in)
}

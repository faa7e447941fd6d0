package services

import (
	"context"
	"time"

	"github.com/alimgiray/gitfocus/internal/analysis"
	"github.com/alimgiray/gitfocus/internal/github"
	"github.com/alimgiray/gitfocus/internal/models"
	"github.com/alimgiray/gitfocus/pkg/logger"
)

// AnalysisOutcome is what the rendering layer gets: the result plus
// whether it came from the cache and whether that cache entry is stale.
// A stale outcome is still displayable; the caller surfaces a re-scan
// affordance instead of a blank page.
type AnalysisOutcome struct {
	Result *models.AnalysisResult `json:"result"`
	Cached bool                   `json:"cached"`
	Stale  bool                   `json:"stale"`
}

// AnalysisService runs the full pipeline: cache lookup, data fetch,
// detection, ranking, cache write.
type AnalysisService struct {
	githubClient    *github.Client
	engine          *analysis.Engine
	snapshotService *SnapshotService
	now             func() time.Time
}

func NewAnalysisService(githubClient *github.Client, engine *analysis.Engine, snapshotService *SnapshotService) *AnalysisService {
	return &AnalysisService{
		githubClient:    githubClient,
		engine:          engine,
		snapshotService: snapshotService,
		now:             time.Now,
	}
}

// GetAnalysis returns the analysis for a username. A fresh cache entry
// short-circuits the pipeline entirely. A stale entry is returned as-is,
// flagged stale, so the caller can offer a re-scan. Only on a miss does
// the full pipeline run.
func (s *AnalysisService) GetAnalysis(ctx context.Context, username string) (*AnalysisOutcome, error) {
	cached, state := s.snapshotService.Get(username)
	switch state {
	case CacheFresh:
		return &AnalysisOutcome{Result: cached, Cached: true}, nil
	case CacheStale:
		return &AnalysisOutcome{Result: cached, Cached: true, Stale: true}, nil
	}

	result, err := s.runPipeline(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := s.snapshotService.Put(username, result); err != nil {
		// The analysis itself succeeded; a cache write failure only costs
		// the next caller a re-fetch.
		logger.WithError(err).Errorf("failed to cache analysis for %s", username)
	}

	return &AnalysisOutcome{Result: result}, nil
}

// Rescan discards any cached entry and forces a fresh pipeline run.
// The new snapshot's timestamp is strictly greater than the old one's.
func (s *AnalysisService) Rescan(ctx context.Context, username string) (*AnalysisOutcome, error) {
	if err := s.snapshotService.Invalidate(username); err != nil {
		logger.WithError(err).Errorf("failed to invalidate snapshot for %s", username)
	}

	result, err := s.runPipeline(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := s.snapshotService.Put(username, result); err != nil {
		logger.WithError(err).Errorf("failed to cache analysis for %s", username)
	}

	return &AnalysisOutcome{Result: result}, nil
}

// runPipeline fetches everything the detectors need and runs the engine.
// A profile 404 propagates as github.ErrUserNotFound and populates nothing.
func (s *AnalysisService) runPipeline(ctx context.Context, username string) (*models.AnalysisResult, error) {
	profile, err := s.githubClient.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	repos, err := s.githubClient.ListRepositories(ctx, username)
	if err != nil {
		return nil, err
	}

	prs, err := s.githubClient.SearchActivity(ctx, username, models.ActivityTypePR)
	if err != nil {
		return nil, err
	}

	issues, err := s.githubClient.SearchActivity(ctx, username, models.ActivityTypeIssue)
	if err != nil {
		return nil, err
	}

	// The events feed only powers the contribution-gap detector; losing it
	// shouldn't void the whole analysis.
	events, err := s.githubClient.ListRecentEvents(ctx, username)
	if err != nil {
		logger.WithError(err).Warnf("failed to fetch events for %s, skipping contribution signals", username)
		events = nil
	}

	input := &analysis.Input{
		Profile:      *profile,
		Repositories: repos,
		PullRequests: prs,
		Issues:       issues,
		Events:       events,
		Now:          s.now(),
	}

	return s.engine.Analyze(input), nil
}

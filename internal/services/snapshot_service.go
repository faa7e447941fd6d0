package services

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/alimgiray/gitfocus/internal/models"
	"github.com/alimgiray/gitfocus/internal/repositories"
	"github.com/alimgiray/gitfocus/pkg/logger"
)

// CacheState is the per-entry state machine: absent → fresh (on put),
// fresh → stale (freshness window passes), stale → fresh (on re-scan put),
// any → absent (on invalidate).
type CacheState int

const (
	CacheAbsent CacheState = iota
	CacheFresh
	CacheStale
)

func (s CacheState) String() string {
	switch s {
	case CacheFresh:
		return "fresh"
	case CacheStale:
		return "stale"
	default:
		return "absent"
	}
}

// SnapshotService is the result cache. One entry per username, last write
// wins, staleness computed lazily at read time. There is no eviction
// sweep; a stale entry stays displayable until replaced or invalidated.
type SnapshotService struct {
	snapshotRepo *repositories.AnalysisSnapshotRepository
	ttl          time.Duration
	now          func() time.Time
}

func NewSnapshotService(snapshotRepo *repositories.AnalysisSnapshotRepository, ttl time.Duration) *SnapshotService {
	return &SnapshotService{
		snapshotRepo: snapshotRepo,
		ttl:          ttl,
		now:          time.Now,
	}
}

// Get returns the stored result for a username and its cache state.
// A corrupt stored payload degrades to a miss: the row is dropped and
// logged, never surfaced as an error.
func (s *SnapshotService) Get(username string) (*models.AnalysisResult, CacheState) {
	snapshot, err := s.snapshotRepo.GetByUsername(username)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.WithError(err).Errorf("failed to read analysis snapshot for %s", username)
		}
		return nil, CacheAbsent
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(snapshot.Payload), &result); err != nil {
		logger.WithError(err).Warnf("corrupt analysis snapshot for %s, dropping", username)
		if err := s.snapshotRepo.Delete(username); err != nil {
			logger.WithError(err).Errorf("failed to drop corrupt snapshot for %s", username)
		}
		return nil, CacheAbsent
	}

	if s.IsFresh(snapshot.CapturedAt, s.now()) {
		return &result, CacheFresh
	}
	return &result, CacheStale
}

// Put stores a result for a username, unconditionally replacing any prior
// entry and stamping the capture time to now.
func (s *SnapshotService) Put(username string, result *models.AnalysisResult) error {
	now := s.now()
	result.Timestamp = now.UnixMilli()

	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}

	snapshot := models.NewAnalysisSnapshot(username, string(payload))
	snapshot.CapturedAt = now

	return s.snapshotRepo.Upsert(snapshot)
}

// Invalidate removes the entry for a username. Used by the explicit
// re-scan action.
func (s *SnapshotService) Invalidate(username string) error {
	return s.snapshotRepo.Delete(username)
}

// IsFresh reports whether a capture time is within the freshness window.
func (s *SnapshotService) IsFresh(capturedAt, now time.Time) bool {
	return now.Sub(capturedAt) < s.ttl
}

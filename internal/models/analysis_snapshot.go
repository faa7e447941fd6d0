package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AnalysisSnapshot is one stored analysis result per username. Username is
// always lowercase; lookups are case-insensitive. Payload is the serialized
// AnalysisResult.
type AnalysisSnapshot struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Payload    string    `json:"payload"`
	CapturedAt time.Time `json:"captured_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewAnalysisSnapshot creates a new AnalysisSnapshot with a generated UUID
// and the capture time stamped to now.
func NewAnalysisSnapshot(username, payload string) *AnalysisSnapshot {
	now := time.Now()
	return &AnalysisSnapshot{
		ID:         uuid.New().String(),
		Username:   strings.ToLower(username),
		Payload:    payload,
		CapturedAt: now,
		CreatedAt:  now,
	}
}

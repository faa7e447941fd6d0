package repositories

import (
	"database/sql"
	"strings"

	"github.com/alimgiray/gitfocus/internal/models"
)

type AnalysisSnapshotRepository struct {
	db *sql.DB
}

func NewAnalysisSnapshotRepository(db *sql.DB) *AnalysisSnapshotRepository {
	return &AnalysisSnapshotRepository{
		db: db,
	}
}

// GetByUsername retrieves the stored snapshot for a username.
// Lookup is case-insensitive; returns sql.ErrNoRows when absent.
func (r *AnalysisSnapshotRepository) GetByUsername(username string) (*models.AnalysisSnapshot, error) {
	query := `
		SELECT id, username, payload, captured_at, created_at
		FROM analysis_snapshots
		WHERE username = $1
	`

	snapshot := &models.AnalysisSnapshot{}
	err := r.db.QueryRow(query, strings.ToLower(username)).Scan(
		&snapshot.ID,
		&snapshot.Username,
		&snapshot.Payload,
		&snapshot.CapturedAt,
		&snapshot.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// Upsert stores a snapshot, unconditionally replacing any prior entry for
// the same username. Last write wins.
func (r *AnalysisSnapshotRepository) Upsert(snapshot *models.AnalysisSnapshot) error {
	query := `
		INSERT INTO analysis_snapshots (id, username, payload, captured_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT(username) DO UPDATE SET
			id = excluded.id,
			payload = excluded.payload,
			captured_at = excluded.captured_at
	`

	_, err := r.db.Exec(query,
		snapshot.ID,
		snapshot.Username,
		snapshot.Payload,
		snapshot.CapturedAt,
		snapshot.CreatedAt,
	)

	return err
}

// Delete removes the snapshot for a username
func (r *AnalysisSnapshotRepository) Delete(username string) error {
	query := `DELETE FROM analysis_snapshots WHERE username = $1`

	_, err := r.db.Exec(query, strings.ToLower(username))
	return err
}

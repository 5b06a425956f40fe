package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/zenith/core/internal/domain/entities"
)

const moodColumns = `id, user_id, mood, energy, reflection, recorded_at`

// MoodRepository implements the mood journal on postgres. The journal is
// append-only: there is no update or delete statement here.
type MoodRepository struct {
	db *sqlx.DB
}

// NewMoodRepository creates a new mood repository
func NewMoodRepository(db *sqlx.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

// Create appends a journal entry
func (r *MoodRepository) Create(ctx context.Context, entry *entities.MoodEntry) error {
	query := `
		INSERT INTO mood_entries (id, user_id, mood, energy, reflection, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Mood,
		entry.Energy,
		entry.Reflection,
		entry.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create mood entry: %w", err)
	}

	return nil
}

// ListSince returns entries recorded at or after the cutoff, oldest first
func (r *MoodRepository) ListSince(ctx context.Context, ownerID string, since time.Time) ([]*entities.MoodEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM mood_entries
		WHERE user_id = $1 AND recorded_at >= $2
		ORDER BY recorded_at ASC, id
	`, moodColumns)

	var entries []*entities.MoodEntry
	if err := r.db.SelectContext(ctx, &entries, query, ownerID, since); err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}

	return entries, nil
}

// Latest returns the single most recent entry
func (r *MoodRepository) Latest(ctx context.Context, ownerID string) (*entities.MoodEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM mood_entries
		WHERE user_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1
	`, moodColumns)

	var entry entities.MoodEntry
	err := r.db.GetContext(ctx, &entry, query, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrMoodEntryNotFound
		}
		return nil, fmt.Errorf("failed to get latest mood entry: %w", err)
	}

	return &entry, nil
}

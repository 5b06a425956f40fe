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

const userColumns = `id, email, active_day_started_at, created_at, updated_at`

// UserRepository implements the user repository interface on postgres
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert creates the user row on first sight of a provider-issued id and
// refreshes the email on subsequent logins
func (r *UserRepository) Upsert(ctx context.Context, id, email string) (*entities.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (id, email, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, updated_at = NOW()
		RETURNING %s
	`, userColumns)

	var user entities.User
	if err := r.db.GetContext(ctx, &user, query, id, email); err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return &user, nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	var user entities.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// SetDayStartedAt opens (non-nil) or closes (nil) the user's day session
func (r *UserRepository) SetDayStartedAt(ctx context.Context, id string, startedAt *time.Time) error {
	query := `UPDATE users SET active_day_started_at = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, startedAt)
	if err != nil {
		return fmt.Errorf("failed to set day session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrUserNotFound
	}

	return nil
}

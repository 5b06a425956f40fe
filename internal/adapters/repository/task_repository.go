package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/zenith/core/internal/domain/entities"
	"github.com/zenith/core/internal/ports"
)

const taskColumns = `id, user_id, title, description, energy, priority, time_estimate, focus_type, status, scheduled_for, completed_at, archived_at, created_at, updated_at`

// TaskRepository implements the task repository interface on postgres.
// Every single-task mutation carries "AND user_id = $owner" so a non-owner
// sees entities.ErrTaskNotFound without a separate lookup.
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task
func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO tasks (id, user_id, title, description, energy, priority, time_estimate, focus_type, status, scheduled_for, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Energy,
		task.Priority,
		task.TimeEstimate,
		task.FocusType,
		task.Status,
		task.ScheduledFor,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetByID retrieves a task by id, scoped to its owner
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1 AND user_id = $2`, taskColumns)

	var task entities.Task
	err := r.db.GetContext(ctx, &task, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &task, nil
}

// UpdateFields applies a partial update in one conditional statement
func (r *TaskRepository) UpdateFields(ctx context.Context, id uuid.UUID, ownerID string, patch ports.TaskPatch, now time.Time) (*entities.Task, error) {
	sets, args := buildTaskPatch(patch, now)

	query := fmt.Sprintf(`
		UPDATE tasks SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), len(args)+1, len(args)+2, taskColumns)

	args = append(args, id, ownerID)

	var task entities.Task
	err := r.db.GetContext(ctx, &task, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &task, nil
}

// buildTaskPatch turns a patch into SET clauses with positional args.
// updated_at is always touched so the clause list is never empty.
func buildTaskPatch(patch ports.TaskPatch, now time.Time) ([]string, []interface{}) {
	sets := []string{"updated_at = $1"}
	args := []interface{}{now}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Energy != nil {
		add("energy", *patch.Energy)
	}
	if patch.Priority != nil {
		add("priority", *patch.Priority)
	}
	if patch.TimeEstimate != nil {
		add("time_estimate", *patch.TimeEstimate)
	}
	if patch.FocusType != nil {
		add("focus_type", *patch.FocusType)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.ScheduledFor != nil {
		add("scheduled_for", *patch.ScheduledFor)
	}

	return sets, args
}

// Delete removes a task permanently
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

// Complete marks a task done. Re-completion refreshes completed_at.
func (r *TaskRepository) Complete(ctx context.Context, id uuid.UUID, ownerID string, at time.Time) (*entities.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET status = $3, completed_at = $4, updated_at = $4
		WHERE id = $1 AND user_id = $2
		RETURNING %s
	`, taskColumns)

	var task entities.Task
	err := r.db.GetContext(ctx, &task, query, id, ownerID, entities.TaskStatusDone, at)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	return &task, nil
}

// MoveTo defers a task to the given day and marks it moved
func (r *TaskRepository) MoveTo(ctx context.Context, id uuid.UUID, ownerID string, day time.Time, at time.Time) (*entities.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET status = $3, scheduled_for = $4, updated_at = $5
		WHERE id = $1 AND user_id = $2
		RETURNING %s
	`, taskColumns)

	var task entities.Task
	err := r.db.GetContext(ctx, &task, query, id, ownerID, entities.TaskStatusMoved, day, at)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to move task: %w", err)
	}

	return &task, nil
}

// ListForDay returns unarchived tasks scheduled within [dayStart, dayEnd),
// in the canonical day-list order: priority rank (high first, unset last),
// then newest creation time, then id.
func (r *TaskRepository) ListForDay(ctx context.Context, ownerID string, dayStart, dayEnd time.Time) ([]*entities.Task, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tasks
		WHERE user_id = $1
		  AND archived_at IS NULL
		  AND scheduled_for >= $2
		  AND scheduled_for < $3
		ORDER BY
			CASE priority
				WHEN 'high' THEN 0
				WHEN 'medium' THEN 1
				WHEN 'low' THEN 2
				ELSE 3
			END,
			created_at DESC,
			id
	`, taskColumns)

	var tasks []*entities.Task
	if err := r.db.SelectContext(ctx, &tasks, query, ownerID, dayStart, dayEnd); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// ListArchived returns all archived tasks, newest archive instant first
func (r *TaskRepository) ListArchived(ctx context.Context, ownerID string) ([]*entities.Task, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tasks
		WHERE user_id = $1 AND archived_at IS NOT NULL
		ORDER BY archived_at DESC, id
	`, taskColumns)

	var tasks []*entities.Task
	if err := r.db.SelectContext(ctx, &tasks, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list archived tasks: %w", err)
	}

	return tasks, nil
}

// ArchiveAll archives every unarchived task of the owner in one statement.
// Tasks already archived are excluded, which makes repeated calls archive
// zero further rows.
func (r *TaskRepository) ArchiveAll(ctx context.Context, ownerID string, at time.Time) (int64, error) {
	query := `
		UPDATE tasks
		SET archived_at = $2, updated_at = $2
		WHERE user_id = $1 AND archived_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, ownerID, at)
	if err != nil {
		return 0, fmt.Errorf("failed to archive tasks: %w", err)
	}

	archived, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return archived, nil
}

// ReactivateMoved resets moved tasks scheduled before the cutoff back to
// pending on the new day, in one statement
func (r *TaskRepository) ReactivateMoved(ctx context.Context, ownerID string, before, newDay time.Time, at time.Time) (int64, error) {
	query := `
		UPDATE tasks
		SET status = $4, scheduled_for = $3, updated_at = $5
		WHERE user_id = $1
		  AND status = $6
		  AND archived_at IS NULL
		  AND scheduled_for < $2
	`

	result, err := r.db.ExecContext(ctx, query, ownerID, before, newDay, entities.TaskStatusPending, at, entities.TaskStatusMoved)
	if err != nil {
		return 0, fmt.Errorf("failed to reactivate tasks: %w", err)
	}

	activated, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return activated, nil
}

package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zenith/core/internal/domain/entities"
)

// UserRepository defines the interface for user data operations. Users are
// created by upsert on first authenticated request and never deleted here.
type UserRepository interface {
	Upsert(ctx context.Context, id, email string) (*entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	SetDayStartedAt(ctx context.Context, id string, startedAt *time.Time) error
}

// TaskRepository defines the interface for task data operations. Every
// single-task mutation is one conditional statement scoped by id AND owner;
// implementations report entities.ErrTaskNotFound when no row matched, so
// the ownership check never races with the write.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Task, error)
	UpdateFields(ctx context.Context, id uuid.UUID, ownerID string, patch TaskPatch, now time.Time) (*entities.Task, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID string) error
	Complete(ctx context.Context, id uuid.UUID, ownerID string, at time.Time) (*entities.Task, error)
	MoveTo(ctx context.Context, id uuid.UUID, ownerID string, day time.Time, at time.Time) (*entities.Task, error)
	ListForDay(ctx context.Context, ownerID string, dayStart, dayEnd time.Time) ([]*entities.Task, error)
	ListArchived(ctx context.Context, ownerID string) ([]*entities.Task, error)
	ArchiveAll(ctx context.Context, ownerID string, at time.Time) (int64, error)
	ReactivateMoved(ctx context.Context, ownerID string, before, newDay time.Time, at time.Time) (int64, error)
}

// MoodRepository defines the interface for the append-only mood journal
type MoodRepository interface {
	Create(ctx context.Context, entry *entities.MoodEntry) error
	ListSince(ctx context.Context, ownerID string, since time.Time) ([]*entities.MoodEntry, error)
	Latest(ctx context.Context, ownerID string) (*entities.MoodEntry, error)
}

// TaskPatch carries a partial task update. Nil fields are left untouched.
type TaskPatch struct {
	Title        *string
	Description  *string
	Energy       *int
	Priority     *entities.Priority
	TimeEstimate *int
	FocusType    *entities.FocusType
	Status       *entities.TaskStatus
	ScheduledFor *time.Time
}

// Empty reports whether the patch carries no changes
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Energy == nil &&
		p.Priority == nil && p.TimeEstimate == nil && p.FocusType == nil &&
		p.Status == nil && p.ScheduledFor == nil
}

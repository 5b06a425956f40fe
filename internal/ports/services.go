package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zenith/core/internal/domain/entities"
)

// AuthService validates bearer tokens issued by the external identity
// provider and materializes the caller's user row.
type AuthService interface {
	ValidateToken(tokenString string) (*Claims, error)
	EnsureUser(ctx context.Context, claims *Claims) (*entities.User, error)
}

// TaskService drives the task lifecycle
type TaskService interface {
	CreateTask(ctx context.Context, ownerID string, req CreateTaskRequest) (*entities.Task, error)
	GetTask(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, ownerID string, req UpdateTaskRequest) (*entities.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID, ownerID string) error
	CompleteTask(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Task, error)
	MoveToTomorrow(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Task, error)
	ListForDay(ctx context.Context, ownerID string, day *time.Time) ([]*entities.Task, error)
	History(ctx context.Context, ownerID string) ([]entities.ArchiveGroup, error)
	StartDay(ctx context.Context, ownerID string) (int64, error)
	EndDay(ctx context.Context, ownerID string) (int64, error)
}

// MoodService is the append-only mood journal
type MoodService interface {
	LogMood(ctx context.Context, ownerID string, req LogMoodRequest) (*entities.MoodEntry, error)
	History(ctx context.Context, ownerID string, windowDays int) ([]*entities.MoodEntry, error)
	Latest(ctx context.Context, ownerID string) (*entities.MoodEntry, error)
}

// UserService exposes the day-session window
type UserService interface {
	DayState(ctx context.Context, ownerID string) (*DayState, error)
}

// Claims carries the identity extracted from a validated bearer token
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Request/Response Types

type CreateTaskRequest struct {
	Title        string              `json:"title" validate:"required"`
	Description  *string             `json:"description"`
	Energy       *int                `json:"energy" validate:"omitempty,min=1,max=10"`
	Priority     *entities.Priority  `json:"priority" validate:"omitempty,oneof=high medium low"`
	TimeEstimate *int                `json:"timeEstimate" validate:"omitempty,min=1"`
	FocusType    *entities.FocusType `json:"focusType" validate:"omitempty,oneof=deep_work maintenance creative"`
	ScheduledFor *time.Time          `json:"scheduledFor"`
}

// UpdateTaskRequest is a partial update; absent fields stay untouched
type UpdateTaskRequest struct {
	Title        *string              `json:"title"`
	Description  *string              `json:"description"`
	Energy       *int                 `json:"energy" validate:"omitempty,min=1,max=10"`
	Priority     *entities.Priority   `json:"priority" validate:"omitempty,oneof=high medium low"`
	TimeEstimate *int                 `json:"timeEstimate" validate:"omitempty,min=1"`
	FocusType    *entities.FocusType  `json:"focusType" validate:"omitempty,oneof=deep_work maintenance creative"`
	Status       *entities.TaskStatus `json:"status" validate:"omitempty,oneof=pending done moved"`
	ScheduledFor *time.Time           `json:"scheduledFor"`
}

type LogMoodRequest struct {
	Mood       int     `json:"mood" validate:"required,min=1,max=5"`
	Energy     int     `json:"energy" validate:"required,min=1,max=10"`
	Reflection *string `json:"reflection"`
}

// DayState reports whether a day session is open and since when
type DayState struct {
	Active    bool       `json:"active"`
	StartedAt *time.Time `json:"startedAt"`
}

package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrMoodEntryNotFound = errors.New("mood entry not found")
	ErrInvalidToken      = errors.New("invalid token")
)

// ValidationError marks input that failed a field-level rule. Handlers map
// it to a 400 response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Enums and types
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
	TaskStatusMoved   TaskStatus = "moved"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type FocusType string

const (
	FocusDeepWork    FocusType = "deep_work"
	FocusMaintenance FocusType = "maintenance"
	FocusCreative    FocusType = "creative"
)

// Range limits for numeric task and mood fields
const (
	TaskEnergyMin = 1
	TaskEnergyMax = 10
	MoodMin       = 1
	MoodMax       = 5
	MoodEnergyMin = 1
	MoodEnergyMax = 10
)

// User represents an authenticated account. The id is issued by the
// external identity provider; rows are upserted on first authenticated
// request and never deleted by this system.
type User struct {
	ID                 string     `json:"id" db:"id"`
	Email              string     `json:"email" db:"email"`
	ActiveDayStartedAt *time.Time `json:"activeDayStartedAt" db:"active_day_started_at"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time  `json:"updatedAt" db:"updated_at"`
}

// DayActive reports whether the user has an open day session
func (u *User) DayActive() bool {
	return u.ActiveDayStartedAt != nil
}

// Task represents one item on a user's daily list
type Task struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	UserID       string     `json:"userId" db:"user_id"`
	Title        string     `json:"title" db:"title"`
	Description  *string    `json:"description" db:"description"`
	Energy       *int       `json:"energy" db:"energy"`
	Priority     *Priority  `json:"priority" db:"priority"`
	TimeEstimate *int       `json:"timeEstimate" db:"time_estimate"`
	FocusType    *FocusType `json:"focusType" db:"focus_type"`
	Status       TaskStatus `json:"status" db:"status"`
	ScheduledFor time.Time  `json:"scheduledFor" db:"scheduled_for"`
	CompletedAt  *time.Time `json:"completedAt" db:"completed_at"`
	ArchivedAt   *time.Time `json:"archivedAt" db:"archived_at"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// Archived reports whether the task has exited the active day view
func (t *Task) Archived() bool {
	return t.ArchivedAt != nil
}

// MoodEntry is one append-only journal record. Entries are never updated
// or deleted; history is a time-ordered read.
type MoodEntry struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     string    `json:"userId" db:"user_id"`
	Mood       int       `json:"mood" db:"mood"`
	Energy     int       `json:"energy" db:"energy"`
	Reflection *string   `json:"reflection" db:"reflection"`
	RecordedAt time.Time `json:"timestamp" db:"recorded_at"`
}

// ValidStatus reports whether s is a recognized task status
func ValidStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusDone, TaskStatusMoved:
		return true
	}
	return false
}

// ValidPriority reports whether p is a recognized priority
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ValidFocusType reports whether f is a recognized focus type
func ValidFocusType(f FocusType) bool {
	switch f {
	case FocusDeepWork, FocusMaintenance, FocusCreative:
		return true
	}
	return false
}

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zenith/core/internal/domain/entities"
	"github.com/zenith/core/internal/infrastructure/logger"
	"github.com/zenith/core/internal/ports"
)

// TaskService drives the task lifecycle: creation, completion, deferral,
// the day-boundary bulk transitions, and the archived history view.
type TaskService struct {
	taskRepo ports.TaskRepository
	userRepo ports.UserRepository
	logger   *logger.Logger
	now      func() time.Time
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, userRepo ports.UserRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateTask validates input and creates a pending task. scheduledFor
// defaults to the current calendar day at local midnight.
func (s *TaskService) CreateTask(ctx context.Context, ownerID string, req ports.CreateTaskRequest) (*entities.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, entities.NewValidationError("title", "title is required")
	}
	if req.Energy != nil && (*req.Energy < entities.TaskEnergyMin || *req.Energy > entities.TaskEnergyMax) {
		return nil, entities.NewValidationError("energy", "energy must be between 1 and 10")
	}
	if req.TimeEstimate != nil && *req.TimeEstimate < 1 {
		return nil, entities.NewValidationError("timeEstimate", "time estimate must be at least 1 minute")
	}
	if req.Priority != nil && !entities.ValidPriority(*req.Priority) {
		return nil, entities.NewValidationError("priority", "priority must be high, medium or low")
	}
	if req.FocusType != nil && !entities.ValidFocusType(*req.FocusType) {
		return nil, entities.NewValidationError("focusType", "focus type must be deep_work, maintenance or creative")
	}

	now := s.now()
	scheduledFor := entities.StartOfDay(now)
	if req.ScheduledFor != nil {
		scheduledFor = entities.StartOfDay(*req.ScheduledFor)
	}

	task := &entities.Task{
		ID:           uuid.New(),
		UserID:       ownerID,
		Title:        title,
		Description:  req.Description,
		Energy:       req.Energy,
		Priority:     req.Priority,
		TimeEstimate: req.TimeEstimate,
		FocusType:    req.FocusType,
		Status:       entities.TaskStatusPending,
		ScheduledFor: scheduledFor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task created", "task_id", task.ID, "user_id", ownerID)

	return task, nil
}

// GetTask retrieves a task owned by the caller
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Task, error) {
	return s.taskRepo.GetByID(ctx, id, ownerID)
}

// UpdateTask applies a partial update; absent fields stay untouched
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, ownerID string, req ports.UpdateTaskRequest) (*entities.Task, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, entities.NewValidationError("title", "title cannot be empty")
	}
	if req.Energy != nil && (*req.Energy < entities.TaskEnergyMin || *req.Energy > entities.TaskEnergyMax) {
		return nil, entities.NewValidationError("energy", "energy must be between 1 and 10")
	}
	if req.TimeEstimate != nil && *req.TimeEstimate < 1 {
		return nil, entities.NewValidationError("timeEstimate", "time estimate must be at least 1 minute")
	}
	if req.Priority != nil && !entities.ValidPriority(*req.Priority) {
		return nil, entities.NewValidationError("priority", "priority must be high, medium or low")
	}
	if req.FocusType != nil && !entities.ValidFocusType(*req.FocusType) {
		return nil, entities.NewValidationError("focusType", "focus type must be deep_work, maintenance or creative")
	}
	if req.Status != nil && !entities.ValidStatus(*req.Status) {
		return nil, entities.NewValidationError("status", "status must be pending, done or moved")
	}

	patch := ports.TaskPatch{
		Description:  req.Description,
		Energy:       req.Energy,
		Priority:     req.Priority,
		TimeEstimate: req.TimeEstimate,
		FocusType:    req.FocusType,
		Status:       req.Status,
		ScheduledFor: req.ScheduledFor,
	}
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		patch.Title = &trimmed
	}

	if patch.Empty() {
		return s.taskRepo.GetByID(ctx, id, ownerID)
	}

	task, err := s.taskRepo.UpdateFields(ctx, id, ownerID, patch, s.now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Task updated", "task_id", id, "user_id", ownerID)

	return task, nil
}

// DeleteTask removes a task permanently
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID, ownerID string) error {
	if err := s.taskRepo.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Info("Task deleted", "task_id", id, "user_id", ownerID)

	return nil
}

// CompleteTask marks a task done as of now. Completing an already-done
// task is allowed and refreshes completedAt.
func (s *TaskService) CompleteTask(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Task, error) {
	task, err := s.taskRepo.Complete(ctx, id, ownerID, s.now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Task completed", "task_id", id, "user_id", ownerID)

	return task, nil
}

// MoveToTomorrow defers a task to the next calendar day at midnight
func (s *TaskService) MoveToTomorrow(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Task, error) {
	now := s.now()
	task, err := s.taskRepo.MoveTo(ctx, id, ownerID, entities.NextDay(now), now)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Task moved to tomorrow", "task_id", id, "user_id", ownerID, "scheduled_for", task.ScheduledFor)

	return task, nil
}

// ListForDay returns the owner's unarchived tasks scheduled within the
// given calendar day (default today)
func (s *TaskService) ListForDay(ctx context.Context, ownerID string, day *time.Time) ([]*entities.Task, error) {
	reference := s.now()
	if day != nil {
		reference = *day
	}

	dayStart := entities.StartOfDay(reference)
	dayEnd := entities.NextDay(reference)

	tasks, err := s.taskRepo.ListForDay(ctx, ownerID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// History returns archived tasks grouped by the calendar date of their
// archive instant, newest group first
func (s *TaskService) History(ctx context.Context, ownerID string) ([]entities.ArchiveGroup, error) {
	tasks, err := s.taskRepo.ListArchived(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	return entities.GroupByArchiveDate(tasks), nil
}

// StartDay opens a day session and pulls yesterday's deferred tasks back
// into today's pending list. Only moved tasks scheduled strictly before
// today are touched.
func (s *TaskService) StartDay(ctx context.Context, ownerID string) (int64, error) {
	now := s.now()
	today := entities.StartOfDay(now)

	activated, err := s.taskRepo.ReactivateMoved(ctx, ownerID, today, today, now)
	if err != nil {
		return 0, fmt.Errorf("failed to start day: %w", err)
	}

	if err := s.userRepo.SetDayStartedAt(ctx, ownerID, &now); err != nil {
		return 0, fmt.Errorf("failed to open day session: %w", err)
	}

	s.logger.Info("Day started", "user_id", ownerID, "activated", activated)

	return activated, nil
}

// EndDay archives every unarchived task of the owner and closes the day
// session. Idempotent: a second call archives zero further tasks.
func (s *TaskService) EndDay(ctx context.Context, ownerID string) (int64, error) {
	now := s.now()

	archived, err := s.taskRepo.ArchiveAll(ctx, ownerID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to end day: %w", err)
	}

	if err := s.userRepo.SetDayStartedAt(ctx, ownerID, nil); err != nil {
		return 0, fmt.Errorf("failed to close day session: %w", err)
	}

	s.logger.Info("Day ended", "user_id", ownerID, "archived", archived)

	return archived, nil
}

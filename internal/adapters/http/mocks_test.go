package http

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/zenith/core/internal/domain/entities"
	"github.com/zenith/core/internal/ports"
)

type mockTaskService struct {
	mock.Mock
}

func (m *mockTaskService) CreateTask(ctx context.Context, ownerID string, req ports.CreateTaskRequest) (*entities.Task, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *mockTaskService) GetTask(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Task, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, id uuid.UUID, ownerID string, req ports.UpdateTaskRequest) (*entities.Task, error) {
	args := m.Called(ctx, id, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, id uuid.UUID, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *mockTaskService) CompleteTask(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Task, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *mockTaskService) MoveToTomorrow(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Task, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *mockTaskService) ListForDay(ctx context.Context, ownerID string, day *time.Time) ([]*entities.Task, error) {
	args := m.Called(ctx, ownerID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Task), args.Error(1)
}

func (m *mockTaskService) History(ctx context.Context, ownerID string) ([]entities.ArchiveGroup, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ArchiveGroup), args.Error(1)
}

func (m *mockTaskService) StartDay(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTaskService) EndDay(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type mockMoodService struct {
	mock.Mock
}

func (m *mockMoodService) LogMood(ctx context.Context, ownerID string, req ports.LogMoodRequest) (*entities.MoodEntry, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MoodEntry), args.Error(1)
}

func (m *mockMoodService) History(ctx context.Context, ownerID string, windowDays int) ([]*entities.MoodEntry, error) {
	args := m.Called(ctx, ownerID, windowDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MoodEntry), args.Error(1)
}

func (m *mockMoodService) Latest(ctx context.Context, ownerID string) (*entities.MoodEntry, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MoodEntry), args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) DayState(ctx context.Context, ownerID string) (*ports.DayState, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.DayState), args.Error(1)
}

package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/zenith/core/internal/domain/entities"
	"github.com/zenith/core/internal/ports"
)

type mockTaskRepository struct {
	mock.Mock
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entities.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *mockTaskRepository) GetByID(ctx context.Context, id uuid.UUID, ownerID string) (*entities.Task, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *mockTaskRepository) UpdateFields(ctx context.Context, id uuid.UUID, ownerID string, patch ports.TaskPatch, now time.Time) (*entities.Task, error) {
	args := m.Called(ctx, id, ownerID, patch, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *mockTaskRepository) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *mockTaskRepository) Complete(ctx context.Context, id uuid.UUID, ownerID string, at time.Time) (*entities.Task, error) {
	args := m.Called(ctx, id, ownerID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *mockTaskRepository) MoveTo(ctx context.Context, id uuid.UUID, ownerID string, day time.Time, at time.Time) (*entities.Task, error) {
	args := m.Called(ctx, id, ownerID, day, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *mockTaskRepository) ListForDay(ctx context.Context, ownerID string, dayStart, dayEnd time.Time) ([]*entities.Task, error) {
	args := m.Called(ctx, ownerID, dayStart, dayEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Task), args.Error(1)
}

func (m *mockTaskRepository) ListArchived(ctx context.Context, ownerID string) ([]*entities.Task, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Task), args.Error(1)
}

func (m *mockTaskRepository) ArchiveAll(ctx context.Context, ownerID string, at time.Time) (int64, error) {
	args := m.Called(ctx, ownerID, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTaskRepository) ReactivateMoved(ctx context.Context, ownerID string, before, newDay time.Time, at time.Time) (int64, error) {
	args := m.Called(ctx, ownerID, before, newDay, at)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Upsert(ctx context.Context, id, email string) (*entities.User, error) {
	args := m.Called(ctx, id, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) SetDayStartedAt(ctx context.Context, id string, startedAt *time.Time) error {
	args := m.Called(ctx, id, startedAt)
	return args.Error(0)
}

type mockMoodRepository struct {
	mock.Mock
}

func (m *mockMoodRepository) Create(ctx context.Context, entry *entities.MoodEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockMoodRepository) ListSince(ctx context.Context, ownerID string, since time.Time) ([]*entities.MoodEntry, error) {
	args := m.Called(ctx, ownerID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MoodEntry), args.Error(1)
}

func (m *mockMoodRepository) Latest(ctx context.Context, ownerID string) (*entities.MoodEntry, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MoodEntry), args.Error(1)
}

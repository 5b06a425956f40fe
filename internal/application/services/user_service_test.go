package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zenith/core/internal/domain/entities"
	"github.com/zenith/core/internal/infrastructure/logger"
)

func TestDayState_OpenSession(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo, logger.NewNop())

	startedAt := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	userRepo.On("GetByID", mock.Anything, "user-1").Return(&entities.User{
		ID:                 "user-1",
		ActiveDayStartedAt: &startedAt,
	}, nil)

	state, err := svc.DayState(context.Background(), "user-1")

	require.NoError(t, err)
	require.True(t, state.Active)
	require.Equal(t, &startedAt, state.StartedAt)
}

func TestDayState_NoSession(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo, logger.NewNop())

	userRepo.On("GetByID", mock.Anything, "user-1").Return(&entities.User{ID: "user-1"}, nil)

	state, err := svc.DayState(context.Background(), "user-1")

	require.NoError(t, err)
	require.False(t, state.Active)
	require.Nil(t, state.StartedAt)
}

func TestDayState_UnknownUser(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo, logger.NewNop())

	userRepo.On("GetByID", mock.Anything, "ghost").Return(nil, entities.ErrUserNotFound)

	_, err := svc.DayState(context.Background(), "ghost")

	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

package services

import (
	"context"

	"github.com/zenith/core/internal/infrastructure/logger"
	"github.com/zenith/core/internal/ports"
)

// UserService exposes the day-session window recorded on the user row.
// Opening and closing the window happens through the task lifecycle
// (StartDay/EndDay); this service only reads it.
type UserService struct {
	userRepo ports.UserRepository
	logger   *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo ports.UserRepository, logger *logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// DayState reports whether the user has an open day session and since when
func (s *UserService) DayState(ctx context.Context, ownerID string) (*ports.DayState, error) {
	user, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &ports.DayState{
		Active:    user.DayActive(),
		StartedAt: user.ActiveDayStartedAt,
	}, nil
}

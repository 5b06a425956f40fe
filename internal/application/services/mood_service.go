package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zenith/core/internal/domain/entities"
	"github.com/zenith/core/internal/infrastructure/logger"
	"github.com/zenith/core/internal/ports"
)

const defaultMoodWindowDays = 7

// MoodService is the append-only mood journal. Entries carry a
// server-assigned timestamp and are never updated or deleted.
type MoodService struct {
	moodRepo ports.MoodRepository
	logger   *logger.Logger
	now      func() time.Time
}

// NewMoodService creates a new mood service
func NewMoodService(moodRepo ports.MoodRepository, logger *logger.Logger) *MoodService {
	return &MoodService{
		moodRepo: moodRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// LogMood validates ranges and appends a journal entry
func (s *MoodService) LogMood(ctx context.Context, ownerID string, req ports.LogMoodRequest) (*entities.MoodEntry, error) {
	if req.Mood < entities.MoodMin || req.Mood > entities.MoodMax {
		return nil, entities.NewValidationError("mood", "mood must be between 1 and 5")
	}
	if req.Energy < entities.MoodEnergyMin || req.Energy > entities.MoodEnergyMax {
		return nil, entities.NewValidationError("energy", "energy must be between 1 and 10")
	}

	entry := &entities.MoodEntry{
		ID:         uuid.New(),
		UserID:     ownerID,
		Mood:       req.Mood,
		Energy:     req.Energy,
		Reflection: req.Reflection,
		RecordedAt: s.now(),
	}

	if err := s.moodRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to log mood: %w", err)
	}

	s.logger.Info("Mood logged", "entry_id", entry.ID, "user_id", ownerID, "mood", entry.Mood)

	return entry, nil
}

// History returns entries from the last windowDays days, oldest first.
// Non-positive windows fall back to the 7-day default.
func (s *MoodService) History(ctx context.Context, ownerID string, windowDays int) ([]*entities.MoodEntry, error) {
	if windowDays <= 0 {
		windowDays = defaultMoodWindowDays
	}

	since := s.now().AddDate(0, 0, -windowDays)

	entries, err := s.moodRepo.ListSince(ctx, ownerID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood history: %w", err)
	}

	return entries, nil
}

// Latest returns the most recent entry, or nil when the journal is empty
func (s *MoodService) Latest(ctx context.Context, ownerID string) (*entities.MoodEntry, error) {
	entry, err := s.moodRepo.Latest(ctx, ownerID)
	if err != nil {
		if errors.Is(err, entities.ErrMoodEntryNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest mood: %w", err)
	}

	return entry, nil
}

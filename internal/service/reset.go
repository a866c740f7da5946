package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ResetService wipes all persisted state of a user.
type ResetService struct {
	repo   ResetRepository
	logger *zap.Logger
}

func NewResetService(repo ResetRepository, logger *zap.Logger) *ResetService {
	return &ResetService{
		repo:   repo,
		logger: logger,
	}
}

// ResetUser deletes progress, sessions, streak, achievements, preferences and activities of the user.
func (s *ResetService) ResetUser(ctx context.Context, userID int64) error {
	if err := s.repo.ResetUser(ctx, userID); err != nil {
		return fmt.Errorf("reset user %d: %w", userID, err)
	}

	s.logger.Info("user data reset", zap.Int64("user_id", userID))
	return nil
}

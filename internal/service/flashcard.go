package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/repository"
)

// DefaultSessionSize is the maximum number of cards in one study session.
const DefaultSessionSize = 15

// FlashcardStats summarizes the flashcard progress of a user.
type FlashcardStats struct {
	entities.SessionStats
	MasteredCards int
	ReviewedCards int
	DueCards      int
	TotalCards    int
}

// FlashcardService owns per-item progress and study session history.
type FlashcardService struct {
	repo        ProgressRepository
	catalog     Catalog
	locator     Locator
	logger      *zap.Logger
	sessionSize int
	now         func() time.Time
	shuffle     func(n int, swap func(i, j int))
}

// NewFlashcardService creates a new flashcard service.
// A non-positive sessionSize falls back to DefaultSessionSize.
func NewFlashcardService(
	repo ProgressRepository,
	catalog Catalog,
	locator Locator,
	sessionSize int,
	logger *zap.Logger,
) *FlashcardService {
	if sessionSize <= 0 || sessionSize > DefaultSessionSize {
		sessionSize = DefaultSessionSize
	}
	return &FlashcardService{
		repo:        repo,
		catalog:     catalog,
		locator:     locator,
		logger:      logger,
		sessionSize: sessionSize,
		now:         time.Now,
		shuffle:     rand.Shuffle,
	}
}

// SetClock replaces the time source.
func (s *FlashcardService) SetClock(now func() time.Time) {
	s.now = now
}

// Progress returns the card progress of a user keyed by item id.
func (s *FlashcardService) Progress(ctx context.Context, userID int64) map[string]*entities.CardProgress {
	progress, err := s.repo.GetProgress(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("failed to load flashcard progress",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
		return make(map[string]*entities.CardProgress)
	}
	return progress
}

// RecordAnswer applies one review outcome to the card and persists it.
func (s *FlashcardService) RecordAnswer(ctx context.Context, userID int64, itemID string, isCorrect bool) *entities.CardProgress {
	progress := s.Progress(ctx, userID)

	p, ok := progress[itemID]
	if !ok {
		p = entities.NewCardProgress(itemID)
		progress[itemID] = p
	}
	p.RecordAnswer(isCorrect, s.now())

	if err := s.repo.SaveProgress(ctx, userID, progress); err != nil {
		s.logger.Error("failed to save flashcard progress",
			zap.Int64("user_id", userID),
			zap.String("item_id", itemID),
			zap.Error(err),
		)
	}

	return p
}

// Sessions returns the session history, newest first.
func (s *FlashcardService) Sessions(ctx context.Context, userID int64) []entities.StudySession {
	sessions, err := s.repo.GetSessions(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("failed to load study sessions",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
		return nil
	}
	return sessions
}

// CompleteSession stores a finished session at the front of the history.
func (s *FlashcardService) CompleteSession(ctx context.Context, userID int64, session entities.StudySession) {
	sessions := entities.PrependSession(s.Sessions(ctx, userID), session)
	if err := s.repo.SaveSessions(ctx, userID, sessions); err != nil {
		s.logger.Error("failed to save study sessions",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

// DueCards returns the catalog entries due for review today.
func (s *FlashcardService) DueCards(ctx context.Context, userID int64) []entities.CatalogItem {
	return DueItems(s.catalog.All(), s.Progress(ctx, userID), s.now(), s.location(ctx, userID))
}

// Stats aggregates progress and session history.
func (s *FlashcardService) Stats(ctx context.Context, userID int64) FlashcardStats {
	progress := s.Progress(ctx, userID)
	items := s.catalog.All()

	stats := FlashcardStats{
		SessionStats:  entities.SummarizeSessions(s.Sessions(ctx, userID)),
		ReviewedCards: len(progress),
		DueCards:      len(DueItems(items, progress, s.now(), s.location(ctx, userID))),
		TotalCards:    len(items),
	}
	for _, p := range progress {
		if p.IsMastered() {
			stats.MasteredCards++
		}
	}

	return stats
}

// StartSession builds a session from the due cards: shuffled and capped at the session size.
// The returned runner is empty when nothing is due.
func (s *FlashcardService) StartSession(ctx context.Context, userID int64) *SessionRunner {
	due := s.DueCards(ctx, userID)

	s.shuffle(len(due), func(i, j int) {
		due[i], due[j] = due[j], due[i]
	})
	if len(due) > s.sessionSize {
		due = due[:s.sessionSize]
	}

	return NewSessionRunner(userID, due, s, s.now)
}

func (s *FlashcardService) location(ctx context.Context, userID int64) *time.Location {
	if s.locator == nil {
		return time.UTC
	}
	return s.locator.Location(ctx, userID)
}

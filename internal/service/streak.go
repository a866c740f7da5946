package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/repository"
)

// ErrEmptyCatalog is returned when there is no entry to pick a daily word from.
var ErrEmptyCatalog = errors.New("catalog is empty")

// StreakService tracks the daily word streak of users.
type StreakService struct {
	repo         StreakRepository
	catalog      Catalog
	achievements AchievementChecker
	locator      Locator
	logger       *zap.Logger
	now          func() time.Time
}

// NewStreakService creates a new streak service.
func NewStreakService(
	repo StreakRepository,
	catalog Catalog,
	achievements AchievementChecker,
	locator Locator,
	logger *zap.Logger,
) *StreakService {
	return &StreakService{
		repo:         repo,
		catalog:      catalog,
		achievements: achievements,
		locator:      locator,
		logger:       logger,
		now:          time.Now,
	}
}

// SetClock replaces the time source.
func (s *StreakService) SetClock(now func() time.Time) {
	s.now = now
}

// Status returns the evaluated streak without persisting anything.
func (s *StreakService) Status(ctx context.Context, userID int64) entities.StreakState {
	state := s.load(ctx, userID)
	state.Evaluate(s.now(), s.location(ctx, userID))
	return *state
}

// Evaluate refreshes the streak for today and persists a reset caused by a gap.
func (s *StreakService) Evaluate(ctx context.Context, userID int64) entities.StreakState {
	state := s.load(ctx, userID)
	if state.Evaluate(s.now(), s.location(ctx, userID)) {
		s.save(ctx, userID, state)
	}
	return *state
}

// MarkViewed records that the user saw today's word.
// Repeated calls on the same calendar day do not change the streak.
func (s *StreakService) MarkViewed(ctx context.Context, userID int64) (entities.StreakState, []entities.Achievement) {
	now := s.now()
	state := s.load(ctx, userID)

	changed := state.Evaluate(now, s.location(ctx, userID))
	marked := state.MarkViewed(now)
	if changed || marked {
		s.save(ctx, userID, state)
	}
	if !marked {
		return *state, nil
	}

	s.logger.Debug("streak extended",
		zap.Int64("user_id", userID),
		zap.Int("current_streak", state.CurrentStreak),
	)

	var unlocked []entities.Achievement
	if s.achievements != nil {
		unlocked = s.achievements.CheckStreakProgress(ctx, userID, state.CurrentStreak)
	}

	return *state, unlocked
}

// Reset sets the current streak to zero.
func (s *StreakService) Reset(ctx context.Context, userID int64) {
	state := s.load(ctx, userID)
	state.Reset()
	s.save(ctx, userID, state)
}

// TodayWord returns the daily word of the user's current calendar day.
func (s *StreakService) TodayWord(ctx context.Context, userID int64) (entities.CatalogItem, error) {
	item, ok := DailyWord(s.catalog.All(), s.now(), s.location(ctx, userID))
	if !ok {
		return entities.CatalogItem{}, ErrEmptyCatalog
	}
	return item, nil
}

// DailyWord picks the entry of the day. Every user in the same calendar day gets the same entry.
func DailyWord(items []entities.CatalogItem, now time.Time, loc *time.Location) (entities.CatalogItem, bool) {
	if len(items) == 0 {
		return entities.CatalogItem{}, false
	}
	if loc == nil {
		loc = time.UTC
	}

	local := now.In(loc)
	seed := local.Year()*1000 + local.YearDay()

	return items[seed%len(items)], true
}

func (s *StreakService) load(ctx context.Context, userID int64) *entities.StreakState {
	state, err := s.repo.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("failed to load streak, starting fresh",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
		return &entities.StreakState{}
	}
	return state
}

func (s *StreakService) save(ctx context.Context, userID int64, state *entities.StreakState) {
	if err := s.repo.Save(ctx, userID, state); err != nil {
		s.logger.Error("failed to save streak",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

func (s *StreakService) location(ctx context.Context, userID int64) *time.Location {
	if s.locator == nil {
		return time.UTC
	}
	return s.locator.Location(ctx, userID)
}

package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/repository"
)

// Achievement ids driven by each counter.
var (
	readingAchievementIDs  = []string{"read_1", "read_10", "read_25", "read_50"}
	streakAchievementIDs   = []string{"streak_3", "streak_7", "streak_30"}
	bookmarkAchievementIDs = []string{"bookmark_5", "bookmark_20"}
	notesAchievementIDs    = []string{"notes_1", "notes_10"}
	exploreAchievementIDs  = []string{"explore_all"}
	searchAchievementIDs   = []string{"search_master"}
)

// UnlockHandler is called once for every newly unlocked achievement.
type UnlockHandler func(userID int64, achievement entities.Achievement)

// AchievementService maps activity counters onto the achievement catalog.
type AchievementService struct {
	repo   AchievementRepository
	logger *zap.Logger

	mu          sync.RWMutex
	subscribers []UnlockHandler
}

// NewAchievementService creates a new achievement service.
func NewAchievementService(repo AchievementRepository, logger *zap.Logger) *AchievementService {
	return &AchievementService{
		repo:   repo,
		logger: logger,
	}
}

// Subscribe registers fn to be called for each unlock.
func (s *AchievementService) Subscribe(fn UnlockHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Book returns the achievement state of a user.
// A missing or unreadable record is replaced with the default catalog.
func (s *AchievementService) Book(ctx context.Context, userID int64) *entities.AchievementBook {
	book, err := s.repo.Get(ctx, userID)
	if err == nil {
		return book
	}

	if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Warn("failed to load achievements, regenerating defaults",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	book = entities.NewAchievementBook()
	s.save(ctx, userID, book)

	return book
}

// ByCategory returns the achievements of a category in catalog order.
func (s *AchievementService) ByCategory(
	ctx context.Context,
	userID int64,
	category entities.AchievementCategory,
) []entities.Achievement {
	return s.Book(ctx, userID).ByCategory(category)
}

// UpdateProgress sets the progress of a single achievement and returns it if it unlocked now.
func (s *AchievementService) UpdateProgress(ctx context.Context, userID int64, id string, value int) (entities.Achievement, bool) {
	unlocked := s.update(ctx, userID, []string{id}, value)
	if len(unlocked) == 0 {
		return entities.Achievement{}, false
	}
	return unlocked[0], true
}

func (s *AchievementService) CheckReadingProgress(ctx context.Context, userID int64, readCount int) []entities.Achievement {
	return s.update(ctx, userID, readingAchievementIDs, readCount)
}

func (s *AchievementService) CheckStreakProgress(ctx context.Context, userID int64, streak int) []entities.Achievement {
	return s.update(ctx, userID, streakAchievementIDs, streak)
}

func (s *AchievementService) CheckBookmarkProgress(ctx context.Context, userID int64, bookmarkCount int) []entities.Achievement {
	return s.update(ctx, userID, bookmarkAchievementIDs, bookmarkCount)
}

func (s *AchievementService) CheckNotesProgress(ctx context.Context, userID int64, notesCount int) []entities.Achievement {
	return s.update(ctx, userID, notesAchievementIDs, notesCount)
}

func (s *AchievementService) CheckSearchProgress(ctx context.Context, userID int64, searchCount int) []entities.Achievement {
	return s.update(ctx, userID, searchAchievementIDs, searchCount)
}

func (s *AchievementService) CheckCategoryExploration(ctx context.Context, userID int64, categoriesViewed int) []entities.Achievement {
	return s.update(ctx, userID, exploreAchievementIDs, categoriesViewed)
}

// update applies value to every id in one load/save cycle and notifies subscribers.
func (s *AchievementService) update(ctx context.Context, userID int64, ids []string, value int) []entities.Achievement {
	book := s.Book(ctx, userID)

	var unlocked []entities.Achievement
	for _, id := range ids {
		if a, ok := book.UpdateProgress(id, value); ok {
			unlocked = append(unlocked, a)
		}
	}

	s.save(ctx, userID, book)

	for _, a := range unlocked {
		s.logger.Info("achievement unlocked",
			zap.Int64("user_id", userID),
			zap.String("achievement_id", a.ID),
			zap.Int("points", a.Points()),
		)
		s.notify(userID, a)
	}

	return unlocked
}

func (s *AchievementService) notify(userID int64, a entities.Achievement) {
	s.mu.RLock()
	subscribers := make([]UnlockHandler, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.RUnlock()

	for _, fn := range subscribers {
		fn(userID, a)
	}
}

func (s *AchievementService) save(ctx context.Context, userID int64, book *entities.AchievementBook) {
	if err := s.repo.Save(ctx, userID, book); err != nil {
		s.logger.Error("failed to save achievements",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

var _ AchievementChecker = (*AchievementService)(nil)

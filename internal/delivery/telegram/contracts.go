package telegram

import (
	"context"
	"time"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/service"
)

type Catalog interface {
	All() []entities.CatalogItem
	GetByID(id string) (entities.CatalogItem, error)
}

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) (bool, error)
	Preferences(ctx context.Context, userID int64) *entities.Preferences
	ToggleBookmark(ctx context.Context, userID int64, itemID string) (bool, []entities.Achievement)
	SaveNote(ctx context.Context, userID int64, itemID, note string) []entities.Achievement
	RecordSearch(ctx context.Context, userID int64, query string) []entities.Achievement
	ClearSearchHistory(ctx context.Context, userID int64)
	SetTheme(ctx context.Context, userID int64, theme entities.Theme) error
	SetTimezone(ctx context.Context, userID int64, tz string) (*time.Location, error)
	ToggleReminders(ctx context.Context, userID int64) bool
	LogEntryView(ctx context.Context, userID int64, item entities.CatalogItem) []entities.Achievement
	CompleteOnboarding(ctx context.Context, userID int64) bool
	Counters(ctx context.Context, userID int64) service.Counters
}

type SearchService interface {
	Search(query string) []service.SearchResult
	ByCategory(category entities.Category) []entities.CatalogItem
	Related(item entities.CatalogItem, limit int) []entities.CatalogItem
}

type FlashcardService interface {
	StartSession(ctx context.Context, userID int64) *service.SessionRunner
	Stats(ctx context.Context, userID int64) service.FlashcardStats
}

type StreakService interface {
	Status(ctx context.Context, userID int64) entities.StreakState
	MarkViewed(ctx context.Context, userID int64) (entities.StreakState, []entities.Achievement)
	TodayWord(ctx context.Context, userID int64) (entities.CatalogItem, error)
}

type AchievementService interface {
	Book(ctx context.Context, userID int64) *entities.AchievementBook
	ByCategory(ctx context.Context, userID int64, category entities.AchievementCategory) []entities.Achievement
	Subscribe(fn service.UnlockHandler)
}

type ResetService interface {
	ResetUser(ctx context.Context, userID int64) error
}

type SessionStorage interface {
	Store(userID int64, runner *service.SessionRunner)
	Get(userID int64) (*service.SessionRunner, bool)
	Delete(userID int64)
}

// Services groups the dependencies of the handler.
type Services struct {
	Catalog      Catalog
	Users        UserService
	Search       SearchService
	Flashcards   FlashcardService
	Streaks      StreakService
	Achievements AchievementService
	Reset        ResetService
	Sessions     SessionStorage
}

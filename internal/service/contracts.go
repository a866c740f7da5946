package service

import (
	"context"
	"time"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
)

// Catalog is the read-only entry provider.
type Catalog interface {
	All() []entities.CatalogItem
	GetByID(id string) (entities.CatalogItem, error)
	ByCategory(category entities.Category) []entities.CatalogItem
}

type ProgressRepository interface {
	GetProgress(ctx context.Context, userID int64) (map[string]*entities.CardProgress, error)
	SaveProgress(ctx context.Context, userID int64, progress map[string]*entities.CardProgress) error
	GetSessions(ctx context.Context, userID int64) ([]entities.StudySession, error)
	SaveSessions(ctx context.Context, userID int64, sessions []entities.StudySession) error
}

type StreakRepository interface {
	Get(ctx context.Context, userID int64) (*entities.StreakState, error)
	Save(ctx context.Context, userID int64, state *entities.StreakState) error
}

type AchievementRepository interface {
	Get(ctx context.Context, userID int64) (*entities.AchievementBook, error)
	Save(ctx context.Context, userID int64, book *entities.AchievementBook) error
}

type PreferencesRepository interface {
	Get(ctx context.Context, userID int64) (*entities.Preferences, error)
	Save(ctx context.Context, userID int64, prefs *entities.Preferences) error
	GetActivities(ctx context.Context, userID int64) ([]entities.Activity, error)
	SaveActivities(ctx context.Context, userID int64, log []entities.Activity) error
}

type UserRepository interface {
	SaveUser(ctx context.Context, user *entities.User) error
	UserExists(ctx context.Context, userID int64) (bool, error)
	List(ctx context.Context) ([]entities.User, error)
}

type ResetRepository interface {
	ResetUser(ctx context.Context, userID int64) error
}

// Locator resolves the timezone used for a user's calendar days.
type Locator interface {
	Location(ctx context.Context, userID int64) *time.Location
}

// AchievementChecker is notified by counter owners whenever a counter changes.
type AchievementChecker interface {
	CheckReadingProgress(ctx context.Context, userID int64, readCount int) []entities.Achievement
	CheckStreakProgress(ctx context.Context, userID int64, streak int) []entities.Achievement
	CheckBookmarkProgress(ctx context.Context, userID int64, bookmarkCount int) []entities.Achievement
	CheckNotesProgress(ctx context.Context, userID int64, notesCount int) []entities.Achievement
	CheckSearchProgress(ctx context.Context, userID int64, searchCount int) []entities.Achievement
	CheckCategoryExploration(ctx context.Context, userID int64, categoriesViewed int) []entities.Achievement
}

// ReminderNotifier sends reminder notifications to users.
type ReminderNotifier interface {
	SendReminder(chatID int64, payload entities.ReminderPayload) error
}

// fixedLocator always returns the same location.
type fixedLocator struct{ loc *time.Location }

func (l fixedLocator) Location(context.Context, int64) *time.Location { return l.loc }

// FixedLocator returns a Locator that ignores the user.
func FixedLocator(loc *time.Location) Locator {
	if loc == nil {
		loc = time.UTC
	}
	return fixedLocator{loc: loc}
}

// ReminderTargetLister lists users together with their reminder settings.
type ReminderTargetLister interface {
	ReminderTargets(ctx context.Context) ([]entities.ReminderTarget, error)
}

// DailyWordProvider exposes the read-only streak state and word of the day.
type DailyWordProvider interface {
	Status(ctx context.Context, userID int64) entities.StreakState
	TodayWord(ctx context.Context, userID int64) (entities.CatalogItem, error)
}

// DueCardCounter lists the flashcards due for a user.
type DueCardCounter interface {
	DueCards(ctx context.Context, userID int64) []entities.CatalogItem
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/repository"
)

var (
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidTimezone = errors.New("invalid timezone")
)

// Counters are the activity totals that drive achievements.
type Counters struct {
	Bookmarks  int
	Notes      int
	Searches   int
	Read       int
	Categories int
}

// UserService owns user records, preferences and the activity log.
type UserService struct {
	userRepo     UserRepository
	prefsRepo    PreferencesRepository
	achievements AchievementChecker
	defaultLoc   *time.Location
	logger       *zap.Logger
	now          func() time.Time
}

// NewUserService creates a new user service.
// defaultLoc is used for users who have not set a timezone.
func NewUserService(
	userRepo UserRepository,
	prefsRepo PreferencesRepository,
	achievements AchievementChecker,
	defaultLoc *time.Location,
	logger *zap.Logger,
) *UserService {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &UserService{
		userRepo:     userRepo,
		prefsRepo:    prefsRepo,
		achievements: achievements,
		defaultLoc:   defaultLoc,
		logger:       logger,
		now:          time.Now,
	}
}

// SetClock replaces the time source.
func (s *UserService) SetClock(now func() time.Time) {
	s.now = now
}

// EnsureUser registers the user if it is not known yet and reports whether it was created.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) (bool, error) {
	exists, err := s.userRepo.UserExists(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	if exists {
		return false, nil
	}

	if err := s.userRepo.SaveUser(ctx, entities.NewUser(userID, chatID, s.now())); err != nil {
		return false, fmt.Errorf("save user: %w", err)
	}

	s.logger.Info("new user registered", zap.Int64("user_id", userID))
	return true, nil
}

// Preferences returns the stored preferences or defaults.
func (s *UserService) Preferences(ctx context.Context, userID int64) *entities.Preferences {
	prefs, err := s.prefsRepo.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("failed to load preferences",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
		return entities.NewPreferences()
	}
	return prefs
}

// Location returns the user's timezone, falling back to the default location.
func (s *UserService) Location(ctx context.Context, userID int64) *time.Location {
	prefs := s.Preferences(ctx, userID)
	if prefs.Timezone == "" {
		return s.defaultLoc
	}

	loc, err := entities.LoadLocation(prefs.Timezone)
	if err != nil {
		s.logger.Warn("stored timezone is invalid",
			zap.Int64("user_id", userID),
			zap.String("timezone", prefs.Timezone),
			zap.Error(err),
		)
		return s.defaultLoc
	}
	return loc
}

// ToggleBookmark flips the bookmark of an item and reports whether it is bookmarked now.
func (s *UserService) ToggleBookmark(ctx context.Context, userID int64, itemID string) (bool, []entities.Achievement) {
	prefs := s.Preferences(ctx, userID)
	bookmarked := prefs.ToggleBookmark(itemID)
	s.savePreferences(ctx, userID, prefs)

	action := entities.ActivityUnbookmark
	if bookmarked {
		action = entities.ActivityBookmark
	}
	s.logActivity(ctx, userID, entities.Activity{Action: action, ItemID: itemID})

	return bookmarked, s.achievements.CheckBookmarkProgress(ctx, userID, len(prefs.Bookmarks))
}

// SaveNote stores a note for an item. An empty note removes it.
func (s *UserService) SaveNote(ctx context.Context, userID int64, itemID, note string) []entities.Achievement {
	note = strings.TrimSpace(note)

	prefs := s.Preferences(ctx, userID)
	prefs.SetNote(itemID, note)
	s.savePreferences(ctx, userID, prefs)

	if note != "" {
		s.logActivity(ctx, userID, entities.Activity{Action: entities.ActivityAddNote, ItemID: itemID})
	}

	return s.achievements.CheckNotesProgress(ctx, userID, len(prefs.Notes))
}

// Note returns the note of an item or an empty string.
func (s *UserService) Note(ctx context.Context, userID int64, itemID string) string {
	return s.Preferences(ctx, userID).Notes[itemID]
}

// RecordSearch adds the query to the search history and the activity log.
// Empty queries are ignored.
func (s *UserService) RecordSearch(ctx context.Context, userID int64, query string) []entities.Achievement {
	query = strings.TrimSpace(query)

	prefs := s.Preferences(ctx, userID)
	if !prefs.AddSearch(query) {
		return nil
	}
	s.savePreferences(ctx, userID, prefs)

	log := s.logActivity(ctx, userID, entities.Activity{Action: entities.ActivitySearch, SearchTerm: query})

	return s.achievements.CheckSearchProgress(ctx, userID, entities.CountActivities(log, entities.ActivitySearch))
}

func (s *UserService) ClearSearchHistory(ctx context.Context, userID int64) {
	prefs := s.Preferences(ctx, userID)
	prefs.SearchHistory = nil
	s.savePreferences(ctx, userID, prefs)
}

// SetTheme changes the visual theme.
func (s *UserService) SetTheme(ctx context.Context, userID int64, theme entities.Theme) error {
	valid := false
	for _, t := range entities.Themes {
		if t == theme {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}

	prefs := s.Preferences(ctx, userID)
	prefs.Theme = theme
	s.savePreferences(ctx, userID, prefs)

	return nil
}

// SetTimezone validates and stores the user's timezone.
func (s *UserService) SetTimezone(ctx context.Context, userID int64, tz string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)

	loc, err := entities.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
	}

	prefs := s.Preferences(ctx, userID)
	prefs.Timezone = tz
	s.savePreferences(ctx, userID, prefs)

	return loc, nil
}

// ToggleReminders flips daily reminders and returns the new state.
func (s *UserService) ToggleReminders(ctx context.Context, userID int64) bool {
	prefs := s.Preferences(ctx, userID)
	prefs.RemindersEnabled = !prefs.RemindersEnabled
	s.savePreferences(ctx, userID, prefs)
	return prefs.RemindersEnabled
}

// LogEntryView records that the user opened an entry and updates the reading and exploration achievements.
func (s *UserService) LogEntryView(ctx context.Context, userID int64, item entities.CatalogItem) []entities.Achievement {
	prefs := s.Preferences(ctx, userID)
	prefs.MarkItemViewed(item.ID, item.Category)
	s.savePreferences(ctx, userID, prefs)

	s.logActivity(ctx, userID, entities.Activity{Action: entities.ActivityViewEntry, ItemID: item.ID})

	unlocked := s.achievements.CheckReadingProgress(ctx, userID, len(prefs.ViewedItems))
	unlocked = append(unlocked, s.achievements.CheckCategoryExploration(ctx, userID, len(prefs.ViewedCategories))...)

	return unlocked
}

// CompleteOnboarding marks the welcome flow as done and reports whether it was the first time.
func (s *UserService) CompleteOnboarding(ctx context.Context, userID int64) bool {
	prefs := s.Preferences(ctx, userID)
	if prefs.HasCompletedOnboarding {
		return false
	}
	prefs.HasCompletedOnboarding = true
	s.savePreferences(ctx, userID, prefs)
	return true
}

// Activities returns the activity log, newest first.
func (s *UserService) Activities(ctx context.Context, userID int64) []entities.Activity {
	log, err := s.prefsRepo.GetActivities(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("failed to load activities",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
		return nil
	}
	return log
}

// Counters returns the current activity totals.
func (s *UserService) Counters(ctx context.Context, userID int64) Counters {
	prefs := s.Preferences(ctx, userID)
	return Counters{
		Bookmarks:  len(prefs.Bookmarks),
		Notes:      len(prefs.Notes),
		Searches:   entities.CountActivities(s.Activities(ctx, userID), entities.ActivitySearch),
		Read:       len(prefs.ViewedItems),
		Categories: len(prefs.ViewedCategories),
	}
}

// ReminderTargets returns every known user with their reminder settings.
func (s *UserService) ReminderTargets(ctx context.Context) ([]entities.ReminderTarget, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	targets := make([]entities.ReminderTarget, 0, len(users))
	for _, u := range users {
		prefs := s.Preferences(ctx, u.ID)
		targets = append(targets, entities.ReminderTarget{
			UserID:   u.ID,
			ChatID:   u.ChatID,
			Enabled:  prefs.RemindersEnabled,
			Location: s.Location(ctx, u.ID),
		})
	}

	return targets, nil
}

func (s *UserService) savePreferences(ctx context.Context, userID int64, prefs *entities.Preferences) {
	prefs.UpdatedAt = s.now()
	if err := s.prefsRepo.Save(ctx, userID, prefs); err != nil {
		s.logger.Error("failed to save preferences",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

// logActivity prepends a to the activity log and returns the updated log.
func (s *UserService) logActivity(ctx context.Context, userID int64, a entities.Activity) []entities.Activity {
	a.Timestamp = s.now()
	log := entities.PrependActivity(s.Activities(ctx, userID), a)
	if err := s.prefsRepo.SaveActivities(ctx, userID, log); err != nil {
		s.logger.Error("failed to save activities",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
	return log
}

var _ Locator = (*UserService)(nil)

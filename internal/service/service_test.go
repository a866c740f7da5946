package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/infra/kv"
	"github.com/aliskhannn/knowledge-vault-bot/internal/repository"
)

const testUserID int64 = 42

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func (c *fakeClock) AddDays(n int) { c.now = c.now.AddDate(0, 0, n) }

type testEnv struct {
	store        *kv.MemoryStore
	catalog      *repository.CatalogRepository
	clock        *fakeClock
	achievements *AchievementService
	flashcards   *FlashcardService
	streaks      *StreakService
	users        *UserService
}

func newTestCatalog(t *testing.T, n int) *repository.CatalogRepository {
	t.Helper()

	items := make([]entities.CatalogItem, n)
	for i := range items {
		items[i] = entities.CatalogItem{
			Title:      fmt.Sprintf("Entry %d", i+1),
			Definition: fmt.Sprintf("Definition of entry %d", i+1),
			Category:   entities.Categories[i%len(entities.Categories)],
		}
	}

	catalog, err := repository.NewCatalogFromItems(items)
	require.NoError(t, err)
	return catalog
}

func newTestEnv(t *testing.T, catalogSize int) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	store := kv.NewMemoryStore()
	catalog := newTestCatalog(t, catalogSize)
	clock := &fakeClock{now: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}

	achievements := NewAchievementService(repository.NewAchievementRepository(store), logger)

	users := NewUserService(
		repository.NewUserRepository(store),
		repository.NewPreferencesRepository(store),
		achievements,
		time.UTC,
		logger,
	)
	users.SetClock(clock.Now)

	flashcards := NewFlashcardService(repository.NewProgressRepository(store), catalog, users, 0, logger)
	flashcards.SetClock(clock.Now)

	streaks := NewStreakService(repository.NewStreakRepository(store), catalog, achievements, users, logger)
	streaks.SetClock(clock.Now)

	return &testEnv{
		store:        store,
		catalog:      catalog,
		clock:        clock,
		achievements: achievements,
		flashcards:   flashcards,
		streaks:      streaks,
		users:        users,
	}
}

func entitiesSession(studied, correct int) entities.StudySession {
	return entities.StudySession{
		Date:           time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		CardsStudied:   studied,
		CorrectAnswers: correct,
		Duration:       time.Minute,
	}
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/repository"
)

func TestUpdateProgressUnlocks(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 1)

	book := env.achievements.Book(ctx, testUserID)
	require.Len(t, book.Achievements, 13)
	assert.Zero(t, book.UnlockedCount())

	a, ok := env.achievements.UpdateProgress(ctx, testUserID, "streak_7", 7)
	require.True(t, ok)
	assert.Equal(t, "streak_7", a.ID)

	book = env.achievements.Book(ctx, testUserID)
	assert.Equal(t, 140, book.TotalPoints)
	assert.Equal(t, 1, book.UnlockedCount())
}

func TestUnlockIsMonotonic(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 1)

	_, ok := env.achievements.UpdateProgress(ctx, testUserID, "bookmark_5", 9)
	require.True(t, ok)

	_, ok = env.achievements.UpdateProgress(ctx, testUserID, "bookmark_5", 2)
	assert.False(t, ok)
	_, ok = env.achievements.UpdateProgress(ctx, testUserID, "bookmark_5", 5)
	assert.False(t, ok)

	book := env.achievements.Book(ctx, testUserID)
	a, found := book.Get("bookmark_5")
	require.True(t, found)
	assert.True(t, a.IsUnlocked)
	assert.Equal(t, 5, a.CurrentProgress)
	assert.Equal(t, 25, book.TotalPoints)
}

func TestUpdateProgressUnknownID(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 1)

	_, ok := env.achievements.UpdateProgress(ctx, testUserID, "does_not_exist", 100)
	assert.False(t, ok)
	assert.Zero(t, env.achievements.Book(ctx, testUserID).TotalPoints)
}

func TestProgressMayRegress(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 1)

	env.achievements.CheckReadingProgress(ctx, testUserID, 20)
	env.achievements.CheckReadingProgress(ctx, testUserID, 12)

	a, _ := env.achievements.Book(ctx, testUserID).Get("read_25")
	assert.Equal(t, 12, a.CurrentProgress)
	assert.InDelta(t, 0.48, a.ProgressPercentage(), 0.001)
}

func TestRecentlyUnlockedIsCapped(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 1)

	unlocked := env.achievements.CheckReadingProgress(ctx, testUserID, 50)
	assert.Len(t, unlocked, 4)
	unlocked = env.achievements.CheckNotesProgress(ctx, testUserID, 10)
	assert.Len(t, unlocked, 2)

	book := env.achievements.Book(ctx, testUserID)
	require.Len(t, book.RecentlyUnlocked, entities.MaxRecentlyUnlocked)
	assert.Equal(t, "notes_10", book.RecentlyUnlocked[0].ID)
	assert.Equal(t, "notes_1", book.RecentlyUnlocked[1].ID)
	assert.Equal(t, "read_50", book.RecentlyUnlocked[2].ID)

	// 10+100+250+500 for reading, 15+150 for notes.
	assert.Equal(t, 1025, book.TotalPoints)
	assert.Equal(t, 6, book.UnlockedCount())
}

func TestExplorationPoints(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 1)

	env.achievements.CheckCategoryExploration(ctx, testUserID, len(entities.Categories))
	env.achievements.CheckSearchProgress(ctx, testUserID, 50)

	book := env.achievements.Book(ctx, testUserID)
	assert.Equal(t, 200, book.TotalPoints)
	assert.Len(t, env.achievements.ByCategory(ctx, testUserID, entities.AchievementExploration), 2)
}

func TestAchievementsRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 1)

	env.achievements.CheckBookmarkProgress(ctx, testUserID, 7)
	env.achievements.CheckStreakProgress(ctx, testUserID, 3)
	want := env.achievements.Book(ctx, testUserID)

	reloaded := NewAchievementService(repository.NewAchievementRepository(env.store), zap.NewNop())
	assert.Equal(t, want, reloaded.Book(ctx, testUserID))
}

func TestCorruptAchievementsAreRegenerated(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 1)

	require.NoError(t, env.store.Set(ctx, repository.UserPrefix(testUserID)+"achievements", []byte("{broken")))

	book := env.achievements.Book(ctx, testUserID)
	assert.Len(t, book.Achievements, 13)
	assert.Zero(t, book.UnlockedCount())
}

func TestSubscribersAreNotified(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 1)

	var got []string
	env.achievements.Subscribe(func(userID int64, a entities.Achievement) {
		assert.Equal(t, testUserID, userID)
		got = append(got, a.ID)
	})

	env.achievements.CheckNotesProgress(ctx, testUserID, 1)
	env.achievements.CheckNotesProgress(ctx, testUserID, 1)

	assert.Equal(t, []string{"notes_1"}, got)
}

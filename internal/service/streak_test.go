package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
)

func TestMarkViewedOncePerDay(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 3)

	state, _ := env.streaks.MarkViewed(ctx, testUserID)
	assert.Equal(t, 1, state.CurrentStreak)

	env.clock.Advance(3 * time.Hour)
	state, unlocked := env.streaks.MarkViewed(ctx, testUserID)
	assert.Equal(t, 1, state.CurrentStreak)
	assert.Equal(t, 1, state.LongestStreak)
	assert.True(t, state.HasViewedToday)
	assert.Empty(t, unlocked)
}

func TestStreakLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 3)

	var (
		state    entities.StreakState
		unlocked []entities.Achievement
	)
	for day := range 3 {
		if day > 0 {
			env.clock.AddDays(1)
		}
		status := env.streaks.Status(ctx, testUserID)
		assert.False(t, status.HasViewedToday)

		state, unlocked = env.streaks.MarkViewed(ctx, testUserID)
		assert.Equal(t, day+1, state.CurrentStreak)
		assert.LessOrEqual(t, state.CurrentStreak, state.LongestStreak)
	}
	require.Len(t, unlocked, 1)
	assert.Equal(t, "streak_3", unlocked[0].ID)

	// A gap of more than one day breaks the streak.
	env.clock.AddDays(3)
	status := env.streaks.Status(ctx, testUserID)
	assert.Equal(t, 0, status.CurrentStreak)
	assert.Equal(t, 3, status.LongestStreak)

	state, _ = env.streaks.MarkViewed(ctx, testUserID)
	assert.Equal(t, 1, state.CurrentStreak)
	assert.Equal(t, 3, state.LongestStreak)
}

func TestEvaluatePersistsReset(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 3)

	env.streaks.MarkViewed(ctx, testUserID)
	env.clock.AddDays(1)
	env.streaks.MarkViewed(ctx, testUserID)

	env.clock.AddDays(2)
	assert.Equal(t, 0, env.streaks.Evaluate(ctx, testUserID).CurrentStreak)

	// Going back in time does not resurrect the streak.
	env.clock.AddDays(-2)
	status := env.streaks.Status(ctx, testUserID)
	assert.Equal(t, 0, status.CurrentStreak)
	assert.Equal(t, 2, status.LongestStreak)
}

func TestStreakClockMovedBackwards(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 3)

	env.streaks.MarkViewed(ctx, testUserID)
	env.clock.AddDays(1)
	env.streaks.MarkViewed(ctx, testUserID)

	env.clock.AddDays(-1)
	state, _ := env.streaks.MarkViewed(ctx, testUserID)
	assert.True(t, state.HasViewedToday)
	assert.Equal(t, 2, state.CurrentStreak)
}

func TestStreakReset(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 3)

	env.streaks.MarkViewed(ctx, testUserID)
	env.streaks.Reset(ctx, testUserID)

	status := env.streaks.Status(ctx, testUserID)
	assert.Equal(t, 0, status.CurrentStreak)
	assert.Equal(t, 1, status.LongestStreak)
}

func TestStreakUsesUserTimezone(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 3)

	_, err := env.users.SetTimezone(ctx, testUserID, "UTC+3")
	require.NoError(t, err)

	// 20:30 UTC is 23:30 local.
	env.clock.now = time.Date(2024, 3, 15, 20, 30, 0, 0, time.UTC)
	env.streaks.MarkViewed(ctx, testUserID)

	// One hour later it is already the next local day.
	env.clock.Advance(time.Hour)
	status := env.streaks.Status(ctx, testUserID)
	assert.False(t, status.HasViewedToday)
	assert.Equal(t, 1, status.CurrentStreak)
}

func TestDailyWord(t *testing.T) {
	items := make([]entities.CatalogItem, 7)
	for i := range items {
		items[i] = entities.CatalogItem{ID: string(rune('a' + i))}
	}

	// 2024-03-15 is day 75: (2024*1000 + 75) % 7 == 4.
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	word, ok := DailyWord(items, now, time.UTC)
	require.True(t, ok)
	assert.Equal(t, "e", word.ID)

	next, _ := DailyWord(items, now.AddDate(0, 0, 1), time.UTC)
	assert.Equal(t, "f", next.ID)

	_, ok = DailyWord(nil, now, time.UTC)
	assert.False(t, ok)
}

func TestTodayWordIsStableWithinDay(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 10)

	first, err := env.streaks.TodayWord(ctx, testUserID)
	require.NoError(t, err)

	env.clock.Advance(6 * time.Hour)
	second, err := env.streaks.TodayWord(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

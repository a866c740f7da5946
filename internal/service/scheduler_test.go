package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
)

func TestReviewInterval(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 3},
		{3, 7},
		{4, 14},
		{5, 30},
		{6, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ReviewInterval(tt.level), "level %d", tt.level)
	}
}

func reviewedAt(level int, at time.Time) *entities.CardProgress {
	return &entities.CardProgress{
		TimesReviewed: 1,
		CorrectCount:  1,
		LastReviewed:  &at,
		MasteryLevel:  level,
	}
}

func TestDueItems(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	items := []entities.CatalogItem{
		{ID: "new", Title: "New"},
		{ID: "never-reviewed", Title: "Never reviewed"},
		{ID: "level3-5d", Title: "Level 3, five days"},
		{ID: "level3-8d", Title: "Level 3, eight days"},
		{ID: "level3-7d", Title: "Level 3, seven days"},
		{ID: "level0-today", Title: "Level 0, today"},
		{ID: "level5-today", Title: "Level 5, today"},
	}
	progress := map[string]*entities.CardProgress{
		"never-reviewed": {MasteryLevel: 2},
		"level3-5d":      reviewedAt(3, now.AddDate(0, 0, -5)),
		"level3-8d":      reviewedAt(3, now.AddDate(0, 0, -8)),
		"level3-7d":      reviewedAt(3, now.AddDate(0, 0, -7)),
		"level0-today":   reviewedAt(0, now.Add(-time.Hour)),
		"level5-today":   reviewedAt(5, now.Add(-time.Hour)),
	}

	due := DueItems(items, progress, now, time.UTC)

	ids := make([]string, 0, len(due))
	for _, item := range due {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"new", "never-reviewed", "level3-8d", "level3-7d", "level0-today"}, ids)
}

func TestDueItemsCountsCalendarDays(t *testing.T) {
	items := []entities.CatalogItem{{ID: "a", Title: "A"}}
	lastNight := time.Date(2024, 3, 14, 23, 30, 0, 0, time.UTC)

	// 40 minutes later but on the next calendar day.
	now := time.Date(2024, 3, 15, 0, 10, 0, 0, time.UTC)
	due := DueItems(items, map[string]*entities.CardProgress{"a": reviewedAt(1, lastNight)}, now, time.UTC)
	assert.Len(t, due, 1)

	// 21 hours later, same calendar day in UTC-3.
	morning := time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC)
	loc, err := entities.LoadLocation("UTC-3")
	require.NoError(t, err)
	evening := morning.Add(21 * time.Hour)
	due = DueItems(items, map[string]*entities.CardProgress{"a": reviewedAt(1, morning)}, evening, loc)
	assert.Empty(t, due)
}

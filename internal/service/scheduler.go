package service

import (
	"time"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
)

// reviewIntervals maps a mastery level to the days that must pass before the next review.
var reviewIntervals = [...]int{
	0: 0,
	1: 1,
	2: 3,
	3: 7,
	4: 14,
	5: 30,
}

// ReviewInterval returns the review spacing in days for a mastery level.
// Levels outside 0-5 resolve to 0 so the card is due immediately.
func ReviewInterval(masteryLevel int) int {
	if masteryLevel < 0 || masteryLevel >= len(reviewIntervals) {
		return 0
	}
	return reviewIntervals[masteryLevel]
}

// IsDue reports whether a card with the given progress should be reviewed at now.
// A nil progress or a card never reviewed is always due.
func IsDue(p *entities.CardProgress, now time.Time, loc *time.Location) bool {
	if p == nil || p.LastReviewed == nil {
		return true
	}
	return entities.CalendarDaysBetween(*p.LastReviewed, now, loc) >= ReviewInterval(p.MasteryLevel)
}

// DueItems returns the catalog entries due for review, in catalog order.
// Days are counted between calendar dates in loc, not as elapsed hours.
func DueItems(
	items []entities.CatalogItem,
	progress map[string]*entities.CardProgress,
	now time.Time,
	loc *time.Location,
) []entities.CatalogItem {
	due := make([]entities.CatalogItem, 0, len(items))
	for _, item := range items {
		if IsDue(progress[item.ID], now, loc) {
			due = append(due, item)
		}
	}
	return due
}

package entities

import "time"

// ReminderPayload is the content of a daily word reminder.
type ReminderPayload struct {
	Word     CatalogItem
	Streak   StreakState
	DueCards int // flashcards waiting for review
}

// ReminderTarget combines a known user with the settings the reminder job needs.
type ReminderTarget struct {
	UserID   int64
	ChatID   int64
	Enabled  bool
	Location *time.Location
}

// IsReminderHour reports whether now is the configured local hour for the target.
func (t ReminderTarget) IsReminderHour(now time.Time, hour int) bool {
	if !t.Enabled {
		return false
	}
	loc := t.Location
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Hour() == hour
}

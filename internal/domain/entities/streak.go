package entities

import "time"

// StreakState tracks consecutive days with a viewed daily word.
type StreakState struct {
	CurrentStreak  int        `json:"current_streak"`
	LongestStreak  int        `json:"longest_streak"`
	LastViewedAt   *time.Time `json:"last_viewed_at,omitempty"`
	HasViewedToday bool       `json:"-"` // derived by Evaluate, never stored
}

// Evaluate derives HasViewedToday for the calendar day of now and breaks the
// streak after a gap of more than one day. It never increments counters.
//
// It reports whether persisted fields changed.
func (s *StreakState) Evaluate(now time.Time, loc *time.Location) bool {
	if s.LastViewedAt == nil {
		s.HasViewedToday = false
		return false
	}

	days := CalendarDaysBetween(*s.LastViewedAt, now, loc)
	switch {
	case days <= 0:
		// Negative values mean the clock moved backwards; treat as the same day.
		s.HasViewedToday = true
		return false
	case days == 1:
		s.HasViewedToday = false
		return false
	default:
		s.HasViewedToday = false
		if s.CurrentStreak == 0 {
			return false
		}
		s.CurrentStreak = 0
		return true
	}
}

// MarkViewed extends the streak once per day. It is a no-op when the word was
// already viewed today. Call Evaluate first so HasViewedToday is current.
func (s *StreakState) MarkViewed(now time.Time) bool {
	if s.HasViewedToday {
		return false
	}

	viewedAt := now
	s.HasViewedToday = true
	s.LastViewedAt = &viewedAt
	s.CurrentStreak++
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}

	return true
}

// Reset breaks the current streak, keeping the longest one.
func (s *StreakState) Reset() {
	s.CurrentStreak = 0
}

package entities

import "time"

// MaxStoredSessions is how many study sessions are kept in history.
const MaxStoredSessions = 50

// StudySession is a finished flashcard session.
type StudySession struct {
	Date           time.Time     `json:"date"`
	CardsStudied   int           `json:"cards_studied"`   // cards actually answered
	CorrectAnswers int           `json:"correct_answers"` // cards answered correctly
	Duration       time.Duration `json:"duration"`
}

// Accuracy returns the share of correct answers, or 0 for an empty session.
func (s StudySession) Accuracy() float64 {
	if s.CardsStudied == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.CardsStudied)
}

// PrependSession inserts s at the front of history and evicts the oldest
// entries beyond MaxStoredSessions.
func PrependSession(history []StudySession, s StudySession) []StudySession {
	out := make([]StudySession, 0, min(len(history)+1, MaxStoredSessions))
	out = append(out, s)
	out = append(out, history...)
	if len(out) > MaxStoredSessions {
		out = out[:MaxStoredSessions]
	}
	return out
}

// SessionStats aggregates study session history.
type SessionStats struct {
	TotalCardsStudied int
	AverageAccuracy   float64
	Sessions          int
}

// SummarizeSessions computes totals over the stored history.
func SummarizeSessions(history []StudySession) SessionStats {
	stats := SessionStats{Sessions: len(history)}
	if len(history) == 0 {
		return stats
	}

	var totalAccuracy float64
	for _, s := range history {
		stats.TotalCardsStudied += s.CardsStudied
		totalAccuracy += s.Accuracy()
	}
	stats.AverageAccuracy = totalAccuracy / float64(len(history))

	return stats
}

package entities

import "time"

const (
	MinMasteryLevel = 0
	MaxMasteryLevel = 5

	// MasteredLevel is the mastery level from which a card counts as mastered.
	MasteredLevel = 4
)

// CardProgress stores the review history of a single catalog item.
type CardProgress struct {
	ItemID        string     `json:"item_id"`
	TimesReviewed int        `json:"times_reviewed"`
	CorrectCount  int        `json:"correct_count"`
	LastReviewed  *time.Time `json:"last_reviewed,omitempty"` // nil until the first review
	MasteryLevel  int        `json:"mastery_level"`           // 0-5
}

// NewCardProgress creates an empty progress record for an item.
func NewCardProgress(itemID string) *CardProgress {
	return &CardProgress{ItemID: itemID}
}

// RecordAnswer applies one review outcome.
//
// A correct answer raises the mastery level by one, a wrong answer lowers it by one.
// Both directions are clamped to [MinMasteryLevel, MaxMasteryLevel].
func (p *CardProgress) RecordAnswer(isCorrect bool, now time.Time) {
	p.TimesReviewed++
	if isCorrect {
		p.CorrectCount++
		p.MasteryLevel = min(MaxMasteryLevel, p.MasteryLevel+1)
	} else {
		p.MasteryLevel = max(MinMasteryLevel, p.MasteryLevel-1)
	}
	p.MasteryLevel = max(MinMasteryLevel, min(MaxMasteryLevel, p.MasteryLevel))

	reviewedAt := now
	p.LastReviewed = &reviewedAt
}

// Accuracy returns the share of correct reviews, or 0 if the card was never reviewed.
func (p *CardProgress) Accuracy() float64 {
	if p.TimesReviewed == 0 {
		return 0
	}
	return float64(p.CorrectCount) / float64(p.TimesReviewed)
}

// IsMastered reports whether the card reached MasteredLevel.
func (p *CardProgress) IsMastered() bool {
	return p.MasteryLevel >= MasteredLevel
}

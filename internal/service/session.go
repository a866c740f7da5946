package service

import (
	"context"
	"errors"
	"time"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
)

// ErrOutOfRange is returned by CurrentCard on a session without cards.
var ErrOutOfRange = errors.New("session has no cards")

// AnswerRecorder persists review outcomes of a running session.
type AnswerRecorder interface {
	RecordAnswer(ctx context.Context, userID int64, itemID string, isCorrect bool) *entities.CardProgress
	CompleteSession(ctx context.Context, userID int64, session entities.StudySession)
}

// SessionRunner drives one bounded study session.
// It is not safe for concurrent use.
type SessionRunner struct {
	userID    int64
	cards     []entities.CatalogItem
	recorder  AnswerRecorder
	now       func() time.Time
	startedAt time.Time

	index    int
	revealed bool
	answered int
	correct  int
	ended    bool
	record   entities.StudySession
}

// NewSessionRunner starts a session over cards at now().
func NewSessionRunner(
	userID int64,
	cards []entities.CatalogItem,
	recorder AnswerRecorder,
	now func() time.Time,
) *SessionRunner {
	if now == nil {
		now = time.Now
	}
	return &SessionRunner{
		userID:    userID,
		cards:     cards,
		recorder:  recorder,
		now:       now,
		startedAt: now(),
	}
}

func (r *SessionRunner) IsEmpty() bool { return len(r.cards) == 0 }

func (r *SessionRunner) Len() int { return len(r.cards) }

// Position returns the zero-based index of the current card.
func (r *SessionRunner) Position() int { return r.index }

func (r *SessionRunner) IsRevealed() bool { return r.revealed }

func (r *SessionRunner) IsEnded() bool { return r.ended }

// Answered returns how many cards were answered so far.
func (r *SessionRunner) Answered() int { return r.answered }

// Correct returns how many answers were correct so far.
func (r *SessionRunner) Correct() int { return r.correct }

// Accuracy returns the share of correct answers so far.
func (r *SessionRunner) Accuracy() float64 {
	if r.answered == 0 {
		return 0
	}
	return float64(r.correct) / float64(r.answered)
}

// CurrentCard returns the card at the current position.
// After the last answer it keeps returning the last card.
func (r *SessionRunner) CurrentCard() (entities.CatalogItem, error) {
	if len(r.cards) == 0 {
		return entities.CatalogItem{}, ErrOutOfRange
	}
	return r.cards[r.index], nil
}

// RevealAnswer shows the answer of the current card.
func (r *SessionRunner) RevealAnswer() {
	if r.ended || len(r.cards) == 0 {
		return
	}
	r.revealed = true
}

// RecordAnswer stores the outcome of the current card and moves to the next one.
// It does nothing and returns false unless the answer is revealed and the session is running.
func (r *SessionRunner) RecordAnswer(ctx context.Context, isCorrect bool) bool {
	if r.ended || !r.revealed || len(r.cards) == 0 {
		return false
	}

	r.recorder.RecordAnswer(ctx, r.userID, r.cards[r.index].ID, isCorrect)
	r.answered++
	if isCorrect {
		r.correct++
	}
	r.revealed = false

	if r.index == len(r.cards)-1 {
		r.EndSession(ctx)
		return true
	}

	r.index++
	return true
}

// EndSession commits the session record once. Only answered cards count as studied.
// It returns the record and whether this call committed it.
func (r *SessionRunner) EndSession(ctx context.Context) (entities.StudySession, bool) {
	if r.ended || len(r.cards) == 0 {
		return r.record, false
	}

	now := r.now()
	r.record = entities.StudySession{
		Date:           now,
		CardsStudied:   r.answered,
		CorrectAnswers: r.correct,
		Duration:       now.Sub(r.startedAt),
	}
	r.ended = true
	r.revealed = false
	r.recorder.CompleteSession(ctx, r.userID, r.record)

	return r.record, true
}

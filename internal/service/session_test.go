package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRecordsAnswers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 3)

	runner := env.flashcards.StartSession(ctx, testUserID)
	require.Equal(t, 3, runner.Len())

	answers := []bool{true, true, false}
	var wrongID string
	for _, correct := range answers {
		card, err := runner.CurrentCard()
		require.NoError(t, err)
		if !correct {
			wrongID = card.ID
		}

		runner.RevealAnswer()
		require.True(t, runner.RecordAnswer(ctx, correct))
	}
	env.clock.Advance(2 * time.Minute)

	assert.True(t, runner.IsEnded())
	assert.InDelta(t, 2.0/3.0, runner.Accuracy(), 0.001)

	sessions := env.flashcards.Sessions(ctx, testUserID)
	require.Len(t, sessions, 1)
	assert.Equal(t, 3, sessions[0].CardsStudied)
	assert.Equal(t, 2, sessions[0].CorrectAnswers)

	progress := env.flashcards.Progress(ctx, testUserID)
	require.Len(t, progress, 3)
	for id, p := range progress {
		assert.Equal(t, 1, p.TimesReviewed)
		if id == wrongID {
			assert.Equal(t, 0, p.CorrectCount)
			assert.Equal(t, 0, p.MasteryLevel)
		} else {
			assert.Equal(t, 1, p.CorrectCount)
			assert.Equal(t, 1, p.MasteryLevel)
		}
		require.NotNil(t, p.LastReviewed)
	}

	// Only the failed card stays due today.
	next := env.flashcards.StartSession(ctx, testUserID)
	require.Equal(t, 1, next.Len())
	card, err := next.CurrentCard()
	require.NoError(t, err)
	assert.Equal(t, wrongID, card.ID)
}

func TestSessionRequiresReveal(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 2)

	runner := env.flashcards.StartSession(ctx, testUserID)
	first, err := runner.CurrentCard()
	require.NoError(t, err)

	assert.False(t, runner.RecordAnswer(ctx, true))
	assert.Equal(t, 0, runner.Answered())
	assert.Equal(t, 0, runner.Position())

	runner.RevealAnswer()
	runner.RevealAnswer()
	assert.True(t, runner.IsRevealed())
	assert.True(t, runner.RecordAnswer(ctx, true))
	assert.False(t, runner.IsRevealed())

	second, err := runner.CurrentCard()
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Empty(t, env.flashcards.Sessions(ctx, testUserID))
}

func TestSessionEndEarly(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 5)

	runner := env.flashcards.StartSession(ctx, testUserID)
	for range 2 {
		runner.RevealAnswer()
		runner.RecordAnswer(ctx, true)
	}
	env.clock.Advance(90 * time.Second)

	session, committed := runner.EndSession(ctx)
	require.True(t, committed)
	assert.Equal(t, 2, session.CardsStudied)
	assert.Equal(t, 2, session.CorrectAnswers)
	assert.Equal(t, 90*time.Second, session.Duration)

	_, committed = runner.EndSession(ctx)
	assert.False(t, committed)

	runner.RevealAnswer()
	assert.False(t, runner.RecordAnswer(ctx, true))
	assert.Len(t, env.flashcards.Sessions(ctx, testUserID), 1)
}

func TestSessionKeepsLastCardAfterCompletion(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 2)

	runner := env.flashcards.StartSession(ctx, testUserID)
	var last string
	for range runner.Len() {
		card, err := runner.CurrentCard()
		require.NoError(t, err)
		last = card.ID
		runner.RevealAnswer()
		runner.RecordAnswer(ctx, false)
	}

	require.True(t, runner.IsEnded())
	card, err := runner.CurrentCard()
	require.NoError(t, err)
	assert.Equal(t, last, card.ID)
}

func TestEmptySession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 1)

	runner := env.flashcards.StartSession(ctx, testUserID)
	runner.RevealAnswer()
	require.True(t, runner.RecordAnswer(ctx, true))

	empty := env.flashcards.StartSession(ctx, testUserID)
	assert.True(t, empty.IsEmpty())

	_, err := empty.CurrentCard()
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, committed := empty.EndSession(ctx)
	assert.False(t, committed)
	assert.Len(t, env.flashcards.Sessions(ctx, testUserID), 1)
}

func TestSessionSizeIsCapped(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 40)

	runner := env.flashcards.StartSession(ctx, testUserID)
	assert.Equal(t, DefaultSessionSize, runner.Len())

	seen := make(map[string]bool)
	for range runner.Len() {
		card, err := runner.CurrentCard()
		require.NoError(t, err)
		assert.False(t, seen[card.ID], "card %s repeated", card.ID)
		seen[card.ID] = true
		runner.RevealAnswer()
		runner.RecordAnswer(ctx, true)
	}
}

func TestFlashcardStats(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 4)

	items := env.catalog.All()
	for range 4 {
		env.flashcards.RecordAnswer(ctx, testUserID, items[0].ID, true)
	}
	env.flashcards.RecordAnswer(ctx, testUserID, items[1].ID, false)

	env.flashcards.CompleteSession(ctx, testUserID, entitiesSession(4, 4))
	env.flashcards.CompleteSession(ctx, testUserID, entitiesSession(2, 1))

	stats := env.flashcards.Stats(ctx, testUserID)
	assert.Equal(t, 2, stats.Sessions)
	assert.Equal(t, 6, stats.TotalCardsStudied)
	assert.InDelta(t, 0.75, stats.AverageAccuracy, 0.001)
	assert.Equal(t, 1, stats.MasteredCards)
	assert.Equal(t, 2, stats.ReviewedCards)
	assert.Equal(t, 4, stats.TotalCards)
	// items[0] is at level 4 and items[1] at level 0 reviewed today.
	assert.Equal(t, 3, stats.DueCards)
}

func TestMasteryIsClamped(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, 1)
	id := env.catalog.All()[0].ID

	var level int
	for range 8 {
		level = env.flashcards.RecordAnswer(ctx, testUserID, id, true).MasteryLevel
	}
	assert.Equal(t, 5, level)

	for range 8 {
		p := env.flashcards.RecordAnswer(ctx, testUserID, id, false)
		level = p.MasteryLevel
		assert.LessOrEqual(t, p.CorrectCount, p.TimesReviewed)
	}
	assert.Equal(t, 0, level)
}

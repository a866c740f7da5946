package telegram

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/service"
)

func testItem() entities.CatalogItem {
	return entities.CatalogItem{
		ID:           "b6c7f1de-1f0e-4b8e-9a55-3f0a3c1d2e4f",
		Title:        "Serendipity",
		Definition:   "The occurrence of events by chance in a happy way",
		Category:     entities.CategoryDictionary,
		RelatedTerms: []string{"chance", "fortune"},
		Etymology:    "Coined by Horace Walpole",
		Examples:     []string{"It was pure serendipity that we met"},
	}
}

func TestRenderEntry(t *testing.T) {
	text := renderEntry(testItem(), "")

	assert.Contains(t, text, "Serendipity")
	assert.Contains(t, text, "Horace Walpole")
	assert.Contains(t, text, "chance, fortune")
	assert.NotContains(t, text, "Your note")

	withNote := renderEntry(testItem(), "remember this")
	assert.Contains(t, withNote, "Your note")
	assert.Contains(t, withNote, "remember this")
}

func TestRenderEntryEscapesMarkdown(t *testing.T) {
	item := testItem()
	item.Definition = "a_b*c"

	text := renderEntry(item, "")
	assert.Contains(t, text, `a\_b\*c`)
}

func TestRenderCardHidesDefinitionUntilRevealed(t *testing.T) {
	item := testItem()

	question := renderCard(item, 0, 3, false)
	assert.Contains(t, question, "Card 1/3")
	assert.Contains(t, question, "Do you remember what it means?")
	assert.NotContains(t, question, item.Definition)

	answer := renderCard(item, 2, 3, true)
	assert.Contains(t, answer, "Card 3/3")
	assert.Contains(t, answer, item.Definition)
}

func TestRenderSessionSummary(t *testing.T) {
	text := renderSessionSummary(entities.StudySession{
		Date:           time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		CardsStudied:   4,
		CorrectAnswers: 3,
		Duration:       90*time.Second + 400*time.Millisecond,
	})

	assert.Contains(t, text, "Cards studied: 4")
	assert.Contains(t, text, "Correct: 3")
	assert.Contains(t, text, "Accuracy: 75%")
	assert.Contains(t, text, "1m30s")
}

func TestRenderReminder(t *testing.T) {
	payload := entities.ReminderPayload{
		Word:   testItem(),
		Streak: entities.StreakState{CurrentStreak: 5, LongestStreak: 7},
	}

	text := renderReminder(payload)
	assert.Contains(t, text, "Serendipity")
	assert.Contains(t, text, "Keep your 5 day streak going")
	assert.NotContains(t, text, "due for review")

	payload.Streak = entities.StreakState{}
	payload.DueCards = 2
	text = renderReminder(payload)
	assert.Contains(t, text, "Start a new streak today")
	assert.Contains(t, text, `2 flashcard\(s\) due for review`)
}

func TestRenderSearchResultsTruncates(t *testing.T) {
	results := make([]service.SearchResult, maxListedItems+2)
	for i := range results {
		item := testItem()
		item.Title = fmt.Sprintf("Term %d", i)
		results[i] = service.SearchResult{Item: item, Match: service.MatchDefinition}
	}

	text := renderSearchResults("chance", results)
	assert.Contains(t, text, `12 result\(s\)`)
	assert.Contains(t, text, "Term 0")
	assert.Contains(t, text, "definition")
	assert.NotContains(t, text, "Term 11")
	assert.Contains(t, text, "and 2 more")
}

func TestBuildProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░", buildProgressBar(0, 0, 4))
	assert.Equal(t, "▓▓░░", buildProgressBar(1, 2, 4))
	assert.Equal(t, "▓▓▓▓", buildProgressBar(9, 2, 4))
}

package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
)

// buildEntryKeyboard builds the actions of an opened entry.
func buildEntryKeyboard(itemID string, bookmarked bool) tgbotapi.InlineKeyboardMarkup {
	bookmark := "🔖 Bookmark"
	if bookmarked {
		bookmark = "❌ Remove bookmark"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(bookmark, buildBookmarkCallback(itemID)),
			tgbotapi.NewInlineKeyboardButtonData("🔗 Related", buildRelatedCallback(itemID)),
		),
	)
}

// buildItemListKeyboard builds one button per entry.
func buildItemListKeyboard(items []entities.CatalogItem) *tgbotapi.InlineKeyboardMarkup {
	if len(items) == 0 {
		return nil
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, item := range items {
		if i == maxListedItems {
			break
		}
		label := item.Category.Style().Emoji + " " + item.Title
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildEntryCallback(item.ID)),
		))
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

// buildCardQuestionKeyboard builds the keyboard of an unrevealed card.
func buildCardQuestionKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👀 Show answer", buildStudyCallback(studyReveal)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏹ End session", buildStudyCallback(studyEnd)),
		),
	)
}

// buildCardAnswerKeyboard builds the keyboard of a revealed card.
func buildCardAnswerKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ I knew it", buildStudyAnswerCallback(true)),
			tgbotapi.NewInlineKeyboardButtonData("❌ I didn't", buildStudyAnswerCallback(false)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏹ End session", buildStudyCallback(studyEnd)),
		),
	)
}

// buildSessionDoneKeyboard builds the keyboard of a session summary.
func buildSessionDoneKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 New session", buildStudyCallback(studyStart)),
			tgbotapi.NewInlineKeyboardButtonData("📊 Statistics", actionStats),
		),
	)
}

// buildCategoriesKeyboard builds two category buttons per row.
func buildCategoriesKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for _, c := range entities.Categories {
		label := c.Style().Emoji + " " + string(c)
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildCategoryCallback(string(c))))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildThemesKeyboard marks the current theme.
func buildThemesKeyboard(current entities.Theme) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, t := range entities.Themes {
		label := string(t)
		if t == current {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildThemeCallback(string(t))),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildAchievementsKeyboard builds one button per achievement category.
func buildAchievementsKeyboard() tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	var rows [][]tgbotapi.InlineKeyboardButton

	for _, c := range entities.AchievementCategories {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(string(c), buildAchievementsCallback(string(c))))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildHistoryKeyboard lets the user repeat a recent search or clear the history.
func buildHistoryKeyboard(history []string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, q := range history {
		if i == maxListedItems {
			break
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔍 "+q, buildHistoryRunCallback(i)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🧹 Clear history", buildHistoryClearCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func buildResetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Yes, delete everything", buildResetConfirmCallback()),
			tgbotapi.NewInlineKeyboardButtonData("Cancel", buildResetCancelCallback()),
		),
	)
}

// buildReminderKeyboard builds the actions of a reminder message.
func buildReminderKeyboard(dueCards int) tgbotapi.InlineKeyboardMarkup {
	row := tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🌅 Open today's word", actionDaily),
	)
	if dueCards > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("🎯 Study", buildStudyCallback(studyStart)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

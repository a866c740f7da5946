package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/service"
)

func (h *Handler) startHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.users.CompleteOnboarding(ctx, userID)
		return h.send(newMessage(chatID, renderWelcome()))
	}
}

func (h *Handler) helpHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, helpText))
	}
}

// dailyHandler shows the word of the day and extends the streak.
func (h *Handler) dailyHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		item, err := h.streaks.TodayWord(ctx, userID)
		if errors.Is(err, service.ErrEmptyCatalog) {
			return h.send(newPlainMessage(chatID, msgEmptyCatalog))
		}
		if err != nil {
			return fmt.Errorf("get daily word: %w", err)
		}

		streak, _ := h.streaks.MarkViewed(ctx, userID)
		h.users.LogEntryView(ctx, userID, item)

		prefs := h.users.Preferences(ctx, userID)
		msg := newMessage(chatID, renderDailyWord(item, streak, prefs.Notes[item.ID]))
		msg.ReplyMarkup = buildEntryKeyboard(item.ID, prefs.IsBookmarked(item.ID))

		return h.send(msg)
	}
}

func (h *Handler) statsHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text := renderStats(
			h.flashcards.Stats(ctx, userID),
			h.streaks.Status(ctx, userID),
			h.users.Counters(ctx, userID),
			h.achievements.Book(ctx, userID),
		)
		return h.send(newMessage(chatID, text))
	}
}

func (h *Handler) achievementsHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newMessage(chatID, renderAchievements(h.achievements.Book(ctx, userID)))
		msg.ReplyMarkup = buildAchievementsKeyboard()
		return h.send(msg)
	}
}

// searchHandler runs a search and records successful queries in the history.
func (h *Handler) searchHandler(userID int64, query string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if query == "" {
			return h.send(newPlainMessage(chatID, "Send /search followed by a word, or just type it."))
		}

		results := h.search.Search(query)
		if len(results) == 0 {
			return h.send(newPlainMessage(chatID, msgNoResults))
		}
		h.users.RecordSearch(ctx, userID, query)

		items := make([]entities.CatalogItem, 0, len(results))
		for _, r := range results {
			items = append(items, r.Item)
		}

		msg := newMessage(chatID, renderSearchResults(query, results))
		if kb := buildItemListKeyboard(items); kb != nil {
			msg.ReplyMarkup = *kb
		}
		return h.send(msg)
	}
}

func (h *Handler) categoryHandler(name string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if name == "" {
			msg := newMessage(chatID, bold("🗂 Categories"))
			msg.ReplyMarkup = buildCategoriesKeyboard()
			return h.send(msg)
		}

		category, ok := entities.ParseCategory(name)
		if !ok {
			msg := newPlainMessage(chatID, msgUnknownCategory)
			msg.ReplyMarkup = buildCategoriesKeyboard()
			return h.send(msg)
		}

		return h.send(h.categoryMessage(chatID, category))
	}
}

func (h *Handler) categoryMessage(chatID int64, category entities.Category) tgbotapi.MessageConfig {
	items := h.search.ByCategory(category)
	style := category.Style()

	msg := newMessage(chatID, renderItemList(fmt.Sprintf("%s %s (%d)", style.Emoji, category, len(items)), items))
	if kb := buildItemListKeyboard(items); kb != nil {
		msg.ReplyMarkup = *kb
	}
	return msg
}

func (h *Handler) bookmarksHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		prefs := h.users.Preferences(ctx, userID)

		var items []entities.CatalogItem
		for _, item := range h.catalog.All() {
			if prefs.IsBookmarked(item.ID) {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			return h.send(newPlainMessage(chatID, msgNoBookmarks))
		}

		msg := newMessage(chatID, renderItemList(fmt.Sprintf("🔖 Bookmarks (%d)", len(items)), items))
		if kb := buildItemListKeyboard(items); kb != nil {
			msg.ReplyMarkup = *kb
		}
		return h.send(msg)
	}
}

// noteHandler saves a note for the last opened entry. An empty text deletes the note.
func (h *Handler) noteHandler(userID int64, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		itemID := h.users.Preferences(ctx, userID).LastOpenedItemID
		if itemID == "" {
			return h.send(newPlainMessage(chatID, msgUseNote))
		}

		item, err := h.catalog.GetByID(itemID)
		if err != nil {
			return h.send(newPlainMessage(chatID, msgEntryNotFound))
		}

		h.users.SaveNote(ctx, userID, item.ID, text)
		if text == "" {
			return h.send(newPlainMessage(chatID, msgNoteDeleted))
		}
		return h.send(newPlainMessage(chatID, msgNoteSaved+" ("+item.Title+")"))
	}
}

func (h *Handler) historyHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		history := h.users.Preferences(ctx, userID).SearchHistory
		if len(history) == 0 {
			return h.send(newPlainMessage(chatID, msgNoHistory))
		}

		msg := newMessage(chatID, renderHistory(history))
		msg.ReplyMarkup = buildHistoryKeyboard(history)
		return h.send(msg)
	}
}

func (h *Handler) themeHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		theme := h.users.Preferences(ctx, userID).Theme

		msg := newMessage(chatID, renderTheme(theme))
		msg.ReplyMarkup = buildThemesKeyboard(theme)
		return h.send(msg)
	}
}

func (h *Handler) timezoneHandler(userID int64, tz string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if tz == "" {
			current := h.users.Preferences(ctx, userID).Timezone
			if current == "" {
				current = "default"
			}
			return h.send(newPlainMessage(chatID, "🕰 Current timezone: "+current+"\n\n"+msgUseTimezone))
		}

		loc, err := h.users.SetTimezone(ctx, userID, tz)
		if errors.Is(err, service.ErrInvalidTimezone) {
			return h.send(newPlainMessage(chatID, msgInvalidTimezone))
		}
		if err != nil {
			return fmt.Errorf("set timezone: %w", err)
		}

		return h.send(newPlainMessage(chatID, "🕰 Timezone set to "+loc.String()))
	}
}

func (h *Handler) remindersHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if h.users.ToggleReminders(ctx, userID) {
			return h.send(newPlainMessage(chatID, msgRemindersEnabled))
		}
		return h.send(newPlainMessage(chatID, msgRemindersDisabled))
	}
}

func (h *Handler) resetHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newPlainMessage(chatID, msgResetConfirm)
		msg.ReplyMarkup = buildResetKeyboard()
		return h.send(msg)
	}
}

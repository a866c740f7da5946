package telegram

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Remove the user's "clock".
	defer func() {
		if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			h.logger.Debug("callback answer error", zap.Error(err))
		}
	}()

	if cb.Message == nil {
		return
	}

	userID := cb.From.ID
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID
	data := decodeCallback(cb.Data)

	var fn HandlerFunc
	switch data.Action {
	case actionEntry:
		fn = h.entryHandler(userID, data.param(0))
	case actionBookmark:
		fn = h.bookmarkCallbackHandler(userID, messageID, data.param(0))
	case actionRelated:
		fn = h.relatedHandler(data.param(0))
	case actionStudy:
		fn = h.studyCallbackHandler(userID, messageID, data)
	case actionCategory:
		fn = h.categoryHandler(data.param(0))
	case actionTheme:
		fn = h.themeCallbackHandler(userID, messageID, data.param(0))
	case actionAchievements:
		fn = h.achievementCategoryHandler(userID, data.param(0))
	case actionHistory:
		fn = h.historyCallbackHandler(userID, messageID, data)
	case actionReset:
		fn = h.resetCallbackHandler(userID, messageID, data.param(0))
	case actionDaily:
		fn = h.dailyHandler(userID)
	case actionStats:
		fn = h.statsHandler(userID)
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		return
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

// entryHandler opens an entry and records the view.
func (h *Handler) entryHandler(userID int64, itemID string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		item, err := h.catalog.GetByID(itemID)
		if err != nil {
			return h.send(newPlainMessage(chatID, msgEntryNotFound))
		}

		h.users.LogEntryView(ctx, userID, item)
		prefs := h.users.Preferences(ctx, userID)

		msg := newMessage(chatID, renderEntry(item, prefs.Notes[item.ID]))
		msg.ReplyMarkup = buildEntryKeyboard(item.ID, prefs.IsBookmarked(item.ID))
		return h.send(msg)
	}
}

// bookmarkCallbackHandler toggles a bookmark and refreshes the button.
func (h *Handler) bookmarkCallbackHandler(userID int64, messageID int, itemID string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if _, err := h.catalog.GetByID(itemID); err != nil {
			return h.send(newPlainMessage(chatID, msgEntryNotFound))
		}

		bookmarked, _ := h.users.ToggleBookmark(ctx, userID, itemID)
		return h.send(tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, buildEntryKeyboard(itemID, bookmarked)))
	}
}

func (h *Handler) relatedHandler(itemID string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		item, err := h.catalog.GetByID(itemID)
		if err != nil {
			return h.send(newPlainMessage(chatID, msgEntryNotFound))
		}

		related := h.search.Related(item, maxRelatedItems)
		if len(related) == 0 {
			return h.send(newPlainMessage(chatID, "No related entries for "+item.Title+"."))
		}

		msg := newMessage(chatID, renderItemList("🔗 Related to "+item.Title, related))
		if kb := buildItemListKeyboard(related); kb != nil {
			msg.ReplyMarkup = *kb
		}
		return h.send(msg)
	}
}

func (h *Handler) themeCallbackHandler(userID int64, messageID int, name string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		theme := entities.Theme(name)
		if err := h.users.SetTheme(ctx, userID, theme); err != nil {
			return fmt.Errorf("set theme: %w", err)
		}

		edit := newEdit(chatID, messageID, renderTheme(theme))
		kb := buildThemesKeyboard(theme)
		edit.ReplyMarkup = &kb
		return h.send(edit)
	}
}

func (h *Handler) achievementCategoryHandler(userID int64, name string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		category := entities.AchievementCategory(name)
		list := h.achievements.ByCategory(ctx, userID, category)
		if len(list) == 0 {
			return nil
		}

		msg := newMessage(chatID, renderAchievementCategory(category, list))
		msg.ReplyMarkup = buildAchievementsKeyboard()
		return h.send(msg)
	}
}

func (h *Handler) historyCallbackHandler(userID int64, messageID int, data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		switch data.param(0) {
		case historyClear:
			h.users.ClearSearchHistory(ctx, userID)
			return h.send(tgbotapi.NewEditMessageText(chatID, messageID, msgHistoryCleared))

		case historyRun:
			idx, err := strconv.Atoi(data.param(1))
			history := h.users.Preferences(ctx, userID).SearchHistory
			if err != nil || idx < 0 || idx >= len(history) {
				return nil
			}
			return h.searchHandler(userID, history[idx])(ctx, chatID)
		}
		return nil
	}
}

func (h *Handler) resetCallbackHandler(userID int64, messageID int, choice string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if choice != resetConfirm {
			return h.send(tgbotapi.NewEditMessageText(chatID, messageID, msgResetCancelled))
		}

		h.sessions.Delete(userID)
		if err := h.reset.ResetUser(ctx, userID); err != nil {
			return err
		}

		return h.send(tgbotapi.NewEditMessageText(chatID, messageID, msgResetDone))
	}
}

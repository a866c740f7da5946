package telegram

import (
	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/service"
)

// SendReminder delivers the daily word reminder to a chat.
func (h *Handler) SendReminder(chatID int64, payload entities.ReminderPayload) error {
	msg := newMessage(chatID, renderReminder(payload))
	msg.ReplyMarkup = buildReminderKeyboard(payload.DueCards)
	return h.send(msg)
}

var _ service.ReminderNotifier = (*Handler)(nil)

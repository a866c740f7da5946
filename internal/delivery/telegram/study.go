package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/knowledge-vault-bot/internal/service"
)

// studyStartHandler starts a new session, replacing any active one.
func (h *Handler) studyStartHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if old, ok := h.sessions.Get(userID); ok {
			old.EndSession(ctx)
		}

		runner := h.flashcards.StartSession(ctx, userID)
		if runner.IsEmpty() {
			h.sessions.Delete(userID)
			return h.send(newPlainMessage(chatID, msgAllCaughtUp))
		}
		h.sessions.Store(userID, runner)

		text, kb, err := renderRunner(runner)
		if err != nil {
			return err
		}

		msg := newMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

// studyCallbackHandler drives the active session from inline buttons, editing the card message in place.
func (h *Handler) studyCallbackHandler(userID int64, messageID int, data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if data.param(0) == studyStart {
			return h.studyStartHandler(userID)(ctx, chatID)
		}

		runner, ok := h.sessions.Get(userID)
		if !ok || runner.IsEnded() {
			return h.send(tgbotapi.NewEditMessageText(chatID, messageID, msgSessionExpired))
		}

		switch data.param(0) {
		case studyReveal:
			runner.RevealAnswer()
		case studyAnswer:
			// A stale button press on an unrevealed card is ignored by the runner.
			runner.RecordAnswer(ctx, data.param(1) == "true")
		case studyEnd:
			runner.EndSession(ctx)
		default:
			return nil
		}

		if runner.IsEnded() {
			h.sessions.Delete(userID)
			session, _ := runner.EndSession(ctx)

			edit := newEdit(chatID, messageID, renderSessionSummary(session))
			kb := buildSessionDoneKeyboard()
			edit.ReplyMarkup = &kb
			return h.send(edit)
		}

		text, kb, err := renderRunner(runner)
		if err != nil {
			return err
		}

		edit := newEdit(chatID, messageID, text)
		edit.ReplyMarkup = &kb
		return h.send(edit)
	}
}

// renderRunner renders the current card of a running session with its keyboard.
func renderRunner(runner *service.SessionRunner) (string, tgbotapi.InlineKeyboardMarkup, error) {
	card, err := runner.CurrentCard()
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	text := renderCard(card, runner.Position(), runner.Len(), runner.IsRevealed())
	if runner.IsRevealed() {
		return text, buildCardAnswerKeyboard(), nil
	}
	return text, buildCardQuestionKeyboard(), nil
}

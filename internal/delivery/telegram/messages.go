// messages.go contains message templates and formatting helpers for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Error and status messages.
const (
	msgInternalError     = "Something went wrong. Please try again later."
	msgUnknownCommand    = "Unknown command. Send /help to see what I can do."
	msgEntryNotFound     = "This entry is no longer available."
	msgAllCaughtUp       = "🎉 All caught up! No cards are due for review today. Come back tomorrow."
	msgSessionExpired    = "This study session has expired. Start a new one with /study."
	msgNoResults         = "Nothing found. Try another word."
	msgNoBookmarks       = "You have no bookmarks yet. Open an entry and tap 🔖 to save it."
	msgNoHistory         = "Your search history is empty."
	msgHistoryCleared    = "🧹 Search history cleared."
	msgUseNote           = "Open an entry first, then send /note followed by your text."
	msgNoteSaved         = "📝 Note saved."
	msgNoteDeleted       = "🗑 Note deleted."
	msgUseTimezone       = "Send your timezone, for example: /timezone Europe/Berlin or /timezone UTC+3"
	msgInvalidTimezone   = "I don't know this timezone. Try an IANA name like Europe/Berlin or an offset like UTC+3."
	msgUnknownCategory   = "Unknown category. Pick one below."
	msgResetConfirm      = "⚠️ This will permanently delete your progress, streak, achievements, bookmarks, notes and history. Continue?"
	msgResetDone         = "✅ All your data has been reset."
	msgResetCancelled    = "Reset cancelled."
	msgRemindersEnabled  = "🔔 Daily reminders are on."
	msgRemindersDisabled = "🔕 Daily reminders are off."
	msgEmptyCatalog      = "The catalog is empty."
)

const (
	maxListedItems   = 10
	maxRelatedItems  = 5
	progressBarWidth = 10
)

var helpText = strings.Join([]string{
	"/daily - word of the day and your streak",
	"/study - review due flashcards",
	"/stats - your learning statistics",
	"/achievements - unlocked milestones",
	"/search <text> - search the vault (or just send text)",
	"/category <name> - browse a category",
	"/bookmarks - your saved entries",
	"/note <text> - note for the last opened entry",
	"/history - recent searches",
	"/theme - choose a theme",
	"/timezone <tz> - set your timezone",
	"/reminders - toggle daily reminders",
	"/reset - delete all your data",
}, "\n")

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a message without parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// buildProgressBar creates a text progress bar.
func buildProgressBar(current, total, length int) string {
	if total <= 0 {
		return strings.Repeat("░", length)
	}

	filled := current * length / total
	filled = max(0, min(filled, length))

	return strings.Repeat("▓", filled) + strings.Repeat("░", length-filled)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

func formatBool(b bool) string {
	if b {
		return "On ✅"
	}
	return "Off ❌"
}

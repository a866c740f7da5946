package telegram

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/service"
)

// Commands lists the bot commands shown in the Telegram menu.
var Commands = []tgbotapi.BotCommand{
	{Command: "daily", Description: "Word of the day"},
	{Command: "study", Description: "Review due flashcards"},
	{Command: "stats", Description: "Learning statistics"},
	{Command: "achievements", Description: "Achievements"},
	{Command: "search", Description: "Search the vault"},
	{Command: "category", Description: "Browse by category"},
	{Command: "bookmarks", Description: "Saved entries"},
	{Command: "history", Description: "Recent searches"},
	{Command: "theme", Description: "Choose a theme"},
	{Command: "timezone", Description: "Set your timezone"},
	{Command: "reminders", Description: "Toggle daily reminders"},
	{Command: "help", Description: "Help"},
}

type Handler struct {
	bot          *tgbotapi.BotAPI
	logger       *zap.Logger
	catalog      Catalog
	users        UserService
	search       SearchService
	flashcards   FlashcardService
	streaks      StreakService
	achievements AchievementService
	reset        ResetService
	sessions     SessionStorage
	debouncer    *service.Debouncer

	// deferred carries debounced callbacks back onto the update loop.
	deferred chan func()
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	svc Services,
	searchDebounce time.Duration,
) *Handler {
	h := &Handler{
		bot:          bot,
		logger:       logger,
		catalog:      svc.Catalog,
		users:        svc.Users,
		search:       svc.Search,
		flashcards:   svc.Flashcards,
		streaks:      svc.Streaks,
		achievements: svc.Achievements,
		reset:        svc.Reset,
		sessions:     svc.Sessions,
		deferred:     make(chan func(), 64),
	}
	h.debouncer = service.NewDebouncer(searchDebounce, h.enqueue)
	h.achievements.Subscribe(h.announceUnlock)

	return h
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()
	defer h.debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-h.deferred:
			fn()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

// enqueue hands fn to the update loop.
func (h *Handler) enqueue(fn func()) {
	select {
	case h.deferred <- fn:
	default:
		h.logger.Warn("deferred queue is full, dropping callback")
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	if _, err := h.users.EnsureUser(ctx, from.ID, chatID); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if update.Message.IsCommand() {
		h.handleCommand(ctx, update.Message)
		return
	}

	text := strings.TrimSpace(update.Message.Text)
	if text == "" {
		return
	}

	// Plain text is a search; only the last message within the debounce window runs.
	h.debouncer.Schedule(from.ID, func() {
		_ = h.withErrorHandling(h.searchHandler(from.ID, text))(ctx, chatID)
	})
}

func (h *Handler) handleCommand(ctx context.Context, m *tgbotapi.Message) {
	userID := m.From.ID
	chatID := m.Chat.ID
	args := strings.TrimSpace(m.CommandArguments())

	var fn HandlerFunc
	switch m.Command() {
	case "start":
		fn = h.startHandler(userID)
	case "help":
		fn = h.helpHandler()
	case "daily":
		fn = h.dailyHandler(userID)
	case "study":
		fn = h.studyStartHandler(userID)
	case "stats":
		fn = h.statsHandler(userID)
	case "achievements":
		fn = h.achievementsHandler(userID)
	case "search":
		h.debouncer.Cancel(userID)
		fn = h.searchHandler(userID, args)
	case "category":
		fn = h.categoryHandler(args)
	case "bookmarks":
		fn = h.bookmarksHandler(userID)
	case "note":
		fn = h.noteHandler(userID, args)
	case "history":
		fn = h.historyHandler(userID)
	case "theme":
		fn = h.themeHandler(userID)
	case "timezone":
		fn = h.timezoneHandler(userID, args)
	case "reminders":
		fn = h.remindersHandler(userID)
	case "reset":
		fn = h.resetHandler()
	default:
		fn = func(ctx context.Context, chatID int64) error {
			return h.send(newPlainMessage(chatID, msgUnknownCommand))
		}
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

// announceUnlock tells the user about a new achievement. Private chats share the user id.
func (h *Handler) announceUnlock(userID int64, a entities.Achievement) {
	if err := h.send(newMessage(userID, renderUnlock(a))); err != nil {
		h.logger.Warn("failed to announce achievement",
			zap.Int64("user_id", userID),
			zap.String("achievement_id", a.ID),
			zap.Error(err),
		)
	}
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}

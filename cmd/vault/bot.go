package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/knowledge-vault-bot/internal/config"
	"github.com/aliskhannn/knowledge-vault-bot/internal/delivery/telegram"
	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/repository"
	"github.com/aliskhannn/knowledge-vault-bot/internal/service"
	"github.com/aliskhannn/knowledge-vault-bot/internal/storage"
)

func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if err := cfg.RequireToken(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runBot(ctx, cfg, logger)
		},
	}
}

func runBot(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	defaultLoc, err := entities.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("default timezone: %w", err)
	}

	// Initialize catalog and storage.
	catalog, err := repository.NewCatalogRepository(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded",
		zap.String("path", cfg.CatalogPath),
		zap.Int("entries", len(catalog.All())),
	)

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", zap.Error(err))
		}
	}()

	progressRepo := repository.NewProgressRepository(store)
	streakRepo := repository.NewStreakRepository(store)
	achievementRepo := repository.NewAchievementRepository(store)
	prefsRepo := repository.NewPreferencesRepository(store)
	userRepo := repository.NewUserRepository(store)
	resetRepo := repository.NewResetRepository(store)

	// Initialize services.
	achievementService := service.NewAchievementService(achievementRepo, logger)
	userService := service.NewUserService(userRepo, prefsRepo, achievementService, defaultLoc, logger)
	streakService := service.NewStreakService(streakRepo, catalog, achievementService, userService, logger)
	flashcardService := service.NewFlashcardService(progressRepo, catalog, userService, cfg.SessionSize, logger)
	searchService := service.NewSearchService(catalog)
	resetService := service.NewResetService(resetRepo, logger)
	reminderService := service.NewReminderService(userService, streakService, flashcardService, cfg.Reminders.Hour, logger)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return fmt.Errorf("init telegram bot: %w", err)
	}
	bot.Debug = cfg.Env != "production"
	logger.Info("authorized on account", zap.String("username", bot.Self.UserName))

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands...)); err != nil {
		logger.Warn("failed to set bot commands", zap.Error(err))
	}

	handler := telegram.NewHandler(bot, logger, telegram.Services{
		Catalog:      catalog,
		Users:        userService,
		Search:       searchService,
		Flashcards:   flashcardService,
		Streaks:      streakService,
		Achievements: achievementService,
		Reset:        resetService,
		Sessions:     storage.NewSessionStorage(),
	}, cfg.SearchDebounce)

	if cfg.Reminders.Enabled {
		reminderService.SetNotifier(handler)
		go reminderService.Start(ctx)
	}

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("shutdown signal received")
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
)

// DefaultReminderHour is the local hour at which daily word reminders are sent.
const DefaultReminderHour = 9

// ReminderService sends the daily word to users who have not opened it yet.
type ReminderService struct {
	users      ReminderTargetLister
	words      DailyWordProvider
	flashcards DueCardCounter
	notifier   ReminderNotifier
	hour       int
	logger     *zap.Logger
	now        func() time.Time
}

// NewReminderService creates a new reminder service.
func NewReminderService(
	users ReminderTargetLister,
	words DailyWordProvider,
	flashcards DueCardCounter,
	hour int,
	logger *zap.Logger,
) *ReminderService {
	if hour < 0 || hour > 23 {
		hour = DefaultReminderHour
	}
	return &ReminderService{
		users:      users,
		words:      words,
		flashcards: flashcards,
		hour:       hour,
		logger:     logger,
		now:        time.Now,
	}
}

// SetNotifier sets the notifier (called after handler is created).
func (s *ReminderService) SetNotifier(notifier ReminderNotifier) {
	s.notifier = notifier
}

// SetClock replaces the time source.
func (s *ReminderService) SetClock(now func() time.Time) {
	s.now = now
}

// Start runs the hourly reminder job until ctx is cancelled.
func (s *ReminderService) Start(ctx context.Context) {
	s.logger.Info("reminder service started", zap.Int("hour", s.hour))

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc("0 * * * *", func() {
		s.logger.Debug("cron triggered: processing hourly reminders")
		sent, err := s.sendHourlyReminders(ctx)
		if err != nil {
			s.logger.Error("failed to send hourly reminders", zap.Error(err))
			return
		}
		s.logger.Info("reminders processed", zap.Int("total_sent", sent))
	})
	if err != nil {
		s.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()

	s.logger.Info("reminder service stopped")
}

// sendHourlyReminders notifies every due user and returns how many reminders were sent.
func (s *ReminderService) sendHourlyReminders(ctx context.Context) (int, error) {
	if s.notifier == nil {
		return 0, errors.New("notifier not initialized")
	}

	targets, err := s.users.ReminderTargets(ctx)
	if err != nil {
		return 0, fmt.Errorf("get reminder targets: %w", err)
	}

	now := s.now()
	due := make([]entities.ReminderTarget, 0, len(targets))
	for _, t := range targets {
		if t.IsReminderHour(now, s.hour) {
			due = append(due, t)
		}
	}

	return s.processBatch(ctx, due), nil
}

// processBatch sends reminders concurrently.
func (s *ReminderService) processBatch(ctx context.Context, targets []entities.ReminderTarget) int {
	const maxConcurrent = 10
	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	sent := 0

	for _, t := range targets {
		wg.Add(1)
		sem <- struct{}{}

		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			ok, err := s.processReminder(ctx, t)
			if err != nil {
				s.logger.Error("failed to process reminder",
					zap.Int64("user_id", t.UserID),
					zap.Error(err),
				)
				return
			}
			if ok {
				mu.Lock()
				sent++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return sent
}

// processReminder sends one reminder unless the user already viewed today's word.
func (s *ReminderService) processReminder(ctx context.Context, t entities.ReminderTarget) (bool, error) {
	streak := s.words.Status(ctx, t.UserID)
	if streak.HasViewedToday {
		return false, nil
	}

	word, err := s.words.TodayWord(ctx, t.UserID)
	if err != nil {
		return false, fmt.Errorf("get daily word: %w", err)
	}

	payload := entities.ReminderPayload{
		Word:     word,
		Streak:   streak,
		DueCards: len(s.flashcards.DueCards(ctx, t.UserID)),
	}
	if err := s.notifier.SendReminder(t.ChatID, payload); err != nil {
		return false, fmt.Errorf("send notification: %w", err)
	}

	return true, nil
}

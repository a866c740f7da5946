// Package repository maps domain state onto key/value records.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/aliskhannn/knowledge-vault-bot/internal/infra/kv"
)

// ErrNotFound is returned when a record has never been stored.
var ErrNotFound = errors.New("record not found")

const (
	keyFlashcardProgress  = "flashcard_progress"
	keyFlashcardSessions  = "flashcard_sessions"
	keyStreak             = "streak"
	keyAchievements       = "achievements"
	keyAchievementsRecent = "achievements_recent"
	keyTotalPoints        = "total_points"
	keyPreferences        = "preferences"
	keyActivities         = "activities"
	keyUsers              = "users"
)

// UserPrefix is the key prefix of every record owned by userID.
func UserPrefix(userID int64) string {
	return "user:" + strconv.FormatInt(userID, 10) + ":"
}

func userKey(userID int64, name string) string {
	return UserPrefix(userID) + name
}

func getJSON(ctx context.Context, store kv.Store, key string, v any) error {
	data, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func setJSON(ctx context.Context, store kv.Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// batch collects JSON records for a single atomic SetMany.
type batch map[string][]byte

func (b batch) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	b[key] = data
	return nil
}

package repository

import (
	"context"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/infra/kv"
)

// StreakRepository persists the daily word streak.
type StreakRepository struct {
	store kv.Store
}

func NewStreakRepository(store kv.Store) *StreakRepository {
	return &StreakRepository{store: store}
}

// Get returns the stored streak. A fresh state is returned with ErrNotFound.
func (r *StreakRepository) Get(ctx context.Context, userID int64) (*entities.StreakState, error) {
	var state entities.StreakState
	if err := getJSON(ctx, r.store, userKey(userID, keyStreak), &state); err != nil {
		return &entities.StreakState{}, err
	}
	return &state, nil
}

func (r *StreakRepository) Save(ctx context.Context, userID int64, state *entities.StreakState) error {
	return setJSON(ctx, r.store, userKey(userID, keyStreak), state)
}

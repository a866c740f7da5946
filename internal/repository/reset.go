package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/knowledge-vault-bot/internal/infra/kv"
)

type ResetRepository struct {
	store kv.Store
}

func NewResetRepository(store kv.Store) *ResetRepository {
	return &ResetRepository{store: store}
}

// ResetUser deletes every record owned by the user. The user stays in the index.
func (r *ResetRepository) ResetUser(ctx context.Context, userID int64) error {
	if err := r.store.DeletePrefix(ctx, UserPrefix(userID)); err != nil {
		return fmt.Errorf("reset user %d: %w", userID, err)
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/infra/kv"
)

// AchievementRepository persists the achievement catalog with its mutable fields,
// the total points and the recently unlocked list.
type AchievementRepository struct {
	store kv.Store
}

func NewAchievementRepository(store kv.Store) *AchievementRepository {
	return &AchievementRepository{store: store}
}

// Get loads the achievement book of a user. ErrNotFound means nothing was stored yet.
func (r *AchievementRepository) Get(ctx context.Context, userID int64) (*entities.AchievementBook, error) {
	var book entities.AchievementBook

	if err := getJSON(ctx, r.store, userKey(userID, keyAchievements), &book.Achievements); err != nil {
		return nil, err
	}
	if len(book.Achievements) == 0 {
		return nil, ErrNotFound
	}

	if err := getJSON(ctx, r.store, userKey(userID, keyTotalPoints), &book.TotalPoints); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if err := getJSON(ctx, r.store, userKey(userID, keyAchievementsRecent), &book.RecentlyUnlocked); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return &book, nil
}

// Save writes all three records in one batch.
func (r *AchievementRepository) Save(ctx context.Context, userID int64, book *entities.AchievementBook) error {
	b := batch{}
	if err := b.put(userKey(userID, keyAchievements), book.Achievements); err != nil {
		return err
	}
	if err := b.put(userKey(userID, keyTotalPoints), book.TotalPoints); err != nil {
		return err
	}
	if err := b.put(userKey(userID, keyAchievementsRecent), book.RecentlyUnlocked); err != nil {
		return err
	}
	return r.store.SetMany(ctx, b)
}

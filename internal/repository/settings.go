package repository

import (
	"context"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/infra/kv"
)

// PreferencesRepository persists user preferences and the activity log.
type PreferencesRepository struct {
	store kv.Store
}

func NewPreferencesRepository(store kv.Store) *PreferencesRepository {
	return &PreferencesRepository{store: store}
}

// Get returns stored preferences, or defaults with ErrNotFound.
func (r *PreferencesRepository) Get(ctx context.Context, userID int64) (*entities.Preferences, error) {
	prefs := entities.NewPreferences()
	if err := getJSON(ctx, r.store, userKey(userID, keyPreferences), prefs); err != nil {
		return entities.NewPreferences(), err
	}
	prefs.Normalize()
	return prefs, nil
}

func (r *PreferencesRepository) Save(ctx context.Context, userID int64, prefs *entities.Preferences) error {
	return setJSON(ctx, r.store, userKey(userID, keyPreferences), prefs)
}

// GetActivities returns the activity log, newest first.
func (r *PreferencesRepository) GetActivities(ctx context.Context, userID int64) ([]entities.Activity, error) {
	var log []entities.Activity
	if err := getJSON(ctx, r.store, userKey(userID, keyActivities), &log); err != nil {
		return nil, err
	}
	return log, nil
}

func (r *PreferencesRepository) SaveActivities(ctx context.Context, userID int64, log []entities.Activity) error {
	return setJSON(ctx, r.store, userKey(userID, keyActivities), log)
}

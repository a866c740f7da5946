package repository

import (
	"context"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/infra/kv"
)

// ProgressRepository persists flashcard progress and study session history.
type ProgressRepository struct {
	store kv.Store
}

// NewProgressRepository creates a new ProgressRepository on top of store.
func NewProgressRepository(store kv.Store) *ProgressRepository {
	return &ProgressRepository{store: store}
}

// GetProgress returns all card progress of a user keyed by item id.
// A user without stored progress gets an empty map and ErrNotFound.
func (r *ProgressRepository) GetProgress(ctx context.Context, userID int64) (map[string]*entities.CardProgress, error) {
	progress := make(map[string]*entities.CardProgress)
	if err := getJSON(ctx, r.store, userKey(userID, keyFlashcardProgress), &progress); err != nil {
		return make(map[string]*entities.CardProgress), err
	}
	if progress == nil {
		progress = make(map[string]*entities.CardProgress)
	}
	for id, p := range progress {
		if p == nil {
			delete(progress, id)
			continue
		}
		p.ItemID = id
	}
	return progress, nil
}

// SaveProgress replaces the stored card progress of a user.
func (r *ProgressRepository) SaveProgress(ctx context.Context, userID int64, progress map[string]*entities.CardProgress) error {
	return setJSON(ctx, r.store, userKey(userID, keyFlashcardProgress), progress)
}

// GetSessions returns the session history, newest first.
func (r *ProgressRepository) GetSessions(ctx context.Context, userID int64) ([]entities.StudySession, error) {
	var sessions []entities.StudySession
	if err := getJSON(ctx, r.store, userKey(userID, keyFlashcardSessions), &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// SaveSessions replaces the session history.
func (r *ProgressRepository) SaveSessions(ctx context.Context, userID int64, sessions []entities.StudySession) error {
	return setJSON(ctx, r.store, userKey(userID, keyFlashcardSessions), sessions)
}

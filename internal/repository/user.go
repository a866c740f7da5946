package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/infra/kv"
)

// UserRepository keeps the index of known users.
type UserRepository struct {
	store kv.Store
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(store kv.Store) *UserRepository {
	return &UserRepository{store: store}
}

// SaveUser adds the user to the index or updates its chat id.
func (r *UserRepository) SaveUser(ctx context.Context, user *entities.User) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}

	if existing, ok := users[user.ID]; ok && existing.ChatID == user.ChatID {
		return nil
	}
	if existing, ok := users[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
	}
	users[user.ID] = *user

	if err := setJSON(ctx, r.store, keyUsers, users); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// UserExists checks whether the user is in the index.
func (r *UserRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	users, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	_, ok := users[userID]
	return ok, nil
}

// List returns every known user ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]entities.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.User, 0, len(users))
	for _, u := range users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *UserRepository) load(ctx context.Context) (map[int64]entities.User, error) {
	users := make(map[int64]entities.User)
	if err := getJSON(ctx, r.store, keyUsers, &users); err != nil {
		if errors.Is(err, ErrNotFound) {
			return make(map[int64]entities.User), nil
		}
		return nil, fmt.Errorf("load users: %w", err)
	}
	if users == nil {
		users = make(map[int64]entities.User)
	}
	return users, nil
}

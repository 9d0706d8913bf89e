package repository

import (
	"context"
	"learnhub_backend/internal/kvstore"
	"learnhub_backend/internal/model"
)

// SessionRepository holds the single current-user pointer. The stored
// record is a cache; callers re-resolve against the users table.
type SessionRepository struct {
	store kvstore.Store
}

func NewSessionRepository(store kvstore.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Get(ctx context.Context) (*model.User, bool) {
	user, ok := ReadDoc[*model.User](ctx, r.store, KeySession)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

func (r *SessionRepository) Set(ctx context.Context, user *model.User) error {
	return WriteDoc(ctx, r.store, KeySession, user)
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, KeySession)
}

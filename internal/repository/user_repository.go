package repository

import (
	"context"
	"learnhub_backend/internal/kvstore"
	"learnhub_backend/internal/model"
)

type UserRepository struct {
	Col *Collection[*model.User]
}

func NewUserRepository(store kvstore.Store) *UserRepository {
	return &UserRepository{Col: NewCollection[*model.User](store, KeyUsers)}
}

func (r *UserRepository) All(ctx context.Context) []*model.User {
	return r.Col.All(ctx)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, bool) {
	return r.Col.Find(ctx, func(u *model.User) bool { return u.ID == id })
}

// FindByEmail expects an already-normalized (trimmed, lowercased) email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, bool) {
	return r.Col.Find(ctx, func(u *model.User) bool { return u.Email == email })
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	return r.Col.Append(ctx, user)
}

// SaveAll persists the whole users table after in-memory mutation.
func (r *UserRepository) SaveAll(ctx context.Context, users []*model.User) error {
	return r.Col.ReplaceAll(ctx, users)
}

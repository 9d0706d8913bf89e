package repository

import (
	"context"
	"learnhub_backend/internal/kvstore"
	"learnhub_backend/internal/model"
)

type CategoryRepository struct {
	Col *Collection[*model.Category]
}

func NewCategoryRepository(store kvstore.Store) *CategoryRepository {
	return &CategoryRepository{Col: NewCollection[*model.Category](store, KeyCategories)}
}

func (r *CategoryRepository) All(ctx context.Context) []*model.Category {
	return r.Col.All(ctx)
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*model.Category, bool) {
	return r.Col.Find(ctx, func(c *model.Category) bool { return c.Name == name })
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	return r.Col.Append(ctx, category)
}

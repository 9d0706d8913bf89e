package repository

import (
	"context"
	"learnhub_backend/internal/kvstore"
	"learnhub_backend/internal/model"
)

type CourseRepository struct {
	Col *Collection[*model.Course]
}

func NewCourseRepository(store kvstore.Store) *CourseRepository {
	return &CourseRepository{Col: NewCollection[*model.Course](store, KeyCourses)}
}

func (r *CourseRepository) All(ctx context.Context) []*model.Course {
	return r.Col.All(ctx)
}

func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*model.Course, bool) {
	return r.Col.Find(ctx, func(c *model.Course) bool { return c.ID == id })
}

func (r *CourseRepository) Upsert(ctx context.Context, course *model.Course) (*model.Course, error) {
	return r.Col.Upsert(ctx, course)
}

func (r *CourseRepository) SaveAll(ctx context.Context, courses []*model.Course) error {
	return r.Col.ReplaceAll(ctx, courses)
}

package repository

import (
	"context"
	"learnhub_backend/internal/kvstore"
	"learnhub_backend/internal/model"
)

type FeedbackRepository struct {
	Col *Collection[*model.Feedback]
}

func NewFeedbackRepository(store kvstore.Store) *FeedbackRepository {
	return &FeedbackRepository{Col: NewCollection[*model.Feedback](store, KeyFeedback)}
}

func (r *FeedbackRepository) All(ctx context.Context) []*model.Feedback {
	return r.Col.All(ctx)
}

func (r *FeedbackRepository) ByCourse(ctx context.Context, courseID int64) []*model.Feedback {
	return r.Col.Filter(ctx, func(f *model.Feedback) bool { return f.CourseID == courseID })
}

func (r *FeedbackRepository) ByUser(ctx context.Context, userID int64) []*model.Feedback {
	return r.Col.Filter(ctx, func(f *model.Feedback) bool { return f.UserID == userID })
}

func (r *FeedbackRepository) Exists(ctx context.Context, userID, courseID int64) bool {
	_, ok := r.Col.Find(ctx, func(f *model.Feedback) bool {
		return f.UserID == userID && f.CourseID == courseID
	})
	return ok
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *model.Feedback) (*model.Feedback, error) {
	return r.Col.Append(ctx, feedback)
}

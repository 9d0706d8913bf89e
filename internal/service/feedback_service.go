package service

import (
	"context"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"math"
	"time"
)

type FeedbackService struct {
	feedback *repository.FeedbackRepository
	now      func() time.Time
}

func NewFeedbackService(feedback *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedback: feedback, now: time.Now}
}

// SetNowFunc is a test hook for the default timestamp.
func (s *FeedbackService) SetNowFunc(now func() time.Time) { s.now = now }

// Add stores a review, enforcing one per (user, course) pair and a 1..5
// rating. Missing comment defaults to empty, missing timestamp to now.
func (s *FeedbackService) Add(ctx context.Context, input *model.Feedback) (*model.Feedback, error) {
	if input.UserID == 0 {
		return nil, util.Invalid("User ID is required.")
	}
	if input.CourseID == 0 {
		return nil, util.Invalid("Course ID is required.")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, util.Invalid("Rating must be between 1 and 5.")
	}

	if s.feedback.Exists(ctx, input.UserID, input.CourseID) {
		return nil, util.ErrDuplicateFeedback
	}

	input.ID = 0
	if input.Timestamp == 0 {
		input.Timestamp = s.now().UnixMilli()
	}

	return s.feedback.Create(ctx, input)
}

func (s *FeedbackService) GetByCourse(ctx context.Context, courseID int64) []*model.Feedback {
	return s.feedback.ByCourse(ctx, courseID)
}

func (s *FeedbackService) GetByUser(ctx context.Context, userID int64) []*model.Feedback {
	return s.feedback.ByUser(ctx, userID)
}

func (s *FeedbackService) HasUserFeedback(ctx context.Context, userID, courseID int64) bool {
	return s.feedback.Exists(ctx, userID, courseID)
}

// GetCourseRating returns the mean rating rounded to one decimal, with
// ok=false when the course has no feedback.
func (s *FeedbackService) GetCourseRating(ctx context.Context, courseID int64) (float64, bool) {
	reviews := s.feedback.ByCourse(ctx, courseID)
	if len(reviews) == 0 {
		return 0, false
	}

	sum := 0
	for _, f := range reviews {
		sum += f.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10, true
}
